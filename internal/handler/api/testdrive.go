package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "dealership-api/internal/handler/dto/request"
	"dealership-api/internal/handler/httperr"
	"dealership-api/internal/pkg/errs"
	"dealership-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TestDriveHandler struct {
	cmds commands.TestDriveCommands
}

func NewTestDriveHandler(cmds commands.TestDriveCommands) *TestDriveHandler {
	return &TestDriveHandler{cmds: cmds}
}

// @Summary Send test drive confirmation email
// @Tags test-drive
// @Accept json
// @Param request body reqdto.TestDriveEmailRequest true "Test drive email request"
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/email/test-drive/confirmation [post]
func (h *TestDriveHandler) SendConfirmation(c *gin.Context) {
	h.dispatch(c, h.cmds.SendConfirmation)
}

// @Summary Send test drive reminder email
// @Tags test-drive
// @Accept json
// @Param request body reqdto.TestDriveEmailRequest true "Test drive email request"
// @Success 202 "Accepted"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/email/test-drive/reminder [post]
func (h *TestDriveHandler) SendReminder(c *gin.Context) {
	h.dispatch(c, h.cmds.SendReminder)
}

func (h *TestDriveHandler) dispatch(c *gin.Context, send func(ctx context.Context, req commands.TestDriveRequest) error) {
	var req reqdto.TestDriveEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := send(c.Request.Context(), req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, errs.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		case errors.Is(err, errs.ErrDispatchFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Email dispatch failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.Status(http.StatusAccepted)
}
