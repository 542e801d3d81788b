package commands

import (
	"context"
	"log/slog"

	"dealership-api/internal/domain/car"
	"dealership-api/internal/infra"
	"dealership-api/internal/pkg/errs"
)

const (
	TemplateConfirmation = "test-drive-confirmation"
	TemplateReminder     = "test-drive-reminder"

	subjectConfirmation = "Test Drive Confirmation"
	subjectReminder     = "Test Drive Reminder"
)

// TestDriveRequest is the transient notification input. It is never
// persisted; the car reference is resolved freshly on every dispatch.
type TestDriveRequest struct {
	ClientEmail       string
	ClientName        string
	CarID             int64
	TestDriveDateTime string
	DealerAddress     string
	DealerPhone       string
}

type TestDriveCommands interface {
	SendConfirmation(ctx context.Context, req TestDriveRequest) error
	SendReminder(ctx context.Context, req TestDriveRequest) error
}

type testDriveCommandsImpl struct {
	repo     CarRepository
	renderer TemplateRenderer
	mailer   Mailer
	logger   *slog.Logger
}

func NewTestDriveCommands(repo CarRepository, renderer TemplateRenderer, mailer Mailer, logger *slog.Logger) TestDriveCommands {
	return &testDriveCommandsImpl{repo: repo, renderer: renderer, mailer: mailer, logger: logger}
}

func (uc *testDriveCommandsImpl) SendConfirmation(ctx context.Context, req TestDriveRequest) error {
	return uc.send(ctx, req, TemplateConfirmation, subjectConfirmation)
}

func (uc *testDriveCommandsImpl) SendReminder(ctx context.Context, req TestDriveRequest) error {
	return uc.send(ctx, req, TemplateReminder, subjectReminder)
}

// send performs exactly one dispatch attempt: fresh car lookup, template
// render, one transport call. No retry, no queueing, no persisted outcome.
func (uc *testDriveCommandsImpl) send(ctx context.Context, req TestDriveRequest, templateName, subject string) error {
	found, err := uc.repo.FindByID(ctx, req.CarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			uc.logger.Warn("test drive email references unknown car", "car_id", req.CarID)
			return errs.ErrCarNotFound
		}
		return err
	}

	body, err := uc.renderer.Render(templateName, templateContext(req, found))
	if err != nil {
		uc.logger.Error("failed to render test drive email",
			"template", templateName,
			"car_id", req.CarID,
			"error", err)
		return errs.Mark(errs.Wrap(err, "render failed"), errs.ErrDispatchFailed)
	}

	if err := uc.mailer.Send(ctx, req.ClientEmail, subject, body); err != nil {
		uc.logger.Error("failed to send test drive email",
			"recipient", req.ClientEmail,
			"car_id", req.CarID,
			"error", err)
		return errs.Mark(errs.Wrap(err, "transport send failed"), errs.ErrDispatchFailed)
	}

	uc.logger.Info("test drive email sent",
		"recipient", req.ClientEmail,
		"car_id", req.CarID,
		"scheduled_at", req.TestDriveDateTime)
	return nil
}

func templateContext(req TestDriveRequest, c *car.Car) map[string]any {
	return map[string]any{
		"ClientName":        req.ClientName,
		"Car":               c,
		"TestDriveDateTime": req.TestDriveDateTime,
		"DealerAddress":     req.DealerAddress,
		"DealerPhone":       req.DealerPhone,
	}
}
