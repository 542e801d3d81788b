package api

import (
	"errors"
	"net/http"
	"strconv"

	"dealership-api/internal/domain/car"
	reqdto "dealership-api/internal/handler/dto/request"
	resdto "dealership-api/internal/handler/dto/response"
	"dealership-api/internal/handler/httperr"
	"dealership-api/internal/pkg/config"
	"dealership-api/internal/pkg/errs"
	"dealership-api/internal/usecase/commands"
	"dealership-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	cmds           commands.CarCommands
	q              queries.CarQueries
	dealershipName string
}

func NewCarHandler(cmds commands.CarCommands, q queries.CarQueries, cfg config.Config) *CarHandler {
	return &CarHandler{cmds: cmds, q: q, dealershipName: cfg.App.DealershipName}
}

// @Summary Dealership info
// @Tags cars
// @Produce plain
// @Success 200 {string} string
// @Router /api/cars/info [get]
func (h *CarHandler) Info(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the "+h.dealershipName+" car dealership!")
}

// @Summary Get all cars
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.CarResponse
// @Router /api/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cars", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarList(cars))
}

// @Summary Get car by id
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	found, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrCarNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load car", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCar(found))
}

// @Summary Add a new car
// @Tags cars
// @Accept json
// @Produce json
// @Param request body reqdto.CarRequest true "Car to create"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} httperr.Response
// @Router /api/cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	newCar, ok := h.bindCar(c)
	if !ok {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), newCar)
	if err != nil {
		h.abortWriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.CarID})
}

// @Summary Update one car by id
// @Tags cars
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Param request body reqdto.CarRequest true "Full replacement record"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	replacement, ok := h.bindCar(c)
	if !ok {
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, replacement)
	if err != nil {
		h.abortWriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCar(updated))
}

// @Summary Delete a car by id
// @Tags cars
// @Param id path int true "Car ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.abortWriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Search cars by brand
// @Tags cars
// @Produce json
// @Param brand query string true "Exact brand, case-sensitive"
// @Success 200 {array} resdto.CarResponse
// @Router /api/cars/search [get]
func (h *CarHandler) SearchByBrand(c *gin.Context) {
	cars, err := h.q.SearchByBrand(c.Request.Context(), c.Query("brand"))
	h.respondSearch(c, cars, err)
}

// @Summary Search cars by price range
// @Tags cars
// @Produce json
// @Param min query int true "Inclusive lower bound"
// @Param max query int true "Inclusive upper bound"
// @Success 200 {array} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cars/by-price [get]
func (h *CarHandler) SearchByPrice(c *gin.Context) {
	min, max, err := parseRange(c, "min", "max")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid range parameters", nil)
		return
	}
	cars, err := h.q.SearchByPriceRange(c.Request.Context(), min, max)
	h.respondSearch(c, cars, err)
}

// @Summary Search cars by color
// @Tags cars
// @Produce json
// @Param color query string true "Color, case-insensitive"
// @Success 200 {array} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cars/by-color [get]
func (h *CarHandler) SearchByColor(c *gin.Context) {
	cars, err := h.q.SearchByColor(c.Request.Context(), c.Query("color"))
	h.respondSearch(c, cars, err)
}

// @Summary Search cars by fuel type
// @Tags cars
// @Produce json
// @Param fuelType query string true "One of PETROL, DIESEL, HYBRID, ELECTRIC"
// @Success 200 {array} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cars/by-fuel [get]
func (h *CarHandler) SearchByFuelType(c *gin.Context) {
	cars, err := h.q.SearchByFuelType(c.Request.Context(), c.Query("fuelType"))
	h.respondSearch(c, cars, err)
}

// @Summary Search cars by status
// @Tags cars
// @Produce json
// @Param status query string true "One of AVAILABLE, SOLD, RESERVED"
// @Success 200 {array} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cars/by-status [get]
func (h *CarHandler) SearchByStatus(c *gin.Context) {
	cars, err := h.q.SearchByStatus(c.Request.Context(), c.Query("status"))
	h.respondSearch(c, cars, err)
}

// @Summary Search cars by horsepower range
// @Tags cars
// @Produce json
// @Param minHp query int true "Inclusive lower bound"
// @Param maxHp query int true "Inclusive upper bound"
// @Success 200 {array} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cars/by-power [get]
func (h *CarHandler) SearchByHorsepower(c *gin.Context) {
	minHp, maxHp, err := parseRange(c, "minHp", "maxHp")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid range parameters", nil)
		return
	}
	cars, err := h.q.SearchByHorsepowerRange(c.Request.Context(), minHp, maxHp)
	h.respondSearch(c, cars, err)
}

// Zero matches is a normal outcome: 200 with an empty array. Only malformed
// filter parameters produce 400.
func (h *CarHandler) respondSearch(c *gin.Context, cars []car.Car, err error) {
	if err != nil {
		if isMalformedQuery(err) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search parameters", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarList(cars))
}

func isMalformedQuery(err error) bool {
	return errors.Is(err, errs.ErrInvalidRange) ||
		errors.Is(err, errs.ErrBlankColor) ||
		errors.Is(err, errs.ErrUnknownFuelType) ||
		errors.Is(err, errs.ErrUnknownStatus)
}

func (h *CarHandler) bindCar(c *gin.Context) (car.Car, bool) {
	var req reqdto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return car.Car{}, false
	}
	parsed, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return car.Car{}, false
	}
	return parsed, true
}

func (h *CarHandler) abortWriteError(c *gin.Context, err error) {
	var validationErr *commands.ValidationError
	switch {
	case errors.As(err, &validationErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed",
			gin.H{"errors": validationErr.Messages()})
	case errors.Is(err, errs.ErrCarNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func parseRange(c *gin.Context, minKey, maxKey string) (int, int, error) {
	min, err := strconv.Atoi(c.Query(minKey))
	if err != nil {
		return 0, 0, err
	}
	max, err := strconv.Atoi(c.Query(maxKey))
	if err != nil {
		return 0, 0, err
	}
	return min, max, nil
}
