//go:build e2e

package inventory_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"dealership-api/internal/handler/dto/request"
	"dealership-api/internal/handler/dto/response"
	"dealership-api/internal/infra/seed"
	"dealership-api/tests/common/httptest"
	"dealership-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const carsURL = "/api/cars"

type InventorySuite struct {
	e2e.SharedSuite
}

func TestInventorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(InventorySuite))
}

func (s *InventorySuite) models(cars []response.CarResponse) []string {
	names := make([]string, len(cars))
	for i, c := range cars {
		names[i] = c.Model
	}
	return names
}

func (s *InventorySuite) countCars() int64 {
	var count int64
	err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM cars").Scan(&count)
	require.NoError(s.T(), err)
	return count
}

// =============================================================================
// TestListAndGet
// =============================================================================

func (s *InventorySuite) TestListAndGet() {
	s.Run("list returns the full seeded inventory", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cars []response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
		require.Len(t, cars, len(seed.DemoCars))
	})

	s.Run("get by id returns a single car", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "BMW", got.Brand)
		require.Equal(t, "X5", got.Model)
	})

	s.Run("get unknown id returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/9999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestSearch
// =============================================================================

func (s *InventorySuite) TestSearch() {
	s.Run("brand search is exact and case-sensitive", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/search?brand=BMW", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cars []response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
		require.ElementsMatch(t, []string{"X5", "320i", "M3"}, s.models(cars))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/search?brand=bmw", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	s.Run("price range bounds are inclusive", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-price?min=16000&max=18500", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cars []response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
		require.ElementsMatch(t, []string{"320i", "Corolla"}, s.models(cars))
	})

	s.Run("inverted price range returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-price?min=50000&max=10000", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("color search ignores case", func() {
		t := s.T()

		for _, color := range []string{"Red", "RED", "red"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-color?color="+color, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var cars []response.CarResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
			require.ElementsMatch(t, []string{"Camry"}, s.models(cars), "color %q", color)
		}
	})

	s.Run("blank color returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-color?color=", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("fuel type search matches hybrids", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-fuel?fuelType=HYBRID", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cars []response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
		require.ElementsMatch(t, []string{"Camry", "RAV4"}, s.models(cars))
	})

	s.Run("unknown fuel type returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-fuel?fuelType=GASOLINE", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("status search matches sold cars", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-status?status=SOLD", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cars []response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
		require.ElementsMatch(t, []string{"A4", "Camry", "Q5"}, s.models(cars))
	})

	s.Run("horsepower range is inclusive", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-power?minHp=200&maxHp=300", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cars []response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cars))
		require.ElementsMatch(t, []string{"X5", "A6", "Model 3", "Q5", "RAV4"}, s.models(cars))
	})

	s.Run("zero matches yields 200 with empty array", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/by-power?minHp=900&maxHp=1000", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}

// =============================================================================
// TestWrites
// =============================================================================

func (s *InventorySuite) TestWrites() {
	newCar := request.CarRequest{
		Brand:          "Volvo",
		Model:          "XC60",
		ProductionYear: 2023,
		Mileage:        5000,
		Price:          48000,
		Status:         "AVAILABLE",
		Color:          "White",
		Horsepower:     250,
		FuelType:       "HYBRID",
		Transmission:   "AUTOMATIC",
	}

	s.Run("create assigns an id and the car is retrievable", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, carsURL, newCar)
		require.Equal(t, http.StatusCreated, w.Code)

		var created map[string]int64
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotZero(t, created["id"])

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/"+strconv.FormatInt(created["id"], 10), nil)
		require.Equal(t, http.StatusOK, gw.Code)

		var got response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &got))
		require.Equal(t, "Volvo", got.Brand)
		require.Equal(t, "XC60", got.Model)
	})

	s.Run("invalid create persists nothing and reports every violation", func() {
		t := s.T()

		before := s.countCars()

		invalid := request.CarRequest{ProductionYear: 1850, Mileage: -1}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, carsURL, invalid)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Brand must not be empty")
		require.Contains(t, w.Body.String(), "Production year must be >= 1900")
		require.Contains(t, w.Body.String(), "Mileage must be >= 0")

		require.Equal(t, before, s.countCars())
	})

	s.Run("update replaces the record under the path id", func() {
		t := s.T()

		updated := newCar
		updated.Price = 30000

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, carsURL+"/1", updated)
		require.Equal(t, http.StatusOK, w.Code)

		var got response.CarResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, int64(1), got.ID)
		require.Equal(t, 30000, got.Price)
		require.Equal(t, "Volvo", got.Brand)
	})

	s.Run("update of unknown id returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, carsURL+"/9999", newCar)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("delete removes the car", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, carsURL+"/1", nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, carsURL+"/1", nil)
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("delete of unknown id returns 404 and changes nothing", func() {
		t := s.T()

		before := s.countCars()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, carsURL+"/9999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, before, s.countCars())
	})
}

// =============================================================================
// TestTestDriveEmails
// =============================================================================

func (s *InventorySuite) TestTestDriveEmails() {
	reqBody := request.TestDriveEmailRequest{
		ClientEmail:       "jane.doe@example.com",
		ClientName:        "Jane Doe",
		CarID:             9999,
		TestDriveDateTime: "2026-09-15 14:00",
		DealerAddress:     "12 Harbour Street",
		DealerPhone:       "+31 20 123 4567",
	}

	s.Run("unknown car is rejected before the transport is touched", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/email/test-drive/confirmation", reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/email/test-drive/reminder", reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("missing fields are rejected with 400", func() {
		t := s.T()

		incomplete := reqBody
		incomplete.ClientEmail = ""
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/email/test-drive/confirmation", incomplete)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
