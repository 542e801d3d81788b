//go:build unit

package car_test

import (
	"testing"

	"dealership-api/internal/domain/car"
	"dealership-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"AVAILABLE", "SOLD", "RESERVED"} {
		got, err := car.ParseStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, got.String())
	}

	for _, raw := range []string{"", "available", "Available", "UNKNOWN", " AVAILABLE"} {
		_, err := car.ParseStatus(raw)
		assert.ErrorIs(t, err, errs.ErrUnknownStatus, "input %q", raw)
	}
}

func TestParseFuelType(t *testing.T) {
	for _, raw := range []string{"PETROL", "DIESEL", "HYBRID", "ELECTRIC"} {
		got, err := car.ParseFuelType(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, got.String())
	}

	for _, raw := range []string{"", "petrol", "GASOLINE", "LPG"} {
		_, err := car.ParseFuelType(raw)
		assert.ErrorIs(t, err, errs.ErrUnknownFuelType, "input %q", raw)
	}
}

func TestParseTransmission(t *testing.T) {
	for _, raw := range []string{"AUTOMATIC", "MANUAL"} {
		got, err := car.ParseTransmission(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, got.String())
	}

	for _, raw := range []string{"", "manual", "CVT", "SEMI_AUTOMATIC"} {
		_, err := car.ParseTransmission(raw)
		assert.ErrorIs(t, err, errs.ErrUnknownTransmission, "input %q", raw)
	}
}

func TestEnumValid(t *testing.T) {
	assert.True(t, car.StatusSold.Valid())
	assert.False(t, car.Status("SCRAPPED").Valid())
	assert.True(t, car.FuelElectric.Valid())
	assert.False(t, car.FuelType("").Valid())
	assert.True(t, car.TransmissionManual.Valid())
	assert.False(t, car.Transmission("DCT").Valid())
}
