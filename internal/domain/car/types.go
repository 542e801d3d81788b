package car

import "dealership-api/internal/pkg/errs"

// Closed enumerations stored as text. Unknown string values are rejected at
// the boundary by the ParseX functions rather than coerced.

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusSold      Status = "SOLD"
	StatusReserved  Status = "RESERVED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusSold, StatusReserved:
		return Status(s), nil
	}
	return "", errs.ErrUnknownStatus
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) String() string { return string(s) }

type FuelType string

const (
	FuelPetrol   FuelType = "PETROL"
	FuelDiesel   FuelType = "DIESEL"
	FuelHybrid   FuelType = "HYBRID"
	FuelElectric FuelType = "ELECTRIC"
)

func ParseFuelType(s string) (FuelType, error) {
	switch FuelType(s) {
	case FuelPetrol, FuelDiesel, FuelHybrid, FuelElectric:
		return FuelType(s), nil
	}
	return "", errs.ErrUnknownFuelType
}

func (f FuelType) Valid() bool {
	_, err := ParseFuelType(string(f))
	return err == nil
}

func (f FuelType) String() string { return string(f) }

type Transmission string

const (
	TransmissionAutomatic Transmission = "AUTOMATIC"
	TransmissionManual    Transmission = "MANUAL"
)

func ParseTransmission(s string) (Transmission, error) {
	switch Transmission(s) {
	case TransmissionAutomatic, TransmissionManual:
		return Transmission(s), nil
	}
	return "", errs.ErrUnknownTransmission
}

func (t Transmission) Valid() bool {
	_, err := ParseTransmission(string(t))
	return err == nil
}

func (t Transmission) String() string { return string(t) }
