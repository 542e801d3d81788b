package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Inventory errors
	ErrCarNotFound = errors.New("car not found")

	// Search errors: malformed filter parameters, rejected before the store is queried
	ErrInvalidRange        = errors.New("invalid range: bounds must be non-negative and min <= max")
	ErrBlankColor          = errors.New("color must not be blank")
	ErrUnknownFuelType     = errors.New("unknown fuel type")
	ErrUnknownStatus       = errors.New("unknown car status")
	ErrUnknownTransmission = errors.New("unknown transmission")

	// Notification errors
	ErrDispatchFailed = errors.New("test drive email dispatch failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
