package car

import "strings"

const MinProductionYear = 1900

// Violation is a single validation failure tied to one field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate runs every field check and accumulates all violations so the
// caller sees the full defect set in one pass. An empty result means the car
// is valid. Checks never short-circuit.
func Validate(c Car) []Violation {
	var violations []Violation

	if strings.TrimSpace(c.Brand) == "" {
		violations = append(violations, Violation{Field: "brand", Message: "Brand must not be empty"})
	}
	if strings.TrimSpace(c.Model) == "" {
		violations = append(violations, Violation{Field: "model", Message: "Model must not be empty"})
	}
	if c.ProductionYear < MinProductionYear {
		violations = append(violations, Violation{Field: "productionYear", Message: "Production year must be >= 1900"})
	}
	if c.Mileage < 0 {
		violations = append(violations, Violation{Field: "mileage", Message: "Mileage must be >= 0"})
	}
	if c.Price < 1 {
		violations = append(violations, Violation{Field: "price", Message: "Price must be >= 1"})
	}
	if !c.Status.Valid() {
		violations = append(violations, Violation{Field: "status", Message: "Status must not be null"})
	}
	if strings.TrimSpace(c.Color) == "" {
		violations = append(violations, Violation{Field: "color", Message: "Color must not be empty"})
	}
	if c.Horsepower < 1 {
		violations = append(violations, Violation{Field: "horsepower", Message: "Horse power must be >= 1"})
	}
	if !c.FuelType.Valid() {
		violations = append(violations, Violation{Field: "fuelType", Message: "FuelType must not be null"})
	}
	if !c.Transmission.Valid() {
		violations = append(violations, Violation{Field: "transmission", Message: "Transmission must not be null"})
	}

	return violations
}

// IsValid reports whether Validate finds no violations.
func IsValid(c Car) bool {
	return len(Validate(c)) == 0
}

// Messages flattens violations into their human-readable messages.
func Messages(violations []Violation) []string {
	msgs := make([]string, len(violations))
	for i, v := range violations {
		msgs[i] = v.Message
	}
	return msgs
}
