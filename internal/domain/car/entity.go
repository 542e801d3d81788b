package car

// Car is the persisted inventory record. ID is zero until the store assigns
// one on first insert and immutable afterwards.
type Car struct {
	ID             int64        `json:"id"`
	Brand          string       `json:"brand"`
	Model          string       `json:"model"`
	ProductionYear int          `json:"productionYear"`
	Mileage        int          `json:"mileage"`
	Price          int          `json:"price"`
	Status         Status       `json:"status"`
	Color          string       `json:"color"`
	Horsepower     int          `json:"horsepower"`
	FuelType       FuelType     `json:"fuelType"`
	Transmission   Transmission `json:"transmission"`
}
