package response

import (
	"dealership-api/internal/domain/car"
)

type CarResponse struct {
	ID             int64  `json:"id"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	ProductionYear int    `json:"productionYear"`
	Mileage        int    `json:"mileage"`
	Price          int    `json:"price"`
	Status         string `json:"status"`
	Color          string `json:"color"`
	Horsepower     int    `json:"horsepower"`
	FuelType       string `json:"fuelType"`
	Transmission   string `json:"transmission"`
}

func FromCar(c *car.Car) *CarResponse {
	return &CarResponse{
		ID:             c.ID,
		Brand:          c.Brand,
		Model:          c.Model,
		ProductionYear: c.ProductionYear,
		Mileage:        c.Mileage,
		Price:          c.Price,
		Status:         c.Status.String(),
		Color:          c.Color,
		Horsepower:     c.Horsepower,
		FuelType:       c.FuelType.String(),
		Transmission:   c.Transmission.String(),
	}
}

func FromCarList(cars []car.Car) []*CarResponse {
	result := make([]*CarResponse, len(cars))
	for i := range cars {
		result[i] = FromCar(&cars[i])
	}
	return result
}
