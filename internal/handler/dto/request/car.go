package request

import (
	"dealership-api/internal/domain/car"
)

// CarRequest carries enum fields as raw strings; unknown values are rejected
// by ToDomain at the boundary, while missing ones flow into the validator so
// the caller receives the accumulated violation list instead of a bind error.
type CarRequest struct {
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

func (r *CarRequest) ToDomain() (car.Car, error) {
	c := car.Car{
		Brand:          r.Brand,
		Model:          r.Model,
		ProductionYear: r.ProductionYear,
		Mileage:        r.Mileage,
		Price:          r.Price,
		Color:          r.Color,
		Horsepower:     r.Horsepower,
	}

	if r.Status != "" {
		status, err := car.ParseStatus(r.Status)
		if err != nil {
			return car.Car{}, err
		}
		c.Status = status
	}
	if r.FuelType != "" {
		fuelType, err := car.ParseFuelType(r.FuelType)
		if err != nil {
			return car.Car{}, err
		}
		c.FuelType = fuelType
	}
	if r.Transmission != "" {
		transmission, err := car.ParseTransmission(r.Transmission)
		if err != nil {
			return car.Car{}, err
		}
		c.Transmission = transmission
	}

	return c, nil
}
