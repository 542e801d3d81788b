package seed

import (
	"context"
	"log/slog"

	"dealership-api/internal/domain/car"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoCars is the fixed dealership fixture loaded at startup when
// SEED_DEMO_DATA is enabled.
var DemoCars = []car.Car{
	{Brand: "BMW", Model: "X5", ProductionYear: 2000, Mileage: 30000, Price: 35000, Status: car.StatusAvailable, Color: "Black", Horsepower: 250, FuelType: car.FuelPetrol, Transmission: car.TransmissionAutomatic},
	{Brand: "Audi", Model: "A4", ProductionYear: 2025, Mileage: 2000, Price: 25000, Status: car.StatusSold, Color: "White", Horsepower: 200, FuelType: car.FuelPetrol, Transmission: car.TransmissionAutomatic},
	{Brand: "BMW", Model: "320i", ProductionYear: 2016, Mileage: 85000, Price: 18500, Status: car.StatusAvailable, Color: "Blue", Horsepower: 180, FuelType: car.FuelDiesel, Transmission: car.TransmissionManual},
	{Brand: "Audi", Model: "A6", ProductionYear: 2020, Mileage: 50000, Price: 22000, Status: car.StatusAvailable, Color: "Gray", Horsepower: 220, FuelType: car.FuelPetrol, Transmission: car.TransmissionAutomatic},
	{Brand: "Mercedes", Model: "C200", ProductionYear: 2018, Mileage: 40000, Price: 27000, Status: car.StatusAvailable, Color: "Silver", Horsepower: 190, FuelType: car.FuelPetrol, Transmission: car.TransmissionAutomatic},
	{Brand: "Toyota", Model: "Camry", ProductionYear: 2019, Mileage: 60000, Price: 23000, Status: car.StatusSold, Color: "Red", Horsepower: 178, FuelType: car.FuelHybrid, Transmission: car.TransmissionAutomatic},
	{Brand: "Honda", Model: "Civic", ProductionYear: 2021, Mileage: 15000, Price: 21000, Status: car.StatusAvailable, Color: "Black", Horsepower: 158, FuelType: car.FuelPetrol, Transmission: car.TransmissionManual},
	{Brand: "Tesla", Model: "Model 3", ProductionYear: 2022, Mileage: 10000, Price: 40000, Status: car.StatusAvailable, Color: "White", Horsepower: 283, FuelType: car.FuelElectric, Transmission: car.TransmissionAutomatic},
	{Brand: "BMW", Model: "M3", ProductionYear: 2021, Mileage: 10000, Price: 55000, Status: car.StatusAvailable, Color: "Blue", Horsepower: 473, FuelType: car.FuelPetrol, Transmission: car.TransmissionManual},
	{Brand: "Audi", Model: "Q5", ProductionYear: 2019, Mileage: 30000, Price: 28000, Status: car.StatusSold, Color: "Gray", Horsepower: 248, FuelType: car.FuelPetrol, Transmission: car.TransmissionAutomatic},
	{Brand: "Toyota", Model: "Corolla", ProductionYear: 2018, Mileage: 70000, Price: 16000, Status: car.StatusAvailable, Color: "Silver", Horsepower: 132, FuelType: car.FuelPetrol, Transmission: car.TransmissionManual},
	{Brand: "Toyota", Model: "RAV4", ProductionYear: 2020, Mileage: 25000, Price: 27000, Status: car.StatusAvailable, Color: "Green", Horsepower: 203, FuelType: car.FuelHybrid, Transmission: car.TransmissionAutomatic},
}

// Run inserts the demo fixture once. Idempotent: a non-empty inventory is
// left untouched.
func Run(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	var count int64
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM cars").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Info("inventory already populated, skipping demo seed", "count", count)
		return nil
	}

	batch := &pgx.Batch{}
	for _, c := range DemoCars {
		batch.Queue(
			`INSERT INTO cars (brand, model, production_year, mileage, price, status, color, horsepower, fuel_type, transmission)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			c.Brand, c.Model, c.ProductionYear, c.Mileage, c.Price,
			c.Status.String(), c.Color, c.Horsepower, c.FuelType.String(), c.Transmission.String(),
		)
	}

	results := pool.SendBatch(ctx, batch)
	defer results.Close()
	for range DemoCars {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	logger.Info("demo inventory seeded", "count", len(DemoCars))
	return nil
}
