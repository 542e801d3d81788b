package repository

import (
	"context"
	"errors"

	"dealership-api/internal/domain/car"
	"dealership-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const carColumns = "id, brand, model, production_year, mileage, price, status, color, horsepower, fuel_type, transmission"

// CarRepository implements both the write-side store port and the read-side
// predicate catalog over Postgres. List queries order by id so callers see a
// stable store iteration order.
type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

func (r *CarRepository) FindAll(ctx context.Context) ([]car.Car, error) {
	return r.queryCars(ctx, "SELECT "+carColumns+" FROM cars ORDER BY id")
}

func (r *CarRepository) FindByID(ctx context.Context, id int64) (*car.Car, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+carColumns+" FROM cars WHERE id = $1", id)
	c, err := scanCar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by id", err)
	}
	return c, nil
}

func (r *CarRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check car existence", err)
	}
	return exists, nil
}

func (r *CarRepository) Save(ctx context.Context, c *car.Car) (*car.Car, error) {
	if c.ID == 0 {
		return r.insert(ctx, c)
	}
	return r.update(ctx, c)
}

func (r *CarRepository) insert(ctx context.Context, c *car.Car) (*car.Car, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO cars (brand, model, production_year, mileage, price, status, color, horsepower, fuel_type, transmission)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		c.Brand, c.Model, c.ProductionYear, c.Mileage, c.Price,
		c.Status.String(), c.Color, c.Horsepower, c.FuelType.String(), c.Transmission.String(),
	).Scan(&c.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert car", err)
	}
	return c, nil
}

func (r *CarRepository) update(ctx context.Context, c *car.Car) (*car.Car, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE cars
		 SET brand = $1, model = $2, production_year = $3, mileage = $4, price = $5,
		     status = $6, color = $7, horsepower = $8, fuel_type = $9, transmission = $10
		 WHERE id = $11`,
		c.Brand, c.Model, c.ProductionYear, c.Mileage, c.Price,
		c.Status.String(), c.Color, c.Horsepower, c.FuelType.String(), c.Transmission.String(),
		c.ID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update car", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (r *CarRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM cars WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) FindByBrand(ctx context.Context, brand string) ([]car.Car, error) {
	return r.queryCars(ctx, "SELECT "+carColumns+" FROM cars WHERE brand = $1 ORDER BY id", brand)
}

func (r *CarRepository) FindByPriceBetween(ctx context.Context, min, max int) ([]car.Car, error) {
	return r.queryCars(ctx, "SELECT "+carColumns+" FROM cars WHERE price BETWEEN $1 AND $2 ORDER BY id", min, max)
}

func (r *CarRepository) FindByColorIgnoreCase(ctx context.Context, color string) ([]car.Car, error) {
	return r.queryCars(ctx, "SELECT "+carColumns+" FROM cars WHERE LOWER(color) = LOWER($1) ORDER BY id", color)
}

func (r *CarRepository) FindByFuelType(ctx context.Context, fuelType car.FuelType) ([]car.Car, error) {
	return r.queryCars(ctx, "SELECT "+carColumns+" FROM cars WHERE fuel_type = $1 ORDER BY id", fuelType.String())
}

func (r *CarRepository) FindByStatus(ctx context.Context, status car.Status) ([]car.Car, error) {
	return r.queryCars(ctx, "SELECT "+carColumns+" FROM cars WHERE status = $1 ORDER BY id", status.String())
}

func (r *CarRepository) FindByHorsepowerBetween(ctx context.Context, minHp, maxHp int) ([]car.Car, error) {
	return r.queryCars(ctx, "SELECT "+carColumns+" FROM cars WHERE horsepower BETWEEN $1 AND $2 ORDER BY id", minHp, maxHp)
}

func (r *CarRepository) queryCars(ctx context.Context, sql string, args ...any) ([]car.Car, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query cars", err)
	}
	defer rows.Close()

	cars := make([]car.Car, 0)
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		cars = append(cars, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car rows", err)
	}
	return cars, nil
}

func scanCar(row pgx.Row) (*car.Car, error) {
	var c car.Car
	var status, fuelType, transmission string
	err := row.Scan(
		&c.ID, &c.Brand, &c.Model, &c.ProductionYear, &c.Mileage, &c.Price,
		&status, &c.Color, &c.Horsepower, &fuelType, &transmission,
	)
	if err != nil {
		return nil, err
	}
	// Stored values passed validation on write; keep unknown text visible
	// rather than failing the whole read.
	c.Status = car.Status(status)
	c.FuelType = car.FuelType(fuelType)
	c.Transmission = car.Transmission(transmission)
	return &c, nil
}
