package queries

import (
	"context"
	"strings"

	"dealership-api/internal/domain/car"
	"dealership-api/internal/infra"
	"dealership-api/internal/pkg/errs"
)

// CarReadStore is the predicate catalog over the inventory collection: one
// method per supported filter. List methods preserve store iteration order
// and return an empty slice on no match, never an error.
type CarReadStore interface {
	FindAll(ctx context.Context) ([]car.Car, error)
	FindByID(ctx context.Context, id int64) (*car.Car, error)
	FindByBrand(ctx context.Context, brand string) ([]car.Car, error)
	FindByPriceBetween(ctx context.Context, min, max int) ([]car.Car, error)
	FindByColorIgnoreCase(ctx context.Context, color string) ([]car.Car, error)
	FindByFuelType(ctx context.Context, fuelType car.FuelType) ([]car.Car, error)
	FindByStatus(ctx context.Context, status car.Status) ([]car.Car, error)
	FindByHorsepowerBetween(ctx context.Context, minHp, maxHp int) ([]car.Car, error)
}

type CarQueries interface {
	List(ctx context.Context) ([]car.Car, error)
	GetByID(ctx context.Context, id int64) (*car.Car, error)
	SearchByBrand(ctx context.Context, brand string) ([]car.Car, error)
	SearchByPriceRange(ctx context.Context, min, max int) ([]car.Car, error)
	SearchByColor(ctx context.Context, color string) ([]car.Car, error)
	SearchByFuelType(ctx context.Context, raw string) ([]car.Car, error)
	SearchByStatus(ctx context.Context, raw string) ([]car.Car, error)
	SearchByHorsepowerRange(ctx context.Context, minHp, maxHp int) ([]car.Car, error)
}

type carQueriesImpl struct {
	store CarReadStore
}

func NewCarQueries(store CarReadStore) CarQueries {
	return &carQueriesImpl{store: store}
}

func (q *carQueriesImpl) List(ctx context.Context) ([]car.Car, error) {
	return q.store.FindAll(ctx)
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id int64) (*car.Car, error) {
	found, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCarNotFound
		}
		return nil, err
	}
	return found, nil
}

func (q *carQueriesImpl) SearchByBrand(ctx context.Context, brand string) ([]car.Car, error) {
	return q.store.FindByBrand(ctx, brand)
}

// Range filters reject malformed bounds before the store is touched; bounds
// are inclusive and min == max is a legal single-point range.
func (q *carQueriesImpl) SearchByPriceRange(ctx context.Context, min, max int) ([]car.Car, error) {
	if err := validateRange(min, max); err != nil {
		return nil, err
	}
	return q.store.FindByPriceBetween(ctx, min, max)
}

func (q *carQueriesImpl) SearchByColor(ctx context.Context, color string) ([]car.Car, error) {
	if strings.TrimSpace(color) == "" {
		return nil, errs.ErrBlankColor
	}
	return q.store.FindByColorIgnoreCase(ctx, color)
}

func (q *carQueriesImpl) SearchByFuelType(ctx context.Context, raw string) ([]car.Car, error) {
	fuelType, err := car.ParseFuelType(raw)
	if err != nil {
		return nil, err
	}
	return q.store.FindByFuelType(ctx, fuelType)
}

func (q *carQueriesImpl) SearchByStatus(ctx context.Context, raw string) ([]car.Car, error) {
	status, err := car.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return q.store.FindByStatus(ctx, status)
}

func (q *carQueriesImpl) SearchByHorsepowerRange(ctx context.Context, minHp, maxHp int) ([]car.Car, error) {
	if err := validateRange(minHp, maxHp); err != nil {
		return nil, err
	}
	return q.store.FindByHorsepowerBetween(ctx, minHp, maxHp)
}

func validateRange(min, max int) error {
	if min < 0 || max < 0 || min > max {
		return errs.ErrInvalidRange
	}
	return nil
}
