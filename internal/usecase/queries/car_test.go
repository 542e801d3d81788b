//go:build unit

package queries_test

import (
	"context"
	"testing"

	"dealership-api/internal/domain/car"
	"dealership-api/internal/infra"
	"dealership-api/internal/pkg/errs"
	"dealership-api/internal/usecase/queries"
	queriesmock "dealership-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCarQueries(t *testing.T) (queries.CarQueries, *queriesmock.MockCarReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCarReadStore(ctrl)
	return queries.NewCarQueries(store), store
}

func inventory() []car.Car {
	return []car.Car{
		{ID: 1, Brand: "BMW", Model: "X5", Price: 35000, Horsepower: 250, Color: "Black", FuelType: car.FuelPetrol, Status: car.StatusAvailable},
		{ID: 2, Brand: "BMW", Model: "320i", Price: 25000, Horsepower: 184, Color: "Red", FuelType: car.FuelPetrol, Status: car.StatusSold},
	}
}

func TestCarQueries_List(t *testing.T) {
	q, store := newCarQueries(t)

	want := inventory()
	store.EXPECT().FindAll(gomock.Any()).Return(want, nil).Times(1)

	got, err := q.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestCarQueries_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		q, store := newCarQueries(t)
		want := inventory()[0]
		store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&want, nil).Times(1)

		got, err := q.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(want, *got))
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("car not found", errs.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := q.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, errs.ErrCarNotFound)
	})

	t.Run("store failure propagates untranslated", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(nil, infra.WrapRepoErr("query failed", errs.New("connection reset"))).Times(1)

		_, err := q.GetByID(context.Background(), 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrCarNotFound)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCarQueries_SearchByBrand(t *testing.T) {
	q, store := newCarQueries(t)

	store.EXPECT().FindByBrand(gomock.Any(), "BMW").Return(inventory(), nil).Times(1)

	got, err := q.SearchByBrand(context.Background(), "BMW")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCarQueries_SearchByPriceRange(t *testing.T) {
	t.Run("valid range reaches the store", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByPriceBetween(gomock.Any(), 10000, 30000).Return(inventory()[1:], nil).Times(1)

		got, err := q.SearchByPriceRange(context.Background(), 10000, 30000)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("single-point range is legal", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByPriceBetween(gomock.Any(), 25000, 25000).Return(inventory()[1:], nil).Times(1)

		got, err := q.SearchByPriceRange(context.Background(), 25000, 25000)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("malformed bounds never reach the store", func(t *testing.T) {
		tests := []struct {
			name     string
			min, max int
		}{
			{name: "min greater than max", min: 300, max: 200},
			{name: "negative min", min: -1, max: 100},
			{name: "negative max", min: 0, max: -100},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q, _ := newCarQueries(t)
				_, err := q.SearchByPriceRange(context.Background(), tt.min, tt.max)
				assert.ErrorIs(t, err, errs.ErrInvalidRange)
			})
		}
	})
}

func TestCarQueries_SearchByColor(t *testing.T) {
	t.Run("color is passed through for case-insensitive match", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByColorIgnoreCase(gomock.Any(), "RED").Return(inventory()[1:], nil).Times(1)

		got, err := q.SearchByColor(context.Background(), "RED")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("blank color is rejected before the store", func(t *testing.T) {
		for _, color := range []string{"", "   ", "\t"} {
			q, _ := newCarQueries(t)
			_, err := q.SearchByColor(context.Background(), color)
			assert.ErrorIs(t, err, errs.ErrBlankColor, "input %q", color)
		}
	})
}

func TestCarQueries_SearchByFuelType(t *testing.T) {
	t.Run("known value is parsed and forwarded", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByFuelType(gomock.Any(), car.FuelPetrol).Return(inventory(), nil).Times(1)

		got, err := q.SearchByFuelType(context.Background(), "PETROL")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unknown value is rejected before the store", func(t *testing.T) {
		q, _ := newCarQueries(t)
		_, err := q.SearchByFuelType(context.Background(), "KEROSENE")
		assert.ErrorIs(t, err, errs.ErrUnknownFuelType)
	})
}

func TestCarQueries_SearchByStatus(t *testing.T) {
	t.Run("known value is parsed and forwarded", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByStatus(gomock.Any(), car.StatusSold).Return(inventory()[1:], nil).Times(1)

		got, err := q.SearchByStatus(context.Background(), "SOLD")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown value is rejected before the store", func(t *testing.T) {
		q, _ := newCarQueries(t)
		_, err := q.SearchByStatus(context.Background(), "sold")
		assert.ErrorIs(t, err, errs.ErrUnknownStatus)
	})
}

func TestCarQueries_SearchByHorsepowerRange(t *testing.T) {
	t.Run("valid range reaches the store", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByHorsepowerBetween(gomock.Any(), 100, 200).Return(inventory()[1:], nil).Times(1)

		got, err := q.SearchByHorsepowerRange(context.Background(), 100, 200)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("empty result stays an empty slice", func(t *testing.T) {
		q, store := newCarQueries(t)
		store.EXPECT().FindByHorsepowerBetween(gomock.Any(), 900, 1000).Return([]car.Car{}, nil).Times(1)

		got, err := q.SearchByHorsepowerRange(context.Background(), 900, 1000)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("malformed bounds never reach the store", func(t *testing.T) {
		q, _ := newCarQueries(t)
		_, err := q.SearchByHorsepowerRange(context.Background(), 500, 100)
		assert.ErrorIs(t, err, errs.ErrInvalidRange)
	})
}
