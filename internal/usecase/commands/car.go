package commands

import (
	"context"
	"log/slog"
	"strings"

	"dealership-api/internal/domain/car"
	"dealership-api/internal/infra"
	"dealership-api/internal/pkg/errs"
)

// ValidationError carries the complete violation set for a rejected write.
// Nothing is persisted when it is returned.
type ValidationError struct {
	Violations []car.Violation
}

func (e *ValidationError) Error() string {
	return "car validation failed: " + strings.Join(car.Messages(e.Violations), "; ")
}

func (e *ValidationError) Messages() []string {
	return car.Messages(e.Violations)
}

type CreateCarResult struct {
	CarID int64
}

type CarCommands interface {
	Create(ctx context.Context, c car.Car) (*CreateCarResult, error)
	Update(ctx context.Context, id int64, c car.Car) (*car.Car, error)
	Delete(ctx context.Context, id int64) error
}

type carCommandsImpl struct {
	repo   CarRepository
	logger *slog.Logger
}

func NewCarCommands(repo CarRepository, logger *slog.Logger) CarCommands {
	return &carCommandsImpl{repo: repo, logger: logger}
}

func (uc *carCommandsImpl) Create(ctx context.Context, c car.Car) (*CreateCarResult, error) {
	if violations := car.Validate(c); len(violations) > 0 {
		uc.logger.Warn("car validation failed",
			"car_id", c.ID,
			"errors", car.Messages(violations))
		return nil, &ValidationError{Violations: violations}
	}

	c.ID = 0 // identity is assigned by the store
	saved, err := uc.repo.Save(ctx, &c)
	if err != nil {
		return nil, err
	}
	return &CreateCarResult{CarID: saved.ID}, nil
}

func (uc *carCommandsImpl) Update(ctx context.Context, id int64, c car.Car) (*car.Car, error) {
	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrCarNotFound
	}

	if violations := car.Validate(c); len(violations) > 0 {
		uc.logger.Warn("car update validation failed",
			"car_id", id,
			"errors", car.Messages(violations))
		return nil, &ValidationError{Violations: violations}
	}

	c.ID = id
	return uc.repo.Save(ctx, &c)
}

func (uc *carCommandsImpl) Delete(ctx context.Context, id int64) error {
	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		uc.logger.Warn("car does not exist", "car_id", id)
		return errs.ErrCarNotFound
	}

	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrCarNotFound
		}
		return err
	}
	uc.logger.Info("car deleted", "car_id", id)
	return nil
}
