package commands

import (
	"context"

	"dealership-api/internal/domain/car"
)

// CarRepository is the write-side store port. Save assigns an identity when
// the car's ID is zero and replaces the matching record otherwise.
type CarRepository interface {
	FindByID(ctx context.Context, id int64) (*car.Car, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, c *car.Car) (*car.Car, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Mailer hands a rendered message to the external mail transport. One
// outbound message per call; retry policy, if any, belongs to the transport.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// TemplateRenderer resolves a named template and substitutes context values
// into it, producing a finished body or a fatal render error.
type TemplateRenderer interface {
	Render(name string, data any) (string, error)
}
