package components

import (
	"dealership-api/internal/infra/repository"
	"dealership-api/internal/usecase/commands"
	"dealership-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCarRepository,
			fx.As(new(commands.CarRepository)),
			fx.As(new(queries.CarReadStore)),
		),
	),
)
