package bootstrap

import (
	"dealership-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	MailModule,
	SeedModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
