package components

import (
	"dealership-api/internal/handler"
	"dealership-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCarHandler,
		api.NewTestDriveHandler,
	),
	fx.Invoke(handler.NewRouter),
)
