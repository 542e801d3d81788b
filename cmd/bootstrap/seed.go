package bootstrap

import (
	"context"
	"log/slog"

	"dealership-api/internal/infra/seed"
	"dealership-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// SeedModule loads the demo inventory fixture on startup when
// SEED_DEMO_DATA is enabled. Seeding is idempotent.
var SeedModule = fx.Module("seed",
	fx.Invoke(func(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) {
		if !cfg.App.SeedDemoData {
			return
		}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return seed.Run(ctx, pool, logger)
			},
		})
	}),
)
