package migrate

import (
	"context"
	"fmt"

	"github.com/communityexpress/laundry-client/pkg/config"
	"github.com/communityexpress/laundry-client/pkg/db"
	"github.com/communityexpress/laundry-client/pkg/logger"
)

// MaybeRun applies embedded migrations when the feature flag is enabled.
// The local store belongs to a single client, so auto-run is the default.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	logg.Info(ctx, "running local store migrations")

	if err := Up(ctx, sqlDB); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "local store migrations completed")
	return nil
}
