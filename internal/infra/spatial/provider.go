package spatial

import (
	"context"
	"log/slog"
	"time"

	"addressing/config"
	"addressing/internal/domain/constants"
	"addressing/internal/domain/geometry"
	"addressing/internal/domain/repository"
	"addressing/internal/domain/service"
	"addressing/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// LocatorParams holds dependencies for the road locator, injected by Fx
type LocatorParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	DB       *gorm.DB
	RoadRepo repository.RoadRepository
}

// NewRoadLocator picks the locator named by cfg.Addressing.Locator. The
// memory grid is loaded from the road table on start.
func NewRoadLocator(params LocatorParams) (service.RoadLocator, error) {
	cfg := params.Config.Addressing

	switch cfg.Locator {
	case constants.LocatorPostGIS:
		params.Logger.Info("Using PostGIS road locator", slog.Int("srid", cfg.SRID))

		return postgres.NewRoadLocator(params.DB, params.Config, params.Logger), nil

	case constants.LocatorMemory:
		grid := NewGridLocator(cfg.GridCellSize)
		projector := geometry.NewUTM(cfg.UTMZone, cfg.Northern)

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				start := time.Now()

				roads, err := params.RoadRepo.ListRoads(ctx)
				if err != nil {
					return errors.Wrap(err, "load roads into grid locator")
				}
				grid.Build(roads, projector)

				params.Logger.InfoContext(ctx, "Road grid built",
					slog.Int("roads", grid.Size()),
					slog.Float64("cell_size", cfg.GridCellSize),
					slog.Duration("took", time.Since(start)),
				)

				return nil
			},
		})

		return grid, nil

	default:
		return nil, errors.Errorf("unknown road locator: %s", cfg.Locator)
	}
}

// Module provides the road locator FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRoadLocator),
)
