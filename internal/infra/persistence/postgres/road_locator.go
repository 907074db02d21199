package postgres

import (
	"context"
	"log/slog"

	"addressing/config"
	"addressing/internal/domain/entity"
	"addressing/internal/domain/service"
	"addressing/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Latest revision per road_id within radius of the point, measured in the metric CRS.
const intersectingRoadsSQL = `
SELECT DISTINCT ON (r.road_id)
	r.road_id, r.road_category, r.road_name_en,
	ST_AsBinary(ST_Transform(r.geom, @srid)) AS geom_wkb,
	ST_Distance(ST_Transform(r.geom, @srid), ST_SetSRID(ST_MakePoint(@x, @y), @srid)) AS distance
FROM roads AS r
WHERE ST_DWithin(ST_Transform(r.geom, @srid), ST_SetSRID(ST_MakePoint(@x, @y), @srid), @radius)
	AND r.road_id <> @exclude
ORDER BY r.road_id, r.id DESC`

// RoadLocator answers connection searches with PostGIS.
type RoadLocator struct {
	db      *gorm.DB
	srid    int
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRoadLocator creates a PostGIS-backed locator throttled to cfg.Addressing.SpatialQPS.
func NewRoadLocator(db *gorm.DB, cfg *config.Config, logger *slog.Logger) *RoadLocator {
	limit := rate.Inf
	burst := 1
	if qps := cfg.Addressing.SpatialQPS; qps > 0 {
		limit = rate.Limit(qps)
		burst = max(int(qps), 1)
	}

	return &RoadLocator{
		db:      db,
		srid:    cfg.Addressing.SRID,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// IntersectingRoads implements service.RoadLocator.
func (l *RoadLocator) IntersectingRoads(ctx context.Context, center orb.Point, radius float64, excludeRoadID int64) ([]service.RoadHit, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "spatial query limiter")
	}

	var rows []model.RoadHitRow
	err := l.db.WithContext(ctx).Raw(intersectingRoadsSQL, map[string]any{
		"srid":    l.srid,
		"x":       center.X(),
		"y":       center.Y(),
		"radius":  radius,
		"exclude": excludeRoadID,
	}).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query intersecting roads")
	}

	hits := make([]service.RoadHit, 0, len(rows))
	for _, row := range rows {
		category, err := entity.ParseRoadCategory(row.RoadCategory)
		if err != nil {
			l.logger.WarnContext(ctx, "Skipping road with unknown category",
				slog.Int64("road_id", row.RoadID),
				slog.String("category", row.RoadCategory),
			)

			continue
		}

		hits = append(hits, service.RoadHit{
			RoadID:   row.RoadID,
			Category: category,
			Name:     row.RoadNameEn,
			Geometry: row.Geom.Geometry,
			Distance: row.Distance,
		})
	}

	return hits, nil
}
