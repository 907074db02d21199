package repository

import (
	"context"

	"addressing/internal/domain/entity"
	"addressing/internal/errors"
)

// Domain-specific errors for road persistence.
var (
	// ErrRoadNotFound is returned when no road has the requested road_id.
	ErrRoadNotFound = errors.New("road not found")
)

// RoadRepository defines the interface for road-related database operations.
// Roads are read-only to this service.
type RoadRepository interface {
	// FindRoadByRoadID retrieves the latest geometry revision of a road by its external road_id.
	FindRoadByRoadID(ctx context.Context, roadID int64) (*entity.Road, error)

	// ListRoads retrieves the latest revision of every road.
	ListRoads(ctx context.Context) ([]*entity.Road, error)
}
