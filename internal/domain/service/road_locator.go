package service

import (
	"context"

	"addressing/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RoadHit is a road whose geometry intersects a search buffer.
type RoadHit struct {
	RoadID   int64
	Category entity.RoadCategory
	Name     string
	Geometry orb.Geometry // Metric CRS.
	Distance float64      // Planar distance from the buffer centre.
}

// RoadLocator is the spatial read capability used to resolve road connections.
type RoadLocator interface {
	// IntersectingRoads returns roads whose geometry intersects the circle of
	// radius around center, both in the metric CRS. Roads with excludeRoadID are skipped.
	IntersectingRoads(ctx context.Context, center orb.Point, radius float64, excludeRoadID int64) ([]RoadHit, error)
}
