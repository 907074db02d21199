// Package spatial provides an in-memory road locator for batch runs that
// should not hit PostGIS once per connection search.
package spatial

import (
	"context"
	"math"
	"sort"
	"sync"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/geometry"
	"addressing/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const defaultCellSize = 50.0

// GridLocator buckets metric road segments into square cells. A query only
// measures roads registered in the cells its search circle overlaps.
type GridLocator struct {
	mu       sync.RWMutex
	cellSize float64
	roads    []indexedRoad
	grid     map[gridKey][]int // cell -> road indices, one entry per road
}

type indexedRoad struct {
	roadID   int64
	category entity.RoadCategory
	name     string
	geometry orb.Geometry // Metric CRS.
}

type gridKey struct {
	col int
	row int
}

// NewGridLocator creates an empty grid; cellSize is in metric units.
func NewGridLocator(cellSize float64) *GridLocator {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}

	return &GridLocator{
		cellSize: cellSize,
		grid:     make(map[gridKey][]int),
	}
}

// Build replaces the index with roads, projecting each through projector.
func (g *GridLocator) Build(roads []*entity.Road, projector geometry.Projector) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.roads = make([]indexedRoad, 0, len(roads))
	g.grid = make(map[gridKey][]int)

	for _, road := range roads {
		if road == nil || road.Geometry == nil {
			continue
		}
		metric := projector.ToMetric(road.Geometry)

		idx := len(g.roads)
		g.roads = append(g.roads, indexedRoad{
			roadID:   road.RoadID,
			category: road.Category,
			name:     road.Name,
			geometry: metric,
		})

		for key := range g.segmentCells(metric) {
			g.grid[key] = append(g.grid[key], idx)
		}
	}
}

// Size returns the number of indexed roads.
func (g *GridLocator) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.roads)
}

// IntersectingRoads implements service.RoadLocator.
func (g *GridLocator) IntersectingRoads(ctx context.Context, center orb.Point, radius float64, excludeRoadID int64) ([]service.RoadHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	lo := g.cellOf(orb.Point{center.X() - radius, center.Y() - radius})
	hi := g.cellOf(orb.Point{center.X() + radius, center.Y() + radius})

	seen := make(map[int]struct{})
	var hits []service.RoadHit
	for col := lo.col; col <= hi.col; col++ {
		for row := lo.row; row <= hi.row; row++ {
			for _, idx := range g.grid[gridKey{col: col, row: row}] {
				if _, done := seen[idx]; done {
					continue
				}
				seen[idx] = struct{}{}

				road := g.roads[idx]
				if road.roadID == excludeRoadID {
					continue
				}

				dist := planar.DistanceFrom(road.geometry, center)
				if dist > radius {
					continue
				}

				hits = append(hits, service.RoadHit{
					RoadID:   road.roadID,
					Category: road.category,
					Name:     road.name,
					Geometry: road.geometry,
					Distance: dist,
				})
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].RoadID < hits[j].RoadID })

	return hits, nil
}

func (g *GridLocator) cellOf(p orb.Point) gridKey {
	return gridKey{
		col: int(math.Floor(p.X() / g.cellSize)),
		row: int(math.Floor(p.Y() / g.cellSize)),
	}
}

// segmentCells returns every cell touched by the bounding box of each segment.
func (g *GridLocator) segmentCells(geom orb.Geometry) map[gridKey]struct{} {
	cells := make(map[gridKey]struct{})

	var lines []orb.LineString
	switch typed := geom.(type) {
	case orb.LineString:
		lines = []orb.LineString{typed}
	case orb.MultiLineString:
		lines = typed
	default:
		bound := geom.Bound()
		lines = []orb.LineString{{bound.Min, bound.Max}}
	}

	for _, ls := range lines {
		if len(ls) == 1 {
			cells[g.cellOf(ls[0])] = struct{}{}
		}
		for i := 1; i < len(ls); i++ {
			lo := g.cellOf(orb.Point{math.Min(ls[i-1].X(), ls[i].X()), math.Min(ls[i-1].Y(), ls[i].Y())})
			hi := g.cellOf(orb.Point{math.Max(ls[i-1].X(), ls[i].X()), math.Max(ls[i-1].Y(), ls[i].Y())})
			for col := lo.col; col <= hi.col; col++ {
				for row := lo.row; row <= hi.row; row++ {
					cells[gridKey{col: col, row: row}] = struct{}{}
				}
			}
		}
	}

	return cells
}
