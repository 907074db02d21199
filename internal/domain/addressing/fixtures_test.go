package addressing

import (
	"context"
	"sync"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/geometry"
	"addressing/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Metric fixture network shared by the scenario tests.
var (
	majorRoad = &entity.Road{
		ID: 1, RoadID: 1, Category: entity.RoadCategoryMajor, Name: "Ring Road",
		Geometry: orb.LineString{{0, 0}, {0, 200}},
	}
	subsidiaryRoad = &entity.Road{
		ID: 2, RoadID: 2, Category: entity.RoadCategorySubsidiary, Name: "Lane 2",
		Geometry: orb.LineString{{3, 50}, {100, 50}},
	}
	branchRoad = &entity.Road{
		ID: 20, RoadID: 20, Category: entity.RoadCategorySubsidiary, Name: "Lane 20",
		Geometry: orb.LineString{{50, 53}, {50, 150}},
	}
	isolatedRoad = &entity.Road{
		ID: 3, RoadID: 3, Category: entity.RoadCategorySubsidiary, Name: "Lane 3",
		Geometry: orb.LineString{{500, 500}, {600, 500}},
	}
	cycleA = &entity.Road{
		ID: 10, RoadID: 10, Category: entity.RoadCategorySubsidiary, Name: "Loop A",
		Geometry: orb.LineString{{1000, 1000}, {1100, 1000}},
	}
	cycleB = &entity.Road{
		ID: 11, RoadID: 11, Category: entity.RoadCategorySubsidiary, Name: "Loop B",
		Geometry: orb.LineString{{1000, 1003}, {900, 1003}},
	}
)

func fixtureRoads() []*entity.Road {
	return []*entity.Road{majorRoad, subsidiaryRoad, branchRoad, isolatedRoad, cycleA, cycleB}
}

// bruteLocator scans every road and counts queries.
type bruteLocator struct {
	mu    sync.Mutex
	roads []*entity.Road
	calls int
	radii []float64
}

func newBruteLocator(roads ...*entity.Road) *bruteLocator {
	return &bruteLocator{roads: roads}
}

func (l *bruteLocator) IntersectingRoads(_ context.Context, center orb.Point, radius float64, excludeRoadID int64) ([]service.RoadHit, error) {
	l.mu.Lock()
	l.calls++
	l.radii = append(l.radii, radius)
	l.mu.Unlock()

	var hits []service.RoadHit
	for _, road := range l.roads {
		if road.RoadID == excludeRoadID {
			continue
		}
		line, err := geometry.NewLine(road.Geometry)
		if err != nil {
			return nil, err
		}
		dist := planar.Distance(line.Interpolate(line.ProjectPoint(center)), center)
		if dist <= radius {
			hits = append(hits, service.RoadHit{
				RoadID:   road.RoadID,
				Category: road.Category,
				Name:     road.Name,
				Geometry: road.Geometry,
				Distance: dist,
			})
		}
	}

	return hits, nil
}

func (l *bruteLocator) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.calls
}

// stubLocator returns canned hits regardless of the query.
type stubLocator struct {
	hits []service.RoadHit
}

func (s *stubLocator) IntersectingRoads(context.Context, orb.Point, float64, int64) ([]service.RoadHit, error) {
	return s.hits, nil
}

func chainRoadOf(road *entity.Road) ChainRoad {
	line, err := geometry.NewLine(road.Geometry)
	if err != nil {
		panic(err)
	}

	return ChainRoad{RoadID: road.RoadID, Category: road.Category, Name: road.Name, Line: line}
}

func mustLine(g orb.Geometry) geometry.Line {
	line, err := geometry.NewLine(g)
	if err != nil {
		panic(err)
	}

	return line
}
