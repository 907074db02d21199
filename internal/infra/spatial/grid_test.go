package spatial

import (
	"context"
	"testing"

	"addressing/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identity leaves coordinates untouched so fixtures can be written in metres.
type identity struct{}

func (identity) ToMetric(g orb.Geometry) orb.Geometry { return g }
func (identity) ToMetricPoint(p orb.Point) orb.Point  { return p }

func testRoads() []*entity.Road {
	return []*entity.Road{
		{ID: 1, RoadID: 1, Category: entity.RoadCategoryMajor, Name: "Ring Road", Geometry: orb.LineString{{0, 0}, {0, 400}}},
		{ID: 2, RoadID: 2, Category: entity.RoadCategorySubsidiary, Name: "Lane 2", Geometry: orb.LineString{{3, 50}, {100, 50}}},
		{ID: 3, RoadID: 3, Category: entity.RoadCategoryMinor, Name: "Hill Road", Geometry: orb.MultiLineString{
			{{300, 300}, {350, 300}},
			{{350, 300}, {350, 380}},
		}},
	}
}

func TestGridLocator_FindsRoadsWithinRadius(t *testing.T) {
	grid := NewGridLocator(20)
	grid.Build(testRoads(), identity{})
	require.Equal(t, 3, grid.Size())

	hits, err := grid.IntersectingRoads(context.Background(), orb.Point{3, 50}, 5, 2)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	assert.Equal(t, int64(1), hits[0].RoadID)
	assert.Equal(t, entity.RoadCategoryMajor, hits[0].Category)
	assert.Equal(t, "Ring Road", hits[0].Name)
	assert.InDelta(t, 3.0, hits[0].Distance, 1e-9)
}

func TestGridLocator_SegmentSpanningManyCells(t *testing.T) {
	grid := NewGridLocator(10)
	grid.Build(testRoads(), identity{})

	// The road 1 segment is one edge crossing forty cells.
	hits, err := grid.IntersectingRoads(context.Background(), orb.Point{4, 333}, 5, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(1), hits[0].RoadID)
}

func TestGridLocator_ExcludesRoadAndRespectsRadius(t *testing.T) {
	grid := NewGridLocator(50)
	grid.Build(testRoads(), identity{})

	hits, err := grid.IntersectingRoads(context.Background(), orb.Point{3, 50}, 5, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(2), hits[0].RoadID)

	hits, err = grid.IntersectingRoads(context.Background(), orb.Point{200, 200}, 15, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestGridLocator_MultiLineStringAndOrdering(t *testing.T) {
	grid := NewGridLocator(25)
	grid.Build(testRoads(), identity{})

	hits, err := grid.IntersectingRoads(context.Background(), orb.Point{355, 340}, 10, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(3), hits[0].RoadID)
	assert.InDelta(t, 5.0, hits[0].Distance, 1e-9)

	hits, err = grid.IntersectingRoads(context.Background(), orb.Point{2, 52}, 5, 0)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, int64(1), hits[0].RoadID)
	assert.Equal(t, int64(2), hits[1].RoadID)
}

func TestGridLocator_NegativeCoordinates(t *testing.T) {
	grid := NewGridLocator(10)
	grid.Build([]*entity.Road{
		{RoadID: 9, Category: entity.RoadCategorySubsidiary, Geometry: orb.LineString{{-25, -25}, {-5, -25}}},
	}, identity{})

	hits, err := grid.IntersectingRoads(context.Background(), orb.Point{-15, -21}, 5, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.InDelta(t, 4.0, hits[0].Distance, 1e-9)
}

func TestGridLocator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGridLocator(10).IntersectingRoads(ctx, orb.Point{}, 5, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
