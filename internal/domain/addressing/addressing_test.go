package addressing

import (
	"context"
	"testing"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	northbound := mustLine(majorRoad.Geometry)
	eastbound := mustLine(subsidiaryRoad.Geometry)

	tests := []struct {
		name string
		gate orb.Point
		line string
		want entity.Direction
	}{
		{name: "west of northbound road", gate: orb.Point{-10, 120}, line: "north", want: entity.DirectionLeft},
		{name: "east of northbound road", gate: orb.Point{10, 120}, line: "north", want: entity.DirectionRight},
		{name: "north of eastbound road", gate: orb.Point{30, 55}, line: "east", want: entity.DirectionLeft},
		{name: "south of eastbound road", gate: orb.Point{30, 45}, line: "east", want: entity.DirectionRight},
		{name: "before the line start clamps near point", gate: orb.Point{5, -3}, line: "north", want: entity.DirectionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := northbound
			if tt.line == "east" {
				line = eastbound
			}
			assert.Equal(t, tt.want, Classify(tt.gate, line))
		})
	}
}

func TestRoundForSide(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		side     entity.Direction
		want     int64
	}{
		{name: "right zero", distance: 0, side: entity.DirectionRight, want: 0},
		{name: "left zero", distance: 0, side: entity.DirectionLeft, want: 0},
		{name: "right already even", distance: 50, side: entity.DirectionRight, want: 50},
		{name: "right odd rounds to closer even above", distance: 51.2, side: entity.DirectionRight, want: 52},
		{name: "right odd rounds to closer even below", distance: 50.6, side: entity.DirectionRight, want: 50},
		{name: "right half rounds to even", distance: 2.5, side: entity.DirectionRight, want: 2},
		{name: "left already odd", distance: 27, side: entity.DirectionLeft, want: 27},
		{name: "left even takes farther odd below", distance: 28.3, side: entity.DirectionLeft, want: 27},
		{name: "left even takes farther odd above", distance: 27.6, side: entity.DirectionLeft, want: 29},
		{name: "left half to even then farther odd", distance: 3.5, side: entity.DirectionLeft, want: 5},
		{name: "left exact even tie goes lower", distance: 28, side: entity.DirectionLeft, want: 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundForSide(tt.distance, tt.side))
		})
	}
}

func TestRoundForSide_Parity(t *testing.T) {
	for raw := 0.25; raw < 200; raw += 0.37 {
		right := RoundForSide(raw, entity.DirectionRight)
		left := RoundForSide(raw, entity.DirectionLeft)

		assert.Zero(t, right%2, "right %v -> %d", raw, right)
		assert.NotZero(t, left%2, "left %v -> %d", raw, left)
	}
}

func TestAllocateUnique(t *testing.T) {
	existing := map[int64]struct{}{119: {}, 120: {}, 122: {}}

	assert.Equal(t, int64(124), AllocateUnique(120, entity.DirectionRight, existing, DefaultSteps))
	assert.Equal(t, int64(121), AllocateUnique(119, entity.DirectionLeft, existing, DefaultSteps))
	assert.Equal(t, int64(118), AllocateUnique(118, entity.DirectionRight, existing, DefaultSteps))
	assert.Equal(t, int64(121), AllocateUnique(119, entity.DirectionLeft, existing, Steps{Left: 2, Right: 2}))
	assert.Equal(t, int64(125), AllocateUnique(119, entity.DirectionLeft, map[int64]struct{}{119: {}, 121: {}, 123: {}}, Steps{Left: 2, Right: 2}))
}

func TestAllocateUnique_LeftCollisionStaysOdd(t *testing.T) {
	existing := map[int64]struct{}{27: {}}

	number := AllocateUnique(RoundForSide(27.2, entity.DirectionLeft), entity.DirectionLeft, existing, DefaultSteps)

	assert.Equal(t, int64(29), number)
	assert.NotZero(t, number%2)
}

// mapRegistry is a minimal single-goroutine registry.
type mapRegistry struct {
	owners map[int64]int64
}

func (r *mapRegistry) Seed(_ context.Context, claims []entity.HouseNumberClaim) error {
	r.owners = make(map[int64]int64, len(claims))
	for _, c := range claims {
		r.owners[c.Number] = c.BuildingID
	}

	return nil
}

func (r *mapRegistry) Snapshot(context.Context) ([]entity.HouseNumberClaim, error) {
	claims := make([]entity.HouseNumberClaim, 0, len(r.owners))
	for number, owner := range r.owners {
		claims = append(claims, entity.HouseNumberClaim{Number: number, BuildingID: owner})
	}

	return claims, nil
}

func (r *mapRegistry) Claim(_ context.Context, number, buildingID int64) (bool, error) {
	owner, taken := r.owners[number]
	if taken {
		return owner == buildingID, nil
	}
	r.owners[number] = buildingID

	return true, nil
}

func (r *mapRegistry) Release(_ context.Context, number, buildingID int64) error {
	if r.owners[number] == buildingID {
		delete(r.owners, number)
	}

	return nil
}

func TestAllocator_Allocate(t *testing.T) {
	ctx := context.Background()
	registry := &mapRegistry{}
	require.NoError(t, registry.Seed(ctx, []entity.HouseNumberClaim{{Number: 120, BuildingID: 7}}))
	allocator := NewAllocator(registry, DefaultSteps)

	t.Run("collision moves by the side step", func(t *testing.T) {
		number, err := allocator.Allocate(ctx, 120, entity.DirectionRight, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(122), number)
	})

	t.Run("left collision keeps an odd number", func(t *testing.T) {
		require.NoError(t, registry.Seed(ctx, []entity.HouseNumberClaim{{Number: 27, BuildingID: 1}, {Number: 120, BuildingID: 7}}))

		number, err := allocator.Allocate(ctx, RoundForSide(27.2, entity.DirectionLeft), entity.DirectionLeft, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(29), number)
		assert.NotZero(t, number%2)

		require.NoError(t, allocator.Release(ctx, 29, 2))
		require.NoError(t, allocator.Release(ctx, 27, 1))
	})

	t.Run("own claim is kept on rerun", func(t *testing.T) {
		number, err := allocator.Allocate(ctx, 120, entity.DirectionRight, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(120), number)

		number, err = allocator.Allocate(ctx, 120, entity.DirectionRight, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(122), number)
	})

	t.Run("released number becomes free", func(t *testing.T) {
		require.NoError(t, allocator.Release(ctx, 120, 7))

		number, err := allocator.Allocate(ctx, 120, entity.DirectionRight, 9)
		require.NoError(t, err)
		assert.Equal(t, int64(120), number)
	})

	t.Run("cancelled context stops the search", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := allocator.Allocate(cancelled, 1, entity.DirectionLeft, 10)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestResolver_PicksMostMajorThenNearest(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		hits []service.RoadHit
		want int64
	}{
		{
			name: "minor beats nearer subsidiary",
			hits: []service.RoadHit{
				{RoadID: 5, Category: entity.RoadCategorySubsidiary, Distance: 1},
				{RoadID: 6, Category: entity.RoadCategoryMinor, Distance: 4},
			},
			want: 6,
		},
		{
			name: "major beats nearer minor",
			hits: []service.RoadHit{
				{RoadID: 6, Category: entity.RoadCategoryMinor, Distance: 0.5},
				{RoadID: 7, Category: entity.RoadCategoryMajor, Distance: 4.5},
			},
			want: 7,
		},
		{
			name: "same category nearest wins",
			hits: []service.RoadHit{
				{RoadID: 8, Category: entity.RoadCategorySubsidiary, Distance: 3},
				{RoadID: 9, Category: entity.RoadCategorySubsidiary, Distance: 2},
			},
			want: 9,
		},
		{
			name: "full tie goes to lowest road id",
			hits: []service.RoadHit{
				{RoadID: 12, Category: entity.RoadCategoryMinor, Distance: 2},
				{RoadID: 11, Category: entity.RoadCategoryMinor, Distance: 2},
			},
			want: 11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(&stubLocator{hits: tt.hits}, DefaultSearchPolicy)

			hit, err := resolver.FindConnection(ctx, orb.Point{0, 0}, 99)
			require.NoError(t, err)
			require.NotNil(t, hit)
			assert.Equal(t, tt.want, hit.RoadID)
		})
	}
}

func TestResolver_ExpandsRadius(t *testing.T) {
	ctx := context.Background()
	far := &entity.Road{
		RoadID: 40, Category: entity.RoadCategoryMinor, Name: "Far",
		Geometry: orb.LineString{{12, -50}, {12, 50}},
	}
	locator := newBruteLocator(far)
	resolver := NewResolver(locator, DefaultSearchPolicy)

	hit, err := resolver.FindConnection(ctx, orb.Point{0, 0}, 1)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, int64(40), hit.RoadID)
	assert.Equal(t, []float64{5, 10, 15}, locator.radii)
}

func TestResolver_NothingWithinLastBuffer(t *testing.T) {
	locator := newBruteLocator(fixtureRoads()...)
	resolver := NewResolver(locator, DefaultSearchPolicy)

	hit, err := resolver.FindConnection(context.Background(), orb.Point{500, 500}, isolatedRoad.RoadID)
	require.NoError(t, err)
	assert.Nil(t, hit)
	assert.Equal(t, 3, locator.Calls())
}

func TestChainBuilder_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("trunk road has an empty path", func(t *testing.T) {
		builder := NewChainBuilder(NewResolver(newBruteLocator(fixtureRoads()...), DefaultSearchPolicy), DefaultChainPolicy)

		chain, err := builder.Build(ctx, chainRoadOf(majorRoad))
		require.NoError(t, err)
		assert.Equal(t, "1", chain.IDs)
		assert.Empty(t, chain.Distances)
		assert.Equal(t, "Ring Road", chain.TrunkName)
		assert.False(t, chain.Unresolved)
		assert.False(t, chain.Truncated)
	})

	t.Run("subsidiary connects to the major road", func(t *testing.T) {
		builder := NewChainBuilder(NewResolver(newBruteLocator(fixtureRoads()...), DefaultSearchPolicy), DefaultChainPolicy)

		chain, err := builder.Build(ctx, chainRoadOf(subsidiaryRoad))
		require.NoError(t, err)
		assert.Equal(t, "1/2", chain.IDs)
		assert.Equal(t, "/50", chain.Distances)
		assert.Equal(t, "1", chain.TrunkRoadID())
		assert.Equal(t, "Ring Road", chain.TrunkName)
	})

	t.Run("two level chain lists trunk first", func(t *testing.T) {
		builder := NewChainBuilder(NewResolver(newBruteLocator(fixtureRoads()...), DefaultSearchPolicy), DefaultChainPolicy)

		chain, err := builder.Build(ctx, chainRoadOf(branchRoad))
		require.NoError(t, err)
		assert.Equal(t, "1/2/20", chain.IDs)
		assert.Equal(t, "/50/47", chain.Distances)
	})

	t.Run("unresolved connection ends in the sentinel", func(t *testing.T) {
		builder := NewChainBuilder(NewResolver(newBruteLocator(fixtureRoads()...), DefaultSearchPolicy), DefaultChainPolicy)

		chain, err := builder.Build(ctx, chainRoadOf(isolatedRoad))
		require.NoError(t, err)
		assert.Equal(t, "none/3", chain.IDs)
		assert.Equal(t, "/none", chain.Distances)
		assert.True(t, chain.Unresolved)
		assert.Equal(t, int64(3), chain.FailedRoadID)
		assert.Empty(t, chain.TrunkName)
	})

	t.Run("id depth truncates independently of distance depth", func(t *testing.T) {
		builder := NewChainBuilder(
			NewResolver(newBruteLocator(fixtureRoads()...), DefaultSearchPolicy),
			ChainPolicy{MaxIDDepth: 2, MaxDistanceDepth: 5},
		)

		chain, err := builder.Build(ctx, chainRoadOf(branchRoad))
		require.NoError(t, err)
		assert.Equal(t, "none/2/20", chain.IDs)
		assert.Equal(t, "/50/47", chain.Distances)
		assert.True(t, chain.Truncated)
		assert.Empty(t, chain.TrunkName)
	})

	t.Run("cyclic roads terminate at the depth cap", func(t *testing.T) {
		locator := newBruteLocator(fixtureRoads()...)
		builder := NewChainBuilder(NewResolver(locator, DefaultSearchPolicy), DefaultChainPolicy)

		chain, err := builder.Build(ctx, chainRoadOf(cycleA))
		require.NoError(t, err)
		assert.Equal(t, "none/10/11/10/11/10", chain.IDs)
		assert.Equal(t, "/none/0/0/0/0", chain.Distances)
		assert.True(t, chain.Truncated)
		assert.False(t, chain.Unresolved)
		assert.LessOrEqual(t, locator.Calls(), 4)
	})

	t.Run("cancelled context aborts the walk", func(t *testing.T) {
		builder := NewChainBuilder(NewResolver(newBruteLocator(fixtureRoads()...), DefaultSearchPolicy), DefaultChainPolicy)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := builder.Build(cancelled, chainRoadOf(subsidiaryRoad))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPropagateAssociate(t *testing.T) {
	roadID := int64(1)
	main := &entity.Building{
		ID: 1, ExternalID: 500, RoadID: &roadID,
		HouseNo: "119", MetricAddress: "Ring Road", AssociateRoadName: "Ring Road",
		RoadWidth: 8, RoadType: "blacktop", RoadLane: "2", Direction: entity.DirectionLeft,
		ToleName: "Ward 4", OwnerName: "Sita",
	}
	associate := &entity.Building{ID: 2, AssociationType: entity.AssociationAssociate}

	PropagateAssociate(main, associate)

	assert.Equal(t, "119", associate.HouseNo)
	assert.Equal(t, "Ring Road", associate.MetricAddress)
	assert.Equal(t, "Ring Road", associate.AssociateRoadName)
	require.NotNil(t, associate.RoadID)
	assert.Equal(t, int64(1), *associate.RoadID)
	assert.NotSame(t, main.RoadID, associate.RoadID)
	assert.Equal(t, 8.0, associate.RoadWidth)
	assert.Equal(t, "blacktop", associate.RoadType)
	assert.Equal(t, "2", associate.RoadLane)
	assert.Equal(t, entity.DirectionLeft, associate.Direction)
	assert.Equal(t, "Ward 4", associate.ToleName)
	assert.Equal(t, "Sita", associate.OwnerName)
}

func TestPropagateDissociate(t *testing.T) {
	main := &entity.Building{HouseNo: "50/27", OwnerName: "Hari", Direction: entity.DirectionLeft}
	dissociate := &entity.Building{ID: 3}

	PropagateDissociate(main, dissociate, "C")

	assert.Equal(t, "50/27/C", dissociate.HouseNo)
	assert.Equal(t, "Hari", dissociate.OwnerName)
	assert.Equal(t, entity.DirectionLeft, dissociate.Direction)
}

func TestNextDissociateSuffix(t *testing.T) {
	siblings := []*entity.Building{
		{ID: 10, HouseNo: "50/27/A"},
		{ID: 11, HouseNo: "50/27/B"},
		{ID: 12},
	}

	t.Run("after A and B comes C", func(t *testing.T) {
		suffix, err := NextDissociateSuffix(siblings, 12)
		require.NoError(t, err)
		assert.Equal(t, "C", suffix)
	})

	t.Run("own suffix is ignored", func(t *testing.T) {
		suffix, err := NextDissociateSuffix(siblings, 11)
		require.NoError(t, err)
		assert.Equal(t, "B", suffix)
	})

	t.Run("first suffix is A", func(t *testing.T) {
		suffix, err := NextDissociateSuffix(nil, 0)
		require.NoError(t, err)
		assert.Equal(t, "A", suffix)
	})

	t.Run("Z exhausts the alphabet", func(t *testing.T) {
		_, err := NextDissociateSuffix([]*entity.Building{{ID: 1, HouseNo: "4/Z"}}, 0)
		assert.ErrorIs(t, err, ErrSuffixExhausted)
	})
}

func TestSuffixSequence(t *testing.T) {
	seq := NewSuffixSequence([]*entity.Building{{HouseNo: "8/A"}, {HouseNo: ""}, {HouseNo: "8"}})

	first, err := seq.Next()
	require.NoError(t, err)
	second, err := seq.Next()
	require.NoError(t, err)

	assert.Equal(t, "B", first)
	assert.Equal(t, "C", second)
}

func TestDissociateSuffix(t *testing.T) {
	letter, ok := DissociateSuffix("50/27/C")
	assert.True(t, ok)
	assert.Equal(t, byte('C'), letter)

	_, ok = DissociateSuffix("119")
	assert.False(t, ok)

	_, ok = DissociateSuffix("50/27")
	assert.False(t, ok)
}
