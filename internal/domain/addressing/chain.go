package addressing

import (
	"context"
	"strconv"
	"strings"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/geometry"
	"addressing/internal/errors"
)

// ChainPolicy bounds the chain walk. A depth of n renders at most n-1
// connections before the sentinel.
type ChainPolicy struct {
	MaxIDDepth       int
	MaxDistanceDepth int
}

// DefaultChainPolicy caps both strings at depth 5.
var DefaultChainPolicy = ChainPolicy{MaxIDDepth: 5, MaxDistanceDepth: 5}

// ChainRoad is a road positioned in the metric CRS.
type ChainRoad struct {
	RoadID   int64
	Category entity.RoadCategory
	Name     string
	Line     geometry.Line
}

// chainStep is one resolved connection.
type chainStep struct {
	roadID   int64
	name     string
	distance int64
}

// ChainBuilder walks from a road out to a trunk road. The walk is iterative
// and each connection is resolved once for both the id and distance strings.
type ChainBuilder struct {
	resolver *Resolver
	policy   ChainPolicy
}

// NewChainBuilder creates a chain builder.
func NewChainBuilder(resolver *Resolver, policy ChainPolicy) *ChainBuilder {
	return &ChainBuilder{resolver: resolver, policy: policy}
}

// Build resolves the chain for road. An unresolved connection or a depth cap
// is reported on the chain, not as an error.
func (b *ChainBuilder) Build(ctx context.Context, road ChainRoad) (*entity.Chain, error) {
	maxResolutions := max(b.policy.MaxIDDepth, b.policy.MaxDistanceDepth) - 1

	var (
		steps      []chainStep
		unresolved bool
		failedRoad int64
	)

	current := road
	for !current.Category.IsTrunk() && len(steps) < maxResolutions {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "walk chain of road %d", road.RoadID)
		}

		start := current.Line.Start()
		hit, err := b.resolver.FindConnection(ctx, start, current.RoadID)
		if err != nil {
			return nil, err
		}
		if hit == nil {
			unresolved = true
			failedRoad = current.RoadID

			break
		}

		connected, err := geometry.NewLine(hit.Geometry)
		if err != nil {
			return nil, errors.Wrapf(err, "geometry of road %d", hit.RoadID)
		}

		side := Classify(current.Line.Centroid(), connected)
		steps = append(steps, chainStep{
			roadID:   hit.RoadID,
			name:     hit.Name,
			distance: RoundForSide(connected.ProjectPoint(start), side),
		})

		current = ChainRoad{RoadID: hit.RoadID, Category: hit.Category, Name: hit.Name, Line: connected}
	}

	idBody, idTruncated := renderChain(steps, b.policy.MaxIDDepth, unresolved, func(s chainStep) string {
		return strconv.FormatInt(s.roadID, 10)
	})
	distBody, distTruncated := renderChain(steps, b.policy.MaxDistanceDepth, unresolved, func(s chainStep) string {
		return strconv.FormatInt(s.distance, 10)
	})

	chain := &entity.Chain{
		IDs:          strings.TrimPrefix(idBody+"/"+strconv.FormatInt(road.RoadID, 10), "/"),
		Distances:    distBody,
		Unresolved:   unresolved,
		Truncated:    idTruncated || distTruncated,
		FailedRoadID: failedRoad,
	}

	if !unresolved && !idTruncated {
		chain.TrunkName = road.Name
		if len(steps) > 0 {
			chain.TrunkName = steps[len(steps)-1].name
		}
	}

	return chain, nil
}

// renderChain builds the trunk-first "/"-joined path of the first steps
// allowed by depth. The terminal segment is the sentinel when the walk was
// unresolved or the depth ran out.
func renderChain(steps []chainStep, depth int, unresolved bool, format func(chainStep) string) (string, bool) {
	allowed := max(depth-1, 0)
	truncated := len(steps) >= allowed

	terminal := ""
	count := len(steps)
	switch {
	case truncated:
		terminal = "/" + entity.ChainSentinel
		count = allowed
	case unresolved:
		terminal = "/" + entity.ChainSentinel
	}

	var sb strings.Builder
	sb.WriteString(terminal)
	for idx := count - 1; idx >= 0; idx-- {
		sb.WriteString("/")
		sb.WriteString(format(steps[idx]))
	}

	return sb.String(), truncated
}
