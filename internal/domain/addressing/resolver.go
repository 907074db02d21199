package addressing

import (
	"context"
	"sort"

	"addressing/internal/domain/service"
	"addressing/internal/errors"

	"github.com/paulmach/orb"
)

// SearchPolicy controls the expanding buffer used to find a connection.
type SearchPolicy struct {
	Radius   float64 // First buffer radius, metric units.
	Step     float64 // Radius growth per attempt.
	Attempts int     // Total number of buffers tried.
}

// DefaultSearchPolicy searches at 5, 10 and 15 units.
var DefaultSearchPolicy = SearchPolicy{Radius: 5, Step: 5, Attempts: 3}

// Resolver finds the road a subsidiary road connects to.
type Resolver struct {
	locator service.RoadLocator
	policy  SearchPolicy
}

// NewResolver creates a resolver over locator.
func NewResolver(locator service.RoadLocator, policy SearchPolicy) *Resolver {
	if policy.Attempts <= 0 {
		policy.Attempts = DefaultSearchPolicy.Attempts
	}

	return &Resolver{locator: locator, policy: policy}
}

// FindConnection returns the most major road intersecting a growing buffer
// around ref, or nil when every attempt comes back empty.
func (r *Resolver) FindConnection(ctx context.Context, ref orb.Point, excludeRoadID int64) (*service.RoadHit, error) {
	radius := r.policy.Radius
	for attempt := 0; attempt < r.policy.Attempts; attempt++ {
		hits, err := r.locator.IntersectingRoads(ctx, ref, radius, excludeRoadID)
		if err != nil {
			return nil, errors.Wrapf(err, "search roads within %.1f of road %d start", radius, excludeRoadID)
		}

		if best := pickConnection(hits, excludeRoadID); best != nil {
			return best, nil
		}
		radius += r.policy.Step
	}

	return nil, nil
}

// pickConnection orders by category priority, then distance, then road id.
func pickConnection(hits []service.RoadHit, excludeRoadID int64) *service.RoadHit {
	candidates := make([]service.RoadHit, 0, len(hits))
	for _, hit := range hits {
		if hit.RoadID != excludeRoadID {
			candidates = append(candidates, hit)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := candidates[i].Category.Priority(), candidates[j].Category.Priority()
		if pi != pj {
			return pi < pj
		}
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}

		return candidates[i].RoadID < candidates[j].RoadID
	})

	return &candidates[0]
}
