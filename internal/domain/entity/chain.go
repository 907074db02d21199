package entity

// ChainSentinel marks a chain segment that could not be resolved.
const ChainSentinel = "none"

// Chain is the walk from a building's road out to a trunk road.
type Chain struct {
	// IDs lists road ids trunk first, ending with the building's own road, e.g. "1/7/12".
	IDs string
	// Distances is the "/"-prefixed path of rounded offsets along each connected road,
	// trunk first; empty when the building's road is itself a trunk.
	Distances string
	// Unresolved is set when a connection search found nothing.
	Unresolved bool
	// Truncated is set when a depth cap ended the walk.
	Truncated bool
	// FailedRoadID is the road whose connection could not be resolved.
	FailedRoadID int64
	// TrunkName is the name of the road the chain starts from; empty when that segment is the sentinel.
	TrunkName string
}

// TrunkRoadID returns the first id of the chain, or the sentinel.
func (c *Chain) TrunkRoadID() string {
	for idx := 0; idx < len(c.IDs); idx++ {
		if c.IDs[idx] == '/' {
			return c.IDs[:idx]
		}
	}

	return c.IDs
}
