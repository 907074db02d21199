package addressing

import (
	"context"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/service"
	"addressing/internal/errors"
)

// Steps are the increments used to move past a taken house number.
type Steps struct {
	Left  int64
	Right int64
}

// DefaultSteps moves both sides by two so a collision keeps the side's parity.
var DefaultSteps = Steps{Left: 2, Right: 2}

func (s Steps) forSide(side entity.Direction) int64 {
	step := s.Left
	if side == entity.DirectionRight {
		step = s.Right
	}
	if step <= 0 {
		return 2
	}

	return step
}

// AllocateUnique increments candidate by the side's step until it is not in existing.
func AllocateUnique(candidate int64, side entity.Direction, existing map[int64]struct{}, steps Steps) int64 {
	step := steps.forSide(side)
	for {
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
		candidate += step
	}
}

// Allocator hands out house numbers through a shared registry so concurrent
// Main-building tasks never collide.
type Allocator struct {
	registry service.HouseNumberRegistry
	steps    Steps
}

// NewAllocator creates an allocator backed by registry.
func NewAllocator(registry service.HouseNumberRegistry, steps Steps) *Allocator {
	return &Allocator{registry: registry, steps: steps}
}

// Allocate claims the first free number at or after candidate for buildingID.
func (a *Allocator) Allocate(ctx context.Context, candidate int64, side entity.Direction, buildingID int64) (int64, error) {
	step := a.steps.forSide(side)
	for {
		if err := ctx.Err(); err != nil {
			return 0, errors.Wrap(err, "allocate house number")
		}

		ok, err := a.registry.Claim(ctx, candidate, buildingID)
		if err != nil {
			return 0, errors.Wrapf(err, "claim house number %d", candidate)
		}
		if ok {
			return candidate, nil
		}
		candidate += step
	}
}

// Release gives a number back, used when a building's number moves.
func (a *Allocator) Release(ctx context.Context, number, buildingID int64) error {
	if err := a.registry.Release(ctx, number, buildingID); err != nil {
		return errors.Wrapf(err, "release house number %d", number)
	}

	return nil
}
