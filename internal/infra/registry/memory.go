package registry

import (
	"context"
	"sync"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/service"
)

// memoryRegistry keeps claims in process; concurrent allocators inside one
// batch share it.
type memoryRegistry struct {
	mu     sync.Mutex
	claims map[int64]int64 // number -> building id
}

// NewMemoryRegistry creates an in-process registry.
func NewMemoryRegistry() service.HouseNumberRegistry {
	return &memoryRegistry{claims: make(map[int64]int64)}
}

func (r *memoryRegistry) Seed(_ context.Context, claims []entity.HouseNumberClaim) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, claim := range claims {
		if _, taken := r.claims[claim.Number]; !taken {
			r.claims[claim.Number] = claim.BuildingID
		}
	}

	return nil
}

func (r *memoryRegistry) Snapshot(_ context.Context) ([]entity.HouseNumberClaim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	claims := make([]entity.HouseNumberClaim, 0, len(r.claims))
	for number, buildingID := range r.claims {
		claims = append(claims, entity.HouseNumberClaim{Number: number, BuildingID: buildingID})
	}

	return claims, nil
}

func (r *memoryRegistry) Claim(ctx context.Context, number, buildingID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	holder, taken := r.claims[number]
	if taken {
		return holder == buildingID, nil
	}
	r.claims[number] = buildingID

	return true, nil
}

func (r *memoryRegistry) Release(_ context.Context, number, buildingID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.claims[number] == buildingID {
		delete(r.claims, number)
	}

	return nil
}
