package service

import (
	"context"

	"addressing/internal/domain/entity"
)

// HouseNumberRegistry is the dataset-wide set of house numbers held by Main buildings.
// Implementations must make Claim atomic so concurrent allocators never hand
// out the same number twice.
type HouseNumberRegistry interface {
	// Seed adds existing claims. Numbers already held keep their holder.
	Seed(ctx context.Context, claims []entity.HouseNumberClaim) error

	// Snapshot returns every current claim.
	Snapshot(ctx context.Context) ([]entity.HouseNumberClaim, error)

	// Claim reserves number for buildingID. It succeeds when the number is free
	// or already held by the same building.
	Claim(ctx context.Context, number, buildingID int64) (bool, error)

	// Release frees number if buildingID holds it.
	Release(ctx context.Context, number, buildingID int64) error
}
