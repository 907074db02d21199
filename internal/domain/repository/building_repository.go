// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressing/internal/domain/entity"
	"addressing/internal/errors"
)

// Domain-specific errors for building persistence.
var (
	// ErrBuildingNotFound is returned when a building is not found.
	ErrBuildingNotFound = errors.New("building not found")
)

// BuildingRepository defines the interface for building-related database operations.
// Only the address block of a building is ever written.
type BuildingRepository interface {
	// FindBuildingByID retrieves a building by its internal ID.
	FindBuildingByID(ctx context.Context, id int64) (*entity.Building, error)

	// FindBuildingByExternalID retrieves a building by its surveyed building_id.
	// Associate and Dissociate buildings reference their Main building this way.
	FindBuildingByExternalID(ctx context.Context, externalID int64) (*entity.Building, error)

	// ListBuildingIDsByAssociation returns the IDs of every building of the given type, ordered by ID.
	ListBuildingIDsByAssociation(ctx context.Context, association entity.AssociationType) ([]int64, error)

	// ListBuildingsByAssociation retrieves every building of the given type, ordered by ID.
	ListBuildingsByAssociation(ctx context.Context, association entity.AssociationType) ([]*entity.Building, error)

	// ListByMainBuilding retrieves the group members of one Main building.
	ListByMainBuilding(ctx context.Context, mainExternalID int64, association entity.AssociationType) ([]*entity.Building, error)

	// ListMainHouseNumbers returns the numeric house numbers held by Main buildings.
	ListMainHouseNumbers(ctx context.Context) ([]entity.HouseNumberClaim, error)

	// UpdateAddress writes the address block of a building.
	UpdateAddress(ctx context.Context, building *entity.Building) error

	// ClearAddresses resets the address block of the given buildings, or of
	// every building when ids is empty. It returns the number of rows changed.
	ClearAddresses(ctx context.Context, ids []int64) (int64, error)

	// CountAddressed returns the number of buildings that have a house number.
	CountAddressed(ctx context.Context) (int64, error)
}
