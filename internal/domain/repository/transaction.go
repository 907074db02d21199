package repository

import "context"

// TransactionManager runs a unit of work in one database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Every
	// repository obtained from the factory shares the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewBuildingRepository() BuildingRepository
	NewRoadRepository() RoadRepository
}
