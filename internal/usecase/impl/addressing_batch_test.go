package impl

import (
	"context"
	"testing"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressingService_AddressAll(t *testing.T) {
	svc, mocks := createTestAddressingService(t)
	ctx := context.Background()

	main := mainOnLane()
	noRoad := mainOnRing()
	noRoad.RoadID = int64Ptr(77)
	// A dirty ref point must not turn the missing road into a failure.
	farFromRef := *noRoad.RefCentroid
	farFromRef[1] += 50
	noRoad.Centroid = &farFromRef

	associate := member(201, entity.AssociationAssociate, 5001, "")
	alreadyAddressed := member(202, entity.AssociationAssociate, 5001, "50/28")
	orphanGroup := member(203, entity.AssociationAssociate, 9999, "")
	dissociate := member(301, entity.AssociationDissociate, 5001, "")

	mocks.buildingRepo.EXPECT().ListMainHouseNumbers(ctx).Return(nil, nil)
	mocks.buildingRepo.EXPECT().ListBuildingIDsByAssociation(ctx, entity.AssociationMain).Return([]int64{101, 102}, nil)
	mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(101)).Return(main, nil)
	mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(102)).Return(noRoad, nil)
	mocks.roadRepo.EXPECT().FindRoadByRoadID(mock.Anything, int64(2)).Return(laneRoad, nil)
	mocks.roadRepo.EXPECT().FindRoadByRoadID(mock.Anything, int64(77)).Return(nil, repository.ErrRoadNotFound)
	mocks.publisher.EXPECT().PublishAddressChanged(mock.Anything, mock.Anything).Return(nil)

	mocks.buildingRepo.EXPECT().ListBuildingsByAssociation(ctx, entity.AssociationAssociate).
		Return([]*entity.Building{associate, alreadyAddressed, orphanGroup}, nil)
	mocks.buildingRepo.EXPECT().ListBuildingsByAssociation(ctx, entity.AssociationDissociate).
		Return([]*entity.Building{dissociate}, nil)
	mocks.buildingRepo.EXPECT().FindBuildingByExternalID(mock.Anything, int64(5001)).Return(main, nil)
	mocks.buildingRepo.EXPECT().FindBuildingByExternalID(mock.Anything, int64(9999)).Return(nil, repository.ErrBuildingNotFound)
	mocks.expectTransactions()
	mocks.buildingRepo.EXPECT().UpdateAddress(mock.Anything, mock.Anything).Return(nil)
	mocks.buildingRepo.EXPECT().CountAddressed(ctx).Return(int64(4), nil)

	report, err := svc.AddressAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Processed)
	assert.Equal(t, 3, report.Addressed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, int64(4), report.WithHouseNo)
	require.Len(t, report.Failures, 2)

	failed := map[int64]bool{}
	for _, failure := range report.Failures {
		failed[failure.BuildingID] = failure.Skipped
	}
	assert.Equal(t, map[int64]bool{102: true, 203: false}, failed)

	assert.Equal(t, "50/28", main.HouseNo)
	assert.Equal(t, "50/28", associate.HouseNo)
	assert.Equal(t, "50/28/A", dissociate.HouseNo)
	assert.Empty(t, orphanGroup.HouseNo)
}

func TestAddressingService_AddressAll_UniqueAcrossWorkers(t *testing.T) {
	svc, mocks := createTestAddressingService(t)
	ctx := context.Background()

	// Every building faces the same spot, so each needs its own number.
	var ids []int64
	buildings := map[int64]*entity.Building{}
	for id := int64(1); id <= 6; id++ {
		building := mainOnLane()
		building.ID = id
		building.ExternalID = 7000 + id
		buildings[id] = building
		ids = append(ids, id)
		mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, id).Return(building, nil)
	}

	mocks.buildingRepo.EXPECT().ListMainHouseNumbers(ctx).Return(nil, nil)
	mocks.buildingRepo.EXPECT().ListBuildingIDsByAssociation(ctx, entity.AssociationMain).Return(ids, nil)
	mocks.roadRepo.EXPECT().FindRoadByRoadID(mock.Anything, int64(2)).Return(laneRoad, nil)
	mocks.buildingRepo.EXPECT().UpdateAddress(mock.Anything, mock.Anything).Return(nil)
	mocks.publisher.EXPECT().PublishAddressChanged(mock.Anything, mock.Anything).Return(nil)
	mocks.buildingRepo.EXPECT().ListBuildingsByAssociation(ctx, mock.Anything).Return(nil, nil)
	mocks.buildingRepo.EXPECT().CountAddressed(ctx).Return(int64(6), nil)

	report, err := svc.AddressAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, report.Addressed)

	seen := map[int64]bool{}
	for _, building := range buildings {
		number, ok := building.HouseNumber()
		require.True(t, ok)
		assert.Zero(t, number%2, "right side numbers are even")
		assert.False(t, seen[number], "duplicate house number %d", number)
		seen[number] = true
	}
	assert.Len(t, seen, 6)
}

func TestAddressingService_AddressAll_Cancelled(t *testing.T) {
	svc, mocks := createTestAddressingService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mocks.buildingRepo.EXPECT().ListMainHouseNumbers(ctx).Return(nil, nil)
	mocks.buildingRepo.EXPECT().ListBuildingIDsByAssociation(ctx, entity.AssociationMain).Return([]int64{101, 102}, nil)

	report, err := svc.AddressAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Processed)
	mocks.buildingRepo.AssertNotCalled(t, "FindBuildingByID", mock.Anything, mock.Anything)
}
