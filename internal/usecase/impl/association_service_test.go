package impl

import (
	"context"
	"testing"

	"addressing/internal/domain/entity"
	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func addressedMain() *entity.Building {
	main := mainOnLane()
	main.HouseNo = "50/28"
	main.Direction = entity.DirectionRight
	main.RoadIDs = "1/2"
	main.MetricAddress = "Ring Road"
	main.AssociateRoadName = "Ring Road"

	return main
}

func TestAddressingService_AddressBuilding_Associate(t *testing.T) {
	svc, mocks := createTestAddressingService(t)
	ctx := context.Background()
	building := member(201, entity.AssociationAssociate, 5001, "")

	mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(201)).Return(building, nil)
	mocks.buildingRepo.EXPECT().FindBuildingByExternalID(mock.Anything, int64(5001)).Return(addressedMain(), nil)
	mocks.buildingRepo.EXPECT().UpdateAddress(mock.Anything, buildingWithID(201)).Return(nil)

	result, err := svc.AddressBuilding(ctx, 201)
	require.NoError(t, err)

	assert.Equal(t, "50/28", result.HouseNo)
	assert.Equal(t, entity.DirectionRight, result.Direction)
	assert.Equal(t, "Ring Road", building.MetricAddress)
	assert.Equal(t, "Ward 3", building.ToleName)
	assert.Equal(t, "R. Thapa", building.OwnerName)
	assert.Equal(t, int64(2), *building.RoadID)
}

func TestAddressingService_AddressBuilding_DissociateTakesNextSuffix(t *testing.T) {
	svc, mocks := createTestAddressingService(t)
	ctx := context.Background()
	building := member(303, entity.AssociationDissociate, 5001, "")

	mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(303)).Return(building, nil)
	mocks.buildingRepo.EXPECT().FindBuildingByExternalID(mock.Anything, int64(5001)).Return(addressedMain(), nil)
	mocks.buildingRepo.EXPECT().
		ListByMainBuilding(mock.Anything, int64(5001), entity.AssociationDissociate).
		Return([]*entity.Building{
			member(301, entity.AssociationDissociate, 5001, "50/28/A"),
			member(302, entity.AssociationDissociate, 5001, "50/28/B"),
			building,
		}, nil)
	mocks.buildingRepo.EXPECT().UpdateAddress(mock.Anything, buildingWithID(303)).Return(nil)

	result, err := svc.AddressBuilding(ctx, 303)
	require.NoError(t, err)
	assert.Equal(t, "50/28/C", result.HouseNo)
}

func TestAddressingService_AddressBuilding_DissociateKeepsOwnSuffix(t *testing.T) {
	svc, mocks := createTestAddressingService(t)
	ctx := context.Background()
	building := member(302, entity.AssociationDissociate, 5001, "50/28/B")

	mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(302)).Return(building, nil)
	mocks.buildingRepo.EXPECT().FindBuildingByExternalID(mock.Anything, int64(5001)).Return(addressedMain(), nil)
	mocks.buildingRepo.EXPECT().
		ListByMainBuilding(mock.Anything, int64(5001), entity.AssociationDissociate).
		Return([]*entity.Building{
			member(301, entity.AssociationDissociate, 5001, "50/28/A"),
			building,
			member(303, entity.AssociationDissociate, 5001, "50/28/C"),
		}, nil)
	mocks.buildingRepo.EXPECT().UpdateAddress(mock.Anything, buildingWithID(302)).Return(nil)

	result, err := svc.AddressBuilding(ctx, 302)
	require.NoError(t, err)
	assert.Equal(t, "50/28/B", result.HouseNo)
	assert.False(t, result.Changed())
}

func TestAddressingService_AddressBuilding_DissociateSuffixExhausted(t *testing.T) {
	svc, mocks := createTestAddressingService(t)
	ctx := context.Background()
	building := member(330, entity.AssociationDissociate, 5001, "")

	mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(330)).Return(building, nil)
	mocks.buildingRepo.EXPECT().FindBuildingByExternalID(mock.Anything, int64(5001)).Return(addressedMain(), nil)
	mocks.buildingRepo.EXPECT().
		ListByMainBuilding(mock.Anything, int64(5001), entity.AssociationDissociate).
		Return([]*entity.Building{member(329, entity.AssociationDissociate, 5001, "50/28/Z")}, nil)

	_, err := svc.AddressBuilding(ctx, 330)
	assert.Error(t, err)
	mocks.buildingRepo.AssertNotCalled(t, "UpdateAddress", mock.Anything, mock.Anything)
}

func TestAddressingService_AddressBuilding_MemberErrors(t *testing.T) {
	tests := []struct {
		name     string
		building *entity.Building
		main     *entity.Building
		mainErr  error
		wantErr  error
	}{
		{
			name:     "main building missing",
			building: member(201, entity.AssociationAssociate, 5001, ""),
			mainErr:  repository.ErrBuildingNotFound,
			wantErr:  domainerrors.ErrMainBuildingNotFound,
		},
		{
			name:     "main building not addressed",
			building: member(201, entity.AssociationAssociate, 5001, ""),
			main:     mainOnLane(),
			wantErr:  domainerrors.ErrNotAddressed,
		},
		{
			name:     "group points at a non-main building",
			building: member(201, entity.AssociationAssociate, 5001, ""),
			main:     member(200, entity.AssociationAssociate, 1, "50/28"),
			wantErr:  domainerrors.ErrInvalidAssociation,
		},
		{
			name:     "no main building id",
			building: &entity.Building{ID: 201, AssociationType: entity.AssociationDissociate},
			wantErr:  domainerrors.ErrInvalidAssociation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := createTestAddressingService(t)
			ctx := context.Background()

			mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(201)).Return(tt.building, nil)
			if tt.main != nil || tt.mainErr != nil {
				mocks.buildingRepo.EXPECT().FindBuildingByExternalID(mock.Anything, int64(5001)).Return(tt.main, tt.mainErr)
			}

			_, err := svc.AddressBuilding(ctx, 201)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddressingService_PropagateForMain(t *testing.T) {
	svc, mocks := createTestAddressingService(t)
	ctx := context.Background()

	main := addressedMain()
	main.HouseNo = "50/30"

	associate := member(201, entity.AssociationAssociate, 5001, "50/28")
	keepsSuffix := member(301, entity.AssociationDissociate, 5001, "50/28/A")
	fresh := member(302, entity.AssociationDissociate, 5001, "")

	mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(101)).Return(main, nil)
	mocks.buildingRepo.EXPECT().ListByMainBuilding(ctx, int64(5001), entity.AssociationAssociate).
		Return([]*entity.Building{associate}, nil)
	mocks.buildingRepo.EXPECT().ListByMainBuilding(ctx, int64(5001), entity.AssociationDissociate).
		Return([]*entity.Building{fresh, keepsSuffix}, nil)
	mocks.expectTransactions()
	mocks.buildingRepo.EXPECT().UpdateAddress(ctx, mock.Anything).Return(nil).Times(3)

	report, err := svc.PropagateForMain(ctx, 101)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 3, report.Addressed)
	assert.Equal(t, "50/30", associate.HouseNo)
	assert.Equal(t, "50/30/A", keepsSuffix.HouseNo)
	assert.Equal(t, "50/30/B", fresh.HouseNo)
	assert.Equal(t, "Ring Road", fresh.MetricAddress)
}

func TestAddressingService_PropagateForMain_Errors(t *testing.T) {
	t.Run("not a main building", func(t *testing.T) {
		svc, mocks := createTestAddressingService(t)
		ctx := context.Background()

		mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(201)).
			Return(member(201, entity.AssociationAssociate, 5001, "50/28"), nil)

		_, err := svc.PropagateForMain(ctx, 201)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAssociation)
	})

	t.Run("main not addressed", func(t *testing.T) {
		svc, mocks := createTestAddressingService(t)
		ctx := context.Background()

		mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(101)).Return(mainOnLane(), nil)

		_, err := svc.PropagateForMain(ctx, 101)
		assert.ErrorIs(t, err, domainerrors.ErrNotAddressed)
	})

	t.Run("transaction rolled back", func(t *testing.T) {
		svc, mocks := createTestAddressingService(t)
		ctx := context.Background()

		mocks.buildingRepo.EXPECT().FindBuildingByID(ctx, int64(101)).Return(addressedMain(), nil)
		mocks.buildingRepo.EXPECT().ListByMainBuilding(ctx, int64(5001), entity.AssociationAssociate).
			Return([]*entity.Building{member(201, entity.AssociationAssociate, 5001, "")}, nil)
		mocks.buildingRepo.EXPECT().ListByMainBuilding(ctx, int64(5001), entity.AssociationDissociate).
			Return(nil, nil)
		mocks.expectTransactions()
		mocks.buildingRepo.EXPECT().UpdateAddress(ctx, mock.Anything).Return(errors.New("serialization failure"))

		_, err := svc.PropagateForMain(ctx, 101)
		assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	})
}
