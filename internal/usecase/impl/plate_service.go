package impl

import (
	"context"
	"fmt"

	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/domain/repository"
	"addressing/internal/domain/service"
	"addressing/internal/usecase"

	"github.com/pkg/errors"
)

type plateService struct {
	buildingRepo repository.BuildingRepository
	renderer     service.PlateRenderer
}

// NewPlateService creates a new plate use case instance
func NewPlateService(buildingRepo repository.BuildingRepository, renderer service.PlateRenderer) usecase.PlateUsecase {
	return &plateService{
		buildingRepo: buildingRepo,
		renderer:     renderer,
	}
}

// RenderPlate renders the QR plate of an addressed building
func (s *plateService) RenderPlate(ctx context.Context, buildingID int64) ([]byte, error) {
	building, err := s.buildingRepo.FindBuildingByID(ctx, buildingID)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrBuildingNotFound.WithDetails(fmt.Sprintf("id %d", buildingID))
		}

		return nil, errors.Wrap(err, "failed to find building by ID")
	}

	if building.HouseNo == "" {
		return nil, domainerrors.ErrNotAddressed.WithDetails(fmt.Sprintf("building %d", buildingID))
	}

	png, err := s.renderer.RenderPlateQR(&service.Plate{
		HouseNo:       building.HouseNo,
		MetricAddress: building.MetricAddress,
		Direction:     building.Direction.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render plate")
	}

	return png, nil
}
