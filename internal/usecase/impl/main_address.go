package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"addressing/internal/domain/addressing"
	"addressing/internal/domain/entity"
	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/domain/geometry"
	"addressing/internal/domain/repository"
	"addressing/internal/usecase"

	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// addressMain runs the geometry pipeline for a Main building and writes its
// address block. Nothing is written when an error is returned.
func (s *addressingService) addressMain(ctx context.Context, building *entity.Building) (*usecase.BuildingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.BuildingTimeout)
	defer cancel()

	logger := s.loggerFrom(ctx).With(slog.Int64("building_id", building.ID))

	if building.RoadID == nil {
		return nil, domainerrors.ErrRoadNotFound.WithDetails(fmt.Sprintf("building %d has no road_id", building.ID))
	}
	road, err := s.roadRepo.FindRoadByRoadID(ctx, *building.RoadID)
	if err != nil {
		if errors.Is(err, repository.ErrRoadNotFound) {
			logger.WarnContext(ctx, "Road of main building not found, skipping", slog.Int64("road_id", *building.RoadID))

			return nil, domainerrors.ErrRoadNotFound.WithDetails(fmt.Sprintf("road_id %d", *building.RoadID))
		}

		return nil, errors.Wrap(err, "failed to find road by road_id")
	}

	if building.Centroid == nil || building.RefCentroid == nil {
		return nil, domainerrors.ErrInvalidGeometry.WithDetails(fmt.Sprintf("building %d has no centroid", building.ID))
	}

	gate := s.projector.ToMetricPoint(*building.RefCentroid)
	centroid := s.projector.ToMetricPoint(*building.Centroid)
	if gap := planar.Distance(gate, centroid); gap > s.cfg.RefTolerance {
		return nil, domainerrors.ErrRefToleranceExceeded.WithDetails(
			fmt.Sprintf("building %d: %.2f > %.2f", building.ID, gap, s.cfg.RefTolerance),
		)
	}

	line, err := geometry.NewLine(s.projector.ToMetric(road.Geometry))
	if err != nil {
		return nil, domainerrors.ErrInvalidGeometry.WithDetails(fmt.Sprintf("road %d: %v", road.RoadID, err))
	}

	chain, err := s.chains.Build(ctx, addressing.ChainRoad{
		RoadID:   road.RoadID,
		Category: road.Category,
		Name:     road.Name,
		Line:     line,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build road chain")
	}
	if chain.Unresolved {
		logger.WarnContext(ctx, "Road chain unresolved",
			slog.Int64("road_id", road.RoadID),
			slog.Int64("failed_road_id", chain.FailedRoadID),
		)
	}

	side := addressing.Classify(gate, line)
	candidate := addressing.RoundForSide(line.ProjectPoint(gate), side)

	number, err := s.allocator.Allocate(ctx, candidate, side, building.ID)
	if err != nil {
		return nil, err
	}

	previous := building.HouseNo
	oldNumber, hadNumber := building.HouseNumber()

	building.HouseNo = strings.TrimPrefix(chain.Distances+"/"+strconv.FormatInt(number, 10), "/")
	building.Direction = side
	building.RoadIDs = chain.IDs
	building.MetricAddress = chain.TrunkName
	building.AssociateRoadName = road.Name
	if road.Category == entity.RoadCategorySubsidiary {
		building.AssociateRoadName = chain.TrunkName
	}
	building.NeedsReview = chain.Unresolved || chain.Truncated

	if err := s.buildingRepo.UpdateAddress(ctx, building); err != nil {
		if !hadNumber || oldNumber != number {
			if relErr := s.allocator.Release(ctx, number, building.ID); relErr != nil {
				logger.WarnContext(ctx, "Failed to release house number", slog.Any("error", relErr))
			}
		}

		return nil, errors.Wrap(err, "failed to update building address")
	}

	if hadNumber && oldNumber != number {
		if err := s.allocator.Release(ctx, oldNumber, building.ID); err != nil {
			logger.WarnContext(ctx, "Failed to release previous house number", slog.Any("error", err))
		}
	}

	if building.HouseNo != previous {
		s.publishChanged(ctx, building, previous)
	}

	logger.DebugContext(ctx, "Main building addressed",
		slog.String("house_no", building.HouseNo),
		slog.String("direction", side.String()),
		slog.String("road_ids", chain.IDs),
	)

	return &usecase.BuildingResult{
		BuildingID:      building.ID,
		Association:     building.AssociationType,
		HouseNo:         building.HouseNo,
		PreviousHouseNo: previous,
		Direction:       building.Direction,
		RoadIDs:         building.RoadIDs,
		MetricAddress:   building.MetricAddress,
		NeedsReview:     building.NeedsReview,
	}, nil
}
