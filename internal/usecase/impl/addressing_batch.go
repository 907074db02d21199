package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"addressing/internal/domain/entity"
	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// AddressAll addresses the whole dataset. Every Main building is resolved
// before the Associate pass, and the Dissociate pass runs last.
func (s *addressingService) AddressAll(ctx context.Context) (*usecase.BatchReport, error) {
	start := time.Now()
	logger := s.loggerFrom(ctx)

	if err := s.reseed(ctx); err != nil {
		return nil, err
	}

	report := &usecase.BatchReport{}

	if err := s.mainPass(ctx, report); err != nil {
		return report, err
	}
	logger.InfoContext(ctx, "Main pass finished",
		slog.Int("processed", report.Processed),
		slog.Int("addressed", report.Addressed),
	)

	for _, association := range []entity.AssociationType{entity.AssociationAssociate, entity.AssociationDissociate} {
		if err := s.propagatePass(ctx, association, report); err != nil {
			return report, err
		}
	}

	withHouseNo, err := s.buildingRepo.CountAddressed(ctx)
	if err != nil {
		return report, errors.Wrap(err, "failed to count addressed buildings")
	}
	report.WithHouseNo = withHouseNo

	logger.InfoContext(ctx, "Batch addressing finished",
		slog.Int("processed", report.Processed),
		slog.Int("addressed", report.Addressed),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int("needs_review", report.NeedsReview),
		slog.Int64("with_house_no", report.WithHouseNo),
		slog.Duration("took", time.Since(start)),
	)

	return report, nil
}

// mainPass addresses Main buildings with at most cfg.Workers in flight. The
// registry makes concurrent allocation safe; cancellation is honoured between
// buildings only.
func (s *addressingService) mainPass(ctx context.Context, report *usecase.BatchReport) error {
	ids, err := s.buildingRepo.ListBuildingIDsByAssociation(ctx, entity.AssociationMain)
	if err != nil {
		return errors.Wrap(err, "failed to list main buildings")
	}

	var mu sync.Mutex
	group := new(errgroup.Group)
	group.SetLimit(max(s.cfg.Workers, 1))

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			result, err := s.addressMainByID(ctx, id)

			mu.Lock()
			defer mu.Unlock()

			report.Processed++
			if err != nil {
				s.loggerFrom(ctx).WarnContext(ctx, "Main building not addressed",
					slog.Int64("building_id", id),
					slog.Any("error", err),
				)
				recordFailure(report, id, err)

				return nil
			}
			report.Addressed++
			if result.NeedsReview {
				report.NeedsReview++
			}

			return nil
		})
	}
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "main pass interrupted")
	}

	return nil
}

func (s *addressingService) addressMainByID(ctx context.Context, id int64) (*usecase.BuildingResult, error) {
	building, err := s.findBuilding(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.addressMain(ctx, building)
}

// recordFailure counts a missing road as skipped and anything else as failed.
func recordFailure(report *usecase.BatchReport, buildingID int64, err error) {
	skipped := errors.Is(err, domainerrors.ErrRoadNotFound)
	if skipped {
		report.Skipped++
	} else {
		report.Failed++
	}

	report.Failures = append(report.Failures, usecase.BuildingFailure{
		BuildingID: buildingID,
		Skipped:    skipped,
		Reason:     err.Error(),
	})
}
