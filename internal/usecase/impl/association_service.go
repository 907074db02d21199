package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"addressing/internal/domain/addressing"
	"addressing/internal/domain/entity"
	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/domain/repository"
	"addressing/internal/usecase"

	"github.com/pkg/errors"
)

// addressMember copies the Main building's address onto one Associate or
// Dissociate building.
func (s *addressingService) addressMember(ctx context.Context, building *entity.Building) (*usecase.BuildingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.BuildingTimeout)
	defer cancel()

	main, err := s.findMain(ctx, building)
	if err != nil {
		return nil, err
	}

	previous := building.HouseNo
	if building.AssociationType == entity.AssociationAssociate {
		addressing.PropagateAssociate(main, building)
	} else {
		siblings, err := s.buildingRepo.ListByMainBuilding(ctx, main.ExternalID, entity.AssociationDissociate)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list dissociate siblings")
		}

		suffix, err := dissociateSuffixFor(building, main, siblings)
		if err != nil {
			return nil, err
		}
		addressing.PropagateDissociate(main, building, suffix)
	}

	if err := s.buildingRepo.UpdateAddress(ctx, building); err != nil {
		return nil, errors.Wrap(err, "failed to update building address")
	}

	return memberResult(building, previous), nil
}

// PropagateForMain rewrites the whole group of a Main building. Dissociate
// buildings keep the suffix they already hold.
func (s *addressingService) PropagateForMain(ctx context.Context, mainBuildingID int64) (*usecase.BatchReport, error) {
	main, err := s.findBuilding(ctx, mainBuildingID)
	if err != nil {
		return nil, err
	}
	if main.AssociationType != entity.AssociationMain {
		return nil, domainerrors.ErrInvalidAssociation.WithDetails(fmt.Sprintf("building %d is not a main building", main.ID))
	}
	if main.HouseNo == "" {
		return nil, domainerrors.ErrNotAddressed.WithDetails(fmt.Sprintf("main building %d", main.ID))
	}

	associates, err := s.buildingRepo.ListByMainBuilding(ctx, main.ExternalID, entity.AssociationAssociate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list associate buildings")
	}
	dissociates, err := s.buildingRepo.ListByMainBuilding(ctx, main.ExternalID, entity.AssociationDissociate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dissociate buildings")
	}

	for _, building := range associates {
		addressing.PropagateAssociate(main, building)
	}

	seq := addressing.NewSuffixSequence(dissociates)
	for _, building := range sortedByID(dissociates) {
		suffix := ""
		if letter, ok := addressing.DissociateSuffix(building.HouseNo); ok {
			suffix = string(letter)
		} else if suffix, err = seq.Next(); err != nil {
			return nil, errors.Wrapf(err, "main building %d", main.ID)
		}
		addressing.PropagateDissociate(main, building, suffix)
	}

	group := make([]*entity.Building, 0, len(associates)+len(dissociates))
	group = append(group, associates...)
	group = append(group, dissociates...)
	if err := s.writeGroup(ctx, group); err != nil {
		return nil, err
	}

	s.loggerFrom(ctx).InfoContext(ctx, "Group propagated from main building",
		slog.Int64("building_id", main.ID),
		slog.String("house_no", main.HouseNo),
		slog.Int("associates", len(associates)),
		slog.Int("dissociates", len(dissociates)),
	)

	return &usecase.BatchReport{
		Processed:   len(group),
		Addressed:   len(group),
		NeedsReview: countNeedsReview(group),
	}, nil
}

// propagatePass fills every group member of the given type that lacks a
// house number. Groups fail independently.
func (s *addressingService) propagatePass(ctx context.Context, association entity.AssociationType, report *usecase.BatchReport) error {
	members, err := s.buildingRepo.ListBuildingsByAssociation(ctx, association)
	if err != nil {
		return errors.Wrapf(err, "failed to list %s buildings", association)
	}

	groups, orphans := groupByMain(members)
	for _, building := range orphans {
		if building.HouseNo != "" {
			continue
		}
		report.Processed++
		recordFailure(report, building.ID,
			domainerrors.ErrInvalidAssociation.WithDetails(fmt.Sprintf("building %d has no main_building_id", building.ID)))
	}

	mainIDs := make([]int64, 0, len(groups))
	for mainID := range groups {
		mainIDs = append(mainIDs, mainID)
	}
	sort.Slice(mainIDs, func(i, j int) bool { return mainIDs[i] < mainIDs[j] })

	for _, mainID := range mainIDs {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "%s pass interrupted", association)
		}

		siblings := groups[mainID]
		pending := pendingMembers(siblings)
		if len(pending) == 0 {
			continue
		}
		report.Processed += len(pending)

		if err := s.fillGroup(ctx, mainID, association, siblings, pending); err != nil {
			for _, building := range pending {
				recordFailure(report, building.ID, err)
			}
			s.loggerFrom(ctx).WarnContext(ctx, "Group not addressed",
				slog.Int64("main_building_id", mainID),
				slog.String("association", association.String()),
				slog.Any("error", err),
			)

			continue
		}

		report.Addressed += len(pending)
		report.NeedsReview += countNeedsReview(pending)
	}

	return nil
}

func (s *addressingService) fillGroup(
	ctx context.Context,
	mainExternalID int64,
	association entity.AssociationType,
	siblings, pending []*entity.Building,
) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.BuildingTimeout)
	defer cancel()

	main, err := s.buildingRepo.FindBuildingByExternalID(ctx, mainExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return domainerrors.ErrMainBuildingNotFound.WithDetails(fmt.Sprintf("building_id %d", mainExternalID))
		}

		return errors.Wrap(err, "failed to find main building")
	}
	if main.HouseNo == "" {
		return domainerrors.ErrNotAddressed.WithDetails(fmt.Sprintf("main building %d", main.ID))
	}

	if association == entity.AssociationAssociate {
		for _, building := range pending {
			addressing.PropagateAssociate(main, building)
		}
	} else {
		seq := addressing.NewSuffixSequence(siblings)
		for _, building := range pending {
			suffix, err := seq.Next()
			if err != nil {
				return errors.Wrapf(err, "main building %d", main.ID)
			}
			addressing.PropagateDissociate(main, building, suffix)
		}
	}

	return s.writeGroup(ctx, pending)
}

// writeGroup persists a group atomically.
func (s *addressingService) writeGroup(ctx context.Context, group []*entity.Building) error {
	if len(group) == 0 {
		return nil
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewBuildingRepository()
		for _, building := range group {
			if err := repo.UpdateAddress(ctx, building); err != nil {
				return errors.Wrapf(err, "update building %d", building.ID)
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.ErrTransactionFailed.WithDetails(err.Error())
	}

	return nil
}

func (s *addressingService) findMain(ctx context.Context, building *entity.Building) (*entity.Building, error) {
	if building.MainBuildingID == nil {
		return nil, domainerrors.ErrInvalidAssociation.WithDetails(fmt.Sprintf("building %d has no main_building_id", building.ID))
	}

	main, err := s.buildingRepo.FindBuildingByExternalID(ctx, *building.MainBuildingID)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrMainBuildingNotFound.WithDetails(fmt.Sprintf("building_id %d", *building.MainBuildingID))
		}

		return nil, errors.Wrap(err, "failed to find main building")
	}
	if main.AssociationType != entity.AssociationMain {
		return nil, domainerrors.ErrInvalidAssociation.WithDetails(fmt.Sprintf("building_id %d is not a main building", main.ExternalID))
	}
	if main.HouseNo == "" {
		return nil, domainerrors.ErrNotAddressed.WithDetails(fmt.Sprintf("main building %d", main.ID))
	}

	return main, nil
}

// dissociateSuffixFor keeps a suffix the building already holds under the
// current Main number when no sibling shares it, otherwise takes the next one.
func dissociateSuffixFor(building, main *entity.Building, siblings []*entity.Building) (string, error) {
	if letter, ok := addressing.DissociateSuffix(building.HouseNo); ok &&
		building.HouseNo[:len(building.HouseNo)-2] == main.HouseNo {
		shared := false
		for _, sibling := range siblings {
			if sibling.ID == building.ID {
				continue
			}
			if other, ok := addressing.DissociateSuffix(sibling.HouseNo); ok && other == letter {
				shared = true

				break
			}
		}
		if !shared {
			return string(letter), nil
		}
	}

	return addressing.NextDissociateSuffix(siblings, building.ID)
}

func groupByMain(members []*entity.Building) (map[int64][]*entity.Building, []*entity.Building) {
	groups := make(map[int64][]*entity.Building)
	var orphans []*entity.Building
	for _, building := range members {
		if building.MainBuildingID == nil {
			orphans = append(orphans, building)

			continue
		}
		groups[*building.MainBuildingID] = append(groups[*building.MainBuildingID], building)
	}

	return groups, orphans
}

func pendingMembers(siblings []*entity.Building) []*entity.Building {
	var pending []*entity.Building
	for _, building := range sortedByID(siblings) {
		if building.HouseNo == "" {
			pending = append(pending, building)
		}
	}

	return pending
}

func sortedByID(buildings []*entity.Building) []*entity.Building {
	sorted := append([]*entity.Building(nil), buildings...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return sorted
}

func countNeedsReview(buildings []*entity.Building) int {
	count := 0
	for _, building := range buildings {
		if building.NeedsReview {
			count++
		}
	}

	return count
}

func memberResult(building *entity.Building, previous string) *usecase.BuildingResult {
	return &usecase.BuildingResult{
		BuildingID:      building.ID,
		Association:     building.AssociationType,
		HouseNo:         building.HouseNo,
		PreviousHouseNo: previous,
		Direction:       building.Direction,
		RoadIDs:         building.RoadIDs,
		MetricAddress:   building.MetricAddress,
		NeedsReview:     building.NeedsReview,
	}
}
