package postgres

import (
	"context"
	"time"

	"addressing/internal/domain/entity"
	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/domain/repository"
	"addressing/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const buildingColumns = "id, building_id, road_id, association_type, main_building_id, " +
	"ST_AsBinary(centroid) AS centroid_wkb, ST_AsBinary(ref_centroid) AS ref_centroid_wkb, " +
	"road_width, road_type, road_lane, tole_name, owner_name, " +
	"house_no, direction, road_ids, metric_address, associate_road_name, needs_review, updated_at"

// buildingRepository implements the domain.BuildingRepository interface.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository is the constructor for buildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{db: db}
}

// FindBuildingByID retrieves a building by its internal ID.
func (repo *buildingRepository) FindBuildingByID(ctx context.Context, id int64) (*entity.Building, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBuildingByExternalID retrieves a building by its surveyed building_id.
func (repo *buildingRepository) FindBuildingByExternalID(ctx context.Context, externalID int64) (*entity.Building, error) {
	return repo.findOne(ctx, "building_id = ?", externalID)
}

func (repo *buildingRepository) findOne(ctx context.Context, query string, arg int64) (*entity.Building, error) {
	var buildingM model.BuildingModel
	err := repo.db.WithContext(ctx).
		Select(buildingColumns).
		Where(query, arg).
		Order("id").
		Take(&buildingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building")
	}

	return toBuildingDomain(&buildingM)
}

// ListBuildingIDsByAssociation returns the IDs of every building of the given type.
func (repo *buildingRepository) ListBuildingIDsByAssociation(ctx context.Context, association entity.AssociationType) ([]int64, error) {
	var ids []int64
	err := repo.db.WithContext(ctx).
		Model(&model.BuildingModel{}).
		Where("association_type = ?", association.String()).
		Order("id").
		Pluck("id", &ids).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list building ids by association")
	}

	return ids, nil
}

// ListBuildingsByAssociation retrieves every building of the given type.
func (repo *buildingRepository) ListBuildingsByAssociation(ctx context.Context, association entity.AssociationType) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel
	err := repo.db.WithContext(ctx).
		Select(buildingColumns).
		Where("association_type = ?", association.String()).
		Order("id").
		Find(&buildingModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list buildings by association")
	}

	return toBuildingsDomain(buildingModels)
}

// ListByMainBuilding retrieves the group members of one Main building.
func (repo *buildingRepository) ListByMainBuilding(ctx context.Context, mainExternalID int64, association entity.AssociationType) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel
	err := repo.db.WithContext(ctx).
		Select(buildingColumns).
		Where("main_building_id = ? AND association_type = ?", mainExternalID, association.String()).
		Order("id").
		Find(&buildingModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list buildings by main building")
	}

	return toBuildingsDomain(buildingModels)
}

// ListMainHouseNumbers returns the numeric house numbers held by Main buildings.
// Rows whose last component is not numeric are skipped.
func (repo *buildingRepository) ListMainHouseNumbers(ctx context.Context) ([]entity.HouseNumberClaim, error) {
	var rows []model.HouseNumberRow
	err := repo.db.WithContext(ctx).
		Model(&model.BuildingModel{}).
		Select("id, house_no").
		Where("association_type = ? AND house_no IS NOT NULL AND house_no <> ''", entity.AssociationMain.String()).
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list main house numbers")
	}

	claims := make([]entity.HouseNumberClaim, 0, len(rows))
	for _, row := range rows {
		if number, ok := entity.ParseHouseNumber(row.HouseNo); ok {
			claims = append(claims, entity.HouseNumberClaim{Number: number, BuildingID: row.ID})
		}
	}

	return claims, nil
}

// UpdateAddress writes the address block of a building.
func (repo *buildingRepository) UpdateAddress(ctx context.Context, building *entity.Building) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.BuildingModel{}).
		Where("id = ?", building.ID).
		Updates(addressColumns(building, now))

	if err := result.Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isAddressConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("address block rejected by constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update building address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuildingNotFound
	}

	building.UpdatedAt = now

	return nil
}

// ClearAddresses resets the address block of the given buildings, or of all buildings.
func (repo *buildingRepository) ClearAddresses(ctx context.Context, ids []int64) (int64, error) {
	cleared := map[string]any{
		"house_no":            nil,
		"direction":           nil,
		"road_ids":            nil,
		"metric_address":      nil,
		"associate_road_name": nil,
		"needs_review":        false,
		"updated_at":          time.Now(),
	}

	tx := repo.db.WithContext(ctx).Model(&model.BuildingModel{})
	if len(ids) > 0 {
		tx = tx.Where("id IN ?", ids)
	} else {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	}

	result := tx.Updates(cleared)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear building addresses")
	}

	return result.RowsAffected, nil
}

// CountAddressed returns the number of buildings that have a house number.
func (repo *buildingRepository) CountAddressed(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BuildingModel{}).
		Where("house_no IS NOT NULL AND house_no <> ''").
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count addressed buildings")
	}

	return count, nil
}

// --- Mapper Functions ---

// toBuildingDomain converts a GORM BuildingModel to a domain Building entity.
func toBuildingDomain(data *model.BuildingModel) (*entity.Building, error) {
	association, err := entity.ParseAssociationType(data.AssociationType)
	if err != nil {
		return nil, errors.Wrapf(err, "building %d", data.ID)
	}

	return &entity.Building{
		ID:                data.ID,
		ExternalID:        data.BuildingID,
		RoadID:            data.RoadID,
		AssociationType:   association,
		MainBuildingID:    data.MainBuildingID,
		Centroid:          data.Centroid.Point(),
		RefCentroid:       data.RefCentroid.Point(),
		RoadWidth:         derefOr(data.RoadWidth, 0),
		RoadType:          derefOr(data.RoadType, ""),
		RoadLane:          derefOr(data.RoadLane, ""),
		ToleName:          derefOr(data.ToleName, ""),
		OwnerName:         derefOr(data.OwnerName, ""),
		HouseNo:           derefOr(data.HouseNo, ""),
		Direction:         entity.ParseDirection(derefOr(data.Direction, "")),
		RoadIDs:           derefOr(data.RoadIDs, ""),
		MetricAddress:     derefOr(data.MetricAddress, ""),
		AssociateRoadName: derefOr(data.AssociateRoadName, ""),
		NeedsReview:       data.NeedsReview,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

func toBuildingsDomain(models []*model.BuildingModel) ([]*entity.Building, error) {
	buildings := make([]*entity.Building, 0, len(models))
	for _, buildingM := range models {
		building, err := toBuildingDomain(buildingM)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, building)
	}

	return buildings, nil
}

// addressColumns maps the writable address block; empty strings become NULL.
func addressColumns(data *entity.Building, now time.Time) map[string]any {
	return map[string]any{
		"road_id":             data.RoadID,
		"road_width":          data.RoadWidth,
		"road_type":           nullIfEmpty(data.RoadType),
		"road_lane":           nullIfEmpty(data.RoadLane),
		"tole_name":           nullIfEmpty(data.ToleName),
		"owner_name":          nullIfEmpty(data.OwnerName),
		"house_no":            nullIfEmpty(data.HouseNo),
		"direction":           nullIfEmpty(data.Direction.String()),
		"road_ids":            nullIfEmpty(data.RoadIDs),
		"metric_address":      nullIfEmpty(data.MetricAddress),
		"associate_road_name": nullIfEmpty(data.AssociateRoadName),
		"needs_review":        data.NeedsReview,
		"updated_at":          now,
	}
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func derefOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}

	return *value
}
