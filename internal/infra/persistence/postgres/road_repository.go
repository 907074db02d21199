package postgres

import (
	"context"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/repository"
	"addressing/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const roadColumns = "id, road_id, road_category, road_name_en, ST_AsBinary(geom) AS geom_wkb"

// roadRepository implements the domain.RoadRepository interface.
type roadRepository struct {
	db *gorm.DB
}

// NewRoadRepository is the constructor for roadRepository.
func NewRoadRepository(db *gorm.DB) repository.RoadRepository {
	return &roadRepository{db: db}
}

// FindRoadByRoadID retrieves the latest geometry revision of a road.
func (repo *roadRepository) FindRoadByRoadID(ctx context.Context, roadID int64) (*entity.Road, error) {
	var roadM model.RoadModel
	err := repo.db.WithContext(ctx).
		Select(roadColumns).
		Where("road_id = ?", roadID).
		Order("id DESC").
		Take(&roadM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoadNotFound
		}

		return nil, errors.Wrap(err, "failed to find road by road_id")
	}

	return toRoadDomain(&roadM)
}

// ListRoads retrieves the latest revision of every road.
func (repo *roadRepository) ListRoads(ctx context.Context) ([]*entity.Road, error) {
	var roadModels []*model.RoadModel
	err := repo.db.WithContext(ctx).
		Raw("SELECT DISTINCT ON (road_id) " + roadColumns + " FROM roads ORDER BY road_id, id DESC").
		Scan(&roadModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list roads")
	}

	roads := make([]*entity.Road, 0, len(roadModels))
	for _, roadM := range roadModels {
		road, err := toRoadDomain(roadM)
		if err != nil {
			return nil, err
		}
		roads = append(roads, road)
	}

	return roads, nil
}

// --- Mapper Functions ---

// toRoadDomain converts a GORM RoadModel to a domain Road entity.
func toRoadDomain(data *model.RoadModel) (*entity.Road, error) {
	category, err := entity.ParseRoadCategory(data.RoadCategory)
	if err != nil {
		return nil, errors.Wrapf(err, "road %d", data.RoadID)
	}

	return &entity.Road{
		ID:       data.ID,
		RoadID:   data.RoadID,
		Category: category,
		Name:     data.RoadNameEn,
		Geometry: data.Geom.Geometry,
	}, nil
}
