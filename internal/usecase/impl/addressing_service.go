// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"addressing/config"
	deliverycontext "addressing/internal/delivery/context"
	"addressing/internal/domain/addressing"
	"addressing/internal/domain/entity"
	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/domain/geometry"
	"addressing/internal/domain/repository"
	"addressing/internal/domain/service"
	"addressing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressingService implements the AddressingUsecase interface.
type addressingService struct {
	txManager    repository.TransactionManager
	buildingRepo repository.BuildingRepository
	roadRepo     repository.RoadRepository
	registry     service.HouseNumberRegistry
	publisher    service.EventPublisher
	projector    geometry.Projector
	allocator    *addressing.Allocator
	chains       *addressing.ChainBuilder
	cfg          *config.AddressingConfig
	logger       *slog.Logger

	seedMu sync.Mutex
	seeded bool
}

// AddressingServiceParams holds dependencies for AddressingService, injected by Fx.
type AddressingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BuildingRepo repository.BuildingRepository
	RoadRepo     repository.RoadRepository
	Registry     service.HouseNumberRegistry
	Publisher    service.EventPublisher
	Locator      service.RoadLocator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAddressingService wires the addressing pipeline from config.
func NewAddressingService(params AddressingServiceParams) usecase.AddressingUsecase {
	cfg := params.Config.Addressing
	if cfg == nil {
		cfg = config.DefaultAddressingConfig()
	}

	resolver := addressing.NewResolver(params.Locator, addressing.SearchPolicy{
		Radius:   cfg.SearchRadius,
		Step:     cfg.SearchRadiusStep,
		Attempts: cfg.SearchAttempts,
	})

	return &addressingService{
		txManager:    params.TxManager,
		buildingRepo: params.BuildingRepo,
		roadRepo:     params.RoadRepo,
		registry:     params.Registry,
		publisher:    params.Publisher,
		projector:    geometry.NewUTM(cfg.UTMZone, cfg.Northern),
		allocator: addressing.NewAllocator(params.Registry, addressing.Steps{
			Left:  cfg.LeftStep,
			Right: cfg.RightStep,
		}),
		chains: addressing.NewChainBuilder(resolver, addressing.ChainPolicy{
			MaxIDDepth:       cfg.MaxIDDepth,
			MaxDistanceDepth: cfg.MaxDistanceDepth,
		}),
		cfg:    cfg,
		logger: params.Logger,
	}
}

// AddressBuilding addresses a single building. Every failure is returned.
func (s *addressingService) AddressBuilding(ctx context.Context, buildingID int64) (*usecase.BuildingResult, error) {
	building, err := s.findBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	switch building.AssociationType {
	case entity.AssociationMain:
		if err := s.ensureSeeded(ctx); err != nil {
			return nil, err
		}

		return s.addressMain(ctx, building)
	case entity.AssociationAssociate, entity.AssociationDissociate:
		return s.addressMember(ctx, building)
	default:
		return nil, domainerrors.ErrInvalidAssociation.WithDetails(
			fmt.Sprintf("building %d has association %q", building.ID, building.AssociationType),
		)
	}
}

// ClearAddresses resets address blocks and releases the cleared buildings'
// claims. The registry is reseeded before the next Main building is addressed.
func (s *addressingService) ClearAddresses(ctx context.Context, ids []int64) (int64, error) {
	cleared, err := s.buildingRepo.ClearAddresses(ctx, ids)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear addresses")
	}

	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if err := s.releaseClaims(ctx, ids); err != nil {
		return cleared, err
	}
	s.seeded = false

	s.loggerFrom(ctx).InfoContext(ctx, "Addresses cleared",
		slog.Int64("cleared", cleared),
		slog.Int("requested", len(ids)),
	)

	return cleared, nil
}

func (s *addressingService) findBuilding(ctx context.Context, buildingID int64) (*entity.Building, error) {
	building, err := s.buildingRepo.FindBuildingByID(ctx, buildingID)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrBuildingNotFound.WithDetails(fmt.Sprintf("id %d", buildingID))
		}

		return nil, errors.Wrap(err, "failed to find building by ID")
	}

	return building, nil
}

// releaseClaims frees the registry numbers held by ids, or every number when
// ids is empty. Seeding only adds claims, so cleared ones must go here.
func (s *addressingService) releaseClaims(ctx context.Context, ids []int64) error {
	claims, err := s.registry.Snapshot(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read house number registry")
	}

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	for _, claim := range claims {
		if _, ok := wanted[claim.BuildingID]; len(ids) > 0 && !ok {
			continue
		}
		if err := s.registry.Release(ctx, claim.Number, claim.BuildingID); err != nil {
			return errors.Wrap(err, "failed to release cleared house number")
		}
	}

	return nil
}

// ensureSeeded loads the Main house numbers into the registry once.
func (s *addressingService) ensureSeeded(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if s.seeded {
		return nil
	}

	return s.seedLocked(ctx)
}

// reseed reloads the registry from the store, used at the start of a batch.
func (s *addressingService) reseed(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	return s.seedLocked(ctx)
}

func (s *addressingService) seedLocked(ctx context.Context) error {
	claims, err := s.buildingRepo.ListMainHouseNumbers(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list main house numbers")
	}
	if err := s.registry.Seed(ctx, claims); err != nil {
		return errors.Wrap(err, "failed to seed house number registry")
	}
	s.seeded = true

	return nil
}

// publishChanged announces a moved Main house number. A failed publish only
// leaves the group stale, so it is logged and not returned.
func (s *addressingService) publishChanged(ctx context.Context, building *entity.Building, previous string) {
	event := &service.AddressChangedEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EventID:         uuid.NewString(),
		BuildingID:      building.ID,
		ExternalID:      building.ExternalID,
		HouseNo:         building.HouseNo,
		PreviousHouseNo: previous,
	}

	if err := s.publisher.PublishAddressChanged(ctx, event); err != nil {
		s.loggerFrom(ctx).WarnContext(ctx, "Failed to publish address change",
			slog.Int64("building_id", building.ID),
			slog.Any("error", err),
		)
	}
}

func (s *addressingService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
