package usecase

import (
	"context"

	"addressing/internal/domain/entity"
)

// BuildingResult is the outcome of addressing one building.
type BuildingResult struct {
	BuildingID      int64                  `json:"building_id"`
	Association     entity.AssociationType `json:"association"`
	HouseNo         string                 `json:"house_no"`
	PreviousHouseNo string                 `json:"previous_house_no,omitempty"`
	Direction       entity.Direction       `json:"direction"`
	RoadIDs         string                 `json:"road_ids"`
	MetricAddress   string                 `json:"metric_address"`
	NeedsReview     bool                   `json:"needs_review"`
}

// Changed reports whether the house number moved.
func (r *BuildingResult) Changed() bool {
	return r.HouseNo != r.PreviousHouseNo
}

// BuildingFailure records why one building of a batch was not addressed.
type BuildingFailure struct {
	BuildingID int64  `json:"building_id"`
	Skipped    bool   `json:"skipped"`
	Reason     string `json:"reason"`
}

// BatchReport summarises a batch run. Failures never abort the batch.
type BatchReport struct {
	Processed   int               `json:"processed"`
	Addressed   int               `json:"addressed"`
	Skipped     int               `json:"skipped"`
	Failed      int               `json:"failed"`
	NeedsReview int               `json:"needs_review"`
	WithHouseNo int64             `json:"with_house_no"`
	Failures    []BuildingFailure `json:"failures,omitempty"`
}

// AddressingUsecase computes and propagates metric addresses.
type AddressingUsecase interface {
	// AddressBuilding addresses one building according to its association type.
	AddressBuilding(ctx context.Context, buildingID int64) (*BuildingResult, error)

	// AddressAll runs the Main pass, then the Associate pass, then the Dissociate pass.
	AddressAll(ctx context.Context) (*BatchReport, error)

	// PropagateForMain rewrites the Associate and Dissociate buildings of one
	// Main building after its address changed.
	PropagateForMain(ctx context.Context, mainBuildingID int64) (*BatchReport, error)

	// ClearAddresses resets the address block of the given buildings, or of all
	// buildings when ids is empty.
	ClearAddresses(ctx context.Context, ids []int64) (int64, error)
}

// PlateUsecase renders house number plates.
type PlateUsecase interface {
	// RenderPlate returns a PNG QR code for an addressed building.
	RenderPlate(ctx context.Context, buildingID int64) ([]byte, error)
}
