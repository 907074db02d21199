package entity

import (
	"strconv"
	"strings"
	"time"

	"addressing/internal/errors"

	"github.com/paulmach/orb"
)

// AssociationType tells how a building obtains its address.
type AssociationType int

const (
	AssociationUnknown AssociationType = iota
	AssociationMain
	AssociationAssociate
	AssociationDissociate
)

// ErrUnknownAssociation is returned when a stored association type cannot be parsed.
var ErrUnknownAssociation = errors.New("unknown association type")

// ParseAssociationType converts the stored association value.
func ParseAssociationType(value string) (AssociationType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "main":
		return AssociationMain, nil
	case "associate":
		return AssociationAssociate, nil
	case "dissociate":
		return AssociationDissociate, nil
	default:
		return AssociationUnknown, errors.Wrapf(ErrUnknownAssociation, "association %q", value)
	}
}

func (a AssociationType) String() string {
	switch a {
	case AssociationMain:
		return "main"
	case AssociationAssociate:
		return "associate"
	case AssociationDissociate:
		return "dissociate"
	default:
		return "unknown"
	}
}

// Direction is the side of the road a building entrance faces.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionLeft
	DirectionRight
)

// ParseDirection converts the stored direction value. Empty maps to DirectionUnknown.
func ParseDirection(value string) Direction {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return DirectionLeft
	case "right":
		return DirectionRight
	default:
		return DirectionUnknown
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return ""
	}
}

// Building is a cadastral building record. Only the address block is written
// by the addressing use cases; everything else comes from ingestion.
type Building struct {
	ID              int64           // Internal primary key.
	ExternalID      int64           // Surveyed building identifier; Associate/Dissociate rows point here.
	RoadID          *int64          // Road.RoadID the entrance faces, nil when unknown.
	AssociationType AssociationType // Main, Associate or Dissociate.
	MainBuildingID  *int64          // ExternalID of the grouping Main building.
	Centroid        *orb.Point      // Footprint centre, EPSG:4326.
	RefCentroid     *orb.Point      // Entrance/gate location, EPSG:4326.

	// Attributes copied from the Main building to its group.
	RoadWidth float64
	RoadType  string
	RoadLane  string
	ToleName  string
	OwnerName string

	// Address block.
	HouseNo           string
	Direction         Direction
	RoadIDs           string
	MetricAddress     string
	AssociateRoadName string
	NeedsReview       bool

	UpdatedAt time.Time
}

// HouseNumber returns the final numeric component of the house number.
func (b *Building) HouseNumber() (int64, bool) {
	return ParseHouseNumber(b.HouseNo)
}

// ParseHouseNumber extracts the final "/"-separated numeric component.
func ParseHouseNumber(houseNo string) (int64, bool) {
	if houseNo == "" {
		return 0, false
	}

	last := houseNo
	if idx := strings.LastIndex(houseNo, "/"); idx >= 0 {
		last = houseNo[idx+1:]
	}

	number, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, false
	}

	return number, true
}

// HouseNumberClaim records which Main building holds a house number.
type HouseNumberClaim struct {
	Number     int64
	BuildingID int64
}
