// Package entity contains the core business objects of the addressing domain.
package entity

import (
	"strings"

	"addressing/internal/errors"

	"github.com/paulmach/orb"
)

// RoadCategory ranks a road inside the network hierarchy.
type RoadCategory int

const (
	RoadCategoryUnknown RoadCategory = iota
	RoadCategoryMajor
	RoadCategoryMinor
	RoadCategorySubsidiary
)

// ErrUnknownRoadCategory is returned when a stored category cannot be parsed.
var ErrUnknownRoadCategory = errors.New("unknown road category")

// ParseRoadCategory converts the stored category value into a RoadCategory.
func ParseRoadCategory(value string) (RoadCategory, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "major":
		return RoadCategoryMajor, nil
	case "minor":
		return RoadCategoryMinor, nil
	case "subsidiary":
		return RoadCategorySubsidiary, nil
	default:
		return RoadCategoryUnknown, errors.Wrapf(ErrUnknownRoadCategory, "category %q", value)
	}
}

func (c RoadCategory) String() string {
	switch c {
	case RoadCategoryMajor:
		return "major"
	case RoadCategoryMinor:
		return "minor"
	case RoadCategorySubsidiary:
		return "subsidiary"
	default:
		return "unknown"
	}
}

// IsTrunk reports whether the road ends a connection chain.
func (c RoadCategory) IsTrunk() bool {
	return c == RoadCategoryMajor || c == RoadCategoryMinor
}

// Priority orders categories for connection selection; lower wins.
func (c RoadCategory) Priority() int {
	switch c {
	case RoadCategoryMajor:
		return 0
	case RoadCategoryMinor:
		return 1
	case RoadCategorySubsidiary:
		return 2
	default:
		return 3
	}
}

// Road is one geometry revision of a road. RoadID is the stable join key and
// may repeat across revisions.
type Road struct {
	ID       int64        // Internal primary key.
	RoadID   int64        // External road identifier referenced by buildings.
	Category RoadCategory // Position in the road hierarchy.
	Name     string       // Display name used for metric addresses.
	Geometry orb.Geometry // orb.LineString or orb.MultiLineString in EPSG:4326.
}
