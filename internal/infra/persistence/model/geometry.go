// Package model holds the GORM-specific structs of the cadastral tables.
package model

import (
	"addressing/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
)

// WKB scans a geometry selected with ST_AsBinary. Columns holding it are
// read-only; they are never written back.
type WKB struct {
	Geometry orb.Geometry
}

// Scan implements sql.Scanner.
func (g *WKB) Scan(value any) error {
	if value == nil {
		g.Geometry = nil

		return nil
	}

	data, ok := value.([]byte)
	if !ok {
		return errors.Errorf("scan wkb: unsupported type %T", value)
	}
	if len(data) == 0 {
		g.Geometry = nil

		return nil
	}

	geom, err := wkb.Unmarshal(data)
	if err != nil {
		return errors.Wrap(err, "scan wkb")
	}
	g.Geometry = geom

	return nil
}

// Point returns the geometry as a point, or nil when it is not one.
func (g WKB) Point() *orb.Point {
	p, ok := g.Geometry.(orb.Point)
	if !ok {
		return nil
	}

	return &p
}
