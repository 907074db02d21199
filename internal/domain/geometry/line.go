package geometry

import (
	"math"

	"addressing/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrUnsupportedGeometry is returned for anything other than (multi)line strings.
var ErrUnsupportedGeometry = errors.New("geometry is not a line string or multi line string")

// Line is a metric road centerline. Parts are measured end to end in order,
// the way a MultiLineString is linearly referenced.
type Line struct {
	parts orb.MultiLineString
}

// NewLine wraps a metric LineString or MultiLineString.
func NewLine(g orb.Geometry) (Line, error) {
	switch geom := g.(type) {
	case orb.LineString:
		if len(geom) == 0 {
			return Line{}, errors.Wrap(ErrUnsupportedGeometry, "empty line string")
		}

		return Line{parts: orb.MultiLineString{geom}}, nil
	case orb.MultiLineString:
		parts := make(orb.MultiLineString, 0, len(geom))
		for _, ls := range geom {
			if len(ls) > 0 {
				parts = append(parts, ls)
			}
		}
		if len(parts) == 0 {
			return Line{}, errors.Wrap(ErrUnsupportedGeometry, "empty multi line string")
		}

		return Line{parts: parts}, nil
	default:
		return Line{}, errors.Wrapf(ErrUnsupportedGeometry, "got %T", g)
	}
}

// Geometry returns the underlying multi line string.
func (l Line) Geometry() orb.MultiLineString {
	return l.parts
}

// Start returns the first vertex of the first part.
func (l Line) Start() orb.Point {
	return l.parts[0][0]
}

// Length returns the summed planar length of all parts.
func (l Line) Length() float64 {
	total := 0.0
	for _, ls := range l.parts {
		total += planar.Length(ls)
	}

	return total
}

// Centroid returns the length-weighted centroid of the line.
func (l Line) Centroid() orb.Point {
	centroid, _ := planar.CentroidArea(l.parts)

	return centroid
}

// ProjectPoint returns the distance along the line to the point on it nearest p.
// The first nearest segment wins ties.
func (l Line) ProjectPoint(p orb.Point) float64 {
	bestDistSq := math.MaxFloat64
	bestAlong := 0.0
	offset := 0.0

	for _, ls := range l.parts {
		if len(ls) == 1 {
			if d := distSq(ls[0], p); d < bestDistSq {
				bestDistSq = d
				bestAlong = offset
			}

			continue
		}

		for idx := 1; idx < len(ls); idx++ {
			a, b := ls[idx-1], ls[idx]
			segLen := planar.Distance(a, b)
			frac := segmentFraction(a, b, p)
			closest := orb.Point{a[0] + frac*(b[0]-a[0]), a[1] + frac*(b[1]-a[1])}

			if d := distSq(closest, p); d < bestDistSq {
				bestDistSq = d
				bestAlong = offset + frac*segLen
			}
			offset += segLen
		}
	}

	return bestAlong
}

// Interpolate returns the point at distance d along the line. Negative
// distances are measured back from the end; distances past either end stop
// at that end.
func (l Line) Interpolate(d float64) orb.Point {
	length := l.Length()
	if d < 0 {
		d += length
	}
	if d <= 0 {
		return l.Start()
	}

	walked := 0.0
	for _, ls := range l.parts {
		for idx := 1; idx < len(ls); idx++ {
			a, b := ls[idx-1], ls[idx]
			segLen := planar.Distance(a, b)
			if segLen > 0 && walked+segLen >= d {
				frac := (d - walked) / segLen

				return orb.Point{a[0] + frac*(b[0]-a[0]), a[1] + frac*(b[1]-a[1])}
			}
			walked += segLen
		}
	}

	last := l.parts[len(l.parts)-1]

	return last[len(last)-1]
}

// Azimuth returns atan2(dx, dy) from a to b: clockwise from grid north, in (-π, π].
func Azimuth(a, b orb.Point) float64 {
	return math.Atan2(b[0]-a[0], b[1]-a[1])
}

func segmentFraction(a, b, p orb.Point) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}

	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / lenSq

	return math.Max(0, math.Min(1, t))
}

func distSq(a, b orb.Point) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]

	return dx*dx + dy*dy
}
