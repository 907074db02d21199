// Package addressing holds the pure address computation: side-of-road
// classification, parity rounding, house number allocation, connection
// resolution, chain walking and group propagation.
package addressing

import (
	"math"

	"addressing/internal/domain/entity"
	"addressing/internal/domain/geometry"

	"github.com/paulmach/orb"
)

// Classify reports which side of line the point g lies on, relative to the
// line's direction of travel at the point nearest g.
//
// The ≥π branch keeps the historical asymmetry: a wrap-around difference is
// classified as Right when A > B but as Left when B > A.
func Classify(g orb.Point, line geometry.Line) entity.Direction {
	d := line.ProjectPoint(g)
	ip := line.Interpolate(d)
	ipPrev := line.Interpolate(math.Max(d-1, 0))

	azimuthA := geometry.Azimuth(g, ip)
	azimuthB := geometry.Azimuth(ipPrev, ip)

	switch {
	case azimuthA > azimuthB && azimuthA-azimuthB < math.Pi:
		return entity.DirectionLeft
	case azimuthB > azimuthA && azimuthB-azimuthA < math.Pi:
		return entity.DirectionRight
	case azimuthA > azimuthB && azimuthA-azimuthB >= math.Pi:
		return entity.DirectionRight
	default:
		return entity.DirectionLeft
	}
}
