// Package geometry holds the pure geometric operations used by addressing:
// reprojection to one metric CRS, linear referencing and azimuths.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// WGS84 ellipsoid and UTM constants.
const (
	wgs84SemiMajor   = 6378137.0
	wgs84Flattening  = 1 / 298.257223563
	utmScaleFactor   = 0.9996
	utmFalseEasting  = 500000.0
	utmFalseNorthing = 10000000.0
)

// Projector moves geographic geometries into the metric CRS used for addressing.
type Projector interface {
	ToMetric(g orb.Geometry) orb.Geometry
	ToMetricPoint(p orb.Point) orb.Point
}

// UTM is a fixed transverse Mercator zone on WGS84. The zone is never chosen
// per coordinate so the whole dataset shares one CRS.
type UTM struct {
	Zone     int
	Northern bool
}

// NewUTM returns the projection for the given zone and hemisphere.
func NewUTM(zone int, northern bool) UTM {
	return UTM{Zone: zone, Northern: northern}
}

// SRID returns the EPSG code of the zone (326xx north, 327xx south).
func (u UTM) SRID() int {
	if u.Northern {
		return 32600 + u.Zone
	}

	return 32700 + u.Zone
}

// CentralMeridian returns the zone's central meridian in degrees.
func (u UTM) CentralMeridian() float64 {
	return float64(u.Zone-1)*6 - 180 + 3
}

// Project maps a lon/lat point to easting/northing. It satisfies orb.Projection.
func (u UTM) Project(p orb.Point) orb.Point {
	e2 := wgs84Flattening * (2 - wgs84Flattening)
	e4 := e2 * e2
	e6 := e4 * e2
	ep2 := e2 / (1 - e2)

	lat := p.Lat() * math.Pi / 180
	lon := p.Lon() * math.Pi / 180
	lon0 := u.CentralMeridian() * math.Pi / 180

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)

	n := wgs84SemiMajor / math.Sqrt(1-e2*sinLat*sinLat)
	t := tanLat * tanLat
	c := ep2 * cosLat * cosLat
	a := cosLat * (lon - lon0)

	m := wgs84SemiMajor * ((1-e2/4-3*e4/64-5*e6/256)*lat -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*lat) +
		(15*e4/256+45*e6/1024)*math.Sin(4*lat) -
		(35*e6/3072)*math.Sin(6*lat))

	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	easting := utmScaleFactor*n*(a+(1-t+c)*a3/6+(5-18*t+t*t+72*c-58*ep2)*a5/120) + utmFalseEasting
	northing := utmScaleFactor * (m + n*tanLat*(a2/2+(5-t+9*c+4*c*c)*a4/24+(61-58*t+t*t+600*c-330*ep2)*a6/720))

	if !u.Northern {
		northing += utmFalseNorthing
	}

	return orb.Point{easting, northing}
}

// ToMetric returns a projected copy of g; g itself is not modified.
func (u UTM) ToMetric(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}

	return project.Geometry(orb.Clone(g), u.Project)
}

// ToMetricPoint projects a single point.
func (u UTM) ToMetricPoint(p orb.Point) orb.Point {
	return u.Project(p)
}
