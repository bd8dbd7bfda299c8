package frame

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
	"gonum.org/v1/gonum/spatial/r3"
)

// SunAt returns the unit direction toward the sun as seen from the given
// latitude and longitude (degrees, north and east positive). World axes are
// x east, y up, z north.
func SunAt(t time.Time, latitude, longitude float64) r3.Vec {
	pos := suncalc.GetPosition(t, latitude, longitude)
	// suncalc measures azimuth in radians from south, positive toward west.
	az := pos.Azimuth + math.Pi
	alt := pos.Altitude
	return r3.Unit(r3.Vec{
		X: math.Sin(az) * math.Cos(alt),
		Y: math.Sin(alt),
		Z: math.Cos(az) * math.Cos(alt),
	})
}

// SetSunFromLocation points the sun where it stands at time t over the
// given location.
func (p *CloudParams) SetSunFromLocation(t time.Time, latitude, longitude float64) {
	d := SunAt(t, latitude, longitude)
	p.SunX, p.SunY, p.SunZ = d.X, d.Y, d.Z
}
