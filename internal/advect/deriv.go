package advect

import (
	"math"

	"github.com/CelineBarrier/seadrift/internal/field"
)

const (
	// metersPerDegree is the meridional arc length of one degree on the
	// spherical mesh: 1852 m per nautical mile, 60 nm per degree.
	metersPerDegree = 1852.0 * 60.0
	secondsPerDay   = 86400.0
)

// Derivative gives d(lon,lat)/dt in degrees per day at a position and
// time. ok is false where the velocity cannot be sampled.
type Derivative func(p Position, tDays float64) (dLon, dLat float64, ok bool)

// FieldDerivative adapts a velocity sampler (m/s) to degrees per day,
// with the zonal term widened by 1/cos(lat) for meridian convergence.
func FieldDerivative(s *field.Sampler) Derivative {
	return func(p Position, tDays float64) (float64, float64, bool) {
		u, v, ok := s.Sample(p.Lon, p.Lat, tDays)
		if !ok {
			return 0, 0, false
		}
		dLon := u * secondsPerDay / (metersPerDegree * math.Cos(p.Lat*math.Pi/180))
		dLat := v * secondsPerDay / metersPerDegree
		return dLon, dLat, true
	}
}
