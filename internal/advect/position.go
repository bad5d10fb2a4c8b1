package advect

import "math"

// Position is a particle location in degrees plus its fixed depth in
// meters.
type Position struct {
	Lon, Lat, Depth float64
}

func (p Position) Valid() bool {
	return !math.IsNaN(p.Lon) && !math.IsNaN(p.Lat)
}
