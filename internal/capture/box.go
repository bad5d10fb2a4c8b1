// Package capture detects particle arrivals in a target region and
// accumulates the cumulative-capture curve.
package capture

// Box is an axis-aligned geographic rectangle. Bounds are inclusive on
// all four sides.
type Box struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

func (b Box) Contains(lon, lat float64) bool {
	return lon >= b.LonMin && lon <= b.LonMax && lat >= b.LatMin && lat <= b.LatMax
}
