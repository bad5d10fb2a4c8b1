package viz

import (
	"fmt"
	"math"

	"github.com/CelineBarrier/seadrift/internal/capture"
	"github.com/CelineBarrier/seadrift/internal/traj"
)

// TrackMap renders every stride-th trajectory onto a braille canvas,
// with the capture box outlined on top. Invalid samples break a
// polyline and never reappear. The result is a terminal block of
// width x height cells framed by the geographic bounds.
func TrackMap(store *traj.Store, box capture.Box, width, height, stride int) string {
	if stride < 1 {
		stride = 1
	}

	lonMin, lonMax := box.LonMin, box.LonMax
	latMin, latMax := box.LatMin, box.LatMax
	for p := 0; p < store.NumParticles(); p += stride {
		for _, s := range store.Track(p) {
			if !s.Valid {
				continue
			}
			lonMin = math.Min(lonMin, s.Lon)
			lonMax = math.Max(lonMax, s.Lon)
			latMin = math.Min(latMin, s.Lat)
			latMax = math.Max(latMax, s.Lat)
		}
	}
	if lonMax == lonMin {
		lonMax = lonMin + 1
	}
	if latMax == latMin {
		latMax = latMin + 1
	}

	c := NewCanvas(width, height)
	px := func(lon float64) int {
		return int((lon - lonMin) / (lonMax - lonMin) * float64(width*2-1))
	}
	py := func(lat float64) int {
		// north up
		return int((latMax - lat) / (latMax - latMin) * float64(height*4-1))
	}

	for p := 0; p < store.NumParticles(); p += stride {
		havePrev := false
		var prevX, prevY int
		for _, s := range store.Track(p) {
			if !s.Valid {
				break
			}
			x, y := px(s.Lon), py(s.Lat)
			if havePrev {
				c.Line(prevX, prevY, x, y)
			} else {
				c.Set(x, y)
			}
			prevX, prevY = x, y
			havePrev = true
		}
	}

	c.Rect(px(box.LonMin), py(box.LatMax), px(box.LonMax), py(box.LatMin))

	return fmt.Sprintf("lat %.2f..%.2f  lon %.2f..%.2f\n%s",
		latMin, latMax, lonMin, lonMax, c.String())
}
