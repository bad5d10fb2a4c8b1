package capture

import (
	"math"
	"sort"

	"github.com/CelineBarrier/seadrift/internal/traj"
)

// Point is one sample of the cumulative-capture curve.
type Point struct {
	Day   float64 `json:"day" csv:"day"`
	Count int     `json:"count" csv:"count"`
}

// Result holds the permanent capture set and the cumulative curve.
// Both grow monotonically: a captured particle is never removed and
// the count never decreases.
type Result struct {
	Captured map[int]bool
	Curve    []Point
}

func (r *Result) Contains(p int) bool { return r.Captured[p] }
func (r *Result) Count() int          { return len(r.Captured) }

// CapturedIndices returns the capture set in ascending particle order.
func (r *Result) CapturedIndices() []int {
	out := make([]int, 0, len(r.Captured))
	for p := range r.Captured {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Analyze folds over the recorded output steps in time order, carrying
// the capture set and curve. From the maturation day onward, every
// valid particle position inside the box joins the set; membership is
// idempotent. A NaN day stops the whole pass, not just that step — a
// broken time axis invalidates every later comparison. Analyze is a
// pure function of the store, so re-running it yields an identical
// result.
func Analyze(store *traj.Store, box Box, maturationDays float64) *Result {
	res := &Result{Captured: make(map[int]bool)}

	for t := 0; t < store.NumSteps(); t++ {
		day := store.Day(t)
		if math.IsNaN(day) {
			break
		}

		if day >= maturationDays {
			for p := 0; p < store.NumParticles(); p++ {
				if res.Captured[p] {
					continue
				}
				s := store.At(p, t)
				if s.Valid && box.Contains(s.Lon, s.Lat) {
					res.Captured[p] = true
				}
			}
		}

		res.Curve = append(res.Curve, Point{Day: day, Count: len(res.Captured)})
	}

	return res
}
