package field

import (
	"math"
	"sort"

	"github.com/ctessum/sparse"
)

// LandSentinel marks missing data in the source files: values above it
// are fill values over land.
const LandSentinel = 1e10

// Sampler interpolates a velocity vector at an arbitrary position and
// time: bilinear over the four enclosing grid cells, linear between
// the bracketing snapshots, clamped to the nearest snapshot outside
// the recorded time range. It is a pure function of the immutable
// field.
type Sampler struct {
	f *VectorField
}

func NewSampler(f *VectorField) *Sampler {
	return &Sampler{f: f}
}

// Sample returns the velocity in m/s at (lon, lat) and time tDays.
// ok is false when the position lies outside the grid or any corner of
// the enclosing cell holds missing data. Exact zeros interpolate
// normally: zero velocity is valid water to the sampler, only the
// coastal mask treats it as land.
func (s *Sampler) Sample(lon, lat, tDays float64) (u, v float64, ok bool) {
	g := s.f.Grid
	i := cellIndex(g.Lons, lon)
	j := cellIndex(g.Lats, lat)
	if i < 0 || j < 0 {
		return 0, 0, false
	}
	wx := (lon - g.Lons[i]) / (g.Lons[i+1] - g.Lons[i])
	wy := (lat - g.Lats[j]) / (g.Lats[j+1] - g.Lats[j])

	k0, k1, wt := s.timeBracket(tDays)

	u0, v0, ok := sampleSnapshot(s.f.Snapshots[k0], j, i, wx, wy)
	if !ok {
		return 0, 0, false
	}
	if k0 == k1 {
		return u0, v0, true
	}
	u1, v1, ok := sampleSnapshot(s.f.Snapshots[k1], j, i, wx, wy)
	if !ok {
		return 0, 0, false
	}
	return u0 + wt*(u1-u0), v0 + wt*(v1-v0), true
}

// timeBracket finds the snapshots enclosing tDays and the blend weight
// toward the later one. Times outside the range clamp to the first or
// last snapshot.
func (s *Sampler) timeBracket(tDays float64) (k0, k1 int, w float64) {
	times := s.f.Times
	last := len(times) - 1
	if tDays <= times[0] {
		return 0, 0, 0
	}
	if tDays >= times[last] {
		return last, last, 0
	}
	k1 = sort.SearchFloat64s(times, tDays)
	k0 = k1 - 1
	w = (tDays - times[k0]) / (times[k1] - times[k0])
	return k0, k1, w
}

func sampleSnapshot(snap Snapshot, j, i int, wx, wy float64) (u, v float64, ok bool) {
	u, ok = bilinear(snap.U, j, i, wx, wy)
	if !ok {
		return 0, 0, false
	}
	v, ok = bilinear(snap.V, j, i, wx, wy)
	if !ok {
		return 0, 0, false
	}
	return u, v, true
}

func bilinear(a *sparse.DenseArray, j, i int, wx, wy float64) (float64, bool) {
	v00 := a.Get(j, i)
	v01 := a.Get(j, i+1)
	v10 := a.Get(j+1, i)
	v11 := a.Get(j+1, i+1)
	for _, c := range [4]float64{v00, v01, v10, v11} {
		if math.IsNaN(c) || c > LandSentinel {
			return 0, false
		}
	}
	top := v00 + wx*(v01-v00)
	bottom := v10 + wx*(v11-v10)
	return top + wy*(bottom-top), true
}
