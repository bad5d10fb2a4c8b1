package field

import (
	"math"
	"testing"

	"github.com/ctessum/sparse"
)

func testGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, 0.5)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return g
}

// fillSnapshot builds u = lat + lon and v constant, so bilinear
// interpolation has an exact closed form.
func fillSnapshot(g *Grid, v float64) Snapshot {
	u := sparse.ZerosDense(g.NY(), g.NX())
	vv := sparse.ZerosDense(g.NY(), g.NX())
	for j := 0; j < g.NY(); j++ {
		for i := 0; i < g.NX(); i++ {
			u.Set(g.Lats[j]+g.Lons[i], j, i)
			vv.Set(v, j, i)
		}
	}
	return Snapshot{U: u, V: vv}
}

func constSnapshot(g *Grid, u, v float64) Snapshot {
	ua := sparse.ZerosDense(g.NY(), g.NX())
	va := sparse.ZerosDense(g.NY(), g.NX())
	for i := range ua.Elements {
		ua.Elements[i] = u
		va.Elements[i] = v
	}
	return Snapshot{U: ua, V: va}
}

func TestSampleBilinear(t *testing.T) {
	g := testGrid(t)
	vf, err := NewVectorField(g, []float64{0}, []Snapshot{fillSnapshot(g, 2.0)})
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	s := NewSampler(vf)

	tests := []struct {
		lon, lat float64
		wantU    float64
	}{
		{0, 0, 0},
		{0.5, 0.5, 1.0},
		{1.25, 2.75, 4.0},
		{3, 3, 6.0}, // top-right corner, inclusive
	}

	for _, tt := range tests {
		u, v, ok := s.Sample(tt.lon, tt.lat, 0)
		if !ok {
			t.Errorf("Sample(%v, %v): unexpectedly undefined", tt.lon, tt.lat)
			continue
		}
		if math.Abs(u-tt.wantU) > 1e-12 {
			t.Errorf("Sample(%v, %v): expected u=%v, got %v", tt.lon, tt.lat, tt.wantU, u)
		}
		if v != 2.0 {
			t.Errorf("Sample(%v, %v): expected v=2, got %v", tt.lon, tt.lat, v)
		}
	}
}

func TestSampleOutsideDomain(t *testing.T) {
	g := testGrid(t)
	vf, _ := NewVectorField(g, []float64{0}, []Snapshot{constSnapshot(g, 1, 1)})
	s := NewSampler(vf)

	for _, q := range [][2]float64{{-1, 1}, {4, 1}, {1, -1}, {1, 4}} {
		if _, _, ok := s.Sample(q[0], q[1], 0); ok {
			t.Errorf("Sample(%v, %v): expected undefined outside domain", q[0], q[1])
		}
	}
}

func TestSampleMissingCorner(t *testing.T) {
	g := testGrid(t)

	nan := constSnapshot(g, 1, 1)
	nan.U.Set(math.NaN(), 1, 1)
	sentinel := constSnapshot(g, 1, 1)
	sentinel.V.Set(2e10, 2, 2)
	zero := constSnapshot(g, 0, 0)

	tests := []struct {
		name     string
		snap     Snapshot
		lon, lat float64
		wantOK   bool
	}{
		{"nan corner", nan, 0.5, 0.5, false},
		{"nan corner far away", nan, 2.5, 2.5, true},
		{"sentinel corner", sentinel, 1.5, 1.5, false},
		{"exact zero is water", zero, 0.5, 0.5, true},
	}

	for _, tt := range tests {
		vf, _ := NewVectorField(g, []float64{0}, []Snapshot{tt.snap})
		_, _, ok := NewSampler(vf).Sample(tt.lon, tt.lat, 0)
		if ok != tt.wantOK {
			t.Errorf("%s: expected ok=%v, got %v", tt.name, tt.wantOK, ok)
		}
	}
}

func TestSampleTimeInterpolation(t *testing.T) {
	g := testGrid(t)
	vf, err := NewVectorField(g, []float64{0, 10},
		[]Snapshot{constSnapshot(g, 1, 0), constSnapshot(g, 3, 0)})
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	s := NewSampler(vf)

	tests := []struct {
		tDays float64
		wantU float64
	}{
		{-5, 1}, // clamp before the first snapshot
		{0, 1},
		{5, 2}, // linear blend
		{10, 3},
		{25, 3}, // clamp past the last snapshot
	}

	for _, tt := range tests {
		u, _, ok := s.Sample(1.5, 1.5, tt.tDays)
		if !ok {
			t.Fatalf("t=%v: unexpectedly undefined", tt.tDays)
		}
		if math.Abs(u-tt.wantU) > 1e-12 {
			t.Errorf("t=%v: expected u=%v, got %v", tt.tDays, tt.wantU, u)
		}
	}
}
