package coast

import (
	"math"
	"testing"

	"github.com/CelineBarrier/seadrift/internal/field"
	"github.com/ctessum/sparse"
)

// islandSnapshot builds an ny x nx sea with a single land cell in the
// middle, marked by the given value.
func islandSnapshot(ny, nx int, landValue float64) field.Snapshot {
	u := sparse.ZerosDense(ny, nx)
	v := sparse.ZerosDense(ny, nx)
	for i := range u.Elements {
		u.Elements[i] = 0.1
		v.Elements[i] = 0.1
	}
	u.Elements[(ny/2)*nx+nx/2] = landValue
	return field.Snapshot{U: u, V: v}
}

func TestLandmaskClassification(t *testing.T) {
	tests := []struct {
		name      string
		landValue float64
	}{
		{"nan", math.NaN()},
		{"sentinel", 2e10},
		{"exact zero", 0},
	}

	for _, tt := range tests {
		m := Landmask(islandSnapshot(5, 5, tt.landValue))
		if !m.At(2, 2) {
			t.Errorf("%s: center cell should be land", tt.name)
		}
		if m.Count() != 1 {
			t.Errorf("%s: expected 1 land cell, got %d", tt.name, m.Count())
		}
	}
}

func TestBandDisjointFromLand(t *testing.T) {
	land := Landmask(islandSnapshot(9, 9, math.NaN()))
	band := Band(land, Dilate(land, 2))

	for j := 0; j < 9; j++ {
		for i := 0; i < 9; i++ {
			if band.At(j, i) && land.At(j, i) {
				t.Fatalf("cell (%d,%d) is both land and band", j, i)
			}
		}
	}
	if band.Count() == 0 {
		t.Error("expected a non-empty coastal band")
	}
}

func TestDilateMooreNeighborhood(t *testing.T) {
	land := Landmask(islandSnapshot(5, 5, math.NaN()))
	d := Dilate(land, 1)

	// one iteration of the full Moore neighborhood turns 1 cell into 3x3
	if d.Count() != 9 {
		t.Errorf("expected 9 cells after one dilation, got %d", d.Count())
	}
	if !d.At(1, 1) || !d.At(3, 3) {
		t.Error("diagonal neighbors should be dilated (8-connectivity)")
	}
}

func TestDilationMonotonic(t *testing.T) {
	land := Landmask(islandSnapshot(15, 15, math.NaN()))

	prev := Band(land, Dilate(land, 1))
	for iters := 2; iters <= 5; iters++ {
		cur := Band(land, Dilate(land, iters))
		for j := 0; j < 15; j++ {
			for i := 0; i < 15; i++ {
				if prev.At(j, i) && !cur.At(j, i) {
					t.Fatalf("band shrank at (%d,%d) going to %d iterations", j, i, iters)
				}
			}
		}
		prev = cur
	}
}

func TestCandidatesLongitudeCutoff(t *testing.T) {
	g, err := field.NewGrid([]float64{-7, -6, -5, -4, -3}, []float64{40, 41, 42, 43, 44}, 0)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	band := NewMask(5, 5)
	for i := 0; i < 5; i++ {
		band.Set(2, i, true)
	}

	cells := Candidates(g, band, -5.5)
	if len(cells) != 3 {
		t.Fatalf("expected 3 candidates east of -5.5, got %d", len(cells))
	}
	for _, c := range cells {
		if g.Lons[c.Col] <= -5.5 {
			t.Errorf("candidate at lon %v violates the cutoff", g.Lons[c.Col])
		}
	}
}
