package seed

import (
	"math/rand"
	"testing"

	"github.com/CelineBarrier/seadrift/internal/coast"
	"github.com/CelineBarrier/seadrift/internal/field"
)

func candidates(n int) []coast.Cell {
	out := make([]coast.Cell, n)
	for i := range out {
		out[i] = coast.Cell{Row: i / 100, Col: i % 100}
	}
	return out
}

func TestPickDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	picked := Pick(candidates(1000), 200, rng)

	if len(picked) != 200 {
		t.Fatalf("expected 200 picks, got %d", len(picked))
	}
	seen := make(map[coast.Cell]bool)
	for _, c := range picked {
		if seen[c] {
			t.Fatalf("duplicate pick %v", c)
		}
		seen[c] = true
	}
}

func TestPickShortfall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// requesting 10000 from a band of 500 degrades to 500, no error
	picked := Pick(candidates(500), 10000, rng)
	if len(picked) != 500 {
		t.Fatalf("expected all 500 candidates, got %d", len(picked))
	}

	seen := make(map[coast.Cell]bool)
	for _, c := range picked {
		if seen[c] {
			t.Fatalf("duplicate pick %v", c)
		}
		seen[c] = true
	}
}

func TestPickExactPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	picked := Pick(candidates(50), 50, rng)
	if len(picked) != 50 {
		t.Fatalf("expected 50 picks, got %d", len(picked))
	}
}

func TestPickDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := candidates(100)
	first := in[0]
	Pick(in, 10, rng)
	if in[0] != first {
		t.Error("Pick mutated its input slice")
	}
}

func TestPositions(t *testing.T) {
	g, err := field.NewGrid([]float64{0, 1, 2}, []float64{40, 41, 42}, 0.494)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	pos := Positions(g, []coast.Cell{{Row: 1, Col: 2}, {Row: 0, Col: 0}})
	if len(pos) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(pos))
	}
	if pos[0].Lon != 2 || pos[0].Lat != 41 {
		t.Errorf("expected (2, 41), got (%v, %v)", pos[0].Lon, pos[0].Lat)
	}
	if pos[0].Depth != 0.494 {
		t.Errorf("expected grid depth, got %v", pos[0].Depth)
	}
}
