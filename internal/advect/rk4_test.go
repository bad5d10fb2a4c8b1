package advect

import (
	"math"
	"testing"
)

// rotation is an analytic velocity field with solution
// (lon, lat)(t) = (cos t, sin t) for a particle starting at (1, 0).
func rotation(p Position, t float64) (float64, float64, bool) {
	return -p.Lat, p.Lon, true
}

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	p := Position{Lon: 1, Lat: 0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		var ok bool
		p, ok = integ.Step(rotation, p, float64(i)*dt, dt)
		if !ok {
			t.Fatalf("step %d unexpectedly undefined", i)
		}
	}

	tEnd := float64(steps) * dt
	if math.Abs(p.Lon-math.Cos(tEnd)) > 1e-6 {
		t.Errorf("lon error too large: got %.8f, expected %.8f", p.Lon, math.Cos(tEnd))
	}
	if math.Abs(p.Lat-math.Sin(tEnd)) > 1e-6 {
		t.Errorf("lat error too large: got %.8f, expected %.8f", p.Lat, math.Sin(tEnd))
	}
}

func TestRK4PreservesDepth(t *testing.T) {
	p := Position{Lon: 1, Lat: 0, Depth: 0.494}
	p, ok := NewRK4().Step(rotation, p, 0, 0.1)
	if !ok {
		t.Fatal("step unexpectedly undefined")
	}
	if p.Depth != 0.494 {
		t.Errorf("depth changed to %v", p.Depth)
	}
}

func TestRK4UndefinedSubStage(t *testing.T) {
	// defined at the start but not at the midpoint predictions
	edge := func(p Position, tm float64) (float64, float64, bool) {
		if p.Lon > 1.0 {
			return 0, 0, false
		}
		return 10, 0, true
	}

	start := Position{Lon: 1, Lat: 0}
	p, ok := NewRK4().Step(edge, start, 0, 1.0)
	if ok {
		t.Error("expected the whole step to be undefined")
	}
	if p != start {
		t.Errorf("undefined step should return the input position, got %+v", p)
	}
}
