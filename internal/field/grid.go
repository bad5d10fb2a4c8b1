package field

import (
	"fmt"
	"sort"
)

// Grid describes the horizontal discretization of the velocity data.
// Both axes are strictly increasing; the simulation runs on a single
// depth level.
type Grid struct {
	Lons  []float64
	Lats  []float64
	Depth float64
}

func NewGrid(lons, lats []float64, depth float64) (*Grid, error) {
	if len(lons) < 2 || len(lats) < 2 {
		return nil, fmt.Errorf("field: grid needs at least 2 points per axis, got %dx%d", len(lons), len(lats))
	}
	if !strictlyIncreasing(lons) {
		return nil, fmt.Errorf("field: longitude axis: %w", ErrAxisOrder)
	}
	if !strictlyIncreasing(lats) {
		return nil, fmt.Errorf("field: latitude axis: %w", ErrAxisOrder)
	}
	return &Grid{Lons: lons, Lats: lats, Depth: depth}, nil
}

func (g *Grid) NX() int { return len(g.Lons) }
func (g *Grid) NY() int { return len(g.Lats) }

func strictlyIncreasing(axis []float64) bool {
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			return false
		}
	}
	return true
}

// cellIndex returns i such that axis[i] <= v <= axis[i+1], or -1 when
// v lies outside the axis range. The right edge maps to the last cell
// so queries on the boundary stay inside the domain.
func cellIndex(axis []float64, v float64) int {
	if v < axis[0] || v > axis[len(axis)-1] {
		return -1
	}
	i := sort.SearchFloat64s(axis, v)
	if i > 0 {
		i--
	}
	if i > len(axis)-2 {
		i = len(axis) - 2
	}
	return i
}
