package field

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Snapshot holds the u and v velocity components for one time instant,
// each with shape (len(Lats), len(Lons)).
type Snapshot struct {
	U, V *sparse.DenseArray
}

// VectorField is a time-ordered sequence of snapshots on a common
// grid. Times are days since the first snapshot. Queries outside the
// recorded time range clamp to the nearest snapshot instead of
// failing, so trajectories keep advecting through the tail of a run
// that outlasts the data.
type VectorField struct {
	Grid      *Grid
	Times     []float64
	Snapshots []Snapshot
}

func NewVectorField(grid *Grid, times []float64, snapshots []Snapshot) (*VectorField, error) {
	if len(times) == 0 || len(times) != len(snapshots) {
		return nil, fmt.Errorf("field: %d times for %d snapshots", len(times), len(snapshots))
	}
	if !strictlyIncreasing(times) && len(times) > 1 {
		return nil, fmt.Errorf("field: time axis: %w", ErrAxisOrder)
	}
	ny, nx := grid.NY(), grid.NX()
	for i, s := range snapshots {
		for _, a := range []*sparse.DenseArray{s.U, s.V} {
			if len(a.Shape) != 2 || a.Shape[0] != ny || a.Shape[1] != nx {
				return nil, fmt.Errorf("field: snapshot %d has shape %v, grid is %dx%d: %w",
					i, a.Shape, ny, nx, ErrShape)
			}
		}
	}
	return &VectorField{Grid: grid, Times: times, Snapshots: snapshots}, nil
}
