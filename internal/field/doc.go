// Package field holds the gridded ocean velocity data and its sampler.
//
// The package defines the read-only inputs of a drift run:
//
//   - [Grid]: the horizontal discretization (lon/lat axes, one depth level)
//   - [Snapshot]: u/v component arrays for one time instant
//   - [VectorField]: the time-ordered sequence of snapshots
//   - [Sampler]: bilinear space / linear time interpolation of velocity
//
// # Example
//
//	vf, _ := field.Load("MEDSEA2019.nc", field.LoadConfig{})
//	s := field.NewSampler(vf)
//	u, v, ok := s.Sample(4.7, 42.8, 12.5)
//
// # Thread Safety
//
// A VectorField is immutable after construction and a Sampler holds no
// mutable state, so both may be shared by any number of goroutines.
package field
