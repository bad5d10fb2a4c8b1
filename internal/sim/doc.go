// Package sim runs the Lagrangian transport loop.
//
// The [Engine] advances every particle per global timestep with a
// Runge-Kutta update, applies the boundary constraint, and records
// positions at the output cadence:
//
//   - [Config]: fixed timestep, total duration, recording cadence
//   - [Engine]: the per-step loop with parallel particle updates
//   - [Observer]: per-step progress hook
//
// # Thread Safety
//
// The per-step particle loop runs on worker goroutines with a barrier
// before time advances; each update touches only its own particle, so
// no locking is involved. An Engine itself is not safe for concurrent
// Run calls.
package sim
