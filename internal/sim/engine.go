package sim

import (
	"context"
	"fmt"

	"github.com/CelineBarrier/seadrift/internal/advect"
	"github.com/CelineBarrier/seadrift/internal/traj"
)

// Engine advances a particle population through a velocity field with
// fixed-step RK4, a post-step boundary constraint, and cadence-based
// trajectory recording.
type Engine struct {
	deriv      advect.Derivative
	integ      advect.RK4
	constraint advect.Constraint
	observers  []Observer
}

func New(deriv advect.Derivative, constraint advect.Constraint) *Engine {
	return &Engine{
		deriv:      deriv,
		integ:      advect.NewRK4(),
		constraint: constraint,
	}
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Run integrates every seed for the configured duration, appending one
// batch to rec at day 0 and then at every OutputEvery-th step. A
// particle whose step cannot be evaluated is retired: its position
// stays frozen and is recorded as invalid from then on, without
// touching the other particles. Cancellation takes effect between
// steps only, leaving a consistent, possibly short, trajectory store.
func (e *Engine) Run(ctx context.Context, seeds []advect.Position, rec traj.Recorder, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	n := len(seeds)
	pos := make([]advect.Position, n)
	copy(pos, seeds)
	lost := make([]bool, n)
	batch := make([]traj.Sample, n)

	steps := int(cfg.DurationDays / cfg.DtDays)
	result := &Result{}

	rec.Append(0, snapshot(pos, lost, batch))
	result.Recorded++

	for step := 1; step <= steps; step++ {
		select {
		case <-ctx.Done():
			result.Lost = countLost(lost)
			return result, ctx.Err()
		default:
		}

		t := float64(step-1) * cfg.DtDays

		// Each particle reads only its own prior state and the shared
		// read-only field, so the loop parallelizes without locks; the
		// barrier inside parallelFor holds time back until every update
		// has landed.
		parallelFor(n, 64, func(start, end int) {
			for i := start; i < end; i++ {
				if lost[i] {
					continue
				}
				p, ok := e.integ.Step(e.deriv, pos[i], t, cfg.DtDays)
				if !ok {
					lost[i] = true
					continue
				}
				pos[i] = e.constraint(p)
			}
		})

		day := float64(step) * cfg.DtDays
		if step%cfg.OutputEvery == 0 {
			rec.Append(day, snapshot(pos, lost, batch))
			result.Recorded++
		}
		for _, o := range e.observers {
			o.OnStep(step, day)
		}
		result.StepsTaken++
	}

	result.Lost = countLost(lost)
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.DtDays <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %f", cfg.DtDays)
	}
	if cfg.DurationDays <= 0 {
		return fmt.Errorf("sim: duration must be positive, got %f", cfg.DurationDays)
	}
	if cfg.OutputEvery < 1 {
		return fmt.Errorf("sim: output cadence must be at least 1 step, got %d", cfg.OutputEvery)
	}
	return nil
}

func snapshot(pos []advect.Position, lost []bool, batch []traj.Sample) []traj.Sample {
	for i := range pos {
		batch[i] = traj.Sample{Lon: pos[i].Lon, Lat: pos[i].Lat, Valid: !lost[i]}
	}
	return batch
}

func countLost(lost []bool) int {
	n := 0
	for _, l := range lost {
		if l {
			n++
		}
	}
	return n
}
