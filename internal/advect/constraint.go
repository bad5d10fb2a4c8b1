package advect

// Constraint corrects a position after an integration step. It runs
// unconditionally after every step, never invalidates a particle, and
// can be swapped out for alternative boundary conditions.
type Constraint func(Position) Position

// WesternWall clamps longitude to a one-sided wall at minLon, modeling
// a strait sill that particles cannot cross. Idempotent.
func WesternWall(minLon float64) Constraint {
	return func(p Position) Position {
		if p.Lon < minLon {
			p.Lon = minLon
		}
		return p
	}
}

// Chain composes constraints left to right.
func Chain(cs ...Constraint) Constraint {
	return func(p Position) Position {
		for _, c := range cs {
			p = c(p)
		}
		return p
	}
}
