// Package seed turns coastal band cells into initial particle
// positions.
package seed

import (
	"math/rand"

	"github.com/CelineBarrier/seadrift/internal/advect"
	"github.com/CelineBarrier/seadrift/internal/coast"
	"github.com/CelineBarrier/seadrift/internal/field"
)

// Pick draws n distinct candidates without replacement, uniformly and
// with no spatial stratification. When the population does not exceed
// n every candidate is used exactly once: a seeding shortfall reduces
// the effective population instead of failing.
func Pick(candidates []coast.Cell, n int, rng *rand.Rand) []coast.Cell {
	if len(candidates) <= n {
		out := make([]coast.Cell, len(candidates))
		copy(out, candidates)
		return out
	}
	pool := make([]coast.Cell, len(candidates))
	copy(pool, candidates)
	// partial Fisher-Yates: only the first n slots need shuffling
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Positions maps picked cells to concrete coordinates at the grid's
// depth level.
func Positions(g *field.Grid, cells []coast.Cell) []advect.Position {
	out := make([]advect.Position, len(cells))
	for i, c := range cells {
		out[i] = advect.Position{Lon: g.Lons[c.Col], Lat: g.Lats[c.Row], Depth: g.Depth}
	}
	return out
}
