// Package coast derives particle release sites from a velocity
// snapshot: land classification, binary dilation, and the coastal band
// of sea cells hugging the land boundary.
package coast

import (
	"math"

	"github.com/CelineBarrier/seadrift/internal/field"
)

// Mask is a boolean array over the grid, row-major with rows indexed
// by latitude.
type Mask struct {
	NY, NX int
	cells  []bool
}

func NewMask(ny, nx int) Mask {
	return Mask{NY: ny, NX: nx, cells: make([]bool, ny*nx)}
}

func (m Mask) At(row, col int) bool     { return m.cells[row*m.NX+col] }
func (m Mask) Set(row, col int, v bool) { m.cells[row*m.NX+col] = v }

func (m Mask) Count() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

// Landmask classifies every cell of a snapshot: a cell is land when
// its u component is NaN, above the fill sentinel, or exactly zero.
func Landmask(snap field.Snapshot) Mask {
	ny, nx := snap.U.Shape[0], snap.U.Shape[1]
	m := NewMask(ny, nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			u := snap.U.Get(j, i)
			m.Set(j, i, math.IsNaN(u) || u > field.LandSentinel || u == 0)
		}
	}
	return m
}

// Dilate grows a mask by the full Moore neighborhood (8-connected) the
// given number of times.
func Dilate(m Mask, iterations int) Mask {
	cur := m
	for it := 0; it < iterations; it++ {
		next := NewMask(cur.NY, cur.NX)
		for j := 0; j < cur.NY; j++ {
			for i := 0; i < cur.NX; i++ {
				next.Set(j, i, cur.At(j, i) || hasSetNeighbor(cur, j, i))
			}
		}
		cur = next
	}
	return cur
}

func hasSetNeighbor(m Mask, row, col int) bool {
	for dj := -1; dj <= 1; dj++ {
		for di := -1; di <= 1; di++ {
			if dj == 0 && di == 0 {
				continue
			}
			j, i := row+dj, col+di
			if j < 0 || j >= m.NY || i < 0 || i >= m.NX {
				continue
			}
			if m.At(j, i) {
				return true
			}
		}
	}
	return false
}

// Band returns the halo of dilation lying in the sea: cells in the
// dilated land mask that are not land themselves.
func Band(land, dilated Mask) Mask {
	m := NewMask(land.NY, land.NX)
	for j := 0; j < land.NY; j++ {
		for i := 0; i < land.NX; i++ {
			m.Set(j, i, dilated.At(j, i) && !land.At(j, i))
		}
	}
	return m
}

// Cell addresses one grid cell of the band.
type Cell struct {
	Row, Col int
}

// Candidates lists the band cells whose longitude exceeds minLon. The
// cutoff excludes an unwanted basin, such as the Atlantic west of
// Gibraltar, from seeding.
func Candidates(g *field.Grid, band Mask, minLon float64) []Cell {
	var out []Cell
	for j := 0; j < band.NY; j++ {
		for i := 0; i < band.NX; i++ {
			if band.At(j, i) && g.Lons[i] > minLon {
				out = append(out, Cell{Row: j, Col: i})
			}
		}
	}
	return out
}
