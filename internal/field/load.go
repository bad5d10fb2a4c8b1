package field

import (
	"fmt"
	"os"
	"strings"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// LoadConfig names the velocity variables inside the input file.
// Zero values fall back to the CMEMS convention (uo/vo).
type LoadConfig struct {
	UVar string
	VVar string
}

const (
	defaultUVar = "uo"
	defaultVVar = "vo"
)

// Load reads a classic netCDF velocity file into a VectorField.
// Expected layout: lon, lat and time axis variables, an optional depth
// variable, and u/v variables with shape time×depth×lat×lon (the first
// depth level is used) or time×lat×lon. Variables may be stored as
// float32 or float64. The time axis is normalized to days since the
// first snapshot using the prefix of the variable's "units" attribute.
func Load(path string, cfg LoadConfig) (*VectorField, error) {
	if cfg.UVar == "" {
		cfg.UVar = defaultUVar
	}
	if cfg.VVar == "" {
		cfg.VVar = defaultVVar
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("field: opening %s: %w", path, err)
	}
	defer f.Close()

	nc, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("field: reading %s: %w", path, err)
	}

	lons, err := readFloats(nc, "lon")
	if err != nil {
		return nil, fmt.Errorf("field: %s: %w", path, err)
	}
	lats, err := readFloats(nc, "lat")
	if err != nil {
		return nil, fmt.Errorf("field: %s: %w", path, err)
	}

	depth := 0.0
	if hasVariable(nc, "depth") {
		depths, err := readFloats(nc, "depth")
		if err != nil {
			return nil, fmt.Errorf("field: %s: %w", path, err)
		}
		if len(depths) > 0 {
			depth = depths[0]
		}
	}

	grid, err := NewGrid(lons, lats, depth)
	if err != nil {
		return nil, fmt.Errorf("field: %s: %w", path, err)
	}

	rawTimes, err := readFloats(nc, "time")
	if err != nil {
		return nil, fmt.Errorf("field: %s: %w", path, err)
	}
	times := normalizeTimes(rawTimes, timeUnits(nc))

	uSlices, err := readComponent(nc, cfg.UVar, grid, len(times))
	if err != nil {
		return nil, fmt.Errorf("field: %s: %w", path, err)
	}
	vSlices, err := readComponent(nc, cfg.VVar, grid, len(times))
	if err != nil {
		return nil, fmt.Errorf("field: %s: %w", path, err)
	}

	snapshots := make([]Snapshot, len(times))
	for k := range snapshots {
		snapshots[k] = Snapshot{U: uSlices[k], V: vSlices[k]}
	}
	vf, err := NewVectorField(grid, times, snapshots)
	if err != nil {
		return nil, fmt.Errorf("field: %s: %w", path, err)
	}
	return vf, nil
}

func hasVariable(nc *cdf.File, name string) bool {
	for _, v := range nc.Header.Variables() {
		if v == name {
			return true
		}
	}
	return false
}

// readFloats reads a whole variable into a float64 slice, accepting
// float32 or float64 storage.
func readFloats(nc *cdf.File, name string) ([]float64, error) {
	if !hasVariable(nc, name) {
		return nil, fmt.Errorf("%q: %w", name, ErrMissingVariable)
	}
	r := nc.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	switch b := buf.(type) {
	case []float64:
		out := make([]float64, len(b))
		copy(out, b)
		return out, nil
	case []float32:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrVariableType)
	}
}

// readComponent reads one velocity variable and slices it into one
// 2-D array per snapshot, keeping only the first depth level of 4-D
// variables.
func readComponent(nc *cdf.File, name string, grid *Grid, nt int) ([]*sparse.DenseArray, error) {
	dims := nc.Header.Lengths(name)
	ny, nx := grid.NY(), grid.NX()

	var nz int
	switch len(dims) {
	case 4:
		nz = dims[1]
		if dims[0] != nt || dims[2] != ny || dims[3] != nx {
			return nil, fmt.Errorf("%q has shape %v, expected [%d depth %d %d]: %w",
				name, dims, nt, ny, nx, ErrShape)
		}
	case 3:
		nz = 1
		if dims[0] != nt || dims[1] != ny || dims[2] != nx {
			return nil, fmt.Errorf("%q has shape %v, expected [%d %d %d]: %w",
				name, dims, nt, ny, nx, ErrShape)
		}
	default:
		return nil, fmt.Errorf("%q has %d dimensions, expected 3 or 4: %w",
			name, len(dims), ErrShape)
	}

	flat, err := readFloats(nc, name)
	if err != nil {
		return nil, err
	}

	plane := ny * nx
	out := make([]*sparse.DenseArray, nt)
	for k := 0; k < nt; k++ {
		a := sparse.ZerosDense(ny, nx)
		copy(a.Elements, flat[k*nz*plane:k*nz*plane+plane])
		out[k] = a
	}
	return out, nil
}

// timeUnits returns the "units" attribute of the time variable, or ""
// when it is missing.
func timeUnits(nc *cdf.File) string {
	attr := nc.Header.GetAttribute("time", "units")
	s, _ := attr.(string)
	return s
}

// normalizeTimes converts a raw time axis to days since its first
// entry. The units string follows the netCDF convention
// "<unit> since <epoch>"; a missing or unknown unit is taken as days.
func normalizeTimes(raw []float64, units string) []float64 {
	perDay := 1.0
	switch strings.ToLower(strings.SplitN(units, " ", 2)[0]) {
	case "seconds", "second", "s":
		perDay = 86400
	case "minutes", "minute", "min":
		perDay = 1440
	case "hours", "hour", "h":
		perDay = 24
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = (v - raw[0]) / perDay
	}
	return out
}
