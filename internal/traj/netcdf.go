package traj

import (
	"fmt"
	"math"
	"os"

	"github.com/ctessum/cdf"
)

// Undefined samples cross the file boundary as NaN; the tagged
// representation exists only in memory.

// WriteNetCDF saves a store as a classic netCDF file with dimensions
// (particle, obs), float32 lon/lat and a float64 day axis.
func WriteNetCDF(path string, s *Store) error {
	np, ns := s.NumParticles(), s.NumSteps()

	h := cdf.NewHeader([]string{"particle", "obs"}, []int{np, ns})
	h.AddAttribute("", "title", "seadrift particle trajectories")
	h.AddVariable("lon", []string{"particle", "obs"}, []float32{0})
	h.AddAttribute("lon", "units", "degrees_east")
	h.AddVariable("lat", []string{"particle", "obs"}, []float32{0})
	h.AddAttribute("lat", "units", "degrees_north")
	h.AddVariable("time", []string{"obs"}, []float64{0})
	h.AddAttribute("time", "units", "days since release")
	h.Define()

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("traj: creating %s: %w", path, err)
	}
	defer w.Close()

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("traj: writing header to %s: %w", path, err)
	}

	lons := make([]float32, np*ns)
	lats := make([]float32, np*ns)
	for p := 0; p < np; p++ {
		for t := 0; t < ns; t++ {
			sm := s.At(p, t)
			if sm.Valid {
				lons[p*ns+t] = float32(sm.Lon)
				lats[p*ns+t] = float32(sm.Lat)
			} else {
				lons[p*ns+t] = float32(math.NaN())
				lats[p*ns+t] = float32(math.NaN())
			}
		}
	}

	if err := writeVar(f, "lon", lons); err != nil {
		return fmt.Errorf("traj: %s: %w", path, err)
	}
	if err := writeVar(f, "lat", lats); err != nil {
		return fmt.Errorf("traj: %s: %w", path, err)
	}
	days := make([]float64, ns)
	copy(days, s.Days)
	if err := writeVar(f, "time", days); err != nil {
		return fmt.Errorf("traj: %s: %w", path, err)
	}

	if err := cdf.UpdateNumRecs(w); err != nil {
		return fmt.Errorf("traj: finalizing %s: %w", path, err)
	}
	return nil
}

func writeVar[T any](f *cdf.File, name string, values []T) error {
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err := w.Write(values); err != nil {
		return fmt.Errorf("writing %q: %w", name, err)
	}
	return nil
}

// ReadNetCDF loads a store previously written by WriteNetCDF. NaN
// positions become invalid samples again.
func ReadNetCDF(path string) (*Store, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("traj: opening %s: %w", path, err)
	}
	defer r.Close()

	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("traj: reading %s: %w", path, err)
	}

	dims := f.Header.Lengths("lon")
	if len(dims) != 2 {
		return nil, fmt.Errorf("traj: %s: lon has %d dimensions, expected 2 (particle, obs)", path, len(dims))
	}
	np, ns := dims[0], dims[1]

	lons, err := readFloat32s(f, "lon", np*ns)
	if err != nil {
		return nil, fmt.Errorf("traj: %s: %w", path, err)
	}
	lats, err := readFloat32s(f, "lat", np*ns)
	if err != nil {
		return nil, fmt.Errorf("traj: %s: %w", path, err)
	}

	tr := f.Reader("time", nil, nil)
	days := make([]float64, ns)
	if _, err := tr.Read(days); err != nil {
		return nil, fmt.Errorf("traj: %s: reading time: %w", path, err)
	}

	s := NewStore(np)
	batch := make([]Sample, np)
	for t := 0; t < ns; t++ {
		for p := 0; p < np; p++ {
			lon := float64(lons[p*ns+t])
			lat := float64(lats[p*ns+t])
			batch[p] = Sample{Lon: lon, Lat: lat, Valid: !math.IsNaN(lon) && !math.IsNaN(lat)}
		}
		s.Append(days[t], batch)
	}
	return s, nil
}

func readFloat32s(f *cdf.File, name string, n int) ([]float32, error) {
	r := f.Reader(name, nil, nil)
	buf := make([]float32, n)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return buf, nil
}
