package capture

import (
	"encoding/json"
	"os"

	"github.com/gocarina/gocsv"
)

// WriteCurveCSV writes the cumulative curve as day,count rows.
func (r *Result) WriteCurveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.Marshal(r.Curve, f)
}

type resultJSON struct {
	Captured []int   `json:"captured"`
	Count    int     `json:"count"`
	Curve    []Point `json:"curve"`
}

// WriteJSON writes the capture set and curve for downstream consumers.
func (r *Result) WriteJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(resultJSON{
		Captured: r.CapturedIndices(),
		Count:    r.Count(),
		Curve:    r.Curve,
	})
}
