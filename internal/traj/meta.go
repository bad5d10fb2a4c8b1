package traj

import (
	"encoding/json"
	"os"
	"time"
)

// RunMeta records how a trajectory file was produced. The requested
// and effective particle counts differ after a seeding shortfall, and
// Lost exposes how many particles went undefined, so silent
// degradations stay observable.
type RunMeta struct {
	Timestamp    time.Time `json:"timestamp"`
	FieldPath    string    `json:"field_path"`
	Requested    int       `json:"requested_particles"`
	Particles    int       `json:"particles"`
	Lost         int       `json:"lost"`
	Seed         int64     `json:"seed"`
	DtMinutes    float64   `json:"dt_minutes"`
	DurationDays float64   `json:"duration_days"`
	OutputHours  float64   `json:"output_hours"`
	WestWallLon  float64   `json:"west_wall_lon"`
}

func SaveMeta(path string, meta RunMeta) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func LoadMeta(path string) (*RunMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var meta RunMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
