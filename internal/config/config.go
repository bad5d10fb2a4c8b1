package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults reproduce the Gulf of Lion reference scenario.
const (
	DefaultParticles      = 10000
	DefaultDilation       = 4
	DefaultMinLon         = -5.5
	DefaultWestWallLon    = -5.8
	DefaultDurationDays   = 100.0
	DefaultDtMinutes      = 30.0
	DefaultOutputHours    = 12.0
	DefaultMaturationDays = 30.0
)

type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Seeding SeedingConfig `yaml:"seeding"`
	Run     RunConfig     `yaml:"run"`
	Capture CaptureConfig `yaml:"capture"`
	Output  OutputConfig  `yaml:"output"`
}

type FieldConfig struct {
	Path string `yaml:"path"`
	UVar string `yaml:"u_var"`
	VVar string `yaml:"v_var"`
}

type SeedingConfig struct {
	Particles int     `yaml:"particles"`
	Dilation  int     `yaml:"dilation"`
	MinLon    float64 `yaml:"min_lon"`
	// Seed 0 means unseeded (time-based) randomness: release sites then
	// differ between runs. Reproducibility is an explicit choice here,
	// not a default.
	Seed int64 `yaml:"seed"`
}

type RunConfig struct {
	DurationDays float64 `yaml:"duration_days"`
	DtMinutes    float64 `yaml:"dt_minutes"`
	OutputHours  float64 `yaml:"output_hours"`
	WestWallLon  float64 `yaml:"west_wall_lon"`
}

type BoxConfig struct {
	LonMin float64 `yaml:"lon_min"`
	LonMax float64 `yaml:"lon_max"`
	LatMin float64 `yaml:"lat_min"`
	LatMax float64 `yaml:"lat_max"`
}

type CaptureConfig struct {
	Box            BoxConfig `yaml:"box"`
	MaturationDays float64   `yaml:"maturation_days"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Path: "MEDSEA2019.nc",
			UVar: "uo",
			VVar: "vo",
		},
		Seeding: SeedingConfig{
			Particles: DefaultParticles,
			Dilation:  DefaultDilation,
			MinLon:    DefaultMinLon,
		},
		Run: RunConfig{
			DurationDays: DefaultDurationDays,
			DtMinutes:    DefaultDtMinutes,
			OutputHours:  DefaultOutputHours,
			WestWallLon:  DefaultWestWallLon,
		},
		Capture: CaptureConfig{
			Box:            BoxConfig{LonMin: 4.2, LonMax: 5.2, LatMin: 42.5, LatMax: 43.2},
			MaturationDays: DefaultMaturationDays,
		},
		Output: OutputConfig{Dir: "seadrift-out"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Field.Path == "" {
		return fmt.Errorf("config: field path is required")
	}
	if c.Seeding.Particles <= 0 {
		return fmt.Errorf("config: particles must be positive, got %d", c.Seeding.Particles)
	}
	if c.Seeding.Dilation < 1 {
		return fmt.Errorf("config: dilation must be at least 1, got %d", c.Seeding.Dilation)
	}
	if c.Run.DtMinutes <= 0 {
		return fmt.Errorf("config: dt must be positive, got %f", c.Run.DtMinutes)
	}
	if c.Run.DurationDays <= 0 {
		return fmt.Errorf("config: duration must be positive, got %f", c.Run.DurationDays)
	}
	if c.Run.OutputHours*60 < c.Run.DtMinutes {
		return fmt.Errorf("config: output interval (%gh) finer than dt (%gmin)",
			c.Run.OutputHours, c.Run.DtMinutes)
	}
	b := c.Capture.Box
	if b.LonMin >= b.LonMax || b.LatMin >= b.LatMax {
		return fmt.Errorf("config: degenerate capture box [%g,%g]x[%g,%g]",
			b.LonMin, b.LonMax, b.LatMin, b.LatMax)
	}
	return nil
}

// DtDays converts the integration step to the day units used by the
// engine.
func (c *Config) DtDays() float64 {
	return c.Run.DtMinutes / (24 * 60)
}

// OutputEverySteps is the recording cadence in whole integration
// steps.
func (c *Config) OutputEverySteps() int {
	return int(c.Run.OutputHours * 60 / c.Run.DtMinutes)
}
