// Package render produces the map, chart, and dashboard artifacts
// consumed outside the simulation core. It only reads the trajectory
// store and capture result; no simulation logic lives here.
package render

import (
	"math"
	"time"

	"github.com/CelineBarrier/seadrift/internal/capture"
	"github.com/CelineBarrier/seadrift/internal/traj"
)

// Strides matching the reference rendering: animated maps keep every
// 12th particle and every 2nd output step, the dashboard map every
// 10th particle, and the static map every 50th track.
const (
	StaticStride       = 50
	AnimatedStride     = 12
	DashboardStride    = 10
	AnimatedTimeStride = 2
)

const (
	capturedColor = "#e74c3c"
	freeColor     = "#3498db"
)

type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type IconStyle struct {
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Stroke      string  `json:"stroke"`
	Radius      float64 `json:"radius"`
}

type Properties struct {
	Time      string    `json:"time"`
	Icon      string    `json:"icon"`
	IconStyle IconStyle `json:"iconstyle"`
}

type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// AnimatedPoints builds a timestamped GeoJSON feature collection with
// one point per surviving (particle, step) pair after striding.
// Captured particles are drawn red, larger, and opaque; free particles
// blue and faint. Invalid samples are skipped. Days are mapped onto a
// calendar starting at startDate so time-slider frontends can animate
// them.
func AnimatedPoints(store *traj.Store, res *capture.Result, startDate time.Time, particleStride, timeStride int) FeatureCollection {
	if particleStride < 1 {
		particleStride = 1
	}
	if timeStride < 1 {
		timeStride = 1
	}

	fc := FeatureCollection{Type: "FeatureCollection"}
	for p := 0; p < store.NumParticles(); p += particleStride {
		style := IconStyle{FillColor: freeColor, FillOpacity: 0.4, Stroke: "false", Radius: 2}
		if res.Contains(p) {
			style = IconStyle{FillColor: capturedColor, FillOpacity: 1.0, Stroke: "false", Radius: 3}
		}

		for t := 0; t < store.NumSteps(); t += timeStride {
			s := store.At(p, t)
			if !s.Valid {
				continue
			}
			day := store.Day(t)
			stamp := startDate.Add(time.Duration(day * 24 * float64(time.Hour)))

			fc.Features = append(fc.Features, Feature{
				Type: "Feature",
				Geometry: Geometry{
					Type:        "Point",
					Coordinates: [2]float64{round3(s.Lon), round3(s.Lat)},
				},
				Properties: Properties{
					Time:      stamp.Format("2006-01-02T15:04:05"),
					Icon:      "circle",
					IconStyle: style,
				},
			})
		}
	}
	return fc
}

// round3 trims coordinates to three decimals (~100 m) to keep the
// serialized maps small.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
