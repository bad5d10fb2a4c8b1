package render

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/CelineBarrier/seadrift/internal/traj"
)

type track struct {
	// leaflet order: [lat, lon]
	Points [][2]float64 `json:"points"`
}

var staticMapTmpl = template.Must(template.New("static").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Drift trajectories</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { margin: 0; height: 100%; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([36.0, 15.0], 5);
L.tileLayer('https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png',
  {attribution: '&copy; OpenStreetMap &copy; CARTO'}).addTo(map);
var tracks = {{.Tracks}};
tracks.forEach(function (t) {
  if (t.points.length === 0) return;
  L.polyline(t.points, {color: 'blue', weight: 0.6, opacity: 0.4}).addTo(map);
  L.circleMarker(t.points[0], {radius: 2, color: 'green', fillColor: 'green',
    fill: true, fillOpacity: 1}).addTo(map);
  L.circleMarker(t.points[t.points.length - 1], {radius: 3, color: '{{.EndColor}}',
    fillColor: '{{.EndColor}}', fill: true, fillOpacity: 1}).addTo(map);
});
</script>
</body>
</html>
`))

// StaticMap writes a self-contained Leaflet page showing every
// stride-th trajectory as a blue polyline with a green start dot and a
// red end dot. A track stops at its first invalid sample.
func StaticMap(w io.Writer, store *traj.Store, stride int) error {
	if stride < 1 {
		stride = 1
	}

	var tracks []track
	for p := 0; p < store.NumParticles(); p += stride {
		var tr track
		for _, s := range store.Track(p) {
			if !s.Valid {
				break
			}
			tr.Points = append(tr.Points, [2]float64{round3(s.Lat), round3(s.Lon)})
		}
		if len(tr.Points) > 0 {
			tracks = append(tracks, tr)
		}
	}

	payload, err := json.Marshal(tracks)
	if err != nil {
		return err
	}
	return staticMapTmpl.Execute(w, map[string]any{
		"Tracks":   template.JS(payload),
		"EndColor": capturedColor,
	})
}
