package render

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/CelineBarrier/seadrift/internal/capture"
)

var animatedMapTmpl = template.Must(template.New("animated").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Drift animation</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body, #map { margin: 0; height: 100%; }
#controls { position: absolute; bottom: 20px; left: 50px; right: 50px; z-index: 1000;
  background: rgba(255,255,255,0.9); padding: 8px 16px; border-radius: 6px; }
#slider { width: 100%; }
</style>
</head>
<body>
<div id="map"></div>
<div id="controls">
  <input type="range" id="slider" min="0" max="0" value="0" step="1"/>
  <span id="stamp"></span>
</div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png',
  {attribution: '&copy; OpenStreetMap &copy; CARTO'}).addTo(map);
L.rectangle([[{{.Box.LatMin}}, {{.Box.LonMin}}], [{{.Box.LatMax}}, {{.Box.LonMax}}]],
  {color: 'green', fill: true, fillColor: 'green', fillOpacity: 0.3, weight: 2}).addTo(map);

var collection = {{.Features}};
var byTime = {};
collection.features.forEach(function (f) {
  (byTime[f.properties.time] = byTime[f.properties.time] || []).push(f);
});
var times = Object.keys(byTime).sort();

var slider = document.getElementById('slider');
var stamp = document.getElementById('stamp');
slider.max = Math.max(times.length - 1, 0);

var layer = L.layerGroup().addTo(map);
function show(i) {
  layer.clearLayers();
  if (times.length === 0) return;
  stamp.textContent = times[i];
  byTime[times[i]].forEach(function (f) {
    var c = f.geometry.coordinates;
    var st = f.properties.iconstyle;
    L.circleMarker([c[1], c[0]], {radius: st.radius, stroke: false,
      fillColor: st.fillColor, fill: true, fillOpacity: st.fillOpacity}).addTo(layer);
  });
}
slider.addEventListener('input', function () { show(+slider.value); });
show(0);
</script>
</body>
</html>
`))

// AnimatedMap writes a Leaflet page that plays a timestamped feature
// collection through a time slider, with the capture box drawn as a
// green rectangle.
func AnimatedMap(w io.Writer, fc FeatureCollection, box capture.Box) error {
	payload, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	return animatedMapTmpl.Execute(w, map[string]any{
		"Features":  template.JS(payload),
		"Box":       box,
		"CenterLat": (box.LatMin + box.LatMax) / 2,
		"CenterLon": (box.LonMin + box.LonMax) / 2,
		"Zoom":      7,
	})
}
