package render

import (
	"fmt"
	"html/template"
	"io"
)

// DashboardData feeds the assembled dashboard page: the animated map
// file is embedded as an iframe, the chart inline as SVG.
type DashboardData struct {
	Title     string
	MapFile   string
	ChartSVG  template.HTML
	Particles int
	Captured  int
	Rate      string
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: 'Segoe UI', sans-serif; height: 100vh; display: flex; flex-direction: column; background-color: #f4f4f4; }
header { background: #2c3e50; color: white; padding: 0 20px; height: 60px; display: flex; align-items: center; }
h1 { margin: 0; font-size: 1.2rem; }
.main-content { display: flex; flex: 1; overflow: hidden; }
.map-panel { width: 55%; border-right: 1px solid #ccc; }
.map-frame { width: 100%; height: 100%; border: none; }
.side-panel { width: 45%; padding: 20px; overflow-y: auto; background: white; }
.chart { margin-bottom: 20px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); border-radius: 8px; }
.card { background: #fff; padding: 20px; border-radius: 8px; border: 1px solid #eee; margin-bottom: 20px; box-shadow: 0 2px 5px rgba(0,0,0,0.05); }
.card h3 { margin-top: 0; color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; font-size: 1rem; }
.stat-row { display: flex; justify-content: space-between; margin-bottom: 8px; font-size: 0.9rem; }
.stat-val { font-weight: bold; color: #2c3e50; }
</style>
</head>
<body>
<header><h1>{{.Title}}</h1></header>
<div class="main-content">
  <div class="map-panel">
    <iframe src="{{.MapFile}}" class="map-frame"></iframe>
  </div>
  <div class="side-panel">
    <div class="chart">{{.ChartSVG}}</div>
    <div class="card">
      <h3>Statistics</h3>
      <div class="stat-row"><span>Total particles</span> <span class="stat-val">{{.Particles}}</span></div>
      <div class="stat-row"><span>Captured</span> <span class="stat-val">{{.Captured}}</span></div>
      <div class="stat-row"><span>Capture rate</span> <span class="stat-val">{{.Rate}}</span></div>
    </div>
    <div class="card">
      <h3>Legend</h3>
      <div class="stat-row"><span style="color:#e74c3c;">&#9679; captured</span> <span>inside the capture box</span></div>
      <div class="stat-row"><span style="color:#3498db;">&#9679; free</span> <span>still at sea</span></div>
    </div>
  </div>
</div>
</body>
</html>
`))

// Dashboard writes the assembled HTML page.
func Dashboard(w io.Writer, d DashboardData) error {
	return dashboardTmpl.Execute(w, d)
}

// RatePercent formats a fraction for the statistics card.
func RatePercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
