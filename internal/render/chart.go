package render

import (
	"fmt"
	"strings"

	"github.com/CelineBarrier/seadrift/internal/capture"
)

// CurveSVG renders the cumulative-capture curve as a standalone SVG:
// shaded dispersion phase before the maturation day, a dashed
// maturation marker, and the red accumulation line.
func CurveSVG(res *capture.Result, maturationDays float64, width, height int) string {
	const margin = 50.0
	w, h := float64(width), float64(height)
	plotW := w - 2*margin
	plotH := h - 2*margin

	maxDay, maxCount := 1.0, 1
	for _, pt := range res.Curve {
		if pt.Day > maxDay {
			maxDay = pt.Day
		}
		if pt.Count > maxCount {
			maxCount = pt.Count
		}
	}

	px := func(day float64) float64 { return margin + day/maxDay*plotW }
	py := func(count int) float64 { return h - margin - float64(count)/float64(maxCount)*plotH }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="white"/>
`, width, height, width, height))

	// dispersion phase shading up to the maturation day
	if maturationDays > 0 && maturationDays < maxDay {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#bdc3c7" opacity="0.2"/>
<text x="%.1f" y="%.1f" font-size="12" fill="#7f8c8d" text-anchor="middle">dispersion phase</text>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#2c3e50" stroke-dasharray="6,4"/>
`,
			px(0), margin, px(maturationDays)-px(0), plotH,
			px(maturationDays/2), h-margin-10,
			px(maturationDays), margin, px(maturationDays), h-margin))
	}

	// axes
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#2c3e50"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#2c3e50"/>
<text x="%.1f" y="%.1f" font-size="12" fill="#2c3e50" text-anchor="middle">time (days)</text>
<text x="%.1f" y="%.1f" font-size="12" fill="#2c3e50" text-anchor="middle" transform="rotate(-90 15 %.1f)">particles (cumulative)</text>
<text x="%.1f" y="%.1f" font-size="11" fill="#2c3e50">%d</text>
<text x="%.1f" y="%.1f" font-size="11" fill="#2c3e50" text-anchor="end">%.0f</text>
`,
		margin, h-margin, w-margin, h-margin,
		margin, margin, margin, h-margin,
		w/2, h-10,
		15.0, h/2, h/2,
		margin-35, margin+5, maxCount,
		w-margin, h-margin+20, maxDay))

	if len(res.Curve) > 0 {
		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="3" points="`, capturedColor))
		for i, pt := range res.Curve {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(pt.Day), py(pt.Count)))
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
