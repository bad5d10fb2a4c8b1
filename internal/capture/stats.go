package capture

import (
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a capture result for reporting. MeanDay and
// MedianDay describe when captures happened, weighted by the number of
// new captures at each curve step; both are zero when nothing was
// captured.
type Summary struct {
	Particles int
	Captured  int
	Rate      float64
	MeanDay   float64
	MedianDay float64
}

func Summarize(r *Result, nParticles int) Summary {
	s := Summary{Particles: nParticles, Captured: r.Count()}
	if nParticles > 0 {
		s.Rate = float64(s.Captured) / float64(nParticles)
	}

	var days, weights []float64
	prev := 0
	for _, pt := range r.Curve {
		if inc := pt.Count - prev; inc > 0 {
			days = append(days, pt.Day)
			weights = append(weights, float64(inc))
		}
		prev = pt.Count
	}
	if len(days) > 0 {
		s.MeanDay = stat.Mean(days, weights)
		s.MedianDay = stat.Quantile(0.5, stat.Empirical, days, weights)
	}
	return s
}
