package sim

// Config drives one drift run. Dt is the integration step and
// OutputEvery the recording cadence in whole steps, so the recorded
// axis is always coarser than (or equal to) the integration axis.
type Config struct {
	DtDays       float64
	DurationDays float64
	OutputEvery  int
}

// Observer is notified after every completed global step.
type Observer interface {
	OnStep(step int, day float64)
}

// Result summarizes a run. Lost counts particles that went undefined
// and were carried forward as invalid tails.
type Result struct {
	StepsTaken int
	Recorded   int
	Lost       int
}
