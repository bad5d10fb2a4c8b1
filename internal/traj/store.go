// Package traj owns the recorded trajectory set: tagged position
// samples per particle and output step, netCDF persistence, and run
// metadata.
package traj

// Sample is one recorded trajectory point. An invalid sample marks a
// particle that has left the domain; once a particle goes invalid all
// its later samples stay invalid. The tag exists so downstream code
// never does arithmetic on a sentinel value.
type Sample struct {
	Lon, Lat float64
	Valid    bool
}

// Recorder accepts one batch of particle positions per output step.
type Recorder interface {
	Append(day float64, batch []Sample)
}

// Store holds every particle's recorded track as a (particle, step)
// array plus the parallel day axis. It is written one output step at a
// time by the integrator and read back whole by analysis and
// rendering.
type Store struct {
	nParticles int
	Days       []float64
	steps      [][]Sample
}

func NewStore(nParticles int) *Store {
	return &Store{nParticles: nParticles}
}

// Append records one output step. The batch is copied, so callers may
// reuse their buffer.
func (s *Store) Append(day float64, batch []Sample) {
	row := make([]Sample, s.nParticles)
	copy(row, batch)
	s.Days = append(s.Days, day)
	s.steps = append(s.steps, row)
}

func (s *Store) NumParticles() int { return s.nParticles }
func (s *Store) NumSteps() int     { return len(s.steps) }

func (s *Store) Day(step int) float64 { return s.Days[step] }

func (s *Store) At(p, step int) Sample { return s.steps[step][p] }

// Track returns one particle's samples across all output steps.
func (s *Store) Track(p int) []Sample {
	out := make([]Sample, len(s.steps))
	for t, row := range s.steps {
		out[t] = row[p]
	}
	return out
}
