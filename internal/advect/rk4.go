package advect

// RK4 advances a position with the classic 4th-order Runge-Kutta
// update: four derivative evaluations per step.
type RK4 struct{}

func NewRK4() RK4 {
	return RK4{}
}

// Step integrates one timestep of dt days starting at time t. ok is
// false when any sub-stage evaluation is undefined; the returned
// position is then the unchanged input and the particle should be
// retired by the caller.
func (RK4) Step(d Derivative, p Position, t, dt float64) (Position, bool) {
	k1lon, k1lat, ok := d(p, t)
	if !ok {
		return p, false
	}
	k2lon, k2lat, ok := d(Position{p.Lon + 0.5*dt*k1lon, p.Lat + 0.5*dt*k1lat, p.Depth}, t+0.5*dt)
	if !ok {
		return p, false
	}
	k3lon, k3lat, ok := d(Position{p.Lon + 0.5*dt*k2lon, p.Lat + 0.5*dt*k2lat, p.Depth}, t+0.5*dt)
	if !ok {
		return p, false
	}
	k4lon, k4lat, ok := d(Position{p.Lon + dt*k3lon, p.Lat + dt*k3lat, p.Depth}, t+dt)
	if !ok {
		return p, false
	}

	dt6 := dt / 6.0
	return Position{
		Lon:   p.Lon + dt6*(k1lon+2*k2lon+2*k3lon+k4lon),
		Lat:   p.Lat + dt6*(k1lat+2*k2lat+2*k3lat+k4lat),
		Depth: p.Depth,
	}, true
}
