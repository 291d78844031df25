// Package registry owns the fixed bank of sensors the dashboard displays:
// opening every channel at startup, polling them all once per cycle, and
// releasing them at shutdown.
package registry

import (
	"github.com/lunixtng/lunixmon/internal/device"
	"github.com/lunixtng/lunixmon/pkg/lunix"
)

// Status is a sensor's aggregate liveness. It is derived from the channels
// on every call and never stored.
type Status int

const (
	Offline Status = iota
	Online
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Online:
		return "online"
	case Offline:
		return "offline"
	default:
		return "unknown"
	}
}

// Sensor groups the three metric channels of one sensor in the bank.
type Sensor struct {
	ID          int
	Battery     device.Channel
	Temperature device.Channel
	Light       device.Channel
}

// Status derives the aggregate state. The battery channel is the liveness
// indicator: a sensor whose battery channel never opened or never produced
// a value is Offline, whatever temperature and light report.
func (s *Sensor) Status() Status {
	if s.Battery.Available() && s.Battery.HasValue() {
		return Online
	}
	return Offline
}

// Registry is the owned, fixed-size sensor bank. Slice order is display
// order; nothing outside this package mutates the channels.
type Registry struct {
	sensors []Sensor
}

// New opens the three channels of every sensor id in [0, count). The open
// attempts are independent: a missing temperature node never prevents the
// battery channel from opening, and failures surface only as offline
// status later.
func New(opener device.Opener, count int) *Registry {
	r := &Registry{sensors: make([]Sensor, count)}
	for id := range r.sensors {
		r.sensors[id] = Sensor{
			ID:          id,
			Battery:     device.Open(opener, id, lunix.Battery),
			Temperature: device.Open(opener, id, lunix.Temperature),
			Light:       device.Open(opener, id, lunix.Light),
		}
	}
	return r
}

// Len returns the bank size.
func (r *Registry) Len() int { return len(r.sensors) }

// At returns the sensor at display position i.
func (r *Registry) At(i int) *Sensor { return &r.sensors[i] }

// PollAll polls every channel of every sensor in display order, battery
// then temperature then light within each sensor. The pass has fixed cost
// per cycle and no partial-failure propagation: a silent channel never
// affects its neighbours.
func (r *Registry) PollAll() {
	for i := range r.sensors {
		s := &r.sensors[i]
		s.Battery.Poll()
		s.Temperature.Poll()
		s.Light.Poll()
	}
}

// Close releases every open source; channels that never opened are
// skipped. Called once when the dashboard exits.
func (r *Registry) Close() {
	for i := range r.sensors {
		s := &r.sensors[i]
		s.Battery.Close()
		s.Temperature.Close()
		s.Light.Close()
	}
}
