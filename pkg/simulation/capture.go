package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
)

// CaptureTarget is the point boids are captured around.
// Once active it stays active for the rest of the session.
type CaptureTarget struct {
	Position geometry.Vector3
	Active   bool
}

// CaptureEvent records one boid caught by the target.
type CaptureEvent struct {
	Tick     uint64
	FlockID  int
	AgentID  int
	Position geometry.Vector3 // where the boid was caught
}

// CaptureObserver is notified once per captured boid, in detection order.
type CaptureObserver interface {
	OnAgentCaptured(ev CaptureEvent)
}

// CaptureObserverFunc adapts a function to CaptureObserver.
type CaptureObserverFunc func(ev CaptureEvent)

func (f CaptureObserverFunc) OnAgentCaptured(ev CaptureEvent) { f(ev) }

// CaptureDetector tests boids against an inclusive axis-aligned box around
// the target and parks the captured ones at Removed.
type CaptureDetector struct {
	HalfExtent float64
	Removed    geometry.Vector3
}

// NewCaptureDetector builds a detector from configuration.
func NewCaptureDetector(cfg *Config) CaptureDetector {
	return CaptureDetector{HalfExtent: cfg.CaptureHalfExtent, Removed: cfg.RemovedPosition}
}

// Detect relocates every boid of f inside the capture box and returns one
// event per capture. Nothing happens while the target is inactive.
// Relocated boids keep their velocity and stay in the flock.
func (d CaptureDetector) Detect(f *Flock, target CaptureTarget, tick uint64) []CaptureEvent {
	if !target.Active {
		return nil
	}
	var events []CaptureEvent
	for i := range f.Boids {
		p := f.Boids[i].Body.Position
		if !p.WithinBox(target.Position, d.HalfExtent) {
			continue
		}
		f.Boids[i].Body.Position = d.Removed
		events = append(events, CaptureEvent{
			Tick:     tick,
			FlockID:  f.ID,
			AgentID:  i,
			Position: p,
		})
	}
	return events
}
