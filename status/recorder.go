package status

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/coilhop/event"
)

// Recorder derives session statistics from frame timing and the simulation event stream
// One goroutine writes; any number may read the registry
type Recorder struct {
	reg *Registry

	frames     *atomic.Int64
	steps      *atomic.Int64
	droppedMs  *AtomicFloat
	kills      *atomic.Int64
	debuffs    *atomic.Int64
	deaths     *atomic.Int64
	maxApex    *AtomicFloat
	lastRating *atomic.Value
	byType     map[event.EventType]*atomic.Int64
}

func NewRecorder(reg *Registry) *Recorder {
	return &Recorder{
		reg:        reg,
		frames:     reg.Ints.Get("frames"),
		steps:      reg.Ints.Get("steps"),
		droppedMs:  reg.Floats.Get("dropped_ms"),
		kills:      reg.Ints.Get("kills"),
		debuffs:    reg.Ints.Get("debuffs"),
		deaths:     reg.Ints.Get("instant_deaths"),
		maxApex:    reg.Floats.Get("apex_max_m"),
		lastRating: reg.Labels.Get("last_rating"),
		byType:     make(map[event.EventType]*atomic.Int64),
	}
}

func (r *Recorder) Registry() *Registry { return r.reg }

// Frame records one host frame and the clock's cumulative dropped backlog
func (r *Recorder) Frame(steps int, dropped time.Duration) {
	r.frames.Add(1)
	r.steps.Add(int64(steps))
	r.droppedMs.Set(float64(dropped) / float64(time.Millisecond))
}

func (r *Recorder) Observe(ev event.GameEvent) {
	c, ok := r.byType[ev.Type]
	if !ok {
		c = r.reg.Ints.Get("events." + ev.Type.String())
		r.byType[ev.Type] = c
	}
	c.Add(1)

	switch p := ev.Payload.(type) {
	case *event.LaunchedPayload:
		r.maxApex.Max(p.ApexM)
	case *event.ResolvedPayload:
		r.lastRating.Store(p.Rating.String())
	case *event.MonsterKilledPayload:
		r.kills.Add(1)
	case *event.DebuffAppliedPayload:
		r.debuffs.Add(1)
	}
	if ev.Type == event.EventInstantDeath {
		r.deaths.Add(1)
	}
}

// Kills returns the session kill count
func (r *Recorder) Kills() int64 { return r.kills.Load() }

// MaxApex returns the highest predicted apex of the session in meters
func (r *Recorder) MaxApex() float64 { return r.maxApex.Get() }
