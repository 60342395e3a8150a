package status

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/event"
)

// TestMetricMapStablePointers tests that a key always maps to the same cell
func TestMetricMapStablePointers(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("x")
	a.Add(3)
	if b := m.Get("x"); b != a || b.Load() != 3 {
		t.Fatal("second Get returned a different cell")
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Has mismatch")
	}

	var keys []string
	m.Get("c")
	m.Get("b")
	m.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "c" || keys[2] != "x" {
		t.Errorf("range order %v", keys)
	}
}

// TestMetricMapConcurrentGet tests racing registration of one key
func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("hits").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := m.Get("hits").Load(); got != 1600 {
		t.Errorf("hits = %d, want 1600", got)
	}
	if m.Count() != 1 {
		t.Errorf("count = %d", m.Count())
	}
}

// TestAtomicFloatMax tests that Max only raises the value
func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	f.Max(12.5)
	f.Max(3)
	if f.Get() != 12.5 {
		t.Errorf("max = %v, want 12.5", f.Get())
	}
	f.Set(-1)
	if f.Max(-2) != -1 {
		t.Error("Max lowered the value")
	}
}

// TestRecorderObserve tests counters derived from the event stream
func TestRecorderObserve(t *testing.T) {
	rec := NewRecorder(NewRegistry())

	rec.Observe(event.GameEvent{Type: event.EventLaunched, Payload: &event.LaunchedPayload{ApexM: 120}})
	rec.Observe(event.GameEvent{Type: event.EventLaunched, Payload: &event.LaunchedPayload{ApexM: 80}})
	rec.Observe(event.GameEvent{Type: event.EventResolved, Payload: &event.ResolvedPayload{Rating: core.RatingPerfect}})
	for i := 0; i < 3; i++ {
		rec.Observe(event.GameEvent{Type: event.EventMonsterKilled, Payload: &event.MonsterKilledPayload{}})
	}
	rec.Observe(event.GameEvent{Type: event.EventInstantDeath, Payload: &event.DamagePayload{Fraction: 1}})
	rec.Frame(2, 40*time.Millisecond)

	if rec.Kills() != 3 {
		t.Errorf("kills = %d", rec.Kills())
	}
	if rec.MaxApex() != 120 {
		t.Errorf("max apex = %v", rec.MaxApex())
	}

	got := map[string]slog.Value{}
	for _, a := range rec.Registry().Attrs() {
		got[a.Key] = a.Value
	}
	checks := map[string]string{
		"events.Launched": "2",
		"instant_deaths":  "1",
		"steps":           "2",
		"last_rating":     core.RatingPerfect.String(),
		"dropped_ms":      "40",
	}
	for k, want := range checks {
		if v, ok := got[k]; !ok || v.String() != want {
			t.Errorf("%s = %v, want %s", k, v, want)
		}
	}
}
