package director

import (
	"math"
	"testing"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/vmath"
)

func newTestDirector(seed uint64) *Director {
	return New(config.DefaultConfig(), vmath.NewFastRand(seed), &Counter{}, nil)
}

// place drops a monster at a world position, spawned at time 0
func place(d *Director, mt core.MonsterType, x, y float64) *Monster {
	return d.SpawnAt(mt, x, y, 0)
}

// TestSpawnApexMonsters tests wave size, band placement and unique ids
func TestSpawnApexMonsters(t *testing.T) {
	d := newTestDirector(11)
	n := d.SpawnApexMonsters(800, core.RatingPerfect, 0)
	if n != 12 || d.Alive() != 12 {
		t.Fatalf("spawned %d, alive %d, want 12", n, d.Alive())
	}
	w, ok := d.Window()
	if !ok {
		t.Fatal("no window after qualifying launch")
	}

	ids := map[uint64]bool{}
	for _, m := range d.Monsters() {
		if ids[m.ID] {
			t.Errorf("duplicate id %d", m.ID)
		}
		ids[m.ID] = true
		lo := d.cfg.World.MetersToPixels(w.RangeStartM)
		hi := d.cfg.World.MetersToPixels(w.RangeEndM)
		if m.Y() < lo || m.Y() > hi {
			t.Errorf("monster %d at %vpx outside band [%v,%v]", m.ID, m.Y(), lo, hi)
		}
		if m.SpeedMultiplier != w.SpeedMultiplier {
			t.Errorf("speed %v, want %v", m.SpeedMultiplier, w.SpeedMultiplier)
		}
		if m.Radius() != d.cfg.Monster.BodyRadius {
			t.Errorf("radius %v", m.Radius())
		}
	}
}

// TestSpawnNonQualifying tests that FAILED and short launches spawn nothing
func TestSpawnNonQualifying(t *testing.T) {
	d := newTestDirector(1)
	if n := d.SpawnApexMonsters(800, core.RatingFailed, 0); n != 0 {
		t.Errorf("FAILED spawned %d", n)
	}
	if n := d.SpawnApexMonsters(30, core.RatingPerfect, 0); n != 0 {
		t.Errorf("30m spawned %d", n)
	}
	if _, ok := d.Window(); ok {
		t.Error("window set without a spawn")
	}
}

// TestSpawnDeterministic tests that the same seed yields the same wave
func TestSpawnDeterministic(t *testing.T) {
	a, b := newTestDirector(99), newTestDirector(99)
	a.SpawnApexMonsters(1500, core.RatingPerfect, 0)
	b.SpawnApexMonsters(1500, core.RatingPerfect, 0)
	for i := range a.Monsters() {
		ma, mb := a.Monsters()[i], b.Monsters()[i]
		if ma.Type != mb.Type || ma.Lane != mb.Lane || ma.Y() != mb.Y() || ma.Facing != mb.Facing {
			t.Fatalf("monster %d differs: %+v vs %+v", i, ma, mb)
		}
	}
}

// TestPatrolStaysInLane tests lateral motion bounds over a long run
func TestPatrolStaysInLane(t *testing.T) {
	d := newTestDirector(5)
	d.SpawnApexMonsters(400, core.RatingPerfect, 0)
	start := map[uint64]float64{}
	for _, m := range d.Monsters() {
		start[m.ID] = m.X()
	}

	p := PlayerSample{X: 0, Y: 0, Airborne: false}
	for i := 0; i < 1200; i++ {
		d.Tick(1.0/60, p)
		for _, m := range d.Monsters() {
			lo, hi := d.lanes.Bounds(m.Lane)
			if m.X() < lo-1e-9 || m.X() > hi+1e-9 {
				t.Fatalf("monster %d at x=%v outside lane [%v,%v]", m.ID, m.X(), lo, hi)
			}
			if m.Chasing() {
				t.Fatal("grounded player triggered chase")
			}
		}
	}

	moved := false
	for _, m := range d.Monsters() {
		if m.X() != start[m.ID] {
			moved = true
		}
	}
	if !moved {
		t.Error("no monster moved")
	}
}

// TestChaseStartsAbove tests that pursuit starts only once the airborne player passes above
func TestChaseStartsAbove(t *testing.T) {
	d := newTestDirector(2)
	chaser := place(d, core.MonsterA02, 300, 1000)
	walker := place(d, core.MonsterA01, 300, 1000)

	d.Tick(1.0/60, PlayerSample{X: 300, Y: 1020, Airborne: true})
	if chaser.Chasing() {
		t.Fatal("chase started inside the trigger margin")
	}

	player := PlayerSample{X: 500, Y: 1200, Airborne: true}
	d.Tick(1.0/60, player)
	if !chaser.Chasing() {
		t.Fatal("chase did not start")
	}
	if walker.Chasing() {
		t.Error("non-chasing type pursued")
	}
	if chaser.Radius() != d.cfg.Monster.ChaseRadius {
		t.Errorf("chase radius = %v, want %v", chaser.Radius(), d.cfg.Monster.ChaseRadius)
	}

	before := math.Hypot(player.X-chaser.X(), player.Y-chaser.Y())
	for i := 0; i < 30; i++ {
		d.Tick(1.0/60, player)
	}
	after := math.Hypot(player.X-chaser.X(), player.Y-chaser.Y())
	if after >= before {
		t.Errorf("distance grew from %v to %v", before, after)
	}
	if want := d.cfg.World.PixelsToMeters(chaser.Y()); math.Abs(chaser.HeightM-want) > 1e-9 {
		t.Errorf("height = %vm, want %vm", chaser.HeightM, want)
	}
	if walker.HeightM != d.cfg.World.PixelsToMeters(1000) {
		t.Errorf("patrol height moved to %vm", walker.HeightM)
	}
	if chaser.Facing != core.DirRight {
		t.Errorf("facing %v, want right", chaser.Facing)
	}
}

// TestQueryDebuffThrottle tests spawn grace, the per-monster interval and immunity
func TestQueryDebuffThrottle(t *testing.T) {
	d := newTestDirector(3)
	m := place(d, core.MonsterA01, 300, 2000)
	p := PlayerSample{X: 305, Y: 2004, Airborne: true}

	if _, ok := d.QueryDebuff(p, 0.1); ok {
		t.Error("hit during spawn grace")
	}
	hit, ok := d.QueryDebuff(p, 0.5)
	if !ok || hit.MonsterID != m.ID || hit.Type != core.MonsterA01 {
		t.Fatalf("no hit after grace: %+v %v", hit, ok)
	}
	if _, ok := d.QueryDebuff(p, 1.0); ok {
		t.Error("hit inside the debuff interval")
	}
	if _, ok := d.QueryDebuff(p, 1.6); !ok {
		t.Error("no hit after the interval")
	}

	grounded := p
	grounded.Airborne = false
	if _, ok := d.QueryDebuff(grounded, 10); ok {
		t.Error("hit while grounded")
	}
	immune := p
	immune.ImmuneUntil = 20
	if _, ok := d.QueryDebuff(immune, 10); ok {
		t.Error("hit while immune")
	}

	far := p
	far.Y += 200
	if _, ok := d.QueryDebuff(far, 30); ok {
		t.Error("hit without contact")
	}
}

// TestQueryDebuffContactGeometry tests overlap detection for offset, concentric and contained bodies
func TestQueryDebuffContactGeometry(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		chase  bool
		want   bool
	}{
		{"offset", 5, 4, false, true},
		{"concentric", 0, 0, false, true},
		{"wide", 30, 0, false, true},
		{"edge", 40, 0, false, true},
		{"apart", 41, 0, false, false},
		{"above", 0, 60, false, false},
		{"chaser inside player", 3, 0, true, true},
		{"chaser apart", 29, 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDirector(3)
			mt := core.MonsterA01
			if tt.chase {
				mt = core.MonsterA02
			}
			m := place(d, mt, 300, 2000)
			if tt.chase && m.startChase(d.cfg.Monster) {
				d.contact.reshape(m)
			}

			p := PlayerSample{X: 300 + tt.dx, Y: 2000 + tt.dy, Airborne: true}
			hit, ok := d.QueryDebuff(p, 0.5)
			if ok != tt.want {
				t.Fatalf("contact = %v, want %v", ok, tt.want)
			}
			if ok && hit.MonsterID != m.ID {
				t.Errorf("hit monster %d, want %d", hit.MonsterID, m.ID)
			}
		})
	}
}

// TestQueryDebuffLowestID tests that simultaneous contacts report the oldest monster first
func TestQueryDebuffLowestID(t *testing.T) {
	d := newTestDirector(4)
	first := place(d, core.MonsterA01, 300, 2000)
	second := place(d, core.MonsterCloudA, 310, 2000)
	p := PlayerSample{X: 305, Y: 2000, Airborne: true}

	hit, ok := d.QueryDebuff(p, 0.5)
	if !ok || hit.MonsterID != first.ID {
		t.Fatalf("first hit %+v %v, want monster %d", hit, ok, first.ID)
	}
	hit, ok = d.QueryDebuff(p, 0.5)
	if !ok || hit.MonsterID != second.ID {
		t.Fatalf("second hit %+v %v, want monster %d", hit, ok, second.ID)
	}
	if _, ok := d.QueryDebuff(p, 0.5); ok {
		t.Error("third hit while both throttled")
	}
}

// TestQuerySector tests the forward reach, back tolerance and vertical band of a swing
func TestQuerySector(t *testing.T) {
	d := newTestDirector(4)
	d.window, d.hasWindow = ComputeWindow(d.cfg.Director, 100, core.RatingNormal), true

	ahead := place(d, core.MonsterA01, 400, 1000)
	behindClose := place(d, core.MonsterA01, 280, 1000)
	behindFar := place(d, core.MonsterA01, 250, 1000)
	tooFar := place(d, core.MonsterA01, 500, 1000)
	tooHigh := place(d, core.MonsterA01, 350, 1100)

	res := d.QuerySector(Attack{X: 300, Y: 1000, Dir: core.DirNone})
	if res.Kills != 0 {
		t.Fatalf("directionless swing killed %d", res.Kills)
	}

	res = d.QuerySector(Attack{X: 300, Y: 1000, Dir: core.DirRight})
	if res.Kills != 2 {
		t.Fatalf("kills = %d, want 2", res.Kills)
	}
	if res.DropMultiplier != 0.5 {
		t.Errorf("drop = %v, want 0.5", res.DropMultiplier)
	}
	killed := map[uint64]bool{}
	for _, dth := range res.Deaths {
		killed[dth.MonsterID] = true
	}
	if !killed[ahead.ID] || !killed[behindClose.ID] {
		t.Errorf("wrong deaths: %v", killed)
	}
	for _, m := range []*Monster{behindFar, tooFar, tooHigh} {
		if !m.Alive {
			t.Errorf("monster %d at (%v,%v) killed", m.ID, m.X(), m.Y())
		}
	}
	if d.Alive() != 3 {
		t.Errorf("alive = %d, want 3", d.Alive())
	}
}

// TestClearAll tests that landing cleanup removes the wave and its window
func TestClearAll(t *testing.T) {
	d := newTestDirector(8)
	n := d.SpawnApexMonsters(800, core.RatingPerfect, 0)
	if got := d.ClearAll(); got != n {
		t.Errorf("cleared %d, want %d", got, n)
	}
	if d.Alive() != 0 || len(d.Monsters()) != 0 {
		t.Error("monsters survive ClearAll")
	}
	if _, ok := d.Window(); ok {
		t.Error("window survives ClearAll")
	}
	if len(d.contact.owners) != 0 {
		t.Errorf("%d shapes left in the contact space", len(d.contact.owners))
	}
	if d.ClearAll() != 0 {
		t.Error("second clear reported monsters")
	}
}
