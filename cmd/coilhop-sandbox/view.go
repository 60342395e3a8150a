package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/engine"
	"github.com/lixenwraith/coilhop/jump"
	"github.com/lixenwraith/coilhop/status"
)

// canvas is the part of tcell.Screen the view draws through
type canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleSurface  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleYellow   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLockout  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMonster  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleChasing  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCloud    = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleBarEmpty = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var monsterGlyph = map[core.MonsterType]rune{
	core.MonsterA01:    'w',
	core.MonsterA02:    'M',
	core.MonsterA03:    'W',
	core.MonsterCloudA: '@',
}

// view maps the y-up world onto terminal cells
// Columns span the playfield width; a row is twice a column in px to match cell aspect
type view struct {
	world config.WorldConfig

	width, height int
	pxPerCol      float64
	pxPerRow      float64
	groundRow     int
	cameraY       float64

	lastEvent string
	stats     *status.Recorder
}

func newView(world config.WorldConfig) *view {
	return &view{world: world}
}

func (v *view) resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 4 {
		h = 4
	}
	v.width, v.height = w, h
	v.pxPerCol = v.world.ScreenWidth / float64(w)
	v.pxPerRow = 2 * v.pxPerCol
	v.groundRow = h - 3
}

// follow keeps the player in the lower half of the screen while airborne
func (v *view) follow(altitude float64) {
	limit := float64(v.groundRow/2) * v.pxPerRow
	v.cameraY = 0
	if altitude > limit {
		v.cameraY = altitude - limit
	}
}

func (v *view) col(x float64) int {
	return int(x / v.pxPerCol)
}

func (v *view) row(y float64) int {
	return v.groundRow - int((y-v.cameraY)/v.pxPerRow)
}

func (v *view) visible(c, r int) bool {
	return c >= 0 && c < v.width && r >= 1 && r < v.height-1
}

func (v *view) draw(cv canvas, s *engine.Scene) {
	w, h := cv.Size()
	if w != v.width || h != v.height {
		v.resize(w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cv.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	cycle := s.Cycle()
	v.follow(cycle.Altitude())

	v.drawGround(cv, s)
	v.drawMonsters(cv, s)
	v.drawPlayer(cv, s)
	v.drawHUD(cv, s)
}

func (v *view) drawGround(cv canvas, s *engine.Scene) {
	field := s.Ground()
	for c := 0; c < v.width; c++ {
		x := (float64(c) + 0.5) * v.pxPerCol
		top := v.row(-field.VisualOffsetAt(x))
		if v.visible(c, top) {
			cv.SetContent(c, top, '▀', nil, styleSurface)
		}
		for r := top + 1; r < v.height-1; r++ {
			if v.visible(c, r) {
				cv.SetContent(c, r, '░', nil, styleGround)
			}
		}
	}
}

func (v *view) drawMonsters(cv canvas, s *engine.Scene) {
	for _, m := range s.Director().Monsters() {
		if !m.Alive {
			continue
		}
		c, r := v.col(m.X()), v.row(m.Y())
		if !v.visible(c, r) {
			continue
		}
		style := styleMonster
		switch {
		case m.Chasing():
			style = styleChasing
		case m.Type == core.MonsterCloudA:
			style = styleCloud
		}
		cv.SetContent(c, r, monsterGlyph[m.Type], nil, style)
	}
}

func (v *view) drawPlayer(cv canvas, s *engine.Scene) {
	p := s.Player()
	cycle := s.Cycle()
	c, r := v.col(p.X), v.row(cycle.Altitude()+p.Radius)

	style := stylePlayer
	switch {
	case cycle.HoldLockout():
		style = styleLockout
	case cycle.InYellowZone():
		style = styleYellow
	}
	glyph := 'O'
	if cycle.State() == jump.StateCharging {
		glyph = 'o'
	}
	if v.visible(c, r) {
		cv.SetContent(c, r, glyph, nil, style)
	}

	if p.AttackPending() || s.Now() < p.ImmuneUntil {
		for _, dc := range []int{-1, 1} {
			if v.visible(c+dc, r) {
				cv.SetContent(c+dc, r, '-', nil, styleHUD)
			}
		}
	}
}

func (v *view) drawHUD(cv canvas, s *engine.Scene) {
	cycle := s.Cycle()
	p := s.Player()

	top := fmt.Sprintf(" %-9s alt %6.1fm  apex %6.1fm  streak %d  wave %d  poison %d  x%.2f",
		cycle.StateName(),
		s.Config().World.PixelsToMeters(cycle.Altitude()),
		s.Config().World.PixelsToMeters(cycle.LastLaunch().ApexHeight),
		cycle.PerfectStreak(),
		s.Director().Alive(),
		p.PoisonStacks,
		s.TimeScale(),
	)
	v.text(cv, 0, 0, top, styleHUD)

	// Compression gauge; the yellow section marks the timing window
	barW := v.width / 3
	if barW > 0 {
		fill := int(cycle.CompressionRatio() * float64(barW))
		yellowAt := int(s.Config().Jump.YellowZoneRatio * float64(barW))
		for i := 0; i < barW; i++ {
			style := styleBarEmpty
			ch := '·'
			if i < fill {
				ch = '█'
				style = styleSurface
				if i >= yellowAt {
					style = styleYellow
				}
			}
			cv.SetContent(i, v.height-1, ch, nil, style)
		}
	}

	report, dmg := s.LastOutcome()
	line := fmt.Sprintf(" %s  dmg %.0f%%", report.Rating, dmg.Fraction*100)
	if dmg.InstantDeath {
		line = " INSTANT DEATH"
	}
	if v.stats != nil {
		line += fmt.Sprintf("  kills %d  best %.0fm", v.stats.Kills(), v.stats.MaxApex())
	}
	if v.lastEvent != "" {
		line += "  | " + v.lastEvent
	}
	v.text(cv, barW, v.height-1, line, styleHUD)
}

func (v *view) banner(cv canvas, msg string) {
	x := (v.width - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	v.text(cv, x, v.height/2, msg, styleBanner)
}

func (v *view) text(cv canvas, x, y int, msg string, style tcell.Style) {
	for _, r := range msg {
		if x >= v.width {
			return
		}
		cv.SetContent(x, y, r, nil, style)
		x++
	}
}
