package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/engine"
)

const (
	// Terminals report no key release; a held key is inferred from auto-repeat
	holdInitialWindow = 550 * time.Millisecond
	holdRepeatWindow  = 120 * time.Millisecond
)

// controls folds terminal key events into per-tick engine input
type controls struct {
	holdUntil time.Time
	sticky    bool

	attack core.Direction
	shift  int
	drop   bool

	paused bool
	quit   bool
}

// handle applies one terminal event
func (c *controls) handle(ev tcell.Event, now time.Time) {
	if key, ok := ev.(*tcell.EventKey); ok {
		c.handleKey(key.Key(), key.Rune(), now)
	}
}

func (c *controls) handleKey(k tcell.Key, r rune, now time.Time) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
	case tcell.KeyLeft:
		c.shift = -1
	case tcell.KeyRight:
		c.shift = 1
	case tcell.KeyRune:
		switch r {
		case ' ':
			c.press(now)
		case 'h':
			c.sticky = !c.sticky
		case 'a':
			c.attack = core.DirLeft
		case 'd':
			c.attack = core.DirRight
		case 'm':
			c.drop = true
		case 'p':
			c.paused = !c.paused
		case 'q':
			c.quit = true
		}
	}
}

// press extends the inferred hold; repeats inside a live window only need the short extension
func (c *controls) press(now time.Time) {
	window := holdInitialWindow
	if now.Before(c.holdUntil) {
		window = holdRepeatWindow
	}
	if until := now.Add(window); until.After(c.holdUntil) {
		c.holdUntil = until
	}
}

func (c *controls) holding(now time.Time) bool {
	return c.sticky || now.Before(c.holdUntil)
}

// next builds the input for one tick; swipes and lane shifts fire once
func (c *controls) next(now time.Time) engine.Input {
	in := engine.Input{
		Hold:      c.holding(now),
		Attack:    c.attack,
		LaneShift: c.shift,
	}
	c.attack = core.DirNone
	c.shift = 0
	return in
}

// takeDrop reports a pending debug monster drop once
func (c *controls) takeDrop() bool {
	d := c.drop
	c.drop = false
	return d
}
