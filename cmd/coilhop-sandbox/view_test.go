package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/engine"
	"github.com/lixenwraith/coilhop/vmath"
)

// gridCanvas records drawn cells
type gridCanvas struct {
	w, h  int
	cells [][]rune
}

func newGridCanvas(w, h int) *gridCanvas {
	g := &gridCanvas{w: w, h: h, cells: make([][]rune, h)}
	for y := range g.cells {
		g.cells[y] = make([]rune, w)
	}
	return g
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func (g *gridCanvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = r
}

func (g *gridCanvas) row(y int) string { return string(g.cells[y]) }

func (g *gridCanvas) find(r rune) (int, int, bool) {
	for y, line := range g.cells {
		for x, c := range line {
			if c == r {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func newViewScene() *engine.Scene {
	return engine.NewScene(config.DefaultConfig(), engine.Deps{Rand: vmath.NewFastRand(1)})
}

// TestViewDrawsIdleScene tests HUD, ground and player placement at rest
func TestViewDrawsIdleScene(t *testing.T) {
	s := newViewScene()
	cv := newGridCanvas(80, 24)
	v := newView(s.Config().World)
	v.draw(cv, s)

	if !strings.Contains(cv.row(0), "Idle") {
		t.Errorf("HUD missing state: %q", cv.row(0))
	}

	px, py, ok := cv.find('O')
	if !ok {
		t.Fatal("player not drawn")
	}
	if py > v.groundRow || py < v.groundRow-2 {
		t.Errorf("player row %d far from ground row %d", py, v.groundRow)
	}
	if want := v.col(s.Player().X); px != want {
		t.Errorf("player col %d, want %d", px, want)
	}

	surface := 0
	for x := 0; x < cv.w; x++ {
		for y := 1; y < cv.h-1; y++ {
			if c := cv.cells[y][x]; c == '▀' || c == 'O' {
				surface++
				break
			}
		}
	}
	if surface != cv.w {
		t.Errorf("ground surface drawn in %d of %d columns", surface, cv.w)
	}
}

// TestViewFollowsAltitude tests that the camera keeps a high player on screen
func TestViewFollowsAltitude(t *testing.T) {
	v := newView(config.DefaultConfig().World)
	v.resize(80, 24)

	v.follow(0)
	if v.cameraY != 0 {
		t.Errorf("camera moved at ground: %v", v.cameraY)
	}
	for _, alt := range []float64{500, 5000, 50000} {
		v.follow(alt)
		r := v.row(alt)
		if !v.visible(0, r) {
			t.Errorf("altitude %v drawn off screen at row %d", alt, r)
		}
	}
}

// TestViewBannerAndResize tests the pause banner and a size change between frames
func TestViewBannerAndResize(t *testing.T) {
	s := newViewScene()
	v := newView(s.Config().World)

	small := newGridCanvas(40, 12)
	v.draw(small, s)
	v.banner(small, "PAUSED")
	if !strings.Contains(small.row(6), "PAUSED") {
		t.Errorf("banner row %q", small.row(6))
	}

	big := newGridCanvas(120, 40)
	v.draw(big, s)
	if v.width != 120 || v.height != 40 {
		t.Errorf("view not resized: %dx%d", v.width, v.height)
	}
}
