package director

import (
	"math"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/vmath"
)

// Lanes is the horizontal band layout shared by player and monsters
type Lanes struct {
	count   int
	width   float64
	centers []float64
	minX    []float64
	maxX    []float64
}

// NewLanes splits the screen into equal lanes; with an odd count the middle lane is
// shifted off the exact screen center by the configured nudge
func NewLanes(w config.WorldConfig) Lanes {
	n := w.LaneCount
	laneW := w.ScreenWidth / float64(n)
	l := Lanes{
		count:   n,
		width:   laneW,
		centers: make([]float64, n),
		minX:    make([]float64, n),
		maxX:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		c := (float64(i) + 0.5) * laneW
		if n%2 == 1 && i == n/2 {
			c += w.CenterLaneNudge * laneW
		}
		half := laneW/2 - w.LaneMargin
		l.centers[i] = c
		l.minX[i] = vmath.Clamp(c-half, 0, w.ScreenWidth)
		l.maxX[i] = vmath.Clamp(c+half, 0, w.ScreenWidth)
	}
	return l
}

func (l Lanes) Count() int { return l.count }

func (l Lanes) Width() float64 { return l.width }

// Center returns the x of lane i, clamped to the valid range
func (l Lanes) Center(i int) float64 {
	return l.centers[l.clampIndex(i)]
}

// Bounds returns the patrol x range of lane i
func (l Lanes) Bounds(i int) (minX, maxX float64) {
	i = l.clampIndex(i)
	return l.minX[i], l.maxX[i]
}

// Nearest returns the lane whose center is closest to x
func (l Lanes) Nearest(x float64) int {
	best, bestD := 0, math.Inf(1)
	for i, c := range l.centers {
		if d := math.Abs(x - c); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

func (l Lanes) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= l.count {
		return l.count - 1
	}
	return i
}
