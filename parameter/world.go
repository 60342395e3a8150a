package parameter

// World geometry
const (
	// PixelsPerMeter converts world pixels to the meter scale used by the director and difficulty curves
	PixelsPerMeter = 10.0

	// ScreenWidth is the logical playfield width in px
	ScreenWidth = 720.0

	// LaneCount is the number of horizontal lanes shared by player and monsters
	LaneCount = 3

	// CenterLaneNudge shifts the center lane away from the exact screen center (fraction of lane width)
	// A monster parked on the exact center line would sit on a purely vertical ascent path
	CenterLaneNudge = 0.18

	// LaneMargin is the inset from lane edges that bounds lateral patrol (px)
	LaneMargin = 24.0
)

// Player body
const (
	// Gravity is the downward acceleration while airborne (px/s²)
	Gravity = 2000.0

	// FastFallGravityScale multiplies gravity while input is held during descent
	FastFallGravityScale = 1.6

	// PlayerLaneSpeed is the lateral speed used to settle onto a lane center (px/s)
	PlayerLaneSpeed = 900.0

	// PlayerRadius is the body collision radius (px)
	PlayerRadius = 18.0
)
