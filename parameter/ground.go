package parameter

// Ground spring field
const (
	// GroundBlockSize is the width of one column (px)
	GroundBlockSize = 16.0

	// GroundColumnMargin is the number of off-screen columns added beyond the screen width
	GroundColumnMargin = 4

	// GroundTension couples neighbor columns (discrete Laplacian gain, 1/s²)
	GroundTension = 40.0

	// GroundStiffness pulls each column back to rest (1/s²)
	GroundStiffness = 30.0

	// GroundDamping bleeds column velocity (1/s)
	// Kept above 2*sqrt(Stiffness+4*Tension) so every spatial mode is over-damped
	GroundDamping = 30.0

	// GroundMaxOffset is the deepest downward deformation (px); upward bulge is capped at 30% of it
	GroundMaxOffset = 24.0

	// GroundUpwardRatio is the fraction of GroundMaxOffset allowed as upward bulge
	GroundUpwardRatio = 0.3

	// GroundPressureScale converts compression depth to peak force
	GroundPressureScale = 40.0

	// GroundForceRadius is the half-width of the pressure bump in columns
	GroundForceRadius = 6

	// GroundForceSigma is the gaussian sigma of the pressure bump in columns
	GroundForceSigma = 1.6

	// GroundSubSteps is the number of integration substeps per tick
	GroundSubSteps = 2
)

// Ripple layer (visual only)
const (
	// RippleFrequency is the angular frequency of ripple springs
	RippleFrequency = 9.0

	// RippleDampingRatio is the damping ratio of ripple springs (<1 rings)
	RippleDampingRatio = 0.35

	// RippleCoupling is how strongly a ripple column follows its neighbors' mean
	RippleCoupling = 0.9

	// RippleRadius is the half-width of a landing kick in columns
	RippleRadius = 8

	// RippleImpactScale converts landing speed (px/s) to kick strength
	RippleImpactScale = 0.02
)
