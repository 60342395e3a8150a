package vmath

// Rand is the randomness source injected into every system that draws
// Implementations need not be safe for concurrent use
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// FastRand is a xorshift64 generator
type FastRand struct {
	state uint64
}

var _ Rand = (*FastRand)(nil)

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RandRange returns a uniform value in [lo, hi)
func RandRange(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// RandSign returns -1 or 1 with equal probability
func RandSign(r Rand) float64 {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}
