package sim

// Source is the random source behind every spawn and drop decision.
// Tests inject scripted sources to force or suppress randomized branches.
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// LCG is the default Source: a 64-bit linear congruential generator whose
// draws come from the high bits of the state. Equal seeds give equal streams.
type LCG struct {
	state uint64
}

// NewLCG seeds a generator. Zero is mapped to 1.
func NewLCG(seed int64) *LCG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

// Next advances the state and returns it.
func (r *LCG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n) taken from the top 31 bits.
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State exposes the generator state for snapshots.
func (r *LCG) State() uint64 {
	return r.state
}

// oneIn draws once and reports whether the draw hit zero.
func oneIn(src Source, n int) bool {
	if n <= 0 {
		return false
	}
	return src.Intn(n) == 0
}

// between returns a whole number uniformly drawn from [lo, hi].
func between(src Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + float64(src.Intn(int(hi-lo)+1))
}
