package vmath

// Rand is the randomness source used by gameplay code
// Float64 returns a value in [0, 1)
type Rand interface {
	Float64() float64
}

// FastRand is a xorshift64 generator; not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a FastRand, zero seed is replaced by 1
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

// Float64 uses the top 53 bits for a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Pick returns a uniform index in [0, n)
func Pick(r Rand, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Jitter returns a uniform value in [-1, 1)
func Jitter(r Rand) float64 {
	return (r.Float64() - 0.5) * 2
}

// SeqRand replays a fixed sequence of values, cycling when exhausted
// Deterministic source for tests and replays of specific situations
type SeqRand struct {
	Values []float64
	pos    int
}

// NewSeqRand returns a SeqRand cycling through values; empty sequence yields 0.5
func NewSeqRand(values ...float64) *SeqRand {
	return &SeqRand{Values: values}
}

func (s *SeqRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
