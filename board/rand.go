package board

// PseudoRand is a xorshift64* generator. Identical seeds give identical
// sequences on every platform, which keeps random walks reproducible.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15 // xorshift never leaves the zero state
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *PseudoRand) Intn(n int) int {
	if n <= 0 {
		panic("board: invalid argument to Intn")
	}
	return int(r.Uint64() % uint64(n))
}
