// Package rng provides a counter-based pseudo-random source. Every value is a
// pure function of a stream id and a draw index, so no caller ever shares a
// cursor with another.
package rng

// Float returns a value in [0,1) for the given stream and draw index.
func Float(stream, draw int64) float64 {
	h := mix(mix(uint64(stream)) ^ uint64(draw))
	return float64(h>>11) / (1 << 53)
}

// mix is the splitmix64 finalizer.
func mix(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Stream is a seeded draw site. The zero value is a valid stream for seed 0.
type Stream struct {
	seed int64
}

// New returns the stream for seed.
func New(seed int64) Stream {
	return Stream{seed: seed}
}

// Seed returns the stream id.
func (s Stream) Seed() int64 {
	return s.seed
}

// Sub derives the stream seed+k.
func (s Stream) Sub(k int64) Stream {
	return Stream{seed: s.seed + k}
}

// Float returns the draw-th value of the stream in [0,1).
func (s Stream) Float(draw int) float64 {
	return Float(s.seed, int64(draw))
}

// Intn returns a value in [0,n). It returns 0 when n <= 0.
func (s Stream) Intn(draw, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float(draw) * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Range returns a value in [min,max]. It returns min when max < min.
func (s Stream) Range(draw, min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(draw, max-min+1)
}

// Chance reports whether the draw falls below p.
func (s Stream) Chance(draw int, p float64) bool {
	return s.Float(draw) < p
}

// Perm returns a permutation of [0,n) using draws draw..draw+n-1.
func (s Stream) Perm(draw, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.Intn(draw+i, i+1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Shuffle returns a shuffled copy of xs.
func Shuffle[T any](s Stream, draw int, xs []T) []T {
	out := make([]T, len(xs))
	for i, j := range s.Perm(draw, len(xs)) {
		out[i] = xs[j]
	}
	return out
}
