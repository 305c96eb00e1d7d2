package geom

import "github.com/esimov/splitview/utils"

// Epsilon is the threshold under which a ratio sum or an extent is
// treated as zero.
const Epsilon = 1e-6

// Clamp01 restricts v to [0, 1].
func Clamp01(v float32) float32 {
	return utils.Clamp(v, 0, 1)
}

// Sum adds up the ratios.
func Sum(ratios []float32) float32 {
	var s float32
	for _, r := range ratios {
		s += r
	}
	return s
}

// SafeSum is Sum, but it reports 1 for a degenerate (zero) sum so it
// can always be used as a divisor.
func SafeSum(ratios []float32) float32 {
	s := Sum(ratios)
	if s <= Epsilon {
		return 1
	}
	return s
}

// Equal returns n equal ratios summing to 1.
func Equal(n int) []float32 {
	if n <= 0 {
		return nil
	}
	eq := 1 / float32(n)
	out := make([]float32, n)
	for i := range out {
		out[i] = eq
	}
	return out
}

// Normalize returns the ratios scaled so they sum to 1.
// A degenerate input yields an equal split.
func Normalize(ratios []float32) []float32 {
	s := Sum(ratios)
	if s <= Epsilon {
		return Equal(len(ratios))
	}
	out := make([]float32, len(ratios))
	for i, r := range ratios {
		out[i] = r / s
	}
	return out
}

// Partition divides r along axis a proportionally to the ratios.
// The slices are laid out back to back from the start of r, so they
// tile r along the axis without gaps. Degenerate ratios split r evenly.
func Partition(r Rect, a Axis, ratios []float32) []Rect {
	start, extent := r.Span(a)

	out := make([]Rect, len(ratios))
	acc := start
	for i, ratio := range Normalize(ratios) {
		size := extent * ratio
		out[i] = r.Slice(a, acc, size)
		acc += size
	}
	return out
}

// Boundaries returns the coordinates along axis a of the internal edges
// between consecutive slices of Partition(r, a, ratios).
func Boundaries(r Rect, a Axis, ratios []float32) []float32 {
	if len(ratios) < 2 {
		return nil
	}
	start, extent := r.Span(a)
	norm := Normalize(ratios)

	out := make([]float32, 0, len(ratios)-1)
	acc := start
	for _, ratio := range norm[:len(norm)-1] {
		acc += extent * ratio
		out = append(out, acc)
	}
	return out
}
