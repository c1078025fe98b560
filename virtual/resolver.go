package virtual

// measureTolerance is the smallest height difference treated as a real change.
// Sub-pixel jitter from text layout must not trigger recomputation loops.
const measureTolerance float32 = 0.5

// HeightSource provides item heights to a range calculator.
type HeightSource interface {
	HeightOf(index int) float32
}

// HeightResolver turns a Sizing policy into concrete pixel heights.
//
// Estimates come from the policy and are cached per index the first time they
// are asked for. Measured heights reported by the renderer override estimates.
// A fixed policy needs neither cache: its wrappers are always sized explicitly,
// so measurements can not change the layout and are ignored.
type HeightResolver struct {
	sizing    Sizing
	estimates map[int]float32
	measured  map[int]float32

	evaluations int
}

// NewHeightResolver creates a resolver for the given policy.
func NewHeightResolver(sizing Sizing) *HeightResolver {
	r := &HeightResolver{sizing: sizing}
	if !sizing.IsFixed() {
		r.estimates = make(map[int]float32)
		r.measured = make(map[int]float32)
	}
	return r
}

// HeightOf returns the current height of index: the measured height if one was
// recorded, the estimate otherwise. The index must be in range.
func (r *HeightResolver) HeightOf(index int) float32 {
	if r.sizing.IsFixed() {
		return r.sizing.fixed
	}
	if h, ok := r.measured[index]; ok {
		return h
	}
	return r.Estimate(index)
}

// Estimate returns the policy height for index, calling the policy at most once
// per index until Reset. Negative policy results are clamped to zero.
func (r *HeightResolver) Estimate(index int) float32 {
	if r.sizing.IsFixed() {
		return r.sizing.fixed
	}
	if h, ok := r.estimates[index]; ok {
		return h
	}
	r.evaluations++
	h := r.sizing.fn(index)
	if h < 0 {
		h = 0
	}
	r.estimates[index] = h
	return h
}

// Measured returns the recorded measurement for index.
func (r *HeightResolver) Measured(index int) (float32, bool) {
	if r.sizing.IsFixed() {
		return 0, false
	}
	h, ok := r.measured[index]
	return h, ok
}

// Record stores a measured height for index and reports whether the item's
// effective height changed. Fixed policies never change.
func (r *HeightResolver) Record(index int, px float32) bool {
	if r.sizing.IsFixed() {
		return false
	}
	if px < 0 {
		px = 0
	}
	current := r.HeightOf(index)
	_, had := r.measured[index]
	if had && absf(px-current) < measureTolerance {
		return false
	}
	r.measured[index] = px
	return absf(px-current) >= measureTolerance
}

// Reset drops every cached estimate and measurement.
func (r *HeightResolver) Reset() {
	if r.sizing.IsFixed() {
		return
	}
	clear(r.estimates)
	clear(r.measured)
}

// Evaluations returns how many times the policy function has been called.
func (r *HeightResolver) Evaluations() int {
	return r.evaluations
}

// Sizing returns the policy this resolver was created with.
func (r *HeightResolver) Sizing() Sizing {
	return r.sizing
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
