package virtual

import "github.com/cockroachdb/errors"

// Sizing is a per-item height policy: either one constant height for every
// item or a function of the item index.
type Sizing struct {
	fixed float32
	fn    func(index int) float32
}

// FixedHeight returns a policy where every item is px tall.
func FixedHeight(px float32) Sizing {
	return Sizing{fixed: px}
}

// DynamicHeight returns a policy that asks fn for each index once and caches
// the answer. A zero result means the item is sized by its content and must be
// measured after it is mounted.
func DynamicHeight(fn func(index int) float32) Sizing {
	return Sizing{fn: fn}
}

// IsFixed reports whether the policy is a constant height.
func (s Sizing) IsFixed() bool {
	return s.fn == nil
}

// Fixed returns the constant height of a fixed policy, 0 otherwise.
func (s Sizing) Fixed() float32 {
	if s.fn != nil {
		return 0
	}
	return s.fixed
}

func (s Sizing) validate() error {
	if s.fn != nil {
		return nil
	}
	if s.fixed <= 0 {
		return errors.Wrapf(ErrInvalidSizing, "fixed height must be positive, got %v", s.fixed)
	}
	return nil
}
