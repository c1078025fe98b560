package virtual

// Placement describes one mounted item wrapper.
type Placement struct {
	Index  int
	Key    string
	Offset float32 // distance from the top of the content area
	Height float32 // explicit wrapper height; meaningless when Auto is set
	Auto   bool    // height is zero: size the wrapper by its content

	// Measure is set by Engine.Mount when the host must report the rendered
	// height of this item: on first mount and when it enters the proximity
	// margin around the viewport.
	Measure bool
}

// Measurement is the payload of the Measured event.
type Measurement struct {
	Index  int
	Key    string
	Height float32
}

// DefaultMeasureMargin is the proximity margin, in pixels, around the viewport.
const DefaultMeasureMargin float32 = 200

// Measurer decides when a mounted item must be measured.
//
// An item is measured once when it is first mounted and again every time it
// moves from outside to inside the proximity margin around the viewport, which
// is when late-loading content usually settles. Keys that are not mounted in a
// pass are forgotten, so remounting an item measures it again.
type Measurer struct {
	margin     float32
	near       map[string]bool
	seen       map[string]uint64
	generation uint64
}

// NewMeasurer creates a Measurer with the given proximity margin.
func NewMeasurer(margin float32) *Measurer {
	if margin < 0 {
		margin = 0
	}
	return &Measurer{
		margin: margin,
		near:   make(map[string]bool),
		seen:   make(map[string]uint64),
	}
}

// Begin starts a mount pass.
func (m *Measurer) Begin() {
	m.generation++
}

// Due records that key is mounted at [offset, offset+height) and reports
// whether it must be measured now.
func (m *Measurer) Due(key string, offset, height, scroll, viewport float32) bool {
	near := offset+height >= scroll-m.margin && offset <= scroll+viewport+m.margin
	wasNear, mounted := m.near[key]
	m.near[key] = near
	m.seen[key] = m.generation
	if !mounted {
		return true
	}
	return near && !wasNear
}

// End finishes a mount pass, forgets keys that were not mounted in it and
// returns how many were dropped.
func (m *Measurer) End() int {
	dropped := 0
	for key, gen := range m.seen {
		if gen != m.generation {
			delete(m.seen, key)
			delete(m.near, key)
			dropped++
		}
	}
	return dropped
}

// Mounted returns the number of keys tracked from the last pass.
func (m *Measurer) Mounted() int {
	return len(m.seen)
}

// Reset forgets every key.
func (m *Measurer) Reset() {
	clear(m.near)
	clear(m.seen)
}
