package virtual

// State is the lifecycle state of an Engine.
type State uint8

const (
	// StateIdle means no viewport has been measured yet.
	StateIdle State = iota
	// StateMeasuring means the viewport is known and the range must be
	// (re)computed, either for the first time or after the items changed.
	StateMeasuring
	// StateReady means a range has been computed for the current inputs.
	StateReady
	// StateUnmounted is terminal. Every operation is a no-op.
	StateUnmounted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMeasuring:
		return "measuring"
	case StateReady:
		return "ready"
	case StateUnmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}
