package virtual

import "github.com/iotaledger/hive.go/runtime/event"

// Events are the notifications emitted by an Engine.
type Events struct {
	// Scrolled fires with the raw offset on every Scroll call, before any
	// coalescing.
	Scrolled *event.Event1[float32]
	// Measured fires for every reported measurement. The engine itself hooks
	// it to apply height corrections.
	Measured *event.Event1[Measurement]
	// RangeChanged fires when a recomputation produces a different range.
	RangeChanged *event.Event1[Range]
	// StateChanged fires on every lifecycle transition.
	StateChanged *event.Event1[State]

	event.Group[Events, *Events]
}

// NewEvents creates a new Events instance.
var NewEvents = event.CreateGroupConstructor(func() *Events {
	return &Events{
		Scrolled:     event.New1[float32](),
		Measured:     event.New1[Measurement](),
		RangeChanged: event.New1[Range](),
		StateChanged: event.New1[State](),
	}
})
