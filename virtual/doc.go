// Package virtual implements windowed rendering for long vertical lists.
//
// An Engine owns an item collection and a height policy and answers one
// question on every scroll, resize or measurement: which contiguous range of
// items must be mounted, and at which pixel offsets. Hosts (the immediate-mode
// gui package, the bubbletea host in package tui) draw only that range and feed
// the real rendered heights back through ReportMeasurement.
//
// The engine is single-threaded. Scroll bursts are coalesced through a
// Scheduler into at most one range computation per frame; resizes and height
// corrections recompute immediately.
//
//	eng, err := virtual.NewEngine(orders, virtual.DynamicHeight(estimate),
//	    virtual.WithOverscan(3),
//	    virtual.WithKeyFunc(func(o Order, _ int) string { return o.ID.String() }))
//	eng.Resize(600)
//	for _, p := range eng.Mount() {
//	    // draw orders[p.Index] at p.Offset, then report its height when p.Measure is set
//	}
package virtual
