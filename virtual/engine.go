package virtual

import (
	"log/slog"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Align selects where ScrollToIndex places the target item.
type Align uint8

const (
	AlignAuto   Align = iota // scroll as little as possible to make the item visible
	AlignStart               // item top at viewport top
	AlignCenter              // item centered in the viewport
	AlignEnd                 // item bottom at viewport bottom
)

// Engine coordinates scrolling, resizing and measurement for one list
// instance: it owns the height cache, the current viewport and the mounted
// range. It is not safe for concurrent use; hosts call it from their UI
// goroutine.
type Engine[T any] struct {
	// Events can be hooked by consumers. Hooks added by the engine itself are
	// removed on Unmount.
	Events *Events

	items    []T
	keyFunc  func(item T, index int) string
	resolver *HeightResolver
	calc     Calculator
	measurer *Measurer

	scheduler Scheduler
	ownQueue  *FrameQueue
	hooks     []func()
	log       *slog.Logger

	state        State
	hasContainer bool
	scroll       float32
	viewport     float32
	rng          Range
	recalcs      int
}

// NewEngine creates an engine for items. The engine stays idle, computing
// nothing, until the first Resize reports the viewport height.
func NewEngine[T any](items []T, sizing Sizing, opts ...Option) (*Engine[T], error) {
	if err := sizing.validate(); err != nil {
		return nil, err
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	if s.overscan < 0 {
		return nil, errors.Wrapf(ErrInvalidOverscan, "overscan must not be negative, got %d", s.overscan)
	}

	e := &Engine[T]{
		Events:   NewEvents(),
		items:    items,
		resolver: NewHeightResolver(sizing),
		measurer: NewMeasurer(s.measureMargin),
		log:      s.logger,
		rng:      emptyRange,
	}

	switch fn := s.keyFunc.(type) {
	case nil:
		e.keyFunc = func(_ T, index int) string { return strconv.Itoa(index) }
	case func(T, int) string:
		e.keyFunc = fn
	default:
		return nil, errors.Wrapf(ErrKeyFuncType, "got %T", s.keyFunc)
	}

	if s.offsetIndex {
		e.calc = NewIndexedCalculator(e.resolver, len(items), s.overscan)
	} else {
		e.calc = NewLinearCalculator(e.resolver, len(items), s.overscan)
	}

	e.scheduler = s.scheduler
	if e.scheduler == nil {
		e.ownQueue = NewFrameQueue()
		e.scheduler = e.ownQueue
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}

	e.hook(e.Events.Measured.Hook(e.onMeasured))
	if s.onScroll != nil {
		e.hook(e.Events.Scrolled.Hook(s.onScroll))
	}

	return e, nil
}

// hook keeps an engine-owned subscription so Unmount can remove it.
func (e *Engine[T]) hook(h interface{ Unhook() }) {
	e.hooks = append(e.hooks, h.Unhook)
}

// Resize reports the viewport height and recomputes the range immediately.
func (e *Engine[T]) Resize(viewport float32) {
	if e.state == StateUnmounted {
		return
	}
	if viewport < 0 {
		viewport = 0
	}
	if !e.hasContainer {
		e.hasContainer = true
		e.setState(StateMeasuring)
	}
	e.viewport = viewport
	e.recompute("resize")
}

// Scroll reports a new scroll offset. The offset is forwarded to the scroll
// callback and the Scrolled event at once; the range is recomputed on the next
// scheduler frame, at most once however many Scroll calls arrive before it.
func (e *Engine[T]) Scroll(offset float32) {
	if e.state == StateUnmounted {
		return
	}
	e.scroll = offset
	e.Events.Scrolled.Trigger(offset)
	if !e.hasContainer {
		return
	}
	e.scheduler.RequestFrame(e, e.scrollFrame)
}

func (e *Engine[T]) scrollFrame() {
	if e.state == StateUnmounted || !e.hasContainer {
		return
	}
	e.recompute("scroll")
}

// Frame flushes the engine's private frame queue. It does nothing when a
// Scheduler was supplied with WithScheduler; that scheduler's owner flushes it.
func (e *Engine[T]) Frame() int {
	if e.ownQueue == nil {
		return 0
	}
	return e.ownQueue.Flush()
}

// SetItems replaces the collection. A collection is considered new when its
// length or backing array differs; then every cached height is dropped and
// the range is computed from scratch.
func (e *Engine[T]) SetItems(items []T) {
	if e.state == StateUnmounted || sameCollection(e.items, items) {
		return
	}
	e.items = items
	e.resolver.Reset()
	e.calc.SetLen(len(items))
	e.measurer.Reset()
	e.log.Debug("items replaced", "len", len(items))

	if !e.hasContainer {
		return
	}
	e.setState(StateMeasuring)
	e.recompute("items")
}

// ReportMeasurement is called by the host after rendering item index, with the
// height it actually occupied. It emits the Measured event; when the height
// differs from the current one, offsets after index are rewalked and the range
// is recomputed before ReportMeasurement returns.
func (e *Engine[T]) ReportMeasurement(index int, px float32) {
	if e.state == StateUnmounted {
		return
	}
	if index < 0 || index >= len(e.items) {
		e.log.Debug("measurement for unknown index dropped", "index", index, "len", len(e.items))
		return
	}
	e.Events.Measured.Trigger(Measurement{
		Index:  index,
		Key:    e.keyFunc(e.items[index], index),
		Height: px,
	})
}

func (e *Engine[T]) onMeasured(m Measurement) {
	if !e.resolver.Record(m.Index, m.Height) {
		return
	}
	e.calc.Invalidate(m.Index)
	e.log.Debug("height corrected", "index", m.Index, "key", m.Key, "height", m.Height)
	if e.hasContainer {
		e.recompute("measure")
	}
}

func (e *Engine[T]) recompute(reason string) {
	scroll := e.scroll
	if scroll < 0 {
		scroll = 0
	}
	rng := e.calc.Compute(scroll, e.viewport)
	e.recalcs++
	e.setState(StateReady)

	if rng != e.rng {
		e.log.Debug("range changed", "reason", reason, "from", e.rng, "to", rng,
			"scroll", scroll, "viewport", e.viewport)
		e.rng = rng
		e.Events.RangeChanged.Trigger(rng)
	}
}

func (e *Engine[T]) setState(s State) {
	if e.state == s {
		return
	}
	e.state = s
	e.Events.StateChanged.Trigger(s)
}

// Mount returns the placements for the current range and marks the ones the
// host must measure after rendering.
func (e *Engine[T]) Mount() []Placement {
	if e.state == StateUnmounted {
		return nil
	}
	placements := e.Placements()
	e.measurer.Begin()
	for i := range placements {
		p := &placements[i]
		p.Measure = e.measurer.Due(p.Key, p.Offset, p.Height, e.scroll, e.viewport)
	}
	e.measurer.End()
	return placements
}

// Placements returns the wrappers for the current range without touching
// measurement tracking.
func (e *Engine[T]) Placements() []Placement {
	if e.state != StateReady || e.rng.Empty() {
		return nil
	}
	out := make([]Placement, 0, e.rng.Len())
	offset := e.calc.OffsetOf(e.rng.Start)
	for i := e.rng.Start; i <= e.rng.End; i++ {
		h := e.resolver.HeightOf(i)
		out = append(out, Placement{
			Index:  i,
			Key:    e.keyFunc(e.items[i], i),
			Offset: offset,
			Height: h,
			Auto:   h == 0,
		})
		offset += h
	}
	return out
}

// ScrollToIndex scrolls so that item index is visible with the given
// alignment, clamped to the scrollable extent, and returns the new offset.
func (e *Engine[T]) ScrollToIndex(index int, align Align) float32 {
	if e.state == StateUnmounted || len(e.items) == 0 {
		return e.scroll
	}
	index = min(max(index, 0), len(e.items)-1)

	top := e.calc.OffsetOf(index)
	bottom := top + e.resolver.HeightOf(index)
	target := e.scroll

	switch align {
	case AlignStart:
		target = top
	case AlignEnd:
		target = bottom - e.viewport
	case AlignCenter:
		target = top - (e.viewport-(bottom-top))/2
	default:
		if top < e.scroll {
			target = top
		} else if bottom > e.scroll+e.viewport {
			target = bottom - e.viewport
		}
	}
	target = min(max(target, 0), e.MaxScroll())

	if target != e.scroll {
		e.Scroll(target)
	}
	return target
}

// Unmount tears down the engine: engine-owned hooks are removed and pending
// frame work is cancelled. Every later call is a no-op.
func (e *Engine[T]) Unmount() {
	if e.state == StateUnmounted {
		return
	}
	e.scheduler.Cancel(e)
	e.setState(StateUnmounted)
	for _, unhook := range e.hooks {
		unhook()
	}
	e.hooks = nil
	e.measurer.Reset()
	e.rng = emptyRange
	e.log.Debug("unmounted")
}

// Range returns the currently mounted range.
func (e *Engine[T]) Range() Range { return e.rng }

// State returns the lifecycle state.
func (e *Engine[T]) State() State { return e.state }

// Items returns the current collection.
func (e *Engine[T]) Items() []T { return e.items }

// Len returns the collection length.
func (e *Engine[T]) Len() int { return len(e.items) }

// HeightOf returns the current height of item index.
func (e *Engine[T]) HeightOf(index int) float32 { return e.resolver.HeightOf(index) }

// IsMeasured reports whether a measured height is recorded for index.
func (e *Engine[T]) IsMeasured(index int) bool {
	_, ok := e.resolver.Measured(index)
	return ok
}

// OffsetOf returns the content offset of item index.
func (e *Engine[T]) OffsetOf(index int) float32 { return e.calc.OffsetOf(index) }

// TotalHeight returns the height of the whole content area.
func (e *Engine[T]) TotalHeight() float32 { return e.calc.TotalHeight() }

// ScrollOffset returns the last reported scroll offset.
func (e *Engine[T]) ScrollOffset() float32 { return e.scroll }

// ViewportHeight returns the last reported viewport height.
func (e *Engine[T]) ViewportHeight() float32 { return e.viewport }

// MaxScroll returns the largest useful scroll offset.
func (e *Engine[T]) MaxScroll() float32 {
	return max(0, e.calc.TotalHeight()-e.viewport)
}

// Recalculations returns how many range computations have run.
func (e *Engine[T]) Recalculations() int { return e.recalcs }

// Resolver exposes the height cache.
func (e *Engine[T]) Resolver() *HeightResolver { return e.resolver }

// Key returns the identifier of item index.
func (e *Engine[T]) Key(index int) string { return e.keyFunc(e.items[index], index) }

// sameCollection reports whether a and b are the same collection: same length
// and same backing array.
func sameCollection[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
