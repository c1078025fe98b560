package gui

import (
	"github.com/cockroachdb/errors"

	"github.com/tillpoint/gui/virtual"
)

// wheelStep is the scroll distance of one wheel notch and one arrow key press.
const wheelStep = 30

// listEngine is the type-independent part of *virtual.Engine[T] the widget
// state needs.
type listEngine interface {
	Scroll(offset float32)
	ScrollToIndex(index int, align virtual.Align) float32
	ScrollOffset() float32
	MaxScroll() float32
	TotalHeight() float32
	Unmount()
	State() virtual.State
}

// virtualListState is the per-list state kept between frames.
type virtualListState struct {
	engine listEngine

	height float32
	width  float32

	dragging        bool
	dragStartY      float32
	dragStartScroll float32
}

// newVirtualListStore creates a context's list store. It unmounts the engine
// of every list that stops being drawn.
func newVirtualListStore() *FrameStore[virtualListState] {
	return newLocalFrameStore(evictVirtualList)
}

func evictVirtualList(id ID, st *virtualListState) {
	if st.engine != nil {
		st.engine.Unmount()
		if guiVerbose() {
			guiLogger.Debug("virtual list evicted", "id", id)
		}
	}
}

// VirtualList draws a vertically scrolling list of items in a viewport of the
// given height, calling render only for the rows in and around the viewport.
//
// sizing sets the row heights. With virtual.FixedHeight every row is laid out
// at that height. With virtual.DynamicHeight each row starts at its estimate;
// a zero estimate makes the row as tall as whatever render draws. Rows are
// measured after rendering and the layout is corrected from the real heights.
//
// render draws one row. The cursor is at the row's top-left corner inside a
// vertical layout as wide as the list; everything it draws counts towards
// the row's height.
//
// Scroll input (wheel, arrows, PageUp/PageDown, Home/End, scrollbar) is
// applied at the start of the next frame, at most one range update per frame.
// Ctrl+C over a row copies its key to the clipboard installed with
// SetClipboard.
//
// The list's engine is created on first use and reused while the list is
// drawn every frame; engine options (Overscan, OffsetIndex, MeasureMargin,
// OnScroll, ItemKey) and sizing are read only when it is created. Passing a
// different items slice, or one of different length, drops all measured
// heights. VirtualList returns the engine, or nil if it could not be created.
//
// Usage:
//
//	gui.VirtualList(ctx, "orders", orders, virtual.DynamicHeight(estimate), 480,
//	    func(ctx *gui.Context, i int, o demo.Order) {
//	        ctx.Text(o.Table)
//	        ctx.TextWrapped(o.Notes, 0)
//	    },
//	    gui.ItemKey(func(o demo.Order, _ int) string { return o.ID.String() }))
func VirtualList[T any](ctx *Context, id string, items []T, sizing virtual.Sizing, height float32,
	render func(ctx *Context, index int, item T), opts ...Option) *virtual.Engine[T] {
	o := applyOptions(opts)

	listID := ctx.GetStableID(id)
	st := ctx.lists.Get(listID, virtualListState{})

	eng, err := virtualListEngine(ctx, st, id, items, sizing, o)
	if err != nil {
		guiLogger.Warn("virtual list disabled", "id", id, "error", err)
		return nil
	}

	pos := ctx.ItemPos()
	x, y := pos.X, pos.Y
	w := ctx.currentLayoutWidth()
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}

	visibility := GetOpt(o, OptScrollbarVisibility)
	showScrollbar := visibility == ScrollbarAlways ||
		(visibility == ScrollbarAuto && eng.TotalHeight() > height)
	scrollbarW := float32(0)
	if showScrollbar {
		scrollbarW = ctx.style.ScrollbarSize
	}
	contentW := w - scrollbarW

	widthChanged := st.width != 0 && st.width != contentW && !sizing.IsFixed()
	st.width = contentW
	if st.height != height || eng.State() == virtual.StateIdle {
		st.height = height
		eng.Resize(height)
	}
	if max := eng.MaxScroll(); eng.ScrollOffset() > max {
		// The content shrank below the scroll position.
		eng.Scroll(max)
	}

	drawVirtualRows(ctx, eng, x, y, contentW, widthChanged, GetOpt(o, OptRowGap), render)

	viewport := Rect{X: x, Y: y, W: w, H: height}
	if ctx.Input != nil && ctx.isHovered(viewport) {
		ctx.WantCaptureMouse = true
		ctx.scrollVirtualListInput(eng, height)
	}
	if showScrollbar {
		ctx.virtualScrollbar(eng, st, x+contentW, y, scrollbarW, height)
	}

	ctx.cursor = Vec2{X: x, Y: y}
	ctx.advanceCursor(Vec2{X: w, Y: height})
	return eng
}

// virtualListEngine returns the list's engine, creating it when the list is
// new, was unmounted, or holds items of another type.
func virtualListEngine[T any](ctx *Context, st *virtualListState, id string, items []T,
	sizing virtual.Sizing, o options) (*virtual.Engine[T], error) {
	if st.engine != nil && st.engine.State() != virtual.StateUnmounted {
		if eng, ok := st.engine.(*virtual.Engine[T]); ok {
			eng.SetItems(items)
			return eng, nil
		}
	}
	if st.engine != nil {
		st.engine.Unmount()
	}
	*st = virtualListState{}

	engineOpts := []virtual.Option{
		virtual.WithScheduler(ctx.frames),
		virtual.WithLogger(guiLogger.With("list", id)),
	}
	if n := GetOpt(o, OptOverscan); n >= 0 {
		engineOpts = append(engineOpts, virtual.WithOverscan(n))
	}
	if GetOpt(o, OptOffsetIndex) {
		engineOpts = append(engineOpts, virtual.WithOffsetIndex())
	}
	if px := GetOpt(o, OptMeasureMargin); px > 0 {
		engineOpts = append(engineOpts, virtual.WithMeasureMargin(px))
	}
	if fn := GetOpt(o, OptOnScroll); fn != nil {
		engineOpts = append(engineOpts, virtual.WithScrollCallback(fn))
	}
	if keyOpt := GetOpt(o, OptItemKey); keyOpt != nil {
		fn, ok := keyOpt.(func(T, int) string)
		if !ok {
			return nil, errors.Wrapf(virtual.ErrKeyFuncType, "list %q holds %T items, key function is %T",
				id, *new(T), keyOpt)
		}
		engineOpts = append(engineOpts, virtual.WithKeyFunc(fn))
	}

	eng, err := virtual.NewEngine(items, sizing, engineOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "list %q", id)
	}
	st.engine = eng
	if guiVerbose() {
		guiLogger.Debug("virtual list created", "id", id, "items", len(items))
	}
	return eng, nil
}

// drawVirtualRows renders the mounted rows inside the viewport clip and
// reports the heights the engine asked for. Rows are stacked from the first
// mounted offset using the engine's current heights, so a height corrected
// while drawing moves the rows below it in the same frame.
func drawVirtualRows[T any](ctx *Context, eng *virtual.Engine[T], x, y, w float32,
	remeasure bool, gap float32, render func(*Context, int, T)) {
	placements := eng.Mount()
	if len(placements) == 0 {
		return
	}

	height := eng.ViewportHeight()
	ctx.DrawList.PushClipRectIntersect(x, y, x+w, y+height)
	defer ctx.DrawList.PopClipRect()

	items := eng.Items()
	top := placements[0].Offset - eng.ScrollOffset()
	for i, p := range placements {
		rowY := y + top

		// Auto rows not measured yet have no height; they get their
		// background once measured.
		rowH := eng.HeightOf(p.Index)
		bg := ctx.style.RowBgColor
		if p.Index%2 == 1 {
			bg = ctx.style.RowBgAltColor
		}
		if ctx.isHovered(Rect{X: x, Y: rowY, W: w, H: rowH}) {
			bg = ctx.style.HoveredBgColor
			if ctx.copyShortcut() {
				copyRowKey(p.Key)
			}
		}
		ctx.DrawList.AddRect(x, rowY, w, rowH, bg)

		ctx.PushStableID(p.Key)
		ctx.cursor = Vec2{X: x, Y: rowY}
		layout := &Layout{Type: LayoutVertical, Width: w, Gap: ctx.style.ItemSpacing}
		if !p.Auto {
			layout.Height = p.Height
			ctx.DrawList.PushClipRectIntersect(x, rowY, x+w, rowY+p.Height)
		}
		ctx.pushLayoutWith(layout)

		render(ctx, p.Index, items[p.Index])

		measured := ctx.popLayoutDetached().H + gap
		if !p.Auto {
			ctx.DrawList.PopClipRect()
		}
		ctx.PopID()

		if p.Measure || remeasure {
			eng.ReportMeasurement(p.Index, measured)
		}
		if i+1 < len(placements) {
			top += eng.HeightOf(p.Index)
		}
	}
}

// copyRowKey puts the identifier of a row on the clipboard (Ctrl+C over the
// row).
func copyRowKey(key string) {
	if err := CopyText(key); err != nil {
		guiLogger.Warn("copy row key", "key", key, "error", err)
		return
	}
	if guiVerbose() {
		guiLogger.Debug("row key copied", "key", key)
	}
}

// scrollVirtualListInput turns wheel and key input over the list into a
// scroll request.
func (ctx *Context) scrollVirtualListInput(eng listEngine, height float32) {
	in := ctx.Input
	current := eng.ScrollOffset()
	target := current

	target -= in.MouseWheelY * wheelStep
	if in.KeyRepeated(KeyDown) {
		target += wheelStep
	}
	if in.KeyRepeated(KeyUp) {
		target -= wheelStep
	}
	if in.KeyPressed(KeyPageDown) {
		target += height * 0.8
	}
	if in.KeyPressed(KeyPageUp) {
		target -= height * 0.8
	}
	if in.KeyPressed(KeyHome) {
		target = 0
	}
	if in.KeyPressed(KeyEnd) {
		target = eng.MaxScroll()
	}

	target = clampf(target, 0, eng.MaxScroll())
	if target != current {
		eng.Scroll(target)
	}
}

// virtualScrollbar draws the scrollbar track and thumb and handles thumb
// dragging and track paging.
func (ctx *Context) virtualScrollbar(eng listEngine, st *virtualListState, x, y, w, height float32) {
	ctx.DrawList.AddRect(x, y, w, height, ctx.style.ScrollbarBgColor)

	total := eng.TotalHeight()
	maxScroll := eng.MaxScroll()
	if total <= height || maxScroll <= 0 {
		st.dragging = false
		return
	}

	thumbH := maxf(20, height*height/total)
	track := height - thumbH
	scroll := clampf(eng.ScrollOffset(), 0, maxScroll)
	thumbY := y + scroll/maxScroll*track

	thumb := Rect{X: x, Y: thumbY, W: w, H: thumbH}
	thumbHovered := ctx.isHovered(thumb)

	if in := ctx.Input; in != nil {
		if thumbHovered && in.MouseClicked(MouseButtonLeft) {
			st.dragging = true
			st.dragStartY = in.MouseY
			st.dragStartScroll = scroll
		}

		target := scroll
		if st.dragging {
			if in.MouseDown(MouseButtonLeft) {
				target = st.dragStartScroll + (in.MouseY-st.dragStartY)*(maxScroll/track)
			} else {
				st.dragging = false
			}
		}

		bar := Rect{X: x, Y: y, W: w, H: height}
		if !thumbHovered && !st.dragging && ctx.isHovered(bar) && in.MouseClicked(MouseButtonLeft) {
			if in.MouseY < thumbY {
				target -= height
			} else if in.MouseY > thumbY+thumbH {
				target += height
			}
		}

		target = clampf(target, 0, maxScroll)
		if target != scroll {
			eng.Scroll(target)
		}
	}

	color := ctx.style.ScrollbarGrabColor
	if st.dragging || thumbHovered {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(x, thumbY, w, thumbH, color)
}

// VirtualListEngine returns the engine of the list drawn under id in the
// current ID scope, or nil if no such list of item type T was drawn.
func VirtualListEngine[T any](ctx *Context, id string) *virtual.Engine[T] {
	st := ctx.lists.GetIfExists(ctx.GetStableID(id))
	if st == nil {
		return nil
	}
	eng, _ := st.engine.(*virtual.Engine[T])
	return eng
}

// ScrollVirtualListTo scrolls the list drawn under id in the current ID scope
// so that row index is visible with the given alignment. The scroll applies
// with the next frame. Returns false if the list has not been drawn.
func ScrollVirtualListTo(ctx *Context, id string, index int, align virtual.Align) bool {
	st := ctx.lists.GetIfExists(ctx.GetStableID(id))
	if st == nil || st.engine == nil {
		return false
	}
	st.engine.ScrollToIndex(index, align)
	return true
}
