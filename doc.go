/*
Package gui provides an immediate-mode GUI for back-office screens: order
queues, rosters and stock lists that hold thousands of rows but show a
screenful at a time.

# Overview

The UI is rebuilt every frame. Widgets draw into a DrawList and return
interaction results directly; a Renderer turns the DrawList into pixels.
State that must outlive a frame (list engines, scrollbar drags) is kept in
FrameStores keyed by stable IDs and dropped once a widget stops being drawn.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 800)
	ui := gui.New(renderer, gui.WithStyle(gui.BackOfficeStyle()))

	for !window.ShouldClose() {
	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 800}, deltaTime)

	    ctx.Panel("Orders", gui.Padding(12))(func() {
	        gui.VirtualList(ctx, "orders", orders, virtual.DynamicHeight(estimate), 600,
	            func(ctx *gui.Context, i int, o demo.Order) {
	                ctx.Text(o.Table)
	                ctx.TextWrapped(o.Notes, 0)
	            })
	    })

	    ui.End()
	    input.Reset()
	    window.SwapBuffers()
	}

# Virtual Lists

VirtualList renders only the rows in and around the viewport. Row heights
come from a virtual.Sizing: a fixed height, or a per-index estimate that is
corrected by measuring each row after it is drawn. A zero estimate means the
row is sized by its content.

Scrolling is coalesced: wheel, keyboard and scrollbar input only records the
new offset, and the visible range is recomputed once when the next frame
begins. Measurement corrections apply immediately, so rows below a corrected
row move in the same frame.

The engine behind a list (package virtual) has no GUI dependency and can be
driven by other hosts; package tui drives it from a terminal program.

# Keyboard Shortcuts

While the mouse is over a virtual list:

	Mouse wheel      Scroll by 30px per notch
	Up / Down        Scroll by 30px (repeats while held)
	PageUp/PageDown  Scroll by 80% of the viewport
	Home / End       Jump to the first / last row
	Ctrl+C           Copy the key of the hovered row

# Layout

Layouts are closures over a cursor:

	ctx.VStack(gui.Gap(8))(func() {
	    ctx.HStack()(func() {
	        ctx.TextDisabled("Table")
	        ctx.Text("12")
	    })
	    ctx.Separator()
	})

Each widget asks for its position with ItemPos and reports its size with
AdvanceCursor; custom widgets do the same.

# Debugging

Set GUI_DEBUG=1 or call SetVerbose(true) to log clicks, list creation and
eviction, and scroll flushes through log/slog at debug level.
*/
package gui
