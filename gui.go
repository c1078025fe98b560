package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a new frame and returns the GUI context.
//
// Work deferred to the frame boundary during the previous frame (scroll
// recomputation of virtual lists) runs here, after stale widget state was
// evicted, so the widgets drawn in this frame see the updated ranges.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()

	ctx.Reset(displaySize, deltaTime)

	if n := ctx.frames.Flush(); n > 0 && guiVerbose() {
		guiLogger.Debug("frame tasks flushed", "frame", ctx.FrameCount, "tasks", n)
	}

	return ctx
}

// End finishes the frame and renders the UI.
func (g *GUI) End() error {
	if g.ctx.DrawList == nil {
		return nil
	}

	err := g.renderer.Render(g.ctx.DrawList)

	ReleaseDrawList(g.ctx.DrawList)
	g.ctx.DrawList = nil
	return err
}

// Context returns the GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
