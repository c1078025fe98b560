package gui

import "github.com/tillpoint/gui/virtual"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Styling
	style Style

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Font texture ID, set by the renderer.
	FontTextureID uint32

	// WantCaptureMouse is true when the mouse is over a GUI element.
	WantCaptureMouse bool

	// Text measurement cache, valid for the current frame.
	textMeasureCache map[string]Vec2

	// frames runs deferred list work (coalesced scroll recomputation) once
	// per frame, at Begin.
	frames *virtual.FrameQueue

	// lists holds the virtual lists drawn by this context. It counts frames
	// itself, so several GUIs never evict each other's lists.
	lists *FrameStore[virtualListState]
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
		frames:           virtual.NewFrameQueue(),
		lists:            newVirtualListStore(),
	}
}

// Frames returns the per-frame scheduler of this context. Engines created
// by VirtualList use it; custom widgets may share it.
func (ctx *Context) Frames() *virtual.FrameQueue {
	return ctx.frames
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame. Stale widget state is evicted
// here, which unmounts the engines of lists that were not drawn last frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	NextFrame()

	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++
	ctx.lists.Cleanup(ctx.FrameCount)
	ctx.WantCaptureMouse = false

	clear(ctx.textMeasureCache)
}

// isHovered returns true if rect is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if rect is under the mouse cursor.
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if rect was clicked this frame and the click lies
// inside the current clip rectangle.
func (ctx *Context) isClicked(rect Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	mouse := Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
	clip := ctx.DrawList.ClipRect()
	visible := mouse.X >= clip[0] && mouse.X < clip[2] && mouse.Y >= clip[1] && mouse.Y < clip[3]
	hit := visible && rect.Contains(mouse)
	if guiVerbose() {
		guiLogger.Debug("click", "rect", rect, "mouse", mouse, "hit", hit)
	}
	return hit
}

// isPressed returns true if rect is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text in the monospace atlas font.
// Results are cached per frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}
	n := 0
	for range text {
		n++
	}
	result := Vec2{
		X: float32(n) * ctx.style.CharWidth * ctx.style.FontScale,
		Y: ctx.lineHeight(),
	}
	ctx.textMeasureCache[text] = result
	return result
}

func (ctx *Context) currentLayoutWidth() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Width - layout.Padding*2 - layout.PaddingX*2
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

// CurrentLayoutWidth returns the available width in the current layout.
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

func (ctx *Context) currentLayoutHeight() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Height - layout.Padding*2 - layout.PaddingY*2
	}
	return ctx.DisplaySize.Y - ctx.cursor.Y
}

func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// AddText draws text with the current style and the atlas font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += ctx.layoutGap(layout)
	} else {
		ctx.cursor.X += ctx.layoutGap(layout)
	}
}

// ItemPos returns the position for the next widget with gap applied.
// Widgets call it once before drawing.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// AdvanceCursor moves the cursor after drawing an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}
	layout.ItemCount++
}
