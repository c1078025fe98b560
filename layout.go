package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing
	Gap      float32 // Space between children
	GapX     float32 // Horizontal gap override
	GapY     float32 // Vertical gap override
	Padding  float32
	PaddingX float32
	PaddingY float32

	ItemCount int // For gap calculation

	Hotkey           string  // Shortcut shown in panel headers ("Orders [O]")
	HeightConstraint float32 // Maximum panel height (0 = no limit)
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// GapX sets horizontal spacing.
func GapX(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapX = pixels }
}

// GapY sets vertical spacing.
func GapY(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapY = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// WithHotkey sets the keyboard shortcut to display in panel headers.
func WithHotkey(key string) LayoutOption {
	return func(l *Layout) { l.Hotkey = key }
}

// MaxHeight limits the panel height. Pass 0 to disable the constraint.
func MaxHeight(h float32) LayoutOption {
	return func(l *Layout) { l.HeightConstraint = h }
}

// pushLayoutWith starts layout at the cursor and pushes it.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayoutDetached removes the current layout and returns its content bounds
// without reporting it to the parent. Used when the caller positions the
// content itself, like the rows of a virtual list.
func (ctx *Context) popLayoutDetached() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}
}

// popLayout removes the current layout, advances the parent past it as a
// single item and returns the layout's bounds.
func (ctx *Context) popLayout() Rect {
	bounds := ctx.popLayoutDetached()
	if len(ctx.layoutStack) == 0 {
		return bounds
	}

	parent := ctx.layoutStack[len(ctx.layoutStack)-1]
	if parent.ItemCount > 0 {
		gap := ctx.layoutGap(parent)
		if parent.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}

	if parent.Type == LayoutVertical {
		ctx.cursor.X = parent.StartX + parent.Padding + parent.PaddingX
		ctx.cursor.Y = bounds.Y + bounds.H
		parent.MaxWidth = maxf(parent.MaxWidth, bounds.W)
		parent.MaxHeight = ctx.cursor.Y - parent.StartY
	} else {
		ctx.cursor.X = bounds.X + bounds.W
		ctx.cursor.Y = parent.StartY + parent.Padding + parent.PaddingY
		parent.MaxWidth = ctx.cursor.X - parent.StartX
		parent.MaxHeight = maxf(parent.MaxHeight, bounds.H)
	}
	parent.ItemCount++

	return bounds
}

// layoutGap returns the spacing placed between two items of layout.
func (ctx *Context) layoutGap(layout *Layout) float32 {
	gap := layout.GapY
	if layout.Type == LayoutHorizontal {
		gap = layout.GapX
	}
	if gap == 0 {
		gap = layout.Gap
	}
	if gap == 0 {
		gap = ctx.style.ItemSpacing
	}
	return gap
}

// Panel draws a panel with a title and content.
// Returns a function that should be called with the content closure.
//
// Usage:
//
//	ctx.Panel("Orders", WithHotkey("O"), Padding(12))(func() {
//	    ctx.Text("Open tickets")
//	    gui.VirtualList(ctx, "orders", orders, sizing, 400, drawOrder)
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}

		padX := layout.PaddingX
		if padX == 0 {
			padX = layout.Padding
		}
		padY := layout.PaddingY
		if padY == 0 {
			padY = layout.Padding
		}

		// 0 means auto-size to content
		userWidth := layout.Width
		userHeight := layout.Height
		if userWidth > 0 {
			layout.Width = userWidth - padX*2
		}

		startX := ctx.cursor.X
		startY := ctx.cursor.Y

		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + padY*2
		}

		ctx.cursor.X += padX
		ctx.cursor.Y += padY + headerH

		ctx.pushLayoutWith(layout)
		contents()
		bounds := ctx.popLayoutDetached()

		panelW := bounds.W + padX*2
		panelH := bounds.H + padY*2 + headerH
		if userWidth > 0 && panelW < userWidth {
			panelW = userWidth
		}
		if userHeight > 0 && panelH < userHeight {
			panelH = userHeight
		}
		if layout.HeightConstraint > 0 && panelH > layout.HeightConstraint {
			panelH = layout.HeightConstraint
		}

		ctx.DrawList.InsertRect(startX, startY, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			headerBg := ctx.style.PanelHeaderBgColor
			if headerBg == 0 {
				headerBg = ctx.style.ButtonColor
			}
			ctx.DrawList.AddRect(startX, startY, panelW, headerH, headerBg)

			headerTextColor := ctx.style.PanelHeaderTextColor
			if headerTextColor == 0 {
				headerTextColor = ctx.style.TextColor
			}

			displayTitle := title
			if layout.Hotkey != "" {
				displayTitle = title + " [" + layout.Hotkey + "]"
			}
			ctx.AddText(startX+padX, startY+(headerH-ctx.lineHeight())/2, displayTitle, headerTextColor)
		}

		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if ctx.Input != nil {
			panelRect := Rect{X: startX, Y: startY, W: panelW, H: panelH}
			if panelRect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
				ctx.WantCaptureMouse = true
			}
		}

		ctx.cursor.X = startX
		ctx.cursor.Y = startY
		ctx.advanceCursor(Vec2{X: panelW, Y: panelH})
	}
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack creates a horizontal layout container.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Separator draws a horizontal line across the current layout.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	ctx.DrawList.AddLine(pos.X, pos.Y+2, pos.X+w, pos.Y+2, ctx.style.SeparatorColor, 1)
	ctx.advanceCursor(Vec2{X: w, Y: 4})
}
