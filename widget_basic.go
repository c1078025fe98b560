package gui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// TextWrapped draws text with word wrapping. maxWidth 0 uses the current
// layout width. The widget's height grows with the number of lines, which
// makes it the usual content of auto-height list rows.
func (ctx *Context) TextWrapped(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.currentLayoutWidth()
	}

	lines := WrapText(ctx, text, maxWidth, WrapModeWord)
	if len(lines) == 0 {
		return
	}

	pos := ctx.ItemPos()
	lineH := ctx.lineHeight()
	for i, line := range lines {
		ctx.AddText(pos.X, pos.Y+float32(i)*lineH, line, ctx.style.TextColor)
	}
	ctx.advanceCursor(Vec2{maxWidth, float32(len(lines)) * lineH})
}

// Badge draws text on a filled, padded background. Used for status tags.
func (ctx *Context) Badge(text string, bg uint32) {
	pos := ctx.ItemPos()
	textSize := ctx.MeasureText(text)
	pad := SpaceXS
	size := Vec2{X: textSize.X + pad*4, Y: textSize.Y + pad*2}

	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bg)
	ctx.AddText(pos.X+pad*2, pos.Y+pad, text, ColorWhite)
	ctx.advanceCursor(size)
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled)

	bgColor := ctx.style.ButtonColor
	switch {
	case disabled:
		bgColor = ctx.style.ButtonDisabledColor
	case ctx.isPressed(rect):
		bgColor = ctx.style.ButtonActiveColor
	case ctx.isHovered(rect):
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	clicked := !disabled && ctx.isClicked(rect)
	ctx.advanceCursor(size)
	return clicked
}

// Selectable draws a full-width selectable line and returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = ctx.currentLayoutWidth()
	}
	h := ctx.lineHeight() + SpaceXS*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	textColor := ctx.style.TextColor
	switch {
	case selected:
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.SelectedBgColor)
		textColor = ctx.style.SelectedTextColor
	case ctx.isHovered(rect):
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.HoveredBgColor)
	}
	ctx.AddText(pos.X+SpaceSM, pos.Y+SpaceXS, TruncateText(ctx, label, w-SpaceSM*2), textColor)

	clicked := !GetOpt(o, OptDisabled) && ctx.isClicked(rect)
	ctx.advanceCursor(Vec2{w, h})
	return clicked
}

// Checkbox draws a checkbox with label. Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool) bool {
	pos := ctx.ItemPos()

	box := ctx.lineHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: box + ctx.style.ItemSpacing + ctx.MeasureText(label).X, H: box}

	boxColor := ctx.style.ButtonColor
	if ctx.isHovered(rect) {
		boxColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, box, box, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, box, box, ctx.style.BorderColor, 1)
	if *value {
		pad := box * 0.25
		ctx.DrawList.AddRect(pos.X+pad, pos.Y+pad, box-pad*2, box-pad*2, ctx.style.AccentColor)
	}
	ctx.AddText(pos.X+box+ctx.style.ItemSpacing, pos.Y, label, ctx.style.TextColor)

	changed := ctx.isClicked(rect)
	if changed {
		*value = !*value
	}
	ctx.advanceCursor(Vec2{rect.W, rect.H})
	return changed
}
