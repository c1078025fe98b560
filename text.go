package gui

import "strings"

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries.
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries, for identifiers and
	// other text without spaces.
	WrapModeChar
)

// WrapText wraps text to fit within maxWidth. Explicit newlines always start
// a new line; an empty paragraph yields an empty line.
func WrapText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var wrapped []string
		if mode == WrapModeChar {
			wrapped = wrapByChar(ctx, para, maxWidth)
		} else {
			wrapped = wrapByWord(ctx, para, maxWidth)
		}
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

func wrapByWord(ctx *Context, text string, maxWidth float32) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if ctx.MeasureText(candidate).X > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func wrapByChar(ctx *Context, text string, maxWidth float32) []string {
	var lines []string
	var current []rune

	for _, r := range text {
		candidate := append(current, r)
		if ctx.MeasureText(string(candidate)).X > maxWidth && len(current) > 0 {
			lines = append(lines, string(current))
			current = []rune{r}
		} else {
			current = candidate
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

// TruncateText truncates text to fit within maxWidth, adding ".." if needed.
// Returns "" when not even the suffix fits.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	const suffix = ".."
	if maxWidth <= 0 {
		return ""
	}
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	target := maxWidth - ctx.MeasureText(suffix).X
	if target < 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 {
		if ctx.MeasureText(string(runes)).X <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}

// MeasureWrappedText returns the size of text when wrapped to maxWidth.
func MeasureWrappedText(ctx *Context, text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(ctx, text, maxWidth, mode)
	var w float32
	for _, line := range lines {
		w = maxf(w, ctx.MeasureText(line).X)
	}
	return Vec2{X: w, Y: float32(len(lines)) * ctx.lineHeight()}
}
