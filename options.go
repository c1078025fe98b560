package gui

// Option configures a UI widget.
type Option func(*options)

// options holds widget configuration keyed by option name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptRowTint = gui.NewOptKey("rowTint", uint32(0))
//
//	gui.VirtualList(ctx, "orders", orders, sizing, 400, draw, gui.WithOpt(OptRowTint, tint))
//
//	tint := gui.GetOpt(o, OptRowTint) // inside the widget
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ScrollbarVisibility controls when scrollbars are shown.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // Show only when content exceeds viewport
	ScrollbarAlways                            // Always show scrollbar
	ScrollbarNever                             // Never show scrollbar
)

// Built-in option keys.
var (
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey("width", float32(0))
	OptHeight   = NewOptKey("height", float32(0))

	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)

	// Virtual list keys.
	OptOverscan      = NewOptKey("overscan", -1) // -1 = engine default
	OptOffsetIndex   = NewOptKey("offsetIndex", false)
	OptMeasureMargin = NewOptKey("measureMargin", float32(0)) // 0 = engine default
	OptOnScroll      = NewOptKey[func(offset float32)]("onScroll", nil)
	OptItemKey       = NewOptKey[any]("itemKey", nil)
	OptRowGap        = NewOptKey("rowGap", float32(0))
)

// Disabled disables interaction with the widget.
func Disabled() Option { return WithOpt(OptDisabled, true) }

// WithWidth sets an explicit widget width.
func WithWidth(w float32) Option { return WithOpt(OptWidth, w) }

// WithHeight sets an explicit widget height.
func WithHeight(h float32) Option { return WithOpt(OptHeight, h) }

// ShowScrollbar forces the scrollbar on, or hides it entirely.
func ShowScrollbar(always bool) Option {
	if always {
		return WithOpt(OptScrollbarVisibility, ScrollbarAlways)
	}
	return WithOpt(OptScrollbarVisibility, ScrollbarNever)
}

// Overscan sets how many rows a virtual list mounts beyond each viewport edge.
func Overscan(n int) Option { return WithOpt(OptOverscan, n) }

// OffsetIndex makes a virtual list look up rows in a search tree over their
// bottom edges instead of walking from the first row. Worth it for lists
// with tens of thousands of rows.
func OffsetIndex() Option { return WithOpt(OptOffsetIndex, true) }

// MeasureMargin sets the distance from the viewport, in pixels, within which
// auto-height rows are measured again.
func MeasureMargin(px float32) Option { return WithOpt(OptMeasureMargin, px) }

// OnScroll registers a callback receiving the raw scroll offset of a virtual
// list whenever it scrolls.
func OnScroll(fn func(offset float32)) Option { return WithOpt(OptOnScroll, fn) }

// RowGap inserts vertical space below every row of a virtual list. The gap
// counts towards the row's height.
func RowGap(px float32) Option { return WithOpt(OptRowGap, px) }

// ItemKey sets the function deriving a stable key for each row of a virtual
// list. Keys scope the IDs of the widgets drawn inside a row, so a row keeps
// its widget state while rows before it are inserted or removed.
// T must match the list's item type.
func ItemKey[T any](fn func(item T, index int) string) Option {
	return WithOpt(OptItemKey, any(fn))
}
