package virtual

import "log/slog"

// DefaultOverscan is the number of extra items mounted on each side of the
// visible range.
const DefaultOverscan = 3

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	overscan      int
	keyFunc       any
	onScroll      func(offset float32)
	scheduler     Scheduler
	offsetIndex   bool
	measureMargin float32
	logger        *slog.Logger
}

func defaultSettings() *settings {
	return &settings{
		overscan:      DefaultOverscan,
		measureMargin: DefaultMeasureMargin,
	}
}

// WithOverscan sets how many items are mounted beyond each edge of the
// viewport. Negative values make NewEngine fail.
func WithOverscan(n int) Option {
	return func(s *settings) { s.overscan = n }
}

// WithKeyFunc sets the function that derives a stable identifier for an item.
// The default identifier is the decimal index.
func WithKeyFunc[T any](fn func(item T, index int) string) Option {
	return func(s *settings) { s.keyFunc = fn }
}

// WithScrollCallback registers a callback that receives the raw scroll offset
// on every Scroll call.
func WithScrollCallback(fn func(offset float32)) Option {
	return func(s *settings) { s.onScroll = fn }
}

// WithScheduler sets the scheduler used to coalesce scroll recomputation.
// Without it the engine uses a private FrameQueue flushed by Engine.Frame.
func WithScheduler(sched Scheduler) Option {
	return func(s *settings) { s.scheduler = sched }
}

// WithOffsetIndex selects the IndexedCalculator instead of the linear walk.
func WithOffsetIndex() Option {
	return func(s *settings) { s.offsetIndex = true }
}

// WithMeasureMargin sets the proximity margin, in pixels, used to decide when
// mounted items are measured again.
func WithMeasureMargin(px float32) Option {
	return func(s *settings) { s.measureMargin = px }
}

// WithLogger sets the logger for debug output. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}
