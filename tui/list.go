// Package tui drives the virtual list engine from a bubbletea program. Rows
// are strings; their height is their line count.
package tui

import (
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"github.com/tillpoint/gui/virtual"
)

const (
	// frameInterval is how long scroll input is coalesced before the visible
	// range is recomputed.
	frameInterval = time.Second / 60
	wheelLines    = 3
	// maxLayoutPasses bounds re-layout after measured heights move the range.
	maxLayoutPasses = 4
)

// RenderFunc renders one row at width cells. selected is set for the cursor
// row. The row is as tall as the number of lines returned.
type RenderFunc[T any] func(item T, index int, width int, selected bool) string

// frameMsg flushes the scroll work of one list.
type frameMsg struct{ list uint64 }

var listIDs atomic.Uint64

type settings struct {
	keys   KeyMap
	styles Styles
	copy   func(string) error
	engine []virtual.Option
}

// Option configures a List.
type Option func(*settings)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option { return func(s *settings) { s.keys = k } }

// WithStyles replaces the default styles.
func WithStyles(st Styles) Option { return func(s *settings) { s.styles = st } }

// WithClipboard replaces the system clipboard used by the Copy binding.
func WithClipboard(write func(string) error) Option { return func(s *settings) { s.copy = write } }

// WithEngineOptions passes options to the list's engine, for example
// virtual.WithKeyFunc or virtual.WithOverscan. The scheduler is always the
// list's own.
func WithEngineOptions(opts ...virtual.Option) Option {
	return func(s *settings) { s.engine = append(s.engine, opts...) }
}

// List is a scrollable list for bubbletea programs. It renders only the rows
// around the viewport. Embed it in a model, forward messages to Update and
// place View in the layout; call SetSize when the space changes.
type List[T any] struct {
	id     uint64
	engine *virtual.Engine[T]
	frames *virtual.FrameQueue
	fixed  bool
	render RenderFunc[T]
	keys   KeyMap
	styles Styles
	copy   func(string) error

	width, height int
	cursor        int
	ticking       bool
	remeasure     bool

	// Rows rendered for the current range, starting at item first, and the
	// scroll offset the range was computed for.
	rows        []string
	first       int
	rangeScroll float32

	status string
}

// NewList creates a list of items. Heights are in lines.
func NewList[T any](items []T, sizing virtual.Sizing, render RenderFunc[T], opts ...Option) (*List[T], error) {
	s := settings{
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		copy:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&s)
	}

	l := &List[T]{
		id:     listIDs.Add(1),
		frames: virtual.NewFrameQueue(),
		fixed:  sizing.IsFixed(),
		render: render,
		keys:   s.keys,
		styles: s.styles,
		copy:   s.copy,
	}
	engineOpts := append(append([]virtual.Option{}, s.engine...), virtual.WithScheduler(l.frames))
	eng, err := virtual.NewEngine(items, sizing, engineOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "tui list")
	}
	l.engine = eng
	return l, nil
}

// Engine returns the list's engine.
func (l *List[T]) Engine() *virtual.Engine[T] { return l.engine }

// Cursor returns the index of the selected row.
func (l *List[T]) Cursor() int { return l.cursor }

// Status returns the message of the last action, such as a copy.
func (l *List[T]) Status() string { return l.status }

// KeyMap returns the list's key bindings, for a help view.
func (l *List[T]) KeyMap() KeyMap { return l.keys }

// SetSize sets the list's size in cells. The last column holds the
// scrollbar.
func (l *List[T]) SetSize(width, height int) {
	if l.width != 0 && width != l.width && !l.fixed {
		l.remeasure = true
	}
	l.width, l.height = width, max(height, 0)
	l.engine.Resize(float32(l.height))
	l.rangeScroll = l.engine.ScrollOffset()
	l.layout()
}

// SetItems replaces the items. A different slice drops all measured heights.
func (l *List[T]) SetItems(items []T) {
	l.engine.SetItems(items)
	l.cursor = min(l.cursor, max(len(items)-1, 0))
	l.layout()
}

// Init implements tea.Model.
func (l *List[T]) Init() tea.Cmd { return nil }

// Update handles navigation keys, the mouse wheel and the list's frame ticks.
func (l *List[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.list != l.id {
			return nil
		}
		l.ticking = false
		if n := l.frames.Flush(); n > 0 {
			l.layout()
		}
		return l.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Up):
			l.moveCursor(-1)
		case key.Matches(msg, l.keys.Down):
			l.moveCursor(1)
		case key.Matches(msg, l.keys.PageUp):
			l.moveCursor(-l.pageRows())
		case key.Matches(msg, l.keys.PageDown):
			l.moveCursor(l.pageRows())
		case key.Matches(msg, l.keys.Home):
			l.moveCursor(-l.engine.Len())
		case key.Matches(msg, l.keys.End):
			l.moveCursor(l.engine.Len())
		case key.Matches(msg, l.keys.Copy):
			l.copyCursorKey()
		default:
			return nil
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			l.scrollBy(-wheelLines)
		case tea.MouseButtonWheelDown:
			l.scrollBy(wheelLines)
		default:
			return nil
		}

	default:
		return nil
	}

	// Re-render for the cursor; the range itself follows on the next tick.
	l.layout()
	return l.tick()
}

// tick schedules the next frame flush if scroll work is pending and no tick
// is outstanding.
func (l *List[T]) tick() tea.Cmd {
	if l.ticking || l.frames.Pending() == 0 {
		return nil
	}
	l.ticking = true
	id := l.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{list: id} })
}

func (l *List[T]) moveCursor(delta int) {
	n := l.engine.Len()
	if n == 0 {
		return
	}
	l.cursor = min(max(l.cursor+delta, 0), n-1)
	l.engine.ScrollToIndex(l.cursor, virtual.AlignAuto)
}

func (l *List[T]) scrollBy(lines float32) {
	current := l.engine.ScrollOffset()
	target := min(max(current+lines, 0), l.engine.MaxScroll())
	if target != current {
		l.engine.Scroll(target)
	}
}

// pageRows estimates how many rows fit in the viewport from the mean row
// height.
func (l *List[T]) pageRows() int {
	n := l.engine.Len()
	if n == 0 || l.height == 0 {
		return 1
	}
	mean := l.engine.TotalHeight() / float32(n)
	if mean <= 0 {
		return l.height
	}
	return max(1, int(float32(l.height)/mean))
}

func (l *List[T]) copyCursorKey() {
	if l.engine.Len() == 0 {
		return
	}
	k := l.engine.Key(l.cursor)
	if err := l.copy(k); err != nil {
		l.status = "copy failed: " + err.Error()
		slog.Warn("copy row key", "key", k, "error", err)
		return
	}
	l.status = "copied " + k
}

func (l *List[T]) contentWidth() int {
	return max(l.width-1, 0)
}

// layout renders the mounted rows and reports the heights the engine asks
// for. When a measurement moves the range, the new range is rendered too.
func (l *List[T]) layout() {
	l.rows = l.rows[:0]
	if l.height == 0 || l.engine.State() != virtual.StateReady {
		return
	}
	for pass := 0; pass < maxLayoutPasses; pass++ {
		l.clampScroll()
		if l.frames.Pending() == 0 {
			l.rangeScroll = l.engine.ScrollOffset()
		}
		l.renderRange()
		// Measured rows can shrink the content below the offset again.
		if l.engine.ScrollOffset() <= l.engine.MaxScroll() {
			return
		}
	}
}

// clampScroll pulls the offset back when the content shrank below it. The
// clamp is not user input, so it is flushed now rather than on a tick.
func (l *List[T]) clampScroll() {
	if max := l.engine.MaxScroll(); l.engine.ScrollOffset() > max {
		l.engine.Scroll(max)
		l.frames.Flush()
	}
}

func (l *List[T]) renderRange() {
	width := l.contentWidth()
	items := l.engine.Items()
	for pass := 0; pass < maxLayoutPasses; pass++ {
		before := l.engine.Range()
		placements := l.engine.Mount()
		l.rows = l.rows[:0]
		if len(placements) == 0 {
			return
		}
		l.first = placements[0].Index

		for _, p := range placements {
			selected := p.Index == l.cursor
			row := l.render(items[p.Index], p.Index, width, selected)
			if selected {
				row = l.styles.Selected.Width(width).Render(row)
			}
			l.rows = append(l.rows, row)
			if p.Measure || l.remeasure {
				l.engine.ReportMeasurement(p.Index, float32(lipgloss.Height(row)))
			}
		}
		l.remeasure = false
		if l.engine.Range() == before {
			return
		}
	}
}

// View renders the visible lines and the scrollbar.
func (l *List[T]) View() string {
	if l.width <= 0 || l.height <= 0 {
		return ""
	}
	width := l.contentWidth()

	lines := make([]string, 0, l.height)
	if len(l.rows) > 0 {
		all := strings.Split(strings.Join(l.rows, "\n"), "\n")
		skip := max(int(l.rangeScroll-l.engine.OffsetOf(l.first)), 0)
		clip := lipgloss.NewStyle().MaxWidth(width)
		for i := skip; i < len(all) && len(lines) < l.height; i++ {
			lines = append(lines, clip.Render(all[i]))
		}
	}
	for len(lines) < l.height {
		lines = append(lines, "")
	}

	body := lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, body, l.scrollbar())
}

func (l *List[T]) scrollbar() string {
	thumbStart, thumbLen := 0, l.height
	if total := l.engine.TotalHeight(); total > float32(l.height) {
		thumbLen = max(1, int(float32(l.height)*float32(l.height)/total))
		if maxScroll := l.engine.MaxScroll(); maxScroll > 0 {
			thumbStart = int(l.rangeScroll / maxScroll * float32(l.height-thumbLen))
		}
	}

	track := make([]string, l.height)
	for i := range track {
		if i >= thumbStart && i < thumbStart+thumbLen {
			track[i] = l.styles.Thumb.Render("┃")
		} else {
			track[i] = l.styles.Track.Render("│")
		}
	}
	return strings.Join(track, "\n")
}
