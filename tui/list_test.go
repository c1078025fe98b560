package tui

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/gui/virtual"
)

func rows(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "row " + strconv.Itoa(i)
	}
	return out
}

func plain(s string, _ int, _ int, _ bool) string { return s }

func firstLine(view string) string {
	line, _, _ := strings.Cut(view, "\n")
	return strings.TrimRight(strings.TrimRight(line, "│┃"), " ")
}

func press(l *List[string], keys ...tea.KeyType) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		if c := l.Update(tea.KeyMsg{Type: k}); c != nil {
			cmd = c
		}
	}
	return cmd
}

func TestList_InitialView(t *testing.T) {
	l, err := NewList(rows(100), virtual.FixedHeight(1), plain)
	require.NoError(t, err)

	require.Empty(t, l.View(), "no size yet")
	l.SetSize(20, 10)

	require.Equal(t, virtual.Range{Start: 0, End: 13}, l.Engine().Range())
	view := l.View()
	require.Len(t, strings.Split(view, "\n"), 10)
	require.Equal(t, "row 1", firstLine(strings.SplitN(view, "\n", 2)[1]))
}

func TestList_CursorScrollIsCoalesced(t *testing.T) {
	l, err := NewList(rows(100), virtual.FixedHeight(1), plain)
	require.NoError(t, err)
	l.SetSize(20, 10)
	before := l.Engine().Recalculations()

	keys := make([]tea.KeyType, 12)
	for i := range keys {
		keys[i] = tea.KeyDown
	}
	cmd := press(l, keys...)
	require.NotNil(t, cmd, "a frame tick is scheduled")
	require.Equal(t, 12, l.Cursor())
	require.Equal(t, float32(3), l.Engine().ScrollOffset())
	require.Equal(t, before, l.Engine().Recalculations())
	require.Equal(t, "row 0", firstLine(l.View()), "view keeps the last computed range")

	l.Update(frameMsg{list: l.id})
	require.Equal(t, before+1, l.Engine().Recalculations())
	require.Equal(t, virtual.Range{Start: 0, End: 16}, l.Engine().Range())
	require.Equal(t, "row 3", firstLine(l.View()))
}

func TestList_IgnoresOtherListsFrames(t *testing.T) {
	l, err := NewList(rows(100), virtual.FixedHeight(1), plain)
	require.NoError(t, err)
	l.SetSize(20, 10)
	press(l, tea.KeyEnd)

	l.Update(frameMsg{list: l.id + 1000})
	require.Equal(t, "row 0", firstLine(l.View()))

	l.Update(frameMsg{list: l.id})
	require.Equal(t, "row 90", firstLine(l.View()))
	require.Equal(t, 99, l.Cursor())
}

func TestList_MouseWheel(t *testing.T) {
	l, err := NewList(rows(100), virtual.FixedHeight(1), plain)
	require.NoError(t, err)
	l.SetSize(20, 10)

	cmd := l.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	require.NotNil(t, cmd)
	l.Update(frameMsg{list: l.id})
	require.Equal(t, "row 3", firstLine(l.View()))

	l.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	l.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	l.Update(frameMsg{list: l.id})
	require.Zero(t, l.Engine().ScrollOffset())
}

func TestList_MeasuresMultiLineRows(t *testing.T) {
	items := []string{"one", "two\nlines", "three\nline\nrow", "four"}
	l, err := NewList(items, virtual.DynamicHeight(func(int) float32 { return 1 }), plain)
	require.NoError(t, err)
	l.SetSize(30, 10)

	eng := l.Engine()
	require.Equal(t, float32(1), eng.HeightOf(0))
	require.Equal(t, float32(2), eng.HeightOf(1))
	require.Equal(t, float32(3), eng.HeightOf(2))
	require.Equal(t, float32(7), eng.TotalHeight())

	lines := strings.Split(l.View(), "\n")
	require.Equal(t, "lines", firstLine(lines[2]))
}

func TestList_CopyCursorKey(t *testing.T) {
	var copied string
	l, err := NewList(rows(10), virtual.FixedHeight(1), plain,
		WithClipboard(func(s string) error { copied = s; return nil }),
		WithEngineOptions(virtual.WithKeyFunc(func(s string, _ int) string { return "key:" + s })))
	require.NoError(t, err)
	l.SetSize(20, 5)

	press(l, tea.KeyDown)
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.Equal(t, "key:row 1", copied)
	require.Equal(t, "copied key:row 1", l.Status())
}

func TestList_InvalidSizing(t *testing.T) {
	_, err := NewList(rows(1), virtual.FixedHeight(0), plain)
	require.ErrorIs(t, err, virtual.ErrInvalidSizing)
}

func TestList_SetItemsClampsCursor(t *testing.T) {
	l, err := NewList(rows(50), virtual.FixedHeight(1), plain)
	require.NoError(t, err)
	l.SetSize(20, 10)
	press(l, tea.KeyEnd)
	l.Update(frameMsg{list: l.id})
	require.Equal(t, float32(40), l.Engine().ScrollOffset())

	// The shrunk list is drawn from the top without waiting for a tick.
	l.SetItems(rows(5))
	require.Equal(t, 4, l.Cursor())
	require.Zero(t, l.Engine().ScrollOffset())
	require.Zero(t, l.frames.Pending())
	require.Equal(t, virtual.Range{Start: 0, End: 4}, l.Engine().Range())

	lines := strings.Split(l.View(), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "row 0", firstLine(lines[0]))
	require.Equal(t, "row 4", firstLine(lines[4]))
}

// wrap breaks s into lines of at most width cells.
func wrap(s string, _ int, width int, _ bool) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func TestList_WidthChangeRemeasuresDynamicRows(t *testing.T) {
	items := []string{"alpha beta gamma delta", "one", "epsilon zeta eta theta"}
	l, err := NewList(items, virtual.DynamicHeight(func(int) float32 { return 1 }), wrap)
	require.NoError(t, err)
	l.SetSize(30, 10)

	eng := l.Engine()
	require.Equal(t, float32(1), eng.HeightOf(0))
	require.Equal(t, float32(3), eng.TotalHeight())
	before := eng.Recalculations()

	l.SetSize(12, 10)
	require.Greater(t, eng.HeightOf(0), float32(1))
	require.Greater(t, eng.HeightOf(2), float32(1))
	require.Equal(t, float32(1), eng.HeightOf(1))
	require.Greater(t, eng.TotalHeight(), float32(3))
	require.Greater(t, eng.Recalculations(), before+1, "more than the resize itself")

	// A height-only change keeps the measurements.
	total := eng.TotalHeight()
	l.SetSize(12, 8)
	require.Equal(t, total, eng.TotalHeight())
}

func TestList_WidthChangeKeepsFixedRows(t *testing.T) {
	items := []string{"alpha beta gamma delta", "one", "epsilon zeta eta theta"}
	l, err := NewList(items, virtual.FixedHeight(1), wrap)
	require.NoError(t, err)
	l.SetSize(30, 10)
	before := l.Engine().Recalculations()

	l.SetSize(12, 10)
	eng := l.Engine()
	require.Equal(t, float32(1), eng.HeightOf(0))
	require.Equal(t, float32(3), eng.TotalHeight())
	require.False(t, eng.IsMeasured(0))
	require.Equal(t, before+1, eng.Recalculations(), "only the resize")
}
