// Command roster browses the demo staff roster and open orders in the
// terminal. Both tabs are virtual lists: only the rows on screen are
// rendered, and order rows, whose markdown notes wrap to any number of lines,
// are measured after rendering.
//
//	go run ./example/roster/ --roster.count 250000 --log /tmp/roster.log -d
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tillpoint/gui/internal/demo"
	"github.com/tillpoint/gui/tui"
	"github.com/tillpoint/gui/virtual"
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Browse the demo roster and orders in the terminal",
	Long: `Browse the demo staff roster and open orders in the terminal.

Configuration comes from defaults, an optional YAML file (--config),
TILLPOINT_* environment variables and flags, in that order.`,
	SilenceUsage: true,
	RunE:         runRoster,
}

func init() {
	demo.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().String("log", "", "write logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func runRoster(cmd *cobra.Command, _ []string) error {
	cfg, err := demo.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logPath, _ := cmd.Flags().GetString("log")
	log, err := newLogger(logPath, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	m, err := newModel(cfg, log)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}

// newLogger logs to path, or nowhere when path is empty: the terminal
// belongs to the program.
func newLogger(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debug {
		cfg.Level.SetLevel(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "open log %s", path)
	}
	return log, nil
}

type tab int

const (
	rosterTab tab = iota
	ordersTab
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Reverse(true)
	statusStyle    = lipgloss.NewStyle().Faint(true)
)

type keyMap struct {
	tui.KeyMap
	Tab  key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Tab, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Tab, k.Quit})
}

type model struct {
	log    *zap.Logger
	roster *tui.List[demo.Member]
	orders *tui.List[demo.Order]
	notes  *noteRenderer
	money  *demo.MoneyFormatter
	keys   keyMap
	help   help.Model
	active tab
	width  int
	height int
}

func newModel(cfg demo.Config, log *zap.Logger) (*model, error) {
	members, err := demo.Roster(cfg.Roster.Count, cfg.Seed)
	if err != nil {
		return nil, err
	}
	orders, err := demo.Orders(cfg.Orders.Count, cfg.Seed)
	if err != nil {
		return nil, err
	}
	money, err := demo.NewMoneyFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return nil, err
	}

	m := &model{
		log:   log,
		notes: newNoteRenderer(),
		money: money,
		help:  help.New(),
	}

	engineOpts := []virtual.Option{virtual.WithOverscan(cfg.List.Overscan)}
	if cfg.List.Indexed {
		engineOpts = append(engineOpts, virtual.WithOffsetIndex())
	}

	m.roster, err = tui.NewList(members, virtual.FixedHeight(1), renderMember,
		tui.WithEngineOptions(append(engineOpts,
			virtual.WithKeyFunc(func(mb demo.Member, _ int) string { return mb.ID }))...))
	if err != nil {
		return nil, err
	}

	// Estimates assume an 80 column terminal; rows are measured as drawn.
	estimate := virtual.DynamicHeight(func(i int) float32 {
		return float32(orders[i].TextLines(76))
	})
	m.orders, err = tui.NewList(orders, estimate, m.renderOrder,
		tui.WithEngineOptions(append(engineOpts,
			virtual.WithKeyFunc(func(o demo.Order, _ int) string { return o.Key() }))...))
	if err != nil {
		return nil, err
	}

	m.keys = keyMap{
		KeyMap: m.roster.KeyMap(),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	log.Info("lists created", zap.Int("roster", len(members)), zap.Int("orders", len(orders)))
	return m, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.active = 1 - m.active
			m.log.Debug("tab switched", zap.Int("tab", int(m.active)))
			return m, nil
		}
		return m, m.activeUpdate(msg)

	case tea.MouseMsg:
		return m, m.activeUpdate(msg)
	}

	// Frame ticks: each list ignores the other's.
	return m, tea.Batch(m.roster.Update(msg), m.orders.Update(msg))
}

func (m *model) activeUpdate(msg tea.Msg) tea.Cmd {
	if m.active == ordersTab {
		return m.orders.Update(msg)
	}
	return m.roster.Update(msg)
}

func (m *model) resize() {
	listH := m.height - 3 // tabs, status, help
	if m.notes.setWidth(m.width - 4) {
		m.log.Debug("note width changed", zap.Int("width", m.width-4))
	}
	m.roster.SetSize(m.width, listH)
	m.orders.SetSize(m.width, listH)
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	var tabs []string
	for t, name := range []string{"Roster", "Orders"} {
		style := tabStyle
		if tab(t) == m.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(name))
	}

	var body, status string
	if m.active == ordersTab {
		body, status = m.orders.View(), m.listStatus(m.orders.Engine().Len(), m.orders.Cursor(), m.orders.Status())
	} else {
		body, status = m.roster.View(), m.listStatus(m.roster.Engine().Len(), m.roster.Cursor(), m.roster.Status())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		body,
		statusStyle.Render(status),
		m.help.View(m.keys),
	)
}

func (m *model) listStatus(n, cursor int, last string) string {
	s := fmt.Sprintf("%d/%d", cursor+1, n)
	if last != "" {
		s += "  " + last
	}
	return s
}

func renderMember(mb demo.Member, _ int, width int, _ bool) string {
	row := fmt.Sprintf("%s  %-18s  %-10s %s", mb.ID, mb.Name, mb.Role, mb.Shift)
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

func (m *model) renderOrder(o demo.Order, _ int, width int, _ bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-8s %-6s %s  %s\n",
		o.Status, o.Table, o.Server, o.PlacedAt.Format("15:04"), m.money.Format(o.TotalCents()))
	for _, l := range o.Lines {
		fmt.Fprintf(&b, "  %dx %s\n", l.Qty, l.Item)
	}
	if note := m.notes.render(o.Key(), o.Note); note != "" {
		b.WriteString(note)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.TrimRight(b.String(), "\n"))
}

// noteRenderer renders order notes as markdown, caching the output per order
// until the wrap width changes.
type noteRenderer struct {
	width int
	r     *glamour.TermRenderer
	cache map[string]string
}

func newNoteRenderer() *noteRenderer {
	return &noteRenderer{cache: make(map[string]string)}
}

// setWidth reports whether the width changed.
func (n *noteRenderer) setWidth(width int) bool {
	width = max(width, 20)
	if width == n.width {
		return false
	}
	n.width = width
	n.r = nil
	clear(n.cache)
	return true
}

func (n *noteRenderer) render(key, note string) string {
	if note == "" {
		return ""
	}
	if out, ok := n.cache[key]; ok {
		return out
	}
	if n.r == nil {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(max(n.width, 20)))
		if err != nil {
			return note
		}
		n.r = r
	}
	out, err := n.r.Render(note)
	if err != nil {
		out = note
	}
	out = strings.Trim(out, "\n")
	n.cache[key] = out
	return out
}
