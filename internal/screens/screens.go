// Package screens draws the back-office order and roster screens. Both the
// GL example and the screenshot generator draw through it.
package screens

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/tillpoint/gui"
	"github.com/tillpoint/gui/internal/demo"
	"github.com/tillpoint/gui/virtual"
)

// List IDs, usable with gui.ScrollVirtualListTo and gui.VirtualListEngine.
const (
	OrdersList = "orders"
	RosterList = "roster"
)

const (
	rosterRowHeight = 24
	toolbarHeight   = 32
)

// Screens holds the data and view state of the back-office screens.
type Screens struct {
	Orders []demo.Order
	Roster []demo.Member

	cfg   demo.Config
	money *demo.MoneyFormatter
	log   *zap.Logger

	dark     bool
	selected int // order
	member   int
	scrolled float32
}

// New generates the demo data described by cfg.
func New(cfg demo.Config, log *zap.Logger) (*Screens, error) {
	if log == nil {
		log = zap.NewNop()
	}
	orders, err := demo.Orders(cfg.Orders.Count, cfg.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "screens")
	}
	roster, err := demo.Roster(cfg.Roster.Count, cfg.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "screens")
	}
	money, err := demo.NewMoneyFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return nil, errors.Wrap(err, "screens")
	}
	log.Info("demo data generated",
		zap.Int("orders", len(orders)),
		zap.Int("roster", len(roster)),
		zap.Uint64("seed", cfg.Seed))

	return &Screens{
		Orders:   orders,
		Roster:   roster,
		cfg:      cfg,
		money:    money,
		log:      log,
		dark:     cfg.Theme == "dark",
		selected: -1,
		member:   -1,
	}, nil
}

// Style returns the style for the configured theme.
func (s *Screens) Style() gui.Style {
	if s.dark {
		return gui.DarkStyle()
	}
	return gui.BackOfficeStyle()
}

// Dark reports whether the dark theme is selected.
func (s *Screens) Dark() bool { return s.dark }

// ScrollOffset returns the last scroll offset reported by the orders list.
func (s *Screens) ScrollOffset() float32 { return s.scrolled }

// Draw draws the toolbar and both lists filling size, in the style of the
// selected theme.
func (s *Screens) Draw(ctx *gui.Context, size gui.Vec2) {
	ctx.SetStyle(s.Style())
	st := ctx.Style()
	pad := gui.SpaceLG

	ctx.SetCursorPos(pad, pad)
	s.drawToolbar(ctx)

	listH := size.Y - toolbarHeight - pad*3 - ctx.LineHeight() - st.PanelPadding*4
	ordersW := (size.X-pad*3)*0.62 - st.PanelPadding*2
	rosterW := size.X - pad*3 - ordersW - st.PanelPadding*4

	ctx.SetCursorPos(pad, pad+toolbarHeight)
	ctx.HStack(gui.Gap(pad))(func() {
		ctx.Panel("Open orders", gui.WithHotkey("O"))(func() {
			s.drawOrders(ctx, ordersW, listH)
		})
		ctx.Panel("Staff roster", gui.WithHotkey("R"))(func() {
			s.drawRoster(ctx, rosterW, listH)
		})
	})
}

func (s *Screens) drawToolbar(ctx *gui.Context) {
	ctx.HStack(gui.Gap(gui.SpaceMD))(func() {
		ctx.Text(fmt.Sprintf("%d orders, %d staff", len(s.Orders), len(s.Roster)))
		if ctx.Button("Newest") {
			s.jump(ctx, 0, virtual.AlignStart)
		}
		if ctx.Button("Oldest") {
			s.jump(ctx, len(s.Orders)-1, virtual.AlignEnd)
		}
		if ctx.Button("Largest") {
			s.jump(ctx, s.largestOrder(), virtual.AlignCenter)
		}
		if ctx.Checkbox("Dark", &s.dark) {
			s.log.Debug("theme switched", zap.Bool("dark", s.dark))
		}
	})
}

// jump scrolls the orders list to index and selects it.
func (s *Screens) jump(ctx *gui.Context, index int, align virtual.Align) {
	if index < 0 {
		return
	}
	s.selected = index
	if !gui.ScrollVirtualListTo(ctx, OrdersList, index, align) {
		s.log.Warn("orders list not mounted", zap.Int("index", index))
		return
	}
	s.log.Debug("jump", zap.Int("index", index), zap.Stringer("order", s.Orders[index].ID))
}

func (s *Screens) largestOrder() int {
	best := -1
	var total int64
	for i, o := range s.Orders {
		if t := o.TotalCents(); best < 0 || t > total {
			best, total = i, t
		}
	}
	return best
}

func (s *Screens) listOptions(width float32) []gui.Option {
	opts := []gui.Option{
		gui.WithWidth(width),
		gui.Overscan(s.cfg.List.Overscan),
	}
	if s.cfg.List.Indexed {
		opts = append(opts, gui.OffsetIndex())
	}
	if s.cfg.List.Margin > 0 {
		opts = append(opts, gui.MeasureMargin(s.cfg.List.Margin))
	}
	return opts
}

func (s *Screens) drawOrders(ctx *gui.Context, width, height float32) {
	st := ctx.Style()
	charW := st.CharWidth * st.FontScale
	lineH := ctx.LineHeight() + st.ItemSpacing
	chars := int(width / charW)

	sizing := virtual.DynamicHeight(func(i int) float32 {
		return float32(s.Orders[i].TextLines(chars)) * lineH
	})
	opts := append(s.listOptions(width),
		gui.ItemKey(func(o demo.Order, _ int) string { return o.Key() }),
		gui.RowGap(gui.SpaceMD),
		gui.OnScroll(func(offset float32) { s.scrolled = offset }),
	)
	gui.VirtualList(ctx, OrdersList, s.Orders, sizing, height, s.drawOrder, opts...)
}

func (s *Screens) drawOrder(ctx *gui.Context, index int, o demo.Order) {
	st := ctx.Style()
	ctx.HStack(gui.Gap(gui.SpaceMD))(func() {
		ctx.Badge(o.Status.String(), statusColor(st, o.Status))
		if index == s.selected {
			ctx.TextColored(o.Table, st.TextHighlightColor)
		} else {
			ctx.Text(o.Table)
		}
		ctx.TextDisabled(o.Server + " " + o.PlacedAt.Format("15:04"))
		ctx.Text(s.money.Format(o.TotalCents()))
	})
	for _, l := range o.Lines {
		ctx.TextDisabled(fmt.Sprintf("  %dx %s", l.Qty, l.Item))
	}
	paras := noteParagraphs(o.Note)
	if len(paras) > 0 {
		ctx.Separator()
	}
	for _, para := range paras {
		ctx.TextWrapped(para, 0)
	}
}

func (s *Screens) drawRoster(ctx *gui.Context, width, height float32) {
	opts := append(s.listOptions(width),
		gui.ItemKey(func(m demo.Member, _ int) string { return m.ID }),
		gui.ShowScrollbar(true))
	gui.VirtualList(ctx, RosterList, s.Roster, virtual.FixedHeight(rosterRowHeight), height,
		func(ctx *gui.Context, index int, m demo.Member) {
			label := fmt.Sprintf("%s  %-18s %s, %s", m.ID, m.Name, m.Role, m.Shift)
			if ctx.Selectable(label, index == s.member) {
				s.member = index
				s.log.Debug("member selected", zap.String("id", m.ID))
			}
		}, opts...)
}

func statusColor(st gui.Style, status demo.OrderStatus) uint32 {
	switch status {
	case demo.StatusOpen:
		return st.AccentColor
	case demo.StatusCooking:
		return st.WarningColor
	case demo.StatusReady:
		return st.SuccessColor
	default:
		return st.TextDisabledColor
	}
}

var markdownMarks = strings.NewReplacer("**", "", "*", "", "`", "")

// noteParagraphs turns a markdown note into plain paragraphs for the atlas
// font.
func noteParagraphs(note string) []string {
	if note == "" {
		return nil
	}
	var out []string
	for _, para := range strings.Split(markdownMarks.Replace(note), "\n") {
		if para = strings.TrimSpace(para); para != "" {
			out = append(out, para)
		}
	}
	return out
}
