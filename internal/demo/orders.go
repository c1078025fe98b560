// Package demo generates back-office data for the example programs: open
// orders with free-text notes (rows of very different heights) and a staff
// roster (rows of one height).
package demo

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// OrderStatus is the kitchen state of an order.
type OrderStatus uint8

const (
	StatusOpen OrderStatus = iota
	StatusCooking
	StatusReady
	StatusPaid
)

func (s OrderStatus) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusCooking:
		return "cooking"
	case StatusReady:
		return "ready"
	case StatusPaid:
		return "paid"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

// OrderLine is one item on an order.
type OrderLine struct {
	Item       string
	Qty        int
	PriceCents int64
}

// Order is an open ticket.
type Order struct {
	ID       uuid.UUID
	Table    string
	Server   string
	Status   OrderStatus
	Lines    []OrderLine
	Note     string // markdown, may be empty
	PlacedAt time.Time
}

// TotalCents returns the order total.
func (o Order) TotalCents() int64 {
	var total int64
	for _, l := range o.Lines {
		total += int64(l.Qty) * l.PriceCents
	}
	return total
}

// Key returns the order's stable list key.
func (o Order) Key() string {
	return o.ID.String()
}

// TextLines estimates how many text lines the order occupies when its note
// is wrapped at width characters: a header, one line per order line and the
// wrapped note.
func (o Order) TextLines(width int) int {
	n := 1 + len(o.Lines)
	if o.Note == "" || width <= 0 {
		return n
	}
	for _, para := range strings.Split(o.Note, "\n") {
		n += max(1, (len(para)+width-1)/width)
	}
	return n
}

var (
	menu = []OrderLine{
		{Item: "Flat white", PriceCents: 340},
		{Item: "Sourdough toast", PriceCents: 550},
		{Item: "Eggs benedict", PriceCents: 1250},
		{Item: "Mushroom risotto", PriceCents: 1590},
		{Item: "Fish and chips", PriceCents: 1690},
		{Item: "Caesar salad", PriceCents: 1100},
		{Item: "Sparkling water", PriceCents: 300},
		{Item: "House red (175ml)", PriceCents: 795},
		{Item: "Sticky toffee pudding", PriceCents: 725},
	}
	notes = []string{
		"",
		"",
		"No onions.",
		"**Allergy:** tree nuts. Kitchen to use separate board.",
		"Birthday table - bring the pudding out with a candle and *do not* add it to the bill.",
		"Guest asked for the risotto without parmesan, extra mushrooms on the side. Check with the pass before firing the mains, the last two tickets from this table were sent back.",
		"Split bill:\n- seat 1 pays drinks\n- seats 2 and 3 split food",
	}
	servers = []string{"Ana", "Bilal", "Chen", "Dara", "Eve", "Femi"}
)

// ErrNegativeCount is returned by the generators for a negative count.
var ErrNegativeCount = errors.New("demo: count must not be negative")

// Orders returns n orders generated deterministically from seed.
func Orders(n int, seed uint64) ([]Order, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "orders: %d", n)
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ids := idSource(seed)
	start := time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC)

	out := make([]Order, n)
	for i := range out {
		id, err := uuid.NewRandomFromReader(ids)
		if err != nil {
			return nil, errors.Wrap(err, "order id")
		}
		lines := make([]OrderLine, 1+r.IntN(4))
		for j := range lines {
			lines[j] = menu[r.IntN(len(menu))]
			lines[j].Qty = 1 + r.IntN(3)
		}
		out[i] = Order{
			ID:       id,
			Table:    "T" + strconv.Itoa(1+r.IntN(40)),
			Server:   servers[r.IntN(len(servers))],
			Status:   OrderStatus(r.IntN(4)),
			Lines:    lines,
			Note:     notes[r.IntN(len(notes))],
			PlacedAt: start.Add(time.Duration(i) * 47 * time.Second),
		}
	}
	return out, nil
}

// idSource returns a deterministic byte stream for UUID generation.
func idSource(seed uint64) *rand.ChaCha8 {
	var key [32]byte
	for i := range 8 {
		key[i] = byte(seed >> (8 * i))
	}
	return rand.NewChaCha8(key)
}
