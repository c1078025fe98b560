package demo

import (
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Member is one person on the staff roster.
type Member struct {
	ID    string
	Name  string
	Role  string
	Shift string
}

var (
	firstNames = []string{"Ana", "Bilal", "Chen", "Dara", "Eve", "Femi", "Gus", "Hana", "Ivo", "Jun", "Kemi", "Luca"}
	lastNames  = []string{"Okafor", "Silva", "Novak", "Haddad", "Kim", "Moreau", "Byrne", "Sato", "Ahmed", "Rossi"}
	roles      = []string{"server", "bartender", "line cook", "pastry", "host", "runner", "sous chef"}
	shifts     = []string{"breakfast", "lunch", "dinner", "close"}
)

// Roster returns n members generated deterministically from seed. IDs are
// "S" followed by a zero-padded sequence number.
func Roster(n int, seed uint64) ([]Member, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "roster: %d", n)
	}
	r := rand.New(rand.NewPCG(seed, ^seed))
	out := make([]Member, n)
	for i := range out {
		out[i] = Member{
			ID:    "S" + padLeft(strconv.Itoa(i+1), 5),
			Name:  firstNames[r.IntN(len(firstNames))] + " " + lastNames[r.IntN(len(lastNames))],
			Role:  roles[r.IntN(len(roles))],
			Shift: shifts[r.IntN(len(shifts))],
		}
	}
	return out, nil
}

func padLeft(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}
