package demo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/gui/internal/demo"
)

func TestOrdersDeterministic(t *testing.T) {
	a, err := demo.Orders(200, 7)
	require.NoError(t, err)
	b, err := demo.Orders(200, 7)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := demo.Orders(200, 8)
	require.NoError(t, err)
	require.NotEqual(t, a[0].ID, c[0].ID)

	keys := make(map[string]bool, len(a))
	for _, o := range a {
		require.NotEmpty(t, o.Lines)
		require.Positive(t, o.TotalCents())
		keys[o.Key()] = true
	}
	require.Len(t, keys, len(a), "order keys must be unique")
}

func TestOrdersNegativeCount(t *testing.T) {
	_, err := demo.Orders(-1, 1)
	require.ErrorIs(t, err, demo.ErrNegativeCount)
	_, err = demo.Roster(-1, 1)
	require.ErrorIs(t, err, demo.ErrNegativeCount)
}

func TestOrderTextLines(t *testing.T) {
	o := demo.Order{Lines: make([]demo.OrderLine, 2)}
	assert.Equal(t, 3, o.TextLines(40))

	o.Note = strings.Repeat("x", 90) + "\nsecond"
	assert.Equal(t, 3+3+1, o.TextLines(40))
}

func TestRoster(t *testing.T) {
	members, err := demo.Roster(12, 3)
	require.NoError(t, err)
	require.Len(t, members, 12)
	assert.Equal(t, "S00001", members[0].ID)
	assert.Equal(t, "S00012", members[11].ID)
	for _, m := range members {
		assert.Contains(t, m.Name, " ")
	}
}

func TestMoneyFormatter(t *testing.T) {
	f, err := demo.NewMoneyFormatter("en-GB", "GBP")
	require.NoError(t, err)
	assert.Contains(t, f.Format(123450), "1,234.50")
	assert.True(t, strings.HasPrefix(f.Format(-250), "-"))

	_, err = demo.NewMoneyFormatter("en-GB", "NOPE")
	require.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := demo.LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 5000, cfg.Orders.Count)
	assert.Equal(t, 3, cfg.List.Overscan)
	assert.Equal(t, float32(200), cfg.List.Margin)
	assert.Equal(t, "backoffice", cfg.Theme)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tillpoint.yaml")
	yaml := "orders:\n  count: 10\nroster:\n  count: 20\ntheme: dark\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("TILLPOINT_ROSTER_COUNT", "30")
	t.Setenv("TILLPOINT_UNKNOWN_KEY", "ignored")

	cfg, err := demo.LoadConfig([]string{"--config", path, "--list.overscan", "5"})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Orders.Count, "file overrides defaults")
	assert.Equal(t, 30, cfg.Roster.Count, "environment overrides file")
	assert.Equal(t, 5, cfg.List.Overscan, "flags override everything")
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoadConfigValidation(t *testing.T) {
	_, err := demo.LoadConfig([]string{"--theme", "neon"})
	require.ErrorIs(t, err, demo.ErrUnknownTheme)

	_, err = demo.LoadConfig([]string{"--list.overscan", "-1"})
	require.Error(t, err)

	_, err = demo.LoadConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
