package demo

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"
)

// EnvPrefix prefixes the environment variables read by Load:
// TILLPOINT_ORDERS_COUNT sets orders.count.
const EnvPrefix = "TILLPOINT_"

// Config configures the example programs.
type Config struct {
	Window struct {
		Width  int `koanf:"width"`
		Height int `koanf:"height"`
	} `koanf:"window"`
	Orders struct {
		Count int `koanf:"count"`
	} `koanf:"orders"`
	Roster struct {
		Count int `koanf:"count"`
	} `koanf:"roster"`
	List struct {
		Overscan int     `koanf:"overscan"`
		Indexed  bool    `koanf:"indexed"`
		Margin   float32 `koanf:"margin"`
	} `koanf:"list"`
	Seed     uint64 `koanf:"seed"`
	Theme    string `koanf:"theme"`
	Locale   string `koanf:"locale"`
	Currency string `koanf:"currency"`
	Debug    bool   `koanf:"debug"`
}

// ErrUnknownTheme is returned for a theme other than "backoffice" or "dark".
var ErrUnknownTheme = errors.New("demo: unknown theme")

var defaults = map[string]any{
	"window.width":  1280,
	"window.height": 800,
	"orders.count":  5000,
	"roster.count":  100000,
	"list.overscan": 3,
	"list.indexed":  false,
	"list.margin":   200,
	"seed":          42,
	"theme":         "backoffice",
	"locale":        "en-GB",
	"currency":      "GBP",
	"debug":         false,
}

// RegisterFlags adds the configuration flags to fs. Flag names are the
// configuration keys.
func RegisterFlags(fs *flag.FlagSet) {
	fs.String("config", "", "YAML configuration file")
	fs.Int("window.width", 1280, "window width in pixels")
	fs.Int("window.height", 800, "window height in pixels")
	fs.Int("orders.count", 5000, "number of demo orders")
	fs.Int("roster.count", 100000, "number of roster entries")
	fs.Int("list.overscan", 3, "rows mounted beyond each viewport edge")
	fs.Bool("list.indexed", false, "use the offset index for range queries")
	fs.Float32("list.margin", 200, "measurement proximity margin in pixels")
	fs.Uint64("seed", 42, "demo data seed")
	fs.String("theme", "backoffice", "theme: backoffice or dark")
	fs.String("locale", "en-GB", "locale for amounts")
	fs.String("currency", "GBP", "ISO currency code for amounts")
	fs.BoolP("debug", "d", false, "enable debug logging")
}

// Load builds the configuration from, in increasing priority: defaults, the
// YAML file named by --config, TILLPOINT_* environment variables and flags
// set on the command line. fs must have been set up with RegisterFlags and
// parsed.
func Load(fs *flag.FlagSet) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, errors.Wrap(err, "load defaults")
	}

	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "load config file %s", path)
		}
	}

	// Only keys that already exist are taken from the environment.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		if !k.Exists(key) {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return Config{}, errors.Wrap(err, "load environment")
	}

	// Flags left at their default do not override earlier sources.
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return Config{}, errors.Wrap(err, "load flags")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	return cfg, cfg.Validate()
}

// LoadConfig parses args with the configuration flags and loads the
// configuration.
func LoadConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}
	return Load(fs)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Orders.Count < 0:
		return errors.Wrapf(ErrNegativeCount, "orders.count: %d", c.Orders.Count)
	case c.Roster.Count < 0:
		return errors.Wrapf(ErrNegativeCount, "roster.count: %d", c.Roster.Count)
	case c.List.Overscan < 0:
		return errors.Newf("list.overscan must not be negative, got %d", c.List.Overscan)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Newf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Theme != "backoffice" && c.Theme != "dark" {
		return errors.Wrapf(ErrUnknownTheme, "%q", c.Theme)
	}
	return nil
}
