package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/vango-dev/ripple/internal/errors"
)

const (
	// ConfigFileName is the default name of the configuration file.
	ConfigFileName = "ripple.toml"

	// DefaultBudget is the scheduler time slice before yielding to the host.
	DefaultBudget = 40 * time.Millisecond

	// DefaultFrameInterval is the frame clock period.
	DefaultFrameInterval = 16 * time.Millisecond

	// DefaultDebugAddr is the bind address of the debug server.
	DefaultDebugAddr = "127.0.0.1:7070"
)

// Duration is a time.Duration that reads and writes Go duration strings.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the complete ripple.toml configuration.
type Config struct {
	Scheduler  SchedulerConfig  `toml:"scheduler"`
	Frames     FramesConfig     `toml:"frames"`
	Animations AnimationsConfig `toml:"animations"`
	Log        LogConfig        `toml:"log"`
	Warnings   WarningsConfig   `toml:"warnings"`
	Debug      DebugConfig      `toml:"debug"`
	Bench      BenchConfig      `toml:"bench"`

	// path stores where the config was loaded from.
	path string
}

// SchedulerConfig controls the cooperative task queue.
type SchedulerConfig struct {
	// Budget is how long one tick may run before yielding.
	Budget Duration `toml:"budget"`
}

// FramesConfig controls the frame clock of the loop host.
type FramesConfig struct {
	Interval Duration `toml:"interval"`
}

// AnimationsConfig toggles animated reconciliation.
type AnimationsConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// Format is text or json.
	Format string `toml:"format"`
}

// WarningsConfig throttles the warning channel per code.
type WarningsConfig struct {
	Rate  float64 `toml:"rate"`
	Burst int     `toml:"burst"`
}

// DebugConfig configures the debug HTTP server.
type DebugConfig struct {
	Addr string `toml:"addr"`
}

// BenchConfig sizes the propagation benchmark.
type BenchConfig struct {
	Vars       int `toml:"vars"`
	Iterations int `toml:"iterations"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Scheduler:  SchedulerConfig{Budget: Duration(DefaultBudget)},
		Frames:     FramesConfig{Interval: Duration(DefaultFrameInterval)},
		Animations: AnimationsConfig{Enabled: true},
		Log:        LogConfig{Level: "info", Format: "text"},
		Warnings:   WarningsConfig{Rate: 1, Burst: 5},
		Debug:      DebugConfig{Addr: DefaultDebugAddr},
		Bench:      BenchConfig{Vars: 64, Iterations: 2000},
	}
}

// Load reads configuration from path. A missing file is not an error
// and yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = ConfigFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.New("E301").Wrap(fmt.Errorf("read config: %w", err))
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E301").
			Wrap(fmt.Errorf("parse config: %w", err)).
			WithSuggestion("Check that " + path + " is valid TOML and durations look like \"40ms\"")
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.New("E301").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E301").Wrap(err)
	}
	c.path = path
	return nil
}

// Path returns the path the config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Scheduler.Budget <= 0 {
		return errors.New("E301").WithDetail("scheduler.budget must be positive")
	}
	if c.Frames.Interval <= 0 {
		return errors.New("E301").WithDetail("frames.interval must be positive")
	}
	if c.Warnings.Rate < 0 || c.Warnings.Burst < 0 {
		return errors.New("E301").WithDetail("warnings.rate and warnings.burst must not be negative")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return errors.New("E301").Wrap(err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E301").WithDetail(fmt.Sprintf("log.format %q is not text or json", c.Log.Format))
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// NewLogger builds a slog.Logger writing to w according to the config.
func (l LogConfig) NewLogger(w *os.File) *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
