package arbor

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configuration can use Go duration
// strings such as "10ms" or "1s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("arbor: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config carries window and engine settings. Zero-valued fields fall back to
// the defaults in [DefaultConfig] when the config is applied.
type Config struct {
	Title         string   `yaml:"title"`
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	ClearColor    Color    `yaml:"clear_color"`
	FixedInterval Duration `yaml:"fixed_interval"`
}

// DefaultConfig returns the built-in settings: a 1280x720 window titled
// "Arbor", cleared to black, with the default fixed update interval.
func DefaultConfig() Config {
	return Config{
		Title:         DefaultTitle,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		ClearColor:    ColorBlack,
		FixedInterval: Duration(DefaultFixedInterval),
	}
}

// ParseConfig decodes YAML configuration data over the defaults, so omitted
// fields keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("arbor: parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file. On any error the
// defaults are returned alongside it, so callers may treat a missing file as
// a soft failure.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("arbor: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, err
	}
	slog.Debug("arbor: loaded config", "path", path, "title", cfg.Title,
		"width", cfg.Width, "height", cfg.Height)
	return cfg, nil
}
