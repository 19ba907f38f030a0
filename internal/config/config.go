package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortsim/internal/layout"
	"github.com/san-kum/sortsim/internal/sorting"
)

const (
	DefaultAlgorithm    = "bubble"
	DefaultQuantity     = 50
	DefaultTickMs       = 100
	DefaultFinalDelayMs = 5000
	DefaultChromeWidth  = 2
	DefaultTheme        = "classic"

	MinQuantity = 2
	MaxQuantity = 150

	MinTick = time.Millisecond
	MaxTick = 10 * time.Second
)

const envPrefix = "SORTSIM_"

type Config struct {
	Algorithm    string        `yaml:"algorithm"`
	Quantity     int           `yaml:"quantity"`
	TickMs       int           `yaml:"tick_ms"`
	FinalDelayMs int           `yaml:"final_delay_ms"`
	Seed         int64         `yaml:"seed"`
	Theme        string        `yaml:"theme"`
	Bars         layout.Limits `yaml:"bars"`
	ChromeWidth  int           `yaml:"chrome_width"`
}

// QuantityError rejects a quantity outside [Min, Max].
type QuantityError struct {
	Quantity int
	Min      int
	Max      int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity %d is not in range [%d - %d]", e.Quantity, e.Min, e.Max)
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:    DefaultAlgorithm,
		Quantity:     DefaultQuantity,
		TickMs:       DefaultTickMs,
		FinalDelayMs: DefaultFinalDelayMs,
		Theme:        DefaultTheme,
		Bars:         layout.DefaultLimits(),
		ChromeWidth:  DefaultChromeWidth,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the fields present in the yaml file at path onto c.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from SORTSIM_* variables. lookup is os.LookupEnv
// outside of tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(envPrefix + "ALGORITHM"); ok && v != "" {
		c.Algorithm = v
	}
	if v, ok := lookup(envPrefix + "THEME"); ok && v != "" {
		c.Theme = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"QUANTITY", &c.Quantity},
		{"TICK_MS", &c.TickMs},
		{"FINAL_DELAY_MS", &c.FinalDelayMs},
	}
	for _, e := range ints {
		v, ok := lookup(envPrefix + e.name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, e.name, err)
		}
		*e.dst = n
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.Quantity < MinQuantity || c.Quantity > MaxQuantity {
		return &QuantityError{Quantity: c.Quantity, Min: MinQuantity, Max: MaxQuantity}
	}
	if tick := c.Tick(); tick < MinTick || tick > MaxTick {
		return fmt.Errorf("tick rate %dms is not in range [%d - %d]", c.TickMs, MinTick.Milliseconds(), MaxTick.Milliseconds())
	}
	if c.FinalDelayMs < 0 {
		return fmt.Errorf("final delay must be non-negative, got %dms", c.FinalDelayMs)
	}
	if c.ChromeWidth < 0 {
		return fmt.Errorf("chrome width must be non-negative, got %d", c.ChromeWidth)
	}
	return c.Bars.Validate()
}

func (c *Config) Tick() time.Duration { return time.Duration(c.TickMs) * time.Millisecond }

func (c *Config) FinalDelay() time.Duration {
	return time.Duration(c.FinalDelayMs) * time.Millisecond
}

// AlgorithmID resolves the configured algorithm name.
func (c *Config) AlgorithmID() (sorting.Algorithm, error) {
	return sorting.ParseAlgorithm(c.Algorithm)
}

func (c *Config) EngineConfig() sorting.Config {
	return sorting.Config{
		Tick:       c.Tick(),
		FinalDelay: c.FinalDelay(),
		Seed:       c.Seed,
	}
}
