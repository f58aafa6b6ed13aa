package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/rastergroup/gridgraph"
	"github.com/katalvlaran/rastergroup/regions"
)

// Config is the file form of a grouping run.
type Config struct {
	Connectivity int       `toml:"connectivity"`
	Epsilon      float64   `toml:"epsilon"`
	Strategy     string    `toml:"strategy"`
	Clusters     []float64 `toml:"clusters"`
	LogLevel     string    `toml:"log_level"`
}

// Default returns 4-connectivity, regions.DefaultEpsilon, the merge strategy,
// all clusters and info logging.
func Default() Config {
	return Config{
		Connectivity: 4,
		Epsilon:      regions.DefaultEpsilon,
		Strategy:     regions.StrategyMerge.String(),
		LogLevel:     "info",
	}
}

// Load reads and parses the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := gridgraph.ParseConnectivity(c.Connectivity); err != nil {
		return fmt.Errorf("%w: connectivity: %v", ErrInvalidConfig, err)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon %v", ErrInvalidConfig, c.Epsilon)
	}
	if _, err := regions.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy: %v", ErrInvalidConfig, err)
	}
	for i, v := range c.Clusters {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: clusters[%d] is %v", ErrInvalidConfig, i, v)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// Options converts the configuration into regions options. logger may be nil.
func (c Config) Options(logger *log.Logger) ([]regions.Option, error) {
	conn, err := gridgraph.ParseConnectivity(c.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("%w: connectivity: %v", ErrInvalidConfig, err)
	}
	strategy, err := regions.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: strategy: %v", ErrInvalidConfig, err)
	}
	return []regions.Option{
		regions.WithConnectivity(conn),
		regions.WithEpsilon(c.Epsilon),
		regions.WithStrategy(strategy),
		regions.WithLogger(logger),
	}, nil
}
