package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	jsoniter "github.com/json-iterator/go"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"homogebra/internal/common/fsutil"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "HOMOGEBRA_"

// Defaults applied when corresponding Config fields are unset.
const (
	DefaultAddr         = ":8080"
	DefaultLogLevel     = "info"
	DefaultEpsilon      = 1e-9
	DefaultJournalSize  = 1024
	DefaultMaxBodyBytes = 1 << 20
	DefaultNearbyRadius = 0.5
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr                string   `json:"addr" yaml:"addr" toml:"addr" env:"ADDR"`
	LogLevel            string   `json:"log_level" yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	Epsilon             float64  `json:"epsilon" yaml:"epsilon" toml:"epsilon" env:"EPSILON"`
	JournalSize         int      `json:"journal_size" yaml:"journal_size" toml:"journal_size" env:"JOURNAL_SIZE"`
	MaxBodyBytes        int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" env:"MAX_BODY_BYTES"`
	PointPrefix         string   `json:"point_prefix" yaml:"point_prefix" toml:"point_prefix" env:"POINT_PREFIX"`
	LinePrefix          string   `json:"line_prefix" yaml:"line_prefix" toml:"line_prefix" env:"LINE_PREFIX"`
	ConicPrefix         string   `json:"conic_prefix" yaml:"conic_prefix" toml:"conic_prefix" env:"CONIC_PREFIX"`
	CORSEnabled         bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled" env:"CORS_ENABLED"`
	CORSAllowedOrigins  []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	NearbyDefaultRadius float64  `json:"nearby_default_radius" yaml:"nearby_default_radius" toml:"nearby_default_radius" env:"NEARBY_DEFAULT_RADIUS"`
}

// Load reads a configuration file based on its extension. A leading '~' in
// path is expanded to the user's home directory.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyEnv overlays HOMOGEBRA_* environment variables onto cfg. Variables
// that are not set leave the field untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// ApplyDefaults fills every unset field. Name prefixes are left empty so the
// scene picks its own.
func ApplyDefaults(cfg *Config) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Epsilon == 0 {
		cfg.Epsilon = DefaultEpsilon
	}
	if cfg.JournalSize == 0 {
		cfg.JournalSize = DefaultJournalSize
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.NearbyDefaultRadius == 0 {
		cfg.NearbyDefaultRadius = DefaultNearbyRadius
	}
}

// Validate reports the first field holding an unusable value.
func (c Config) Validate() error {
	switch {
	case c.Epsilon < 0 || c.Epsilon >= 1:
		return fmt.Errorf("epsilon must be in [0, 1), got %g", c.Epsilon)
	case c.JournalSize < 0:
		return fmt.Errorf("journal_size must not be negative, got %d", c.JournalSize)
	case c.MaxBodyBytes < 0:
		return fmt.Errorf("max_body_bytes must not be negative, got %d", c.MaxBodyBytes)
	case c.NearbyDefaultRadius < 0:
		return fmt.Errorf("nearby_default_radius must not be negative, got %g", c.NearbyDefaultRadius)
	}
	for _, p := range []string{c.PointPrefix, c.LinePrefix, c.ConicPrefix} {
		if strings.ContainsAny(p, " \t\r\n") {
			return fmt.Errorf("name prefix %q contains whitespace", p)
		}
	}
	if c.CORSEnabled && len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("cors_enabled requires cors_allowed_origins")
	}
	return nil
}

// Resolve loads path (if any), overlays the environment, applies defaults
// and validates the result.
func Resolve(path string) (Config, error) {
	var cfg Config
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
