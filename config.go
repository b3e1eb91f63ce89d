package repairtime

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/repairtime/strategy"
)

// Ceiling modes accepted by CeilingConfig.Mode.
const (
	// CeilingDerived bounds the search by minRank * requirement².
	CeilingDerived = "derived"

	// CeilingFixed bounds the search by CeilingConfig.Fixed.
	CeilingFixed = "fixed"

	// CeilingDoubling probes powers of two until the requirement is met.
	CeilingDoubling = "doubling"
)

// CeilingConfig selects the upper bound of the time search.
type CeilingConfig struct {
	// Mode is one of "derived", "fixed" or "doubling".
	//
	// Default: "derived"
	Mode string `yaml:"mode"`

	// Fixed is the inclusive time ceiling used when Mode is "fixed".
	// Inputs whose minimal time exceeds it are rejected with ErrCeilingTooLow.
	//
	// Default: 10^15
	Fixed int64 `yaml:"fixed"`
}

// LimitsConfig bounds accepted input sizes.
type LimitsConfig struct {
	// MaxWorkers is the largest accepted rank list (0 = unlimited).
	// Each search step is linear in the worker count.
	MaxWorkers int `yaml:"maxWorkers"`
}

// Config is the configuration for the Solver.
type Config struct {
	// Ceiling controls the search upper bound.
	Ceiling CeilingConfig `yaml:"ceiling"`

	// Limits controls input size checks.
	Limits LimitsConfig `yaml:"limits"`

	// FingerprintSeed seeds the XXH3 problem fingerprint (0 = unseeded).
	FingerprintSeed uint64 `yaml:"fingerprintSeed"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Ceiling: CeilingConfig{
			Mode:  CeilingDerived,
			Fixed: strategy.DefaultFixedCeiling,
		},
		Limits: LimitsConfig{
			MaxWorkers: 0, // unlimited
		},
	}
}

// ApplyDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func ApplyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Ceiling.Mode == "" {
		cfg.Ceiling.Mode = defaults.Ceiling.Mode
	}
	if cfg.Ceiling.Fixed == 0 {
		cfg.Ceiling.Fixed = defaults.Ceiling.Fixed
	}
	// Note: MaxWorkers and FingerprintSeed of 0 are meaningful, so we don't apply defaults
}

// Validate checks configuration constraints.
//
// Rules:
//   - Ceiling.Mode is one of derived, fixed, doubling
//   - Ceiling.Fixed > 0
//   - Limits.MaxWorkers >= 0
//
// Returns:
//   - error: Error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	switch cfg.Ceiling.Mode {
	case CeilingDerived, CeilingFixed, CeilingDoubling:
	default:
		return fmt.Errorf("%w: ceiling mode %q (must be one of: %s, %s, %s)",
			ErrInvalidConfig, cfg.Ceiling.Mode, CeilingDerived, CeilingFixed, CeilingDoubling)
	}

	if cfg.Ceiling.Fixed <= 0 {
		return fmt.Errorf("%w: fixed ceiling must be > 0, got %d", ErrInvalidConfig, cfg.Ceiling.Fixed)
	}

	if cfg.Limits.MaxWorkers < 0 {
		return fmt.Errorf("%w: maxWorkers must be >= 0, got %d", ErrInvalidConfig, cfg.Limits.MaxWorkers)
	}

	return nil
}

// ValidateWithWarnings logs configuration choices that are valid but risky.
//
// Parameters:
//   - logger: Logger used for warnings
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Ceiling.Mode == CeilingFixed && cfg.Ceiling.Fixed < strategy.DefaultFixedCeiling {
		logger.Warn("fixed time ceiling below default; large inputs will fail with ceiling_too_low",
			"fixed", cfg.Ceiling.Fixed,
			"default", strategy.DefaultFixedCeiling,
		)
	}
}

// newCeilingStrategy builds the strategy selected by the ceiling configuration.
func (cfg *Config) newCeilingStrategy(logger Logger) CeilingStrategy {
	switch cfg.Ceiling.Mode {
	case CeilingFixed:
		return strategy.NewFixed(cfg.Ceiling.Fixed)
	case CeilingDoubling:
		return strategy.NewDoubling()
	default:
		return strategy.NewDerived(strategy.WithDerivedLogger(logger))
	}
}

// ParseConfig decodes a YAML configuration, applies defaults and validates it.
//
// Unknown fields are rejected, as are non-integer values for fixed, maxWorkers
// and fingerprintSeed. Empty input yields DefaultConfig().
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Parsed configuration
//   - error: Decoding error or error wrapping ErrInvalidConfig
//
// Example:
//
//	cfg, err := repairtime.ParseConfig([]byte("ceiling:\n  mode: fixed\n  fixed: 1000000\n"))
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	err := decodeStrict(data, &cfg, "fixed", "maxWorkers", "fingerprintSeed")
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
