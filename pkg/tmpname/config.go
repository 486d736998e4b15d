package tmpname

import (
	"errors"

	"github.com/dmitrymomot/safetmp/pkg/config"
)

// ErrInvalidConfig is returned when a Config holds values no generator can use.
var ErrInvalidConfig = errors.New("tmpname.errors.invalid_config")

// Config is the environment/YAML representation of a Generator setup.
type Config struct {
	MaxStringSize int    `env:"TMPNAME_MAX_STRING_SIZE" envDefault:"4096" yaml:"max_string_size"`
	MaxNameLen    int    `env:"TMPNAME_MAX_NAME_LEN" envDefault:"20" yaml:"max_name_len"`
	MaxNames      uint64 `env:"TMPNAME_MAX_NAMES" envDefault:"238328" yaml:"max_names"`
	ZeroTail      bool   `env:"TMPNAME_ZERO_TAIL" envDefault:"true" yaml:"zero_tail"`
	Dir           string `env:"TMPNAME_DIR" envDefault:"/tmp" yaml:"dir"`
	Prefix        string `env:"TMPNAME_PREFIX" envDefault:"file" yaml:"prefix"`
	Attempts      int    `env:"TMPNAME_ATTEMPTS" envDefault:"238328" yaml:"attempts"`
}

// Validate rejects non-positive limits.
func (c Config) Validate() error {
	if c.MaxStringSize <= 0 || c.MaxNameLen <= 0 || c.MaxNames == 0 || c.Attempts <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Limits converts the config to generator limits.
func (c Config) Limits() Limits {
	return Limits{
		MaxStringSize: c.MaxStringSize,
		MaxNameLen:    c.MaxNameLen,
		MaxNames:      c.MaxNames,
		ZeroTail:      c.ZeroTail,
	}
}

// Source builds the filesystem candidate source described by the config.
func (c Config) Source() *FSSource {
	return &FSSource{
		Dir:      c.Dir,
		Prefix:   c.Prefix,
		Attempts: c.Attempts,
	}
}

// LoadConfig reads the Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Generator from cfg. Options are applied after the
// config, so they can still override the source or the reporter.
func NewFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option{WithLimits(cfg.Limits()), WithSource(cfg.Source())}
	return NewGenerator(append(base, opts...)...), nil
}
