package flow

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config holds combinator settings that can be supplied through the
// environment.
//
//	SIDEFLOW_BUFFER=64
type Config struct {
	Buffer int `env:"SIDEFLOW_BUFFER" envDefault:"0"`
}

// LoadConfig parses Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Buffer < 0 {
		return ErrInvalidBuffer
	}
	return nil
}

// Options converts the configuration into combinator options.
func (c Config) Options() []Option {
	return []Option{WithBuffer(c.Buffer)}
}
