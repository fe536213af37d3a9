package app

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"joltage/internal/domain"
	"joltage/internal/scan"
)

// Config holds runtime options for a scan.
type Config struct {
	Terminator byte      // line terminator, '\n' by default
	Mode       scan.Mode // pair selection, scan.ModeTop2 by default
	Verbose    bool      // debug logging
}

// DefaultConfig scans newline-terminated lines in top-2 mode.
func DefaultConfig() Config {
	return Config{Terminator: scan.DefaultTerminator, Mode: scan.ModeTop2}
}

// yamlConfig mirrors Config in a config file. Nil fields keep the base value.
type yamlConfig struct {
	Terminator *string `yaml:"terminator"`
	Mode       *string `yaml:"mode"`
	Verbose    *bool   `yaml:"verbose"`
}

// LoadConfig reads the YAML file at path over base.
func LoadConfig(path string, base Config) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, errors.WithStack(&domain.ConfigError{Field: "config", Value: path, Err: err})
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return base, errors.WithStack(&domain.ConfigError{Field: "config", Value: path, Err: err})
	}

	cfg := base
	if dto.Terminator != nil {
		if cfg.Terminator, err = ParseTerminator(*dto.Terminator); err != nil {
			return base, errors.Wrap(err, path)
		}
	}
	if dto.Mode != nil {
		if cfg.Mode, err = scan.ParseMode(*dto.Mode); err != nil {
			return base, errors.Wrap(err, path)
		}
	}
	if dto.Verbose != nil {
		cfg.Verbose = *dto.Verbose
	}
	return cfg, nil
}

// ParseTerminator accepts one literal byte or a Go escape such as `\n`,
// `\t` or `\x00` that decodes to exactly one byte.
func ParseTerminator(s string) (byte, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	u, err := strconv.Unquote(`"` + s + `"`)
	if err == nil && len(u) != 1 {
		err = errors.Errorf("decodes to %d bytes", len(u))
	}
	if err != nil {
		return 0, &domain.ConfigError{Field: "terminator", Value: s, Err: err}
	}
	return u[0], nil
}
