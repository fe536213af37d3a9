package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInputUnavailable = errors.New("input unavailable")
	ErrInvalidConfig    = errors.New("invalid config")
)

// InputError reports a named input that could not be opened.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrInputUnavailable, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", ErrInputUnavailable, e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrInputUnavailable) match any InputError.
func (e *InputError) Is(target error) bool {
	return target == ErrInputUnavailable
}

// ConfigError reports a rejected configuration value.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s=%q", ErrInvalidConfig, e.Field, e.Value)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidConfig) match any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
