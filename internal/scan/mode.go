package scan

import (
	"strings"

	"joltage/internal/domain"
)

// Mode selects how a line's pair is chosen.
type Mode string

const (
	// ModeTop2 takes the two largest codes regardless of position.
	ModeTop2 Mode = "top2"
	// ModeOrdered takes the largest pair read left to right, keeping the
	// short-line and terminator quirks described on Ordered.
	ModeOrdered Mode = "ordered"
)

// Modes lists the accepted modes in display order.
var Modes = []Mode{ModeTop2, ModeOrdered}

// ParseMode resolves a mode name; the empty string means ModeTop2.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeTop2:
		return ModeTop2, nil
	case ModeOrdered:
		return ModeOrdered, nil
	}
	return "", &domain.ConfigError{Field: "mode", Value: s}
}

// NewTracker returns an empty tracker for m.
func (m Mode) NewTracker() (domain.Tracker, error) {
	switch m {
	case "", ModeTop2:
		return &Top2{}, nil
	case ModeOrdered:
		return &Ordered{}, nil
	}
	return nil, &domain.ConfigError{Field: "mode", Value: string(m)}
}
