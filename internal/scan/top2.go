package scan

import "joltage/internal/domain"

// State is the position of a Top2 tracker within its line.
type State uint8

const (
	NoMax  State = iota // nothing observed
	OneMax              // first set, second absent
	TwoSet              // first >= second, both set
)

func (s State) String() string {
	switch s {
	case NoMax:
		return "NoMax"
	case OneMax:
		return "OneMax"
	case TwoSet:
		return "TwoSet"
	default:
		return "State(?)"
	}
}

// Top2 tracks the two largest character codes of a line. The zero value is an
// empty tracker.
type Top2 struct {
	state  State
	first  int
	second int
}

// State reports where the tracker is in the NoMax -> OneMax -> TwoSet sequence.
func (t *Top2) State() State { return t.state }

// Observe folds ch into the line.
//
// A new strict maximum demotes the old first to second. Otherwise ch replaces
// second only when strictly larger, so ties with first or second leave the
// pair unchanged once both are set.
func (t *Top2) Observe(ch byte) {
	c := int(ch)
	switch t.state {
	case NoMax:
		t.first = c
		t.state = OneMax
	case OneMax:
		if c > t.first {
			t.first, t.second = c, t.first
		} else {
			t.second = c
		}
		t.state = TwoSet
	case TwoSet:
		if c > t.first {
			t.first, t.second = c, t.first
		} else if c > t.second {
			t.second = c
		}
	}
}

// Pair returns (first, second); absent values are domain.Sentinel.
func (t *Top2) Pair() (first, second int) {
	switch t.state {
	case NoMax:
		return domain.Sentinel, domain.Sentinel
	case OneMax:
		return t.first, domain.Sentinel
	default:
		return t.first, t.second
	}
}

// Empty reports whether the tracker is in NoMax.
func (t *Top2) Empty() bool { return t.state == NoMax }

// Reset returns the tracker to NoMax.
func (t *Top2) Reset() { *t = Top2{} }

var _ domain.Tracker = (*Top2)(nil)
