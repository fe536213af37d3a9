package scan

import "joltage/internal/domain"

// Ordered tracks the best pair (hi, lo) where hi occurs before lo in the line,
// preferring the larger hi and then the larger lo. It runs online by
// remembering the largest code seen so far as the only useful hi for any later
// byte.
//
// A line of one byte reports (Sentinel, byte): a maximum found on the last
// byte never becomes hi. After a terminated line the next line starts seeded
// with the terminator itself, so it can surface as hi or lo of a short line.
type Ordered struct {
	seen   int // bytes observed, seed included, saturating at 2
	seeded bool
	lead   int
	hi, lo int
}

// Observe folds ch into the line.
func (o *Ordered) Observe(ch byte) {
	c := int(ch)
	if o.seen == 0 {
		o.lead = c
		o.seen = 1
		return
	}
	if o.seen == 1 || o.lead > o.hi || (o.lead == o.hi && c > o.lo) {
		o.hi, o.lo = o.lead, c
	}
	o.seen = 2
	if c > o.lead {
		o.lead = c
	}
}

// Seed starts a line that follows terminator.
func (o *Ordered) Seed(terminator byte) {
	o.Observe(terminator)
	o.seeded = true
}

// Pair returns the best ordered pair.
func (o *Ordered) Pair() (first, second int) {
	switch o.seen {
	case 0:
		return domain.Sentinel, domain.Sentinel
	case 1:
		return domain.Sentinel, o.lead
	default:
		return o.hi, o.lo
	}
}

// Empty reports whether no byte other than the seed has been observed.
func (o *Ordered) Empty() bool { return o.seen == 0 || (o.seeded && o.seen == 1) }

// Reset drops the line state, seed included.
func (o *Ordered) Reset() { *o = Ordered{} }

var _ domain.Tracker = (*Ordered)(nil)
