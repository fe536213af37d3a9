// Package scan implements the single-pass line scanner behind joltage.
//
// A Scanner reads a byte stream once, splits it on a terminator byte and folds
// every line into a Tracker. When a line ends, the tracker's (first, second)
// pair becomes a two-digit contribution that is added to the running total.
//
// # Trackers
//
//   - Top2     keeps the two largest codes of the line (ModeTop2).
//   - Ordered  keeps the largest pair whose tens code precedes its units code
//     (ModeOrdered). A one-byte line yields (absent, byte), and each line after a
//     terminator starts seeded with that terminator.
//
// # Quirks
//
// Codes are read as digits relative to '0' without any range check. A line
// with fewer than two bytes has an absent runner-up, and the absent value
// (domain.Sentinel) is fed through the same formula, so "5" contributes 1 and
// an empty terminated line contributes -539. Downstream totals depend on this.
//
// In ModeTop2 the terminator byte never takes part in any line's comparison.
package scan
