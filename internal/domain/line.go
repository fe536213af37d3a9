package domain

// Sentinel marks an absent character code. It compares below every byte.
const Sentinel = -1

// Line is the result of folding one line of input.
type Line struct {
	Number       int // 1-based
	First        int // largest code, or Sentinel
	Second       int // runner-up code, or Sentinel
	Contribution int
	Terminated   bool // false for a final line cut off by end of input
}
