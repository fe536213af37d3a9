package domain

import "io"

// Tracker folds the bytes of a single line into a (first, second) pair.
type Tracker interface {
	// Observe folds one byte into the line state.
	Observe(ch byte)
	// Pair reports the current pair; absent values are Sentinel.
	Pair() (first, second int)
	// Empty reports whether no byte has been observed since the last Reset.
	Empty() bool
	Reset()
}

// LineObserver is called once for every completed line.
type LineObserver func(Line)

// Source is an opened input stream.
type Source interface {
	io.ReadCloser
	// Name is the file path, or "<stdin>".
	Name() string
}
