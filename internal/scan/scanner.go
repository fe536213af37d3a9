package scan

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"joltage/internal/domain"
)

// DefaultTerminator ends a line unless Options says otherwise.
const DefaultTerminator byte = '\n'

// Options configures a Scanner.
type Options struct {
	Terminator byte
	Mode       Mode
	// OnLine, if set, sees every line as soon as its contribution is known.
	OnLine domain.LineObserver
}

// DefaultOptions scans newline-terminated lines in ModeTop2.
func DefaultOptions() Options {
	return Options{Terminator: DefaultTerminator, Mode: ModeTop2}
}

// Result summarises one pass over a stream.
type Result struct {
	Total int   // sum of every line's contribution
	Lines int   // lines folded, including an unterminated last one
	Bytes int64 // bytes read, terminators included
}

// Scanner folds a stream line by line into a running total.
//
// A Scanner owns its tracker and must not be used from more than one
// goroutine at a time. It may be reused; every Process call starts fresh.
type Scanner struct {
	term    byte
	tracker domain.Tracker
	onLine  domain.LineObserver
}

// New builds a Scanner from opts.
func New(opts Options) (*Scanner, error) {
	tr, err := opts.Mode.NewTracker()
	if err != nil {
		return nil, err
	}
	return &Scanner{term: opts.Terminator, tracker: tr, onLine: opts.OnLine}, nil
}

// Process reads r to end of input and returns the accumulated result. A read
// error other than io.EOF stops the scan and is returned with the partial
// result.
func (s *Scanner) Process(r io.Reader) (Result, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s.tracker.Reset()

	var res Result
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			if !s.tracker.Empty() {
				s.finish(&res, false)
			}
			return res, nil
		}
		if err != nil {
			return res, errors.Wrap(err, "read input")
		}
		res.Bytes++
		if ch == s.term {
			s.finish(&res, true)
			continue
		}
		s.tracker.Observe(ch)
	}
}

// finish folds the current line into res and resets the tracker.
func (s *Scanner) finish(res *Result, terminated bool) {
	first, second := s.tracker.Pair()
	c := Contribution(first, second)
	res.Total += c
	res.Lines++
	if s.onLine != nil {
		s.onLine(domain.Line{
			Number:       res.Lines,
			First:        first,
			Second:       second,
			Contribution: c,
			Terminated:   terminated,
		})
	}
	s.tracker.Reset()
	if sd, ok := s.tracker.(seeder); ok && terminated {
		sd.Seed(s.term)
	}
}

// seeder is a tracker whose next line starts from the terminator that ended
// the previous one.
type seeder interface {
	Seed(terminator byte)
}

// Process scans r with DefaultOptions and returns the total.
func Process(r io.Reader) (int, error) {
	s, err := New(DefaultOptions())
	if err != nil {
		return 0, err
	}
	res, err := s.Process(r)
	return res.Total, err
}
