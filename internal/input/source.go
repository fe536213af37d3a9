package input

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"joltage/internal/domain"
)

// StdinName is the Name of a source reading standard input.
const StdinName = "<stdin>"

type source struct {
	io.Reader
	name   string
	closer io.Closer // nil for stdin
}

func (s *source) Name() string { return s.name }

// Close releases a named file. Standard input is left open.
func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// Open returns the file at path, or standard input when path is "" or "-".
func Open(path string) (domain.Source, error) {
	if path == "" || path == "-" {
		return Stdin(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(&domain.InputError{Path: path, Err: err})
	}
	fi, err := f.Stat()
	if err == nil && fi.IsDir() {
		err = errors.New("is a directory")
	}
	if err != nil {
		_ = f.Close()
		return nil, errors.WithStack(&domain.InputError{Path: path, Err: err})
	}

	log.Debugf("opened %s (%d bytes)", path, fi.Size())
	return &source{Reader: f, name: path, closer: f}, nil
}

// Stdin wraps f as an unclosable source named StdinName.
func Stdin(f *os.File) domain.Source {
	if term.IsTerminal(int(f.Fd())) {
		log.Warn("reading from a terminal, end input with Ctrl-D")
	}
	log.Debug("reading standard input")
	return &source{Reader: f, name: StdinName}
}
