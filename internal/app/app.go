package app

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"joltage/internal/domain"
	"joltage/internal/input"
	"joltage/internal/scan"
)

// App runs scans for the CLI.
type App struct {
	cfg Config
}

// New returns an App for cfg.
func New(cfg Config) *App { return &App{cfg: cfg} }

// Report describes one completed run.
type Report struct {
	Source string
	scan.Result
	Fingerprint string // empty unless requested
	Elapsed     time.Duration
}

// Scan totals the input at path ("" or "-" for stdin). onLine may be nil.
func (a *App) Scan(path string, onLine domain.LineObserver) (Report, error) {
	return a.run(path, onLine, false)
}

// Fingerprint totals the input at path and fingerprints the bytes consumed.
func (a *App) Fingerprint(path string) (Report, error) {
	return a.run(path, nil, true)
}

func (a *App) run(path string, onLine domain.LineObserver, digest bool) (Report, error) {
	start := time.Now()

	src, err := input.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			log.Warnf("closing %s: %v", src.Name(), cerr)
		}
	}()

	s, err := newScanner(a.cfg, onLine)
	if err != nil {
		return Report{}, err
	}

	var r io.Reader = src
	var d *input.Digest
	if digest {
		d = input.NewDigest(src)
		r = d
	}

	rep := Report{Source: src.Name()}
	rep.Result, err = s.Process(r)
	if d != nil {
		rep.Fingerprint = d.Fingerprint()
	}
	rep.Elapsed = time.Since(start)
	if err != nil {
		return rep, err
	}

	log.Debugf("%s: %d lines, %d bytes, total %d in %0.3fs",
		rep.Source, rep.Lines, rep.Bytes, rep.Total, rep.Elapsed.Seconds())
	return rep, nil
}
