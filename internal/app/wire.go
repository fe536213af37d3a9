package app

import (
	log "github.com/sirupsen/logrus"

	"joltage/internal/domain"
	"joltage/internal/scan"
)

// newScanner builds a scanner for cfg. At debug level every line is logged
// before it reaches onLine; otherwise onLine is installed as is.
func newScanner(cfg Config, onLine domain.LineObserver) (*scan.Scanner, error) {
	observer := onLine
	if log.IsLevelEnabled(log.DebugLevel) {
		observer = func(l domain.Line) {
			log.WithFields(log.Fields{
				"line":         l.Number,
				"first":        l.First,
				"second":       l.Second,
				"contribution": l.Contribution,
				"terminated":   l.Terminated,
			}).Debug("line")
			if onLine != nil {
				onLine(l)
			}
		}
	}
	return scan.New(scan.Options{
		Terminator: cfg.Terminator,
		Mode:       cfg.Mode,
		OnLine:     observer,
	})
}
