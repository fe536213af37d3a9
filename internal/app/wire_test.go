package app

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"joltage/internal/domain"
)

// withLogLevel captures logrus output at level for the rest of the test.
func withLogLevel(t *testing.T, level log.Level) *bytes.Buffer {
	t.Helper()
	prevLevel, prevOut := log.GetLevel(), log.StandardLogger().Out
	var buf bytes.Buffer
	log.SetLevel(level)
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetLevel(prevLevel)
		log.SetOutput(prevOut)
	})
	return &buf
}

func TestNewScanner_NoObserverBelowDebug(t *testing.T) {
	buf := withLogLevel(t, log.WarnLevel)

	s, err := newScanner(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("newScanner: %v", err)
	}
	res, err := s.Process(strings.NewReader("72\n27\n"))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Total != 144 {
		t.Fatalf("got %d, want 144", res.Total)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}

func TestNewScanner_CallerObserverBelowDebug(t *testing.T) {
	withLogLevel(t, log.InfoLevel)

	var got []int
	s, err := newScanner(DefaultConfig(), func(l domain.Line) { got = append(got, l.Contribution) })
	if err != nil {
		t.Fatalf("newScanner: %v", err)
	}
	if _, err := s.Process(strings.NewReader("72\n5\n")); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(got) != 2 || got[0] != 72 || got[1] != 1 {
		t.Fatalf("observer saw %v", got)
	}
}

func TestNewScanner_LogsLinesAtDebug(t *testing.T) {
	buf := withLogLevel(t, log.DebugLevel)

	var calls int
	s, err := newScanner(DefaultConfig(), func(domain.Line) { calls++ })
	if err != nil {
		t.Fatalf("newScanner: %v", err)
	}
	if _, err := s.Process(strings.NewReader("72\n")); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if calls != 1 {
		t.Fatalf("caller observer called %d times", calls)
	}
	if !strings.Contains(buf.String(), "contribution=72") {
		t.Fatalf("expected line log, got %q", buf.String())
	}
}
