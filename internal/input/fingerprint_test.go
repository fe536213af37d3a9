package input_test

import (
	"io"
	"strings"
	"testing"

	"joltage/internal/input"
)

func TestDigest_MatchesFingerprint(t *testing.T) {
	const data = "72\n27\n1596\n"
	d := input.NewDigest(strings.NewReader(data))

	b, err := io.ReadAll(d)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != data {
		t.Fatalf("digest altered the stream: %q", b)
	}
	got := d.Fingerprint()
	if len(got) != 20 {
		t.Fatalf("fingerprint length: got %d, want 20", len(got))
	}
	if want := input.Fingerprint([]byte(data)); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFingerprint_DistinguishesInputs(t *testing.T) {
	a := input.Fingerprint([]byte("72\n"))
	b := input.Fingerprint([]byte("27\n"))
	if a == b {
		t.Fatalf("fingerprints collide: %s", a)
	}
	if a != input.Fingerprint([]byte("72\n")) {
		t.Fatalf("fingerprint not stable")
	}
}
