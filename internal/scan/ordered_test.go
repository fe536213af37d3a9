package scan_test

import (
	"math/rand"
	"testing"

	"joltage/internal/domain"
	"joltage/internal/scan"
)

// bestOrdered checks every (i, j) with i < j.
func bestOrdered(line []byte) (int, int) {
	hi, lo := -1, -1
	for i := 0; i < len(line); i++ {
		for j := i + 1; j < len(line); j++ {
			a, b := int(line[i]), int(line[j])
			if a > hi || (a == hi && b > lo) {
				hi, lo = a, b
			}
		}
	}
	return hi, lo
}

func TestOrdered_Pairs(t *testing.T) {
	cases := []struct {
		in            string
		first, second int
	}{
		{"", domain.Sentinel, domain.Sentinel},
		{"5", domain.Sentinel, '5'},
		{"72", '7', '2'},
		{"27", '2', '7'},
		{"1596", '9', '6'},
		{"987654321111111", '9', '8'},
		{"811111111111119", '8', '9'},
		{"234234234234278", '7', '8'},
		{"818181911112111", '9', '2'},
		{"\xff1", 0xff, '1'},
		{"1\xff\xfe", 0xff, 0xfe},
	}
	for _, c := range cases {
		var tr scan.Ordered
		feed(&tr, c.in)
		f, s := tr.Pair()
		if f != c.first || s != c.second {
			t.Errorf("%q: got (%d,%d), want (%d,%d)", c.in, f, s, c.first, c.second)
		}
		if tr.Empty() != (c.in == "") {
			t.Errorf("%q: Empty() = %v", c.in, tr.Empty())
		}
	}
}

func TestOrdered_MatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		line := make([]byte, 2+rng.Intn(20))
		for j := range line {
			line[j] = byte(rng.Intn(256))
		}

		var tr scan.Ordered
		feed(&tr, string(line))
		f, s := tr.Pair()
		wf, ws := bestOrdered(line)
		if f != wf || s != ws {
			t.Fatalf("%q: got (%d,%d), want (%d,%d)", line, f, s, wf, ws)
		}
	}
}

func TestOrdered_SeededLine(t *testing.T) {
	cases := []struct {
		in            string
		first, second int
		empty         bool
	}{
		{"", domain.Sentinel, '\n', true},
		{"5", '\n', '5', false},
		{"72", '7', '2', false},
	}
	for _, c := range cases {
		var tr scan.Ordered
		tr.Seed('\n')
		feed(&tr, c.in)
		f, s := tr.Pair()
		if f != c.first || s != c.second {
			t.Errorf("%q: got (%d,%d), want (%d,%d)", c.in, f, s, c.first, c.second)
		}
		if tr.Empty() != c.empty {
			t.Errorf("%q: Empty() = %v, want %v", c.in, tr.Empty(), c.empty)
		}
	}

	var tr scan.Ordered
	tr.Seed('\n')
	tr.Reset()
	if f, s := tr.Pair(); f != domain.Sentinel || s != domain.Sentinel || !tr.Empty() {
		t.Fatalf("reset kept the seed: (%d,%d)", f, s)
	}
}
