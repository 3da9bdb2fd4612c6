package assign

import (
	"errors"
	"testing"
)

func TestBySurnameChDigraph(t *testing.T) {
	// CH surnames always go to the 28th, regardless of the letters after.
	cases := []string{
		"Chorshanbiyev Aziz",
		"chorshanbiyev aziz",
		"CHINIQULOV B",
		"Ch'olponov Olim",
		"Ch-A X",
	}
	for _, name := range cases {
		if got := (BySurname{}).Day(name); got != Day28 {
			t.Errorf("Day(%q) = %d, want %d", name, got, Day28)
		}
	}
}

func TestBySurnameRanges(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Olim Akbarov", Day27},       // O is inside A..O
		{"Abdullayev Timur", Day27},   // lower bound
		{"O‘rinboyev Sardor", Day27},  // O‘ cleans to O
		{"Pulatov Jasur", Day28},      // lower bound of P..Z
		{"Zokirov Bek", Day28},        // upper bound
		{"Rashidov-Aliyev K", Day28},  // hyphen stripped
		{"", Day27},                   // empty input
		{"   ", Day27},                // whitespace only
		{"Эргашев Бобур", Day27},      // non-Latin falls through to default
	}
	for _, c := range cases {
		if got := (BySurname{}).Day(c.name); got != c.want {
			t.Errorf("Day(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestSurname(t *testing.T) {
	if got := Surname("o‘rinboyev sardor"); got != "ORINBOYEV" {
		t.Errorf("Surname = %q, want ORINBOYEV", got)
	}
	if got := Surname("  Ra’no-qizi  X "); got != "RANOQIZI" {
		t.Errorf("Surname = %q, want RANOQIZI", got)
	}
}

type fakeCounts struct {
	d27, d28 int
	err      error
}

func (f fakeCounts) CountByDay(day int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if day == Day27 {
		return f.d27, nil
	}
	return f.d28, nil
}

func TestByCapacity(t *testing.T) {
	cases := []struct {
		d27, d28 int
		want     int
	}{
		{0, 0, Day27},   // 27 has room
		{1, 0, Day27},   // still under cap
		{2, 0, Day28},   // 27 full, 28 has room
		{2, 2, Day27},   // both full, equal counts -> 27
		{3, 2, Day28},   // both full, 27 fuller -> 28
	}
	for _, c := range cases {
		s := ByCapacity{Counts: fakeCounts{d27: c.d27, d28: c.d28}, Cap27: 2, Cap28: 2}
		if got := s.Day("Aliyev A"); got != c.want {
			t.Errorf("ByCapacity(%d,%d) = %d, want %d", c.d27, c.d28, got, c.want)
		}
	}
}

func TestByCapacityCountError(t *testing.T) {
	s := ByCapacity{Counts: fakeCounts{err: errors.New("sheet down")}, Cap27: 2, Cap28: 2}
	if got := s.Day("Zokirov B"); got != Day27 {
		t.Errorf("Day on count error = %d, want %d", got, Day27)
	}
}
