package assign

import (
	"log"
	"strings"
)

const (
	Day27 = 27
	Day28 = 28
)

// Strategy picks a visit day for a registration. Implementations must be
// total: any input, including garbage, yields a valid day.
type Strategy interface {
	Day(parentFullname string) int
}

// BySurname groups families by the Uzbek (Latin) surname:
//   - A..O  -> 27 December
//   - P..Z  -> 28 December
//   - CH digraph always -> 28, checked before the letter ranges
type BySurname struct{}

func (BySurname) Day(parentFullname string) int {
	s := Surname(parentFullname)
	if s == "" {
		return Day27
	}
	if strings.HasPrefix(s, "CH") {
		return Day28
	}
	// O‘, G‘ and friends start with plain O / G after cleaning
	first := s[0]
	if first >= 'A' && first <= 'O' {
		return Day27
	}
	if first >= 'P' && first <= 'Z' {
		return Day28
	}
	return Day27
}

// Surname extracts the grouping key: first word of the full name,
// uppercased, apostrophes and hyphens stripped.
func Surname(fullname string) string {
	parts := strings.Fields(fullname)
	if len(parts) == 0 {
		return ""
	}
	s := strings.ToUpper(parts[0])
	repl := strings.NewReplacer("’", "", "‘", "", "'", "", "-", "")
	return repl.Replace(s)
}

// CountSource is the slice of the registration store capacity balancing
// needs.
type CountSource interface {
	CountByDay(day int) (int, error)
}

// ByCapacity fills day 27 to its capacity, then day 28, then whichever is
// less full. Count failures fall back to day 27 so a sheet outage never
// blocks a confirmation.
type ByCapacity struct {
	Counts CountSource
	Cap27  int
	Cap28  int
}

func (c ByCapacity) Day(parentFullname string) int {
	d27, err := c.Counts.CountByDay(Day27)
	if err != nil {
		log.Printf("assign: count day 27: %v", err)
		return Day27
	}
	d28, err := c.Counts.CountByDay(Day28)
	if err != nil {
		log.Printf("assign: count day 28: %v", err)
		return Day27
	}
	if d27 < c.Cap27 {
		return Day27
	}
	if d28 < c.Cap28 {
		return Day28
	}
	if d27 <= d28 {
		return Day27
	}
	return Day28
}
