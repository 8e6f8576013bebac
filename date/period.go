package date

import (
	"fmt"
	"strings"
	"time"
)

type periodKind int

const (
	week periodKind = iota
	month
	year
	custom
)

// Period is a symbolic time window selector. The predefined periods resolve
// to the calendar interval containing a reference instant, clipped so that
// the range never extends past the reference: "from period start up to now".
type Period struct {
	kind   periodKind
	custom Range
}

// Predefined periods.
var (
	Week  = Period{kind: week}
	Month = Period{kind: month}
	Year  = Period{kind: year}
)

// Custom returns a period that always resolves to the given explicit range.
func Custom(r Range) Period {
	return Period{kind: custom, custom: r}
}

// Presets lists the symbolic periods, in display order.
func Presets() []Period {
	return []Period{Week, Month, Year}
}

func (p Period) String() string {
	switch p.kind {
	case week:
		return "week"
	case month:
		return "month"
	case year:
		return "year"
	case custom:
		return "custom"
	default:
		panic(fmt.Sprintf("unknown period %d", p.kind))
	}
}

// ParsePeriod parses a symbolic period name.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	case "year", "yearly":
		return Year, nil
	default:
		return Period{}, fmt.Errorf("unknown period %q", s)
	}
}

// Resolve computes the concrete range for the period anchored on ref.
// Week starts on Monday (ISO-8601), month and year on their first day, all
// at midnight in ref's location. The end is always ref itself, never the
// natural end of the calendar interval. Custom returns the stored range
// unchanged.
func (p Period) Resolve(ref time.Time) Range {
	switch p.kind {
	case week:
		// Weekday is Sunday-based, shift so Monday == 0.
		offset := (int(ref.Weekday()) + 6) % 7
		y, m, d := ref.AddDate(0, 0, -offset).Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
		return Range{Start: start, End: ref}
	case month:
		y, m, _ := ref.Date()
		start := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
		return Range{Start: start, End: ref}
	case year:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return Range{Start: start, End: ref}
	case custom:
		return p.custom
	default:
		panic(fmt.Sprintf("unknown period %d", p.kind))
	}
}
