package bucket

import (
	"fmt"
	"strings"
	"time"
)

// Bucket is a destination category for a task: either a time period a task is
// parked in, or a terminal outcome. The declaration order is the canonical
// section order of a journal file.
type Bucket int

const (
	Today Bucket = iota
	Anytime
	ThisWeek
	ThisMonth
	ThisQuarter
	ThisYear
	Completed
	Dropped
)

type def struct {
	Heading string
	Phrase  string
	Matches func(ref, today time.Time) bool
}

func defs() []def {
	return []def{
		{
			Heading: "TODAY",
			Phrase:  "yesterday",
			Matches: sameDay,
		}, {
			Heading: "ANYTIME",
			Phrase:  "at some point",
			Matches: never,
		}, {
			Heading: "THIS WEEK",
			Phrase:  "last week",
			Matches: sameISOWeek,
		}, {
			Heading: "THIS MONTH",
			Phrase:  "last month",
			Matches: sameMonth,
		}, {
			Heading: "THIS QUARTER",
			Phrase:  "last quarter",
			Matches: sameQuarter,
		}, {
			Heading: "THIS YEAR",
			Phrase:  "last year",
			Matches: sameYear,
		}, {
			Heading: "COMPLETED",
		}, {
			Heading: "DROPPED",
		},
	}
}

// All returns every bucket in canonical order.
func All() []Bucket {
	return []Bucket{Today, Anytime, ThisWeek, ThisMonth, ThisQuarter, ThisYear, Completed, Dropped}
}

// Periods returns the time-period buckets in canonical order, excluding the
// terminal Completed and Dropped outcomes.
func Periods() []Bucket {
	return []Bucket{Today, Anytime, ThisWeek, ThisMonth, ThisQuarter, ThisYear}
}

// Heading is the section heading text as it appears in a journal file.
func (b Bucket) Heading() string {
	return defs()[b].Heading
}

// Phrase is the human reference to the bucket's previous window, used when
// asking about a task from an expired period ("Did you complete this <phrase>?").
// Terminal buckets have no phrase.
func (b Bucket) Phrase() string {
	return defs()[b].Phrase
}

// Terminal reports whether the bucket is a classification outcome rather than
// a time period.
func (b Bucket) Terminal() bool {
	return b == Completed || b == Dropped
}

// Matches reports whether ref falls inside the bucket's current window as seen
// from today. Anytime never matches, so its tasks are always reviewed.
// Terminal buckets never match.
func (b Bucket) Matches(ref, today time.Time) bool {
	m := defs()[b].Matches
	if m == nil {
		return false
	}
	return m(ref, today)
}

func (b Bucket) String() string {
	return b.Heading()
}

// ForAlias maps a command-line name to a period bucket. Terminal buckets are
// not addressable by alias; tasks only reach them through review.
func ForAlias(alias string) (Bucket, error) {
	name := strings.ToLower(strings.TrimSpace(alias))
	for _, b := range Periods() {
		if name == strings.ToLower(b.Heading()) {
			return b, nil
		}
	}
	switch name {
	case "week":
		return ThisWeek, nil
	case "month":
		return ThisMonth, nil
	case "quarter":
		return ThisQuarter, nil
	case "year":
		return ThisYear, nil
	}
	return Today, fmt.Errorf("unknown bucket %q", alias)
}

func never(_, _ time.Time) bool {
	return false
}

func sameDay(ref, today time.Time) bool {
	return ref.Day() == today.Day() && ref.Month() == today.Month() && ref.Year() == today.Year()
}

func sameISOWeek(ref, today time.Time) bool {
	ry, rw := ref.ISOWeek()
	ty, tw := today.ISOWeek()
	return rw == tw && ry == ty
}

func sameMonth(ref, today time.Time) bool {
	return ref.Month() == today.Month() && ref.Year() == today.Year()
}

// quarters group months in fixed triples: 1-3, 4-6, 7-9, 10-12.
func sameQuarter(ref, today time.Time) bool {
	return quarterOf(ref) == quarterOf(today) && ref.Year() == today.Year()
}

func quarterOf(t time.Time) int {
	return (int(t.Month()) - 1) / 3
}

func sameYear(ref, today time.Time) bool {
	return ref.Year() == today.Year()
}
