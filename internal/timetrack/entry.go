package timetrack

import (
	"fmt"
	"time"
)

// TimeEntry is a single parsed bullet item: one or more project tags, a
// positive minute count, an optional description, and at most one outcome
// tag. It is immutable once built and can only be constructed by the parser
// in this package, which guarantees the non-empty-tags invariant.
type TimeEntry struct {
	tags        []Tag
	minutes     uint32
	description *string
	outcome     *Tag
}

// Tags returns the entry's project tags in their original textual order.
// The slice is never empty for a valid TimeEntry.
func (e TimeEntry) Tags() []Tag {
	out := make([]Tag, len(e.tags))
	copy(out, e.tags)
	return out
}

// Minutes returns the entry's total duration. Always > 0 for a valid TimeEntry.
func (e TimeEntry) Minutes() uint32 { return e.minutes }

// Description returns the entry's free-text description, if any.
func (e TimeEntry) Description() (string, bool) {
	if e.description == nil {
		return "", false
	}
	return *e.description, true
}

// Outcome returns the entry's outcome tag, if any.
func (e TimeEntry) Outcome() (Tag, bool) {
	if e.outcome == nil {
		return Tag{}, false
	}
	return *e.outcome, true
}

// MainContext returns the entry's first project tag, its primary identifier.
func (e TimeEntry) MainContext() Tag { return e.tags[0] }

// HasTag reports whether t is one of the entry's project tags or its outcome tag.
func (e TimeEntry) HasTag(t Tag) bool {
	for _, tg := range e.tags {
		if tg == t {
			return true
		}
	}
	return e.outcome != nil && *e.outcome == t
}

// EntryDate is a calendar date with no time-of-day and no timezone.
type EntryDate struct {
	Year, Month, Day int
}

// NewEntryDate constructs an EntryDate from its components without
// calendar validation; callers that need validation should use
// ParseEntryDate.
func NewEntryDate(year, month, day int) EntryDate {
	return EntryDate{Year: year, Month: month, Day: day}
}

// Time returns d as a time.Time at midnight UTC, the representation used
// internally for calendar arithmetic (no timezone is ever observed by the
// core — see spec Non-goals).
func (d EntryDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func fromTime(t time.Time) EntryDate {
	return EntryDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d EntryDate) Before(o EntryDate) bool { return d.Time().Before(o.Time()) }
func (d EntryDate) After(o EntryDate) bool  { return d.Time().After(o.Time()) }

// AddDays returns the date n days after d (n may be negative).
func (d EntryDate) AddDays(n int) EntryDate { return fromTime(d.Time().AddDate(0, 0, n)) }

func (d EntryDate) Weekday() time.Weekday { return d.Time().Weekday() }

func (d EntryDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseEntryDate parses a strict YYYY-MM-DD string, rejecting any value
// that does not correspond to a real calendar date (e.g. 2020-13-01).
func ParseEntryDate(s string) (EntryDate, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return EntryDate{}, false
	}
	return fromTime(t), true
}

// DateRange is an inclusive [Start, End] span of calendar dates.
type DateRange struct {
	Start, End EntryDate
}

// NewDateRange validates Start <= End.
func NewDateRange(start, end EntryDate) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, InvalidPeriod(fmt.Sprintf("%s..%s", start, end))
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether d falls within the inclusive range.
func (r DateRange) Contains(d EntryDate) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}
