package timetrack

import (
	"sort"
	"strings"
)

// FileResult is the per-file output of parsing one file's content: entries
// grouped by the date they were assigned (under their originating TT
// header), in source order, plus any located errors encountered along the way.
type FileResult struct {
	Entries map[EntryDate][]TimeEntry
	Errors  []*ParseError
}

// ParseFile runs the single-pass line loop over content (spec 4.F) and
// returns the per-file result. filter is applied during accumulation: an
// entry failing the filter is dropped before insertion and contributes
// neither to counts nor to warnings.
func ParseFile(file, content string, filter Filter) FileResult {
	res := FileResult{Entries: make(map[EntryDate][]TimeEntry)}

	var currentDate *EntryDate
	inSection := false
	lineNo := 0

	for _, raw := range strings.Split(content, "\n") {
		lineNo++
		cl := ClassifyLine(raw)
		switch cl.Kind {
		case LineHeaderTT:
			d := cl.Date
			currentDate = &d
			inSection = true
		case LineHeaderInvalidDate:
			res.Errors = append(res.Errors, InvalidDate(cl.RawDate).Located(file, lineNo))
			inSection = false
		case LineHeaderOther:
			inSection = false
		case LineEntry:
			if !inSection || currentDate == nil {
				continue
			}
			entry, err := ParseEntry(cl.EntryText)
			if err != nil {
				res.Errors = append(res.Errors, toLocatedParseError(err, file, lineNo))
				continue
			}
			if filter.Matches(entry, *currentDate) {
				res.Entries[*currentDate] = append(res.Entries[*currentDate], entry)
			}
		case LineOther:
			// ignored structurally
		}
	}

	return res
}

// Accumulator is the streaming, mutable container entries and errors from
// successive files are merged into. It is the single owner of its maps and
// slices: AddFile/Merge extend them in place rather than copying, which is
// what keeps a multi-file run O(sum of entries + sum of errors) instead of
// O(N x state-size). Never copy an Accumulator value between calls.
type Accumulator struct {
	entries map[EntryDate][]TimeEntry
	errors  []*ParseError
}

// NewAccumulator returns an empty Accumulator ready to merge file results.
func NewAccumulator() *Accumulator {
	return &Accumulator{entries: make(map[EntryDate][]TimeEntry)}
}

// Merge appends r's entries and errors into the accumulator, preserving
// per-date insertion order across files (directory-walk order is the
// caller's responsibility to establish by calling AddFile/Merge in that order).
func (a *Accumulator) Merge(r FileResult) {
	for d, es := range r.Entries {
		a.entries[d] = append(a.entries[d], es...)
	}
	a.errors = append(a.errors, r.Errors...)
}

// AddFile parses one file's content and merges the result into the
// accumulator. Equivalent to Merge(ParseFile(file, content, filter)).
func (a *Accumulator) AddFile(file, content string, filter Filter) {
	a.Merge(ParseFile(file, content, filter))
}

// Errors returns every located error accumulated so far.
func (a *Accumulator) Errors() []*ParseError { return a.errors }

// AddError appends an externally observed error — typically an
// ErrorReading raised by the file-source collaborator when it could not
// read a file at all — to the accumulated error set. Unlike AddFile, this
// never touches entries.
func (a *Accumulator) AddError(err *ParseError) {
	a.errors = append(a.errors, err)
}

// Build finalizes the accumulated entries into an immutable TrackedTime.
// Calling Build does not reset the accumulator.
func (a *Accumulator) Build() TrackedTime {
	if len(a.entries) == 0 {
		return TrackedTime{entriesByDate: map[EntryDate][]TimeEntry{}}
	}

	var minDate, maxDate EntryDate
	first := true
	for d := range a.entries {
		if first || d.Before(minDate) {
			minDate = d
		}
		if first || d.After(maxDate) {
			maxDate = d
		}
		first = false
	}

	return TrackedTime{
		entriesByDate: a.entries,
		period:        DateRange{Start: minDate, End: maxDate},
		daysCount:     len(a.entries),
	}
}

// TrackedTime is the date-indexed entry store produced by a run: entries
// grouped by the date they were assigned, in source/merge order.
type TrackedTime struct {
	entriesByDate map[EntryDate][]TimeEntry
	period        DateRange
	daysCount     int
}

// EntriesByDate returns the underlying date -> entries mapping. Callers must
// not mutate the returned slices; TrackedTime is meant to be treated as
// immutable once built.
func (t TrackedTime) EntriesByDate() map[EntryDate][]TimeEntry { return t.entriesByDate }

// Period is the DateRange spanning the min and max assigned dates.
func (t TrackedTime) Period() DateRange { return t.period }

// DaysCount is the number of distinct dates carrying at least one entry.
func (t TrackedTime) DaysCount() int { return t.daysCount }

// IsEmpty reports whether no entries were accumulated at all.
func (t TrackedTime) IsEmpty() bool { return len(t.entriesByDate) == 0 }

// SortedDates returns every date with at least one entry, ascending.
func (t TrackedTime) SortedDates() []EntryDate {
	dates := make([]EntryDate, 0, len(t.entriesByDate))
	for d := range t.entriesByDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
