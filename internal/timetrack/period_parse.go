package timetrack

import (
	"regexp"
	"strconv"
	"strings"
)

// Lazy static regexes (spec 9): built once per process, read-only thereafter.
var (
	periodDateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	periodMonthRe     = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	periodWeekRe      = regexp.MustCompile(`(?i)^(\d{4})-w(\d{1,2})$`)
	periodYearRe      = regexp.MustCompile(`^\d{4}$`)
	periodMonthsAgoRe = regexp.MustCompile(`^(?:m|month)-(\d+)$`)
	periodRangeRe     = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\.\.(\d{4}-\d{2}-\d{2})$`)
)

// ParsePeriodString parses the period grammar (spec 6): named periods
// (today, yesterday, this-week, ...), an explicit date, year-month, ISO
// year-week, a bare year, "(m|month)-N" relative months, and an explicit
// "<date>..<date>" range (an extension used by Explicit callers). Anything
// unrecognized, or an invalid calendar date, yields InvalidPeriod here; a
// matched month, week, year or months-ago value that is out of range is
// returned as is and rejected with InvalidPeriod by ResolvePeriod.
func ParsePeriodString(s string) (PeriodRequested, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "today":
		return Today(), nil
	case "yesterday":
		return Yesterday(), nil
	case "this-week":
		return ThisWeek(), nil
	case "last-week", "lw":
		return LastWeek(), nil
	case "this-month":
		return ThisMonth(), nil
	case "last-month", "lm":
		return LastMonth(), nil
	case "this-year":
		return ThisYear(), nil
	}

	if m := periodRangeRe.FindStringSubmatch(s); m != nil {
		start, okS := ParseEntryDate(m[1])
		end, okE := ParseEntryDate(m[2])
		if !okS || !okE {
			return PeriodRequested{}, InvalidPeriod(s)
		}
		return Explicit(start, end), nil
	}

	if periodDateRe.MatchString(s) {
		d, ok := ParseEntryDate(s)
		if !ok {
			return PeriodRequested{}, InvalidPeriod(s)
		}
		return DayPeriod(d), nil
	}

	if m := periodWeekRe.FindStringSubmatch(s); m != nil {
		return WeekOf(atoiOrZero(m[1]), atoiOrZero(m[2])), nil
	}

	if m := periodMonthRe.FindStringSubmatch(s); m != nil {
		return MonthOf(atoiOrZero(m[1]), atoiOrZero(m[2])), nil
	}

	if m := periodMonthsAgoRe.FindStringSubmatch(s); m != nil {
		return MonthsAgo(atoiOrZero(m[1])), nil
	}

	if periodYearRe.MatchString(s) {
		return YearOf(atoiOrZero(s)), nil
	}

	if strings.HasPrefix(s, "since:") {
		d, ok := ParseEntryDate(strings.TrimPrefix(s, "since:"))
		if !ok {
			return PeriodRequested{}, InvalidPeriod(s)
		}
		return FromDate(d), nil
	}

	return PeriodRequested{}, InvalidPeriod(s)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
