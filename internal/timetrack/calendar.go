package timetrack

import (
	"fmt"
	"math"
	"time"
)

// PeriodKind enumerates the named/relative/explicit period requests a
// caller can resolve against a Clock.
type PeriodKind int

const (
	PeriodToday PeriodKind = iota
	PeriodYesterday
	PeriodThisWeek
	PeriodLastWeek
	PeriodThisMonth
	PeriodLastMonth
	PeriodThisYear
	PeriodDay
	PeriodMonthOf
	PeriodWeekOf
	PeriodYearOf
	PeriodMonthsAgo
	PeriodFromDate
	PeriodExplicit
)

// PeriodRequested is a tagged union over the period grammar in spec 6/3.
// Only the fields relevant to Kind are meaningful.
type PeriodRequested struct {
	Kind       PeriodKind
	Date       EntryDate // Day, FromDate
	Year       int       // MonthOf, WeekOf (ISO year), YearOf
	Month      int       // MonthOf, 1..=12
	Week       int       // WeekOf, 1..=53
	N          int       // MonthsAgo
	Start, End EntryDate // Explicit
}

func Today() PeriodRequested     { return PeriodRequested{Kind: PeriodToday} }
func Yesterday() PeriodRequested { return PeriodRequested{Kind: PeriodYesterday} }
func ThisWeek() PeriodRequested  { return PeriodRequested{Kind: PeriodThisWeek} }
func LastWeek() PeriodRequested  { return PeriodRequested{Kind: PeriodLastWeek} }
func ThisMonth() PeriodRequested { return PeriodRequested{Kind: PeriodThisMonth} }
func LastMonth() PeriodRequested { return PeriodRequested{Kind: PeriodLastMonth} }
func ThisYear() PeriodRequested  { return PeriodRequested{Kind: PeriodThisYear} }

func DayPeriod(d EntryDate) PeriodRequested { return PeriodRequested{Kind: PeriodDay, Date: d} }
func MonthOf(year, month int) PeriodRequested {
	return PeriodRequested{Kind: PeriodMonthOf, Year: year, Month: month}
}
func WeekOf(isoYear, isoWeek int) PeriodRequested {
	return PeriodRequested{Kind: PeriodWeekOf, Year: isoYear, Week: isoWeek}
}
func YearOf(year int) PeriodRequested { return PeriodRequested{Kind: PeriodYearOf, Year: year} }
func MonthsAgo(n int) PeriodRequested { return PeriodRequested{Kind: PeriodMonthsAgo, N: n} }
func FromDate(d EntryDate) PeriodRequested {
	return PeriodRequested{Kind: PeriodFromDate, Date: d}
}
func Explicit(start, end EntryDate) PeriodRequested {
	return PeriodRequested{Kind: PeriodExplicit, Start: start, End: end}
}

// Clock supplies "today" to period resolution. The real CLI wires the
// system clock; tests (and the TT_TODAY override) inject a fixed date.
type Clock interface {
	Today() EntryDate
}

type fixedClock struct{ d EntryDate }

func (f fixedClock) Today() EntryDate { return f.d }

// FixedClock returns a Clock that always reports d, used for TT_TODAY and tests.
func FixedClock(d EntryDate) Clock { return fixedClock{d} }

type systemClock struct{}

func (systemClock) Today() EntryDate {
	now := time.Now()
	return EntryDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// SystemClock reports the real wall-clock date.
var SystemClock Clock = systemClock{}

const yearMin, yearMax = 1000, 9999

// ResolvePeriod computes the inclusive DateRange a PeriodRequested denotes,
// given the clock's notion of "today". Out-of-range integers never panic;
// they surface as InvalidPeriod.
func ResolvePeriod(p PeriodRequested, clock Clock) (DateRange, error) {
	today := clock.Today()

	switch p.Kind {
	case PeriodToday:
		return DateRange{Start: today, End: today}, nil
	case PeriodYesterday:
		y := today.AddDays(-1)
		return DateRange{Start: y, End: y}, nil
	case PeriodThisWeek:
		return isoWeekRangeContaining(today)
	case PeriodLastWeek:
		return isoWeekRangeContaining(today.AddDays(-7))
	case PeriodThisMonth:
		return monthRange(today.Year, today.Month)
	case PeriodLastMonth:
		y, m := previousMonth(today.Year, today.Month)
		return monthRange(y, m)
	case PeriodThisYear:
		return yearRange(today.Year)
	case PeriodDay:
		return DateRange{Start: p.Date, End: p.Date}, nil
	case PeriodMonthOf:
		if p.Year < yearMin || p.Year > yearMax {
			return DateRange{}, InvalidPeriod(fmt.Sprintf("%04d-%02d", p.Year, p.Month))
		}
		if p.Month < 1 || p.Month > 12 {
			return DateRange{}, InvalidPeriod(fmt.Sprintf("%04d-%02d", p.Year, p.Month))
		}
		return monthRange(p.Year, p.Month)
	case PeriodWeekOf:
		if p.Year < yearMin || p.Year > yearMax {
			return DateRange{}, InvalidPeriod(fmt.Sprintf("%04d-W%02d", p.Year, p.Week))
		}
		if p.Week < 1 || p.Week > 53 {
			return DateRange{}, InvalidPeriod(fmt.Sprintf("%04d-W%02d", p.Year, p.Week))
		}
		return isoWeekOfRange(p.Year, p.Week)
	case PeriodYearOf:
		if p.Year == math.MaxInt32 {
			return DateRange{}, InvalidPeriod(fmt.Sprintf("%d", p.Year))
		}
		if p.Year < yearMin || p.Year > yearMax {
			return DateRange{}, InvalidPeriod(fmt.Sprintf("%d", p.Year))
		}
		return yearRange(p.Year)
	case PeriodMonthsAgo:
		if p.N < 1 || p.N > 1200 {
			return DateRange{}, InvalidPeriod(fmt.Sprintf("months-ago:%d", p.N))
		}
		y, m := today.Year, today.Month
		for i := 0; i < p.N; i++ {
			y, m = previousMonth(y, m)
		}
		return monthRange(y, m)
	case PeriodFromDate:
		return DateRange{Start: p.Date, End: today}, nil
	case PeriodExplicit:
		return NewDateRange(p.Start, p.End)
	default:
		return DateRange{}, InvalidPeriod("unknown period")
	}
}

// firstOfNextMonth returns the first day of the month after (year, month),
// handling the December -> January rollover without ever computing month+1
// unchecked.
func firstOfNextMonth(year, month int) EntryDate {
	if month == 12 {
		return EntryDate{Year: year + 1, Month: 1, Day: 1}
	}
	return EntryDate{Year: year, Month: month + 1, Day: 1}
}

// previousMonth returns (year, month) shifted back by one month, handling
// the January -> December rollover explicitly rather than via month-1.
func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// monthRange computes the first-to-last day of a calendar month. The last
// day is derived as "first of next month minus one day", never via
// hard-coded month-length tables, so it is leap-year safe for February.
func monthRange(year, month int) (DateRange, error) {
	first := EntryDate{Year: year, Month: month, Day: 1}
	last := firstOfNextMonth(year, month).AddDays(-1)
	return DateRange{Start: first, End: last}, nil
}

// yearRange computes Jan 1 to Dec 31 of year via "first of next year minus one day".
func yearRange(year int) (DateRange, error) {
	first := EntryDate{Year: year, Month: 1, Day: 1}
	last := EntryDate{Year: year + 1, Month: 1, Day: 1}.AddDays(-1)
	return DateRange{Start: first, End: last}, nil
}

// isoMonday returns the Monday starting the ISO-8601 week containing t.
func isoMonday(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday -> 7, so Monday is always 0..6 days back
	}
	return t.AddDate(0, 0, -(wd - 1))
}

// isoWeekRangeContaining returns the Monday..Sunday span of the ISO week
// containing d.
func isoWeekRangeContaining(d EntryDate) (DateRange, error) {
	monday := isoMonday(d.Time())
	sunday := monday.AddDate(0, 0, 6)
	return DateRange{Start: fromTime(monday), End: fromTime(sunday)}, nil
}

// isoWeekOfRange returns the Monday..Sunday span of ISO week isoWeek of
// isoYear. ISO week 1 is, by definition, the week containing that year's
// first Thursday (equivalently, the week containing Jan 4).
func isoWeekOfRange(isoYear, isoWeek int) (DateRange, error) {
	jan4 := time.Date(isoYear, 1, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := isoMonday(jan4)
	monday := week1Monday.AddDate(0, 0, (isoWeek-1)*7)
	sunday := monday.AddDate(0, 0, 6)
	return DateRange{Start: fromTime(monday), End: fromTime(sunday)}, nil
}

// ISOWeek returns the (ISO year, ISO week) pair d belongs to, which may
// differ from d's calendar year near January 1 / December 31.
func (d EntryDate) ISOWeek() (int, int) {
	return d.Time().ISOWeek()
}

// DescribePeriod renders a short human label for a period, used as the
// period description carried by OverviewReport.
func DescribePeriod(p PeriodRequested) string {
	switch p.Kind {
	case PeriodToday:
		return "today"
	case PeriodYesterday:
		return "yesterday"
	case PeriodThisWeek:
		return "this week"
	case PeriodLastWeek:
		return "last week"
	case PeriodThisMonth:
		return "this month"
	case PeriodLastMonth:
		return "last month"
	case PeriodThisYear:
		return "this year"
	case PeriodDay:
		return p.Date.String()
	case PeriodMonthOf:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	case PeriodWeekOf:
		return fmt.Sprintf("%04d-W%02d", p.Year, p.Week)
	case PeriodYearOf:
		return fmt.Sprintf("%04d", p.Year)
	case PeriodMonthsAgo:
		return fmt.Sprintf("%d months ago", p.N)
	case PeriodFromDate:
		return fmt.Sprintf("since %s", p.Date)
	case PeriodExplicit:
		return fmt.Sprintf("%s..%s", p.Start, p.End)
	default:
		return "all time"
	}
}
