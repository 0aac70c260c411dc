package timetrack

import (
	"math"
	"testing"
)

func TestResolvePeriod_Today(t *testing.T) {
	clock := FixedClock(NewEntryDate(2020, 6, 15))
	r, err := ResolvePeriod(Today(), clock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewEntryDate(2020, 6, 15)
	if r.Start != want || r.End != want {
		t.Fatalf("got %+v, want (%v, %v)", r, want, want)
	}
}

func TestResolvePeriod_LastMonth_JanuaryRollover(t *testing.T) {
	// TT_TODAY on January 2 -> LastMonth yields (prev-year-12-01, prev-year-12-31).
	clock := FixedClock(NewEntryDate(2021, 1, 2))
	r, err := ResolvePeriod(LastMonth(), clock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := NewEntryDate(2020, 12, 1)
	wantEnd := NewEntryDate(2020, 12, 31)
	if r.Start != wantStart || r.End != wantEnd {
		t.Fatalf("got %+v, want (%v, %v)", r, wantStart, wantEnd)
	}
}

func TestResolvePeriod_ThisWeek_ISOYearBoundary(t *testing.T) {
	// Jan 1 2021 is a Friday, so Jan 4 2021 is a Monday and itself starts
	// ISO week 2021-W01. The boundary-straddling week (2020-W53, running
	// Dec 28 2020 - Jan 3 2021) is the week containing Jan 3 2021, a Sunday.
	clock := FixedClock(NewEntryDate(2021, 1, 3))
	r, err := ResolvePeriod(ThisWeek(), clock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := NewEntryDate(2020, 12, 28)
	wantEnd := NewEntryDate(2021, 1, 3)
	if r.Start != wantStart || r.End != wantEnd {
		t.Fatalf("got %+v, want (%v, %v)", r, wantStart, wantEnd)
	}
}

func TestResolvePeriod_ThisWeek_OnTheMondayItself(t *testing.T) {
	clock := FixedClock(NewEntryDate(2021, 1, 4))
	r, err := ResolvePeriod(ThisWeek(), clock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != NewEntryDate(2021, 1, 4) || r.End != NewEntryDate(2021, 1, 10) {
		t.Fatalf("got %+v, want (2021-01-04, 2021-01-10)", r)
	}
}

func TestResolvePeriod_YearOfMaxSucceedsAndOverflowRejected(t *testing.T) {
	clock := FixedClock(NewEntryDate(2020, 1, 1))
	if _, err := ResolvePeriod(YearOf(9999), clock); err != nil {
		t.Fatalf("YearOf(9999) should succeed: %v", err)
	}
	if _, err := ResolvePeriod(YearOf(math.MaxInt32), clock); err == nil {
		t.Fatal("YearOf(MaxInt32) should be rejected as InvalidPeriod")
	}
}

func TestResolvePeriod_MonthOfValidatesBounds(t *testing.T) {
	clock := FixedClock(NewEntryDate(2020, 1, 1))
	if _, err := ResolvePeriod(MonthOf(2020, 13), clock); err == nil {
		t.Fatal("expected InvalidPeriod for month 13")
	}
	if _, err := ResolvePeriod(MonthOf(999, 1), clock); err == nil {
		t.Fatal("expected InvalidPeriod for year below 1000")
	}
}

func TestResolvePeriod_WeekOfValidatesBounds(t *testing.T) {
	clock := FixedClock(NewEntryDate(2020, 1, 1))
	if _, err := ResolvePeriod(WeekOf(2020, 54), clock); err == nil {
		t.Fatal("expected InvalidPeriod for ISO week 54")
	}
	if _, err := ResolvePeriod(WeekOf(2020, 0), clock); err == nil {
		t.Fatal("expected InvalidPeriod for ISO week 0")
	}
}

func TestResolvePeriod_ExplicitRequiresOrder(t *testing.T) {
	clock := FixedClock(NewEntryDate(2020, 1, 1))
	_, err := ResolvePeriod(Explicit(NewEntryDate(2020, 2, 1), NewEntryDate(2020, 1, 1)), clock)
	if err == nil {
		t.Fatal("expected InvalidPeriod when start > end")
	}
}

func TestResolvePeriod_MonthsAgoStepsBackRepeatedly(t *testing.T) {
	clock := FixedClock(NewEntryDate(2021, 3, 15))
	r, err := ResolvePeriod(MonthsAgo(15), clock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != NewEntryDate(2019, 12, 1) {
		t.Fatalf("got %+v, want month 2019-12", r)
	}
}

func TestResolvePeriod_LeapYearFebruaryInMonthRange(t *testing.T) {
	clock := FixedClock(NewEntryDate(2020, 2, 1))
	r, err := ResolvePeriod(MonthOf(2020, 2), clock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.End != (NewEntryDate(2020, 2, 29)) {
		t.Fatalf("expected leap-year Feb to end on the 29th, got %v", r.End)
	}
}

func TestResolvePeriod_InvariantStartLessEqualEnd(t *testing.T) {
	clock := FixedClock(NewEntryDate(2020, 6, 15))
	periods := []PeriodRequested{
		Today(), Yesterday(), ThisWeek(), LastWeek(), ThisMonth(), LastMonth(), ThisYear(),
		MonthOf(2020, 6), WeekOf(2020, 24), YearOf(2020), MonthsAgo(3), FromDate(NewEntryDate(2020, 1, 1)),
	}
	for _, p := range periods {
		r, err := ResolvePeriod(p, clock)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", p, err)
		}
		if r.End.Before(r.Start) {
			t.Fatalf("period %+v resolved to end before start: %+v", p, r)
		}
	}
}

func TestParsePeriodString(t *testing.T) {
	tests := []struct {
		in       string
		wantKind PeriodKind
	}{
		{"today", PeriodToday},
		{"yesterday", PeriodYesterday},
		{"this-week", PeriodThisWeek},
		{"last-week", PeriodLastWeek},
		{"lw", PeriodLastWeek},
		{"this-month", PeriodThisMonth},
		{"last-month", PeriodLastMonth},
		{"lm", PeriodLastMonth},
		{"this-year", PeriodThisYear},
		{"2020-01-15", PeriodDay},
		{"2020-1", PeriodMonthOf},
		{"2020-01", PeriodMonthOf},
		{"2020-w3", PeriodWeekOf},
		{"2020-W03", PeriodWeekOf},
		{"2020", PeriodYearOf},
		{"m-3", PeriodMonthsAgo},
		{"month-12", PeriodMonthsAgo},
	}
	for _, tt := range tests {
		p, err := ParsePeriodString(tt.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.in, err)
		}
		if p.Kind != tt.wantKind {
			t.Fatalf("%q: got kind %v, want %v", tt.in, p.Kind, tt.wantKind)
		}
	}
}

func TestParsePeriodString_Invalid(t *testing.T) {
	for _, in := range []string{"", "nonsense", "2020-99-99", "2020-m-3"} {
		if _, err := ParsePeriodString(in); err == nil {
			t.Fatalf("%q: expected InvalidPeriod", in)
		}
	}
}
