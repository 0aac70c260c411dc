package timetrack

import "testing"

func mustEntry(t *testing.T, raw string) TimeEntry {
	t.Helper()
	e, err := ParseEntry(raw)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", raw, err)
	}
	return e
}

func TestFilter_TagIncludes(t *testing.T) {
	a := NewProjectTag("a")
	f := TagIncludes(a)
	e := mustEntry(t, "#a 30m")
	if !f.Matches(e, EntryDate{}) {
		t.Fatal("expected match on included tag")
	}
	e2 := mustEntry(t, "#b 30m")
	if f.Matches(e2, EntryDate{}) {
		t.Fatal("expected no match for tag outside include set")
	}
}

func TestFilter_TagExcludes(t *testing.T) {
	a := NewProjectTag("a")
	f := TagExcludes(a)
	e := mustEntry(t, "#a 30m")
	if f.Matches(e, EntryDate{}) {
		t.Fatal("expected exclude to reject tag a")
	}
	e2 := mustEntry(t, "#b 30m")
	if !f.Matches(e2, EntryDate{}) {
		t.Fatal("expected exclude to allow tag b")
	}
}

func TestFilter_DateRange(t *testing.T) {
	r := DateRange{Start: NewEntryDate(2020, 1, 1), End: NewEntryDate(2020, 1, 31)}
	f := ByDateRange(r)
	e := mustEntry(t, "#a 30m")
	if !f.Matches(e, NewEntryDate(2020, 1, 15)) {
		t.Fatal("expected date inside range to match")
	}
	if f.Matches(e, NewEntryDate(2020, 2, 1)) {
		t.Fatal("expected date outside range to not match")
	}
}

func TestFilter_AndNeutralElement(t *testing.T) {
	a := NewProjectTag("a")
	f := TagIncludes(a)
	combined := And(NoFilter(), f)
	included := mustEntry(t, "#a 1m")
	excluded := mustEntry(t, "#b 1m")
	if !combined.Matches(included, EntryDate{}) {
		t.Fatal("And(NoFilter(), f) should behave exactly like f")
	}
	if combined.Matches(excluded, EntryDate{}) {
		t.Fatal("And(NoFilter(), f) should behave exactly like f")
	}
}

func TestFilter_AndShortCircuitsBothSides(t *testing.T) {
	r := DateRange{Start: NewEntryDate(2020, 1, 1), End: NewEntryDate(2020, 1, 31)}
	f := And(TagIncludes(NewProjectTag("a")), ByDateRange(r))
	e := mustEntry(t, "#a 30m")
	if !f.Matches(e, NewEntryDate(2020, 1, 15)) {
		t.Fatal("expected both conditions to hold")
	}
	if f.Matches(e, NewEntryDate(2020, 2, 1)) {
		t.Fatal("expected date condition to fail the AND")
	}
	e2 := mustEntry(t, "#b 30m")
	if f.Matches(e2, NewEntryDate(2020, 1, 15)) {
		t.Fatal("expected tag condition to fail the AND")
	}
}

func TestFilter_NoFilterMatchesEverything(t *testing.T) {
	f := NoFilter()
	e := mustEntry(t, "#anything 1m")
	if !f.Matches(e, NewEntryDate(1, 1, 1)) {
		t.Fatal("NoFilter must match any entry/date combination")
	}
}

func TestFilter_OutcomeTagParticipatesInIncludeExclude(t *testing.T) {
	shipped := NewOutcomeTag("shipped")
	f := TagIncludes(shipped)
	e := mustEntry(t, "#proj ##shipped 30m")
	if !f.Matches(e, EntryDate{}) {
		t.Fatal("expected include filter to match on outcome tag too")
	}
}

func TestAndAll_EmptyIsNoFilter(t *testing.T) {
	e := mustEntry(t, "#anything 1m")
	if !AndAll().Matches(e, EntryDate{}) {
		t.Fatal("AndAll() with no filters should match everything")
	}
}
