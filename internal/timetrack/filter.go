package timetrack

// FilterKind identifies which predicate a Filter evaluates.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterTagIncludes
	FilterTagExcludes
	FilterDateRange
	FilterAnd
)

// Filter is the small filter algebra entries are evaluated against during
// accumulation. Filter values are immutable; compose with And or AndAll.
// The zero value (FilterNone) matches everything, and is the representation
// used for "no filter at all" at the call boundary.
type Filter struct {
	kind      FilterKind
	tags      map[Tag]struct{}
	dateRange DateRange
	left      *Filter
	right     *Filter
}

// NoFilter returns the neutral filter: matches every entry.
func NoFilter() Filter { return Filter{kind: FilterNone} }

func tagSet(tags []Tag) map[Tag]struct{} {
	set := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// TagIncludes matches an entry if any of its tags (project or outcome) is in tags.
func TagIncludes(tags ...Tag) Filter {
	return Filter{kind: FilterTagIncludes, tags: tagSet(tags)}
}

// TagExcludes matches an entry if none of its tags (project or outcome) is in tags.
func TagExcludes(tags ...Tag) Filter {
	return Filter{kind: FilterTagExcludes, tags: tagSet(tags)}
}

// ByDateRange matches an entry whose assigned date falls within r.
func ByDateRange(r DateRange) Filter {
	return Filter{kind: FilterDateRange, dateRange: r}
}

// And composes a and b: the result matches iff both match. And(NoFilter(), f) == f.
func And(a, b Filter) Filter {
	if a.kind == FilterNone {
		return b
	}
	if b.kind == FilterNone {
		return a
	}
	return Filter{kind: FilterAnd, left: &a, right: &b}
}

// AndAll left-folds fs with And; an empty list yields NoFilter().
func AndAll(fs ...Filter) Filter {
	result := NoFilter()
	for _, f := range fs {
		result = And(result, f)
	}
	return result
}

// Matches evaluates the filter against an entry and the date it was assigned.
func (f Filter) Matches(e TimeEntry, d EntryDate) bool {
	switch f.kind {
	case FilterNone:
		return true
	case FilterTagIncludes:
		return f.anyTagIn(e)
	case FilterTagExcludes:
		return !f.anyTagIn(e)
	case FilterDateRange:
		return f.dateRange.Contains(d)
	case FilterAnd:
		return f.left.Matches(e, d) && f.right.Matches(e, d)
	default:
		return true
	}
}

func (f Filter) anyTagIn(e TimeEntry) bool {
	for _, t := range e.tags {
		if _, ok := f.tags[t]; ok {
			return true
		}
	}
	if e.outcome != nil {
		if _, ok := f.tags[*e.outcome]; ok {
			return true
		}
	}
	return false
}
