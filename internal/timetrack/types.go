package timetrack

// Config is the immutable configuration record consumed from the CLI/config
// collaborator (spec 4.I). The core never reads flags or environment
// variables itself; everything it needs arrives pre-resolved here.
type Config struct {
	InputPath     string
	Period        *PeriodRequested
	IncludeTags   []string
	ExcludeTags   []string
	Limit         *OutputLimit
	Breakdown     *BreakdownUnit
	Details       bool
	DetailTag     string
	TodayOverride *EntryDate
}

// BuildFilter composes a Config's include/exclude tag lists and resolved
// period into the Filter algebra used during accumulation. tags are
// resolved by the caller into typed Tag values (both project and outcome
// forms are accepted, matching the "any of its tags" filter semantics).
func BuildFilter(includeTags, excludeTags []Tag, period *DateRange) Filter {
	var parts []Filter
	if len(includeTags) > 0 {
		parts = append(parts, TagIncludes(includeTags...))
	}
	if len(excludeTags) > 0 {
		parts = append(parts, TagExcludes(excludeTags...))
	}
	if period != nil {
		parts = append(parts, ByDateRange(*period))
	}
	return AndAll(parts...)
}

// FileContent is one item produced by the file-source collaborator: a
// file identifier (typically a path) paired with its full text content.
type FileContent struct {
	Name    string
	Content string
}

// FileSource is the contract the core consumes from the file-source
// collaborator (spec 4.I): "produces a sequence of (file-name,
// file-content) pairs". Directory traversal, glob matching, and I/O all
// live on the other side of this interface.
type FileSource interface {
	Files() ([]FileContent, error)
}

// Run executes one full pipeline pass: parse every file from src through
// the filter, and merge the results. It neither classifies the outcome nor
// chooses a report variant; callers pass the returned TrackedTime and
// errors to ClassifyRunResult and call BuildOverview/BuildDetail/
// BuildBreakdown as the Config directs.
func Run(src FileSource, filter Filter) (TrackedTime, []*ParseError, error) {
	files, err := src.Files()
	if err != nil {
		return TrackedTime{}, nil, err
	}

	acc := NewAccumulator()
	for _, f := range files {
		acc.AddFile(f.Name, f.Content, filter)
	}
	return acc.Build(), acc.Errors(), nil
}
