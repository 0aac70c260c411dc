package cmd

import (
	"github.com/lhohan/simple-time-tracker-sub000/internal/source"
	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

// pipelineResult bundles the values every report command needs after a run:
// the aggregated data, the resolved span (for BreakdownAuto), and located
// errors merged from both line-level parse failures and file-read failures.
type pipelineResult struct {
	tracked timetrack.TrackedTime
	span    timetrack.DateRange
	period  timetrack.PeriodRequested
	errors  []*timetrack.ParseError
	status  timetrack.RunStatus
}

// runPipeline resolves the period, builds the filter, walks inputPath via
// the file-source collaborator, and accumulates every file through the
// core. It does not call timetrack.Run's convenience wrapper directly
// because that wrapper has no hook for merging the collaborator's own
// read failures into the same error set — so it re-does that little bit of
// wiring itself, via the same Accumulator the wrapper uses internally.
func runPipeline(inputPath string, period timetrack.PeriodRequested, clock timetrack.Clock, includeTags, excludeTags []timetrack.Tag) (pipelineResult, error) {
	span, err := timetrack.ResolvePeriod(period, clock)
	if err != nil {
		return pipelineResult{}, err
	}

	filter := timetrack.BuildFilter(includeTags, excludeTags, &span)

	src := source.NewDirSource(inputPath, ".md")
	files, err := src.Files()
	if err != nil {
		return pipelineResult{}, err
	}

	acc := timetrack.NewAccumulator()
	for _, f := range files {
		acc.AddFile(f.Name, f.Content, filter)
	}
	for _, failed := range src.ReadFailures() {
		acc.AddError(timetrack.ErrorReading(failed).Located(failed, 0))
	}

	tracked := acc.Build()
	errs := acc.Errors()
	return pipelineResult{
		tracked: tracked,
		span:    span,
		period:  period,
		errors:  errs,
		status:  timetrack.ClassifyRunResult(tracked, errs),
	}, nil
}
