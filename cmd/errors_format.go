package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

// logParseErrors writes every located error to the slog logger so a run
// stays greppable by file/line. The human summary banner for the "errors
// only" report variant is built separately by renderErrorsOnlyBanner.
func logParseErrors(errs []*timetrack.ParseError) {
	for _, e := range errs {
		logger.Warn(e.Kind.String(), "file", e.File, "line", e.Line, "message", e.Message)
	}
}

func renderErrorsOnlyBanner(errs []*timetrack.ParseError, noColor bool) string {
	warn := color.New(color.FgYellow, color.Bold).SprintFunc()
	errc := color.New(color.FgRed).SprintFunc()
	if noColor {
		color.NoColor = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s no entries matched; %d issue(s) found while reading input:\n\n", warn("WARN:"), len(errs))
	for _, e := range errs {
		loc := e.File
		if e.Line > 0 {
			loc = fmt.Sprintf("%s:%d", e.File, e.Line)
		}
		fmt.Fprintf(&b, "  %s %s: %s — %s\n", errc("[error]"), loc, e.Kind, e.Message)
	}
	return b.String()
}

func renderEmptyBanner() string {
	return "no entries found for the requested period.\n"
}
