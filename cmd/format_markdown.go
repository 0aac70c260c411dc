package cmd

import (
	"fmt"
	"strings"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

// The markdown renderer mirrors the text renderer's structure (headings,
// then a table per section) but emits plain pipe tables instead of relying
// on tablewriter's box-drawing, since a markdown report is meant to be
// pasted into a note, not a terminal.

func writeOverviewMarkdown(w *strings.Builder, r timetrack.OverviewReport) {
	fmt.Fprintf(w, "# Overview — %s\n\n", r.PeriodLabel)
	fmt.Fprintf(w, "Total: **%s**\n\n", formatMinutes(r.TotalMinutes))

	fmt.Fprintf(w, "## By project\n\n")
	writeTagTotalsMarkdown(w, r.ByProject)
	fmt.Fprintf(w, "\n## By outcome\n\n")
	writeTagTotalsMarkdown(w, r.ByOutcome)
}

func writeTagTotalsMarkdown(w *strings.Builder, rows []timetrack.TagTotal) {
	if len(rows) == 0 {
		w.WriteString("_(none)_\n")
		return
	}
	w.WriteString("| Tag | Time | % |\n|---|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(w, "| %s | %s | %d%% |\n", row.Label, formatMinutes(row.Minutes), row.Percentage)
	}
}

func writeDetailMarkdown(w *strings.Builder, r timetrack.DetailReport) {
	fmt.Fprintf(w, "# Detail — %s\n\n", r.Tag.String())
	if len(r.Rows) == 0 {
		w.WriteString("_(no entries)_\n")
		return
	}
	w.WriteString("| Date | Description | Time |\n|---|---|---|\n")
	var total uint64
	for _, row := range r.Rows {
		fmt.Fprintf(w, "| %s | %s | %s |\n", row.Date, row.Description, formatMinutes(uint64(row.Minutes)))
		total += uint64(row.Minutes)
	}
	fmt.Fprintf(w, "| | **Total** | **%s** |\n", formatMinutes(total))
}

func writeBreakdownMarkdown(w *strings.Builder, r timetrack.BreakdownReport) {
	fmt.Fprintf(w, "# Breakdown — %s\n\n", breakdownUnitLabel(r.Unit))
	for _, g := range r.Groups {
		writeBreakdownGroupMarkdown(w, g, 2)
	}
}

func writeBreakdownGroupMarkdown(w *strings.Builder, g timetrack.BreakdownGroup, headingLevel int) {
	fmt.Fprintf(w, "%s %s — %s\n\n", strings.Repeat("#", headingLevel), g.Label, formatMinutes(uint64(g.Minutes)))
	if len(g.Children) == 0 {
		return
	}
	w.WriteString("| Period | Time |\n|---|---|\n")
	for _, c := range g.Children {
		fmt.Fprintf(w, "| %s | %s |\n", c.Label, formatMinutes(uint64(c.Minutes)))
	}
	w.WriteString("\n")
}
