package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

// formatMinutes renders a minute count the way the teacher's report
// formatter renders durations: "Xh Ym", omitting a zero component except
// when the whole value is zero.
func formatMinutes(m uint64) string {
	h, mm := m/60, m%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", mm)
	case mm == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, mm)
	}
}

func writeOverviewText(w *strings.Builder, r timetrack.OverviewReport, noColor bool) {
	bold := color.New(color.Bold).SprintFunc()
	if noColor {
		color.NoColor = true
	}

	fmt.Fprintf(w, "%s  %s  (total %s)\n\n", bold("Overview"), r.PeriodLabel, formatMinutes(r.TotalMinutes))

	writeTagTotalsTable(w, "By project", r.ByProject)
	w.WriteString("\n")
	writeTagTotalsTable(w, "By outcome", r.ByOutcome)
}

func writeTagTotalsTable(w *strings.Builder, title string, rows []timetrack.TagTotal) {
	fmt.Fprintf(w, "%s\n", title)
	if len(rows) == 0 {
		w.WriteString("  (none)\n")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Tag", "Time", "%"})
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold},
		tablewriter.Colors{tablewriter.Bold},
		tablewriter.Colors{tablewriter.Bold},
	)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range rows {
		table.Append([]string{row.Label, formatMinutes(row.Minutes), fmt.Sprintf("%d%%", row.Percentage)})
	}
	table.Render()
}

func writeDetailText(w *strings.Builder, r timetrack.DetailReport, noColor bool) {
	bold := color.New(color.Bold).SprintFunc()
	if noColor {
		color.NoColor = true
	}
	fmt.Fprintf(w, "%s  %s\n\n", bold("Detail for"), r.Tag.String())

	if len(r.Rows) == 0 {
		w.WriteString("(no entries)\n")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Description", "Time"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	var total uint64
	for _, row := range r.Rows {
		table.Append([]string{row.Date.String(), row.Description, formatMinutes(uint64(row.Minutes))})
		total += uint64(row.Minutes)
	}
	table.SetFooter([]string{"", "Total", formatMinutes(total)})
	table.Render()
}

func writeBreakdownText(w *strings.Builder, r timetrack.BreakdownReport, noColor bool) {
	bold := color.New(color.Bold).SprintFunc()
	if noColor {
		color.NoColor = true
	}
	fmt.Fprintf(w, "%s  (%s)\n\n", bold("Breakdown"), breakdownUnitLabel(r.Unit))

	for _, g := range r.Groups {
		writeBreakdownGroup(w, g, 0)
	}
}

func writeBreakdownGroup(w *strings.Builder, g timetrack.BreakdownGroup, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%-24s %s\n", indent, g.Label, formatMinutes(uint64(g.Minutes)))
	for _, c := range g.Children {
		writeBreakdownGroup(w, c, depth+1)
	}
}

func breakdownUnitLabel(u timetrack.BreakdownUnit) string {
	switch u {
	case timetrack.BreakdownDay:
		return "by day"
	case timetrack.BreakdownWeek:
		return "by week"
	case timetrack.BreakdownMonth:
		return "by month"
	default:
		return "by year"
	}
}
