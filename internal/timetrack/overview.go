package timetrack

import (
	"math"
	"sort"
)

// OutputLimitKind distinguishes an unbounded list from a cumulative
// percentage cutoff.
type OutputLimitKind int

const (
	LimitNone OutputLimitKind = iota
	LimitCumulativePercentage
)

// OutputLimit truncates a sorted overview list. The zero value is LimitNone.
type OutputLimit struct {
	Kind      OutputLimitKind
	Threshold float32 // percent in [0,100], meaningful when Kind == LimitCumulativePercentage
}

// NoLimit returns the unbounded OutputLimit.
func NoLimit() OutputLimit { return OutputLimit{Kind: LimitNone} }

// CumulativePercentageThreshold returns an OutputLimit that keeps rows
// until their cumulative percentage first exceeds t.
func CumulativePercentageThreshold(t float32) OutputLimit {
	return OutputLimit{Kind: LimitCumulativePercentage, Threshold: t}
}

// TagTotal is one row of an overview list: a tag label, its accumulated
// minutes, and its share of the report's total minutes as a rounded percent.
type TagTotal struct {
	Label      string
	Minutes    uint64
	Percentage int
}

// OverviewReport is the sums-by-tag report (spec 4.G "Overview report").
type OverviewReport struct {
	TotalMinutes uint64
	ByProject    []TagTotal
	ByOutcome    []TagTotal
	PeriodLabel  string
}

// BuildOverview aggregates tt into project and outcome totals. period is
// nil when no period was requested ("all data"); limit truncates both
// lists independently.
func BuildOverview(tt TrackedTime, limit OutputLimit, period *PeriodRequested) OverviewReport {
	projectMinutes := map[string]uint64{}
	outcomeMinutes := map[string]uint64{}
	var total uint64

	for _, d := range tt.SortedDates() {
		for _, e := range tt.entriesByDate[d] {
			total += uint64(e.Minutes())
			for _, t := range e.Tags() {
				projectMinutes[t.ID] += uint64(e.Minutes())
			}
			if o, ok := e.Outcome(); ok {
				outcomeMinutes[o.ID] += uint64(e.Minutes())
			}
		}
	}

	return OverviewReport{
		TotalMinutes: total,
		ByProject:    toSortedTotals(projectMinutes, total, limit),
		ByOutcome:    toSortedTotals(outcomeMinutes, total, limit),
		PeriodLabel:  periodLabel(period),
	}
}

func toSortedTotals(totals map[string]uint64, grandTotal uint64, limit OutputLimit) []TagTotal {
	rows := make([]TagTotal, 0, len(totals))
	for label, minutes := range totals {
		rows = append(rows, TagTotal{Label: label, Minutes: minutes, Percentage: percentOf(minutes, grandTotal)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Minutes != rows[j].Minutes {
			return rows[i].Minutes > rows[j].Minutes
		}
		return rows[i].Label < rows[j].Label
	})
	return applyLimit(rows, limit)
}

// percentOf rounds 100*part/whole half-up to the nearest integer percent.
func percentOf(part, whole uint64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// applyLimit keeps rows until the cumulative percentage first exceeds the
// threshold, including the row that tips it over (spec S5).
func applyLimit(rows []TagTotal, limit OutputLimit) []TagTotal {
	if limit.Kind != LimitCumulativePercentage {
		return rows
	}
	out := make([]TagTotal, 0, len(rows))
	var cumulative float64
	for _, r := range rows {
		if cumulative > float64(limit.Threshold) {
			break
		}
		out = append(out, r)
		cumulative += float64(r.Percentage)
	}
	return out
}

func periodLabel(p *PeriodRequested) string {
	if p == nil {
		return "all time"
	}
	return DescribePeriod(*p)
}
