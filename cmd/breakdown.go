package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

var (
	breakdownFlags *reportFlags
	breakdownUnit  string
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown [path]",
	Short: "Aggregate tracked time into a calendar hierarchy",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBreakdown,
}

func init() {
	breakdownFlags = addReportFlags(breakdownCmd)
	addTagFilterFlags(breakdownCmd, breakdownFlags)
	breakdownCmd.Flags().StringVar(&breakdownUnit, "unit", "auto", "granularity: day, week, month, year, or auto")
}

func parseBreakdownUnit(s string) (timetrack.BreakdownUnit, error) {
	switch s {
	case "", "auto":
		return timetrack.BreakdownAuto, nil
	case "day":
		return timetrack.BreakdownDay, nil
	case "week":
		return timetrack.BreakdownWeek, nil
	case "month":
		return timetrack.BreakdownMonth, nil
	case "year":
		return timetrack.BreakdownYear, nil
	default:
		return 0, fmt.Errorf("unsupported --unit %q, expected day, week, month, year, or auto", s)
	}
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	unit, err := parseBreakdownUnit(breakdownUnit)
	if err != nil {
		return err
	}
	period, err := resolvePeriod(breakdownFlags.period)
	if err != nil {
		return err
	}
	format, err := resolveFormat(breakdownFlags.format)
	if err != nil {
		return err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	if !viper.GetBool("theme.color") {
		noColor = true
	}

	inputPath := resolveInputPath(args)
	clock := resolveToday(cmd)
	includes := parseTagFlags(breakdownFlags.includeTags)
	excludes := parseTagFlags(breakdownFlags.excludeTags)

	render := func() error {
		res, err := runPipeline(inputPath, period, clock, includes, excludes)
		if err != nil {
			return err
		}
		logParseErrors(res.errors)

		var b strings.Builder
		switch res.status {
		case timetrack.RunErrorsOnly:
			b.WriteString(renderErrorsOnlyBanner(res.errors, noColor))
		case timetrack.RunEmpty:
			b.WriteString(renderEmptyBanner())
		default:
			breakdown := timetrack.BuildBreakdown(res.tracked, unit, res.span)
			if format == "markdown" {
				writeBreakdownMarkdown(&b, breakdown)
			} else {
				writeBreakdownText(&b, breakdown, noColor)
			}
		}
		fmt.Print(b.String())
		return nil
	}

	if !breakdownFlags.watch {
		return render()
	}
	return watchAndRerun(cmd.Context(), inputPath, render)
}
