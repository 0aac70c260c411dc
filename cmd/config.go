package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

// reportFlags holds the raw flag values shared by overview/detail/breakdown,
// before they are resolved against a Clock and passed to runPipeline.
type reportFlags struct {
	period      string
	includeTags []string
	excludeTags []string
	limit       float32
	details     bool
	format      string
	watch       bool
}

// addReportFlags registers the flags every report command shares. It does
// not register --tag/--exclude-tag: detail.go repurposes --tag as a
// required single-value selector rather than a repeatable filter, so the
// filter flags are opt-in via addTagFilterFlags for the commands that want
// them (overview, breakdown, explore).
func addReportFlags(cmd *cobra.Command) *reportFlags {
	f := &reportFlags{}
	cmd.Flags().StringVar(&f.period, "period", "", "period to report on, e.g. today, last-week, 2024-03, 2024-W12, m-2 (default from config, else this-week)")
	cmd.Flags().Float32Var(&f.limit, "limit", 0, "cumulative percentage threshold to cut off long tails (0 disables)")
	cmd.Flags().BoolVar(&f.details, "details", false, "include per-entry detail under each total")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: text or markdown (default from config, else text)")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "re-run and reprint whenever the input changes")
	return f
}

// addTagFilterFlags registers the repeatable --tag/--exclude-tag filter
// flags onto f's owning command.
func addTagFilterFlags(cmd *cobra.Command, f *reportFlags) {
	cmd.Flags().StringSliceVar(&f.includeTags, "tag", nil, "only include entries carrying this tag (repeatable)")
	cmd.Flags().StringSliceVar(&f.excludeTags, "exclude-tag", nil, "exclude entries carrying this tag (repeatable)")
}

// resolvePeriod turns the --period flag (or the configured default) into a
// PeriodRequested, defaulting to this-week per spec.md §6.
func resolvePeriod(raw string) (timetrack.PeriodRequested, error) {
	if raw == "" {
		raw = viper.GetString("default.period")
	}
	if raw == "" {
		return timetrack.ThisWeek(), nil
	}
	return timetrack.ParsePeriodString(raw)
}

func resolveLimit(raw float32) timetrack.OutputLimit {
	if raw <= 0 {
		raw = float32(viper.GetFloat64("default.limit"))
	}
	if raw <= 0 {
		return timetrack.NoLimit()
	}
	return timetrack.CumulativePercentageThreshold(raw)
}

func resolveFormat(raw string) (string, error) {
	if raw == "" {
		raw = viper.GetString("default.format")
	}
	if raw == "" {
		raw = "text"
	}
	switch raw {
	case "text", "markdown":
		return raw, nil
	default:
		return "", fmt.Errorf("unsupported --format %q, expected text or markdown", raw)
	}
}

func resolveInputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// parseTagFlag classifies a --tag/--exclude-tag value by its prefix: "##foo"
// is an outcome tag, "#foo" or bare "foo" is a project tag, matching the
// parser's own token grammar.
func parseTagFlag(raw string) timetrack.Tag {
	if len(raw) >= 2 && raw[0] == '#' && raw[1] == '#' {
		return timetrack.NewOutcomeTag(raw)
	}
	return timetrack.NewProjectTag(raw)
}

func parseTagFlags(raw []string) []timetrack.Tag {
	out := make([]timetrack.Tag, 0, len(raw))
	for _, r := range raw {
		out = append(out, parseTagFlag(r))
	}
	return out
}
