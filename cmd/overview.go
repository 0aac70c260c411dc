package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lhohan/simple-time-tracker-sub000/internal/source"
	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

var overviewFlags *reportFlags

var overviewCmd = &cobra.Command{
	Use:   "overview [path]",
	Short: "Summarize tracked time by project and outcome",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOverview,
}

func init() {
	overviewFlags = addReportFlags(overviewCmd)
	addTagFilterFlags(overviewCmd, overviewFlags)
}

func runOverview(cmd *cobra.Command, args []string) error {
	period, err := resolvePeriod(overviewFlags.period)
	if err != nil {
		return err
	}
	format, err := resolveFormat(overviewFlags.format)
	if err != nil {
		return err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	if !viper.GetBool("theme.color") {
		noColor = true
	}

	inputPath := resolveInputPath(args)
	clock := resolveToday(cmd)
	includes := parseTagFlags(overviewFlags.includeTags)
	excludes := parseTagFlags(overviewFlags.excludeTags)

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
			overview := timetrack.BuildOverview(res.tracked, resolveLimit(overviewFlags.limit), &period)
			if format == "markdown" {
				writeOverviewMarkdown(&b, overview)
			} else {
				writeOverviewText(&b, overview, noColor)
			}
		}
		fmt.Print(b.String())
		return nil
	}

	if !overviewFlags.watch {
		return render()
	}
	return watchAndRerun(cmd.Context(), inputPath, render)
}

// watchAndRerun re-invokes render every time inputPath changes, until the
// context is canceled (e.g. Ctrl-C). The core stays synchronous; only the
// outer loop is driven by the filesystem event stream.
func watchAndRerun(ctx context.Context, inputPath string, render func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	w := source.NewWatcher(inputPath, 0, logger)
	changes := w.Changes(ctx)

	if err := render(); err != nil {
		return err
	}
	for range changes {
		if err := render(); err != nil {
			logger.Error("watch: render failed", "err", err)
		}
	}
	return nil
}
