package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

var (
	detailFlags *reportFlags
	detailTag   string
)

var detailCmd = &cobra.Command{
	Use:   "detail [path]",
	Short: "List every entry carrying a given tag",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetail,
}

func init() {
	detailFlags = addReportFlags(detailCmd)
	detailCmd.Flags().StringVar(&detailTag, "tag", "", "tag to show entries for (required)")
	_ = detailCmd.MarkFlagRequired("tag")
}

func runDetail(cmd *cobra.Command, args []string) error {
	if detailTag == "" {
		return fmt.Errorf("detail requires --tag")
	}
	period, err := resolvePeriod(detailFlags.period)
	if err != nil {
		return err
	}
	format, err := resolveFormat(detailFlags.format)
	if err != nil {
		return err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	if !viper.GetBool("theme.color") {
		noColor = true
	}

	inputPath := resolveInputPath(args)
	clock := resolveToday(cmd)
	includes := parseTagFlags(detailFlags.includeTags)
	excludes := parseTagFlags(detailFlags.excludeTags)
	tag := parseTagFlag(detailTag)

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
			detail := timetrack.BuildDetail(res.tracked, tag)
			if format == "markdown" {
				writeDetailMarkdown(&b, detail)
			} else {
				writeDetailText(&b, detail, noColor)
			}
		}
		fmt.Print(b.String())
		return nil
	}

	if !detailFlags.watch {
		return render()
	}
	return watchAndRerun(cmd.Context(), inputPath, render)
}
