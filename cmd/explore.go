package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lhohan/simple-time-tracker-sub000/internal/source"
	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
	"github.com/lhohan/simple-time-tracker-sub000/internal/tui"
)

var exploreFlags *reportFlags

var exploreCmd = &cobra.Command{
	Use:   "explore [path]",
	Short: "Browse overview, detail, and breakdown reports interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplore,
}

func init() {
	exploreFlags = addReportFlags(exploreCmd)
	addTagFilterFlags(exploreCmd, exploreFlags)
}

func runExplore(cmd *cobra.Command, args []string) error {
	period, err := resolvePeriod(exploreFlags.period)
	if err != nil {
		return err
	}
	inputPath := resolveInputPath(args)
	clock := resolveToday(cmd)
	includes := parseTagFlags(exploreFlags.includeTags)
	excludes := parseTagFlags(exploreFlags.excludeTags)

	loadData := func() (tui.Data, error) {
		res, err := runPipeline(inputPath, period, clock, includes, excludes)
		if err != nil {
			return tui.Data{}, err
		}
		logParseErrors(res.errors)
		overview := timetrack.BuildOverview(res.tracked, timetrack.NoLimit(), &period)
		breakdown := timetrack.BuildBreakdown(res.tracked, timetrack.BreakdownAuto, res.span)
		return tui.Data{
			Tracked:     res.tracked,
			PeriodLabel: overview.PeriodLabel,
			Overview:    overview,
			Breakdown:   breakdown,
		}, nil
	}

	data, err := loadData()
	if err != nil {
		return err
	}
	model := tui.New(data)

	program := tea.NewProgram(model, tea.WithAltScreen())

	if exploreFlags.watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go watchExploreReload(ctx, program, inputPath, loadData)
	}

	_, err = program.Run()
	return err
}

// watchExploreReload rebuilds the report on every filesystem change and
// pushes it to the running program as a tea.Msg, rather than reaching into
// the model directly from another goroutine.
func watchExploreReload(ctx context.Context, program *tea.Program, inputPath string, loadData func() (tui.Data, error)) {
	w := source.NewWatcher(inputPath, 0, logger)
	for range w.Changes(ctx) {
		data, err := loadData()
		if err != nil {
			logger.Error("watch: reload failed", "err", err)
			continue
		}
		program.Send(tui.DataMsg(data))
	}
}
