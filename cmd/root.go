package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

var cfgFile string

// runID correlates every slog line emitted by one invocation of tt, so
// warnings from a multi-file ingest can be grepped out of a terminal
// transcript that interleaves several runs.
var runID = uuid.NewString()

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "tt",
	Short: "tt — a fast, local time-tracking note analyzer",
	Long:  "Parses a markdown-dialect daily journal into time entries and reports on them by project, outcome, and calendar period.",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tt/config.yaml)")
	rootCmd.PersistentFlags().String("today", "", "override today's date (YYYY-MM-DD), mirrors TT_TODAY")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(completionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		dir := filepath.Join(home, ".tt")
		_ = os.MkdirAll(dir, 0o755)
		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}
	viper.SetDefault("default.period", "this-week")
	viper.SetDefault("default.limit", float64(0))
	viper.SetDefault("default.format", "text")
	viper.SetDefault("theme.color", true)
	// Safe read; if missing, proceed with defaults.
	_ = viper.ReadInConfig()
}

func initLogger() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger = slog.New(handler).With("run_id", runID)
}

// resolveToday establishes the core's notion of "today" for this
// invocation: the --today flag wins, then TT_TODAY, then the system clock.
// The core itself never reads either; it only ever sees the resulting Clock.
func resolveToday(cmd *cobra.Command) timetrack.Clock {
	if flag, _ := cmd.Flags().GetString("today"); flag != "" {
		if d, ok := timetrack.ParseEntryDate(flag); ok {
			return timetrack.FixedClock(d)
		}
		cobra.CheckErr("invalid --today value, expected YYYY-MM-DD: " + flag)
	}
	if env := os.Getenv("TT_TODAY"); env != "" {
		if d, ok := timetrack.ParseEntryDate(env); ok {
			return timetrack.FixedClock(d)
		}
		cobra.CheckErr("invalid TT_TODAY value, expected YYYY-MM-DD: " + env)
	}
	return timetrack.SystemClock
}
