package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

func TestRunPipeline_AggregatesJournalDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day.md"),
		[]byte("## TT 2024-03-04\n- #acme 1h ##done shipped the thing\n"), 0o644))

	res, err := runPipeline(dir, timetrack.DayPeriod(timetrack.NewEntryDate(2024, 3, 4)), timetrack.SystemClock, nil, nil)
	require.NoError(t, err)
	require.Equal(t, timetrack.RunHasData, res.status)
	require.Equal(t, uint64(60), timetrack.BuildOverview(res.tracked, timetrack.NoLimit(), nil).TotalMinutes)
}

func TestRunPipeline_EmptyDirectoryIsRunEmpty(t *testing.T) {
	dir := t.TempDir()
	res, err := runPipeline(dir, timetrack.ThisYear(), timetrack.SystemClock, nil, nil)
	require.NoError(t, err)
	require.Equal(t, timetrack.RunEmpty, res.status)
}

func TestRunPipeline_UnreadableFileSurfacesAsErrorReading(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte("## TT 2024-01-01\n- #a 1m\n"), 0o644))
	require.NoError(t, os.Chmod(bad, 0o000))
	defer os.Chmod(bad, 0o644)
	if os.Getuid() == 0 {
		t.Skip("running as root, chmod 000 does not block reads")
	}

	res, err := runPipeline(dir, timetrack.ThisYear(), timetrack.SystemClock, nil, nil)
	require.NoError(t, err)
	require.Equal(t, timetrack.RunErrorsOnly, res.status)
	require.Len(t, res.errors, 1)
	require.Equal(t, timetrack.KindErrorReading, res.errors[0].Kind)
}

func TestRunPipeline_InvalidPeriodPropagates(t *testing.T) {
	dir := t.TempDir()
	_, err := runPipeline(dir, timetrack.MonthOf(2024, 13), timetrack.SystemClock, nil, nil)
	require.Error(t, err)
}
