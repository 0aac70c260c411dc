package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

func sampleData() Data {
	overview := timetrack.OverviewReport{
		TotalMinutes: 90,
		PeriodLabel:  "this week",
		ByProject: []timetrack.TagTotal{
			{Label: "acme", Minutes: 60, Percentage: 67},
			{Label: "brightwave", Minutes: 30, Percentage: 33},
		},
	}
	return Data{PeriodLabel: overview.PeriodLabel, Overview: overview}
}

func TestExplorer_TabCyclesViews(t *testing.T) {
	m := New(sampleData())
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewDetail, model.(Model).view)
}

func TestExplorer_FilterNarrowsRows(t *testing.T) {
	m := New(sampleData())
	m.filter.SetValue("brig")
	rows := m.filteredRows()
	require.Len(t, rows, 1)
	require.Equal(t, "brightwave", rows[0].Label)
}

func TestExplorer_EnterDrillsIntoDetail(t *testing.T) {
	m := New(sampleData())
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm := model.(Model)
	require.Equal(t, viewDetail, mm.view)
	require.Equal(t, timetrack.NewProjectTag("acme"), mm.selected)
}

func TestExplorer_QQuits(t *testing.T) {
	m := New(sampleData())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}
