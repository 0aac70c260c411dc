// Package tui implements the read-only interactive report browser launched
// by `tt explore`. It renders the same Overview/Breakdown values the text
// and markdown formatters render, it never writes anything back to the
// journal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

// view identifies which panel the explorer is currently showing.
type view int

const (
	viewOverview view = iota
	viewDetail
	viewBreakdown
)

// Data is the read-only snapshot the explorer renders. It is rebuilt by the
// caller (cmd/explore.go) whenever --watch fires, and handed to the running
// Model as a DataMsg (or directly via SetData).
type Data struct {
	Tracked     timetrack.TrackedTime
	PeriodLabel string
	Overview    timetrack.OverviewReport
	Breakdown   timetrack.BreakdownReport
}

// Model is the bubbletea model for the explorer. Unlike the teacher's
// dashboard, it holds no EventWriter and no active/running entry: every
// field here is derived from a Data snapshot and nothing in Update ever
// mutates the journal.
type Model struct {
	data Data

	view     view
	cursor   int
	filter   textinput.Model
	editing  bool
	selected timetrack.Tag

	width, height int
}

// New constructs an explorer seeded with data.
func New(data Data) Model {
	ti := textinput.New()
	ti.Placeholder = "filter tags..."
	ti.CharLimit = 64
	return Model{data: data, view: viewOverview, filter: ti}
}

// SetData replaces the snapshot, used to refresh the view after a --watch tick.
func (m *Model) SetData(data Data) { m.data = data }

func (m Model) Init() tea.Cmd { return nil }

// DataMsg carries a refreshed Data snapshot into the running program, sent
// by the caller's watch loop via tea.Program.Send rather than by mutating
// the model from another goroutine.
type DataMsg Data

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DataMsg:
		m.data = Data(msg)
		m.cursor = 0
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc:
				m.editing = false
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.view = (m.view + 1) % 3
			m.cursor = 0
			return m, nil
		case "/":
			m.editing = true
			m.filter.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			m.cursor++
			return m, nil
		case "enter":
			if m.view == viewOverview {
				if rows := m.filteredRows(); m.cursor < len(rows) {
					m.selected = timetrack.NewProjectTag(rows[m.cursor].Label)
					m.view = viewDetail
					m.cursor = 0
				}
			}
			return m, nil
		case "esc":
			m.filter.SetValue("")
			if m.view == viewDetail {
				m.view = viewOverview
			}
			return m, nil
		}
	}
	return m, nil
}

// filteredRows fuzzy-matches the current filter text against the overview's
// project tag labels, falling back to the unfiltered list when filter is empty.
func (m Model) filteredRows() []timetrack.TagTotal {
	rows := m.data.Overview.ByProject
	query := m.filter.Value()
	if query == "" {
		return rows
	}
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	matches := fuzzy.Find(query, labels)
	out := make([]timetrack.TagTotal, 0, len(matches))
	for _, match := range matches {
		out = append(out, rows[match.Index])
	}
	return out
}

func (m Model) View() string {
	var b strings.Builder
	header := RenderHeader("tt explore", m.data.PeriodLabel, max(m.width, 20))
	b.WriteString(header)
	b.WriteString("\n\n")

	switch m.view {
	case viewOverview:
		b.WriteString(m.viewOverviewBody())
	case viewDetail:
		b.WriteString(m.viewDetailBody())
	case viewBreakdown:
		b.WriteString(m.viewBreakdownBody())
	}

	b.WriteString("\n\n")
	hints := []Hint{
		{Key: "tab", Text: "switch view"},
		{Key: "/", Text: "filter"},
		{Key: "enter", Text: "drill in"},
		{Key: "q", Text: "quit"},
	}
	status := ""
	if m.editing {
		status = m.filter.View()
	}
	b.WriteString(RenderFooter(hints, status, max(m.width, 20)))
	return b.String()
}

func (m Model) viewOverviewBody() string {
	rows := m.filteredRows()
	items := make([]string, 0, len(rows))
	for _, r := range rows {
		items = append(items, fmt.Sprintf("%-24s %6dm  %3d%%", r.Label, r.Minutes, r.Percentage))
	}
	if len(items) == 0 {
		return MutedStyle.Render("no tags match")
	}
	return RenderSection("By project", RenderList(items, m.cursor, 0), 0)
}

func (m Model) viewDetailBody() string {
	detail := timetrack.BuildDetail(m.data.Tracked, m.selected)
	if len(detail.Rows) == 0 {
		return MutedStyle.Render(fmt.Sprintf("no entries for %s", m.selected))
	}
	items := make([]string, 0, len(detail.Rows))
	for _, r := range detail.Rows {
		items = append(items, fmt.Sprintf("%s  %-40s %5dm", r.Date, r.Description, r.Minutes))
	}
	return RenderSection("Detail: "+m.selected.String(), RenderList(items, m.cursor, 0), 0)
}

func (m Model) viewBreakdownBody() string {
	groups := m.data.Breakdown.Groups
	items := make([]string, 0, len(groups))
	for _, g := range groups {
		items = append(items, fmt.Sprintf("%-16s %6dm", g.Label, g.Minutes))
	}
	if len(items) == 0 {
		return MutedStyle.Render("no data in range")
	}
	return RenderSection("Breakdown", RenderList(items, m.cursor, 0), 0)
}
