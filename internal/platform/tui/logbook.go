package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ohoy/internal/registry"
	"github.com/vovakirdan/ohoy/internal/storage"
)

// Logbook layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the scenario sidebar
	sidebarWidth       = 20  // Width of scenario sidebar
	maxVoyages         = 100 // Max voyages to load
)

// LogbookKeyMap defines the key bindings for the voyage log.
type LogbookKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextScenario key.Binding
	PrevScenario key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LogbookKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScenario, k.PrevScenario, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LogbookKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScenario, k.PrevScenario},
		{k.Back, k.Quit},
	}
}

// DefaultLogbookKeyMap returns default key bindings.
func DefaultLogbookKeyMap() LogbookKeyMap {
	return LogbookKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScenario: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scenario"),
		),
		PrevScenario: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scenario"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LogbookModel is the Bubble Tea model for browsing recorded voyages.
type LogbookModel struct {
	scenarios   []registry.ScenarioInfo
	cursor      int // selected scenario
	store       *storage.Store
	voyages     []storage.Voyage
	stats       map[string]*storage.ScenarioStats
	table       table.Model
	help        help.Model
	keys        LogbookKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewLogbookModel creates a voyage log browser.
func NewLogbookModel(store *storage.Store, width, height int) LogbookModel {
	h := help.New()
	h.ShowAll = false

	m := LogbookModel{
		scenarios:   registry.List(),
		store:       store,
		keys:        DefaultLogbookKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		if stats, err := store.Stats(); err == nil {
			m.stats = stats
		}
	}

	m.table = m.createTable()
	if len(m.scenarios) > 0 {
		m.loadVoyages(m.scenarios[0].ID)
	}
	return m
}

// createTable creates a new table sized to the window.
func (m *LogbookModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Outcome", Width: 10},
		{Title: "Moves", Width: 7},
		{Title: "Islands", Width: 8},
		{Title: "Clues", Width: 6},
		{Title: "Time", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadVoyages loads the voyages of the given scenario.
func (m *LogbookModel) loadVoyages(scenario string) {
	m.voyages = nil
	if m.store != nil {
		if voyages, err := m.store.RecentVoyages(scenario, maxVoyages); err == nil {
			m.voyages = voyages
		}
	}
	m.updateTableRows()
}

// updateTableRows refills the table from the loaded voyages.
func (m *LogbookModel) updateTableRows() {
	rows := make([]table.Row, len(m.voyages))
	for i, v := range m.voyages {
		rows[i] = voyageRow(v)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// voyageRow formats one voyage for the table.
func voyageRow(v storage.Voyage) table.Row {
	return table.Row{
		v.CreatedAt.Format("Jan 02 15:04"),
		v.Outcome,
		fmt.Sprintf("%d", v.Moves),
		fmt.Sprintf("%d/%d", v.Explored, v.Islands),
		fmt.Sprintf("%d", v.Clues),
		v.Duration.Truncate(time.Second).String(),
	}
}

// Init initializes the logbook model.
func (m LogbookModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the logbook.
func (m LogbookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextScenario):
			if len(m.scenarios) > 0 {
				m.cursor = (m.cursor + 1) % len(m.scenarios)
				m.loadVoyages(m.scenarios[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevScenario):
			if len(m.scenarios) > 0 {
				m.cursor = (m.cursor - 1 + len(m.scenarios)) % len(m.scenarios)
				m.loadVoyages(m.scenarios[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the logbook.
func (m LogbookModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "VOYAGE LOG"
	if len(m.scenarios) > 0 {
		title = fmt.Sprintf("VOYAGE LOG - %s", m.scenarios[m.cursor].Title)
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected scenario.
func (m LogbookModel) statsLine() string {
	if len(m.scenarios) == 0 {
		return ""
	}
	st, ok := m.stats[m.scenarios[m.cursor].ID]
	if !ok {
		return "No voyages yet"
	}
	line := fmt.Sprintf("%d voyages, %d treasures found", st.Voyages, st.Found)
	if st.BestMoves > 0 {
		line += fmt.Sprintf(", best %d moves", st.BestMoves)
	}
	return line
}

// renderWideLayout renders the log with a sidebar of scenarios.
func (m LogbookModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Scenarios\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.scenarios {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := s.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the log with the scenario name above the table.
func (m LogbookModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.scenarios) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.scenarios[m.cursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m LogbookModel) renderTableContent() string {
	if len(m.voyages) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No voyages recorded yet.\nSet sail to fill the log!")
	}
	return m.table.View()
}

// Voyages returns the voyages shown for the selected scenario.
func (m LogbookModel) Voyages() []storage.Voyage { return m.voyages }

// Scenario returns the selected scenario ID.
func (m LogbookModel) Scenario() string {
	if len(m.scenarios) == 0 {
		return ""
	}
	return m.scenarios[m.cursor].ID
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m LogbookModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LogbookModel) IsQuitting() bool {
	return m.quitting
}

// RunLogbook runs the voyage log browser.
// Returns true if user wants to go back to the menu, false if quitting.
func RunLogbook(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewLogbookModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LogbookModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
