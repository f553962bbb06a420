package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/go-fish/internal/storage"
)

// Journal layout constants
const (
	maxJournalRows = 100 // Max catches to load per view
	journalChrome  = 9   // Rows used by title, tabs, summary and help
)

// JournalView is one page of the catch journal.
type JournalView int

const (
	JournalRecent JournalView = iota
	JournalTop
	JournalSpecies
	journalViewCount
)

// String returns the tab label of the view.
func (v JournalView) String() string {
	switch v {
	case JournalRecent:
		return "Recent"
	case JournalTop:
		return "Top catches"
	case JournalSpecies:
		return "By species"
	default:
		return "Unknown"
	}
}

// JournalKeyMap defines the key bindings for the journal.
type JournalKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back to fishing"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for the catch journal screen.
type JournalModel struct {
	store     *storage.Store
	view      JournalView
	rows      []table.Row
	summary   *storage.Summary
	loadErr   error
	table     table.Model
	help      help.Model
	keys      JournalKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewJournalModel creates a journal screen over the given store. A nil
// store shows an empty journal.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		store:  store,
		keys:   DefaultJournalKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// columns returns the table columns of the current view.
func (m *JournalModel) columns() []table.Column {
	switch m.view {
	case JournalSpecies:
		return []table.Column{
			{Title: "Species", Width: 14},
			{Title: "Catches", Width: 8},
			{Title: "Best", Width: 8},
			{Title: "Heaviest", Width: 10},
		}
	default:
		return []table.Column{
			{Title: "#", Width: 4},
			{Title: "Fish", Width: 12},
			{Title: "Result", Width: 8},
			{Title: "Score", Width: 7},
			{Title: "Weight", Width: 9},
			{Title: "Size", Width: 8},
			{Title: "Time", Width: 14},
		}
	}
}

// createTable builds a table for the current view.
func (m *JournalModel) createTable() table.Model {
	height := m.height - journalChrome
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load refreshes rows and summary from the store.
func (m *JournalModel) load() {
	m.rows = nil
	m.summary = nil
	m.loadErr = nil

	if m.store != nil {
		m.summary, m.loadErr = m.store.Summary()
		if m.loadErr == nil {
			m.rows, m.loadErr = journalRows(m.store, m.view)
		}
	}

	m.table = m.createTable()
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

// journalRows formats one view of the journal as table rows.
func journalRows(store *storage.Store, view JournalView) ([]table.Row, error) {
	if view == JournalSpecies {
		best, err := store.BestBySpecies()
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, len(best))
		for i, b := range best {
			rows[i] = table.Row{
				b.Species,
				fmt.Sprintf("%d", b.Catches),
				fmt.Sprintf("%d", b.BestScore),
				fmt.Sprintf("%.2f lbs", b.Heaviest),
			}
		}
		return rows, nil
	}

	var (
		catches []storage.Catch
		err     error
	)
	if view == JournalTop {
		catches, err = store.TopCatches(maxJournalRows)
	} else {
		catches, err = store.Recent(maxJournalRows)
	}
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, len(catches))
	for i, c := range catches {
		result := "escaped"
		if c.Caught {
			result = "caught"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			c.Species,
			result,
			fmt.Sprintf("%d", c.Score),
			fmt.Sprintf("%.2f lbs", c.Weight),
			fmt.Sprintf("%.1f in", c.Size),
			c.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Next):
			m.view = (m.view + 1) % journalViewCount
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.view = (m.view + journalViewCount - 1) % journalViewCount
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("CATCH JOURNAL", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(dimStyle.Render(m.summaryLine()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the page selector.
func (m JournalModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Padding(0, 1)

	tabs := make([]string, 0, journalViewCount)
	for v := JournalView(0); v < journalViewCount; v++ {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or an empty message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Journal unavailable: " + m.loadErr.Error())
	}
	if len(m.rows) == 0 {
		return emptyStyle.Render("Nothing in the journal yet.\nCast a line and land something!")
	}
	return m.table.View()
}

// summaryLine renders the one-line session summary.
func (m JournalModel) summaryLine() string {
	if m.summary == nil || m.summary.Attempts == 0 {
		return "No attempts this session."
	}
	s := m.summary
	return fmt.Sprintf("%d attempts, %d caught (%.0f%%), best %d, avg %.1f",
		s.Attempts, s.Caught, s.CatchRate()*100, s.HighScore, s.AvgScore)
}

// centerText pads text with spaces to center it in the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// IsGoingBack returns true if the player wants to return to the game.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the player wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal screen.
// Returns true if the player wants to go back to fishing, false if quitting.
func RunJournal(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewJournalModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(JournalModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
