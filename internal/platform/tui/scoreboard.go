package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/loadscreen/internal/storage"
	"github.com/vovakirdan/loadscreen/internal/theme"
)

const maxScores = 100 // Max scores to load

// scoreView selects which runs the table lists.
type scoreView int

const (
	viewTop scoreView = iota
	viewRecent
)

func (v scoreView) String() string {
	if v == viewRecent {
		return "Recent runs"
	}
	return "Top scores"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "top/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the score history of one game.
type ScoreboardModel struct {
	gameID   string
	title    string
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	loadErr  error
	view     scoreView
	styles   theme.Styles
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard for gameID and loads its scores.
// store may be nil.
func NewScoreboardModel(store *storage.Store, gameID, title string, styles theme.Styles, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		styles: styles,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.Reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "", Width: 2},
		{Title: "Date", Width: 18},
	}

	tableWidth := m.width - 4
	if tableWidth > 40 {
		columns[1].Width = 12
		columns[3].Width = min(tableWidth-24, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.styles.Muted.GetForeground()).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.styles.Selected
	t.SetStyles(s)

	return t
}

// Reload reads the scores and statistics again.
func (m *ScoreboardModel) Reload() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		var err error
		if m.view == viewRecent {
			m.scores, err = m.store.RecentScores(m.gameID, maxScores)
		} else {
			m.scores, err = m.store.TopScores(m.gameID, maxScores)
		}
		if err == nil {
			m.stats, err = m.store.GetGameStats(m.gameID)
		}
		m.loadErr = err
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			recordMark(s),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// recordMark flags runs that set a new high score.
func recordMark(e storage.ScoreEntry) string {
	if e.Record {
		return "★"
	}
	return ""
}

// SetStyles switches the scoreboard to another theme's styles.
func (m *ScoreboardModel) SetStyles(st theme.Styles) {
	m.styles = st
	m.table = m.createTable()
	m.updateTableRows()
}

// SetSize resizes the table.
func (m *ScoreboardModel) SetSize(width, height int) {
	m.width, m.height = width, height
	m.table = m.createTable()
	m.updateTableRows()
	m.help.Width = width
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.Reload()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// HandleKey handles keys while embedded in the loading screen, where
// quitting belongs to the host.
func (m *ScoreboardModel) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return nil
	}
	next, cmd := m.Update(msg)
	*m = next.(ScoreboardModel)
	return cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("%s - %s", strings.ToUpper(m.title), m.view)
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Card.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderStats() string {
	switch {
	case m.loadErr != nil:
		return m.styles.Error.Render("Scores unavailable: " + m.loadErr.Error())
	case m.stats == nil || m.stats.GamesCount == 0:
		return m.styles.Muted.Render("No runs yet")
	}
	return m.styles.Meta.Render(fmt.Sprintf(
		"Runs %d  •  Best %d  •  Average %.0f  •  Last played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"),
	))
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return m.styles.Muted.
			Italic(true).
			Padding(1, 2).
			Render("No scores recorded yet.\nDodge some traffic to set a high score!")
	}
	return m.table.View()
}

// RunScoreboard runs the scoreboard screen on its own.
func RunScoreboard(store *storage.Store, gameID, title string, t theme.Theme, width, height int) error {
	model := NewScoreboardModel(store, gameID, title, theme.NewStyles(t), width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
