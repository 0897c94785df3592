package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loadscreen/internal/config"
	"github.com/vovakirdan/loadscreen/internal/core"
	"github.com/vovakirdan/loadscreen/internal/registry"
	"github.com/vovakirdan/loadscreen/internal/storage"
	"github.com/vovakirdan/loadscreen/internal/theme"
	"github.com/vovakirdan/loadscreen/internal/updates"
)

// Tab is one page of the loading screen.
type Tab int

const (
	TabMinigame Tab = iota
	TabUpdates
	TabScores
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabMinigame:
		return "Minigame"
	case TabUpdates:
		return "Server Updates"
	case TabScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

const (
	headerHeight = 3 // Title row, bar row, border
	tabsHeight   = 2
	helpHeight   = 1

	loadStep        = 100 * time.Millisecond
	defaultLoadTime = 30 * time.Second
	maxBarWidth     = 40
)

// loadTickMsg advances the simulated loading progress.
type loadTickMsg struct{}

func loadTickCmd() tea.Cmd {
	return tea.Tick(loadStep, func(time.Time) tea.Msg { return loadTickMsg{} })
}

// LoadScreenOptions are the collaborators of a loading screen.
type LoadScreenOptions struct {
	Game       registry.Game
	Store      *storage.Store   // Score history, may be nil
	Prefs      core.Preferences // Theme and progress style
	Updates    config.UpdatesConfig
	Feed       *updates.Feed // Built from Updates when nil
	Runtime    core.RuntimeConfig
	ServerName string
	LoadTime   time.Duration // Length of the simulated load
	Logger     *log.Logger
	Context    context.Context
}

// LoadScreenModel is the whole loading screen: a header with the server
// name, theme label and loading bar, and the Minigame, Server Updates and
// Scores tabs.
type LoadScreenModel struct {
	serverName string
	log        *log.Logger
	themes     *theme.Manager
	chrome     *chrome
	picker     themePicker
	game       Model
	panel      UpdatesPanel
	scores     ScoreboardModel
	bar        progress.Model
	help       help.Model
	keys       LoadScreenKeyMap
	tab        Tab
	loaded     float64
	loadDelta  float64
	width      int
	height     int
	startCmd   tea.Cmd
	quitting   bool
}

// NewLoadScreenModel builds the loading screen and restores the persisted
// theme.
func NewLoadScreenModel(opts LoadScreenOptions) LoadScreenModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	feed := opts.Feed
	if feed == nil {
		feed = updates.NewFeed(opts.Updates, nil, logger)
	}
	loadTime := opts.LoadTime
	if loadTime <= 0 {
		loadTime = defaultLoadTime
	}

	def := theme.Get(theme.DefaultKey)
	c := newChrome(def, def.Progress)
	themes := theme.NewManager(opts.Prefs, c, logger)
	themes.OnChange(c.onChange)
	themes.Load()

	rt := opts.Runtime
	w, h := rt.ScreenW, rt.ScreenH
	bodyH := bodyHeight(h)
	rt.ScreenH = bodyH

	game := NewModel(opts.Game, opts.Store, rt, logger).WithPalette(&c.palette)
	game.embedded = true

	panel := NewUpdatesPanel(ctx, feed, opts.Updates.RefreshInterval, opts.Updates.AutoRefresh, logger)
	panel.SetSize(w, bodyH)
	startCmd := panel.Start()

	h2 := help.New()
	h2.ShowAll = false
	h2.Width = w

	m := LoadScreenModel{
		serverName: opts.ServerName,
		log:        logger,
		themes:     themes,
		chrome:     c,
		picker:     newThemePicker(),
		game:       game,
		panel:      panel,
		scores:     NewScoreboardModel(opts.Store, opts.Game.ID(), opts.Game.Title(), c.styles, w, bodyH),
		help:       h2,
		keys:       DefaultLoadScreenKeyMap(),
		loadDelta:  float64(loadStep) / float64(loadTime),
		width:      w,
		height:     h,
		startCmd:   startCmd,
	}
	m.bar = newProgressBar(c, barWidth(w))
	return m
}

func bodyHeight(h int) int {
	return max(h-headerHeight-tabsHeight-helpHeight, 0)
}

func barWidth(w int) int {
	return max(min(w/3, maxBarWidth), 10)
}

// newProgressBar builds the loading bar in the current progress style.
func newProgressBar(c *chrome, width int) progress.Model {
	p := c.palette
	var bar progress.Model
	switch c.progress {
	case theme.StyleAngular:
		bar = progress.New(progress.WithSolidFill(p.Primary), progress.WithoutPercentage())
		bar.Full, bar.Empty = '▰', '▱'
	case theme.StyleNeon:
		bar = progress.New(progress.WithGradient(p.Accent, p.SecondaryAccent), progress.WithoutPercentage())
		bar.Full, bar.Empty = '━', '─'
	case theme.StyleMinimal:
		bar = progress.New(progress.WithSolidFill(p.TextSecondary), progress.WithoutPercentage())
		bar.Full, bar.Empty = '─', ' '
	case theme.StyleGradient:
		bar = progress.New(progress.WithGradient(p.Primary, p.Accent), progress.WithoutPercentage())
	default:
		bar = progress.New(progress.WithSolidFill(p.ProgressBar), progress.WithoutPercentage())
	}
	bar.Width = width
	bar.EmptyColor = p.Border
	return bar
}

// Init starts the game, the updates load and the loading bar.
func (m LoadScreenModel) Init() tea.Cmd {
	return tea.Batch(m.game.Init(), m.startCmd, loadTickCmd())
}

// Update handles messages for the loading screen.
func (m LoadScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		next, cmd := m.game.Update(msg)
		m.game = next.(Model)
		return m, cmd

	case loadTickMsg:
		m.loaded = min(m.loaded+m.loadDelta, 1)
		if m.loaded >= 1 {
			m.log.Debug("loading finished")
			return m, nil
		}
		return m, loadTickCmd()
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

func (m LoadScreenModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.IsOpen() {
		chosen, quit := m.picker.HandleKey(msg)
		if quit {
			return m.quit()
		}
		if chosen != "" {
			m.themes.Apply(chosen)
			m.restyle()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Tab):
		m.switchTab((m.tab + 1) % tabCount)
		return m, nil
	case msg.String() == "shift+tab":
		m.switchTab((m.tab + tabCount - 1) % tabCount)
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.picker.Open(m.chrome.theme.Key)
		return m, nil
	case key.Matches(msg, m.keys.Progress):
		m.chrome.progress = m.themes.ToggleProgressStyle()
		m.restyle()
		return m, nil
	}

	switch m.tab {
	case TabMinigame:
		next, cmd := m.game.Update(msg)
		m.game = next.(Model)
		return m, cmd
	case TabUpdates:
		return m, m.panel.HandleKey(msg)
	case TabScores:
		return m, m.scores.HandleKey(msg)
	}
	return m, nil
}

func (m LoadScreenModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *LoadScreenModel) switchTab(t Tab) {
	m.tab = t
	if t == TabScores {
		m.scores.Reload()
	}
}

// restyle rebuilds the parts that copy styles out of the chrome.
func (m *LoadScreenModel) restyle() {
	m.bar = newProgressBar(m.chrome, barWidth(m.width))
	m.scores.SetStyles(m.chrome.styles)
}

func (m LoadScreenModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	bodyH := bodyHeight(msg.Height)

	next, cmd := m.game.Update(tea.WindowSizeMsg{Width: msg.Width, Height: bodyH})
	m.game = next.(Model)
	m.panel.SetSize(msg.Width, bodyH)
	m.scores.SetSize(msg.Width, bodyH)
	m.help.Width = msg.Width
	m.bar.Width = barWidth(msg.Width)
	return m, cmd
}

// Tab returns the active tab.
func (m LoadScreenModel) Tab() Tab { return m.tab }

// Theme returns the applied theme.
func (m LoadScreenModel) Theme() theme.Theme { return m.chrome.theme }

// ProgressStyle returns the loading bar style.
func (m LoadScreenModel) ProgressStyle() theme.ProgressStyle { return m.chrome.progress }

// Loaded returns the simulated loading progress in [0, 1].
func (m LoadScreenModel) Loaded() float64 { return m.loaded }

// View renders the loading screen.
func (m LoadScreenModel) View() string {
	if m.quitting {
		return ""
	}
	st := m.chrome.styles

	var body string
	switch {
	case m.picker.IsOpen():
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.picker.View(st))
	case m.tab == TabMinigame:
		body = m.game.View()
	case m.tab == TabUpdates:
		body = m.panel.View(st)
	case m.tab == TabScores:
		body = m.scores.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		body,
		st.Help.Render(m.help.View(m.keys)),
	)
}

func (m LoadScreenModel) renderHeader() string {
	st := m.chrome.styles

	title := "Joining server"
	if m.serverName != "" {
		title = "Joining " + m.serverName
	}
	label := st.ThemeLabel.Render("◐ " + m.chrome.theme.Label)

	status := fmt.Sprintf("%3.0f%%", m.loaded*100)
	if m.loaded >= 1 {
		status = "Ready"
	}
	statusStyle := st.Muted
	if m.chrome.theme.Glow() {
		statusStyle = st.Title
	}
	bar := m.bar.ViewAs(m.loaded) + " " + statusStyle.Render(status)

	left := lipgloss.JoinVertical(lipgloss.Left, st.Title.Render(title), bar)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(label)-2, 1)
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), label)
	return st.Header.Width(max(m.width, 0)).Render(row)
}

func (m LoadScreenModel) renderTabs() string {
	st := m.chrome.styles
	tabs := make([]string, 0, tabCount)
	for t := TabMinigame; t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, st.TabActive.Render(t.String()))
			continue
		}
		tabs = append(tabs, st.TabInactive.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

// RunLoadScreen runs the loading screen in the current terminal.
func RunLoadScreen(opts LoadScreenOptions) error {
	p := tea.NewProgram(
		NewLoadScreenModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
