package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loadscreen/internal/theme"
	"github.com/vovakirdan/loadscreen/internal/updates"
)

// Messages of one panel load. gen ties them to the load that issued them so
// answers from a superseded load are dropped.
type (
	updatesFetchedMsg struct {
		gen      int
		fallback bool
		items    []updates.Update
		err      error
	}
	updatesFallbackMsg struct{ gen int }
	updatesRefreshMsg  struct{ gen int }
)

// UpdatesPanel is the Server Updates tab: a spinner with the stage text
// while loading, then the update cards.
type UpdatesPanel struct {
	ctx         context.Context
	feed        *updates.Feed
	log         *log.Logger
	spinner     spinner.Model
	status      updates.Status
	items       []updates.Update
	errText     string
	loading     bool
	gen         int
	refresh     time.Duration
	autoRefresh bool
	scroll      int
	width       int
	height      int
}

// NewUpdatesPanel creates a panel over feed. A positive refresh with
// autoRefresh set reloads the feed after every completed load.
func NewUpdatesPanel(ctx context.Context, feed *updates.Feed, refresh time.Duration, autoRefresh bool, logger *log.Logger) UpdatesPanel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	return UpdatesPanel{
		ctx:         ctx,
		feed:        feed,
		log:         logger,
		spinner:     s,
		refresh:     refresh,
		autoRefresh: autoRefresh && refresh > 0,
	}
}

// Start begins a new load, superseding any load in flight.
func (p *UpdatesPanel) Start() tea.Cmd {
	p.gen++
	p.loading = true
	p.errText = ""
	p.status = updates.StatusLoading

	fetch := p.fetch(false)
	if p.feed.HasPrimary() {
		p.status = updates.StatusConnecting
		fetch = p.fetch(true)
	}
	return tea.Batch(p.spinner.Tick, fetch)
}

func (p *UpdatesPanel) fetch(primary bool) tea.Cmd {
	gen, feed, ctx := p.gen, p.feed, p.ctx
	return func() tea.Msg {
		if primary {
			items, err := feed.FetchPrimary(ctx)
			return updatesFetchedMsg{gen: gen, items: items, err: err}
		}
		items, err := feed.FetchFallback(ctx)
		return updatesFetchedMsg{gen: gen, fallback: true, items: items, err: err}
	}
}

// Update handles the panel's own messages and the spinner.
func (p UpdatesPanel) Update(msg tea.Msg) (UpdatesPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case updatesFetchedMsg:
		if msg.gen != p.gen {
			return p, nil
		}
		return p.fetched(msg)

	case updatesFallbackMsg:
		if msg.gen != p.gen || !p.loading {
			return p, nil
		}
		p.status = updates.StatusRetrieving
		return p, p.fetch(false)

	case updatesRefreshMsg:
		if msg.gen != p.gen || p.loading {
			return p, nil
		}
		p.log.Debug("refreshing server updates")
		return p, p.Start()
	}
	return p, nil
}

func (p UpdatesPanel) fetched(msg updatesFetchedMsg) (UpdatesPanel, tea.Cmd) {
	// Anything but a hard primary failure is final.
	if !msg.fallback && msg.err != nil && !errors.Is(msg.err, updates.ErrNoUpdates) {
		p.status = updates.StatusFallback
		gen := p.gen
		return p, tea.Tick(p.feed.FallbackDelay(), func(time.Time) tea.Msg {
			return updatesFallbackMsg{gen: gen}
		})
	}

	p.loading = false
	p.scroll = 0
	if msg.err != nil {
		p.status = updates.StatusFailed
		p.errText = updates.ErrorMessage(msg.err)
		p.items = nil
	} else {
		p.status = updates.StatusReady
		p.items = msg.items
	}

	if !p.autoRefresh {
		return p, nil
	}
	gen := p.gen
	return p, tea.Tick(p.refresh, func(time.Time) tea.Msg {
		return updatesRefreshMsg{gen: gen}
	})
}

// HandleKey handles keys while the tab is active: r retries a finished
// load, up and down scroll the cards.
func (p *UpdatesPanel) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		if !p.loading {
			return p.Start()
		}
	case "up", "k":
		if p.scroll > 0 {
			p.scroll--
		}
	case "down", "j":
		if p.scroll < len(p.items)-1 {
			p.scroll++
		}
	}
	return nil
}

// SetSize sets the area the panel renders into.
func (p *UpdatesPanel) SetSize(width, height int) {
	p.width, p.height = width, height
}

// Status returns the current load stage.
func (p UpdatesPanel) Status() updates.Status { return p.status }

// Loading reports whether a load is in flight.
func (p UpdatesPanel) Loading() bool { return p.loading }

// Items returns the updates shown by the panel.
func (p UpdatesPanel) Items() []updates.Update { return p.items }

// View renders the panel.
func (p UpdatesPanel) View(st theme.Styles) string {
	if p.loading {
		return st.Panel.Render(p.spinner.View() + " " + st.Muted.Render(p.status.Message()))
	}
	if p.errText != "" {
		return st.Panel.Render(st.Error.Render(p.errText) + "\n\n" + st.Help.Render("press r to retry"))
	}

	width := p.width - 4
	var cards []string
	for _, u := range p.items[p.scroll:] {
		cards = append(cards, RenderUpdateCard(u, st, width))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, cards...)
	if p.height > 0 {
		body = clipLines(body, p.height-2)
	}
	return st.Panel.Render(body)
}

// RenderUpdateCard renders one update: icon and title, date and author,
// the formatted content and an attachment count.
func RenderUpdateCard(u updates.Update, st theme.Styles, width int) string {
	var b strings.Builder
	b.WriteString(st.CardIcon.Render(u.Icon()))
	b.WriteString(" ")
	b.WriteString(st.CardTitle.Render(u.Title))
	b.WriteString("\n")
	b.WriteString(st.Meta.Render(updates.FormatDate(u.Date) + " • " + u.Author))
	if content := updates.FormatContent(u.Content, contentStyles(st)); content != "" {
		b.WriteString("\n\n")
		b.WriteString(st.Text.Render(content))
	}
	if n := len(u.Images); n > 0 {
		noun := "attachment"
		if n > 1 {
			noun += "s"
		}
		b.WriteString("\n")
		b.WriteString(st.Muted.Render(fmt.Sprintf("🖼 %d %s", n, noun)))
	}

	card := st.Card
	if width > 0 {
		card = card.Width(width)
	}
	return card.Render(b.String())
}

func contentStyles(st theme.Styles) updates.ContentStyles {
	cs := updates.DefaultContentStyles()
	cs.Bold = st.Emphasis
	cs.Strike = st.Struck
	return cs
}

func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
