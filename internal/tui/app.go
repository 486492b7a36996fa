package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkmr/fpick/internal/picker"
	"github.com/dkmr/fpick/internal/watch"
)

// Model is the picker TUI. Every tea.Msg is handled on the program's
// single Update goroutine; ranking chunks run inside Update and yield
// by re-queueing a RankStepMsg, so input events interleave between
// chunks and a keystroke can supersede an in-flight ranking at the
// next chunk boundary.
type Model struct {
	input    textinput.Model
	viewport viewport.Model

	session *picker.Session
	watcher *watch.Watcher
	log     *slog.Logger

	results []*picker.WeightedFile
	cursor  int

	width  int
	height int
	sized  bool
	ready  bool

	err error

	// Selected holds the chosen path after the program exits.
	Selected string
}

// NewModel creates the picker model. watcher may be nil.
func NewModel(session *picker.Session, watcher *watch.Watcher, log *slog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter files..."
	ti.Prompt = "> "
	ti.Focus()

	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return Model{input: ti, session: session, watcher: watcher, log: log}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.setupSession}
	if m.watcher != nil {
		cmds = append(cmds, waitForRefresh(m.watcher))
	}
	return tea.Batch(cmds...)
}

// setupSession fills the session caches off the event loop; all later
// cache mutation happens inside Update.
func (m Model) setupSession() tea.Msg {
	m.session.Setup(context.Background())
	return SetupDoneMsg{}
}

// waitForRefresh blocks on the next watcher signal.
func waitForRefresh(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return RefreshMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, m.listHeight())
		m.viewport.SetContent(m.renderResults())
		m.sized = true

	case SetupDoneMsg:
		m.ready = true
		return m, m.startRanking()

	case RankStepMsg:
		return m.handleRankStep(msg.Ranking)

	case RefreshMsg:
		cmds := []tea.Cmd{waitForRefresh(m.watcher)}
		if m.ready {
			m.session.RefreshListed(context.Background())
			cmds = append(cmds, m.startRanking())
		}
		return m, tea.Batch(cmds...)

	case ErrorMsg:
		m.err = msg.Err
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.results) {
			chosen := m.results[m.cursor]
			m.session.RecordOpen(chosen.Path)
			m.Selected = chosen.Path
			return m, tea.Quit
		}
		return m, nil

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			m.syncViewport()
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.results)-1 {
			m.cursor++
			m.syncViewport()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before || !m.ready {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.startRanking())
}

// startRanking supersedes any in-flight ranking and kicks off a new
// one for the current query.
func (m *Model) startRanking() tea.Cmd {
	m.session.Bump()
	r := m.session.NewRanking(m.input.Value())
	return func() tea.Msg { return RankStepMsg{Ranking: r} }
}

// handleRankStep runs one chunk on the event loop. Unfinished rankings
// re-queue themselves; stale or canceled ones are dropped without
// touching the rendered results.
func (m Model) handleRankStep(r *picker.Ranking) (tea.Model, tea.Cmd) {
	if r.Tick != m.session.Tick() {
		return m, nil
	}
	if !r.Step() {
		return m, func() tea.Msg { return RankStepMsg{Ranking: r} }
	}
	if r.Canceled() {
		return m, nil
	}

	results := r.Results()
	if max := m.session.Config().MaxResultsRendered; max > 0 && len(results) > max {
		results = results[:max]
	}
	m.results = results
	m.cursor = 0
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
	return m, nil
}

func (m *Model) syncViewport() {
	m.viewport.SetContent(m.renderResults())
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m Model) listHeight() int {
	h := m.height - 5 // input box and status bar
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.sized {
		return "Loading..."
	}

	input := InputStyle.Width(m.width - 4).Render(m.input.View())
	status := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left,
		input,
		m.viewport.View(),
		status,
	)
}

// renderResults renders the result list with highlight spans applied.
func (m Model) renderResults() string {
	if !m.ready {
		return HelpStyle.Render("Indexing...")
	}
	if len(m.results) == 0 {
		return HelpStyle.Render("No matches")
	}

	var b strings.Builder
	for i, w := range m.results {
		line := renderLine(w)
		if i == m.cursor {
			line = CursorLineStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderLine styles one formatted line by walking its highlight spans.
// Span offsets are byte offsets into the unstyled line, so styling is
// applied segment by segment.
func renderLine(w *picker.WeightedFile) string {
	line := w.Line
	spans := w.Spans()

	var b strings.Builder
	pos := 0
	for _, span := range spans {
		if span.Start < pos || span.End > len(line) {
			continue
		}
		b.WriteString(baseStyle(w, pos).Render(line[pos:span.Start]))
		b.WriteString(spanStyle(span).Render(line[span.Start:span.End]))
		pos = span.End
	}
	b.WriteString(baseStyle(w, pos).Render(line[pos:]))
	return b.String()
}

// baseStyle picks the un-highlighted style for the region starting at
// byte offset pos: muted for the score column, plain for the path.
func baseStyle(w *picker.WeightedFile, pos int) lipgloss.Style {
	if pos < w.PathOffset {
		return ScoreStyle
	}
	return PathStyle
}

func spanStyle(span picker.Span) lipgloss.Style {
	if span.Group == picker.MatchGroup {
		return MatchStyle
	}
	return IconStyle(span.Group)
}

// renderStatusBar renders counts, diagnostics, and key help.
func (m Model) renderStatusBar() string {
	var status string
	switch {
	case m.err != nil:
		status = StatusErrorStyle.Render(m.err.Error())
	case !m.ready:
		status = StatusBarStyle.Render("indexing...")
	case len(m.session.Diagnostics()) > 0:
		status = StatusErrorStyle.Render(m.session.Diagnostics()[0])
	default:
		status = StatusBarStyle.Render(fmt.Sprintf("%d results", len(m.results)))
	}

	help := HelpStyle.Render("enter: open | esc: quit")
	gap := m.width - lipgloss.Width(status) - lipgloss.Width(help) - 2
	if gap < 1 {
		gap = 1
	}
	return status + strings.Repeat(" ", gap) + help
}
