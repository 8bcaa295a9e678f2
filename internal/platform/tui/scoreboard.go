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

	"github.com/vovakirdan/snakeplus/internal/config"
	"github.com/vovakirdan/snakeplus/internal/game"
	"github.com/vovakirdan/snakeplus/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show ruleset list sidebar
	sidebarWidth       = 24  // Width of ruleset list sidebar
	maxRounds          = 100 // Max rounds to load per ruleset
)

// rulesetInfo pairs a persistence key with its display label.
type rulesetInfo struct {
	key   string
	label string
}

// allRulesets enumerates every option combination that gets its own
// highscore slot, grouped by difficulty.
func allRulesets() []rulesetInfo {
	var out []rulesetInfo
	for _, preset := range config.PresetNames() {
		for _, combo := range []struct {
			wrap, maze bool
			suffix     string
		}{
			{false, false, ""},
			{true, false, " wrap"},
			{false, true, " maze"},
			{true, true, " wrap+maze"},
		} {
			opts := game.Options{Difficulty: preset, Wrap: combo.wrap, Maze: combo.maze}
			out = append(out, rulesetInfo{
				key:   opts.RulesetKey(),
				label: preset + combo.suffix,
			})
		}
	}
	return out
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	NextRuleset key.Binding
	PrevRuleset key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextRuleset, k.PrevRuleset, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextRuleset, k.PrevRuleset},
		{k.Back, k.Quit},
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
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev rules"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next rules"),
		),
		NextRuleset: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next rules"),
		),
		PrevRuleset: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev rules"),
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

// ScoreboardModel is the Bubble Tea model for the highscore browser. It is
// embedded as an overlay in the session model, so instead of quitting the
// program it raises flags the parent reads.
type ScoreboardModel struct {
	rulesets []rulesetInfo
	cursor   int
	store    *storage.Store
	rounds   []storage.RoundRecord
	best     int
	stats    *storage.RulesetStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the given ruleset key.
func NewScoreboardModel(store *storage.Store, width, height int, currentKey string) ScoreboardModel {
	rulesets := allRulesets()

	cursor := 0
	for i, rs := range rulesets {
		if rs.key == currentKey {
			cursor = i
			break
		}
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		rulesets:    rulesets,
		cursor:      cursor,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRounds(rulesets[cursor].key)

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Score", Width: 8},
		{Title: "End", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	height := m.height - 9 // Header, stats line, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
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
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRounds loads the round history, best score, and stats for a ruleset.
func (m *ScoreboardModel) loadRounds(key string) {
	m.rounds = nil
	m.best = 0
	m.stats = nil

	if m.store != nil {
		if rounds, err := m.store.RecentRounds(key, maxRounds); err == nil {
			m.rounds = rounds
		}
		if best, err := m.store.Highscore(key); err == nil {
			m.best = best
		}
		if stats, err := m.store.Stats(key); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded round history.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Score),
			r.EndReason,
			(time.Duration(r.DurationSecs) * time.Second).String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles a message and returns the updated model. Back and quit only
// set flags; the parent model decides what happens next.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextRuleset), key.Matches(msg, m.keys.Right):
			m.cursor = (m.cursor + 1) % len(m.rulesets)
			m.loadRounds(m.rulesets[m.cursor].key)
			return m, nil

		case key.Matches(msg, m.keys.PrevRuleset), key.Matches(msg, m.keys.Left):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.rulesets) - 1
			}
			m.loadRounds(m.rulesets[m.cursor].key)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
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

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("HIGH SCORES - %s", m.rulesets[m.cursor].label)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected ruleset under the table.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return fmt.Sprintf("Best %d", m.best)
	}
	return fmt.Sprintf("Best %d   %d rounds   avg %.0f",
		m.best, m.stats.Rounds, m.stats.AvgScore)
}

// renderWideLayout renders the scoreboard with a sidebar for ruleset selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Rules\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, rs := range m.rulesets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + rs.label))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the selected ruleset with arrows above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.rulesets[m.cursor].label), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds recorded yet.\nPlay with these rules to set a score!")
	}

	return m.table.View()
}

// centerText pads a single line to be centered within the given width.
// Multi-line blocks are centered on their widest line.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	maxLen := 0
	for _, line := range lines {
		if n := lipgloss.Width(line); n > maxLen {
			maxLen = n
		}
	}
	pad := (width - maxLen) / 2
	if pad <= 0 {
		return text
	}
	prefix := strings.Repeat(" ", pad)
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
