package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakeplus/internal/config"
	"github.com/vovakirdan/snakeplus/internal/core"
	"github.com/vovakirdan/snakeplus/internal/game"
	"github.com/vovakirdan/snakeplus/internal/platform/audio"
	"github.com/vovakirdan/snakeplus/internal/storage"
)

// maxFrameDelta caps the simulated time per tick. A suspended terminal can
// stall ticks for seconds; feeding that whole gap to the session would teleport
// the snake across the grid.
const maxFrameDelta = 0.25

// Model is the Bubble Tea model that drives a session in a terminal. It owns
// the input frame, the render buffer, and the tick loop; all rules live in the
// session.
type Model struct {
	session *game.Session
	screen  *core.Screen
	store   *storage.Store
	sounds  *audio.Player
	keys    *KeyMapper
	config  core.RuntimeConfig

	frame     core.InputFrame
	lastTick  time.Time
	prevState game.State

	scoreboard *ScoreboardModel

	gridW, gridH int
	tooSmall     bool
	recorded     bool
	quitting     bool
}

// NewModel builds a model around a fresh session. A nil store disables
// highscore loading and round recording; a nil sounds player disables audio.
func NewModel(gameCfg config.Config, opts game.Options, rt core.RuntimeConfig, store *storage.Store, sounds *audio.Player) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	// A nil *storage.Store must become a nil interface, not a typed nil that
	// the session would happily call methods on.
	var scores game.ScoreStore
	if store != nil {
		scores = store
	}

	return Model{
		session:   game.NewSession(gameCfg, opts, rt.Seed, scores),
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:     store,
		sounds:    sounds,
		keys:      NewKeyMapper(),
		config:    rt,
		frame:     core.NewInputFrame(),
		prevState: game.StateMenu,
		gridW:     gameCfg.Grid.Width,
		gridH:     gameCfg.Grid.Height,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey routes a key press. While the scoreboard overlay is open it gets
// every key; otherwise keys become semantic actions for the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		sb, cmd := m.scoreboard.Update(msg)
		m.scoreboard = &sb
		if sb.quitting {
			return m.quit()
		}
		if sb.goingBack {
			m.scoreboard = nil
		}
		return m, cmd
	}

	if msg.String() == "tab" && m.session.State() == game.StateMenu {
		sb := NewScoreboardModel(m.store, m.screen.Width(), m.screen.Height(), m.session.Snapshot().RulesetKey)
		m.scoreboard = &sb
		return m, nil
	}

	// When the window cannot fit the playfield only quitting makes sense;
	// everything else waits for a resize.
	if m.tooSmall && m.session.State() != game.StateMenu {
		if _, isQuit := m.keys.Map(msg, m.session.State()); isQuit {
			return m.quit()
		}
		return m, nil
	}

	if m.keys.MapToFrame(msg, m.session.State(), &m.frame) {
		return m.quit()
	}
	return m, nil
}

// handleResize adjusts the render buffer and pauses the round if the playfield
// no longer fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)

	reqW, reqH := requiredScreen(m.gridW, m.gridH)
	m.tooSmall = msg.Width < reqW || msg.Height < reqH
	if m.tooSmall && m.session.State() == game.StateRunning {
		m.session.HandleAction(core.ActionPause)
	}

	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = &sb
	}
	return m, nil
}

// handleTick advances the session by the real elapsed time, dispatches the
// frame's input, and reacts to emitted events. The tick is always re-armed,
// even under the scoreboard overlay, so play resumes with a live clock.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	m.lastTick = now

	prev := m.prevState
	m.session.HandleFrame(m.frame)
	m.frame.Clear()

	// A round started under a too-small window pauses right away, same as
	// one that was running when the window shrank.
	if m.tooSmall && m.session.State() == game.StateRunning {
		m.session.HandleAction(core.ActionPause)
	}

	state := m.session.State()
	if (state == game.StateRunning || state == game.StatePaused) &&
		(prev == game.StateMenu || prev == game.StateGameOver) {
		m.recorded = false
	}
	if state == game.StateMenu && (prev == game.StateRunning || prev == game.StatePaused) {
		m.recordRound(m.session.Snapshot(), "quit")
	}

	events := m.session.Update(dt)
	m.playEvents(events)
	for _, ev := range events {
		if ev == game.EventGameOver {
			snap := m.session.Snapshot()
			m.recordRound(snap, snap.EndReason.String())
		}
	}

	m.prevState = m.session.State()
	return m, tickCmd(m.config.TickRate)
}

// playEvents maps session events to sound blips. Audio failures were already
// swallowed at init; here a disabled player is simply skipped.
func (m Model) playEvents(events []game.Event) {
	if m.sounds == nil || !m.session.SoundEnabled() {
		return
	}
	for _, ev := range events {
		switch ev {
		case game.EventAteNormal:
			m.sounds.PlayEat()
		case game.EventAteGold:
			m.sounds.PlayGold()
		case game.EventAtePoison:
			m.sounds.PlayPoison()
		case game.EventPowerUp:
			m.sounds.PlayPowerUp()
		case game.EventGameOver:
			m.sounds.PlayGameOver()
		}
	}
}

// recordRound stores one finished round. Rounds that never ran (zero elapsed
// time) and double reports of the same round are skipped.
func (m *Model) recordRound(snap game.Snapshot, reason string) {
	if m.store == nil || m.recorded || snap.Elapsed == 0 {
		return
	}
	m.recorded = true
	//nolint:errcheck // Best-effort history write
	m.store.RecordRound(storage.RoundRecord{
		Ruleset:      snap.RulesetKey,
		Score:        snap.Score,
		DurationSecs: int(snap.Elapsed),
		EndReason:    reason,
	})
}

// quit finalizes the session so an in-progress score still reaches the store,
// then tells Bubble Tea to exit.
func (m Model) quit() (tea.Model, tea.Cmd) {
	state := m.session.State()
	if state == game.StateRunning || state == game.StatePaused {
		snap := m.session.Snapshot()
		m.session.Finish()
		m.recordRound(snap, "quit")
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	Draw(m.session.Snapshot(), m.screen, m.tooSmall)
	return RenderScreen(m.screen)
}

// Run starts the snake session in the local terminal and blocks until the
// player quits.
func Run(gameCfg config.Config, opts game.Options, rt core.RuntimeConfig, store *storage.Store, sounds *audio.Player) error {
	model := NewModel(gameCfg, opts, rt, store, sounds)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}
