package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snakeplus/internal/config"
	"github.com/vovakirdan/snakeplus/internal/core"
)

// State is the session's lifecycle phase.
type State int

const (
	StateMenu State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns the canonical state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Options selects the rule variant for a session. Difficulty, wrap and maze
// are part of the ruleset key; sound is cosmetic and is not.
type Options struct {
	Difficulty string
	Wrap       bool
	Maze       bool
	Sound      bool
}

// RulesetKey returns the highscore table key for these options, such as
// "NORMAL|wrap=0|maze=1". Each rule variant keeps its own best score.
func (o Options) RulesetKey() string {
	return fmt.Sprintf("%s|wrap=%d|maze=%d", o.Difficulty, boolBit(o.Wrap), boolBit(o.Maze))
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ScoreStore persists per-ruleset best scores. A nil store disables
// persistence without changing session behavior.
type ScoreStore interface {
	Highscore(ruleset string) (int, error)
	SetHighscore(ruleset string, score int) error
}

// Session owns the state machine around rounds: menu, running, paused and
// game over. It consumes semantic actions, advances the active round, and
// persists best scores at round end.
type Session struct {
	cfg   config.Config
	opts  Options
	rng   *rand.Rand
	store ScoreStore

	state     State
	round     *Round
	best      int
	persisted bool
}

// NewSession creates a session in the menu state. The difficulty name is
// normalized; unknown names fall back to NORMAL.
func NewSession(cfg config.Config, opts Options, seed int64, store ScoreStore) *Session {
	if name, err := config.NormalizePreset(opts.Difficulty); err == nil {
		opts.Difficulty = name
	} else {
		opts.Difficulty = config.PresetNormal
	}
	s := &Session{
		cfg:   cfg,
		opts:  opts,
		rng:   rand.New(rand.NewSource(seed)),
		store: store,
		state: StateMenu,
	}
	s.loadBest()
	return s
}

// drainOrder fixes the priority of simultaneous actions within one frame:
// navigation before toggles before steering.
var drainOrder = []core.Action{
	core.ActionBack,
	core.ActionStart,
	core.ActionPause,
	core.ActionResume,
	core.ActionRestart,
	core.ActionToggleDifficulty,
	core.ActionToggleWrap,
	core.ActionToggleMaze,
	core.ActionToggleSound,
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
}

// HandleFrame drains one input frame in a deterministic order.
func (s *Session) HandleFrame(f core.InputFrame) {
	for _, a := range drainOrder {
		if f.Has(a) {
			s.HandleAction(a)
		}
	}
}

// HandleAction routes a single action through the state machine. Actions
// that do not apply in the current state are ignored.
func (s *Session) HandleAction(a core.Action) {
	switch s.state {
	case StateMenu:
		s.handleMenu(a)
	case StateRunning:
		s.handleRunning(a)
	case StatePaused:
		s.handlePaused(a)
	case StateGameOver:
		s.handleGameOver(a)
	}
}

func (s *Session) handleMenu(a core.Action) {
	switch a {
	case core.ActionStart:
		s.startRound()
	case core.ActionToggleDifficulty:
		s.opts.Difficulty = nextPreset(s.opts.Difficulty)
		s.loadBest()
	case core.ActionToggleWrap:
		s.opts.Wrap = !s.opts.Wrap
		s.loadBest()
	case core.ActionToggleMaze:
		s.opts.Maze = !s.opts.Maze
		s.loadBest()
	case core.ActionToggleSound:
		s.opts.Sound = !s.opts.Sound
	}
}

func (s *Session) handleRunning(a core.Action) {
	switch a {
	case core.ActionUp:
		s.round.snake.SetDirection(DirUp)
	case core.ActionDown:
		s.round.snake.SetDirection(DirDown)
	case core.ActionLeft:
		s.round.snake.SetDirection(DirLeft)
	case core.ActionRight:
		s.round.snake.SetDirection(DirRight)
	case core.ActionPause:
		s.state = StatePaused
	case core.ActionBack:
		s.persistScore()
		s.state = StateMenu
	}
}

func (s *Session) handlePaused(a core.Action) {
	switch a {
	case core.ActionResume, core.ActionPause, core.ActionStart:
		s.state = StateRunning
	case core.ActionBack:
		s.persistScore()
		s.state = StateMenu
	}
}

func (s *Session) handleGameOver(a core.Action) {
	switch a {
	case core.ActionRestart, core.ActionStart:
		s.startRound()
	case core.ActionBack:
		s.state = StateMenu
	}
}

// Update advances the active round by a real-time delta. A paused or
// menu-state session does not move; its round and effect timers freeze.
func (s *Session) Update(dt float64) []Event {
	if s.state != StateRunning || s.round == nil {
		return nil
	}
	events := s.round.Update(dt)
	if s.round.Over() {
		s.state = StateGameOver
		s.persistScore()
	}
	return events
}

// Finish persists an in-progress round's score. The platform calls it once
// when the program is about to exit.
func (s *Session) Finish() {
	if s.state == StateRunning || s.state == StatePaused {
		s.persistScore()
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// SoundEnabled reports whether the sound option is on. Sound is cosmetic:
// it is not part of the ruleset key and survives round resets.
func (s *Session) SoundEnabled() bool {
	return s.opts.Sound
}

// startRound builds a fresh world and enters the running state.
func (s *Session) startRound() {
	s.round = newRound(s.cfg, s.opts, s.rng)
	s.persisted = false
	s.state = StateRunning
	s.loadBest()
}

// loadBest refreshes the cached best score for the current ruleset.
func (s *Session) loadBest() {
	s.best = 0
	if s.store == nil {
		return
	}
	if best, err := s.store.Highscore(s.opts.RulesetKey()); err == nil {
		s.best = best
	}
}

// persistScore writes the round's score at most once, and only when it
// beats the stored best. The stored value is re-read first so a concurrent
// session cannot be overwritten with a lower score.
func (s *Session) persistScore() {
	if s.round == nil || s.persisted {
		return
	}
	s.persisted = true
	if s.round.score > s.best {
		s.best = s.round.score
	}
	if s.store == nil {
		return
	}
	stored, err := s.store.Highscore(s.opts.RulesetKey())
	if err != nil {
		return
	}
	if s.round.score > stored {
		s.store.SetHighscore(s.opts.RulesetKey(), s.round.score) //nolint:errcheck // best effort
	}
}

// nextPreset cycles EASY -> NORMAL -> HARD -> EASY.
func nextPreset(name string) string {
	names := config.PresetNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return config.PresetNormal
}
