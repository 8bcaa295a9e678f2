package game

// EffectStatus reports one effect slot for the HUD: whether it is running
// and how much of its duration remains.
type EffectStatus struct {
	Kind      PowerUpKind
	Active    bool
	Remaining float64
	Duration  float64
}

// Snapshot is a read-only copy of everything the renderer needs. All slices
// are copies, so the platform may hold a snapshot across frames while the
// session keeps mutating.
type Snapshot struct {
	State      State
	Difficulty string
	Wrap       bool
	Maze       bool
	Sound      bool
	RulesetKey string

	GridW int
	GridH int

	Snake     []Point // head first
	Dir       Direction
	Obstacles []Point
	Foods     []Food
	PowerUps  []PowerUp

	Score       int
	Best        int
	NormalEaten int

	Speed     float64
	BaseSpeed float64
	MaxSpeed  float64
	Elapsed   float64

	Effects   []EffectStatus // one entry per power-up kind
	EndReason Outcome
}

// Snapshot captures the session state for rendering. In the menu state the
// world fields stay zero.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Difficulty: s.opts.Difficulty,
		Wrap:       s.opts.Wrap,
		Maze:       s.opts.Maze,
		Sound:      s.opts.Sound,
		RulesetKey: s.opts.RulesetKey(),
		GridW:      s.cfg.Grid.Width,
		GridH:      s.cfg.Grid.Height,
		Best:       s.best,
	}

	r := s.round
	if r == nil {
		return snap
	}

	snap.Snake = append([]Point(nil), r.snake.body...)
	snap.Dir = r.snake.Dir()
	snap.Obstacles = make([]Point, 0, len(r.obstacles))
	for c := range r.obstacles {
		snap.Obstacles = append(snap.Obstacles, c)
	}
	snap.Foods = append([]Food(nil), r.foods...)
	snap.PowerUps = append([]PowerUp(nil), r.powerups...)

	snap.Score = r.score
	snap.NormalEaten = r.normalEaten
	snap.Speed = r.clock.Speed()
	snap.BaseSpeed = r.clock.Base()
	snap.MaxSpeed = r.clock.Max()
	snap.Elapsed = r.elapsed
	snap.EndReason = r.endReason

	for _, kind := range []PowerUpKind{PowerSlow, PowerGhost, PowerMulti} {
		snap.Effects = append(snap.Effects, EffectStatus{
			Kind:      kind,
			Active:    r.effects.Active(kind),
			Remaining: r.effects.Remaining(kind, r.elapsed),
			Duration:  r.effects.Duration(kind),
		})
	}
	return snap
}
