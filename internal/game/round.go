package game

import (
	"math/rand"

	"github.com/vovakirdan/snakeplus/internal/config"
)

// Event flags a notable moment inside an update for the platform
// collaborators (sound blips, round recording). Events flow one way: the
// renderer and audio player consume them and feed nothing back.
type Event int

const (
	EventAteNormal Event = iota
	EventAteGold
	EventAtePoison
	EventPowerUp
	EventGameOver
)

// Round holds the complete world state of one round. It is built wholesale
// by newRound and thrown away on reset, so a restart can never leave partial
// state behind.
type Round struct {
	grid    Grid
	params  config.DifficultyParams
	scoring config.ScoringConfig
	wrap    bool

	snake     *Snake
	obstacles map[Point]struct{}
	foods     []Food
	powerups  []PowerUp
	occupied  map[Point]struct{}

	spawner *Spawner
	effects *Effects
	clock   *Clock

	score       int
	normalEaten int
	elapsed     float64
	powerTimer  float64
	endReason   Outcome
}

// newRound builds a fresh world for the given options: centered snake,
// obstacles (maze mode only), initial foods, zeroed score and timers.
func newRound(cfg config.Config, opts Options, rng *rand.Rand) *Round {
	grid := Grid{W: cfg.Grid.Width, H: cfg.Grid.Height}
	params := cfg.Difficulties.Params(opts.Difficulty)
	spawner := NewSpawner(grid, rng)

	start := grid.Center()
	snake := NewSnake(start, cfg.Round.InitialLength, DirRight)

	obstacles := make(map[Point]struct{})
	if opts.Maze {
		obstacles = spawner.GenerateObstacles(params.Obstacles, start)
	}

	r := &Round{
		grid:      grid,
		params:    params,
		scoring:   cfg.Scoring,
		wrap:      opts.Wrap,
		snake:     snake,
		obstacles: obstacles,
		spawner:   spawner,
		effects:   NewEffects(cfg.Effects),
		clock:     NewClock(params.Speed, cfg.Speed),
	}
	r.recomputeOccupied()

	for range cfg.Round.InitialFoods {
		r.spawnFood()
	}
	return r
}

// Update advances the round by a real-time delta: expire effects, smooth the
// speed, run the power-up spawn timer, then perform however many discrete
// steps the clock emits. Returns the events produced by those steps.
func (r *Round) Update(dt float64) []Event {
	r.elapsed += dt
	now := r.elapsed

	r.effects.Expire(now)

	steps := r.clock.Advance(dt, r.normalEaten, r.effects.Active(PowerSlow))

	r.powerTimer += dt
	if r.powerTimer >= r.params.PowerUpEverySecs {
		r.powerTimer = 0
		r.spawnPowerUp()
	}

	var events []Event
	for range steps {
		events = append(events, r.step(now)...)
		if r.endReason != OutcomeNone {
			break
		}
	}
	return events
}

// step performs exactly one grid step and resolves its collisions, in fixed
// order: movement, food, power-up, occupancy recompute.
func (r *Round) step(now float64) []Event {
	outcome := r.snake.Step(r.grid, r.wrap, r.effects.Active(PowerGhost), r.obstacles)
	if outcome != OutcomeNone {
		r.endReason = outcome
		return []Event{EventGameOver}
	}

	var events []Event
	head := r.snake.Head()

	if i := r.foodAt(head); i >= 0 {
		events = append(events, r.eatFood(i))
		r.spawnFood()
	}

	if i := r.powerUpAt(head); i >= 0 {
		p := r.powerups[i]
		r.powerups = append(r.powerups[:i], r.powerups[i+1:]...)
		delete(r.occupied, p.Pos)
		r.effects.Activate(p.Kind, now)
		events = append(events, EventPowerUp)
	}

	r.recomputeOccupied()
	return events
}

// eatFood removes the food at index i and applies its score and growth
// rules: normal and gold grow the body and score with the multiplier,
// poison shrinks up to two tail cells (never below two) and costs a fixed
// penalty floored at zero.
func (r *Round) eatFood(i int) Event {
	f := r.foods[i]
	r.foods = append(r.foods[:i], r.foods[i+1:]...)
	delete(r.occupied, f.Pos)

	switch f.Kind {
	case FoodNormal:
		r.snake.Grow(1)
		r.score += int(float64(r.scoring.NormalPoints) * r.effects.ScoreMultiplier())
		r.normalEaten++
		return EventAteNormal
	case FoodGold:
		r.snake.Grow(2)
		r.score += int(float64(r.scoring.GoldPoints) * r.effects.ScoreMultiplier())
		return EventAteGold
	default:
		r.score = max(0, r.score-r.scoring.PoisonPenalty)
		for _, cell := range r.snake.Shrink(2, 2) {
			delete(r.occupied, cell)
		}
		return EventAtePoison
	}
}

// spawnFood places a replacement food and claims its cell.
func (r *Round) spawnFood() {
	f, ok := r.spawner.SpawnFood(r.occupied, r.params)
	if !ok {
		return
	}
	r.foods = append(r.foods, f)
	r.occupied[f.Pos] = struct{}{}
}

// spawnPowerUp places a new power-up and claims its cell.
func (r *Round) spawnPowerUp() {
	p, ok := r.spawner.SpawnPowerUp(r.occupied)
	if !ok {
		return
	}
	r.powerups = append(r.powerups, p)
	r.occupied[p.Pos] = struct{}{}
}

// foodAt returns the index of the food at the given cell, or -1.
func (r *Round) foodAt(p Point) int {
	for i, f := range r.foods {
		if f.Pos == p {
			return i
		}
	}
	return -1
}

// powerUpAt returns the index of the power-up at the given cell, or -1.
func (r *Round) powerUpAt(p Point) int {
	for i, pu := range r.powerups {
		if pu.Pos == p {
			return i
		}
	}
	return -1
}

// recomputeOccupied rebuilds the occupancy set wholesale as the union of
// snake body, obstacles, foods, and power-ups.
func (r *Round) recomputeOccupied() {
	occ := make(map[Point]struct{}, len(r.snake.body)+len(r.obstacles)+len(r.foods)+len(r.powerups))
	for _, seg := range r.snake.body {
		occ[seg] = struct{}{}
	}
	for c := range r.obstacles {
		occ[c] = struct{}{}
	}
	for _, f := range r.foods {
		occ[f.Pos] = struct{}{}
	}
	for _, p := range r.powerups {
		occ[p.Pos] = struct{}{}
	}
	r.occupied = occ
}

// Over reports whether the round has ended.
func (r *Round) Over() bool {
	return r.endReason != OutcomeNone
}
