// Package config provides YAML-based tuning for the snakeplus simulation:
// grid dimensions, the difficulty table, speed ramp, effect durations, and
// scoring values, with embedded defaults.
package config

// Config contains all tuning for the simulation core.
type Config struct {
	Grid         GridConfig    `yaml:"grid"`
	Speed        SpeedConfig   `yaml:"speed"`
	Effects      EffectConfig  `yaml:"effects"`
	Scoring      ScoringConfig `yaml:"scoring"`
	Round        RoundConfig   `yaml:"round"`
	Difficulties DifficultySet `yaml:"difficulties"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines how the movement rate ramps and smooths.
type SpeedConfig struct {
	// RampPerNormal is the cells/second added to the target speed for each
	// normal food eaten during the round.
	RampPerNormal float64 `yaml:"ramp_per_normal"`
	// Max caps the target speed in cells/second.
	Max float64 `yaml:"max"`
	// Smoothing scales how quickly the actual speed converges on the
	// target (exponential approach, applied per real-time second).
	Smoothing float64 `yaml:"smoothing"`
	// SlowFactor multiplies the target speed while the SLOW effect is active.
	SlowFactor float64 `yaml:"slow_factor"`
}

// EffectConfig defines power-up effect durations in seconds.
type EffectConfig struct {
	SlowSecs  float64 `yaml:"slow_secs"`
	GhostSecs float64 `yaml:"ghost_secs"`
	MultiSecs float64 `yaml:"multi_secs"`
}

// ScoringConfig defines point values for food consumption.
type ScoringConfig struct {
	NormalPoints  int `yaml:"normal_points"`
	GoldPoints    int `yaml:"gold_points"`
	PoisonPenalty int `yaml:"poison_penalty"`
}

// RoundConfig defines how a fresh round is populated.
type RoundConfig struct {
	InitialFoods  int `yaml:"initial_foods"`
	InitialLength int `yaml:"initial_length"`
}

// DifficultyParams holds the per-difficulty tuning values.
type DifficultyParams struct {
	// Speed is the base movement rate in cells/second.
	Speed float64 `yaml:"speed"`
	// Obstacles is the target obstacle cell count in maze mode.
	Obstacles int `yaml:"obstacles"`
	// PoisonChance and GoldChance weight the food-kind draw; the remainder
	// of the probability mass is normal food.
	PoisonChance float64 `yaml:"poison_chance"`
	GoldChance   float64 `yaml:"gold_chance"`
	// PowerUpEverySecs is the fixed interval between power-up spawns.
	PowerUpEverySecs float64 `yaml:"powerup_every_secs"`
}
