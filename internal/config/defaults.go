package config

import (
	_ "embed"
)

//go:embed defaults/snakeplus.yaml
var defaultYAML []byte

// Default returns the built-in tuning. Values mirror the embedded YAML and
// act as the last-resort fallback if the embed fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 30,
		},
		Speed: SpeedConfig{
			RampPerNormal: 0.12,
			Max:           16.0,
			Smoothing:     4.0,
			SlowFactor:    0.7,
		},
		Effects: EffectConfig{
			SlowSecs:  8.0,
			GhostSecs: 8.0,
			MultiSecs: 10.0,
		},
		Scoring: ScoringConfig{
			NormalPoints:  10,
			GoldPoints:    30,
			PoisonPenalty: 20,
		},
		Round: RoundConfig{
			InitialFoods:  3,
			InitialLength: 3,
		},
		Difficulties: DifficultySet{
			Easy: DifficultyParams{
				Speed:            6.5,
				Obstacles:        10,
				PoisonChance:     0.06,
				GoldChance:       0.10,
				PowerUpEverySecs: 18,
			},
			Normal: DifficultyParams{
				Speed:            7.5,
				Obstacles:        22,
				PoisonChance:     0.10,
				GoldChance:       0.08,
				PowerUpEverySecs: 20,
			},
			Hard: DifficultyParams{
				Speed:            9.0,
				Obstacles:        36,
				PoisonChance:     0.14,
				GoldChance:       0.06,
				PowerUpEverySecs: 22,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
