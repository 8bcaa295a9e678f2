package config

import (
	"fmt"
	"strings"
)

// DifficultySet is the closed table of difficulty presets. Every preset is
// always present; the YAML file may override individual fields.
type DifficultySet struct {
	Easy   DifficultyParams `yaml:"easy"`
	Normal DifficultyParams `yaml:"normal"`
	Hard   DifficultyParams `yaml:"hard"`
}

// Preset names as they appear in ruleset keys and CLI flags.
const (
	PresetEasy   = "EASY"
	PresetNormal = "NORMAL"
	PresetHard   = "HARD"
)

// PresetNames lists the difficulty presets in cycle order.
func PresetNames() []string {
	return []string{PresetEasy, PresetNormal, PresetHard}
}

// NormalizePreset maps a user-supplied difficulty name to its canonical
// form, accepting any case. Returns an error for unknown names.
func NormalizePreset(name string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case PresetEasy:
		return PresetEasy, nil
	case PresetNormal:
		return PresetNormal, nil
	case PresetHard:
		return PresetHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// Params returns the tuning values for a canonical preset name.
// Unknown names fall back to the normal preset.
func (s DifficultySet) Params(name string) DifficultyParams {
	switch name {
	case PresetEasy:
		return s.Easy
	case PresetHard:
		return s.Hard
	default:
		return s.Normal
	}
}
