package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset normalizes a user-supplied preset name.
// Unknown names are kept as-is; Multiplier treats them as easy.
func ParsePreset(s string) DifficultyPreset {
	return DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
}

// IsHard reports whether the preset selects the hard multiplier.
func (p DifficultyPreset) IsHard() bool {
	return p == DifficultyHard
}

// Label returns a display name for the preset.
func (p DifficultyPreset) Label() string {
	if p.IsHard() {
		return "Hard"
	}
	return "Easy"
}

// Multiplier returns the pursuer speed multiplier for a preset.
// Only "hard" is fast; every other value, including unrecognized ones,
// falls back to the easy multiplier.
func (d MuncherDifficulty) Multiplier(preset DifficultyPreset) float64 {
	if preset.IsHard() {
		return d.HardMultiplier
	}
	return d.EasyMultiplier
}
