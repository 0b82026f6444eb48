// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "time"

// MuncherConfig contains all configuration for Pixel Muncher.
type MuncherConfig struct {
	Physics    MuncherPhysics    `yaml:"physics"`
	Gameplay   MuncherGameplay   `yaml:"gameplay"`
	Difficulty MuncherDifficulty `yaml:"difficulty"`
}

// MuncherPhysics defines movement parameters.
// Positions are measured in sub-tile units; one tile is TileSize units wide.
type MuncherPhysics struct {
	TileSize          float64 `yaml:"tile_size"`
	BaseSpeed         float64 `yaml:"base_speed"`          // Units per tick before ratios
	PlayerSpeedRatio  float64 `yaml:"player_speed_ratio"`  // Player speed = base * ratio
	PursuerSpeedRatio float64 `yaml:"pursuer_speed_ratio"` // Pursuer speed = base * ratio * difficulty
}

// MuncherGameplay defines scoring, lives and encounter parameters.
type MuncherGameplay struct {
	Lives             int     `yaml:"lives"`
	CollectiblePoints int     `yaml:"collectible_points"`
	BonusPoints       int     `yaml:"bonus_points"`
	EncounterTiles    float64 `yaml:"encounter_tiles"` // Proximity threshold as a fraction of a tile
	ResetDelayMs      int     `yaml:"reset_delay_ms"`  // Pause after a lost life
}

// MuncherDifficulty defines pursuer speed multipliers per preset.
type MuncherDifficulty struct {
	Default        DifficultyPreset `yaml:"default"`
	EasyMultiplier float64          `yaml:"easy_multiplier"`
	HardMultiplier float64          `yaml:"hard_multiplier"`
}

// PlayerSpeed returns the player's speed in units per tick.
func (c MuncherConfig) PlayerSpeed() float64 {
	return c.Physics.BaseSpeed * c.Physics.PlayerSpeedRatio
}

// PursuerSpeed returns the pursuer's speed in units per tick for a preset.
func (c MuncherConfig) PursuerSpeed(preset DifficultyPreset) float64 {
	return c.Physics.BaseSpeed * c.Physics.PursuerSpeedRatio * c.Difficulty.Multiplier(preset)
}

// EncounterDistance returns the proximity threshold in units.
func (c MuncherConfig) EncounterDistance() float64 {
	return c.Physics.TileSize * c.Gameplay.EncounterTiles
}

// ResetDelay returns the post-encounter pause as a duration.
func (c MuncherConfig) ResetDelay() time.Duration {
	return time.Duration(c.Gameplay.ResetDelayMs) * time.Millisecond
}

// withDefaults fills zero or negative fields from DefaultMuncherConfig so a
// partial YAML file still yields a playable configuration.
func (c MuncherConfig) withDefaults() MuncherConfig {
	def := DefaultMuncherConfig()

	if c.Physics.TileSize <= 0 {
		c.Physics.TileSize = def.Physics.TileSize
	}
	if c.Physics.BaseSpeed <= 0 {
		c.Physics.BaseSpeed = def.Physics.BaseSpeed
	}
	if c.Physics.PlayerSpeedRatio <= 0 {
		c.Physics.PlayerSpeedRatio = def.Physics.PlayerSpeedRatio
	}
	if c.Physics.PursuerSpeedRatio <= 0 {
		c.Physics.PursuerSpeedRatio = def.Physics.PursuerSpeedRatio
	}
	if c.Gameplay.Lives <= 0 {
		c.Gameplay.Lives = def.Gameplay.Lives
	}
	if c.Gameplay.CollectiblePoints <= 0 {
		c.Gameplay.CollectiblePoints = def.Gameplay.CollectiblePoints
	}
	if c.Gameplay.BonusPoints <= 0 {
		c.Gameplay.BonusPoints = def.Gameplay.BonusPoints
	}
	if c.Gameplay.EncounterTiles <= 0 || c.Gameplay.EncounterTiles >= 1 {
		c.Gameplay.EncounterTiles = def.Gameplay.EncounterTiles
	}
	if c.Gameplay.ResetDelayMs <= 0 {
		c.Gameplay.ResetDelayMs = def.Gameplay.ResetDelayMs
	}
	if c.Difficulty.EasyMultiplier <= 0 {
		c.Difficulty.EasyMultiplier = def.Difficulty.EasyMultiplier
	}
	if c.Difficulty.HardMultiplier <= 0 {
		c.Difficulty.HardMultiplier = def.Difficulty.HardMultiplier
	}
	if c.Difficulty.Default == "" {
		c.Difficulty.Default = def.Difficulty.Default
	}
	return c
}
