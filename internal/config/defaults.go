package config

import (
	_ "embed"
)

//go:embed defaults/muncher.yaml
var defaultMuncherYAML []byte

// DefaultMuncherConfig returns the default Pixel Muncher configuration.
// Speed-to-tile ratios have odd numerators in lowest terms (3.2/16 = 1/5,
// 2.25/16 = 9/64, 3.75/16 = 15/64) so a character never lands exactly on
// the edge of the decision window.
func DefaultMuncherConfig() MuncherConfig {
	return MuncherConfig{
		Physics: MuncherPhysics{
			TileSize:          16,
			BaseSpeed:         4,
			PlayerSpeedRatio:  0.8,
			PursuerSpeedRatio: 0.75,
		},
		Gameplay: MuncherGameplay{
			Lives:             3,
			CollectiblePoints: 10,
			BonusPoints:       50,
			EncounterTiles:    1 / 1.5,
			ResetDelayMs:      500,
		},
		Difficulty: MuncherDifficulty{
			Default:        DifficultyEasy,
			EasyMultiplier: 0.75,
			HardMultiplier: 1.25,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "muncher":
		return defaultMuncherYAML
	default:
		return nil
	}
}
