package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMuncher loads Pixel Muncher configuration.
// Search order: customPath -> ~/.arcade/configs/muncher.yaml -> ./configs/muncher.yaml -> embedded default.
// A custom path must load; the other files are skipped when missing or broken.
func LoadMuncher(customPath string) (MuncherConfig, error) {
	if customPath != "" {
		cfg, err := readMuncher(customPath)
		if err != nil {
			return MuncherConfig{}, err
		}
		return cfg.withDefaults(), nil
	}

	candidates := []string{userConfigPath("muncher.yaml"), filepath.Join("configs", "muncher.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readMuncher(path); err == nil {
			return cfg.withDefaults(), nil
		}
	}

	cfg, err := parseMuncher(defaultMuncherYAML)
	if err != nil {
		return DefaultMuncherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.withDefaults(), nil
}

// readMuncher decodes one file into a fresh config.
func readMuncher(path string) (MuncherConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MuncherConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parseMuncher(data)
	if err != nil {
		return MuncherConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// parseMuncher returns a zero config on error: yaml keeps the fields it
// managed to decode, and those must not leak into the next source.
func parseMuncher(data []byte) (MuncherConfig, error) {
	var cfg MuncherConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MuncherConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyMuncherPreset modifies the config based on a difficulty preset.
// An empty preset keeps the configured default.
func ApplyMuncherPreset(cfg *MuncherConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Default = preset
}
