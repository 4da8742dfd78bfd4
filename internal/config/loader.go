package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "cosmic.yaml"

// Load loads the Cosmic Heat configuration.
// Search order: customPath -> ~/.cosmic-heat/configs/cosmic.yaml -> ./configs/cosmic.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCosmicYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the built-in defaults,
// so a partial document only overrides the keys it names.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration back to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cosmic-heat", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy spawns hazards less often, hard more often, fixed freezes every speed table.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
	}

	switch preset {
	case DifficultyEasy:
		scaleHazardRates(cfg, 3, 2)
	case DifficultyHard:
		scaleHazardRates(cfg, 3, 4)
	}
}

// scaleHazardRates multiplies every hazard's one-in-N constant by num/den.
func scaleHazardRates(cfg *Config, num, den int) {
	for _, h := range []*HazardConfig{
		&cfg.Hazards.LightEnemy,
		&cfg.Hazards.HeavyEnemy,
		&cfg.Hazards.MeteorSmall,
		&cfg.Hazards.MeteorLarge,
		&cfg.Hazards.BlackHole,
	} {
		h.Spawn.OneIn = max(1, h.Spawn.OneIn*num/den)
	}
}
