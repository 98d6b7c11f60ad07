package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the scale configuration.
// Search order: customPath -> ~/.balance/config.{yaml,yml,toml} -> ./configs/balance.yaml -> embedded default.
// Values missing from a file keep their defaults. Only an explicit customPath
// that cannot be read, parsed or validated is an error.
func Load(customPath string) (ScaleConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultScaleConfig()
	if err := yaml.Unmarshal(defaultScaleYAML, &cfg); err != nil {
		return DefaultScaleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single configuration file, choosing the parser by extension.
func LoadFile(path string) (ScaleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScaleConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return ScaleConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of the defaults and validates the result.
func Parse(data []byte, ext string) (ScaleConfig, error) {
	cfg := DefaultScaleConfig()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ScaleConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return ScaleConfig{}, fmt.Errorf("toml decode: %w", err)
		}
	default:
		return ScaleConfig{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return ScaleConfig{}, err
	}
	return cfg, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		for _, ext := range FormatExtensions() {
			paths = append(paths, filepath.Join(home, ".balance", "config"+ext))
		}
	}
	return append(paths, filepath.Join("configs", "balance.yaml"))
}
