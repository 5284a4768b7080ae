package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultConfigDir = ".borg"
	DefaultRulesFile = "rules.yaml"
	DefaultLogFile   = "audit.jsonl"
)

type Config struct {
	ConfigDir string
	RulesPath string
	LogPath   string
}

// Load resolves the gate's paths, creating the config directory on first
// use. Explicit paths override the ~/.borg defaults.
func Load(rulesPath, logPath string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)
	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{ConfigDir: configDir}

	if rulesPath != "" {
		cfg.RulesPath = rulesPath
	} else {
		cfg.RulesPath = filepath.Join(configDir, DefaultRulesFile)
	}

	if logPath != "" {
		cfg.LogPath = logPath
	} else {
		cfg.LogPath = filepath.Join(configDir, DefaultLogFile)
	}

	return cfg, nil
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
