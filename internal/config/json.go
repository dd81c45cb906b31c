package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/localauth/internal/flagx"
)

// jsonConfig is the on-disk shape. Empty fields leave the current value.
type jsonConfig struct {
	DatabasePath  string `json:"database_path"`
	HashAlgorithm string `json:"hash_algorithm"`
	HashPepper    string `json:"hash_pepper"`
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"`
	LogFile       string `json:"log_file"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.HashAlgorithm, jc.HashAlgorithm)
	overlay(&cfg.HashPepper, jc.HashPepper)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.LogFile, jc.LogFile)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
