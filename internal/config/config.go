package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/localauth/internal/cryptox"
)

// Config holds runtime settings for the localauth CLI.
type Config struct {
	DatabasePath  string
	HashAlgorithm string
	HashPepper    string
	LogLevel      string
	LogFormat     string
	LogFile       string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "auth.db"
	c.HashAlgorithm = cryptox.AlgorithmSHA256
	c.HashPepper = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogFile = ""
}

// Validate rejects combinations that cannot be started.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path is empty")
	}
	switch c.HashAlgorithm {
	case cryptox.AlgorithmSHA256:
	case cryptox.AlgorithmArgon2id:
		if c.HashPepper == "" {
			return fmt.Errorf("hash algorithm %s requires hash_pepper in the JSON config", c.HashAlgorithm)
		}
	default:
		return fmt.Errorf("unsupported hash algorithm %q", c.HashAlgorithm)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named in args (if
// any), then the flags in args. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
