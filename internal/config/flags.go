package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/localauth/internal/flagx"
)

// parseFlags overlays cfg with -d, -a and -l. Other flags in args are
// ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("localauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.HashAlgorithm, "a", cfg.HashAlgorithm, "password digest algorithm (sha256|argon2id)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(flagx.FilterArgs(args, "d", "a", "l")); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
