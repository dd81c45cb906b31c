// Package config loads runtime configuration for the localauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-a string   password digest algorithm: sha256 or argon2id
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "database_path": "auth.db",
//	  "hash_algorithm": "argon2id",
//	  "hash_pepper": "installation-secret",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "log_file": "/var/log/localauth.log"
//	}
//
// hash_pepper is accepted from JSON only.
package config
