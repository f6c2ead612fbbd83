// Package config loads runtime configuration for the assistant CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (json, yaml or toml) given with -c/--config.
//     Values may reference the environment as ${VAR} or ${VAR:-default}.
//  3. Environment variables prefixed with ASSISTANT_, e.g. ASSISTANT_STORAGE
//     or ASSISTANT_LOG_LEVEL.
//  4. Command-line flags registered by RegisterFlags, when set explicitly.
//
// # File example
//
//	data_dir: ${HOME}/.personal-assistant-cli
//	storage: yaml
//	birthdays_days: 14
//	log:
//	  level: debug
//	  backend: slog
//
// Primary API
//
//   - type Config                         - all settings
//   - func Load(path, flags) (*Config, error)
//   - func RegisterFlags(fs *pflag.FlagSet)
//   - func (*Config) Validate() error
package config
