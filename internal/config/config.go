package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ASSISTANT"

// Storage back-ends.
const (
	StorageJSON   = "json"
	StorageYAML   = "yaml"
	StorageGob    = "gob"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds runtime settings.
type Config struct {
	// DataDir holds the data files and the log; "~" is expanded.
	DataDir string `mapstructure:"data_dir"`
	// Storage is one of json, yaml, gob, sqlite or memory.
	Storage      string `mapstructure:"storage"`
	ContactsFile string `mapstructure:"contacts_file"`
	NotesFile    string `mapstructure:"notes_file"`
	SQLiteFile   string `mapstructure:"sqlite_file"`
	// BirthdaysDays is the default window of the birthdays command.
	BirthdaysDays int       `mapstructure:"birthdays_days"`
	Color         bool      `mapstructure:"color"`
	Log           LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Backend string `mapstructure:"backend"`
	File    string `mapstructure:"file"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "~/.personal-assistant-cli"
	c.Storage = StorageJSON
	c.ContactsFile = "contacts"
	c.NotesFile = "notes"
	c.SQLiteFile = "assistant.db"
	c.BirthdaysDays = 7
	c.Color = true
	c.Log = LogConfig{Level: "info", Backend: "zap", File: "assistant.log"}
}

// flag name -> config key
var flagKeys = map[string]string{
	"data-dir":       "data_dir",
	"storage":        "storage",
	"birthdays-days": "birthdays_days",
	"color":          "color",
	"log-level":      "log.level",
	"log-backend":    "log.backend",
}

// RegisterFlags adds the flags understood by Load to fs. The flag defaults
// are informational only; unset flags never override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP("config", "c", "", "path to a config file (json, yaml or toml)")
	fs.String("data-dir", d.DataDir, "directory for data files and the log")
	fs.String("storage", d.Storage, "storage back-end: json, yaml, gob, sqlite or memory")
	fs.Int("birthdays-days", d.BirthdaysDays, "default number of days for the birthdays command")
	fs.Bool("color", d.Color, "colorize output")
	fs.String("log-level", d.Log.Level, "log level: debug, info, warn or error")
	fs.String("log-backend", d.Log.Backend, "logging library: zap or slog")
}

// Load builds a Config from defaults, the file at path (if not empty), the
// environment and the changed flags in fs (may be nil).
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	var d Config
	d.LoadDefaults()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("storage", d.Storage)
	v.SetDefault("contacts_file", d.ContactsFile)
	v.SetDefault("notes_file", d.NotesFile)
	v.SetDefault("sqlite_file", d.SQLiteFile)
	v.SetDefault("birthdays_days", d.BirthdaysDays)
	v.SetDefault("color", d.Color)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.backend", d.Log.Backend)
	v.SetDefault("log.file", d.Log.File)

	if path != "" {
		if err := readFile(v, path); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	ext := strings.TrimLeft(filepath.Ext(path), ".")
	if ext == "yml" {
		ext = "yaml"
	}
	v.SetConfigType(ext)

	if err := v.ReadConfig(bytes.NewReader([]byte(expandEnvWithDefaults(string(data))))); err != nil {
		return fmt.Errorf("v.ReadConfig: %w", err)
	}
	return nil
}

var envRef = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults replaces ${VAR} and ${VAR:-default}. An unset or
// empty variable yields the default, or "" when there is none.
func expandEnvWithDefaults(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		m := envRef.FindStringSubmatch(match)
		if value := os.Getenv(m[1]); value != "" {
			return value
		}
		return m[2]
	})
}

// Validate rejects unknown back-ends and out-of-range values.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage {
	case StorageJSON, StorageYAML, StorageGob, StorageSQLite, StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}
	switch c.Log.Backend {
	case "zap", "slog":
	default:
		errs = append(errs, fmt.Errorf("unknown log backend %q", c.Log.Backend))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if c.BirthdaysDays < 0 {
		errs = append(errs, fmt.Errorf("birthdays_days must not be negative, got %d", c.BirthdaysDays))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir must not be empty"))
	}
	for key, name := range map[string]string{
		"contacts_file": c.ContactsFile,
		"notes_file":    c.NotesFile,
		"sqlite_file":   c.SQLiteFile,
		"log.file":      c.Log.File,
	} {
		if name == "" || strings.ContainsAny(name, `/\`) {
			errs = append(errs, fmt.Errorf("%s must be a plain file name, got %q", key, name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
