// Package config loads command line settings from flags, environment
// variables, a .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/langsplit-go/internal/logging"
	"github.com/ukaji3/langsplit-go/pkg/langsplit"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/engine"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
)

// EnvPrefix prefixes every environment variable, e.g. LANGSPLIT_SOURCE.
const EnvPrefix = "LANGSPLIT"

// FileName is the config file looked up when none is given.
const FileName = ".langsplit"

// Config holds the resolved settings.
type Config struct {
	Source      string `mapstructure:"source"`
	ScanWindow  int    `mapstructure:"scan_window"`
	Registry    string `mapstructure:"registry"`
	Sheet       string `mapstructure:"sheet"`
	NoteColumn  string `mapstructure:"note_column"`
	Parallelism int    `mapstructure:"parallelism"`
	Log         Log    `mapstructure:"log"`
}

// Log holds logger settings.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps config keys to the flag names bound to them.
var flagKeys = map[string]string{
	"source":      "source",
	"scan_window": "scan-window",
	"registry":    "registry",
	"sheet":       "sheet",
	"note_column": "note-column",
	"parallelism": "parallelism",
	"log.level":   "log-level",
	"log.format":  "log-format",
}

// Load resolves settings with precedence flags > environment > config file >
// defaults. file names an explicit config file; when empty, .langsplit.yaml
// is looked up in the working directory and the home directory. flags may
// be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	defaults := langsplit.DefaultOptions()
	v.SetDefault("source", defaults.Source)
	v.SetDefault("scan_window", engine.DefaultScanWindow)
	v.SetDefault("registry", "")
	v.SetDefault("sheet", "")
	v.SetDefault("note_column", "")
	v.SetDefault("parallelism", defaults.Parallelism)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// LoadRegistry returns the configured language registry, or the built-in
// one when no registry file is set.
func (c *Config) LoadRegistry() (*registry.Registry, error) {
	if c.Registry == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(c.Registry)
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Log.Level
	lc.Format = c.Log.Format
	return lc
}

// Options builds document options from the settings.
func (c *Config) Options(reg *registry.Registry, logger *zerolog.Logger) langsplit.Options {
	return langsplit.Options{
		ScanWindow:  c.ScanWindow,
		Registry:    reg,
		Source:      c.Source,
		Sheet:       c.Sheet,
		NoteColumn:  c.NoteColumn,
		Parallelism: c.Parallelism,
		Logger:      logger,
	}
}
