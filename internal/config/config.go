// Package config resolves pdfexplorer settings from defaults, an optional
// config file, PDFEXPLORER_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/joshuapare/pdfexplorer/pkg/recent"
)

// Keys understood by Load.
const (
	KeyDebug      = "debug"
	KeyLogDir     = "log_dir"
	KeyRecentMax  = "recent.max"
	KeyRecentDir  = "recent.dir"
	KeyRecentName = "recent.name"
)

// EnvPrefix is prepended to environment overrides, e.g. PDFEXPLORER_RECENT_MAX.
const EnvPrefix = "PDFEXPLORER"

// DefaultRecentName names the recent-files list after the program's import path.
const DefaultRecentName = "github.com/joshuapare/pdfexplorer"

// Config is the resolved configuration.
type Config struct {
	Debug      bool
	LogDir     string // empty selects the logger's default
	RecentMax  int
	RecentDir  string // empty keeps the recent list in memory only
	RecentName string
}

// Options controls where Load looks.
type Options struct {
	// File is an explicit config file. When empty, config.yaml is searched
	// in the user config directory under "pdfexplorer".
	File string
	// Flags are bound by name: "debug" overrides KeyDebug.
	Flags *pflag.FlagSet
}

// Load resolves the configuration.
func Load(opts Options) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyRecentMax, recent.DefaultMax)
	v.SetDefault(KeyRecentDir, defaultStateDir())
	v.SetDefault(KeyRecentName, DefaultRecentName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "pdfexplorer"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	if opts.Flags != nil {
		if f := opts.Flags.Lookup("debug"); f != nil {
			if err := v.BindPFlag(KeyDebug, f); err != nil {
				return Config{}, fmt.Errorf("config: bind debug flag: %w", err)
			}
		}
	}

	cfg := Config{
		Debug:      v.GetBool(KeyDebug),
		LogDir:     v.GetString(KeyLogDir),
		RecentMax:  v.GetInt(KeyRecentMax),
		RecentDir:  v.GetString(KeyRecentDir),
		RecentName: v.GetString(KeyRecentName),
	}
	if cfg.RecentMax < 1 {
		return Config{}, fmt.Errorf("config: %s must be at least 1, got %d", KeyRecentMax, cfg.RecentMax)
	}
	return cfg, nil
}

// RecentBackend returns the backend the recent-files list should use.
func (c Config) RecentBackend() recent.Backend {
	if c.RecentDir == "" {
		return recent.NewMemoryBackend()
	}
	return recent.FileBackend{Dir: c.RecentDir}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pdfexplorer")
}
