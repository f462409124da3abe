package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Data DataConfig
	Log  LogConfig
	// Keys maps an action name to replacement keys, e.g. quit = ["x"].
	Keys map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartPage   string `mapstructure:"start_page"`
	NarrowWidth int    `mapstructure:"narrow_width"`
	AltScreen   bool   `mapstructure:"alt_screen"`
}

// DataConfig points at an optional dataset file. Empty means the built-in sample.
type DataConfig struct {
	Path string
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Path   string
	Level  string
	Format string
}

// Load reads configuration from file and env. Env var overrides use prefix GLACIONET_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GLACIONET_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "glacionet"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GLACIONET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.start_page", "home")
	v.SetDefault("ui.narrow_width", 80)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("data.path", "")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "glacionet", "glacionet.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate rejects settings the dashboard cannot honour. ui.start_page is
// checked against the page list by the caller.
func (c Config) Validate() error {
	if c.UI.NarrowWidth <= 0 {
		return fmt.Errorf("%w: ui.narrow_width must be positive, got %d", ErrInvalidConfig, c.UI.NarrowWidth)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log.format %q (want json or text)", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, l.Level)
	}
	return level, nil
}
