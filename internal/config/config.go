package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mblarsen/desktop-nfty/internal/notify"
	"github.com/mblarsen/desktop-nfty/internal/xdgpath"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.toml"

// Config represents the structure of the desktop-nfty config file.
type Config struct {
	Backend         string `toml:"backend" yaml:"backend"`
	AppName         string `toml:"app_name" yaml:"app_name"`
	Icon            string `toml:"icon" yaml:"icon"`
	Command         string `toml:"command" yaml:"command"`
	LegacyBodyClamp bool   `toml:"legacy_body_clamp" yaml:"legacy_body_clamp"`
	LogLevel        string `toml:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		AppName:  "desktop-nfty",
		Icon:     "dialog-information",
		Command:  "notify-send",
		LogLevel: "info",
	}
}

// DefaultPath returns the location of the user's config file.
func DefaultPath() (string, error) {
	return xdgpath.ConfigPath(FileName)
}

// Load reads a TOML or YAML file from the given path, validates it, and
// returns a Config. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is like Load but returns the defaults when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks the values that can be checked without touching the OS.
func (c *Config) Validate() error {
	if c.Backend != "" && !slices.Contains(notify.Backends(), strings.ToLower(c.Backend)) {
		return fmt.Errorf("backend %q is not available on this platform (available: %s)", c.Backend, strings.Join(notify.Backends(), ", "))
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel. An empty value means info.
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// NotifyOptions returns the backend options described by c.
func (c *Config) NotifyOptions() notify.Options {
	return notify.Options{
		AppName:         c.AppName,
		Icon:            c.Icon,
		Command:         c.Command,
		LegacyBodyClamp: c.LegacyBodyClamp,
	}
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Template is written by `config init`.
const Template = `# desktop-nfty configuration

# Notification backend. Leave empty to use the platform default.
# windows: shell, toast, beeep
# macOS:   osascript, dbus, notify-send, beeep
# linux:   dbus, notify-send, beeep
backend = ""

# Name the notification daemon shows as the sender.
app_name = "desktop-nfty"

# Themed icon name (dbus, beeep).
icon = "dialog-information"

# Executable used by the notify-send backend.
command = "notify-send"

# Cut balloon bodies at 64 characters like older releases (shell backend).
legacy_body_clamp = false

# debug, info, warn or error.
log_level = "info"
`
