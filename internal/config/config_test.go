package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mblarsen/desktop-nfty/internal/notify"
)

func TestLoad(t *testing.T) {
	t.Run("valid toml config", func(t *testing.T) {
		content := `
backend = "beeep"
app_name = "ci"
legacy_body_clamp = true
`
		path := createTempConfig(t, "config.toml", content)

		config, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if config.Backend != "beeep" {
			t.Errorf("expected backend 'beeep', got %s", config.Backend)
		}
		if config.AppName != "ci" {
			t.Errorf("expected app_name 'ci', got %s", config.AppName)
		}
		if !config.LegacyBodyClamp {
			t.Error("expected legacy_body_clamp to be true")
		}
		if config.Icon != "dialog-information" {
			t.Errorf("expected default icon, got %s", config.Icon)
		}
	})

	t.Run("valid yaml config", func(t *testing.T) {
		content := `
backend: beeep
command: /opt/bin/notify-send
log_level: debug
`
		path := createTempConfig(t, "config.yaml", content)

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "beeep", config.Backend)
		assert.Equal(t, "/opt/bin/notify-send", config.Command)
		assert.Equal(t, "desktop-nfty", config.AppName)

		level, err := config.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})

	t.Run("empty yaml config keeps defaults", func(t *testing.T) {
		path := createTempConfig(t, "config.yml", "")

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("unknown toml key", func(t *testing.T) {
		path := createTempConfig(t, "config.toml", `bakend = "dbus"`)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		assert.Contains(t, err.Error(), "bakend")
	})

	t.Run("unknown yaml key", func(t *testing.T) {
		path := createTempConfig(t, "config.yaml", "bakend: dbus\n")

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("backend not compiled in", func(t *testing.T) {
		path := createTempConfig(t, "config.toml", `backend = "carrier-pigeon"`)

		_, err := Load(path)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		assert.Contains(t, err.Error(), "carrier-pigeon")
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := createTempConfig(t, "config.toml", `log_level = "loud"`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "invalid log_level")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "config.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadOrDefault(t *testing.T) {
	config, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	path := createTempConfig(t, "config.toml", `log_level = "loud"`)
	_, err = LoadOrDefault(path)
	assert.Error(t, err, "a broken file is not replaced by defaults")
}

func TestTemplateIsValid(t *testing.T) {
	path := createTempConfig(t, "config.toml", Template)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestNotifyOptions(t *testing.T) {
	config := &Config{AppName: "a", Icon: "i", Command: "c", LegacyBodyClamp: true}
	assert.Equal(t, notify.Options{AppName: "a", Icon: "i", Command: "c", LegacyBodyClamp: true}, config.NotifyOptions())
}

func TestEncodeRoundTrip(t *testing.T) {
	config := Default()
	config.Backend = notify.BackendBeeep

	var buf bytes.Buffer
	require.NoError(t, config.Encode(&buf))

	var decoded Config
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, *config, decoded)
}

func TestDefaultPath(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "desktop-nfty", "config.toml"), path)
}

func createTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp config file: %v", err)
	}
	return path
}
