package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mblarsen/desktop-nfty/internal/config"
)

// Set with -ldflags "-X github.com/mblarsen/desktop-nfty/cmd.version=...".
var version = "dev"

var (
	configPath string
	verbose    bool

	// cfg is loaded before any command that needs it runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "desktop-nfty",
	Short: "Send native desktop notifications.",
	Long: `desktop-nfty shows a transient desktop notification using whatever the
host provides: a shell balloon on Windows, the freedesktop notification
daemon (over D-Bus or notify-send) on Linux, osascript on macOS.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: $XDG_CONFIG_HOME/desktop-nfty/config.toml).")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd, fang.WithVersion(version))
}

// loadConfig reads the config file and sets up logging from it. An explicit
// --config path must exist; the default path may be missing.
func loadConfig(cmd *cobra.Command) error {
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		var path string
		path, err = config.DefaultPath()
		if err == nil {
			cfg, err = config.LoadOrDefault(path)
		}
	}
	if err != nil {
		setupLogger(cmd.ErrOrStderr(), logLevel(slog.LevelInfo))
		return err
	}

	level, _ := cfg.SlogLevel() // validated by Load
	setupLogger(cmd.ErrOrStderr(), logLevel(level))
	slog.Debug("Loaded config", "path", configPath, "backend", cfg.Backend)
	return nil
}

// logLevel applies DESKTOP_NFTY_LOG_LEVEL and --verbose on top of the
// configured level.
func logLevel(configured slog.Level) slog.Level {
	level := configured
	if levelStr := os.Getenv("DESKTOP_NFTY_LOG_LEVEL"); levelStr != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(levelStr)); err == nil {
			level = l
		}
	}
	if verbose {
		level = slog.LevelDebug
	}
	return level
}
