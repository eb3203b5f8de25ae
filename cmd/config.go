package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mblarsen/desktop-nfty/internal/config"
	"github.com/mblarsen/desktop-nfty/internal/fileutil"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the desktop-nfty config file.",
	Long:  `Manage the desktop-nfty config file.`,
	// Overrides the root hook so a broken config file can still be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd.ErrOrStderr(), logLevel(slog.LevelInfo))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings.",
	Long: `Writes a commented config file to the default location, or to the path
given with --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if print, _ := cmd.Flags().GetBool("print"); print {
			fmt.Fprint(cmd.OutOrStdout(), config.Template)
			return nil
		}

		path, err := targetConfigPath()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config file %s already exists, use --force to overwrite it", path)
		}

		if _, err := fileutil.AtomicWriteFile(path, []byte(config.Template), 0600); err != nil {
			return fmt.Errorf("could not write config file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config file written to: %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration.",
	Long:  `Prints the configuration after defaults have been applied.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return cfg.Encode(cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := targetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func targetConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func init() {
	configInitCmd.Flags().Bool("print", false, "Print the config template to stdout instead of writing it.")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file.")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
