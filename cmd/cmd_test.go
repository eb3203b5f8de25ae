package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	return executeCommandWithInput(cmd, nil, args...)
}

func executeCommandWithInput(cmd *cobra.Command, stdin io.Reader, args ...string) (string, error) {
	resetFlags(cmd)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(stdin)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default; cobra keeps flag values
// between executions of the same command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// isolateConfig points the default config location at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("DESKTOP_NFTY_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "1")
	return dir
}
