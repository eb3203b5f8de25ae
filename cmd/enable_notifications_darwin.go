//go:build darwin

package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

const appleScriptContent = `display notification "Notifications are now enabled for desktop-nfty!" with title "desktop-nfty"`

var enableNotificationsCmd = &cobra.Command{
	Use:   "enable-notifications",
	Short: "Guides you to enable notifications on macOS.",
	Long: `Opens Script Editor with a pre-filled script to enable notifications.

The osascript backend can only show notifications once Script Editor has been
granted permission. Run the script once and click 'Allow' when prompted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Opening Script Editor...")
		fmt.Fprintln(out, "Please click the 'Run' button (the triangle) in Script Editor.")
		fmt.Fprintln(out, "Then, click 'Allow' when prompted for notification permissions.")

		command := fmt.Sprintf("tell application \"Script Editor\" to make new document with properties {contents:%q}\nactivate", appleScriptContent)
		return exec.Command("osascript", "-e", command).Run()
	},
}

func init() {
	rootCmd.AddCommand(enableNotificationsCmd)
}
