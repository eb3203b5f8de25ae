package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mblarsen/desktop-nfty/internal/notify"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the notification backends available on this platform.",
	Long: `Lists the notification backends compiled into this build. The default is
used unless the config file or --backend selects another one. There is no
automatic fallback between backends.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := cfg.Backend
		if selected == "" {
			selected = notify.DefaultBackend
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "BACKEND\tDEFAULT\tSELECTED")
		for _, name := range notify.Backends() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, mark(name == notify.DefaultBackend), mark(name == selected))
		}
		return w.Flush()
	},
}

func mark(b bool) string {
	if b {
		return "*"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
