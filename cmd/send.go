package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mblarsen/desktop-nfty/internal/notify"
	"github.com/mblarsen/desktop-nfty/internal/transform"
)

// Overridable for testing.
var newNotifier = notify.New

var (
	sendBackend     string
	sendFrom        string
	sendFormat      string
	sendBase64      bool
	sendTitlePath   string
	sendMessagePath string
)

var sendCmd = &cobra.Command{
	Use:   "send <title> [message]",
	Short: "Send a desktop notification.",
	Long: `Sends a single desktop notification and returns as soon as the system has
accepted it. The notification is not tracked afterwards.

The title and message can also be read from a JSON, YAML or TOML payload:

  curl -s https://ci.example.com/last-build | desktop-nfty send --from - \
    --title-path pipeline.name --message-path status`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, message, err := notificationText(cmd, args)
		if err != nil {
			return err
		}

		backend := cfg.Backend
		if sendBackend != "" {
			backend = sendBackend
		}
		if backend == "" {
			backend = notify.DefaultBackend
		}

		n, err := newNotifier(backend, cfg.NotifyOptions())
		if err != nil {
			return err
		}

		slog.Debug("Sending notification", "backend", backend, "title", title)
		if err := n.Notify(title, message); err != nil {
			slog.Error("Failed to send notification", "backend", backend, "err", err)
			return explainNotifyError(err)
		}
		slog.Debug("Notification dispatched", "backend", backend)
		return nil
	},
}

func notificationText(cmd *cobra.Command, args []string) (string, string, error) {
	if sendFrom == "" {
		if len(args) == 0 {
			return "", "", errors.New("a title is required, or use --from to read a payload")
		}
		if len(args) == 1 {
			return args[0], "", nil
		}
		return args[0], args[1], nil
	}

	if len(args) > 0 {
		return "", "", errors.New("positional title and message cannot be combined with --from")
	}
	payload, err := readPayload(cmd, sendFrom)
	if err != nil {
		return "", "", err
	}
	extractor := transform.Extractor{
		Format:      sendFormat,
		Base64:      sendBase64,
		TitlePath:   sendTitlePath,
		MessagePath: sendMessagePath,
	}
	title, message, err := extractor.Extract(payload)
	if err != nil {
		return "", "", fmt.Errorf("could not read notification from %s: %w", sendFrom, err)
	}
	return title, message, nil
}

func readPayload(cmd *cobra.Command, from string) (string, error) {
	var data []byte
	var err error
	if from == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(from)
	}
	if err != nil {
		return "", fmt.Errorf("could not read payload: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func init() {
	sendCmd.Flags().StringVarP(&sendBackend, "backend", "b", "", "Backend to use instead of the configured one.")
	sendCmd.Flags().StringVar(&sendFrom, "from", "", "Read a structured payload from this file ('-' for stdin).")
	sendCmd.Flags().StringVar(&sendFormat, "format", "json", "Payload format: "+strings.Join(transform.Formats, ", ")+".")
	sendCmd.Flags().BoolVar(&sendBase64, "base64", false, "The payload is base64 encoded.")
	sendCmd.Flags().StringVar(&sendTitlePath, "title-path", "", "Path of the title in the payload (gjson syntax).")
	sendCmd.Flags().StringVar(&sendMessagePath, "message-path", "message", "Path of the message in the payload (gjson syntax).")
	rootCmd.AddCommand(sendCmd)
}
