//go:build !windows

package notify

import (
	"os/exec"
)

// Overridable for testing.
var execCommand = exec.Command

// NotifySendNotifier sends notifications by running notify-send.
type NotifySendNotifier struct {
	// Command is the executable to run. It receives the title and the
	// message as two separate arguments.
	Command string
}

func init() {
	register(BackendNotifySend, func(opts Options) Notifier {
		return &NotifySendNotifier{Command: opts.Command}
	})
}

// Notify sends a desktop notification. It returns once the command has
// started; the command's exit status is not inspected.
func (n *NotifySendNotifier) Notify(title, message string) error {
	if err := requireNoNUL(BackendNotifySend, title, message); err != nil {
		return err
	}
	return startDetached(BackendNotifySend, execCommand(n.Command, title, message))
}
