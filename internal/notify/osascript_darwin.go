//go:build darwin

package notify

import (
	"fmt"
)

// OsaScriptNotifier sends notifications on macOS using osascript.
type OsaScriptNotifier struct{}

func init() {
	register(BackendOsaScript, func(Options) Notifier {
		return &OsaScriptNotifier{}
	})
}

// Notify sends a desktop notification.
func (n *OsaScriptNotifier) Notify(title, message string) error {
	if err := requireNoNUL(BackendOsaScript, title, message); err != nil {
		return err
	}
	script := fmt.Sprintf("display notification %s with title %s", appleScriptString(message), appleScriptString(title))
	return startDetached(BackendOsaScript, execCommand("osascript", "-e", script))
}
