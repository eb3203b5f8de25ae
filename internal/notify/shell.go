package notify

import (
	"fmt"
)

// shellNotifier shows a balloon through the shell notification-icon API.
// Every call gets a fresh GUID: the shell ignores or merges notifications
// that reuse an identifier.
type shellNotifier struct {
	newGUID     func() (GUID, error)
	addIcon     func(message uint32, data *notifyIconData) error
	legacyClamp bool
}

// Notify sends a desktop notification.
func (n *shellNotifier) Notify(title, message string) error {
	data := newNotifyIconData(message, title, n.legacyClamp)

	id, err := n.newGUID()
	if err != nil {
		return newError(KindNativeCallFailed, BackendShell, fmt.Errorf("generate guid: %w", err))
	}
	data.GuidItem = id

	if err := n.addIcon(nimAdd, &data); err != nil {
		return newError(KindNativeCallFailed, BackendShell, err)
	}
	return nil
}
