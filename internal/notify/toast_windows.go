//go:build windows

package notify

import (
	toast "git.sr.ht/~jackmordaunt/go-toast"
)

// ToastNotifier sends WinRT toast notifications.
type ToastNotifier struct {
	AppID string
	Icon  string
}

func init() {
	register(BackendToast, func(opts Options) Notifier {
		icon := opts.Icon
		if icon == defaultIcon {
			// themed icon names mean nothing to the toast API
			icon = ""
		}
		return &ToastNotifier{AppID: opts.AppName, Icon: icon}
	})
}

// Notify sends a desktop notification.
func (n *ToastNotifier) Notify(title, message string) error {
	notification := toast.Notification{
		AppID: n.AppID,
		Title: title,
		Body:  message,
		Icon:  n.Icon,
	}
	if err := notification.Push(); err != nil {
		return newError(KindNativeCallFailed, BackendToast, err)
	}
	return nil
}
