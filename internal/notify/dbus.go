//go:build !windows

package notify

import (
	"fmt"

	dbusnotify "github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"
)

// DBusNotifier talks to the notification daemon over the session bus using
// org.freedesktop.Notifications, the interface libnotify wraps. Each call
// opens its own connection and closes it before returning.
type DBusNotifier struct {
	AppName string
	Icon    string

	connect func() (*dbus.Conn, error)
	send    func(conn *dbus.Conn, n dbusnotify.Notification) (uint32, error)
}

func init() {
	register(BackendDBus, func(opts Options) Notifier {
		return NewDBusNotifier(opts.AppName, opts.Icon)
	})
}

// NewDBusNotifier creates a notifier bound to the user's session bus.
func NewDBusNotifier(appName, icon string) *DBusNotifier {
	return &DBusNotifier{
		AppName: appName,
		Icon:    icon,
		connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
		send:    dbusnotify.SendNotification,
	}
}

// Notify sends a desktop notification.
func (n *DBusNotifier) Notify(title, message string) error {
	if err := requireNoNUL(BackendDBus, title, message); err != nil {
		return err
	}

	conn, err := n.connect()
	if err != nil {
		return newError(KindNativeCallFailed, BackendDBus, fmt.Errorf("connect session bus: %w", err))
	}
	defer conn.Close()

	_, err = n.send(conn, dbusnotify.Notification{
		AppName:       n.AppName,
		AppIcon:       n.Icon,
		Summary:       title,
		Body:          message,
		ExpireTimeout: dbusnotify.ExpireTimeoutSetByNotificationServer,
	})
	if err != nil {
		return newError(KindNativeCallFailed, BackendDBus, err)
	}
	return nil
}
