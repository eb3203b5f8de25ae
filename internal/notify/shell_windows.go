//go:build windows

package notify

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modshell32           = windows.NewLazySystemDLL("shell32.dll")
	procShellNotifyIconW = modshell32.NewProc("Shell_NotifyIconW")
)

func init() {
	register(BackendShell, func(opts Options) Notifier {
		return &shellNotifier{
			newGUID:     generateGUID,
			addIcon:     shellNotifyIcon,
			legacyClamp: opts.LegacyBodyClamp,
		}
	})
}

// generateGUID calls CoCreateGuid.
func generateGUID() (GUID, error) {
	g, err := windows.GenerateGUID()
	if err != nil {
		return GUID{}, err
	}
	return GUID(g), nil
}

func shellNotifyIcon(message uint32, data *notifyIconData) error {
	if err := procShellNotifyIconW.Find(); err != nil {
		return fmt.Errorf("resolve Shell_NotifyIconW: %w", err)
	}
	r, _, callErr := procShellNotifyIconW.Call(uintptr(message), uintptr(unsafe.Pointer(data)))
	if r != 0 {
		return nil
	}
	var errno windows.Errno
	if errors.As(callErr, &errno) && errno != 0 {
		return fmt.Errorf("Shell_NotifyIconW: %w", errno)
	}
	return errors.New("Shell_NotifyIconW returned FALSE")
}
