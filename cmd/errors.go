package cmd

import (
	"fmt"

	"github.com/mblarsen/desktop-nfty/internal/notify"
)

// explainNotifyError adds a hint about the likely cause of a failed dispatch.
func explainNotifyError(err error) error {
	switch notify.KindOf(err) {
	case notify.KindSpawnFailed:
		return fmt.Errorf("%w\nIs the notification command installed and on your PATH? Set `command` in the config file to point at it", err)
	case notify.KindNativeCallFailed:
		return fmt.Errorf("%w\nIs a notification service running for this session? Try another backend with --backend", err)
	case notify.KindInvalidText:
		return fmt.Errorf("%w\nRemove NUL bytes from the title and message", err)
	default:
		return err
	}
}
