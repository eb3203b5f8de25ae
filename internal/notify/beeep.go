package notify

import (
	"sync"

	"github.com/gen2brain/beeep"
)

// beeep takes the application name from a package global, so setting it and
// sending must happen under one lock.
var beeepMu sync.Mutex

// Overridable for testing.
var (
	setBeeepAppName = func(name string) { beeep.AppName = name }
	beeepNotify     = func(title, message, icon string) error { return beeep.Notify(title, message, icon) }
)

// BeeepNotifier delegates to github.com/gen2brain/beeep, which picks its own
// mechanism per platform. Calls are serialized across all BeeepNotifiers
// because beeep keeps the application name in a package global.
type BeeepNotifier struct {
	AppName string
	Icon    string
}

func init() {
	register(BackendBeeep, func(opts Options) Notifier {
		return &BeeepNotifier{AppName: opts.AppName, Icon: opts.Icon}
	})
}

// Notify sends a desktop notification.
func (n *BeeepNotifier) Notify(title, message string) error {
	if err := requireNoNUL(BackendBeeep, title, message); err != nil {
		return err
	}

	beeepMu.Lock()
	defer beeepMu.Unlock()
	setBeeepAppName(n.AppName)
	if err := beeepNotify(title, message, n.Icon); err != nil {
		return newError(KindNativeCallFailed, BackendBeeep, err)
	}
	return nil
}
