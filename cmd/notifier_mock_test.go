package cmd

import (
	"testing"

	"github.com/mblarsen/desktop-nfty/internal/notify"
)

type mockNotifier struct {
	NotifyCount int
	LastTitle   string
	LastMessage string
	Err         error
}

func (m *mockNotifier) Notify(title, message string) error {
	m.NotifyCount++
	m.LastTitle = title
	m.LastMessage = message
	return m.Err
}

// useMockNotifier routes every backend lookup to m and records the backend
// name that was requested.
func useMockNotifier(t *testing.T, m *mockNotifier, requested *string) {
	original := newNotifier
	newNotifier = func(name string, opts notify.Options) (notify.Notifier, error) {
		if requested != nil {
			*requested = name
		}
		return m, nil
	}
	t.Cleanup(func() { newNotifier = original })
}
