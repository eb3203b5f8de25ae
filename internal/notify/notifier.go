package notify

// Notifier is an interface for sending desktop notifications.
//
// Implementations add no locking of their own. Calling Notify from several
// goroutines at once is exactly as safe as the native facility behind the
// backend. The beeep backend is the exception: it serializes its calls.
type Notifier interface {
	// Notify sends a desktop notification.
	Notify(title, message string) error
}

// Send displays a notification with the given body text and title using the
// default backend for this platform.
func Send(text, title string) error {
	n, err := New(DefaultBackend, Options{})
	if err != nil {
		return err
	}
	return n.Notify(title, text)
}
