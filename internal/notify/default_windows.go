//go:build windows

package notify

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = BackendShell
