//go:build darwin

package notify

// DefaultBackend is the backend used when none is configured.
const DefaultBackend = BackendOsaScript
