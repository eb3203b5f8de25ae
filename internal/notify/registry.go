package notify

import (
	"fmt"
	"sort"
	"strings"
)

// Backend names.
const (
	BackendShell      = "shell"
	BackendToast      = "toast"
	BackendDBus       = "dbus"
	BackendNotifySend = "notify-send"
	BackendOsaScript  = "osascript"
	BackendBeeep      = "beeep"
)

const (
	defaultAppName = "desktop-nfty"
	defaultIcon    = "dialog-information"
	defaultCommand = "notify-send"
)

// Options configures a backend. Zero values fall back to defaults.
type Options struct {
	// AppName identifies the sender to the notification service.
	AppName string
	// Icon is a themed icon name or path, where the backend supports one.
	Icon string
	// Command is the executable used by the notify-send backend.
	Command string
	// LegacyBodyClamp makes the shell backend copy at most 64 UTF-16 units
	// of the body, as older releases did.
	LegacyBodyClamp bool
}

func (o Options) withDefaults() Options {
	if o.AppName == "" {
		o.AppName = defaultAppName
	}
	if o.Icon == "" {
		o.Icon = defaultIcon
	}
	if o.Command == "" {
		o.Command = defaultCommand
	}
	return o
}

type factory func(opts Options) Notifier

// backends is written from init functions only.
var backends = map[string]factory{}

func register(name string, f factory) {
	if _, dup := backends[name]; dup {
		panic("notify: backend registered twice: " + name)
	}
	backends[name] = f
}

// New returns the named backend. An empty name selects DefaultBackend.
func New(name string, opts Options) (Notifier, error) {
	if name == "" {
		name = DefaultBackend
	}
	f, ok := backends[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return f(opts.withDefaults()), nil
}

// Backends lists the backends compiled into this build, sorted by name.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
