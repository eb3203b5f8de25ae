package notify

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed dispatch.
type Kind int

const (
	// KindNativeCallFailed means the OS-level display call reported failure.
	KindNativeCallFailed Kind = iota + 1
	// KindInvalidText means the text cannot be encoded as a NUL-terminated string.
	KindInvalidText
	// KindSpawnFailed means the external notification command could not be started.
	KindSpawnFailed
)

func (k Kind) String() string {
	switch k {
	case KindNativeCallFailed:
		return "native call failed"
	case KindInvalidText:
		return "invalid text"
	case KindSpawnFailed:
		return "spawn failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for use with errors.Is.
var (
	ErrNativeCallFailed = &Error{Kind: KindNativeCallFailed}
	ErrInvalidText      = &Error{Kind: KindInvalidText}
	ErrSpawnFailed      = &Error{Kind: KindSpawnFailed}
)

// ErrUnknownBackend is returned by New for a backend name that is not
// compiled into this build.
var ErrUnknownBackend = errors.New("unknown notification backend")

// Error is returned by every backend when a notification could not be
// dispatched.
type Error struct {
	Kind    Kind
	Backend string
	Err     error
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Backend != "" {
		sb.WriteString(e.Backend)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Kind.String())
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, backend string, err error) *Error {
	return &Error{Kind: kind, Backend: backend, Err: err}
}
