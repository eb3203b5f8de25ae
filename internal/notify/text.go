package notify

import (
	"fmt"
	"strings"
)

// requireNoNUL rejects text that cannot cross a NUL-terminated boundary
// (C strings, argv entries, D-Bus strings) without being cut short.
func requireNoNUL(backend, title, message string) error {
	if i := strings.IndexByte(title, 0); i >= 0 {
		return newError(KindInvalidText, backend, fmt.Errorf("title contains a NUL byte at offset %d", i))
	}
	if i := strings.IndexByte(message, 0); i >= 0 {
		return newError(KindInvalidText, backend, fmt.Errorf("message contains a NUL byte at offset %d", i))
	}
	return nil
}
