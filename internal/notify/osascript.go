package notify

import "strings"

var appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	return `"` + appleScriptEscaper.Replace(s) + `"`
}
