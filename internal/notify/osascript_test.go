package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppleScriptString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Build finished", expected: `"Build finished"`},
		{name: "empty", input: "", expected: `""`},
		{name: "double quotes", input: `say "hi"`, expected: `"say \"hi\""`},
		{name: "backslash", input: `C:\temp`, expected: `"C:\\temp"`},
		{name: "backslash before quote", input: `\"`, expected: `"\\\""`},
		{name: "newline is kept literally", input: "line1\nline2", expected: "\"line1\nline2\""},
		{name: "script injection stays inside the literal", input: `" & do shell script "id`, expected: `"\" & do shell script \"id"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, appleScriptString(tc.input))
		})
	}
}
