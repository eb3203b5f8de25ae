package notify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("send: %w", newError(KindSpawnFailed, BackendNotifySend, cause))

	assert.ErrorIs(t, err, ErrSpawnFailed)
	assert.NotErrorIs(t, err, ErrInvalidText)
	assert.NotErrorIs(t, err, ErrNativeCallFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindSpawnFailed, KindOf(err))
	assert.Equal(t, "send: notify-send: spawn failed: boom", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, KindInvalidText, KindOf(ErrInvalidText))
	assert.Equal(t, "native call failed", KindNativeCallFailed.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestRequireNoNUL(t *testing.T) {
	assert.NoError(t, requireNoNUL("x", "title", "message"))

	err := requireNoNUL("x", "t", "a\x00b")
	assert.ErrorIs(t, err, ErrInvalidText)
	assert.Contains(t, err.Error(), "message contains a NUL byte at offset 1")

	err = requireNoNUL("x", "\x00", "m")
	assert.ErrorIs(t, err, ErrInvalidText)
	assert.Contains(t, err.Error(), "title")
}
