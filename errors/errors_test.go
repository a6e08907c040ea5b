package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinels(t *testing.T) {
	err := Wrap(ErrNoQuestion, "selecting next attribute")
	assert.True(t, Is(err, ErrNoQuestion))
	assert.False(t, Is(err, ErrNoGame))

	assert.True(t, IsNoGameError(Wrapf(ErrNoGame, "user %d", 7)))
	assert.False(t, IsNoGameError(nil))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("entity %d", 42)
	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "entity 42")
}
