package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageAndUnwrap(t *testing.T) {
	plain := New(KindInvalidAmount, "amount is required")
	assert.Equal(t, "amount is required", plain.Error())
	assert.Nil(t, plain.Unwrap())

	cause := stderrors.New("strconv failure")
	wrapped := Wrap(KindInvalidAmount, "invalid amount 'x'", cause)
	assert.Equal(t, "invalid amount 'x': strconv failure", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := Newf(KindNotFound, "quote %s not found", "BSW_abc")
	outer := fmt.Errorf("handling request: %w", err)

	assert.True(t, IsKind(outer, KindNotFound))
	assert.False(t, IsKind(outer, KindInvalidAmount))
	assert.False(t, IsKind(stderrors.New("plain"), KindNotFound))

	typed, ok := As(outer)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, typed.Kind)
}
