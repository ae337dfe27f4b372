package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCause(t *testing.T) {
	base := New("boom")
	wrapped := Wrapf(Wrap(base, "inner"), "outer %d", 1)

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Cause(wrapped))
	assert.Equal(t, "outer 1: inner: boom", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errors_test.go")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
}

type codeErr struct{ code int }

func (e *codeErr) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsThroughJoin(t *testing.T) {
	joined := Join(New("other"), Wrap(&codeErr{code: 7}, "ctx"))

	var target *codeErr
	if assert.True(t, As(joined, &target)) {
		assert.Equal(t, 7, target.code)
	}
}
