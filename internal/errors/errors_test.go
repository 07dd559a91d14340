package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: 7}, "lookup")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestCauseUnwrapsStack(t *testing.T) {
	root := New("root")
	assert.Equal(t, root, Cause(Wrapf(WithStack(root), "ctx %d", 1)))
	assert.True(t, Is(WithMessage(root, "more"), root))
}
