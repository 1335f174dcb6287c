package sdlrpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Ensure the error details satisfy this interface.
var _ ErrorDetailer = (*ErrorDetail)(nil)

func TestError(t *testing.T) {
	err := &ErrorModel{
		Detail: "test err",
	}
	assert.Nil(t, err.OrNil())

	// Add some children.
	err.Add(NewErrorDetail(ErrMissingMandatory, "parameters.foo", "bar", "test detail"))
	err.Add(fmt.Errorf("plain error"))

	// Confirm errors were added.
	assert.Equal(t, "test err: test detail (parameters.foo: bar); plain error", err.Error())
	assert.Len(t, err.Errors, 2)
	assert.Equal(t, "test detail (parameters.foo: bar)", err.Errors[0].Error())
	assert.Equal(t, "plain error", err.Errors[1].Error())
	assert.Same(t, err, err.OrNil())

	assert.ErrorIs(t, err, ErrMissingMandatory)
	assert.False(t, errors.Is(err, ErrShape))
}

func TestErrorDetailFormatting(t *testing.T) {
	assert.Equal(t, "msg", NewErrorDetail(ErrShape, "", nil, "msg").Error())
	assert.Equal(t, "msg (a.b)", NewErrorDetail(ErrShape, "a.b", nil, "msg").Error())
	assert.Equal(t, "msg (a.b: 1)", NewErrorDetail(ErrShape, "a.b", 1, "msg").Error())

	wrapped := fmt.Errorf("context: %w", NewErrorDetail(ErrUnknownKey, "k", nil, "msg"))
	assert.ErrorIs(t, wrapped, ErrUnknownKey)

	var detail *ErrorDetail
	assert.ErrorAs(t, wrapped, &detail)
	assert.Equal(t, "k", detail.ErrorDetail().Location)
}

func TestJoinLocation(t *testing.T) {
	assert.Equal(t, "a", joinLocation("", "a"))
	assert.Equal(t, "a.b", joinLocation("a", "b"))
}
