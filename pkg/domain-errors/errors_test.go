package dErrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNilReturnsNil(t *testing.T) {
	require.NoError(t, Wrap(nil, CodeInternal, "should vanish"))
}

func TestCodeOf(t *testing.T) {
	t.Run("direct domain error", func(t *testing.T) {
		err := New(CodeInsufficientFunds, "treasury is empty")
		assert.Equal(t, CodeInsufficientFunds, CodeOf(err))
	})

	t.Run("wrapped domain error survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", New(CodeUnauthorized, "not government"))
		assert.Equal(t, CodeUnauthorized, CodeOf(err))
		assert.True(t, HasCode(err, CodeUnauthorized))
	})

	t.Run("foreign error maps to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeUnauthorized:      http.StatusForbidden,
		CodeInsufficientFunds: http.StatusUnprocessableEntity,
		CodeTransferFailed:    http.StatusUnprocessableEntity,
		CodeInvalidAmount:     http.StatusBadRequest,
		CodeInvalidAddress:    http.StatusBadRequest,
		CodeBadRequest:        http.StatusBadRequest,
		CodeNotFound:          http.StatusNotFound,
		CodeInternal:          http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), "code %s", code)
	}
}
