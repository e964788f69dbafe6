package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := Backend("customer already exists")
	assert.Equal(t, "customer already exists", err.Error())
	assert.Equal(t, ErrCodeBackend, err.Code)
}

func TestAppErrorWithCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(cause, ErrCodeConnection, "connection error")

	assert.Equal(t, "connection error: dial tcp: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeBackend, "anything"))
}

func TestWrapPreservesInnerAppError(t *testing.T) {
	inner := Unauthorized("unauthorized")
	outer := Wrap(inner, ErrCodeBackend, "error fetching customers")

	// errors.As walks the chain, so the outer code wins for isCode checks
	// but the inner error is still reachable.
	var appErr *AppError
	require.True(t, errors.As(outer, &appErr))
	assert.Equal(t, ErrCodeBackend, appErr.Code)
	assert.True(t, IsUnauthorized(errors.Unwrap(outer)))
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"unauthorized match", Unauthorized("no"), IsUnauthorized, true},
		{"unauthorized mismatch", Backend("no"), IsUnauthorized, false},
		{"backend match", Backendf("status %d", 500), IsBackend, true},
		{"connection match", Connection("connection error"), IsConnection, true},
		{"validation match", ValidationField("email", "email is required"), IsValidation, true},
		{"plain error", errors.New("boom"), IsBackend, false},
		{"wrapped appError", fmt.Errorf("op: %w", Connection("connection error")), IsConnection, true},
		{"nil", nil, IsBackend, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestValidationFieldCarriesField(t *testing.T) {
	err := ValidationField("documentType", "unsupported document type")
	assert.Equal(t, "documentType", err.Field)
	assert.Equal(t, ErrCodeValidation, err.Code)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "customer not found", UserMessage(Backend("customer not found"), "fallback"))
	assert.Equal(t, "fallback", UserMessage(errors.New("raw transport noise"), "fallback"))
	assert.Equal(t, "fallback", UserMessage(nil, "fallback"))

	// Message-less AppError falls back too.
	messageless := &AppError{Code: ErrCodeDecode, Cause: errors.New("unexpected EOF")}
	assert.Equal(t, "fallback", UserMessage(messageless, "fallback"))
}
