package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"validation error", NewValidation("bad units"), "VALIDATION"},
		{"not found error", NewNotFound("no such order"), "NOT_FOUND"},
		{"conflict error", NewConflict("already paid"), "CONFLICT"},
		{"internal error", NewInternal("save failed", stderrors.New("io")), "INTERNAL"},
		{"wrapped app error keeps its type", fmt.Errorf("outer: %w", NewValidation("bad")), "VALIDATION"},
		{"context canceled", context.Canceled, "canceled"},
		{"context deadline", context.DeadlineExceeded, "deadline_exceeded"},
		{"plain error", stderrors.New("boom"), "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kind(tt.err))
		})
	}
}

func TestWrapPreservesType(t *testing.T) {
	err := Wrap(NewNotFound("order 42"), "mark paid")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "mark paid")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
}
