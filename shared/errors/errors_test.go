package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusHelpers(t *testing.T) {
	notFound := &ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}

	tests := []struct {
		name         string
		err          error
		notFound     bool
		unauthorized bool
		status       int
	}{
		{name: "not found", err: notFound, notFound: true, status: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", notFound), notFound: true, status: http.StatusNotFound},
		{name: "unauthorized", err: ErrUnauthorized, unauthorized: true, status: http.StatusUnauthorized},
		{name: "plain error", err: errors.New("boom"), status: http.StatusInternalServerError},
		{name: "nil", err: nil, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.unauthorized, IsUnauthorized(tt.err))
			assert.Equal(t, tt.status, StatusCode(tt.err))
		})
	}
}
