package core

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestAPIErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantAuth  bool
		wantForb  bool
		wantNotF  bool
		wantServr bool
	}{
		{name: "nil"},
		{name: "401", err: NewAPIError(http.StatusUnauthorized, "bad token"), wantAuth: true},
		{name: "403", err: NewAPIError(http.StatusForbidden, "not allowed"), wantForb: true},
		{name: "404", err: NewAPIError(http.StatusNotFound, "gone"), wantNotF: true},
		{name: "400", err: NewAPIError(http.StatusBadRequest, "nope")},
		{name: "500", err: NewAPIError(http.StatusInternalServerError, "boom"), wantServr: true},
		{name: "503", err: NewAPIError(http.StatusServiceUnavailable, "down"), wantServr: true},
		{name: "network error", err: errors.New("connection refused"), wantServr: true},
		{name: "wrapped 401", err: errors.Wrap(NewAPIError(http.StatusUnauthorized, "bad token"), "request failed"), wantAuth: true},
		{name: "validation error", err: NewValidationError(errors.New("invalid"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.err); got != tt.wantAuth {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.wantAuth)
			}
			if got := IsAuthorizationError(tt.err); got != tt.wantForb {
				t.Errorf("IsAuthorizationError() = %v, want %v", got, tt.wantForb)
			}
			if got := IsNotFound(tt.err); got != tt.wantNotF {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.wantNotF)
			}
			if got := IsServerError(tt.err); got != tt.wantServr {
				t.Errorf("IsServerError() = %v, want %v", got, tt.wantServr)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError(http.StatusNotFound, "")
	if want := http.StatusText(http.StatusNotFound); err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}
