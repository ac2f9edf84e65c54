package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("slow down")

	if err.Error() != "slow down" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "slow down")
	}

	if !IsRateLimitError(err) {
		t.Fatalf("IsRateLimitError returned false for RateLimitError")
	}

	wrapped := stdErrors.Join(err)
	if !IsRateLimitError(wrapped) {
		t.Fatalf("IsRateLimitError returned false for wrapped RateLimitError")
	}

	if !IsFetchError(err) {
		t.Fatalf("IsFetchError returned false for RateLimitError")
	}
}

func TestRateLimitErrorWithRetry_VariousDurations(t *testing.T) {
	tests := []struct {
		name            string
		duration        time.Duration
		expectedMessage string
	}{
		{name: "no hint", duration: 0, expectedMessage: "rate limited"},
		{name: "30 seconds", duration: 30 * time.Second, expectedMessage: "rate limited (retry after 30s)"},
		{name: "2 minutes", duration: 2 * time.Minute, expectedMessage: "rate limited (retry after 2m0s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRateLimitErrorWithRetry("rate limited", tt.duration)
			if err.Error() != tt.expectedMessage {
				t.Fatalf("Error message = %q, want %q", err.Error(), tt.expectedMessage)
			}
			if err.RetryAfter != tt.duration {
				t.Fatalf("RetryAfter = %v, want %v", err.RetryAfter, tt.duration)
			}
		})
	}
}

func TestFetchError(t *testing.T) {
	cause := stdErrors.New("connection refused")

	withStatus := NewFetchError(440, 503, cause)
	if got, want := withStatus.Error(), "fetch app 440: HTTP 503: connection refused"; got != want {
		t.Fatalf("Error message = %q, want %q", got, want)
	}

	noStatus := NewFetchError(440, 0, cause)
	if got, want := noStatus.Error(), "fetch app 440: connection refused"; got != want {
		t.Fatalf("Error message = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("load: %w", noStatus)
	if !IsFetchError(wrapped) {
		t.Fatalf("IsFetchError returned false for wrapped FetchError")
	}
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("FetchError does not unwrap to its cause")
	}
	if IsParseError(wrapped) || IsNotSuccessfulError(wrapped) {
		t.Fatalf("FetchError matched an unrelated error type")
	}
}

func TestNotSuccessfulError(t *testing.T) {
	err := NewNotSuccessfulError(99999)

	expected := "store API reported unsuccessful lookup for app 99999"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsNotSuccessfulError(fmt.Errorf("wrapped: %w", err)) {
		t.Fatalf("IsNotSuccessfulError returned false for wrapped NotSuccessfulError")
	}
	if IsFetchError(err) {
		t.Fatalf("NotSuccessfulError must not count as a fetch failure")
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("440.data.name", "expected string")

	expected := `unexpected payload at "440.data.name": expected string`
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsParseError(stdErrors.Join(err, stdErrors.New("context"))) {
		t.Fatalf("IsParseError returned false for joined ParseError")
	}
}
