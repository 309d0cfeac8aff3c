package httperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestFromResponse_UsesBodyMessage(t *testing.T) {
	err := FromResponse(404, []byte(`{"message":"department not found"}`))
	if err.Message != "department not found" {
		t.Fatalf("unexpected message: %s", err.Message)
	}
	if err.StatusCode != 404 {
		t.Fatalf("unexpected status: %d", err.StatusCode)
	}
}

func TestFromResponse_FallsBackToStatusText(t *testing.T) {
	err := FromResponse(502, []byte("not json at all"))
	if err.Message != "Bad Gateway" {
		t.Fatalf("unexpected message: %s", err.Message)
	}
	if err.StatusCode != 502 {
		t.Fatalf("unexpected status: %d", err.StatusCode)
	}
}

func TestNew_DefaultsStatusTo500(t *testing.T) {
	err := New("boom", 0)
	if err.StatusCode != 500 {
		t.Fatalf("expected default 500, got %d", err.StatusCode)
	}
	if New("", -1).Message != "request failed" {
		t.Fatal("expected generic message")
	}
}

func TestNormalize_StatusCodeKey(t *testing.T) {
	err := Normalize(map[string]any{"message": "nope", "statusCode": 401})
	if err.StatusCode != 401 || err.Message != "nope" {
		t.Fatalf("unexpected normalization: %+v", err)
	}
}

func TestNormalize_StatusKeyFallback(t *testing.T) {
	err := Normalize(map[string]any{"status": float64(403)})
	if err.StatusCode != 403 {
		t.Fatalf("expected 403, got %d", err.StatusCode)
	}
	if err.Message != "request failed" {
		t.Fatalf("expected generic message, got %s", err.Message)
	}
}

func TestNormalize_WrappedError(t *testing.T) {
	inner := New("forbidden", 403)
	wrapped := fmt.Errorf("call failed: %w", inner)
	if got := Normalize(wrapped); got != inner {
		t.Fatalf("expected unwrap to inner error, got %+v", got)
	}
	if StatusOf(wrapped) != 403 {
		t.Fatalf("StatusOf should see through wrapping")
	}
}

func TestStatusOf_UnknownError(t *testing.T) {
	if got := StatusOf(errors.New("plain")); got != 0 {
		t.Fatalf("expected 0 for plain errors, got %d", got)
	}
}
