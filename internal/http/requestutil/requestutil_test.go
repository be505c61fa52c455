package requestutil

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSanitizeRequestIDKeepsValid(t *testing.T) {
	for _, id := range []string{"abc", "req-123", "A_b-9", strings.Repeat("x", 64)} {
		if got := SanitizeRequestID(id); got != id {
			t.Errorf("expected %q to be preserved, got %q", id, got)
		}
	}
}

func TestSanitizeRequestIDReplacesInvalid(t *testing.T) {
	for _, id := range []string{"", "has space", "new\nline", "x;y", strings.Repeat("x", 65)} {
		got := SanitizeRequestID(id)
		if got == id || got == "" {
			t.Errorf("expected %q to be replaced, got %q", id, got)
		}
		if !requestIDPattern.MatchString(got) {
			t.Errorf("replacement %q is not itself valid", got)
		}
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewRequestID()
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	if got := ClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	if got := ClientIP(req); got != "192.0.2.1:1234" {
		t.Fatalf("expected remote addr, got %q", got)
	}
}

func TestClientIPNilRequest(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}
}
