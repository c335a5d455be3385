package util

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("unit-test-secret", time.Hour)

	token, err := m.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("Verify returned %q, want %q", userID, "user-42")
	}
}

func TestTokenVerifyFailures(t *testing.T) {
	m := NewTokenManager("unit-test-secret", time.Hour)

	valid, err := m.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Flip one bit in the signature segment.
	tampered := []byte(valid)
	tampered[len(tampered)-1] ^= 0x01

	expired, err := NewTokenManager("unit-test-secret", -time.Hour).Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	otherSecret, err := NewTokenManager("another-secret", time.Hour).Issue("user-42")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"tampered signature", string(tampered)},
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"malformed", "not-a-token"},
		{"empty", ""},
		{"truncated", valid[:strings.IndexByte(valid, '.')]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); err != ErrInvalidToken {
				t.Errorf("Verify(%s) error = %v, want ErrInvalidToken", tt.name, err)
			}
		})
	}
}
