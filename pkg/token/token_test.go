package token

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-signing-secret"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueValidateRoundTrip(t *testing.T) {
	svc := NewService(testSecret, 7*24*time.Hour)
	raw, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userID, err := svc.Validate(raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("unexpected subject: %q", userID)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewService(testSecret, time.Hour)
	raw, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	verifier := NewService("a-different-secret", time.Hour)
	if _, err := verifier.Validate(raw); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewService(testSecret, time.Hour)
	for _, raw := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := svc.Validate(raw); !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed for %q, got %v", raw, err)
		}
	}
}

func TestValidateExpiry(t *testing.T) {
	issuedAt := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	ttl := 7 * 24 * time.Hour

	issuer := NewService(testSecret, ttl)
	issuer.now = fixedClock(issuedAt)
	raw, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	beforeExpiry := NewService(testSecret, ttl)
	beforeExpiry.now = fixedClock(issuedAt.Add(ttl - time.Minute))
	if _, err := beforeExpiry.Validate(raw); err != nil {
		t.Fatalf("expected token valid just before expiry, got %v", err)
	}

	afterExpiry := NewService(testSecret, ttl)
	afterExpiry.now = fixedClock(issuedAt.Add(ttl + time.Minute))
	if _, err := afterExpiry.Validate(raw); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestReasonsAllMatchErrInvalid(t *testing.T) {
	for _, reason := range []error{ErrMalformed, ErrSignatureInvalid, ErrExpired} {
		if !errors.Is(reason, ErrInvalid) {
			t.Fatalf("%v does not match ErrInvalid", reason)
		}
	}
}
