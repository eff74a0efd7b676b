package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"visibility-srv/pkg/scope"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew_ShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	if !errors.Is(err, ErrSecretTooShort) {
		t.Errorf("error mismatch: got %v, want %v", err, ErrSecretTooShort)
	}
}

func TestGenerateAndVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "visibility", TTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := m.GenerateToken(scope.Payload{UserID: "u-1", Username: "Ana", Email: "ana@example.com", Role: "user"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got.UserID != "u-1" || got.Username != "Ana" || got.Email != "ana@example.com" {
		t.Errorf("payload mismatch: got %+v", got)
	}
	if got.ExpiresAt.IsZero() {
		t.Error("expected expiry to be set")
	}
}

func TestVerify_Rejects(t *testing.T) {
	m, _ := New(Config{SecretKey: testSecret, Issuer: "visibility"})
	other, _ := New(Config{SecretKey: strings.Repeat("x", 32), Issuer: "visibility"})
	foreign, _ := other.GenerateToken(scope.Payload{UserID: "u-1"})

	tests := map[string]string{
		"garbage":         "not-a-token",
		"wrong signature": foreign,
		"empty":           "",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("error mismatch: got %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}

func TestGenerateToken_RequiresSubject(t *testing.T) {
	m, _ := New(Config{SecretKey: testSecret})
	if _, err := m.GenerateToken(scope.Payload{}); !errors.Is(err, ErrMissingSubject) {
		t.Errorf("error mismatch: got %v, want %v", err, ErrMissingSubject)
	}
}
