package auth

import (
	"testing"
	"time"
)

func TestSignAndVerify(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	token, err := signer.Sign("user-1", "jane@example.com", "Jane Doe")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %s", claims.Subject)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("expected email jane@example.com, got %s", claims.Email)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer := NewSigner("test-secret", -time.Hour)

	token, err := signer.Sign("user-1", "", "")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := signer.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)
	other := NewSigner("other-secret", time.Hour)

	token, err := signer.Sign("user-1", "", "")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := other.Verify(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSignRequiresUserID(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)
	if _, err := signer.Sign("", "", ""); err == nil {
		t.Fatalf("expected error for empty user id")
	}
}
