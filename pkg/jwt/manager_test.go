package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestManager_GenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := m.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.Subject != "admin" || claims.Role != "admin" {
		t.Errorf("unexpected claims: subject=%q role=%q", claims.Subject, claims.Role)
	}
}

func TestManager_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = NewManager("secret-b", time.Hour).VerifyToken(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("test-secret", time.Millisecond)

	token, err := m.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := m.VerifyToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestManager_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	if _, err := m.VerifyToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
