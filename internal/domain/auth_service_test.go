package domain

import (
	"context"
	"testing"
)

func TestAuthLoginAndValidate(t *testing.T) {
	svc := NewAuthService("hunter2", "topsecret")
	ctx := context.Background()

	token, err := svc.Login(ctx, "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	ok, err := svc.ValidateToken(ctx, token)
	if err != nil || !ok {
		t.Fatalf("ValidateToken = (%v, %v), want (true, nil)", ok, err)
	}
}

func TestAuthRejectsWrongPassword(t *testing.T) {
	svc := NewAuthService("hunter2", "topsecret")

	if _, err := svc.Login(context.Background(), "wrong"); err == nil {
		t.Fatal("expected login failure")
	}
}

func TestAuthRejectsEmptyConfiguredPassword(t *testing.T) {
	// An unset password must not make the API open.
	svc := NewAuthService("", "topsecret")

	if _, err := svc.Login(context.Background(), ""); err == nil {
		t.Fatal("expected login failure with empty configured password")
	}
}

func TestAuthRejectsForgedToken(t *testing.T) {
	svc := NewAuthService("hunter2", "topsecret")

	ok, err := svc.ValidateToken(context.Background(), "deadbeef")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if ok {
		t.Fatal("forged token accepted")
	}
}
