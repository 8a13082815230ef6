package service

import (
	"context"
	"errors"
	"testing"

	"docuforge/internal/domain"
	"docuforge/internal/repository/memory"
)

func newTestAuthService() *AuthService {
	return NewAuthService(memory.NewSessionStore(), discardLogger())
}

func TestLoginValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	tests := []struct {
		name    string
		req     LoginRequest
		wantMsg string
	}{
		{
			name:    "missing email",
			req:     LoginRequest{Password: "longenough"},
			wantMsg: "Enter a valid email address.",
		},
		{
			name:    "malformed email",
			req:     LoginRequest{Email: "not-an-email", Password: "longenough"},
			wantMsg: "Enter a valid email address.",
		},
		{
			name:    "email without tld",
			req:     LoginRequest{Email: "user@host", Password: "longenough"},
			wantMsg: "Enter a valid email address.",
		},
		{
			name:    "short password",
			req:     LoginRequest{Email: "user@example.com", Password: "seven77"},
			wantMsg: "Password must be at least 8 characters.",
		},
		{
			// email is checked before password
			name:    "both invalid",
			req:     LoginRequest{Email: "nope", Password: "x"},
			wantMsg: "Enter a valid email address.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, &tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("got %T, want validation error", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("got %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoginMintsFreshSessionEveryTime(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	req := &LoginRequest{Email: "Test@Company.com", Password: "password123"}

	user1, token1, err := svc.Login(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	user2, token2, err := svc.Login(ctx, req)
	if err != nil {
		t.Fatal(err)
	}

	if token1 == token2 {
		t.Error("repeated logins must mint distinct tokens")
	}
	if user1.Email != "test@company.com" || user2.Email != "test@company.com" {
		t.Errorf("email not normalized: %q / %q", user1.Email, user2.Email)
	}

	// both sessions stay live; there is no expiry
	if svc.Resolve(ctx, token1) == nil || svc.Resolve(ctx, token2) == nil {
		t.Error("expected both sessions to resolve")
	}
}

func TestSignupValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	tests := []struct {
		name    string
		req     SignupRequest
		wantMsg string
	}{
		{
			name:    "short full name",
			req:     SignupRequest{FullName: "A", Email: "a@b.co", Password: "password123"},
			wantMsg: "Full name must be at least 2 characters.",
		},
		{
			// full name is checked before email
			name:    "full name before email",
			req:     SignupRequest{FullName: " ", Email: "bad", Password: "x"},
			wantMsg: "Full name must be at least 2 characters.",
		},
		{
			name:    "bad email",
			req:     SignupRequest{FullName: "Ada Lovelace", Email: "bad", Password: "password123"},
			wantMsg: "Enter a valid email address.",
		},
		{
			name:    "short password",
			req:     SignupRequest{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "short"},
			wantMsg: "Password must be at least 8 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Signup(ctx, &tt.req)
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("got %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestSignupCreatesResolvableSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	user, token, err := svc.Signup(ctx, &SignupRequest{
		FullName: "  Ada Lovelace  ",
		Email:    "Ada@Example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if user.FullName != "Ada Lovelace" {
		t.Errorf("full name not trimmed: %q", user.FullName)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if len(token) != sessionTokenBytes*2 {
		t.Errorf("token length = %d, want %d hex chars", len(token), sessionTokenBytes*2)
	}

	resolved := svc.Resolve(ctx, token)
	if resolved == nil || resolved.ID != user.ID {
		t.Errorf("session did not resolve to the signed-up user")
	}
}

func TestResolveUnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	if svc.Resolve(ctx, "") != nil {
		t.Error("empty token must not resolve")
	}
	if svc.Resolve(ctx, "deadbeef") != nil {
		t.Error("unknown token must not resolve")
	}
}
