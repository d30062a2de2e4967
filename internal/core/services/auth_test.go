package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven/mocks"
	"github.com/custodia-labs/insight-core/internal/core/ports/driving"
)

func newTestAuthService() (*mocks.MockAuthAdapter, *authService) {
	authAdapter := mocks.NewMockAuthAdapter()
	svc := NewAuthService(authAdapter, mocks.NewMockIDGenerator(), nil).(*authService)
	return authAdapter, svc
}

func TestAuthService_IssueToken(t *testing.T) {
	_, svc := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name     string
		req      driving.IssueTokenRequest
		wantRole domain.Role
		wantTTL  time.Duration
		wantErr  error
	}{
		{
			name:     "defaults to member",
			req:      driving.IssueTokenRequest{Subject: "dashboard"},
			wantRole: domain.RoleMember,
			wantTTL:  DefaultTokenTTL,
		},
		{
			name:     "admin with ttl",
			req:      driving.IssueTokenRequest{Subject: "ops", Role: domain.RoleAdmin, TTL: time.Hour},
			wantRole: domain.RoleAdmin,
			wantTTL:  time.Hour,
		},
		{
			name:    "missing subject",
			req:     driving.IssueTokenRequest{Role: domain.RoleAdmin},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "unknown role",
			req:     driving.IssueTokenRequest{Subject: "ops", Role: "owner"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued, err := svc.IssueToken(ctx, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if issued.Token == "" {
				t.Error("expected non-empty token")
			}
			if issued.Role != tt.wantRole {
				t.Errorf("expected role %s, got %s", tt.wantRole, issued.Role)
			}
			expected := time.Now().Add(tt.wantTTL)
			if diff := expected.Sub(issued.ExpiresAt); diff > 5*time.Second || diff < -5*time.Second {
				t.Errorf("expected expiry near %v, got %v", expected, issued.ExpiresAt)
			}

			// Round trip through validation
			authCtx, err := svc.ValidateToken(ctx, issued.Token)
			if err != nil {
				t.Fatalf("failed to validate issued token: %v", err)
			}
			if authCtx.Subject != tt.req.Subject {
				t.Errorf("expected subject %s, got %s", tt.req.Subject, authCtx.Subject)
			}
			if authCtx.TokenID == "" {
				t.Error("expected token id to be set")
			}
		})
	}
}

func TestAuthService_IssueToken_AdapterError(t *testing.T) {
	authAdapter, svc := newTestAuthService()
	authAdapter.GenerateErr = errors.New("signing failed")

	_, err := svc.IssueToken(context.Background(), driving.IssueTokenRequest{Subject: "ops"})
	if err == nil || err.Error() != "signing failed" {
		t.Fatalf("expected signing error, got %v", err)
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	authAdapter, svc := newTestAuthService()
	ctx := context.Background()

	sign := func(claims *domain.TokenClaims) string {
		token, err := authAdapter.GenerateToken(claims)
		if err != nil {
			t.Fatalf("failed to sign claims: %v", err)
		}
		return token
	}

	now := time.Now()
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name: "valid admin",
			token: sign(&domain.TokenClaims{
				Subject: "ops", Role: domain.RoleAdmin, TokenID: "t1",
				IssuedAt: now.Unix(), ExpiresAt: now.Add(time.Hour).Unix(),
			}),
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: domain.ErrTokenInvalid,
		},
		{
			name:    "garbage",
			token:   "not-a-token!",
			wantErr: domain.ErrTokenInvalid,
		},
		{
			name: "expired",
			token: sign(&domain.TokenClaims{
				Subject: "ops", Role: domain.RoleAdmin,
				IssuedAt: now.Add(-2 * time.Hour).Unix(), ExpiresAt: now.Add(-time.Hour).Unix(),
			}),
			wantErr: domain.ErrTokenExpired,
		},
		{
			name: "unknown role",
			token: sign(&domain.TokenClaims{
				Subject: "ops", Role: "owner", ExpiresAt: now.Add(time.Hour).Unix(),
			}),
			wantErr: domain.ErrTokenInvalid,
		},
		{
			name: "missing subject",
			token: sign(&domain.TokenClaims{
				Role: domain.RoleMember, ExpiresAt: now.Add(time.Hour).Unix(),
			}),
			wantErr: domain.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authCtx, err := svc.ValidateToken(ctx, tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !authCtx.IsAdmin() {
				t.Error("expected admin context")
			}
			if authCtx.TokenID != "t1" {
				t.Errorf("expected token id t1, got %s", authCtx.TokenID)
			}
		})
	}
}
