package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
	"github.com/custodia-labs/insight-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// DefaultTokenTTL is the lifetime of issued API tokens
const DefaultTokenTTL = 24 * time.Hour

// authService implements the AuthService interface.
// Tokens are stateless: validity is fully determined by signature and expiry.
type authService struct {
	authAdapter driven.AuthAdapter
	ids         driven.IDGenerator
	tokenTTL    time.Duration
	logger      *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(authAdapter driven.AuthAdapter, ids driven.IDGenerator, logger *slog.Logger) driving.AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		authAdapter: authAdapter,
		ids:         ids,
		tokenTTL:    DefaultTokenTTL,
		logger:      logger,
	}
}

// ValidateToken validates a JWT token and returns the auth context
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	// Parse and validate JWT
	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	// Check expiration
	if claims.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	if claims.Subject == "" || !claims.Role.IsValid() {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.AuthContext{
		Subject: claims.Subject,
		Role:    claims.Role,
		TokenID: claims.TokenID,
	}, nil
}

// IssueToken mints a signed API token
func (s *authService) IssueToken(ctx context.Context, req driving.IssueTokenRequest) (*domain.IssuedToken, error) {
	if req.Subject == "" {
		return nil, domain.ErrInvalidInput
	}

	role := req.Role
	if role == "" {
		role = domain.RoleMember
	}
	if !role.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	ttl := req.TTL
	if ttl <= 0 {
		ttl = s.tokenTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &domain.TokenClaims{
		Subject:   req.Subject,
		Role:      role,
		TokenID:   s.ids.NewID(),
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := s.authAdapter.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	s.logger.Info("api token issued", "subject", req.Subject, "role", role, "token_id", claims.TokenID)

	return &domain.IssuedToken{
		Token:     token,
		Subject:   req.Subject,
		Role:      role,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}
