package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

// IssueTokenRequest describes an API token to mint
type IssueTokenRequest struct {
	Subject string        `json:"subject"`
	Role    domain.Role   `json:"role"`
	TTL     time.Duration `json:"ttl" swaggertype:"integer"`
}

// AuthService handles API token authentication
type AuthService interface {
	// ValidateToken validates a JWT token and returns the auth context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)

	// IssueToken mints a signed API token
	IssueToken(ctx context.Context, req IssueTokenRequest) (*domain.IssuedToken, error)
}
