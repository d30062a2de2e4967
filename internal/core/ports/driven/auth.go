package driven

import "github.com/custodia-labs/insight-core/internal/core/domain"

// AuthAdapter handles token cryptographic operations.
type AuthAdapter interface {
	// GenerateToken signs the claims into a token string
	GenerateToken(claims *domain.TokenClaims) (string, error)

	// ParseToken validates a token string and extracts its claims
	ParseToken(token string) (*domain.TokenClaims, error)
}
