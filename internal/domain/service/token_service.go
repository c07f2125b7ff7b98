package service

// Claims carries the identity information extracted from a validated token.
type Claims struct {
	UserID int64
	Roles  []string
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases. The
// storefront issues a single bearer token per login; there is no refresh flow.
type TokenService interface {
	// GenerateToken creates a signed access token for a user and their roles.
	GenerateToken(userID int64, roles []string) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
