package ports

import "context"

// AuthService authenticates credentials and resolves bearer tokens back to
// member identities.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed access
	// token. Unknown email and wrong password both surface as
	// domain.ErrLoginFailed with no observable difference.
	Login(ctx context.Context, email, password string) (string, error)
	// ParseToken decodes a token into the member id it was issued for.
	ParseToken(token string) (int64, error)
	// Roles returns the role tags granted to a member; empty when none.
	Roles(ctx context.Context, memberID int64) ([]string, error)
}
