package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/memberhub/member-api/internal/api/metrics"
	"github.com/memberhub/member-api/internal/core/domain"
	"github.com/memberhub/member-api/internal/core/ports"
	"github.com/memberhub/member-api/internal/core/token"
)

// AuthService verifies credentials, issues access tokens, and resolves
// tokens back to member identities for the request authenticator.
type AuthService struct {
	members ports.MemberRepository
	roles   ports.RoleRepository
	codec   *token.Codec
	log     zerolog.Logger
}

func NewAuthService(members ports.MemberRepository, roles ports.RoleRepository, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{members: members, roles: roles, codec: codec, log: log}
}

// Login checks the email/password pair and returns a signed token keyed on
// the member's id. Unknown email and wrong password both come back as
// ErrLoginFailed so the response never reveals which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	member, err := s.members.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrLoginFailed
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrLoginFailed
	}

	signed, err := s.codec.Encode(member.ID)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("member_id", member.ID).Msg("member logged in")
	return signed, nil
}

// ParseToken resolves a token to the member id it asserts. Codec failures
// propagate unchanged as ErrInvalidToken.
func (s *AuthService) ParseToken(tokenString string) (int64, error) {
	return s.codec.Decode(tokenString)
}

// Roles returns the role tags granted to a member. A member with no
// assignments gets an empty slice, not an error.
func (s *AuthService) Roles(ctx context.Context, memberID int64) ([]string, error) {
	roles, err := s.roles.FindAllByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []string{}
	}
	return roles, nil
}
