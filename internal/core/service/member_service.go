package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/memberhub/member-api/internal/api/metrics"
	"github.com/memberhub/member-api/internal/core/domain"
	"github.com/memberhub/member-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// MemberService orchestrates sign-up and member CRUD on top of the member
// and role repositories.
type MemberService struct {
	members ports.MemberRepository
	roles   ports.RoleRepository
	log     zerolog.Logger
}

func NewMemberService(members ports.MemberRepository, roles ports.RoleRepository, log zerolog.Logger) *MemberService {
	return &MemberService{members: members, roles: roles, log: log}
}

// SignUp registers a new member with the default USER role. The email
// uniqueness pre-check races with concurrent sign-ups; the repository's
// unique index is the final arbiter and also reports ErrEmailExists.
func (s *MemberService) SignUp(ctx context.Context, email, password, nickname string) (*ports.MemberProjection, error) {
	taken, err := s.members.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.members.Create(ctx, &domain.Member{
		Email:        email,
		PasswordHash: string(hash),
		Nickname:     nickname,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if err == domain.ErrEmailExists {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	if err := s.roles.Assign(ctx, created.ID, domain.RoleUser); err != nil {
		s.log.Error().Err(err).Int64("member_id", created.ID).Msg("failed to assign default role")
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("member_id", created.ID).Msg("member registered")

	return projection(created), nil
}

// GetMember fetches a single member projection.
func (s *MemberService) GetMember(ctx context.Context, id int64) (*ports.MemberProjection, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return projection(member), nil
}

// GetMembers returns one page of member projections. Page is 1-based; the
// limit is capped at maxPageLimit.
func (s *MemberService) GetMembers(ctx context.Context, filter ports.ListMembersFilter) (*ports.MemberPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	members, total, err := s.members.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	content := make([]ports.MemberProjection, 0, len(members))
	for _, m := range members {
		content = append(content, *projection(m))
	}

	return &ports.MemberPage{
		Content: content,
		Page:    filter.Page,
		Limit:   filter.Limit,
		Total:   total,
	}, nil
}

// IsEmailTaken reports email availability: nil when free, ErrEmailExists
// when already registered.
func (s *MemberService) IsEmailTaken(ctx context.Context, email string) error {
	taken, err := s.members.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailExists
	}
	return nil
}

// Modify updates a member's nickname, and password when a new one is given.
// Strictly self-service: even ADMIN cannot modify another member's record.
func (s *MemberService) Modify(ctx context.Context, targetID, requesterID int64, data ports.MemberModification) (*ports.MemberProjection, error) {
	if targetID != requesterID {
		return nil, domain.ErrAccessDenied
	}

	member, err := s.members.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	member.Nickname = data.Nickname
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		member.PasswordHash = string(hash)
	}
	member.UpdatedAt = time.Now().UTC()

	updated, err := s.members.Update(ctx, member)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("member_id", updated.ID).Msg("member modified")
	return projection(updated), nil
}

func projection(m *domain.Member) *ports.MemberProjection {
	return &ports.MemberProjection{
		ID:       m.ID,
		Email:    m.Email,
		Nickname: m.Nickname,
	}
}
