package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/memberhub/member-api/internal/core/domain"
	"github.com/memberhub/member-api/internal/core/ports"
	"github.com/memberhub/member-api/internal/core/token"
)

type stubMemberRepo struct {
	nextID  int64
	byEmail map[string]*domain.Member
	byID    map[int64]*domain.Member
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{
		byEmail: make(map[string]*domain.Member),
		byID:    make(map[int64]*domain.Member),
	}
}

func cloneMember(m *domain.Member) *domain.Member {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubMemberRepo) Create(_ context.Context, member *domain.Member) (*domain.Member, error) {
	if _, exists := r.byEmail[member.Email]; exists {
		return nil, domain.ErrEmailExists
	}
	r.nextID++
	copy := cloneMember(member)
	copy.ID = r.nextID
	r.byEmail[copy.Email] = copy
	r.byID[copy.ID] = copy
	return cloneMember(copy), nil
}

func (r *stubMemberRepo) FindByEmail(_ context.Context, email string) (*domain.Member, error) {
	if m, ok := r.byEmail[email]; ok {
		return cloneMember(m), nil
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) FindByID(_ context.Context, id int64) (*domain.Member, error) {
	if m, ok := r.byID[id]; ok {
		return cloneMember(m), nil
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *stubMemberRepo) Update(_ context.Context, member *domain.Member) (*domain.Member, error) {
	existing, ok := r.byID[member.ID]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	delete(r.byEmail, existing.Email)
	copy := cloneMember(member)
	r.byID[copy.ID] = copy
	r.byEmail[copy.Email] = copy
	return cloneMember(copy), nil
}

func (r *stubMemberRepo) List(_ context.Context, filter ports.ListMembersFilter) ([]*domain.Member, int64, error) {
	all := make([]*domain.Member, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if m, ok := r.byID[id]; ok {
			all = append(all, cloneMember(m))
		}
	}
	start := (filter.Page - 1) * filter.Limit
	if start >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

type stubRoleRepo struct {
	assignments map[int64][]string
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{assignments: make(map[int64][]string)}
}

func (r *stubRoleRepo) Assign(_ context.Context, memberID int64, role string) error {
	r.assignments[memberID] = append(r.assignments[memberID], role)
	return nil
}

func (r *stubRoleRepo) FindAllByMemberID(_ context.Context, memberID int64) ([]string, error) {
	return r.assignments[memberID], nil
}

func newTestAuthService(members *stubMemberRepo, roles *stubRoleRepo) *AuthService {
	return NewAuthService(members, roles, token.NewCodec("secret", 0), zerolog.Nop())
}

func registerMember(t *testing.T, members *stubMemberRepo, roles *stubRoleRepo, email, password string) *ports.MemberProjection {
	t.Helper()
	svc := NewMemberService(members, roles, zerolog.Nop())
	created, err := svc.SignUp(context.Background(), email, password, "nick")
	if err != nil {
		t.Fatalf("sign up %s: %v", email, err)
	}
	return created
}

func TestAuthService_Login_IssuesResolvableToken(t *testing.T) {
	members, roles := newStubMemberRepo(), newStubRoleRepo()
	svc := newTestAuthService(members, roles)

	created := registerMember(t, members, roles, "alice@example.com", "s3cretpass")

	signed, err := svc.Login(context.Background(), "alice@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}

	id, err := svc.ParseToken(signed)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if id != created.ID {
		t.Fatalf("expected member id %d, got %d", created.ID, id)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newStubMemberRepo(), newStubRoleRepo())

	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); err != domain.ErrLoginFailed {
		t.Fatalf("expected ErrLoginFailed, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	members, roles := newStubMemberRepo(), newStubRoleRepo()
	svc := newTestAuthService(members, roles)

	registerMember(t, members, roles, "bob@example.com", "goodpassword")

	// Same error value as the unknown-email case: the caller cannot tell
	// which check failed.
	if _, err := svc.Login(context.Background(), "bob@example.com", "wrongpassword"); err != domain.ErrLoginFailed {
		t.Fatalf("expected ErrLoginFailed, got %v", err)
	}
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(newStubMemberRepo(), newStubRoleRepo())

	for _, in := range []string{"", "  ", "garbage"} {
		if _, err := svc.ParseToken(in); err != domain.ErrInvalidToken {
			t.Fatalf("input %q: expected ErrInvalidToken, got %v", in, err)
		}
	}
}

func TestAuthService_Roles(t *testing.T) {
	members, roles := newStubMemberRepo(), newStubRoleRepo()
	svc := newTestAuthService(members, roles)

	created := registerMember(t, members, roles, "carol@example.com", "password1")

	got, err := svc.Roles(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("roles: %v", err)
	}
	if len(got) != 1 || got[0] != domain.RoleUser {
		t.Fatalf("expected default USER role, got %v", got)
	}
}

func TestAuthService_Roles_EmptyIsNotAnError(t *testing.T) {
	svc := newTestAuthService(newStubMemberRepo(), newStubRoleRepo())

	got, err := svc.Roles(context.Background(), 404)
	if err != nil {
		t.Fatalf("roles: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty role set, got %v", got)
	}
}
