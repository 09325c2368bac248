package ports

import (
	"context"

	"github.com/memberhub/member-api/internal/core/domain"
)

// ListMembersFilter carries the paging parameters for listing members.
type ListMembersFilter struct {
	Page  int // 1-based
	Limit int // max rows per page (capped at 100 by the service)
}

// MemberRepository defines persistence operations for member records.
// Create must assign the member id and insert atomically; email uniqueness
// is the store's responsibility (unique index) in addition to the service's
// pre-check.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, member *domain.Member) (*domain.Member, error)
	// List returns a page of members and the total count.
	List(ctx context.Context, filter ListMembersFilter) ([]*domain.Member, int64, error)
}

// RoleRepository defines persistence operations for role assignments.
type RoleRepository interface {
	Assign(ctx context.Context, memberID int64, role string) error
	// FindAllByMemberID returns the role tags granted to a member.
	// No assignments is an empty slice, not an error.
	FindAllByMemberID(ctx context.Context, memberID int64) ([]string, error)
}
