package ports

import (
	"context"
)

// MemberProjection is the outward view of a member. The password hash never
// leaves the service layer.
type MemberProjection struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// MemberModification carries the fields a member may change on their own
// record. Password is optional; empty means keep the current one.
type MemberModification struct {
	Nickname string
	Password string
}

// MemberPage is one page of member projections plus paging metadata.
type MemberPage struct {
	Content []MemberProjection `json:"content"`
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
	Total   int64              `json:"total"`
}

type MemberService interface {
	SignUp(ctx context.Context, email, password, nickname string) (*MemberProjection, error)
	GetMember(ctx context.Context, id int64) (*MemberProjection, error)
	GetMembers(ctx context.Context, filter ListMembersFilter) (*MemberPage, error)
	// IsEmailTaken returns domain.ErrEmailExists when the email is already
	// registered and nil when it is available.
	IsEmailTaken(ctx context.Context, email string) error
	// Modify updates the target member. Strict self-service: requesterID
	// must equal targetID regardless of roles.
	Modify(ctx context.Context, targetID, requesterID int64, data MemberModification) (*MemberProjection, error)
}
