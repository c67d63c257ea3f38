package usecase

import (
	"context"

	"matchmaker/internal/domain/organization"
	"matchmaker/internal/repository"

	"github.com/google/uuid"
)

type AccessGuard interface {
	CanAccess(ctx context.Context, userID uuid.UUID, owner organization.Ownership) (bool, error)
}

// OwnershipGuard grants access to the creator of an entity and to members of
// its owning organization.
type OwnershipGuard struct {
	members repository.MembershipRepository
}

func NewOwnershipGuard(members repository.MembershipRepository) *OwnershipGuard {
	return &OwnershipGuard{members: members}
}

func (g *OwnershipGuard) CanAccess(ctx context.Context, userID uuid.UUID, owner organization.Ownership) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	if owner.IsCreator(userID) {
		return true, nil
	}
	if g.members == nil {
		return false, nil
	}
	return g.members.IsMember(ctx, owner.OrganizationID, userID)
}
