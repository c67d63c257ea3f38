package repository

import (
	"context"

	"matchmaker/internal/database"

	"github.com/google/uuid"
)

type MembershipRepository interface {
	IsMember(ctx context.Context, organizationID, userID uuid.UUID) (bool, error)
}

type PostgresMembershipRepository struct {
	db database.DB
}

func NewPostgresMembershipRepository(db database.DB) *PostgresMembershipRepository {
	return &PostgresMembershipRepository{db: db}
}

func (r *PostgresMembershipRepository) IsMember(ctx context.Context, organizationID, userID uuid.UUID) (bool, error) {
	if organizationID == uuid.Nil || userID == uuid.Nil {
		return false, nil
	}

	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM organization_members WHERE organization_id = $1 AND user_id = $2)`,
		organizationID, userID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
