package organization

import (
	"github.com/google/uuid"
)

// Ownership identifies who may see an entity's match details.
type Ownership struct {
	OrganizationID uuid.UUID
	CreatedBy      uuid.UUID
}

func (o Ownership) IsCreator(userID uuid.UUID) bool {
	return userID != uuid.Nil && o.CreatedBy == userID
}
