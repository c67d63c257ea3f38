package resource

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable          AvailabilityStatus = "available"
	AvailabilityPartiallyAvailable AvailabilityStatus = "partially_available"
	AvailabilityUnavailable        AvailabilityStatus = "unavailable"
)

type Experience struct {
	Years *int
	Level string
}

type Rate struct {
	Hourly   *float64
	Currency string
}

type Availability struct {
	Status       AvailabilityStatus
	StartDate    *time.Time
	HoursPerWeek *int
}

// Resource is a vendor-listed person or asset available for work.
type Resource struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	CreatedBy      uuid.UUID
	Name           string
	CategoryID     *uuid.UUID
	SkillIDs       []uuid.UUID
	Experience     Experience
	Rate           Rate
	Availability   Availability
	Status         Status
	CreatedAt      time.Time
}

// Eligible reports whether the resource may appear as a match candidate.
func (r Resource) Eligible() bool {
	return r.Status == StatusActive && r.Availability.Status != AvailabilityUnavailable
}
