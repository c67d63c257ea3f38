package requirement

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft      Status = "draft"
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Experience struct {
	MinYears *int
	Level    string
}

type Budget struct {
	// Charge is the maximum acceptable hourly rate.
	Charge   *float64
	Currency string
}

// Requirement is a client-posted need.
type Requirement struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	CreatedBy      uuid.UUID
	Title          string
	SkillIDs       []uuid.UUID
	Experience     Experience
	Budget         Budget
	StartDate      *time.Time
	DurationWeeks  int
	Status         Status
	CreatedAt      time.Time
}

func (q Requirement) Eligible() bool {
	return q.Status == StatusOpen
}
