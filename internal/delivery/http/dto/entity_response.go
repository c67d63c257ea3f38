package dto

import (
	"time"

	"github.com/google/uuid"
)

type ExperienceResponse struct {
	Years *int   `json:"years"`
	Level string `json:"level,omitempty"`
}

type RateResponse struct {
	Hourly   *float64 `json:"hourly"`
	Currency string   `json:"currency,omitempty"`
}

type AvailabilityResponse struct {
	Status       string  `json:"status"`
	StartDate    *string `json:"start_date"`
	HoursPerWeek *int    `json:"hours_per_week"`
}

type ResourceResponse struct {
	ID             uuid.UUID            `json:"id"`
	OrganizationID uuid.UUID            `json:"organization_id"`
	CreatedBy      uuid.UUID            `json:"created_by"`
	Name           string               `json:"name"`
	CategoryID     *uuid.UUID           `json:"category_id"`
	SkillIDs       []uuid.UUID          `json:"skill_ids"`
	Experience     ExperienceResponse   `json:"experience"`
	Rate           RateResponse         `json:"rate"`
	Availability   AvailabilityResponse `json:"availability"`
	Status         string               `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
}

type RequirementExperienceResponse struct {
	MinYears *int   `json:"min_years"`
	Level    string `json:"level,omitempty"`
}

type BudgetResponse struct {
	Charge   *float64 `json:"charge"`
	Currency string   `json:"currency,omitempty"`
}

type RequirementResponse struct {
	ID             uuid.UUID                     `json:"id"`
	OrganizationID uuid.UUID                     `json:"organization_id"`
	CreatedBy      uuid.UUID                     `json:"created_by"`
	Title          string                        `json:"title"`
	SkillIDs       []uuid.UUID                   `json:"skill_ids"`
	Experience     RequirementExperienceResponse `json:"experience"`
	Budget         BudgetResponse                `json:"budget"`
	StartDate      *string                       `json:"start_date"`
	DurationWeeks  int                           `json:"duration_weeks"`
	Status         string                        `json:"status"`
	CreatedAt      time.Time                     `json:"created_at"`
}

// EntityResponse carries exactly one of resource or requirement.
type EntityResponse struct {
	Resource    *ResourceResponse    `json:"resource,omitempty"`
	Requirement *RequirementResponse `json:"requirement,omitempty"`
}
