package handler

import (
	"time"

	"matchmaker/internal/delivery/http/dto"
	"matchmaker/internal/domain/requirement"
	"matchmaker/internal/domain/resource"
	"matchmaker/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func toEntityResponse(e usecase.Entity) dto.EntityResponse {
	var out dto.EntityResponse
	if e.Resource != nil {
		r := toResourceResponse(*e.Resource)
		out.Resource = &r
	}
	if e.Requirement != nil {
		q := toRequirementResponse(*e.Requirement)
		out.Requirement = &q
	}
	return out
}

func toResourceResponse(r resource.Resource) dto.ResourceResponse {
	return dto.ResourceResponse{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		CreatedBy:      r.CreatedBy,
		Name:           r.Name,
		CategoryID:     r.CategoryID,
		SkillIDs:       nonNilIDs(r.SkillIDs),
		Experience: dto.ExperienceResponse{
			Years: r.Experience.Years,
			Level: r.Experience.Level,
		},
		Rate: dto.RateResponse{
			Hourly:   r.Rate.Hourly,
			Currency: r.Rate.Currency,
		},
		Availability: dto.AvailabilityResponse{
			Status:       string(r.Availability.Status),
			StartDate:    formatDate(r.Availability.StartDate),
			HoursPerWeek: r.Availability.HoursPerWeek,
		},
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func toRequirementResponse(q requirement.Requirement) dto.RequirementResponse {
	return dto.RequirementResponse{
		ID:             q.ID,
		OrganizationID: q.OrganizationID,
		CreatedBy:      q.CreatedBy,
		Title:          q.Title,
		SkillIDs:       nonNilIDs(q.SkillIDs),
		Experience: dto.RequirementExperienceResponse{
			MinYears: q.Experience.MinYears,
			Level:    q.Experience.Level,
		},
		Budget: dto.BudgetResponse{
			Charge:   q.Budget.Charge,
			Currency: q.Budget.Currency,
		},
		StartDate:     formatDate(q.StartDate),
		DurationWeeks: q.DurationWeeks,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt,
	}
}

func toMatchDetailsResponse(d usecase.MatchDetails) dto.MatchDetailsResponse {
	results := make([]dto.MatchItemResponse, 0, len(d.Results))
	for _, it := range d.Results {
		results = append(results, dto.MatchItemResponse{
			Candidate:               toEntityResponse(it.Candidate),
			MatchPercentage:         it.MatchPercentage,
			MatchingSkillCount:      it.MatchingSkillCount,
			TotalRequiredSkillCount: it.TotalRequiredSkillCount,
		})
	}

	return dto.MatchDetailsResponse{
		Source:     toEntityResponse(d.Source),
		Results:    results,
		TotalCount: d.TotalCount,
		Pagination: dto.PaginationResponse{
			CurrentPage: d.Pagination.CurrentPage,
			PageSize:    d.Pagination.PageSize,
			TotalPages:  d.Pagination.TotalPages,
			HasNext:     d.Pagination.HasNext,
			HasPrevious: d.Pagination.HasPrevious,
		},
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
