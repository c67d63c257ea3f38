package dto

import "github.com/google/uuid"

type MatchCountResponse struct {
	EntityID  uuid.UUID `json:"entity_id"`
	Direction string    `json:"direction"`
	Count     int       `json:"count"`
}

type MatchItemResponse struct {
	Candidate               EntityResponse `json:"candidate"`
	MatchPercentage         int            `json:"match_percentage"`
	MatchingSkillCount      int            `json:"matching_skill_count"`
	TotalRequiredSkillCount int            `json:"total_required_skill_count"`
}

type PaginationResponse struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

type MatchDetailsResponse struct {
	Source     EntityResponse      `json:"source"`
	Results    []MatchItemResponse `json:"results"`
	TotalCount int                 `json:"total_count"`
	Pagination PaginationResponse  `json:"pagination"`
}

type BatchCountRequest struct {
	IDs []string `json:"ids"`
}

type BatchCountItemResponse struct {
	EntityID string `json:"entity_id"`
	Count    int    `json:"count"`
	Error    string `json:"error,omitempty"`
}

type BatchCountResponse struct {
	Direction string                   `json:"direction"`
	Results   []BatchCountItemResponse `json:"results"`
	Failed    int                      `json:"failed"`
}
