package usecase

import (
	"matchmaker/internal/domain/matching"
	"matchmaker/internal/domain/organization"
	"matchmaker/internal/domain/requirement"
	"matchmaker/internal/domain/resource"
	"matchmaker/internal/domain/skill"
)

// Entity holds exactly one of a Resource or a Requirement.
type Entity struct {
	Resource    *resource.Resource
	Requirement *requirement.Requirement
}

// profile is the direction-neutral view the engine works on.
type profile struct {
	entity   Entity
	terms    matching.Terms
	eligible bool
	owner    organization.Ownership
}

func resourceProfile(r resource.Resource) profile {
	return profile{
		entity: Entity{Resource: &r},
		terms: matching.Terms{
			Skills: skill.NewSet(r.SkillIDs),
			Years:  r.Experience.Years,
			Rate:   r.Rate.Hourly,
			Date:   r.Availability.StartDate,
		},
		eligible: r.Eligible(),
		owner: organization.Ownership{
			OrganizationID: r.OrganizationID,
			CreatedBy:      r.CreatedBy,
		},
	}
}

func requirementProfile(q requirement.Requirement) profile {
	return profile{
		entity: Entity{Requirement: &q},
		terms: matching.Terms{
			Skills: skill.NewSet(q.SkillIDs),
			Years:  q.Experience.MinYears,
			Rate:   q.Budget.Charge,
			Date:   q.StartDate,
		},
		eligible: q.Eligible(),
		owner: organization.Ownership{
			OrganizationID: q.OrganizationID,
			CreatedBy:      q.CreatedBy,
		},
	}
}

func resourceProfiles(items []resource.Resource) []profile {
	out := make([]profile, 0, len(items))
	for _, it := range items {
		out = append(out, resourceProfile(it))
	}
	return out
}

func requirementProfiles(items []requirement.Requirement) []profile {
	out := make([]profile, 0, len(items))
	for _, it := range items {
		out = append(out, requirementProfile(it))
	}
	return out
}
