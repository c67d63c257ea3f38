package matching

import (
	"time"

	"matchmaker/internal/domain/skill"
)

// Terms is the direction-neutral view of an entity used for matching.
//
// For a Resource: Years is experience years, Rate the hourly rate and Date the
// availability start date. For a Requirement: Years is the minimum years, Rate
// the budget charge and Date the need-by start date. Nil means the field is
// absent.
type Terms struct {
	Skills skill.Set
	Years  *int
	Rate   *float64
	Date   *time.Time
}

// Criteria are the hard constraints a source entity imposes on candidates.
type Criteria struct {
	Candidates Side
	Years      *int
	Rate       *float64
	Date       *time.Time
}

func CriteriaFor(d Direction, source Terms) Criteria {
	return Criteria{
		Candidates: d.CandidateSide(),
		Years:      source.Years,
		Rate:       source.Rate,
		Date:       source.Date,
	}
}

// Admits applies the experience, budget and availability constraints. The
// requirement's bound decides each axis in both directions: an empty bound
// disables the axis, and a resource missing the field fails an active bound.
func (c Criteria) Admits(candidate Terms) bool {
	return c.experienceOK(candidate.Years) &&
		c.budgetOK(candidate.Rate) &&
		c.availabilityOK(candidate.Date)
}

// Qualifies is Admits plus the status constraint.
func (c Criteria) Qualifies(candidate Terms, eligible bool) bool {
	return eligible && c.Admits(candidate)
}

// orient splits a source bound and a candidate value into (resource, requirement).
func orient[T any](c Criteria, bound, candidate *T) (*T, *T) {
	if c.Candidates == SideResource {
		return candidate, bound
	}
	return bound, candidate
}

func (c Criteria) experienceOK(candidate *int) bool {
	have, need := orient(c, c.Years, candidate)
	if need == nil {
		return true
	}
	return have != nil && *have >= *need
}

func (c Criteria) budgetOK(candidate *float64) bool {
	rate, charge := orient(c, c.Rate, candidate)
	if charge == nil {
		return true
	}
	return rate != nil && *rate <= *charge
}

func (c Criteria) availabilityOK(candidate *time.Time) bool {
	from, start := orient(c, c.Date, candidate)
	if start == nil {
		return true
	}
	return from != nil && !dateOnly(*from).After(dateOnly(*start))
}

// Orient returns the pair as (resource, requirement).
func (c Criteria) Orient(source, candidate Terms) (Terms, Terms) {
	if c.Candidates == SideResource {
		return candidate, source
	}
	return source, candidate
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
