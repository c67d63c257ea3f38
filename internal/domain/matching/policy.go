package matching

import (
	"fmt"
	"strings"

	"matchmaker/internal/domain/skill"
)

const (
	PolicySuperset  = "superset"
	PolicyThreshold = "threshold"

	DefaultThresholdCap = 3
)

// SkillPolicy decides whether a resource's skills cover a requirement's
// required skills. One policy is applied to both directions.
type SkillPolicy interface {
	Name() string
	Compatible(resourceSkills, requiredSkills skill.Set) bool
}

// StrictSuperset requires every required skill to be present.
type StrictSuperset struct{}

func (StrictSuperset) Name() string { return PolicySuperset }

func (StrictSuperset) Compatible(resourceSkills, requiredSkills skill.Set) bool {
	return resourceSkills.ContainsAll(requiredSkills)
}

// ThresholdOverlap requires at least min(|required|, Cap) required skills.
type ThresholdOverlap struct {
	Cap int
}

func (ThresholdOverlap) Name() string { return PolicyThreshold }

func (p ThresholdOverlap) Compatible(resourceSkills, requiredSkills skill.Set) bool {
	return resourceSkills.IntersectionSize(requiredSkills) >= p.threshold(requiredSkills.Len())
}

func (p ThresholdOverlap) threshold(required int) int {
	limit := p.Cap
	if limit <= 0 {
		limit = DefaultThresholdCap
	}
	if required < limit {
		return required
	}
	return limit
}

func PolicyByName(name string, thresholdCap int) (SkillPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicySuperset:
		return StrictSuperset{}, nil
	case PolicyThreshold:
		return ThresholdOverlap{Cap: thresholdCap}, nil
	default:
		return nil, fmt.Errorf("unknown skill policy %q", name)
	}
}
