package matching

import (
	"math"

	"matchmaker/internal/domain/skill"
)

type Score struct {
	Percentage          int
	MatchingSkills      int
	TotalRequiredSkills int
}

// ScorePair rates a compatible pair by the larger of the two overlap ratios,
// so extra resource skills never lower the score of a full match.
func ScorePair(resourceSkills, requiredSkills skill.Set) Score {
	common := resourceSkills.IntersectionSize(requiredSkills)

	fromResource := 0.0
	if resourceSkills.Len() > 0 {
		fromResource = float64(common) / float64(resourceSkills.Len())
	}
	fromRequirement := 1.0
	if requiredSkills.Len() > 0 {
		fromRequirement = float64(common) / float64(requiredSkills.Len())
	}

	pct := int(math.Round(math.Max(fromResource, fromRequirement) * 100))
	return Score{
		Percentage:          clampInt(pct, 0, 100),
		MatchingSkills:      common,
		TotalRequiredSkills: requiredSkills.Len(),
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
