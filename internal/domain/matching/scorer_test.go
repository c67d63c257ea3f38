package matching

import (
	"testing"

	"github.com/google/uuid"
)

func TestScorePair(t *testing.T) {
	x, y, z, w := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	cases := []struct {
		name     string
		resource []uuid.UUID
		required []uuid.UUID
		want     int
		matching int
	}{
		{"exact match", []uuid.UUID{x, y}, []uuid.UUID{x, y}, 100, 2},
		{"superset keeps 100", []uuid.UUID{x, y, z}, []uuid.UUID{x, y}, 100, 2},
		{"partial overlap uses larger ratio", []uuid.UUID{x}, []uuid.UUID{x, y, z}, 100, 1},
		{"two of three both sides", []uuid.UUID{x, y, w}, []uuid.UUID{x, y, z}, 67, 2},
		{"no overlap", []uuid.UUID{w}, []uuid.UUID{x, y}, 0, 0},
		{"no required skills", []uuid.UUID{x}, nil, 100, 0},
		{"no resource skills", nil, []uuid.UUID{x}, 0, 0},
	}
	for _, tc := range cases {
		got := ScorePair(skills(tc.resource...), skills(tc.required...))
		if got.Percentage != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got.Percentage)
		}
		if got.MatchingSkills != tc.matching {
			t.Fatalf("%s: expected %d matching skills, got %d", tc.name, tc.matching, got.MatchingSkills)
		}
		if got.TotalRequiredSkills != len(tc.required) {
			t.Fatalf("%s: expected %d required skills, got %d", tc.name, len(tc.required), got.TotalRequiredSkills)
		}
		if got.Percentage < 0 || got.Percentage > 100 {
			t.Fatalf("%s: percentage out of range: %d", tc.name, got.Percentage)
		}
	}
}

func TestEvaluator_QualifiesAndScores(t *testing.T) {
	x, y, z := uuid.New(), uuid.New(), uuid.New()

	requirement := Terms{Skills: skills(x, y), Years: intPtr(2), Rate: floatPtr(50), Date: datePtr("2024-06-01")}
	r1 := Terms{Skills: skills(x, y, z), Years: intPtr(3), Rate: floatPtr(40), Date: datePtr("2024-05-01")}
	r2 := Terms{Skills: skills(x), Years: intPtr(3), Rate: floatPtr(40), Date: datePtr("2024-05-01")}

	e := NewEvaluator(nil)
	c := CriteriaFor(DirectionRequirement, requirement)

	if !e.Qualifies(c, requirement, r1, true) {
		t.Fatalf("R1 must qualify")
	}
	if got := e.Score(c, requirement, r1).Percentage; got != 100 {
		t.Fatalf("R1 expected 100, got %d", got)
	}
	if e.Qualifies(c, requirement, r2, true) {
		t.Fatalf("R2 must fail the superset policy")
	}

	reverse := CriteriaFor(DirectionResource, r1)
	if !e.Qualifies(reverse, r1, requirement, true) {
		t.Fatalf("the pair must qualify in the reverse direction too")
	}
	if got := e.Score(reverse, r1, requirement).Percentage; got != 100 {
		t.Fatalf("reverse score expected 100, got %d", got)
	}
}

func TestEvaluator_DefaultsToSuperset(t *testing.T) {
	if got := NewEvaluator(nil).Policy().Name(); got != PolicySuperset {
		t.Fatalf("expected %s, got %s", PolicySuperset, got)
	}
	if got := NewEvaluator(ThresholdOverlap{Cap: 2}).Policy().Name(); got != PolicyThreshold {
		t.Fatalf("expected %s, got %s", PolicyThreshold, got)
	}
}
