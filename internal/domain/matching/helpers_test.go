package matching

import (
	"time"

	"github.com/google/uuid"

	"matchmaker/internal/domain/skill"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func skills(ids ...uuid.UUID) skill.Set { return skill.NewSet(ids) }
