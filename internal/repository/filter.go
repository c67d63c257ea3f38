package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const sqlDateLayout = "2006-01-02"

// filter accumulates AND-ed predicates with positional arguments.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) add(cond string, arg any) {
	f.args = append(f.args, arg)
	f.conds = append(f.conds, fmt.Sprintf(cond, len(f.args)))
}

func (f *filter) fixed(cond string) {
	f.conds = append(f.conds, cond)
}

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conds, " AND ")
}

// sqlDate renders the calendar day so the comparison does not depend on the
// session time zone.
func sqlDate(t time.Time) string {
	return t.Format(sqlDateLayout)
}

func parseSkillIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid skill id %q: %w", s, err)
		}
		out = append(out, id)
	}
	return out, nil
}
