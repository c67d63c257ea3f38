package repository

import (
	"context"
	"database/sql"
	"errors"

	"matchmaker/internal/database"
	"matchmaker/internal/domain/matching"
	"matchmaker/internal/domain/requirement"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrRequirementNotFound = errors.New("requirement not found")
)

type RequirementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (requirement.Requirement, error)
	// FindCandidates returns open requirements admitted by c, ordered by
	// creation time then id.
	FindCandidates(ctx context.Context, c matching.Criteria) ([]requirement.Requirement, error)
}

type PostgresRequirementRepository struct {
	db database.DB
}

func NewPostgresRequirementRepository(db database.DB) *PostgresRequirementRepository {
	return &PostgresRequirementRepository{db: db}
}

const requirementSelect = `SELECT q.id, q.organization_id, q.created_by, COALESCE(q.title, ''),
		q.min_years, COALESCE(q.experience_level, ''), q.budget_charge::float8, COALESCE(q.currency, ''),
		q.start_date, q.duration_weeks, q.status, q.created_at,
		COALESCE(array_agg(qs.skill_id::text) FILTER (WHERE qs.skill_id IS NOT NULL), '{}')
	 FROM requirements q
	 LEFT JOIN requirement_skills qs ON qs.requirement_id = q.id`

func (r *PostgresRequirementRepository) FindByID(ctx context.Context, id uuid.UUID) (requirement.Requirement, error) {
	row := r.db.QueryRow(ctx, requirementSelect+`
	 WHERE q.id = $1
	 GROUP BY q.id`, id)

	req, err := scanRequirement(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return requirement.Requirement{}, ErrRequirementNotFound
		}
		return requirement.Requirement{}, err
	}
	return req, nil
}

func (r *PostgresRequirementRepository) FindCandidates(ctx context.Context, c matching.Criteria) ([]requirement.Requirement, error) {
	query, args := requirementCandidatesQuery(c)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]requirement.Requirement, 0)
	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func requirementCandidatesQuery(c matching.Criteria) (string, []any) {
	var f filter
	f.fixed(`q.status = 'open'`)
	nullableBound(&f, "q.min_years", "<=", "", c.Years)
	nullableBound(&f, "q.budget_charge", ">=", "", c.Rate)
	var date *string
	if c.Date != nil {
		d := sqlDate(*c.Date)
		date = &d
	}
	nullableBound(&f, "q.start_date", ">=", "::date", date)

	return requirementSelect + `
	 ` + f.where() + `
	 GROUP BY q.id
	 ORDER BY q.created_at ASC, q.id ASC`, f.args
}

func scanRequirement(row database.Row) (requirement.Requirement, error) {
	var (
		req    requirement.Requirement
		status string
		skills []string
	)
	err := row.Scan(
		&req.ID,
		&req.OrganizationID,
		&req.CreatedBy,
		&req.Title,
		&req.Experience.MinYears,
		&req.Experience.Level,
		&req.Budget.Charge,
		&req.Budget.Currency,
		&req.StartDate,
		&req.DurationWeeks,
		&status,
		&req.CreatedAt,
		&skills,
	)
	if err != nil {
		return requirement.Requirement{}, err
	}

	req.Status = requirement.Status(status)
	req.SkillIDs, err = parseSkillIDs(skills)
	if err != nil {
		return requirement.Requirement{}, err
	}
	return req, nil
}

// nullableBound keeps requirements that leave col empty. When the resource
// has no value for the axis only those requirements remain.
func nullableBound[T any](f *filter, col, op, cast string, v *T) {
	if v == nil {
		f.fixed(col + " IS NULL")
		return
	}
	f.add("("+col+" IS NULL OR "+col+" "+op+" $%d"+cast+")", *v)
}
