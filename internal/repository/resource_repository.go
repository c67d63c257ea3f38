package repository

import (
	"context"
	"database/sql"
	"errors"

	"matchmaker/internal/database"
	"matchmaker/internal/domain/matching"
	"matchmaker/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
)

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (resource.Resource, error)
	// FindCandidates returns eligible resources admitted by c, ordered by
	// creation time then id.
	FindCandidates(ctx context.Context, c matching.Criteria) ([]resource.Resource, error)
}

type PostgresResourceRepository struct {
	db database.DB
}

func NewPostgresResourceRepository(db database.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

const resourceSelect = `SELECT r.id, r.organization_id, r.created_by, COALESCE(r.name, ''), r.category_id,
		r.experience_years, COALESCE(r.experience_level, ''), r.hourly_rate::float8, COALESCE(r.currency, ''),
		r.availability_status, r.available_from, r.hours_per_week, r.status, r.created_at,
		COALESCE(array_agg(rs.skill_id::text) FILTER (WHERE rs.skill_id IS NOT NULL), '{}')
	 FROM resources r
	 LEFT JOIN resource_skills rs ON rs.resource_id = r.id`

func (r *PostgresResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (resource.Resource, error) {
	row := r.db.QueryRow(ctx, resourceSelect+`
	 WHERE r.id = $1
	 GROUP BY r.id`, id)

	res, err := scanResource(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return resource.Resource{}, ErrResourceNotFound
		}
		return resource.Resource{}, err
	}
	return res, nil
}

func (r *PostgresResourceRepository) FindCandidates(ctx context.Context, c matching.Criteria) ([]resource.Resource, error) {
	query, args := resourceCandidatesQuery(c)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resource.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func resourceCandidatesQuery(c matching.Criteria) (string, []any) {
	var f filter
	f.fixed(`r.status = 'active'`)
	f.fixed(`r.availability_status <> 'unavailable'`)
	if c.Years != nil {
		f.add(`r.experience_years >= $%d`, *c.Years)
	}
	if c.Rate != nil {
		f.add(`r.hourly_rate <= $%d`, *c.Rate)
	}
	if c.Date != nil {
		f.add(`r.available_from <= $%d::date`, sqlDate(*c.Date))
	}

	return resourceSelect + `
	 ` + f.where() + `
	 GROUP BY r.id
	 ORDER BY r.created_at ASC, r.id ASC`, f.args
}

func scanResource(row database.Row) (resource.Resource, error) {
	var (
		res          resource.Resource
		availability string
		status       string
		skills       []string
	)
	err := row.Scan(
		&res.ID,
		&res.OrganizationID,
		&res.CreatedBy,
		&res.Name,
		&res.CategoryID,
		&res.Experience.Years,
		&res.Experience.Level,
		&res.Rate.Hourly,
		&res.Rate.Currency,
		&availability,
		&res.Availability.StartDate,
		&res.Availability.HoursPerWeek,
		&status,
		&res.CreatedAt,
		&skills,
	)
	if err != nil {
		return resource.Resource{}, err
	}

	res.Availability.Status = resource.AvailabilityStatus(availability)
	res.Status = resource.Status(status)
	res.SkillIDs, err = parseSkillIDs(skills)
	if err != nil {
		return resource.Resource{}, err
	}
	return res, nil
}
