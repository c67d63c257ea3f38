package seeder

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

var demoSkills = []string{"Go", "PostgreSQL", "Redis", "Docker", "Kubernetes", "TypeScript", "React", "AWS"}

var (
	demoOrganization = fixtureID("organization", "acme-staffing")
	demoOwner        = fixtureID("user", "owner@acme.test")
	demoMember       = fixtureID("user", "recruiter@acme.test")
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, name := range demoSkills {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO skills (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				fixtureID("skill", name), name,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type OrganizationSeeder struct{}

func (OrganizationSeeder) Name() string { return "organization_members" }

func (OrganizationSeeder) Run(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		members := []struct {
			user uuid.UUID
			role string
		}{
			{demoOwner, "owner"},
			{demoMember, "member"},
		}
		for _, m := range members {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO organization_members (organization_id, user_id, role) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				demoOrganization, m.user, m.role,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type demoResource struct {
	name         string
	skills       []string
	years        int
	rate         float64
	available    string
	availability string
}

type demoRequirement struct {
	title    string
	skills   []string
	minYears int
	charge   float64
	start    string
	status   string
}

var demoResources = []demoResource{
	{"Backend Engineer A", []string{"Go", "PostgreSQL", "Redis"}, 5, 45, "2026-01-05", "available"},
	{"Backend Engineer B", []string{"Go", "PostgreSQL"}, 2, 30, "2026-02-01", "partially_available"},
	{"Platform Engineer", []string{"Docker", "Kubernetes", "AWS", "Go"}, 7, 70, "2026-01-15", "available"},
	{"Frontend Engineer", []string{"TypeScript", "React"}, 4, 40, "2026-01-10", "available"},
	{"Contractor On Leave", []string{"Go", "PostgreSQL", "Redis"}, 9, 35, "2026-01-01", "unavailable"},
}

var demoRequirements = []demoRequirement{
	{"Payments API", []string{"Go", "PostgreSQL"}, 3, 50, "2026-03-01", "open"},
	{"Cluster Migration", []string{"Kubernetes", "Docker"}, 5, 80, "2026-02-15", "open"},
	{"Dashboard Rewrite", []string{"TypeScript", "React"}, 2, 45, "2026-04-01", "draft"},
}

type MarketplaceSeeder struct{}

func (MarketplaceSeeder) Name() string { return "marketplace" }

func (MarketplaceSeeder) Run(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, r := range demoResources {
			id := fixtureID("resource", r.name)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO resources (id, organization_id, created_by, name, experience_years, hourly_rate, currency, availability_status, available_from, status)
				 VALUES ($1, $2, $3, $4, $5, $6, 'USD', $7, $8::date, 'active')
				 ON CONFLICT (id) DO NOTHING`,
				id, demoOrganization, demoOwner, r.name, r.years, r.rate, r.availability, mustDate(r.available),
			); err != nil {
				return err
			}
			if err := linkSkills(ctx, tx, "resource_skills", "resource_id", id, r.skills); err != nil {
				return err
			}
		}

		for _, q := range demoRequirements {
			id := fixtureID("requirement", q.title)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO requirements (id, organization_id, created_by, title, min_years, budget_charge, currency, start_date, duration_weeks, status)
				 VALUES ($1, $2, $3, $4, $5, $6, 'USD', $7::date, 12, $8)
				 ON CONFLICT (id) DO NOTHING`,
				id, demoOrganization, demoMember, q.title, q.minYears, q.charge, mustDate(q.start), q.status,
			); err != nil {
				return err
			}
			if err := linkSkills(ctx, tx, "requirement_skills", "requirement_id", id, q.skills); err != nil {
				return err
			}
		}
		return nil
	})
}

func linkSkills(ctx context.Context, tx *sql.Tx, table, column string, ownerID uuid.UUID, skills []string) error {
	for _, s := range skills {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+table+` (`+column+`, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			ownerID, fixtureID("skill", s),
		); err != nil {
			return err
		}
	}
	return nil
}

func mustDate(s string) string {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		panic("invalid fixture date " + s)
	}
	return s
}
