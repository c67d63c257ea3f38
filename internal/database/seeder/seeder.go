// Package seeder loads idempotent demo fixtures for local development.
package seeder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db *sql.DB) error
}

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeded", zap.String("seeder", s.Name()))
	}
	return nil
}

// Default returns the demo seeders in dependency order.
func Default() []Seeder {
	return []Seeder{SkillsSeeder{}, OrganizationSeeder{}, MarketplaceSeeder{}}
}

var namespace = uuid.MustParse("6f1c3c1e-5d1a-4a61-9d8e-2f5a3b7c9e10")

// fixtureID derives a stable id so reruns hit ON CONFLICT instead of
// duplicating rows.
func fixtureID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(kind+":"+name))
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
