package main

import (
	"context"
	"time"

	"matchmaker/internal/database/migration"
	dbpostgres "matchmaker/internal/database/postgres"
	"matchmaker/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Error("database connection failed", zap.Error(err))
			return err
		}
		defer db.Close()

		n, err := migration.Runner{FS: migrations.FS, Logger: log.Named("migrate")}.Run(ctx, db.SQLDB())
		if err != nil {
			log.Error("migration failed", zap.Error(err))
			return err
		}
		log.Info("migrations complete", zap.Int("applied", n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
