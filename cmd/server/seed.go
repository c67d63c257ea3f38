package main

import (
	"context"
	"time"

	dbpostgres "matchmaker/internal/database/postgres"
	"matchmaker/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo skills, resources and requirements",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if cfg.App.Environment == "production" {
			log.Warn("refusing to seed a production database")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Error("database connection failed", zap.Error(err))
			return err
		}
		defer db.Close()

		return seeder.Runner{Seeders: seeder.Default(), Logger: log.Named("seed")}.Run(ctx, db.SQLDB())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
