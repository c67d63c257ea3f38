package main

import (
	"fmt"

	"matchmaker/internal/config"
	"matchmaker/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "matchmaker"

var (
	cfgFile string
	debug   bool
	jsonLog bool

	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "matchmaker serves resource and requirement matches over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file (env variables take precedence)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")
}

// setup loads configuration and builds the process logger. Flags override
// LOG_LEVEL and LOG_JSON.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	if jsonLog {
		cfg.Log.JSON = true
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log.With(zap.String("app", cfg.App.AppName), zap.String("env", cfg.App.Environment)), nil
}
