package app

import (
	"context"
	"errors"
	"time"

	"matchmaker/internal/config"
	"matchmaker/internal/database"
	dbpostgres "matchmaker/internal/database/postgres"
	"matchmaker/internal/domain/matching"
	"matchmaker/internal/infrastructure/cache"
	"matchmaker/internal/repository"
	"matchmaker/internal/usecase"

	"go.uber.org/zap"
)

// Container owns the process-wide dependencies.
type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	DB      database.DB
	Limiter *cache.RedisStorage

	Matching usecase.MatchingUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	policy, err := matching.PolicyByName(cfg.Matching.SkillPolicy, cfg.Matching.ThresholdCap)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	evaluator := matching.NewEvaluator(policy)
	uc := usecase.NewMatchingUsecase(
		repository.NewPostgresResourceRepository(db),
		repository.NewPostgresRequirementRepository(db),
		usecase.NewOwnershipGuard(repository.NewPostgresMembershipRepository(db)),
		evaluator,
		usecase.MatchingOptions{
			BatchMaxIDs:  cfg.Matching.BatchMaxIDs,
			BatchWorkers: cfg.Matching.BatchWorkers,
		},
		logger.Named("matching"),
	)

	logger.Info("matching engine ready",
		zap.String("skill_policy", evaluator.Policy().Name()),
		zap.Int("batch_max_ids", cfg.Matching.BatchMaxIDs),
		zap.Int("batch_workers", cfg.Matching.BatchWorkers),
	)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Limiter:  cache.NewRedisStorage(cfg.Redis, logger.Named("cache")),
		Matching: uc,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Limiter != nil {
		errs = append(errs, c.Limiter.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
