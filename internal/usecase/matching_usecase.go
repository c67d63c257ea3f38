package usecase

import (
	"context"
	"errors"

	"matchmaker/internal/domain/matching"
	"matchmaker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchingUsecase interface {
	CountMatches(ctx context.Context, id uuid.UUID, dir matching.Direction) (int, error)
	MatchDetails(ctx context.Context, principalID, id uuid.UUID, dir matching.Direction, page, pageSize int) (MatchDetails, error)
	CountMatchesBatch(ctx context.Context, ids []string, dir matching.Direction) ([]BatchCount, error)
}

type MatchResult struct {
	Candidate               Entity
	MatchPercentage         int
	MatchingSkillCount      int
	TotalRequiredSkillCount int
}

type MatchDetails struct {
	Source     Entity
	Results    []MatchResult
	TotalCount int
	Pagination matching.Page
}

type MatchingOptions struct {
	BatchMaxIDs  int
	BatchWorkers int
}

type Matching struct {
	resources    repository.ResourceRepository
	requirements repository.RequirementRepository
	guard        AccessGuard
	evaluator    matching.Evaluator
	opts         MatchingOptions
	logger       *zap.Logger
}

func NewMatchingUsecase(
	resources repository.ResourceRepository,
	requirements repository.RequirementRepository,
	guard AccessGuard,
	evaluator matching.Evaluator,
	opts MatchingOptions,
	logger *zap.Logger,
) *Matching {
	if opts.BatchMaxIDs <= 0 {
		opts.BatchMaxIDs = 100
	}
	if opts.BatchWorkers <= 0 {
		opts.BatchWorkers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{
		resources:    resources,
		requirements: requirements,
		guard:        guard,
		evaluator:    evaluator,
		opts:         opts,
		logger:       logger,
	}
}

func (u *Matching) CountMatches(ctx context.Context, id uuid.UUID, dir matching.Direction) (int, error) {
	if !dir.Valid() {
		return 0, ErrInvalidArgument
	}

	n, err := u.count(ctx, id, dir)
	if err != nil {
		return 0, u.publicError(err, "count matches", id, dir)
	}
	return n, nil
}

// MatchDetails ranks every qualifying candidate in memory, then slices the
// requested page. The whole candidate pool is loaded for each call.
func (u *Matching) MatchDetails(ctx context.Context, principalID, id uuid.UUID, dir matching.Direction, page, pageSize int) (MatchDetails, error) {
	if !dir.Valid() || page <= 0 || pageSize <= 0 {
		return MatchDetails{}, ErrInvalidArgument
	}

	source, err := u.loadSource(ctx, id, dir)
	if err != nil {
		return MatchDetails{}, u.publicError(err, "load source", id, dir)
	}

	ok, err := u.canAccess(ctx, principalID, source)
	if err != nil {
		return MatchDetails{}, u.publicError(err, "check access", id, dir)
	}
	if !ok {
		return MatchDetails{}, ErrUnauthorized
	}

	candidates, ranked, err := u.rank(ctx, dir, source)
	if err != nil {
		return MatchDetails{}, u.publicError(err, "load candidates", id, dir)
	}

	start, end, pg := matching.Paginate(len(ranked), page, pageSize)
	results := make([]MatchResult, 0, end-start)
	for _, it := range ranked[start:end] {
		results = append(results, MatchResult{
			Candidate:               candidates[it.Index].entity,
			MatchPercentage:         it.Score.Percentage,
			MatchingSkillCount:      it.Score.MatchingSkills,
			TotalRequiredSkillCount: it.Score.TotalRequiredSkills,
		})
	}

	return MatchDetails{
		Source:     source.entity,
		Results:    results,
		TotalCount: len(ranked),
		Pagination: pg,
	}, nil
}

func (u *Matching) count(ctx context.Context, id uuid.UUID, dir matching.Direction) (int, error) {
	source, err := u.loadSource(ctx, id, dir)
	if err != nil {
		return 0, err
	}
	if !source.eligible {
		return 0, nil
	}

	c := matching.CriteriaFor(dir, source.terms)
	candidates, err := u.loadCandidates(ctx, c)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, cand := range candidates {
		if u.evaluator.Qualifies(c, source.terms, cand.terms, cand.eligible) {
			n++
		}
	}
	return n, nil
}

// rank returns the fetched candidates and the qualifying ones as indexes into
// that slice, best first.
func (u *Matching) rank(ctx context.Context, dir matching.Direction, source profile) ([]profile, []matching.Ranked, error) {
	if !source.eligible {
		return nil, []matching.Ranked{}, nil
	}

	c := matching.CriteriaFor(dir, source.terms)
	candidates, err := u.loadCandidates(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	ranked := make([]matching.Ranked, 0, len(candidates))
	for i, cand := range candidates {
		if !u.evaluator.Qualifies(c, source.terms, cand.terms, cand.eligible) {
			continue
		}
		ranked = append(ranked, matching.Ranked{
			Index: i,
			Score: u.evaluator.Score(c, source.terms, cand.terms),
		})
	}
	matching.Rank(ranked)
	return candidates, ranked, nil
}

func (u *Matching) loadSource(ctx context.Context, id uuid.UUID, dir matching.Direction) (profile, error) {
	if id == uuid.Nil {
		return profile{}, ErrNotFound
	}

	switch dir.SourceSide() {
	case matching.SideResource:
		r, err := u.resources.FindByID(ctx, id)
		if err != nil {
			return profile{}, err
		}
		return resourceProfile(r), nil
	default:
		q, err := u.requirements.FindByID(ctx, id)
		if err != nil {
			return profile{}, err
		}
		return requirementProfile(q), nil
	}
}

func (u *Matching) loadCandidates(ctx context.Context, c matching.Criteria) ([]profile, error) {
	switch c.Candidates {
	case matching.SideResource:
		items, err := u.resources.FindCandidates(ctx, c)
		if err != nil {
			return nil, err
		}
		return resourceProfiles(items), nil
	default:
		items, err := u.requirements.FindCandidates(ctx, c)
		if err != nil {
			return nil, err
		}
		return requirementProfiles(items), nil
	}
}

func (u *Matching) canAccess(ctx context.Context, principalID uuid.UUID, source profile) (bool, error) {
	if u.guard == nil {
		return false, nil
	}
	return u.guard.CanAccess(ctx, principalID, source.owner)
}

// publicError maps store errors to usecase errors. Unexpected causes are
// logged here and never leave the usecase.
func (u *Matching) publicError(err error, op string, id uuid.UUID, dir matching.Direction) error {
	if isNotFound(err) {
		return ErrNotFound
	}
	u.logger.Error("matching: "+op+" failed",
		zap.String("direction", string(dir)),
		zap.Stringer("id", id),
		zap.Error(err),
	)
	return ErrInternal
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, repository.ErrResourceNotFound) ||
		errors.Is(err, repository.ErrRequirementNotFound)
}
