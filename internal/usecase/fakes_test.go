package usecase

import (
	"context"
	"sync"
	"time"

	"matchmaker/internal/domain/matching"
	"matchmaker/internal/domain/requirement"
	"matchmaker/internal/domain/resource"
	"matchmaker/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeResourceRepo struct {
	mu         sync.Mutex
	byID       map[uuid.UUID]resource.Resource
	candidates []resource.Resource
	findErr    map[uuid.UUID]error
	panicOn    uuid.UUID
	candErr    error
	candCalls  int
}

func (f *fakeResourceRepo) FindByID(_ context.Context, id uuid.UUID) (resource.Resource, error) {
	if f.panicOn != uuid.Nil && id == f.panicOn {
		panic("resource store exploded")
	}
	if err, ok := f.findErr[id]; ok {
		return resource.Resource{}, err
	}
	r, ok := f.byID[id]
	if !ok {
		return resource.Resource{}, repository.ErrResourceNotFound
	}
	return r, nil
}

func (f *fakeResourceRepo) FindCandidates(_ context.Context, _ matching.Criteria) ([]resource.Resource, error) {
	f.mu.Lock()
	f.candCalls++
	f.mu.Unlock()
	if f.candErr != nil {
		return nil, f.candErr
	}
	return f.candidates, nil
}

type fakeRequirementRepo struct {
	mu         sync.Mutex
	byID       map[uuid.UUID]requirement.Requirement
	candidates []requirement.Requirement
	findErr    map[uuid.UUID]error
	candErr    error
	candCalls  int
}

func (f *fakeRequirementRepo) FindByID(_ context.Context, id uuid.UUID) (requirement.Requirement, error) {
	if err, ok := f.findErr[id]; ok {
		return requirement.Requirement{}, err
	}
	q, ok := f.byID[id]
	if !ok {
		return requirement.Requirement{}, repository.ErrRequirementNotFound
	}
	return q, nil
}

func (f *fakeRequirementRepo) FindCandidates(_ context.Context, _ matching.Criteria) ([]requirement.Requirement, error) {
	f.mu.Lock()
	f.candCalls++
	f.mu.Unlock()
	if f.candErr != nil {
		return nil, f.candErr
	}
	return f.candidates, nil
}

type fakeMembershipRepo struct {
	members map[[2]uuid.UUID]bool
	err     error
}

func (f fakeMembershipRepo) IsMember(_ context.Context, organizationID, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.members[[2]uuid.UUID{organizationID, userID}], nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newResource(skills []uuid.UUID, rate float64, years int, available *time.Time) resource.Resource {
	return resource.Resource{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		CreatedBy:      uuid.New(),
		SkillIDs:       skills,
		Experience:     resource.Experience{Years: intPtr(years)},
		Rate:           resource.Rate{Hourly: floatPtr(rate), Currency: "USD"},
		Availability: resource.Availability{
			Status:    resource.AvailabilityAvailable,
			StartDate: available,
		},
		Status: resource.StatusActive,
	}
}

func newRequirement(skills []uuid.UUID) requirement.Requirement {
	return requirement.Requirement{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		CreatedBy:      uuid.New(),
		SkillIDs:       skills,
		DurationWeeks:  4,
		Status:         requirement.StatusOpen,
	}
}

func newTestUsecase(resources *fakeResourceRepo, requirements *fakeRequirementRepo, members fakeMembershipRepo, policy matching.SkillPolicy) *Matching {
	if resources == nil {
		resources = &fakeResourceRepo{}
	}
	if requirements == nil {
		requirements = &fakeRequirementRepo{}
	}
	return NewMatchingUsecase(
		resources,
		requirements,
		NewOwnershipGuard(members),
		matching.NewEvaluator(policy),
		MatchingOptions{BatchMaxIDs: 5, BatchWorkers: 3},
		zap.NewNop(),
	)
}
