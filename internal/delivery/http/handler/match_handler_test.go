package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"matchmaker/internal/delivery/http/middleware"
	"matchmaker/internal/domain/matching"
	"matchmaker/internal/domain/requirement"
	"matchmaker/internal/domain/resource"
	"matchmaker/internal/pkg/response"
	"matchmaker/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubMatchingUsecase struct {
	count    int
	details  usecase.MatchDetails
	batch    []usecase.BatchCount
	err      error
	batchErr error

	gotPrincipal uuid.UUID
	gotDir       matching.Direction
	gotPage      int
	gotPageSize  int
	gotIDs       []string
}

func (s *stubMatchingUsecase) CountMatches(_ context.Context, _ uuid.UUID, dir matching.Direction) (int, error) {
	s.gotDir = dir
	return s.count, s.err
}

func (s *stubMatchingUsecase) MatchDetails(_ context.Context, principalID, _ uuid.UUID, dir matching.Direction, page, pageSize int) (usecase.MatchDetails, error) {
	s.gotPrincipal = principalID
	s.gotDir = dir
	s.gotPage = page
	s.gotPageSize = pageSize
	return s.details, s.err
}

func (s *stubMatchingUsecase) CountMatchesBatch(_ context.Context, ids []string, dir matching.Direction) ([]usecase.BatchCount, error) {
	s.gotIDs = ids
	s.gotDir = dir
	return s.batch, s.batchErr
}

func newMatchTestApp(uc usecase.MatchingUsecase, dir matching.Direction, principal uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())
	app.Use(func(c fiber.Ctx) error {
		if principal != uuid.Nil {
			c.Locals(middleware.CtxUserIDKey, principal)
		}
		return c.Next()
	})
	NewMatchHandler(uc, dir, PageLimits{DefaultSize: 10, MaxSize: 100}).RegisterRoutes(app.Group("/api/v1"))
	return app
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body []byte) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, env
}

func TestMatchHandler_Count(t *testing.T) {
	uc := &stubMatchingUsecase{count: 7}
	app := newMatchTestApp(uc, matching.DirectionRequirement, uuid.New())
	id := uuid.New()

	status, env := doRequest(t, app, "GET", "/api/v1/requirements/"+id.String()+"/matches/count", nil)
	if status != fiber.StatusOK || env.Message != response.MessageOK {
		t.Fatalf("unexpected response: %d %+v", status, env)
	}
	var data struct {
		EntityID  uuid.UUID `json:"entity_id"`
		Direction string    `json:"direction"`
		Count     int       `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.EntityID != id || data.Count != 7 || data.Direction != "requirement" {
		t.Fatalf("unexpected data: %+v", data)
	}
	if uc.gotDir != matching.DirectionRequirement {
		t.Fatalf("expected requirement direction, got %q", uc.gotDir)
	}
}

func TestMatchHandler_CountErrors(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"malformed id", "/api/v1/resources/not-a-uuid/matches/count", nil, fiber.StatusNotFound},
		{"missing entity", "/api/v1/resources/" + uuid.NewString() + "/matches/count", usecase.ErrNotFound, fiber.StatusNotFound},
		{"store failure", "/api/v1/resources/" + uuid.NewString() + "/matches/count", usecase.ErrInternal, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newMatchTestApp(&stubMatchingUsecase{err: tc.err}, matching.DirectionResource, uuid.New())
			status, env := doRequest(t, app, "GET", tc.path, nil)
			if status != tc.status || env.Status != tc.status {
				t.Fatalf("expected %d, got %d %+v", tc.status, status, env)
			}
			if tc.status == fiber.StatusNotFound && env.Message != "Resource not found" {
				t.Fatalf("unexpected message: %q", env.Message)
			}
		})
	}
}

func TestMatchHandler_DetailsPagination(t *testing.T) {
	principal := uuid.New()
	years := 4
	r := resource.Resource{ID: uuid.New(), Status: resource.StatusActive, Experience: resource.Experience{Years: &years}}
	q := requirement.Requirement{ID: uuid.New(), Status: requirement.StatusOpen}
	uc := &stubMatchingUsecase{details: usecase.MatchDetails{
		Source: usecase.Entity{Requirement: &q},
		Results: []usecase.MatchResult{{
			Candidate:               usecase.Entity{Resource: &r},
			MatchPercentage:         100,
			MatchingSkillCount:      2,
			TotalRequiredSkillCount: 2,
		}},
		TotalCount: 1,
		Pagination: matching.Page{CurrentPage: 2, PageSize: 100, TotalPages: 1, HasPrevious: true},
	}}
	app := newMatchTestApp(uc, matching.DirectionRequirement, principal)

	status, env := doRequest(t, app, "GET", "/api/v1/requirements/"+q.ID.String()+"/matches?page=2&page_size=500", nil)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, env)
	}
	if uc.gotPage != 2 || uc.gotPageSize != 100 {
		t.Fatalf("expected page 2 and clamped size 100, got %d/%d", uc.gotPage, uc.gotPageSize)
	}
	if uc.gotPrincipal != principal {
		t.Fatalf("expected principal to be forwarded")
	}

	var data struct {
		Source struct {
			Requirement *struct {
				ID uuid.UUID `json:"id"`
			} `json:"requirement"`
		} `json:"source"`
		Results []struct {
			Candidate struct {
				Resource *struct {
					ID         uuid.UUID `json:"id"`
					Experience struct {
						Years *int `json:"years"`
					} `json:"experience"`
				} `json:"resource"`
			} `json:"candidate"`
			MatchPercentage int `json:"match_percentage"`
		} `json:"results"`
		TotalCount int `json:"total_count"`
		Pagination struct {
			CurrentPage int  `json:"current_page"`
			HasPrevious bool `json:"has_previous"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Source.Requirement == nil || data.Source.Requirement.ID != q.ID {
		t.Fatalf("expected source requirement, got %s", env.Data)
	}
	if len(data.Results) != 1 || data.Results[0].Candidate.Resource == nil || data.Results[0].Candidate.Resource.ID != r.ID {
		t.Fatalf("unexpected results: %s", env.Data)
	}
	if data.Results[0].MatchPercentage != 100 || *data.Results[0].Candidate.Resource.Experience.Years != 4 {
		t.Fatalf("unexpected result payload: %s", env.Data)
	}
	if data.TotalCount != 1 || data.Pagination.CurrentPage != 2 || !data.Pagination.HasPrevious {
		t.Fatalf("unexpected pagination: %s", env.Data)
	}
}

func TestMatchHandler_DetailsDefaultsAndValidation(t *testing.T) {
	id := uuid.NewString()

	uc := &stubMatchingUsecase{}
	app := newMatchTestApp(uc, matching.DirectionResource, uuid.New())
	if status, _ := doRequest(t, app, "GET", "/api/v1/resources/"+id+"/matches", nil); status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if uc.gotPage != 1 || uc.gotPageSize != 10 {
		t.Fatalf("expected defaults 1/10, got %d/%d", uc.gotPage, uc.gotPageSize)
	}

	for _, q := range []string{"page=0", "page=abc", "page_size=-5", "page_size=1.5"} {
		status, _ := doRequest(t, app, "GET", "/api/v1/resources/"+id+"/matches?"+q, nil)
		if status != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, status)
		}
	}
}

func TestMatchHandler_DetailsAuthErrors(t *testing.T) {
	id := uuid.NewString()

	anon := newMatchTestApp(&stubMatchingUsecase{}, matching.DirectionResource, uuid.Nil)
	if status, _ := doRequest(t, anon, "GET", "/api/v1/resources/"+id+"/matches", nil); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without principal, got %d", status)
	}

	denied := newMatchTestApp(&stubMatchingUsecase{err: usecase.ErrUnauthorized}, matching.DirectionResource, uuid.New())
	if status, _ := doRequest(t, denied, "GET", "/api/v1/resources/"+id+"/matches", nil); status != fiber.StatusForbidden {
		t.Fatalf("expected 403 for a non-member, got %d", status)
	}
}

func TestMatchHandler_Batch(t *testing.T) {
	valid := uuid.NewString()
	uc := &stubMatchingUsecase{batch: []usecase.BatchCount{
		{EntityID: valid, Count: 3},
		{EntityID: "deadbeef", Error: "not found"},
	}}
	app := newMatchTestApp(uc, matching.DirectionResource, uuid.New())

	body, _ := json.Marshal(map[string]any{"ids": []string{valid, "deadbeef"}})
	status, env := doRequest(t, app, "POST", "/api/v1/resources/matches/counts", body)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, env)
	}
	if len(uc.gotIDs) != 2 || uc.gotIDs[1] != "deadbeef" {
		t.Fatalf("ids not forwarded in order: %v", uc.gotIDs)
	}

	var data struct {
		Results []struct {
			EntityID string `json:"entity_id"`
			Count    int    `json:"count"`
			Error    string `json:"error"`
		} `json:"results"`
		Failed int `json:"failed"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Results) != 2 || data.Failed != 1 {
		t.Fatalf("unexpected data: %s", env.Data)
	}
	if data.Results[0].EntityID != valid || data.Results[0].Count != 3 || data.Results[0].Error != "" {
		t.Fatalf("unexpected first item: %+v", data.Results[0])
	}
	if data.Results[1].EntityID != "deadbeef" || data.Results[1].Error != "not found" {
		t.Fatalf("unexpected second item: %+v", data.Results[1])
	}
}

func TestMatchHandler_BatchValidation(t *testing.T) {
	app := newMatchTestApp(&stubMatchingUsecase{batchErr: usecase.ErrInvalidArgument}, matching.DirectionRequirement, uuid.New())

	status, _ := doRequest(t, app, "POST", "/api/v1/requirements/matches/counts", []byte(`{"ids":[]}`))
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}

	status, _ = doRequest(t, app, "POST", "/api/v1/requirements/matches/counts", []byte(`{"ids":`))
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", status)
	}
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	for _, tc := range []struct {
		name   string
		err    error
		status int
	}{
		{"up", nil, fiber.StatusOK},
		{"down", context.DeadlineExceeded, fiber.StatusServiceUnavailable},
	} {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			NewHealthHandler(stubPinger{err: tc.err}).RegisterRoutes(app)
			status, env := doRequest(t, app, "GET", "/health", nil)
			if status != tc.status || env.Status != tc.status {
				t.Fatalf("expected %d, got %d %+v", tc.status, status, env)
			}
		})
	}
}
