package handler

import (
	"errors"
	"strconv"
	"strings"

	"matchmaker/internal/delivery/http/dto"
	"matchmaker/internal/delivery/http/middleware"
	"matchmaker/internal/domain/matching"
	"matchmaker/internal/pkg/response"
	"matchmaker/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// MatchHandler serves the match endpoints of one source collection.
type MatchHandler struct {
	uc     usecase.MatchingUsecase
	dir    matching.Direction
	limits PageLimits
}

func NewMatchHandler(uc usecase.MatchingUsecase, dir matching.Direction, limits PageLimits) *MatchHandler {
	if limits.DefaultSize <= 0 {
		limits.DefaultSize = 10
	}
	if limits.MaxSize < limits.DefaultSize {
		limits.MaxSize = limits.DefaultSize
	}
	return &MatchHandler{uc: uc, dir: dir, limits: limits}
}

// RegisterRoutes mounts the handler under /resources or /requirements. batch
// wraps the batch endpoint, typically with a rate limiter.
func (h *MatchHandler) RegisterRoutes(r fiber.Router, batch ...fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/" + h.dir.SourceSide().String() + "s")
	grp.Get("/:id/matches/count", h.Count)
	grp.Get("/:id/matches", h.Details)

	handlers := make([]any, 0, len(batch)+1)
	for _, b := range batch {
		if b != nil {
			handlers = append(handlers, b)
		}
	}
	handlers = append(handlers, fiber.Handler(h.CountBatch))
	grp.Post("/matches/counts", handlers[0], handlers[1:]...)
}

func (h *MatchHandler) Count(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return h.notFound(err)
	}

	n, err := h.uc.CountMatches(c.Context(), id, h.dir)
	if err != nil {
		return h.mapError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchCountResponse{
		EntityID:  id,
		Direction: string(h.dir),
		Count:     n,
	})
}

func (h *MatchHandler) Details(c fiber.Ctx) error {
	principal, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return h.notFound(err)
	}

	page, err := parsePositiveQueryInt(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "page must be a positive integer", nil, err)
	}
	pageSize, err := parsePositiveQueryInt(c, "page_size", h.limits.DefaultSize)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "page_size must be a positive integer", nil, err)
	}
	if pageSize > h.limits.MaxSize {
		pageSize = h.limits.MaxSize
	}

	res, err := h.uc.MatchDetails(c.Context(), principal, id, h.dir, page, pageSize)
	if err != nil {
		return h.mapError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toMatchDetailsResponse(res))
}

func (h *MatchHandler) CountBatch(c fiber.Ctx) error {
	var req dto.BatchCountRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.CountMatchesBatch(c.Context(), req.IDs, h.dir)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidArgument) {
			return middleware.NewAppError(fiber.StatusBadRequest, "ids must be a non-empty list within the batch limit", nil, err)
		}
		return h.mapError(err)
	}

	out := dto.BatchCountResponse{
		Direction: string(h.dir),
		Results:   make([]dto.BatchCountItemResponse, 0, len(items)),
	}
	for _, it := range items {
		if it.Failed() {
			out.Failed++
		}
		out.Results = append(out.Results, dto.BatchCountItemResponse{
			EntityID: it.EntityID,
			Count:    it.Count,
			Error:    it.Error,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) notFound(cause error) error {
	side := h.dir.SourceSide().String()
	return middleware.NewAppError(fiber.StatusNotFound, strings.ToUpper(side[:1])+side[1:]+" not found", nil, cause)
}

func (h *MatchHandler) mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return h.notFound(err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidArgument):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parsePositiveQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
