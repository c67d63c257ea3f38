package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"matchmaker/internal/domain/matching"
	"matchmaker/internal/pkg/workerpool"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	batchReasonNotFound = "not found"
	batchReasonInternal = "internal error"
)

// BatchCount is one entry of a batch result. Error is empty on success.
type BatchCount struct {
	EntityID string
	Count    int
	Error    string
}

func (b BatchCount) Failed() bool {
	return b.Error != ""
}

// CountMatchesBatch counts matches for every id independently. The result has
// one entry per input id in input order; a failing id never fails the call.
func (u *Matching) CountMatchesBatch(ctx context.Context, ids []string, dir matching.Direction) ([]BatchCount, error) {
	if !dir.Valid() || len(ids) == 0 || len(ids) > u.opts.BatchMaxIDs {
		return nil, ErrInvalidArgument
	}

	startedAt := time.Now()
	out := make([]BatchCount, len(ids))
	for i, raw := range ids {
		out[i] = BatchCount{EntityID: raw, Error: batchReasonInternal}
	}

	workers := u.opts.BatchWorkers
	if workers > len(ids) {
		workers = len(ids)
	}
	pool := workerpool.New(workers, len(ids))
	for i, raw := range ids {
		pool.Submit(func(ctx context.Context) error {
			n, err := u.countRaw(ctx, raw, dir)
			if err != nil {
				out[i] = BatchCount{EntityID: raw, Error: batchReason(err)}
				return fmt.Errorf("%s: %w", raw, err)
			}
			out[i] = BatchCount{EntityID: raw, Count: n}
			return nil
		})
	}
	pool.Close()

	failed := 0
	for res := range pool.Run(ctx) {
		if res.Err == nil {
			continue
		}
		failed++
		if !isNotFound(res.Err) {
			u.logger.Warn("matching: batch item failed",
				zap.String("direction", string(dir)),
				zap.Error(res.Err),
			)
		}
	}

	u.logger.Info("matching: batch counted",
		zap.String("direction", string(dir)),
		zap.Int("ids", len(ids)),
		zap.Int("failed", failed),
		zap.Duration("took", time.Since(startedAt)),
	)
	return out, nil
}

func (u *Matching) countRaw(ctx context.Context, raw string, dir matching.Direction) (int, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrNotFound
	}
	return u.count(ctx, id, dir)
}

func batchReason(err error) string {
	if isNotFound(err) {
		return batchReasonNotFound
	}
	return batchReasonInternal
}
