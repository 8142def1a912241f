package ports

import (
	"context"
	"time"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

// StatusCache memoizes derived event statuses. Derivation is cheap but runs
// on every dashboard refresh; the cache is best-effort and a miss or error
// just falls through to recomputation.
type StatusCache interface {
	Get(ctx context.Context, eventID string) (domain.EventStatus, bool, error)
	Set(ctx context.Context, eventID string, status domain.EventStatus, ttl time.Duration) error
	Invalidate(ctx context.Context, eventID string) error
}
