package ports

import (
	"context"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	UpdateStoredStatus(ctx context.Context, id string, status domain.EventStatus) error
}
