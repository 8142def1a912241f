package ports

import (
	"context"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}
