package ports

import (
	"context"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

type MusicianRepo interface {
	Create(ctx context.Context, m *domain.Musician) error
	GetByID(ctx context.Context, id string) (*domain.Musician, error)
	List(ctx context.Context) ([]*domain.Musician, error)
}
