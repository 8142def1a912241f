package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/filter"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/service/ports"
)

type MusicianService struct {
	repo ports.MusicianRepo
}

func NewMusicianService(repo ports.MusicianRepo) *MusicianService {
	return &MusicianService{repo: repo}
}

func (s *MusicianService) Create(ctx context.Context, input domain.CreateMusicianInput) (*domain.Musician, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	musician := &domain.Musician{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Genre:     input.Genre,
		City:      input.City,
		Bio:       input.Bio,
		Rate:      input.Rate,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, musician); err != nil {
		return nil, fmt.Errorf("create musician: %w", err)
	}

	return musician, nil
}

func (s *MusicianService) GetByID(ctx context.Context, id string) (*domain.Musician, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MusicianService) List(ctx context.Context, state filter.State) ([]*domain.Musician, error) {
	musicians, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list musicians: %w", err)
	}
	return filter.Apply(musicians, musicianSpec, state), nil
}
