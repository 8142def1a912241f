package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/service/ports"
)

type VenueService struct {
	repo ports.VenueRepo
}

func NewVenueService(repo ports.VenueRepo) *VenueService {
	return &VenueService{repo: repo}
}

func (s *VenueService) Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      input.Name,
		City:      input.City,
		Capacity:  input.Capacity,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.List(ctx)
}
