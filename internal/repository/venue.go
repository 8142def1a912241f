package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, city, capacity, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, v.ID, v.Name, v.City, v.Capacity, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, city, capacity, created_at FROM venues WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(&v.ID, &v.Name, &v.City, &v.Capacity, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT id, name, city, capacity, created_at FROM venues ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(&v.ID, &v.Name, &v.City, &v.Capacity, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}
