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

type MusicianRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMusicianRepo(db *dbpg.DB) *MusicianRepository {
	return &MusicianRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MusicianRepository) Create(ctx context.Context, m *domain.Musician) error {
	query := `INSERT INTO musicians (id, name, genre, city, bio, rate, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.Name, m.Genre, m.City, m.Bio, m.Rate, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert musician: %w", err)
	}
	return nil
}

func (r *MusicianRepository) GetByID(ctx context.Context, id string) (*domain.Musician, error) {
	query := `SELECT id, name, genre, city, bio, rate, created_at FROM musicians WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get musician: %w", err)
	}

	var m domain.Musician
	if err = row.Scan(&m.ID, &m.Name, &m.Genre, &m.City, &m.Bio, &m.Rate, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMusicianNotFound
		}
		return nil, fmt.Errorf("scan musician: %w", err)
	}

	return &m, nil
}

func (r *MusicianRepository) List(ctx context.Context) ([]*domain.Musician, error) {
	query := `SELECT id, name, genre, city, bio, rate, created_at FROM musicians ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list musicians: %w", err)
	}
	defer rows.Close()

	var res []*domain.Musician
	for rows.Next() {
		var m domain.Musician
		if err = rows.Scan(&m.ID, &m.Name, &m.Genre, &m.City, &m.Bio, &m.Rate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan musician: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}
