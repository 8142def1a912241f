package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

const bookingColumns = `id, event_id, musician_id, venue_id, status, proposed_rate, pitch,
	cancellation_reason, cancelled_by, completed_by,
	applied_at, selected_at, confirmed_at, completed_at, cancel_requested_at, cancelled_at,
	created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, event_id, musician_id, venue_id, status, proposed_rate, pitch,
	                                applied_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.EventID, b.MusicianID, b.VenueID, b.Status,
		b.ProposedRate, b.Pitch, b.AppliedAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		// The partial unique index only covers active rows, so a musician
		// with a cancelled booking may apply again.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY applied_at DESC`
	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE event_id = $1 ORDER BY applied_at DESC`
	return r.queryBookings(ctx, query, eventID)
}

func (r *BookingRepository) ListByMusician(ctx context.Context, musicianID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE musician_id = $1 ORDER BY applied_at DESC`
	return r.queryBookings(ctx, query, musicianID)
}

// UpdateStatus writes the target status only if the row still holds the
// expected current one. The timestamp and attribution columns for the target
// are set in the same statement, so a transition is a single atomic write.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, current, target domain.BookingStatus, meta domain.TransitionMeta) error {
	set := `status = $3, updated_at = now()`
	args := []any{id, current, target}

	switch target {
	case domain.BookingStatusSelected:
		set += `, selected_at = $4`
		args = append(args, meta.At)
	case domain.BookingStatusConfirmed:
		set += `, confirmed_at = $4`
		args = append(args, meta.At)
	case domain.BookingStatusCompleted:
		set += `, completed_at = $4, completed_by = $5`
		args = append(args, meta.At, meta.Actor)
	case domain.BookingStatusPendingCancel:
		set += `, cancel_requested_at = $4, cancellation_reason = $5, cancelled_by = $6`
		args = append(args, meta.At, meta.Reason, meta.Actor)
	case domain.BookingStatusCancelled:
		// COALESCE keeps the reason recorded at pending_cancel time when the
		// finalize call carries none.
		set += `, cancelled_at = $4, cancellation_reason = COALESCE($5, cancellation_reason), cancelled_by = COALESCE($6, cancelled_by)`
		args = append(args, meta.At, meta.Reason, meta.Actor)
	}

	query := `UPDATE bookings SET ` + set + ` WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// Either the row is gone or a concurrent transition changed it.
		var status string
		row, qerr := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
		if qerr != nil {
			return fmt.Errorf("diagnose update: %w", qerr)
		}
		if scanErr := row.Scan(&status); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("%w: status is %s, expected %s", domain.ErrBookingConflict, status, current)
	}

	return nil
}

func (r *BookingRepository) SweepStaleCancelRequests(ctx context.Context, olderThan time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings
        SET status = $1, cancelled_at = now(), cancelled_by = $2, updated_at = now()
        WHERE status = $3 AND cancel_requested_at < $4
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCancelled, domain.ActorSystem,
		domain.BookingStatusPendingCancel, olderThan,
	)
	if err != nil {
		return nil, fmt.Errorf("sweep stale cancel requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan swept booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.EventID, &b.MusicianID, &b.VenueID, &b.Status, &b.ProposedRate, &b.Pitch,
		&b.CancellationReason, &b.CancelledBy, &b.CompletedBy,
		&b.AppliedAt, &b.SelectedAt, &b.ConfirmedAt, &b.CompletedAt, &b.CancelRequestedAt, &b.CancelledAt,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
