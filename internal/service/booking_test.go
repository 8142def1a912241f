package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/filter"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo  *mocks.MockBookingRepo
	eventRepo    *mocks.MockEventRepo
	musicianRepo *mocks.MockMusicianRepo
	cache        *mocks.MockStatusCache
	notifier     *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo:  mocks.NewMockBookingRepo(t),
		eventRepo:    mocks.NewMockEventRepo(t),
		musicianRepo: mocks.NewMockMusicianRepo(t),
		cache:        mocks.NewMockStatusCache(t),
		notifier:     mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.eventRepo, m.musicianRepo, m.cache, m.notifier, newTestLogger(t))
	return svc, m
}

func TestBookingService_Apply_Success(t *testing.T) {
	svc, m := newBookingService(t)

	event := &domain.Event{ID: "e1", VenueID: "v1", Status: domain.EventStatusOpen}
	musician := &domain.Musician{ID: "m1", Name: "Alice"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.musicianRepo.EXPECT().GetByID(mock.Anything, "m1").Return(musician, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.notifier.EXPECT().NotifyApplicationReceived(mock.Anything, mock.Anything, event).Return()

	booking, err := svc.Apply(context.Background(), ApplyInput{
		EventID:    "e1",
		MusicianID: "m1",
		Pitch:      "jazz trio, two sets",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApplied, booking.Status)
	assert.Equal(t, "e1", booking.EventID)
	assert.Equal(t, "m1", booking.MusicianID)
	assert.Equal(t, "v1", booking.VenueID)
	assert.NotEmpty(t, booking.ID)
	assert.False(t, booking.AppliedAt.IsZero())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Apply_DoesNotTouchStoredStatus(t *testing.T) {
	svc, m := newBookingService(t)

	// A plain application never flips the stored status; only invitations do.
	event := &domain.Event{ID: "e1", VenueID: "v1", Status: domain.EventStatusOpen}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.musicianRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Musician{ID: "m1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.notifier.EXPECT().NotifyApplicationReceived(mock.Anything, mock.Anything, event).Return()

	_, err := svc.Apply(context.Background(), ApplyInput{EventID: "e1", MusicianID: "m1"})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Invite_MarksOpenEventInvited(t *testing.T) {
	svc, m := newBookingService(t)

	event := &domain.Event{ID: "e1", VenueID: "v1", Status: domain.EventStatusOpen}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.musicianRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Musician{ID: "m1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.eventRepo.EXPECT().UpdateStoredStatus(mock.Anything, "e1", domain.EventStatusInvited).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.notifier.EXPECT().NotifyApplicationReceived(mock.Anything, mock.Anything, event).Return()

	booking, err := svc.Invite(context.Background(), ApplyInput{EventID: "e1", MusicianID: "m1"})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApplied, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Invite_LeavesNonOpenEventAlone(t *testing.T) {
	svc, m := newBookingService(t)

	event := &domain.Event{ID: "e1", VenueID: "v1", Status: domain.EventStatusInvited}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.musicianRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Musician{ID: "m1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.notifier.EXPECT().NotifyApplicationReceived(mock.Anything, mock.Anything, event).Return()

	_, err := svc.Invite(context.Background(), ApplyInput{EventID: "e1", MusicianID: "m1"})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Apply_EventNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Apply(context.Background(), ApplyInput{EventID: "missing", MusicianID: "m1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Apply_MusicianNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.musicianRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrMusicianNotFound)

	_, err := svc.Apply(context.Background(), ApplyInput{EventID: "e1", MusicianID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMusicianNotFound)
}

func TestBookingService_Apply_Duplicate(t *testing.T) {
	svc, m := newBookingService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.musicianRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Musician{ID: "m1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyApplied)

	_, err := svc.Apply(context.Background(), ApplyInput{EventID: "e1", MusicianID: "m1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
}

func TestBookingService_Select_Success(t *testing.T) {
	svc, m := newBookingService(t)

	applied := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusApplied}
	selected := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusSelected}
	event := &domain.Event{ID: "e1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(applied, nil).Once()
	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApplied, domain.BookingStatusSelected, mock.Anything).Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(selected, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, selected, event).Return()

	result, err := svc.Select(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusSelected, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Select_InvalidFromCompleted(t *testing.T) {
	svc, m := newBookingService(t)

	done := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusCompleted}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(done, nil)

	_, err := svc.Select(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	svc, m := newBookingService(t)

	selected := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusSelected}
	confirmed := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusConfirmed}
	event := &domain.Event{ID: "e1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(selected, nil).Once()
	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusSelected, domain.BookingStatusConfirmed, mock.Anything).Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmed, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, confirmed, event).Return()

	result, err := svc.Confirm(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_FromApplied(t *testing.T) {
	svc, m := newBookingService(t)

	// applied -> confirmed skips selection and is rejected.
	applied := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusApplied}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(applied, nil)

	_, err := svc.Confirm(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Transition_Conflict(t *testing.T) {
	svc, m := newBookingService(t)

	applied := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusApplied}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(applied, nil)
	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApplied, domain.BookingStatusSelected, mock.Anything).Return(domain.ErrBookingConflict)

	_, err := svc.Select(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestBookingService_Transition_BookingNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Select(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Transition_EventReloadFailureStillSucceeds(t *testing.T) {
	svc, m := newBookingService(t)

	// Notification is best-effort: a failed event load is logged, not returned.
	applied := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusApplied}
	selected := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusSelected}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(applied, nil).Once()
	m.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusApplied, domain.BookingStatusSelected, mock.Anything).Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(selected, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	result, err := svc.Select(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusSelected, result.Status)
}

func TestBookingService_Complete_Success(t *testing.T) {
	svc, m := newBookingService(t)

	confirmed := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusConfirmed}
	completed := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusCompleted}
	event := &domain.Event{ID: "e1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmed, nil).Once()
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.BookingStatusCompleted, mock.Anything).
		Run(func(ctx context.Context, id string, current, target domain.BookingStatus, meta domain.TransitionMeta) {
			require.NotNil(t, meta.Actor)
			assert.Equal(t, domain.ActorVenue, *meta.Actor)
		}).
		Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(completed, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, completed, event).Return()

	result, err := svc.Complete(context.Background(), "b1", domain.ActorVenue)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Complete_UnknownActor(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Complete(context.Background(), "b1", domain.Actor("robot"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_RequestCancel_Success(t *testing.T) {
	svc, m := newBookingService(t)

	confirmed := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusConfirmed}
	pending := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusPendingCancel}
	event := &domain.Event{ID: "e1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmed, nil).Once()
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.BookingStatusPendingCancel, mock.Anything).
		Run(func(ctx context.Context, id string, current, target domain.BookingStatus, meta domain.TransitionMeta) {
			require.NotNil(t, meta.Reason)
			assert.Equal(t, domain.ReasonMusicianChangedMind, *meta.Reason)
			require.NotNil(t, meta.Actor)
			assert.Equal(t, domain.ActorMusician, *meta.Actor)
		}).
		Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pending, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, pending, event).Return()

	result, err := svc.RequestCancel(context.Background(), "b1", domain.ReasonMusicianChangedMind, domain.ActorMusician)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPendingCancel, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_RequestCancel_UnknownReason(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.RequestCancel(context.Background(), "b1", domain.CancellationReason("vibes"), domain.ActorVenue)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Cancel_FromPendingWithoutReason(t *testing.T) {
	svc, m := newBookingService(t)

	pending := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusPendingCancel}
	cancelled := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusCancelled}
	event := &domain.Event{ID: "e1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pending, nil).Once()
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusPendingCancel, domain.BookingStatusCancelled, mock.Anything).
		Run(func(ctx context.Context, id string, current, target domain.BookingStatus, meta domain.TransitionMeta) {
			assert.Nil(t, meta.Reason) // the stored pending_cancel reason stands
		}).
		Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(cancelled, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, cancelled, event).Return()

	result, err := svc.Cancel(context.Background(), "b1", "", domain.ActorVenue)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_DirectFromApplied(t *testing.T) {
	svc, m := newBookingService(t)

	applied := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusApplied}
	cancelled := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusCancelled}
	event := &domain.Event{ID: "e1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(applied, nil).Once()
	m.bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, "b1", domain.BookingStatusApplied, domain.BookingStatusCancelled, mock.Anything).
		Run(func(ctx context.Context, id string, current, target domain.BookingStatus, meta domain.TransitionMeta) {
			require.NotNil(t, meta.Reason)
			assert.Equal(t, domain.ReasonOther, *meta.Reason)
		}).
		Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(cancelled, nil).Once()
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyStatusChanged(mock.Anything, cancelled, event).Return()

	result, err := svc.Cancel(context.Background(), "b1", domain.ReasonOther, domain.ActorMusician)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_CompletedIsFinal(t *testing.T) {
	svc, m := newBookingService(t)

	done := &domain.Booking{ID: "b1", EventID: "e1", Status: domain.BookingStatusCompleted}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(done, nil)

	_, err := svc.Cancel(context.Background(), "b1", domain.ReasonOther, domain.ActorVenue)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_SweepStaleCancelRequests_Success(t *testing.T) {
	svc, m := newBookingService(t)

	swept := []*domain.Booking{
		{ID: "b1", EventID: "e1", Status: domain.BookingStatusCancelled},
		{ID: "b2", EventID: "e2", Status: domain.BookingStatusCancelled},
	}

	m.bookingRepo.EXPECT().
		SweepStaleCancelRequests(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, olderThan time.Time) {
			assert.WithinDuration(t, time.Now().UTC().Add(-72*time.Hour), olderThan, time.Minute)
		}).
		Return(swept, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e2").Return(nil)

	result, err := svc.SweepStaleCancelRequests(context.Background(), 72*time.Hour)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBookingService_SweepStaleCancelRequests_NoneStale(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().SweepStaleCancelRequests(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := svc.SweepStaleCancelRequests(context.Background(), 72*time.Hour)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_SweepStaleCancelRequests_RepoError(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().SweepStaleCancelRequests(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.SweepStaleCancelRequests(context.Background(), 72*time.Hour)

	require.Error(t, err)
}

func TestBookingService_ListByEvent_Filters(t *testing.T) {
	svc, m := newBookingService(t)

	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", Status: domain.BookingStatusApplied},
		{ID: "b2", EventID: "e1", Status: domain.BookingStatusConfirmed},
	}
	m.bookingRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(bookings, nil)

	result, err := svc.ListByEvent(context.Background(), "e1", filter.State{Status: "confirmed"})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "b2", result[0].ID)
}

func TestBookingService_ListByMusician_Success(t *testing.T) {
	svc, m := newBookingService(t)

	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", MusicianID: "m1", Status: domain.BookingStatusApplied},
	}
	m.bookingRepo.EXPECT().ListByMusician(mock.Anything, "m1").Return(bookings, nil)

	result, err := svc.ListByMusician(context.Background(), "m1", filter.State{})

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
