package service

import (
	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/filter"
)

// Filter specifications for the listing endpoints. Each declares, per item
// shape, which fields free-text search covers, which field acts as the date,
// what the status check compares against, and the dropdown facets. The
// engine ANDs whatever the caller actually set.

var eventSummarySpec = filter.Spec[*domain.EventSummary]{
	SearchFields: func(s *domain.EventSummary) []string {
		return []string{s.Event.Title, s.Event.Description, s.Event.City}
	},
	Date: func(s *domain.EventSummary) string {
		if s.Event.EventDate.IsZero() {
			return ""
		}
		return s.Event.EventDate.Format(filter.DateLayout)
	},
	// Events filter on the derived status, not the stored fallback: that is
	// what the dashboard shows.
	Status: func(s *domain.EventSummary) string { return string(s.DerivedStatus) },
	Facets: []filter.Facet[*domain.EventSummary]{
		{Key: "city", Field: func(s *domain.EventSummary) string { return s.Event.City }, Mode: filter.MatchExact},
		{Key: "genre", Field: func(s *domain.EventSummary) string { return s.Event.Genre }, Mode: filter.MatchExact},
		{Key: "venue", Field: func(s *domain.EventSummary) string { return s.Event.VenueID }, Mode: filter.MatchChooser},
	},
}

var bookingSpec = filter.Spec[*domain.Booking]{
	SearchFields: func(b *domain.Booking) []string { return []string{b.Pitch} },
	Date: func(b *domain.Booking) string {
		if b.AppliedAt.IsZero() {
			return ""
		}
		return b.AppliedAt.Format(filter.DateLayout)
	},
	Status: func(b *domain.Booking) string { return string(b.Status) },
	Facets: []filter.Facet[*domain.Booking]{
		{Key: "event", Field: func(b *domain.Booking) string { return b.EventID }, Mode: filter.MatchChooser},
		{Key: "musician", Field: func(b *domain.Booking) string { return b.MusicianID }, Mode: filter.MatchChooser},
		{Key: "venue", Field: func(b *domain.Booking) string { return b.VenueID }, Mode: filter.MatchChooser},
	},
}

var musicianSpec = filter.Spec[*domain.Musician]{
	SearchFields: func(m *domain.Musician) []string { return []string{m.Name, m.Bio} },
	Facets: []filter.Facet[*domain.Musician]{
		{Key: "genre", Field: func(m *domain.Musician) string { return m.Genre }, Mode: filter.MatchExact},
		{Key: "city", Field: func(m *domain.Musician) string { return m.City }, Mode: filter.MatchExact},
	},
}
