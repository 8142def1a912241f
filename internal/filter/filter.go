// Package filter is the engine behind every listing screen: events,
// bookings and musicians all narrow their collections through the same
// declarative specification. A Spec declares which predicate families apply
// to an item type and how to read the relevant fields; a State carries the
// user-entered criteria. Evaluation is a pure function of (items, spec,
// state) and keeps no state between calls.
package filter

import (
	"strings"
	"time"
)

// All is the sentinel meaning "no constraint" for status and facet values.
// An empty value means the same thing.
const All = "all"

// DateLayout is the wire format for date bounds and the primary layout for
// item date fields.
const DateLayout = "2006-01-02"

// MatchMode describes how a facet's chooser should behave in the UI. It is
// a presentation hint only; both modes filter by exact equality.
type MatchMode int

const (
	MatchExact MatchMode = iota
	MatchChooser
)

// State is the flat filter input, typically rebuilt from query parameters on
// every interaction. Zero values and All mean "no constraint" throughout, so
// an empty State reproduces the unfiltered collection exactly.
type State struct {
	DateFrom string
	DateTo   string
	Status   string
	Search   string
	Facets   map[string]string
}

// Facet returns the selected value for a facet key, or "" when unset.
func (s State) Facet(key string) string {
	if s.Facets == nil {
		return ""
	}
	return s.Facets[key]
}

// IsZero reports whether no criterion is set (every value empty or All).
func (s State) IsZero() bool {
	if s.Search != "" || s.DateFrom != "" || s.DateTo != "" {
		return false
	}
	if s.Status != "" && s.Status != All {
		return false
	}
	for _, v := range s.Facets {
		if v != "" && v != All {
			return false
		}
	}
	return true
}

// Facet declares one dropdown facet: which field of the item it compares
// and how the chooser presents it. Declaring facets here, rather than
// accepting free-form keys at evaluation time, makes a bad facet key a
// compile-time problem: a State value under an undeclared key has no
// predicate to bind to and cannot silently change results.
type Facet[T any] struct {
	Key   string
	Field func(T) string
	Mode  MatchMode
}

// Spec declares which predicate families are enabled for an item type. Nil
// extractors disable the corresponding family.
type Spec[T any] struct {
	// SearchFields returns the values searched by the free-text predicate.
	// Empty strings stand for absent fields and are skipped.
	SearchFields func(T) []string

	// Date returns the item's date value for the range predicate, in
	// DateLayout or RFC 3339. Empty or unparseable values always pass.
	Date func(T) string

	// Status returns the item's status for the equality predicate.
	Status func(T) string

	Facets []Facet[T]
}

type predicate[T any] func(T) bool

// Apply evaluates the spec against the state and returns the matching
// subset in the original relative order. The overall predicate is the AND
// of every enabled sub-predicate; a sub-predicate whose state value is
// empty or All passes everything rather than nothing.
func Apply[T any](items []T, spec Spec[T], state State) []T {
	preds := compile(spec, state)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []predicate[T]) bool {
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}

func compile[T any](spec Spec[T], state State) []predicate[T] {
	var preds []predicate[T]

	if p := searchPredicate(spec, state); p != nil {
		preds = append(preds, p)
	}
	if p := datePredicate(spec, state); p != nil {
		preds = append(preds, p)
	}
	if p := statusPredicate(spec, state); p != nil {
		preds = append(preds, p)
	}
	for _, f := range spec.Facets {
		if p := facetPredicate(f, state); p != nil {
			preds = append(preds, p)
		}
	}

	return preds
}

// searchPredicate matches when the lowercase term is a substring of any
// non-absent field, case-insensitively. OR across fields.
func searchPredicate[T any](spec Spec[T], state State) predicate[T] {
	term := strings.ToLower(strings.TrimSpace(state.Search))
	if spec.SearchFields == nil || term == "" {
		return nil
	}

	return func(item T) bool {
		for _, field := range spec.SearchFields(item) {
			if field == "" {
				continue
			}
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	}
}

// datePredicate applies inclusive bounds to the item's date field. Items
// without a parseable date always pass: range filters exclude items dated
// outside the bound, never items lacking a date. A bound that itself does
// not parse is ignored.
func datePredicate[T any](spec Spec[T], state State) predicate[T] {
	if spec.Date == nil {
		return nil
	}

	from, hasFrom := parseDay(state.DateFrom)
	to, hasTo := parseDay(state.DateTo)
	if !hasFrom && !hasTo {
		return nil
	}

	return func(item T) bool {
		day, ok := parseDay(spec.Date(item))
		if !ok {
			return true
		}
		if hasFrom && day.Before(from) {
			return false
		}
		if hasTo && day.After(to) {
			return false
		}
		return true
	}
}

func statusPredicate[T any](spec Spec[T], state State) predicate[T] {
	if spec.Status == nil || state.Status == "" || state.Status == All {
		return nil
	}

	return func(item T) bool {
		return spec.Status(item) == state.Status
	}
}

func facetPredicate[T any](f Facet[T], state State) predicate[T] {
	want := state.Facet(f.Key)
	if want == "" || want == All {
		return nil
	}

	return func(item T) bool {
		return f.Field(item) == want
	}
}

// parseDay normalizes a date string to midnight UTC so bound comparison is
// calendar-day based regardless of the time component.
func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
