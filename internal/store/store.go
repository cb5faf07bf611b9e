// Package store holds the ordered, in-memory list of styles being edited.
package store

import (
	"github.com/dylanshade/style-organizer/internal/models"
)

// Placement says where a new record goes relative to an anchor
type Placement int

const (
	Append Placement = iota
	Above
	Below
)

// String returns the placement name
func (p Placement) String() string {
	switch p {
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "append"
	}
}

// NoAnchor marks a Position without an anchor record
const NoAnchor = -1

// Position addresses an insertion point. Anchor is the index of the record
// the placement is relative to.
type Position struct {
	Placement Placement
	Anchor    int
}

// AppendPosition inserts at the end of the list
func AppendPosition() Position {
	return Position{Placement: Append, Anchor: NoAnchor}
}

// AbovePosition inserts at the anchor's index
func AbovePosition(anchor int) Position {
	return Position{Placement: Above, Anchor: anchor}
}

// BelowPosition inserts right after the anchor
func BelowPosition(anchor int) Position {
	return Position{Placement: Below, Anchor: anchor}
}

// Store is the ordered sequence of styles. Records are addressed by their
// current index only.
type Store struct {
	styles []models.Style
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// Load replaces the entire contents with rows
func (s *Store) Load(rows []models.Style) {
	s.styles = append([]models.Style(nil), rows...)
}

// Rows returns a copy of the records in their current order
func (s *Store) Rows() []models.Style {
	return append([]models.Style(nil), s.styles...)
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.styles)
}

// At returns the record at index i
func (s *Store) At(i int) (models.Style, bool) {
	if !s.valid(i) {
		return models.Style{}, false
	}
	return s.styles[i], true
}

// Insert places style according to pos and returns its new index. A position
// without a valid anchor appends.
func (s *Store) Insert(style models.Style, pos Position) int {
	idx := len(s.styles)
	if pos.Placement != Append && s.valid(pos.Anchor) {
		idx = pos.Anchor
		if pos.Placement == Below {
			idx++
		}
	}

	s.styles = append(s.styles, models.Style{})
	copy(s.styles[idx+1:], s.styles[idx:])
	s.styles[idx] = style
	return idx
}

// Remove deletes the record at i. Invalid indexes are ignored.
func (s *Store) Remove(i int) bool {
	if !s.valid(i) {
		return false
	}
	s.styles = append(s.styles[:i], s.styles[i+1:]...)
	return true
}

// Reorder moves the record at from so that it ends up at index to. The
// relative order of every other record is unchanged.
func (s *Store) Reorder(from, to int) bool {
	if !s.valid(from) || !s.valid(to) {
		return false
	}
	if from == to {
		return true
	}

	moved := s.styles[from]
	if from < to {
		copy(s.styles[from:to], s.styles[from+1:to+1])
	} else {
		copy(s.styles[to+1:from+1], s.styles[to:from])
	}
	s.styles[to] = moved
	return true
}

// Update replaces the record at i in place
func (s *Store) Update(i int, style models.Style) bool {
	if !s.valid(i) {
		return false
	}
	s.styles[i] = style
	return true
}

func (s *Store) valid(i int) bool {
	return i >= 0 && i < len(s.styles)
}
