package service

import (
	"errors"

	"github.com/dylanshade/style-organizer/internal/models"
	"github.com/dylanshade/style-organizer/internal/store"
)

var (
	// ErrInteractionPending is returned when a mutation is requested while
	// another interaction is still open
	ErrInteractionPending = errors.New("another edit is still open")

	// ErrInteractionClosed is returned when confirming an interaction that
	// was already confirmed or cancelled
	ErrInteractionClosed = errors.New("edit is no longer open")
)

// InteractionKind is the mutation an interaction will commit
type InteractionKind int

const (
	KindAdd InteractionKind = iota
	KindEdit
	KindDelete
)

func (k InteractionKind) String() string {
	switch k {
	case KindEdit:
		return "edit"
	case KindDelete:
		return "delete"
	default:
		return "add"
	}
}

// InteractionState tracks a modal interaction from open to resolved
type InteractionState int

const (
	StateOpen InteractionState = iota
	StateConfirmed
	StateCancelled
)

// Interaction is one open modal step. Confirm commits exactly one mutation,
// Cancel commits none. Only one interaction is open per Service at a time.
type Interaction struct {
	svc      *Service
	kind     InteractionKind
	state    InteractionState
	target   int
	position store.Position
	initial  models.Style
}

// Kind returns the pending mutation
func (i *Interaction) Kind() InteractionKind {
	return i.kind
}

// State returns whether the interaction is open, confirmed, or cancelled
func (i *Interaction) State() InteractionState {
	return i.state
}

// Initial returns the values the entry form starts with: empty for add, the
// target's current fields for edit and delete
func (i *Interaction) Initial() models.Style {
	return i.initial
}

// Target returns the index being edited or deleted, or store.NoAnchor for add
func (i *Interaction) Target() int {
	return i.target
}

// Position returns where an add interaction inserts
func (i *Interaction) Position() store.Position {
	return i.position
}

// Confirm applies the mutation. For a delete interaction entry is ignored.
// It returns the index of the affected record.
func (i *Interaction) Confirm(entry models.Style) (int, error) {
	if i.state != StateOpen {
		return store.NoAnchor, ErrInteractionClosed
	}
	i.state = StateConfirmed
	i.svc.pending = nil
	return i.svc.commit(i, entry)
}

// Cancel abandons the interaction without touching the store
func (i *Interaction) Cancel() {
	if i.state != StateOpen {
		return
	}
	i.state = StateCancelled
	i.svc.pending = nil
	i.svc.log.Debug().Str("kind", i.kind.String()).Msg("edit cancelled")
}
