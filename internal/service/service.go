package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/dylanshade/style-organizer/internal/logging"
	"github.com/dylanshade/style-organizer/internal/models"
	"github.com/dylanshade/style-organizer/internal/storage"
	"github.com/dylanshade/style-organizer/internal/store"
)

// ErrNoTablePath is returned by Save when no path was given and no table has
// been opened yet
var ErrNoTablePath = errors.New("no table file selected")

// Service provides the editing operations over the style list. It owns the
// record store and the preferences value.
type Service struct {
	storage   *storage.Storage
	store     *store.Store
	prefs     models.Preferences
	tablePath string
	modified  bool
	pending   *Interaction
	log       zerolog.Logger
}

// NewService creates a service and loads preferences from storage. A missing
// preferences file yields defaults; a malformed one is returned as an error.
func NewService(st *storage.Storage) (*Service, error) {
	prefs, err := st.LoadPreferences()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return &Service{
		storage: st,
		store:   store.New(),
		prefs:   prefs,
		log:     logging.Component("service"),
	}, nil
}

// Open replaces the list with the contents of a table file. On error the
// current list is left as it was.
func (s *Service) Open(path string) error {
	if s.pending != nil {
		return ErrInteractionPending
	}

	rows, err := s.storage.LoadTable(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("load table failed")
		return err
	}

	s.store.Load(rows)
	s.tablePath = path
	s.modified = false
	s.log.Info().Str("path", path).Int("rows", len(rows)).Msg("table loaded")
	return nil
}

// Save writes the list to path, or to the last opened or saved path when
// path is empty
func (s *Service) Save(path string) error {
	if path == "" {
		path = s.tablePath
	}
	if path == "" {
		return ErrNoTablePath
	}

	if err := s.storage.SaveTable(path, s.store.Rows()); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("save table failed")
		return err
	}

	s.tablePath = path
	s.modified = false
	s.log.Info().Str("path", path).Int("rows", s.store.Len()).Msg("table saved")
	return nil
}

// TablePath returns the file the list was last loaded from or saved to
func (s *Service) TablePath() string {
	return s.tablePath
}

// Modified reports whether the list changed since the last open or save
func (s *Service) Modified() bool {
	return s.modified
}

// Styles returns the current list in order
func (s *Service) Styles() []models.Style {
	return s.store.Rows()
}

// Style returns the record at index i
func (s *Service) Style(i int) (models.Style, bool) {
	return s.store.At(i)
}

// Len returns the number of records
func (s *Service) Len() int {
	return s.store.Len()
}

// Pending returns the open interaction, if any
func (s *Service) Pending() *Interaction {
	return s.pending
}

// BeginAdd opens an entry interaction for a new style inserted at pos
func (s *Service) BeginAdd(pos store.Position) (*Interaction, error) {
	return s.begin(&Interaction{
		kind:     KindAdd,
		target:   store.NoAnchor,
		position: pos,
	})
}

// BeginEdit opens an entry interaction pre-filled with the style at index.
// It returns nil without error when there is no such style.
func (s *Service) BeginEdit(index int) (*Interaction, error) {
	style, ok := s.store.At(index)
	if !ok {
		return nil, nil
	}
	return s.begin(&Interaction{
		kind:    KindEdit,
		target:  index,
		initial: style,
	})
}

// BeginDelete opens a yes/no interaction for removing the style at index.
// It returns nil without error when there is no such style.
func (s *Service) BeginDelete(index int) (*Interaction, error) {
	style, ok := s.store.At(index)
	if !ok {
		return nil, nil
	}
	return s.begin(&Interaction{
		kind:    KindDelete,
		target:  index,
		initial: style,
	})
}

func (s *Service) begin(i *Interaction) (*Interaction, error) {
	if s.pending != nil {
		return nil, ErrInteractionPending
	}
	i.svc = s
	i.state = StateOpen
	s.pending = i
	return i, nil
}

func (s *Service) commit(i *Interaction, entry models.Style) (int, error) {
	switch i.kind {
	case KindAdd:
		idx := s.store.Insert(entry, i.position)
		s.changed("add", idx)
		return idx, nil
	case KindEdit:
		if !s.store.Update(i.target, entry) {
			return store.NoAnchor, fmt.Errorf("style %d no longer exists", i.target)
		}
		s.changed("edit", i.target)
		return i.target, nil
	case KindDelete:
		if !s.store.Remove(i.target) {
			return store.NoAnchor, fmt.Errorf("style %d no longer exists", i.target)
		}
		s.changed("delete", i.target)
		return i.target, nil
	}
	return store.NoAnchor, fmt.Errorf("unknown interaction kind %d", i.kind)
}

// AddSeparator inserts the separator sentinel at pos and returns its index
func (s *Service) AddSeparator(pos store.Position) (int, error) {
	if s.pending != nil {
		return store.NoAnchor, ErrInteractionPending
	}
	idx := s.store.Insert(models.Separator(), pos)
	s.changed("separator", idx)
	return idx, nil
}

// Move reorders the style at from so it ends up at to
func (s *Service) Move(from, to int) error {
	if s.pending != nil {
		return ErrInteractionPending
	}
	if !s.store.Reorder(from, to) {
		return fmt.Errorf("cannot move style %d to %d: index out of range", from, to)
	}
	if from != to {
		s.changed("move", to)
	}
	return nil
}

func (s *Service) changed(op string, index int) {
	s.modified = true
	s.log.Debug().Str("op", op).Int("index", index).Int("rows", s.store.Len()).Msg("list changed")
}

// Preferences returns the current preferences
func (s *Service) Preferences() models.Preferences {
	return s.prefs
}

// UpdatePreferences persists prefs, then makes them current. If the write
// fails the previous preferences stay in effect.
func (s *Service) UpdatePreferences(prefs models.Preferences) error {
	if err := s.storage.SavePreferences(prefs); err != nil {
		s.log.Error().Err(err).Msg("save preferences failed")
		return err
	}
	s.prefs = prefs
	s.log.Info().
		Bool("show_full_prompt_info", prefs.ShowFullPromptInfo).
		Int("font_size", prefs.FontSize).
		Msg("preferences saved")
	return nil
}

// Labels returns the visible label of every style under the current
// preferences
func (s *Service) Labels() []string {
	rows := s.store.Rows()
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label(s.prefs.ShowFullPromptInfo)
	}
	return labels
}

// Find fuzzy-matches query against style names and prompts and returns the
// matching indexes, best match first. Separators never match.
func (s *Service) Find(query string) []int {
	rows := s.store.Rows()

	var searchStrings []string
	var indexes []int
	for i, row := range rows {
		if row.IsSeparator() {
			continue
		}
		searchStrings = append(searchStrings, row.Name+" "+row.Prompt)
		indexes = append(indexes, i)
	}

	matches := fuzzy.Find(query, searchStrings)
	results := make([]int, 0, len(matches))
	for _, match := range matches {
		results = append(results, indexes[match.Index])
	}
	return results
}
