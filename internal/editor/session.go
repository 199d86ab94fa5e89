package editor

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/bgocumlu/menu/internal/domain"
	"go.uber.org/zap"
)

// Session is one admin's edit of the restaurant document. It keeps the last
// persisted document and a draft copy; edits only ever touch the draft, and
// only a successful save moves the draft into the persisted slot.
//
// Every edit builds new maps and slices along the path it changes and swaps
// the draft pointer, so a State taken before an edit keeps observing the old
// document in full.
type Session struct {
	mu sync.Mutex

	id     string
	store  DocumentStore
	gate   CredentialGate
	logger *zap.SugaredLogger

	persisted      *domain.Restaurant
	draft          *domain.Restaurant
	language       domain.Language
	activeCategory string

	saveState     SaveState
	passwordError bool
	lastUsed      time.Time
}

func NewSession(
	id string,
	store DocumentStore,
	gate CredentialGate,
	language domain.Language,
	logger *zap.SugaredLogger,
) *Session {
	if !language.Valid() {
		language = domain.LanguageTR
	}

	return &Session{
		id:        id,
		store:     store,
		gate:      gate,
		logger:    logger.With("session_id", id),
		language:  language,
		saveState: SaveIdle,
		lastUsed:  time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Load fetches the persisted document and makes the session ready.
func (s *Session) Load(ctx context.Context) error {
	restaurant, err := s.store.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to load restaurant: %w", err)
	}

	s.Initialize(restaurant)
	s.logger.Infow("editor session loaded", "restaurant_id", restaurant.ID)

	return nil
}

// Initialize makes the session ready with restaurant as the persisted copy.
// The session keeps its own deep copies; the caller may keep using restaurant.
func (s *Session) Initialize(restaurant *domain.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisted = restaurant.Clone()
	s.persisted.Normalize()
	s.draft = s.persisted.Clone()
	s.activeCategory = s.draft.FirstCategoryID(s.language)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		SessionID:      s.id,
		Ready:          s.draft != nil,
		Language:       s.language,
		ActiveCategory: s.activeCategory,
		SaveState:      s.saveState,
		PasswordError:  s.passwordError,
		Dirty:          s.draft != nil && !reflect.DeepEqual(s.draft, s.persisted),
		Draft:          s.draft,
	}
}

// Persisted returns a copy of the last document known to be stored.
func (s *Session) Persisted() *domain.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persisted.Clone()
}

// ResetDraft discards every unsaved edit.
func (s *Session) ResetDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNotReady
	}

	s.draft = s.persisted.Clone()
	s.activeCategory = s.draft.FirstCategoryID(s.language)
	s.logger.Info("editor draft reset")

	return nil
}

// SetLanguage switches the language that edits apply to. The active category
// follows the category mapping of the new language; when the mapping is
// missing or points nowhere, the same id is kept if it exists, else the
// first category is selected.
func (s *Session) SetLanguage(lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNotReady
	}

	s.language = lang

	if mapped, ok := s.draft.CategoryMappingByLanguage.Get(lang)[s.activeCategory]; ok && s.draft.CategoryIndex(lang, mapped) >= 0 {
		s.activeCategory = mapped
	} else if s.draft.CategoryIndex(lang, s.activeCategory) < 0 {
		s.activeCategory = s.draft.FirstCategoryID(lang)
	}

	return nil
}

// SelectCategory makes id the active category. Unknown ids are ignored.
func (s *Session) SelectCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNotReady
	}

	if s.draft.CategoryIndex(s.language, id) >= 0 {
		s.activeCategory = id
	}

	return nil
}

func (s *Session) touch(at time.Time) {
	s.mu.Lock()
	s.lastUsed = at
	s.mu.Unlock()
}

// expired reports whether the session has been idle longer than ttl. A
// session with a save in flight never expires.
func (s *Session) expired(at time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.saveState.inFlight() && at.Sub(s.lastUsed) > ttl
}

// mutate applies fn to the draft under the session lock. fn returns the next
// draft, or nil to leave the session unchanged.
func (s *Session) mutate(fn func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNotReady
	}

	next, err := fn(s.draft, s.language)
	if err != nil {
		return err
	}
	if next != nil {
		s.draft = next
	}

	return nil
}
