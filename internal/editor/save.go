package editor

import (
	"context"
	"fmt"
)

// BeginSave opens the password prompt and clears any earlier rejection.
func (s *Session) BeginSave() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNotReady
	}
	if s.saveState.inFlight() {
		return ErrSaveInFlight
	}

	s.saveState = SaveAwaitingPassword
	s.passwordError = false

	return nil
}

// CancelSave closes the password prompt without side effects. It cannot
// stop a save that is already verifying or committing.
func (s *Session) CancelSave() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveState.inFlight() {
		return ErrSaveInFlight
	}

	s.saveState = SaveIdle
	s.passwordError = false

	return nil
}

// SubmitPassword verifies candidate and, when it matches, replaces the stored
// document with the draft. A wrong password returns ErrAuthRejected and keeps
// the prompt open for another attempt. A store failure returns an error
// wrapping ErrPersistence; the draft is kept so the save can be retried.
//
// The session lock is not held while talking to the gate or the store. Only
// one save can be in flight; edits made meanwhile stay in the draft and are
// not part of this save.
func (s *Session) SubmitPassword(ctx context.Context, candidate string) error {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return ErrNotReady
	}
	switch s.saveState {
	case SaveAwaitingPassword:
	case SaveVerifying, SaveCommitting:
		s.mu.Unlock()
		return ErrSaveInFlight
	default:
		s.mu.Unlock()
		return ErrNoSaveInProgress
	}
	s.saveState = SaveVerifying
	s.mu.Unlock()

	ok, err := s.gate.Verify(ctx, candidate)

	s.mu.Lock()
	if err != nil {
		s.saveState = SaveAwaitingPassword
		s.mu.Unlock()
		s.logger.Errorw("failed to verify password", "error", err)
		return fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.saveState = SaveAwaitingPassword
		s.passwordError = true
		s.mu.Unlock()
		return ErrAuthRejected
	}
	s.passwordError = false
	s.saveState = SaveCommitting
	snapshot := s.draft
	s.mu.Unlock()

	// once committing, the write runs to completion even if the caller goes away
	_, err = s.store.Replace(context.WithoutCancel(ctx), snapshot, s.id)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveState = SaveIdle
	if err != nil {
		s.logger.Errorw("failed to save restaurant", "error", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.persisted = snapshot.Clone()
	s.logger.Infow("restaurant saved", "restaurant_id", snapshot.ID)

	return nil
}
