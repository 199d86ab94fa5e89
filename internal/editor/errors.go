package editor

import "errors"

var (
	// ErrNotReady is returned by every operation before a document is loaded.
	ErrNotReady = errors.New("editor session not ready")
	// ErrDuplicateID is returned when a new category id is already used in the active language.
	ErrDuplicateID = errors.New("category id already exists")
	// ErrValidationMissing is returned when a required field of a new category is empty.
	ErrValidationMissing = errors.New("category id and name are required")
	// ErrAuthRejected is returned when the save password does not match.
	ErrAuthRejected = errors.New("incorrect password")
	// ErrPersistence wraps store failures during a save. The draft is kept.
	ErrPersistence = errors.New("failed to persist restaurant")

	ErrInvalidField     = errors.New("invalid field")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrSaveInFlight     = errors.New("a save is already in progress")
	ErrNoSaveInProgress = errors.New("no save is awaiting a password")
	ErrSessionNotFound  = errors.New("editor session not found")
	ErrLanguageChanged  = errors.New("editing language changed")
)
