package editor

import (
	"context"
	"testing"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFlow(t *testing.T) {
	s, store, gate := newTestSession(t, domain.LanguageEN)
	ctx := context.Background()

	require.NoError(t, s.SetItemField("starters", 0, ItemFieldPrice, "7.00₺"))
	require.NoError(t, s.BeginSave())
	assert.Equal(t, SaveAwaitingPassword, s.State().SaveState)

	err := s.SubmitPassword(ctx, "wrong")
	assert.ErrorIs(t, err, ErrAuthRejected)
	state := s.State()
	assert.Equal(t, SaveAwaitingPassword, state.SaveState)
	assert.True(t, state.PasswordError)
	assert.True(t, state.Dirty)
	assert.Empty(t, store.saves)

	require.NoError(t, s.SubmitPassword(ctx, "secret"))
	state = s.State()
	assert.Equal(t, SaveIdle, state.SaveState)
	assert.False(t, state.PasswordError)
	assert.False(t, state.Dirty)
	assert.Equal(t, 2, gate.calls)

	require.Len(t, store.saves, 1)
	assert.Equal(t, "7.00₺", store.saves[0].MenuByLanguage.EN["starters"].Items[0].Price)
	assert.Equal(t, []string{"session-1"}, store.sessions)
	assert.Equal(t, state.Draft, s.Persisted())
}

func TestSaveWithoutChangesStillWrites(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.BeginSave())
	require.NoError(t, s.SubmitPassword(context.Background(), "secret"))

	require.Len(t, store.saves, 1)
	assert.Equal(t, testRestaurant(), store.saves[0])
}

func TestBeginSaveClearsPasswordError(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.BeginSave())
	require.ErrorIs(t, s.SubmitPassword(context.Background(), "wrong"), ErrAuthRejected)
	require.NoError(t, s.CancelSave())

	state := s.State()
	assert.Equal(t, SaveIdle, state.SaveState)
	assert.False(t, state.PasswordError)

	require.NoError(t, s.BeginSave())
	assert.False(t, s.State().PasswordError)
}

func TestCancelSave(t *testing.T) {
	s, store, gate := newTestSession(t, domain.LanguageEN)
	require.NoError(t, s.AddItem("mains"))

	require.NoError(t, s.BeginSave())
	require.NoError(t, s.CancelSave())

	state := s.State()
	assert.Equal(t, SaveIdle, state.SaveState)
	assert.True(t, state.Dirty)
	assert.Empty(t, store.saves)
	assert.Zero(t, gate.calls)
}

func TestSubmitPasswordWithoutPrompt(t *testing.T) {
	s, store, gate := newTestSession(t, domain.LanguageEN)

	err := s.SubmitPassword(context.Background(), "secret")

	assert.ErrorIs(t, err, ErrNoSaveInProgress)
	assert.Zero(t, gate.calls)
	assert.Empty(t, store.saves)
}

func TestSavePersistenceFailureKeepsDraft(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)
	store.saveErr = errBoom

	require.NoError(t, s.SetRestaurantField(RestaurantFieldName, "Anadolu"))
	require.NoError(t, s.BeginSave())

	err := s.SubmitPassword(context.Background(), "secret")
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, errBoom)

	state := s.State()
	assert.Equal(t, SaveIdle, state.SaveState)
	assert.True(t, state.Dirty)
	assert.Equal(t, "Anadolu", state.Draft.Name)
	assert.Equal(t, "Anatolia", s.Persisted().Name)

	// retry succeeds once the store recovers
	store.saveErr = nil
	require.NoError(t, s.BeginSave())
	require.NoError(t, s.SubmitPassword(context.Background(), "secret"))
	assert.Equal(t, "Anadolu", store.doc.Name)
	assert.False(t, s.State().Dirty)
}

func TestSaveVerifyErrorReturnsToPrompt(t *testing.T) {
	s, store, gate := newTestSession(t, domain.LanguageEN)
	gate.err = errBoom

	require.NoError(t, s.BeginSave())
	err := s.SubmitPassword(context.Background(), "secret")

	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, ErrAuthRejected)
	state := s.State()
	assert.Equal(t, SaveAwaitingPassword, state.SaveState)
	assert.False(t, state.PasswordError)
	assert.Empty(t, store.saves)
}

func TestSaveSingleInFlight(t *testing.T) {
	s, store, gate := newTestSession(t, domain.LanguageEN)
	gate.entered = make(chan struct{})
	gate.release = make(chan struct{})

	require.NoError(t, s.BeginSave())

	done := make(chan error, 1)
	go func() {
		done <- s.SubmitPassword(context.Background(), "secret")
	}()

	<-gate.entered
	assert.Equal(t, SaveVerifying, s.State().SaveState)
	assert.ErrorIs(t, s.BeginSave(), ErrSaveInFlight)
	assert.ErrorIs(t, s.CancelSave(), ErrSaveInFlight)
	assert.ErrorIs(t, s.SubmitPassword(context.Background(), "secret"), ErrSaveInFlight)

	close(gate.release)
	require.NoError(t, <-done)

	assert.Len(t, store.saves, 1)
	assert.Equal(t, SaveIdle, s.State().SaveState)
}

func TestEditsDuringCommitStayInDraft(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)
	store.entered = make(chan struct{})
	store.release = make(chan struct{})

	require.NoError(t, s.SetRestaurantField(RestaurantFieldName, "Saved"))
	require.NoError(t, s.BeginSave())

	done := make(chan error, 1)
	go func() {
		done <- s.SubmitPassword(context.Background(), "secret")
	}()

	<-store.entered
	assert.Equal(t, SaveCommitting, s.State().SaveState)
	require.NoError(t, s.SetRestaurantField(RestaurantFieldCuisine, "Unsaved"))

	close(store.release)
	require.NoError(t, <-done)

	assert.Equal(t, "Saved", store.doc.Name)
	assert.Equal(t, "Turkish", store.doc.Cuisine)

	state := s.State()
	assert.Equal(t, "Unsaved", state.Draft.Cuisine)
	assert.True(t, state.Dirty)
	assert.Equal(t, "Turkish", s.Persisted().Cuisine)
}

func TestCommitSurvivesCanceledContext(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)
	store.entered = make(chan struct{})
	store.release = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.BeginSave())

	done := make(chan error, 1)
	go func() {
		done <- s.SubmitPassword(ctx, "secret")
	}()

	<-store.entered
	cancel()
	close(store.release)

	require.NoError(t, <-done)
	require.Len(t, store.saves, 1)
	assert.NoError(t, store.ctxErrs[0])
}
