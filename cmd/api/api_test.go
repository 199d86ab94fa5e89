package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/editor"
	"github.com/bgocumlu/menu/internal/preferences"
	"github.com/bgocumlu/menu/internal/ratelimiter"
	"github.com/bgocumlu/menu/internal/repo"
	"github.com/bgocumlu/menu/internal/seed"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "secret"

type fakeStorage struct {
	err error
}

func (s *fakeStorage) Ping(context.Context) error  { return s.err }
func (s *fakeStorage) Close(context.Context) error { return nil }

type fakeRestaurants struct {
	mu       sync.Mutex
	current  *domain.Restaurant
	sessions []string
}

func (f *fakeRestaurants) Current(context.Context) (*domain.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == nil {
		return nil, repo.ErrNotFound
	}
	return f.current.Clone(), nil
}

func (f *fakeRestaurants) Replace(_ context.Context, r *domain.Restaurant, sessionID string) (*domain.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.current = r.Clone()
	f.sessions = append(f.sessions, sessionID)
	return r.Clone(), nil
}

type fakeCredentials struct {
	mu       sync.Mutex
	password string
}

func (f *fakeCredentials) Create(_ context.Context, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.password != "" {
		return repo.ErrCredentialExists
	}
	f.password = password
	return nil
}

func (f *fakeCredentials) Verify(_ context.Context, candidate string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.password == "" {
		return false, repo.ErrNotFound
	}
	return candidate == f.password, nil
}

type fakeAudits struct {
	restaurantID string
	limit        int
}

func (f *fakeAudits) History(_ context.Context, restaurantID string, limit int) ([]domain.MenuSaveAudit, error) {
	f.restaurantID = restaurantID
	f.limit = limit
	return []domain.MenuSaveAudit{{RestaurantID: restaurantID, SessionID: "session-1"}}, nil
}

type fakeImporter struct {
	lang   domain.Language
	err    error
	during func()
}

func (f *fakeImporter) ParseMenu(_ context.Context, _ string, lang domain.Language) ([]domain.CategoryRef, domain.MenuData, error) {
	f.lang = lang
	if f.during != nil {
		f.during()
	}
	if f.err != nil {
		return nil, nil, f.err
	}
	return []domain.CategoryRef{{ID: "soups", Name: "Soups"}},
		domain.MenuData{"soups": {Title: "Soups", Items: []domain.MenuItem{{Name: "Lentil Soup"}}}},
		nil
}

type testApp struct {
	app         *application
	handler     http.Handler
	restaurants *fakeRestaurants
	credentials *fakeCredentials
	audits      *fakeAudits
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zap.NewNop().Sugar()
	restaurants := &fakeRestaurants{current: seed.Anatolia()}
	credentials := &fakeCredentials{password: testPassword}
	audits := &fakeAudits{}

	app := &application{
		config: config{
			addr:        ":8080",
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		logger:      logger,
		rateLimiter: ratelimiter.NewTokenBucketLimiter(20, 5*time.Second),
		storage:     &fakeStorage{},
		restaurants: restaurants,
		credentials: credentials,
		audits:      audits,
		sessions:    editor.NewRegistry(restaurants, credentials, time.Hour, logger),
		preferences: preferences.New(time.Hour, false),
	}

	return &testApp{
		app:         app,
		handler:     app.mount(),
		restaurants: restaurants,
		credentials: credentials,
		audits:      audits,
	}
}

func (ta *testApp) do(t *testing.T, method, path string, body any, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope.Data
}

func withCookie(name, value string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

func withHeader(name, value string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set(name, value)
	}
}

var errBoom = errors.New("boom")

func withRemoteAddr(addr string) func(*http.Request) {
	return func(r *http.Request) {
		r.RemoteAddr = addr
	}
}
