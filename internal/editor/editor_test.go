package editor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	mu       sync.Mutex
	doc      *domain.Restaurant
	loadErr  error
	saveErr  error
	saves    []*domain.Restaurant
	sessions []string
	ctxErrs  []error
	// when set, Replace blocks until release is closed
	entered chan struct{}
	release chan struct{}
}

func (f *fakeStore) Current(ctx context.Context) (*domain.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.doc.Clone(), nil
}

func (f *fakeStore) Replace(ctx context.Context, r *domain.Restaurant, sessionID string) (*domain.Restaurant, error) {
	if f.entered != nil {
		close(f.entered)
	}
	if f.release != nil {
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.doc = r.Clone()
	f.saves = append(f.saves, r.Clone())
	f.sessions = append(f.sessions, sessionID)
	return r.Clone(), nil
}

type fakeGate struct {
	password string
	err      error
	calls    int
	entered  chan struct{}
	release  chan struct{}
}

func (g *fakeGate) Verify(ctx context.Context, candidate string) (bool, error) {
	g.calls++
	if g.entered != nil {
		close(g.entered)
	}
	if g.release != nil {
		<-g.release
	}
	if g.err != nil {
		return false, g.err
	}
	return candidate == g.password, nil
}

func testRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:      "anatolia",
		Name:    "Anatolia",
		Cuisine: "Turkish",
		MenuByLanguage: domain.ByLanguage[domain.MenuData]{
			EN: domain.MenuData{
				"starters": {
					Title:       "Starters",
					Description: "Begin your journey",
					Items: []domain.MenuItem{
						{Name: "Hummus", Price: "6.50₺", Tags: []string{"Vegetarian", "Popular"}},
						{Name: "Börek", Price: "7.50₺", Tags: []string{"Vegetarian"}},
						{Name: "Dolma", Price: "8.00₺", Tags: []string{"Vegan"}},
					},
				},
				"mains": {
					Title: "Main Courses",
					Items: []domain.MenuItem{
						{Name: "Adana Kebab", Price: "18.50₺", Tags: []string{"Spicy"}},
					},
				},
			},
			TR: domain.MenuData{
				"starters": {
					Title: "Başlangıçlar",
					Items: []domain.MenuItem{
						{Name: "Humus", Price: "6.50₺", Tags: []string{"Vejetaryen"}},
					},
				},
				"mains": {
					Title: "Ana Yemekler",
					Items: []domain.MenuItem{
						{Name: "Adana Kebap", Price: "18.50₺", Tags: []string{"Acılı"}},
					},
				},
			},
		},
		CategoryListByLanguage: domain.ByLanguage[[]domain.CategoryRef]{
			EN: []domain.CategoryRef{{ID: "starters", Name: "Starters"}, {ID: "mains", Name: "Main Courses"}},
			TR: []domain.CategoryRef{{ID: "starters", Name: "Başlangıçlar"}, {ID: "mains", Name: "Ana Yemekler"}},
		},
		CategoryMappingByLanguage: domain.ByLanguage[domain.CategoryMapping]{
			EN: domain.CategoryMapping{"starters": "starters", "mains": "mains"},
			TR: domain.CategoryMapping{"starters": "starters", "mains": "mains"},
		},
		Theme:   domain.Theme{PrimaryColor: "#c83232", SecondaryColor: "#00798c"},
		Contact: domain.Contact{Phone: "(123) 456-7890"},
	}
}

func newTestSession(t *testing.T, lang domain.Language) (*Session, *fakeStore, *fakeGate) {
	t.Helper()

	store := &fakeStore{doc: testRestaurant()}
	gate := &fakeGate{password: "secret"}
	s := NewSession("session-1", store, gate, lang, zap.NewNop().Sugar())
	require.NoError(t, s.Load(context.Background()))

	return s, store, gate
}

func draftOf(t *testing.T, s *Session) *domain.Restaurant {
	t.Helper()

	state := s.State()
	require.True(t, state.Ready)
	return state.Draft
}

func categoryIDs(r *domain.Restaurant, lang domain.Language) []string {
	ids := []string{}
	for _, c := range r.CategoryListByLanguage.Get(lang) {
		ids = append(ids, c.ID)
	}
	return ids
}

func itemNames(r *domain.Restaurant, lang domain.Language, categoryID string) []string {
	names := []string{}
	for _, it := range r.MenuByLanguage.Get(lang)[categoryID].Items {
		names = append(names, it.Name)
	}
	return names
}

var errBoom = errors.New("boom")
