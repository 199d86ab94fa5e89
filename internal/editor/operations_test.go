package editor

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategory(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.AddCategory("desserts", "Desserts"))

	state := s.State()
	draft := state.Draft
	assert.Equal(t, []string{"starters", "mains", "desserts"}, categoryIDs(draft, domain.LanguageEN))
	assert.Equal(t, domain.MenuCategory{Title: "Desserts", Description: "", Items: []domain.MenuItem{}}, draft.MenuByLanguage.EN["desserts"])
	assert.Equal(t, "desserts", draft.CategoryMappingByLanguage.EN["desserts"])
	assert.Equal(t, "desserts", state.ActiveCategory)
	assert.True(t, state.Dirty)

	// other language untouched
	assert.Equal(t, []string{"starters", "mains"}, categoryIDs(draft, domain.LanguageTR))
	assert.NotContains(t, draft.MenuByLanguage.TR, "desserts")
	require.NoError(t, draft.Validate())
}

func TestAddCategoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		title   string
		wantErr error
	}{
		{"empty id", "", "Desserts", ErrValidationMissing},
		{"blank id", "   ", "Desserts", ErrValidationMissing},
		{"empty name", "desserts", "", ErrValidationMissing},
		{"duplicate", "mains", "Mains", ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store, _ := newTestSession(t, domain.LanguageEN)

			err := s.AddCategory(tt.id, tt.title)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, store.doc, s.State().Draft)
		})
	}
}

func TestAddCategoryReusesRemovedID(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageTR)

	require.NoError(t, s.RemoveCategory("mains"))
	require.NoError(t, s.AddCategory("mains", "Ana Yemekler"))

	assert.Equal(t, []string{"starters", "mains"}, categoryIDs(draftOf(t, s), domain.LanguageTR))
}

func TestAddThenRemoveCategoryRestoresDraft(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)
	before := draftOf(t, s).Clone()

	require.NoError(t, s.AddCategory("desserts", "Desserts"))
	require.NoError(t, s.RemoveCategory("desserts"))

	assert.Equal(t, before, draftOf(t, s))
	assert.False(t, s.State().Dirty)
}

func TestRemoveCategory(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)
	require.NoError(t, s.SelectCategory("starters"))

	require.NoError(t, s.RemoveCategory("starters"))

	state := s.State()
	draft := state.Draft
	assert.Equal(t, []string{"mains"}, categoryIDs(draft, domain.LanguageEN))
	assert.NotContains(t, draft.MenuByLanguage.EN, "starters")
	assert.NotContains(t, draft.CategoryMappingByLanguage.EN, "starters")
	assert.Equal(t, "mains", state.ActiveCategory)

	assert.Contains(t, draft.MenuByLanguage.TR, "starters")
}

func TestRemoveLastCategoryClearsActive(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.RemoveCategory("starters"))
	require.NoError(t, s.RemoveCategory("mains"))

	state := s.State()
	assert.Empty(t, state.Draft.CategoryListByLanguage.EN)
	assert.Empty(t, state.Draft.MenuByLanguage.EN)
	assert.Equal(t, "", state.ActiveCategory)
}

func TestRemoveMissingCategoryIsNoop(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)
	before := s.State().Draft

	require.NoError(t, s.RemoveCategory("unknown"))

	assert.Same(t, before, s.State().Draft)
}

func TestRemoveInactiveCategoryKeepsActive(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)
	require.NoError(t, s.SelectCategory("mains"))

	require.NoError(t, s.RemoveCategory("starters"))

	assert.Equal(t, "mains", s.State().ActiveCategory)
}

func TestMoveCategory(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		direction Direction
		want      []string
	}{
		{"up", "mains", DirectionUp, []string{"mains", "starters"}},
		{"down", "starters", DirectionDown, []string{"mains", "starters"}},
		{"first up is noop", "starters", DirectionUp, []string{"starters", "mains"}},
		{"last down is noop", "mains", DirectionDown, []string{"starters", "mains"}},
		{"missing is noop", "unknown", DirectionUp, []string{"starters", "mains"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSession(t, domain.LanguageEN)

			require.NoError(t, s.MoveCategory(tt.id, tt.direction))

			draft := draftOf(t, s)
			assert.Equal(t, tt.want, categoryIDs(draft, domain.LanguageEN))
			assert.Equal(t, []string{"starters", "mains"}, categoryIDs(draft, domain.LanguageTR))
		})
	}
}

func TestMoveCategoryPreservesNamesAndData(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.MoveCategory("mains", DirectionUp))

	draft := draftOf(t, s)
	got := append([]domain.CategoryRef{}, draft.CategoryListByLanguage.EN...)
	want := append([]domain.CategoryRef{}, store.doc.CategoryListByLanguage.EN...)
	sort.Slice(got, func(i, j int) bool { return got[i].ID < got[j].ID })
	sort.Slice(want, func(i, j int) bool { return want[i].ID < want[j].ID })
	assert.Equal(t, want, got)
	assert.Equal(t, store.doc.MenuByLanguage, draft.MenuByLanguage)
}

func TestMoveInvalidDirection(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)

	assert.ErrorIs(t, s.MoveCategory("mains", "left"), ErrInvalidDirection)
	assert.ErrorIs(t, s.MoveItem("starters", 0, "left"), ErrInvalidDirection)
}

func TestSetCategoryFieldAndName(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.SetCategoryField("starters", CategoryFieldTitle, "Appetizers"))
	require.NoError(t, s.SetCategoryField("starters", CategoryFieldDescription, "Small plates"))
	require.NoError(t, s.SetCategoryName("starters", "Meze"))
	require.NoError(t, s.SetCategoryField("unknown", CategoryFieldTitle, "x"))
	require.NoError(t, s.SetCategoryName("unknown", "x"))

	draft := draftOf(t, s)
	assert.Equal(t, "Appetizers", draft.MenuByLanguage.EN["starters"].Title)
	assert.Equal(t, "Small plates", draft.MenuByLanguage.EN["starters"].Description)
	assert.Equal(t, domain.CategoryRef{ID: "starters", Name: "Meze"}, draft.CategoryListByLanguage.EN[0])
	assert.Equal(t, "Başlangıçlar", draft.MenuByLanguage.TR["starters"].Title)
	assert.NoError(t, draft.Validate())

	assert.ErrorIs(t, s.SetCategoryField("starters", "items", "x"), ErrInvalidField)
}

func TestSetCategoryMapping(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageTR)

	require.NoError(t, s.SetCategoryMapping("starters", "mains"))
	require.NoError(t, s.SetCategoryMapping("specials", "nowhere"))

	draft := draftOf(t, s)
	assert.Equal(t, "mains", draft.CategoryMappingByLanguage.TR["starters"])
	assert.Equal(t, "nowhere", draft.CategoryMappingByLanguage.TR["specials"])
	assert.Equal(t, "starters", draft.CategoryMappingByLanguage.EN["starters"])
	assert.NoError(t, draft.Validate())
}

func TestImportLanguage(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageTR)
	require.NoError(t, s.SetCategoryMapping("mains", "starters"))

	categories := []domain.CategoryRef{{ID: "mains", Name: "Ana Yemekler"}, {ID: "soups", Name: "Çorbalar"}}
	data := domain.MenuData{
		"mains": {Title: "Ana Yemekler", Items: []domain.MenuItem{{Name: "Mantı", Price: "16.50₺", Tags: []string{}}}},
		"soups": {Title: "Çorbalar", Items: []domain.MenuItem{}},
	}

	require.NoError(t, s.ImportLanguage(domain.LanguageTR, categories, data))

	state := s.State()
	draft := state.Draft
	assert.Equal(t, []string{"mains", "soups"}, categoryIDs(draft, domain.LanguageTR))
	assert.Equal(t, []string{"Mantı"}, itemNames(draft, domain.LanguageTR, "mains"))
	assert.Equal(t, domain.CategoryMapping{"mains": "starters", "soups": "soups"}, draft.CategoryMappingByLanguage.TR)
	assert.Equal(t, "mains", state.ActiveCategory)
	assert.Equal(t, []string{"starters", "mains"}, categoryIDs(draft, domain.LanguageEN))

	// the imported data is copied
	data["mains"].Items[0].Name = "changed"
	assert.Equal(t, []string{"Mantı"}, itemNames(draftOf(t, s), domain.LanguageTR, "mains"))
}

func TestImportLanguageRejectsInconsistentData(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)

	err := s.ImportLanguage(
		domain.LanguageEN,
		[]domain.CategoryRef{{ID: "soups", Name: "Soups"}},
		domain.MenuData{"salads": {Title: "Salads"}},
	)

	assert.ErrorIs(t, err, domain.ErrCategoryMismatch)
	assert.Equal(t, store.doc, s.State().Draft)
}

func TestImportLanguageAfterLanguageSwitch(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)

	// the sheet was read for en, then the editor switched to tr
	require.NoError(t, s.SetLanguage(domain.LanguageTR))

	err := s.ImportLanguage(
		domain.LanguageEN,
		[]domain.CategoryRef{{ID: "soups", Name: "Soups"}},
		domain.MenuData{"soups": {Title: "Soups", Items: []domain.MenuItem{}}},
	)

	assert.ErrorIs(t, err, ErrLanguageChanged)
	assert.Equal(t, store.doc, s.State().Draft)
	assert.Equal(t, domain.LanguageTR, s.State().Language)
}

func TestAddAndRemoveItem(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.AddItem("mains"))

	draft := draftOf(t, s)
	items := draft.MenuByLanguage.EN["mains"].Items
	require.Len(t, items, 2)
	assert.Equal(t, domain.MenuItem{
		Name:        "New Item",
		Description: "",
		Price:       "0.00",
		Image:       "/placeholder.svg?height=300&width=400",
		Tags:        []string{},
	}, items[1])

	require.NoError(t, s.RemoveItem("mains", 1))
	assert.Equal(t, store.doc, draftOf(t, s))
	assert.False(t, s.State().Dirty)
}

func TestAddItemTurkishPlaceholder(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageTR)

	require.NoError(t, s.AddItem("mains"))

	assert.Equal(t, []string{"Adana Kebap", "Yeni Ürün"}, itemNames(draftOf(t, s), domain.LanguageTR, "mains"))
}

func TestItemOperationsIgnoreMissingTargets(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)
	before := s.State().Draft

	require.NoError(t, s.AddItem("unknown"))
	require.NoError(t, s.RemoveItem("starters", 3))
	require.NoError(t, s.RemoveItem("starters", -1))
	require.NoError(t, s.RemoveItem("unknown", 0))
	require.NoError(t, s.MoveItem("unknown", 0, DirectionDown))
	require.NoError(t, s.MoveItem("starters", 5, DirectionDown))
	require.NoError(t, s.SetItemField("starters", 7, ItemFieldName, "x"))
	require.NoError(t, s.AddTag("starters", 9))
	require.NoError(t, s.SetTag("starters", 0, 2, "x"))
	require.NoError(t, s.SetTag("starters", 0, -1, "x"))
	require.NoError(t, s.RemoveTag("starters", 0, 5))

	assert.Same(t, before, s.State().Draft)
}

func TestRemoveItem(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.RemoveItem("starters", 1))

	assert.Equal(t, []string{"Hummus", "Dolma"}, itemNames(draftOf(t, s), domain.LanguageEN, "starters"))
}

func TestMoveItem(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		direction Direction
		want      []string
	}{
		{"up", 1, DirectionUp, []string{"Börek", "Hummus", "Dolma"}},
		{"down", 1, DirectionDown, []string{"Hummus", "Dolma", "Börek"}},
		{"first up is noop", 0, DirectionUp, []string{"Hummus", "Börek", "Dolma"}},
		{"last down is noop", 2, DirectionDown, []string{"Hummus", "Börek", "Dolma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSession(t, domain.LanguageEN)

			require.NoError(t, s.MoveItem("starters", tt.index, tt.direction))

			assert.Equal(t, tt.want, itemNames(draftOf(t, s), domain.LanguageEN, "starters"))
		})
	}
}

func TestMoveItemUpThenDownRestores(t *testing.T) {
	s, store, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.MoveItem("starters", 2, DirectionUp))
	require.NoError(t, s.MoveItem("starters", 1, DirectionDown))

	assert.Equal(t, store.doc, draftOf(t, s))
}

// moveStep moves an item, or the category itself when item is negative.
type moveStep struct {
	category  string
	item      int
	direction Direction
}

func (m moveStep) apply(s *Session) error {
	if m.item < 0 {
		return s.MoveCategory(m.category, m.direction)
	}
	return s.MoveItem(m.category, m.item, m.direction)
}

func (m moveStep) String() string {
	if m.item < 0 {
		return fmt.Sprintf("category %s %s", m.category, m.direction)
	}
	return fmt.Sprintf("item %s/%d %s", m.category, m.item, m.direction)
}

// assertSameContents checks that draft holds the same categories and items as
// original in every language, ignoring order.
func assertSameContents(t *testing.T, original, draft *domain.Restaurant, step string) {
	t.Helper()

	for _, lang := range domain.Languages {
		assert.Equal(t, sortedRefs(original.CategoryListByLanguage.Get(lang)), sortedRefs(draft.CategoryListByLanguage.Get(lang)), "%s: %s categories", step, lang)

		want, got := original.MenuByLanguage.Get(lang), draft.MenuByLanguage.Get(lang)
		require.Len(t, got, len(want), "%s: %s menu data", step, lang)
		for id, category := range want {
			require.Contains(t, got, id, step)
			assert.Equal(t, category.Title, got[id].Title, step)
			assert.Equal(t, category.Description, got[id].Description, step)
			assert.Equal(t, sortedItems(category.Items), sortedItems(got[id].Items), "%s: %s/%s items", step, lang, id)
		}

		assert.Equal(t, original.CategoryMappingByLanguage.Get(lang), draft.CategoryMappingByLanguage.Get(lang), step)
	}
	assert.NoError(t, draft.Validate(), step)
}

func sortedRefs(list []domain.CategoryRef) []domain.CategoryRef {
	out := append([]domain.CategoryRef{}, list...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedItems(items []domain.MenuItem) []domain.MenuItem {
	out := append([]domain.MenuItem{}, items...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func TestMoveSequencesKeepContents(t *testing.T) {
	steps := []moveStep{
		{category: "starters", item: -1, direction: DirectionUp},
		{category: "starters", item: -1, direction: DirectionDown},
		{category: "starters", item: -1, direction: DirectionDown},
		{category: "mains", item: -1, direction: DirectionDown},
		{category: "starters", item: 0, direction: DirectionUp},
		{category: "starters", item: 0, direction: DirectionDown},
		{category: "starters", item: 1, direction: DirectionDown},
		{category: "starters", item: 2, direction: DirectionDown},
		{category: "starters", item: 2, direction: DirectionUp},
		{category: "starters", item: 3, direction: DirectionUp},
		{category: "starters", item: 5, direction: DirectionUp},
		{category: "mains", item: 0, direction: DirectionDown},
		{category: "mains", item: 0, direction: DirectionUp},
		{category: "unknown", item: -1, direction: DirectionUp},
		{category: "unknown", item: 0, direction: DirectionDown},
		{category: "mains", item: -1, direction: DirectionUp},
	}

	s, store, _ := newTestSession(t, domain.LanguageEN)
	for _, step := range steps {
		require.NoError(t, step.apply(s), step.String())
		assertSameContents(t, store.doc, draftOf(t, s), step.String())
	}

	draft := draftOf(t, s)
	assert.Equal(t, []string{"mains", "starters"}, categoryIDs(draft, domain.LanguageEN))
	assert.Equal(t, []string{"Börek", "Hummus", "Dolma"}, itemNames(draft, domain.LanguageEN, "starters"))
}

func TestRandomMoveSequencesKeepContents(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	categories := []string{"starters", "mains", "unknown"}
	directions := []Direction{DirectionUp, DirectionDown}

	for _, lang := range domain.Languages {
		t.Run(string(lang), func(t *testing.T) {
			s, store, _ := newTestSession(t, lang)

			for i := 0; i < 200; i++ {
				step := moveStep{
					category:  categories[rnd.Intn(len(categories))],
					item:      rnd.Intn(5) - 1,
					direction: directions[rnd.Intn(len(directions))],
				}
				require.NoError(t, step.apply(s), step.String())
				assertSameContents(t, store.doc, draftOf(t, s), fmt.Sprintf("step %d (%s)", i, step))
			}
		})
	}
}

func TestSetItemField(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.SetItemField("starters", 0, ItemFieldName, "Houmous"))
	require.NoError(t, s.SetItemField("starters", 0, ItemFieldDescription, "Chickpeas"))
	require.NoError(t, s.SetItemField("starters", 0, ItemFieldPrice, "7.00₺"))
	require.NoError(t, s.SetItemField("starters", 0, ItemFieldImage, "/hummus.jpg"))

	item := draftOf(t, s).MenuByLanguage.EN["starters"].Items[0]
	assert.Equal(t, "Houmous", item.Name)
	assert.Equal(t, "Chickpeas", item.Description)
	assert.Equal(t, "7.00₺", item.Price)
	assert.Equal(t, "/hummus.jpg", item.Image)
	assert.Equal(t, []string{"Vegetarian", "Popular"}, item.Tags)

	assert.ErrorIs(t, s.SetItemField("starters", 0, "tags", "x"), ErrInvalidField)
}

func TestTags(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)
	tags := func() []string {
		return draftOf(t, s).MenuByLanguage.EN["starters"].Items[0].Tags
	}

	require.NoError(t, s.AddTag("starters", 0))
	assert.Equal(t, []string{"Vegetarian", "Popular", ""}, tags())

	require.NoError(t, s.SetTag("starters", 0, 2, "Cold"))
	assert.Equal(t, []string{"Vegetarian", "Popular", "Cold"}, tags())

	require.NoError(t, s.RemoveTag("starters", 0, 0))
	assert.Equal(t, []string{"Popular", "Cold"}, tags())

	require.NoError(t, s.SetTag("starters", 0, 2, "ignored"))
	assert.Equal(t, []string{"Popular", "Cold"}, tags())
}

func TestRestaurantLevelEdits(t *testing.T) {
	s, _, _ := newTestSession(t, domain.LanguageEN)

	require.NoError(t, s.SetRestaurantField(RestaurantFieldName, "Anadolu"))
	require.NoError(t, s.SetRestaurantField(RestaurantFieldCuisine, "Anatolian"))
	require.NoError(t, s.SetThemeColor(ThemeFieldPrimaryColor, "#000000"))
	require.NoError(t, s.SetThemeColor(ThemeFieldSecondaryColor, "#ffffff"))
	require.NoError(t, s.SetContactField(ContactFieldPhone, "555"))
	require.NoError(t, s.SetContactField(ContactFieldEmail, "hi@example.com"))
	require.NoError(t, s.SetContactField(ContactFieldAddress, "Main St"))

	draft := draftOf(t, s)
	assert.Equal(t, "anatolia", draft.ID)
	assert.Equal(t, "Anadolu", draft.Name)
	assert.Equal(t, "Anatolian", draft.Cuisine)
	assert.Equal(t, domain.Theme{PrimaryColor: "#000000", SecondaryColor: "#ffffff"}, draft.Theme)
	assert.Equal(t, domain.Contact{Phone: "555", Email: "hi@example.com", Address: "Main St"}, draft.Contact)

	assert.ErrorIs(t, s.SetRestaurantField("id", "other"), ErrInvalidField)
	assert.ErrorIs(t, s.SetThemeColor("accent", "#123456"), ErrInvalidField)
	assert.ErrorIs(t, s.SetContactField("fax", "1"), ErrInvalidField)
}
