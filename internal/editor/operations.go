package editor

import (
	"fmt"
	"strings"

	"github.com/bgocumlu/menu/internal/domain"
)

// Category edits. All of them apply to the active language only and silently
// ignore category ids that do not exist.

func (s *Session) SetCategoryField(categoryID string, field CategoryField, value string) error {
	if field != CategoryFieldTitle && field != CategoryFieldDescription {
		return fmt.Errorf("%w: category %q", ErrInvalidField, field)
	}

	return s.mutate(func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error) {
		category, ok := draft.MenuByLanguage.Get(lang)[categoryID]
		if !ok {
			return nil, nil
		}

		if field == CategoryFieldTitle {
			category.Title = value
		} else {
			category.Description = value
		}

		return withCategory(draft, lang, categoryID, category), nil
	})
}

// SetCategoryName renames the navigation entry of a category. The id is kept.
func (s *Session) SetCategoryName(categoryID, name string) error {
	return s.mutate(func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error) {
		i := draft.CategoryIndex(lang, categoryID)
		if i < 0 {
			return nil, nil
		}

		list := copyRefs(draft.CategoryListByLanguage.Get(lang))
		list[i].Name = name

		next := *draft
		next.CategoryListByLanguage = draft.CategoryListByLanguage.With(lang, list)
		return &next, nil
	})
}

// AddCategory appends an empty category, maps it to itself and selects it.
func (s *Session) AddCategory(id, name string) error {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
		return ErrValidationMissing
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNotReady
	}

	lang := s.language
	draft := s.draft
	if _, exists := draft.MenuByLanguage.Get(lang)[id]; exists || draft.CategoryIndex(lang, id) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	list := draft.CategoryListByLanguage.Get(lang)
	nextList := make([]domain.CategoryRef, len(list), len(list)+1)
	copy(nextList, list)
	nextList = append(nextList, domain.CategoryRef{ID: id, Name: name})

	data := copyMenu(draft.MenuByLanguage.Get(lang))
	data[id] = domain.MenuCategory{
		Title:       name,
		Description: "",
		Items:       []domain.MenuItem{},
	}

	mapping := draft.CategoryMappingByLanguage.Get(lang).Clone()
	if mapping == nil {
		mapping = domain.CategoryMapping{}
	}
	mapping[id] = id

	next := *draft
	next.CategoryListByLanguage = draft.CategoryListByLanguage.With(lang, nextList)
	next.MenuByLanguage = draft.MenuByLanguage.With(lang, data)
	next.CategoryMappingByLanguage = draft.CategoryMappingByLanguage.With(lang, mapping)

	s.draft = &next
	s.activeCategory = id
	s.logger.Infow("category added", "language", lang, "category_id", id)

	return nil
}

// RemoveCategory drops a category from the list, the menu data and the
// mapping. Removing the active category selects the first remaining one.
func (s *Session) RemoveCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNotReady
	}

	lang := s.language
	draft := s.draft
	_, inData := draft.MenuByLanguage.Get(lang)[id]
	_, inMapping := draft.CategoryMappingByLanguage.Get(lang)[id]
	if draft.CategoryIndex(lang, id) < 0 && !inData && !inMapping {
		return nil
	}

	list := draft.CategoryListByLanguage.Get(lang)
	nextList := make([]domain.CategoryRef, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			nextList = append(nextList, c)
		}
	}

	data := copyMenu(draft.MenuByLanguage.Get(lang))
	delete(data, id)

	mapping := draft.CategoryMappingByLanguage.Get(lang).Clone()
	delete(mapping, id)

	next := *draft
	next.CategoryListByLanguage = draft.CategoryListByLanguage.With(lang, nextList)
	next.MenuByLanguage = draft.MenuByLanguage.With(lang, data)
	next.CategoryMappingByLanguage = draft.CategoryMappingByLanguage.With(lang, mapping)

	s.draft = &next
	if s.activeCategory == id {
		s.activeCategory = next.FirstCategoryID(lang)
	}
	s.logger.Infow("category removed", "language", lang, "category_id", id)

	return nil
}

// MoveCategory swaps a category with its neighbor. Moving past either end
// is a no-op.
func (s *Session) MoveCategory(id string, direction Direction) error {
	if direction != DirectionUp && direction != DirectionDown {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	return s.mutate(func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error) {
		list := draft.CategoryListByLanguage.Get(lang)
		i := draft.CategoryIndex(lang, id)
		j, ok := neighbor(i, len(list), direction)
		if !ok {
			return nil, nil
		}

		nextList := copyRefs(list)
		nextList[i], nextList[j] = nextList[j], nextList[i]

		next := *draft
		next.CategoryListByLanguage = draft.CategoryListByLanguage.With(lang, nextList)
		return &next, nil
	})
}

// SetCategoryMapping points id at targetID. targetID is not checked.
func (s *Session) SetCategoryMapping(id, targetID string) error {
	return s.mutate(func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error) {
		mapping := draft.CategoryMappingByLanguage.Get(lang).Clone()
		if mapping == nil {
			mapping = domain.CategoryMapping{}
		}
		mapping[id] = targetID

		next := *draft
		next.CategoryMappingByLanguage = draft.CategoryMappingByLanguage.With(lang, mapping)
		return &next, nil
	})
}

// ImportLanguage replaces the categories and menu data of lang, e.g. with the
// result of a spreadsheet import. lang must still be the active language;
// otherwise ErrLanguageChanged is returned and the draft is left alone.
// Existing mappings are kept for ids that survive; new ids map to themselves.
func (s *Session) ImportLanguage(lang domain.Language, categories []domain.CategoryRef, data domain.MenuData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrNotReady
	}
	if lang != s.language {
		return fmt.Errorf("%w: imported %s, editing %s", ErrLanguageChanged, lang, s.language)
	}

	if err := domain.ValidateCategories(lang, categories, data); err != nil {
		return fmt.Errorf("invalid import: %w", err)
	}

	draft := s.draft
	previous := draft.CategoryMappingByLanguage.Get(lang)
	mapping := make(domain.CategoryMapping, len(categories))
	for _, c := range categories {
		if target, ok := previous[c.ID]; ok {
			mapping[c.ID] = target
		} else {
			mapping[c.ID] = c.ID
		}
	}

	next := *draft
	next.CategoryListByLanguage = draft.CategoryListByLanguage.With(lang, copyRefs(categories))
	next.MenuByLanguage = draft.MenuByLanguage.With(lang, data.Clone())
	next.CategoryMappingByLanguage = draft.CategoryMappingByLanguage.With(lang, mapping)

	s.draft = &next
	s.activeCategory = next.FirstCategoryID(lang)
	s.logger.Infow("language imported", "language", lang, "categories", len(categories))

	return nil
}

// Item edits. Missing categories and out-of-range indexes are ignored.

// AddItem appends a placeholder item named for the active language.
func (s *Session) AddItem(categoryID string) error {
	return s.mutate(func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error) {
		category, ok := draft.MenuByLanguage.Get(lang)[categoryID]
		if !ok {
			return nil, nil
		}

		items := make([]domain.MenuItem, len(category.Items), len(category.Items)+1)
		copy(items, category.Items)
		category.Items = append(items, domain.MenuItem{
			Name:        newItemName(lang),
			Description: "",
			Price:       newItemPrice,
			Image:       newItemImage,
			Tags:        []string{},
		})

		return withCategory(draft, lang, categoryID, category), nil
	})
}

func (s *Session) RemoveItem(categoryID string, index int) error {
	return s.mutate(func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error) {
		category, ok := draft.MenuByLanguage.Get(lang)[categoryID]
		if !ok || index < 0 || index >= len(category.Items) {
			return nil, nil
		}

		items := make([]domain.MenuItem, 0, len(category.Items)-1)
		items = append(items, category.Items[:index]...)
		items = append(items, category.Items[index+1:]...)
		category.Items = items

		return withCategory(draft, lang, categoryID, category), nil
	})
}

// MoveItem swaps an item with its neighbor, mirroring MoveCategory.
func (s *Session) MoveItem(categoryID string, index int, direction Direction) error {
	if direction != DirectionUp && direction != DirectionDown {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	return s.mutate(func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error) {
		category, ok := draft.MenuByLanguage.Get(lang)[categoryID]
		if !ok {
			return nil, nil
		}
		j, ok := neighbor(index, len(category.Items), direction)
		if !ok {
			return nil, nil
		}

		items := append([]domain.MenuItem{}, category.Items...)
		items[index], items[j] = items[j], items[index]
		category.Items = items

		return withCategory(draft, lang, categoryID, category), nil
	})
}

func (s *Session) SetItemField(categoryID string, index int, field ItemField, value string) error {
	switch field {
	case ItemFieldName, ItemFieldDescription, ItemFieldPrice, ItemFieldImage:
	default:
		return fmt.Errorf("%w: item %q", ErrInvalidField, field)
	}

	return s.updateItem(categoryID, index, func(item domain.MenuItem) (domain.MenuItem, bool) {
		switch field {
		case ItemFieldName:
			item.Name = value
		case ItemFieldDescription:
			item.Description = value
		case ItemFieldPrice:
			item.Price = value
		case ItemFieldImage:
			item.Image = value
		}
		return item, true
	})
}

// AddTag appends an empty tag to the item.
func (s *Session) AddTag(categoryID string, index int) error {
	return s.updateItem(categoryID, index, func(item domain.MenuItem) (domain.MenuItem, bool) {
		tags := make([]string, len(item.Tags), len(item.Tags)+1)
		copy(tags, item.Tags)
		item.Tags = append(tags, "")
		return item, true
	})
}

// SetTag overwrites one tag. An out-of-range tagIndex is a no-op.
func (s *Session) SetTag(categoryID string, index, tagIndex int, value string) error {
	return s.updateItem(categoryID, index, func(item domain.MenuItem) (domain.MenuItem, bool) {
		if tagIndex < 0 || tagIndex >= len(item.Tags) {
			return item, false
		}
		tags := append([]string{}, item.Tags...)
		tags[tagIndex] = value
		item.Tags = tags
		return item, true
	})
}

// RemoveTag deletes one tag, shifting the rest left.
func (s *Session) RemoveTag(categoryID string, index, tagIndex int) error {
	return s.updateItem(categoryID, index, func(item domain.MenuItem) (domain.MenuItem, bool) {
		if tagIndex < 0 || tagIndex >= len(item.Tags) {
			return item, false
		}
		tags := make([]string, 0, len(item.Tags)-1)
		tags = append(tags, item.Tags[:tagIndex]...)
		tags = append(tags, item.Tags[tagIndex+1:]...)
		item.Tags = tags
		return item, true
	})
}

// Restaurant-wide edits are language independent.

// SetRestaurantField edits the display name or cuisine. The id is immutable.
func (s *Session) SetRestaurantField(field RestaurantField, value string) error {
	if field != RestaurantFieldName && field != RestaurantFieldCuisine {
		return fmt.Errorf("%w: restaurant %q", ErrInvalidField, field)
	}

	return s.mutate(func(draft *domain.Restaurant, _ domain.Language) (*domain.Restaurant, error) {
		next := *draft
		if field == RestaurantFieldName {
			next.Name = value
		} else {
			next.Cuisine = value
		}
		return &next, nil
	})
}

func (s *Session) SetThemeColor(field ThemeField, value string) error {
	if field != ThemeFieldPrimaryColor && field != ThemeFieldSecondaryColor {
		return fmt.Errorf("%w: theme %q", ErrInvalidField, field)
	}

	return s.mutate(func(draft *domain.Restaurant, _ domain.Language) (*domain.Restaurant, error) {
		next := *draft
		if field == ThemeFieldPrimaryColor {
			next.Theme.PrimaryColor = value
		} else {
			next.Theme.SecondaryColor = value
		}
		return &next, nil
	})
}

func (s *Session) SetContactField(field ContactField, value string) error {
	return s.mutate(func(draft *domain.Restaurant, _ domain.Language) (*domain.Restaurant, error) {
		next := *draft
		switch field {
		case ContactFieldPhone:
			next.Contact.Phone = value
		case ContactFieldEmail:
			next.Contact.Email = value
		case ContactFieldAddress:
			next.Contact.Address = value
		default:
			return nil, fmt.Errorf("%w: contact %q", ErrInvalidField, field)
		}
		return &next, nil
	})
}

// updateItem replaces the item at index with fn's result when fn reports a change.
func (s *Session) updateItem(categoryID string, index int, fn func(item domain.MenuItem) (domain.MenuItem, bool)) error {
	return s.mutate(func(draft *domain.Restaurant, lang domain.Language) (*domain.Restaurant, error) {
		category, ok := draft.MenuByLanguage.Get(lang)[categoryID]
		if !ok || index < 0 || index >= len(category.Items) {
			return nil, nil
		}

		item, changed := fn(category.Items[index])
		if !changed {
			return nil, nil
		}

		items := append([]domain.MenuItem{}, category.Items...)
		items[index] = item
		category.Items = items

		return withCategory(draft, lang, categoryID, category), nil
	})
}

func withCategory(draft *domain.Restaurant, lang domain.Language, id string, category domain.MenuCategory) *domain.Restaurant {
	data := copyMenu(draft.MenuByLanguage.Get(lang))
	data[id] = category

	next := *draft
	next.MenuByLanguage = draft.MenuByLanguage.With(lang, data)
	return &next
}

// copyMenu copies the category map only; category values still share their
// item slices, which are never written in place.
func copyMenu(data domain.MenuData) domain.MenuData {
	out := make(domain.MenuData, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	return out
}

func copyRefs(list []domain.CategoryRef) []domain.CategoryRef {
	return append([]domain.CategoryRef{}, list...)
}

func neighbor(index, length int, direction Direction) (int, bool) {
	if index < 0 || index >= length {
		return 0, false
	}

	j := index - 1
	if direction == DirectionDown {
		j = index + 1
	}
	if j < 0 || j >= length {
		return 0, false
	}

	return j, true
}
