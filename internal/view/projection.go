// Package view renders the public menu: one language, one active category.
package view

import "github.com/bgocumlu/menu/internal/domain"

type Menu struct {
	RestaurantID   string               `json:"restaurant_id"`
	Name           string               `json:"name"`
	Cuisine        string               `json:"cuisine"`
	Language       domain.Language      `json:"language"`
	Theme          domain.Theme         `json:"theme"`
	Contact        domain.Contact       `json:"contact"`
	Categories     []domain.CategoryRef `json:"categories"`
	ActiveCategory string               `json:"active_category"`
	Category       *domain.MenuCategory `json:"category,omitempty"`
}

// ResolveCategory returns the category to show in lang when the viewer had
// categoryID selected. The language's mapping is consulted first; a missing or
// dangling mapping leaves categoryID unchanged.
func ResolveCategory(r *domain.Restaurant, lang domain.Language, categoryID string) string {
	mapped, ok := r.CategoryMappingByLanguage.Get(lang)[categoryID]
	if !ok || mapped == "" {
		return categoryID
	}
	if _, exists := r.MenuByLanguage.Get(lang)[mapped]; !exists {
		return categoryID
	}
	return mapped
}

// Project builds the view of r in lang with categoryID active. When
// switching is true, categoryID was chosen in another language and is first
// translated through the mapping. An unknown category falls back to the
// first one of the language.
func Project(r *domain.Restaurant, lang domain.Language, categoryID string, switching bool) Menu {
	if switching {
		categoryID = ResolveCategory(r, lang, categoryID)
	}

	data := r.MenuByLanguage.Get(lang)
	if _, ok := data[categoryID]; !ok {
		categoryID = r.FirstCategoryID(lang)
	}

	menu := Menu{
		RestaurantID:   r.ID,
		Name:           r.Name,
		Cuisine:        r.Cuisine,
		Language:       lang,
		Theme:          r.Theme,
		Contact:        r.Contact,
		Categories:     r.CategoryListByLanguage.Get(lang),
		ActiveCategory: categoryID,
	}
	if menu.Categories == nil {
		menu.Categories = []domain.CategoryRef{}
	}

	if category, ok := data[categoryID]; ok {
		menu.Category = &category
	}

	return menu
}
