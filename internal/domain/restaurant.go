package domain

import (
	"errors"
	"fmt"
)

type Language string

const (
	LanguageEN Language = "en"
	LanguageTR Language = "tr"
)

// Languages lists every supported language in a stable order.
var Languages = []Language{LanguageEN, LanguageTR}

var ErrUnknownLanguage = errors.New("unknown language")

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEN:
		return LanguageEN, nil
	case LanguageTR:
		return LanguageTR, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageTR
}

// ByLanguage holds one value per supported language. Both slots always exist,
// so code indexing by Language never observes a missing locale.
type ByLanguage[T any] struct {
	EN T `bson:"en" json:"en"`
	TR T `bson:"tr" json:"tr"`
}

// Get returns the value for lang. Unknown languages resolve to the Turkish slot.
func (b ByLanguage[T]) Get(lang Language) T {
	if lang == LanguageEN {
		return b.EN
	}
	return b.TR
}

// With returns a copy of b with the slot for lang replaced by v.
func (b ByLanguage[T]) With(lang Language, v T) ByLanguage[T] {
	if lang == LanguageEN {
		b.EN = v
	} else {
		b.TR = v
	}
	return b
}

type Restaurant struct {
	ID                        string                      `bson:"id" json:"id"`
	Name                      string                      `bson:"name" json:"name"`
	Cuisine                   string                      `bson:"cuisine" json:"cuisine"`
	MenuByLanguage            ByLanguage[MenuData]        `bson:"menuData" json:"menuData"`
	CategoryListByLanguage    ByLanguage[[]CategoryRef]   `bson:"categories" json:"categories"`
	CategoryMappingByLanguage ByLanguage[CategoryMapping] `bson:"categoryMapping" json:"categoryMapping"`
	Theme                     Theme                       `bson:"theme" json:"theme"`
	Contact                   Contact                     `bson:"contact" json:"contact"`
}

// MenuData maps a category id to its content within one language.
type MenuData map[string]MenuCategory

// CategoryMapping maps a category id to the id that stays selected when the
// viewer switches into this language.
type CategoryMapping map[string]string

type CategoryRef struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type MenuCategory struct {
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Items       []MenuItem `bson:"items" json:"items"`
}

type MenuItem struct {
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       string   `bson:"price" json:"price"`
	Image       string   `bson:"image" json:"image"`
	Tags        []string `bson:"tags" json:"tags"`
}

type Theme struct {
	PrimaryColor   string `bson:"primaryColor" json:"primaryColor"`
	SecondaryColor string `bson:"secondaryColor" json:"secondaryColor"`
}

type Contact struct {
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address" json:"address"`
}

// CategoryIndex returns the position of id in the language's ordered list, or -1.
func (r *Restaurant) CategoryIndex(lang Language, id string) int {
	for i, c := range r.CategoryListByLanguage.Get(lang) {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// FirstCategoryID returns the first category of lang, or "" when the list is empty.
func (r *Restaurant) FirstCategoryID(lang Language) string {
	list := r.CategoryListByLanguage.Get(lang)
	if len(list) == 0 {
		return ""
	}
	return list[0].ID
}

// Clone returns a deep copy of r that shares no maps or slices with it.
func (r *Restaurant) Clone() *Restaurant {
	if r == nil {
		return nil
	}
	out := *r
	out.MenuByLanguage = ByLanguage[MenuData]{
		EN: r.MenuByLanguage.EN.Clone(),
		TR: r.MenuByLanguage.TR.Clone(),
	}
	out.CategoryListByLanguage = ByLanguage[[]CategoryRef]{
		EN: cloneRefs(r.CategoryListByLanguage.EN),
		TR: cloneRefs(r.CategoryListByLanguage.TR),
	}
	out.CategoryMappingByLanguage = ByLanguage[CategoryMapping]{
		EN: r.CategoryMappingByLanguage.EN.Clone(),
		TR: r.CategoryMappingByLanguage.TR.Clone(),
	}
	return &out
}

// Normalize replaces nil lists, maps, items and tags with empty values, so a
// document that was edited back to its original content compares equal to it.
func (r *Restaurant) Normalize() {
	for _, lang := range Languages {
		if r.CategoryListByLanguage.Get(lang) == nil {
			r.CategoryListByLanguage = r.CategoryListByLanguage.With(lang, []CategoryRef{})
		}
		if r.CategoryMappingByLanguage.Get(lang) == nil {
			r.CategoryMappingByLanguage = r.CategoryMappingByLanguage.With(lang, CategoryMapping{})
		}

		data := r.MenuByLanguage.Get(lang)
		if data == nil {
			data = MenuData{}
			r.MenuByLanguage = r.MenuByLanguage.With(lang, data)
		}
		for id, category := range data {
			if category.Items == nil {
				category.Items = []MenuItem{}
			}
			for i := range category.Items {
				if category.Items[i].Tags == nil {
					category.Items[i].Tags = []string{}
				}
			}
			data[id] = category
		}
	}
}

func (m MenuData) Clone() MenuData {
	if m == nil {
		return nil
	}
	out := make(MenuData, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

func (m CategoryMapping) Clone() CategoryMapping {
	if m == nil {
		return nil
	}
	out := make(CategoryMapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (c MenuCategory) Clone() MenuCategory {
	if c.Items != nil {
		items := make([]MenuItem, len(c.Items))
		for i, it := range c.Items {
			items[i] = it.Clone()
		}
		c.Items = items
	}
	return c
}

func (it MenuItem) Clone() MenuItem {
	if it.Tags != nil {
		it.Tags = append([]string{}, it.Tags...)
	}
	return it
}

func cloneRefs(in []CategoryRef) []CategoryRef {
	if in == nil {
		return nil
	}
	return append([]CategoryRef{}, in...)
}
