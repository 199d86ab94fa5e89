package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingID         = errors.New("restaurant id is required")
	ErrCategoryMismatch  = errors.New("category list and menu data disagree")
	ErrDuplicateCategory = errors.New("duplicate category id")
)

// Validate checks the structural invariants of a restaurant document: per
// language, every listed category has menu data and vice versa, and ids are
// unique. Category mappings are not checked; dangling entries are tolerated.
func (r *Restaurant) Validate() error {
	if r.ID == "" {
		return ErrMissingID
	}

	for _, lang := range Languages {
		if err := ValidateCategories(lang, r.CategoryListByLanguage.Get(lang), r.MenuByLanguage.Get(lang)); err != nil {
			return err
		}
	}

	return nil
}

// ValidateCategories checks that list and data describe the same category ids
// for one language and that no id is listed twice.
func ValidateCategories(lang Language, list []CategoryRef, data MenuData) error {
	seen := make(map[string]struct{}, len(list))
	for _, c := range list {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateCategory, lang, c.ID)
		}
		seen[c.ID] = struct{}{}

		if _, ok := data[c.ID]; !ok {
			return fmt.Errorf("%w: %s/%s has no menu data", ErrCategoryMismatch, lang, c.ID)
		}
	}

	for id := range data {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: %s/%s is not listed", ErrCategoryMismatch, lang, id)
		}
	}

	return nil
}
