package domain

import "time"

type MenuSavedEvent struct {
	EventType      string           `json:"event_type"`
	RestaurantID   string           `json:"restaurant_id"`
	SessionID      string           `json:"session_id"`
	CategoryCounts map[Language]int `json:"category_counts"`
	ItemCounts     map[Language]int `json:"item_counts"`
	Timestamp      time.Time        `json:"timestamp"`
}

const (
	EventMenuSaved = "menu.saved"
)

// NewMenuSavedEvent summarizes r for the save audit trail.
func NewMenuSavedEvent(r *Restaurant, sessionID string, at time.Time) MenuSavedEvent {
	categories := make(map[Language]int, len(Languages))
	items := make(map[Language]int, len(Languages))
	for _, lang := range Languages {
		categories[lang] = len(r.CategoryListByLanguage.Get(lang))
		n := 0
		for _, c := range r.MenuByLanguage.Get(lang) {
			n += len(c.Items)
		}
		items[lang] = n
	}

	return MenuSavedEvent{
		EventType:      EventMenuSaved,
		RestaurantID:   r.ID,
		SessionID:      sessionID,
		CategoryCounts: categories,
		ItemCounts:     items,
		Timestamp:      at,
	}
}
