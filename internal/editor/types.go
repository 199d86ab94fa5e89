package editor

import (
	"context"

	"github.com/bgocumlu/menu/internal/domain"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

type CategoryField string

const (
	CategoryFieldTitle       CategoryField = "title"
	CategoryFieldDescription CategoryField = "description"
)

type ItemField string

const (
	ItemFieldName        ItemField = "name"
	ItemFieldDescription ItemField = "description"
	ItemFieldPrice       ItemField = "price"
	ItemFieldImage       ItemField = "image"
)

type RestaurantField string

const (
	RestaurantFieldName    RestaurantField = "name"
	RestaurantFieldCuisine RestaurantField = "cuisine"
)

type ThemeField string

const (
	ThemeFieldPrimaryColor   ThemeField = "primaryColor"
	ThemeFieldSecondaryColor ThemeField = "secondaryColor"
)

type ContactField string

const (
	ContactFieldPhone   ContactField = "phone"
	ContactFieldEmail   ContactField = "email"
	ContactFieldAddress ContactField = "address"
)

// SaveState is the position of a session in the save protocol.
type SaveState string

const (
	SaveIdle             SaveState = "idle"
	SaveAwaitingPassword SaveState = "awaiting_password"
	SaveVerifying        SaveState = "verifying"
	SaveCommitting       SaveState = "committing"
)

func (s SaveState) inFlight() bool {
	return s == SaveVerifying || s == SaveCommitting
}

const (
	newItemPrice = "0.00"
	newItemImage = "/placeholder.svg?height=300&width=400"
)

func newItemName(lang domain.Language) string {
	if lang == domain.LanguageTR {
		return "Yeni Ürün"
	}
	return "New Item"
}

// DocumentStore loads and replaces the persisted restaurant document.
type DocumentStore interface {
	Current(ctx context.Context) (*domain.Restaurant, error)
	Replace(ctx context.Context, restaurant *domain.Restaurant, sessionID string) (*domain.Restaurant, error)
}

// CredentialGate answers whether a candidate password is correct.
type CredentialGate interface {
	Verify(ctx context.Context, candidate string) (bool, error)
}

// State is a point-in-time view of a session. Draft is never mutated after
// it is published, so it may be read without holding the session lock.
type State struct {
	SessionID      string             `json:"session_id"`
	Ready          bool               `json:"ready"`
	Language       domain.Language    `json:"language"`
	ActiveCategory string             `json:"active_category"`
	SaveState      SaveState          `json:"save_state"`
	PasswordError  bool               `json:"password_error"`
	Dirty          bool               `json:"dirty"`
	Draft          *domain.Restaurant `json:"draft,omitempty"`
}
