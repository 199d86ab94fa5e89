// Package preferences stores the viewer's language and theme choices on the
// client, as cookies.
package preferences

import (
	"errors"
	"net/http"
	"time"

	"github.com/bgocumlu/menu/internal/domain"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	cookieLanguage = "language"
	cookieTheme    = "theme"

	// prefersColorSchemeHeader is the client hint carrying the system theme.
	prefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

	DefaultLanguage = domain.LanguageTR
)

var ErrUnknownTheme = errors.New("unknown theme")

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", ErrUnknownTheme
}

type Preferences struct {
	Language domain.Language `json:"language"`
	Theme    Theme           `json:"theme"`
}

// Store reads and writes preferences. The zero value is not usable; build
// one with New.
type Store struct {
	maxAge time.Duration
	secure bool
}

func New(maxAge time.Duration, secure bool) *Store {
	return &Store{maxAge: maxAge, secure: secure}
}

// Load returns the preferences carried by r. Missing or unrecognized values
// fall back to Turkish and to the theme the client hint reports, else light.
func (s *Store) Load(r *http.Request) Preferences {
	prefs := Preferences{
		Language: DefaultLanguage,
		Theme:    systemTheme(r),
	}

	if c, err := r.Cookie(cookieLanguage); err == nil {
		if lang, err := domain.ParseLanguage(c.Value); err == nil {
			prefs.Language = lang
		}
	}

	if c, err := r.Cookie(cookieTheme); err == nil {
		if theme, err := ParseTheme(c.Value); err == nil {
			prefs.Theme = theme
		}
	}

	return prefs
}

// Save writes both preferences to w. The two are independent cookies.
func (s *Store) Save(w http.ResponseWriter, prefs Preferences) {
	http.SetCookie(w, s.cookie(cookieLanguage, string(prefs.Language)))
	http.SetCookie(w, s.cookie(cookieTheme, string(prefs.Theme)))
}

func (s *Store) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func systemTheme(r *http.Request) Theme {
	if r.Header.Get(prefersColorSchemeHeader) == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}
