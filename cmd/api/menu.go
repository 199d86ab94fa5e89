package main

import (
	"errors"
	"net/http"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/repo"
	"github.com/bgocumlu/menu/internal/view"
)

// getMenuHandler godoc
//
//	@Summary		Get menu
//	@Description	Returns the menu in one language with one category open. Without lang, the
//	@Description	language preference is used. With from, category is translated from that language.
//	@Tags			menu
//	@Produce		json
//	@Param			lang		query		string	false	"Language"	Enums(en, tr)
//	@Param			category	query		string	false	"Active category id"
//	@Param			from		query		string	false	"Language the category was chosen in"	Enums(en, tr)
//	@Success		200			{object}	view.Menu
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lang := app.preferences.Load(r).Language
	if s := query.Get("lang"); s != "" {
		l, err := domain.ParseLanguage(s)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		lang = l
	}

	switching := false
	if s := query.Get("from"); s != "" {
		from, err := domain.ParseLanguage(s)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		switching = from != lang
	}

	restaurant, err := app.restaurants.Current(r.Context())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	menu := view.Project(restaurant, lang, query.Get("category"), switching)

	if err := app.jsonRespone(w, http.StatusOK, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}
