package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/repo"
)

const passwordHeader = "X-Menu-Password"

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var ErrMissingPassword = errors.New("password header is required")

// getRestaurantHandler godoc
//
//	@Summary		Get restaurant
//	@Description	Returns the persisted restaurant document
//	@Tags			restaurant
//	@Produce		json
//	@Success		200	{object}	domain.Restaurant
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/restaurant [get]
func (app *application) getRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	restaurant, err := app.restaurants.Current(r.Context())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, restaurant); err != nil {
		app.internalServerError(w, r, err)
	}
}

// replaceRestaurantHandler godoc
//
//	@Summary		Replace restaurant
//	@Description	Replaces the whole restaurant document. Requires the admin password.
//	@Tags			restaurant
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.Restaurant	true	"Restaurant document"
//	@Success		200		{object}	domain.Restaurant
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		MenuPassword
//	@Router			/restaurant [post]
func (app *application) replaceRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	password := r.Header.Get(passwordHeader)
	if password == "" {
		app.unauthorizedResponse(w, r, ErrMissingPassword)
		return
	}

	ok, err := app.credentials.Verify(r.Context(), password)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.unauthorizedResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}
	if !ok {
		app.unauthorizedResponse(w, r, errors.New("password rejected"))
		return
	}

	var restaurant domain.Restaurant
	if err := readJson(w, r, &restaurant); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := restaurant.Validate(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	saved, err := app.restaurants.Replace(r.Context(), &restaurant, "")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, saved); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getSaveHistoryHandler godoc
//
//	@Summary		List saves
//	@Description	Lists the most recent saves of the restaurant, newest first
//	@Tags			restaurant
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of records"
//	@Success		200		{array}		domain.MenuSaveAudit
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/restaurant/saves [get]
func (app *application) getSaveHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		l, err := strconv.Atoi(s)
		if err != nil || l <= 0 || l > maxHistoryLimit {
			app.badRequestResponse(w, r, errors.New("limit must be between 1 and 100"))
			return
		}
		limit = l
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

	audits, err := app.audits.History(r.Context(), restaurant.ID, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}
