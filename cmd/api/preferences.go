package main

import (
	"net/http"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/preferences"
)

type UpdatePreferencesRequest struct {
	Language string `json:"language" validate:"required,oneof=en tr"`
	Theme    string `json:"theme" validate:"required,oneof=light dark"`
}

// getPreferencesHandler godoc
//
//	@Summary		Get preferences
//	@Description	Returns the language and theme stored on this client
//	@Tags			preferences
//	@Produce		json
//	@Success		200	{object}	preferences.Preferences
//	@Router			/preferences [get]
func (app *application) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonRespone(w, http.StatusOK, app.preferences.Load(r)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updatePreferencesHandler godoc
//
//	@Summary		Update preferences
//	@Description	Stores the language and theme on this client
//	@Tags			preferences
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdatePreferencesRequest	true	"Preferences"
//	@Success		200		{object}	preferences.Preferences
//	@Failure		400		{object}	map[string]string
//	@Router			/preferences [put]
func (app *application) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdatePreferencesRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	prefs := preferences.Preferences{
		Language: domain.Language(req.Language),
		Theme:    preferences.Theme(req.Theme),
	}
	app.preferences.Save(w, prefs)

	if err := app.jsonRespone(w, http.StatusOK, prefs); err != nil {
		app.internalServerError(w, r, err)
	}
}
