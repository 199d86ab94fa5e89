package main

import (
	"errors"
	"net/http"

	"github.com/bgocumlu/menu/internal/repo"
	"github.com/bgocumlu/menu/internal/service"
)

type PasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type VerifyPasswordResponse struct {
	Valid bool `json:"valid"`
}

// createPasswordHandler godoc
//
//	@Summary		Set admin password
//	@Description	Sets the admin password. It can only be set once.
//	@Tags			password
//	@Accept			json
//	@Produce		json
//	@Param			request	body	PasswordRequest	true	"Password"
//	@Success		201
//	@Failure		400	{object}	map[string]string
//	@Failure		409	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/password [post]
func (app *application) createPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.credentials.Create(r.Context(), req.Password); err != nil {
		switch {
		case errors.Is(err, repo.ErrCredentialExists):
			app.conflictResponse(w, r, err)
		case errors.Is(err, service.ErrEmptyPassword):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// verifyPasswordHandler godoc
//
//	@Summary		Verify admin password
//	@Description	Reports whether the candidate matches the admin password
//	@Tags			password
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PasswordRequest	true	"Candidate password"
//	@Success		200		{object}	VerifyPasswordResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/password [patch]
func (app *application) verifyPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ok, err := app.credentials.Verify(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, VerifyPasswordResponse{Valid: ok}); err != nil {
		app.internalServerError(w, r, err)
	}
}
