package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/editor"
	"github.com/go-chi/chi"
)

type sessionKey string

const sessionCtx sessionKey = "session"

type CreateSessionRequest struct {
	Language string `json:"language" validate:"omitempty,oneof=en tr"`
}

type SetLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en tr"`
}

type SelectCategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
}

type SubmitPasswordRequest struct {
	Password string `json:"password"`
}

// createSessionHandler godoc
//
//	@Summary		Open editor session
//	@Description	Opens an editor session on the persisted restaurant. The language defaults to the preference.
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSessionRequest	false	"Session options"
//	@Success		201		{object}	editor.State
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/editor/sessions [post]
func (app *application) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.ContentLength != 0 {
		if err := readJson(w, r, &req); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	lang := app.preferences.Load(r).Language
	if req.Language != "" {
		lang = domain.Language(req.Language)
	}

	session, err := app.sessions.Create(r.Context(), lang)
	if err != nil {
		app.editorErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, session.State()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getSessionHandler godoc
//
//	@Summary		Get editor session
//	@Description	Returns the session state including the draft
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	editor.State
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id} [get]
func (app *application) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	app.sessionStateResponse(w, r, getSessionFromCtx(r))
}

// deleteSessionHandler godoc
//
//	@Summary		Close editor session
//	@Description	Closes the session and drops its draft
//	@Tags			editor
//	@Param			session_id	path	string	true	"Session ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Router			/editor/sessions/{session_id} [delete]
func (app *application) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromCtx(r)

	if err := app.sessions.Delete(session.ID()); err != nil {
		app.editorErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resetSessionHandler godoc
//
//	@Summary		Reset draft
//	@Description	Discards every unsaved edit
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	editor.State
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/reset [post]
func (app *application) resetSessionHandler(w http.ResponseWriter, r *http.Request) {
	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.ResetDraft()
	})
}

// setLanguageHandler godoc
//
//	@Summary		Switch editing language
//	@Description	Switches the language edits apply to; the draft is kept
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			request		body		SetLanguageRequest	true	"Language"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/language [put]
func (app *application) setLanguageHandler(w http.ResponseWriter, r *http.Request) {
	var req SetLanguageRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.SetLanguage(domain.Language(req.Language))
	})
}

// selectCategoryHandler godoc
//
//	@Summary		Select category
//	@Description	Makes a category of the editing language active
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string					true	"Session ID"
//	@Param			request		body		SelectCategoryRequest	true	"Category"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/active-category [put]
func (app *application) selectCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req SelectCategoryRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.SelectCategory(req.CategoryID)
	})
}

// beginSaveHandler godoc
//
//	@Summary		Begin save
//	@Description	Opens the password prompt of the save protocol
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	editor.State
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/save [post]
func (app *application) beginSaveHandler(w http.ResponseWriter, r *http.Request) {
	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.BeginSave()
	})
}

// submitPasswordHandler godoc
//
//	@Summary		Submit save password
//	@Description	Verifies the password and, when it matches, replaces the stored document with the draft
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string					true	"Session ID"
//	@Param			request		body		SubmitPasswordRequest	true	"Password"
//	@Success		200			{object}	editor.State
//	@Failure		401			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/save/password [post]
func (app *application) submitPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req SubmitPasswordRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.SubmitPassword(r.Context(), req.Password)
	})
}

// cancelSaveHandler godoc
//
//	@Summary		Cancel save
//	@Description	Closes the password prompt without saving
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	editor.State
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/save/cancel [post]
func (app *application) cancelSaveHandler(w http.ResponseWriter, r *http.Request) {
	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.CancelSave()
	})
}

func (app *application) sessionContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "session_id")

		session, err := app.sessions.Get(id)
		if err != nil {
			app.editorErrorResponse(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtx, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSessionFromCtx(r *http.Request) *editor.Session {
	session, _ := r.Context().Value(sessionCtx).(*editor.Session)
	return session
}

// applyEdit runs fn on the request's session and responds with the new state.
func (app *application) applyEdit(w http.ResponseWriter, r *http.Request, fn func(s *editor.Session) error) {
	session := getSessionFromCtx(r)

	if err := fn(session); err != nil {
		app.editorErrorResponse(w, r, err)
		return
	}

	app.sessionStateResponse(w, r, session)
}

func (app *application) sessionStateResponse(w http.ResponseWriter, r *http.Request, session *editor.Session) {
	if err := app.jsonRespone(w, http.StatusOK, session.State()); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := readJson(w, r, req); err != nil {
		app.badRequestResponse(w, r, err)
		return false
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return false
	}

	return true
}

func intURLParam(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}
