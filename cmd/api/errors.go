package main

import (
	"errors"
	"net/http"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/editor"
	"github.com/bgocumlu/menu/internal/repo"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, "not found")
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("conflict response", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusConflict, err.Error())
}

func (app *application) unauthorizedResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("service unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusServiceUnavailable, err.Error())
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

// editorErrorResponse maps an error from the editor, its stores or the
// domain checks to a response.
func (app *application) editorErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, editor.ErrSessionNotFound), errors.Is(err, repo.ErrNotFound):
		app.notFoundError(w, r, err)
	case errors.Is(err, editor.ErrAuthRejected):
		app.unauthorizedResponse(w, r, err)
	case errors.Is(err, editor.ErrDuplicateID),
		errors.Is(err, editor.ErrSaveInFlight),
		errors.Is(err, editor.ErrNoSaveInProgress),
		errors.Is(err, editor.ErrNotReady),
		errors.Is(err, editor.ErrLanguageChanged),
		errors.Is(err, repo.ErrCredentialExists):
		app.conflictResponse(w, r, err)
	case errors.Is(err, editor.ErrValidationMissing),
		errors.Is(err, editor.ErrInvalidField),
		errors.Is(err, editor.ErrInvalidDirection),
		errors.Is(err, domain.ErrUnknownLanguage),
		errors.Is(err, domain.ErrMissingID),
		errors.Is(err, domain.ErrCategoryMismatch),
		errors.Is(err, domain.ErrDuplicateCategory):
		app.badRequestResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}
