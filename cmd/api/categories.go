package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bgocumlu/menu/internal/editor"
	"github.com/go-chi/chi"
)

var ErrImportDisabled = errors.New("sheet import is not configured")

type AddCategoryRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type SetCategoryFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=name title description"`
	Value string `json:"value"`
}

type MoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type SetCategoryMappingRequest struct {
	TargetID string `json:"target_id" validate:"required"`
}

type ImportLanguageRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

type SetRestaurantFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=name cuisine primaryColor secondaryColor phone email address"`
	Value string `json:"value"`
}

// addCategoryHandler godoc
//
//	@Summary		Add category
//	@Description	Appends an empty category to the editing language and selects it
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			request		body		AddCategoryRequest	true	"Category"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories [post]
func (app *application) addCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCategoryRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("%w: %v", editor.ErrValidationMissing, err))
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.AddCategory(req.ID, req.Name)
	})
}

// setCategoryFieldHandler godoc
//
//	@Summary		Edit category
//	@Description	Sets the navigation name, title or description of a category
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string					true	"Session ID"
//	@Param			category_id	path		string					true	"Category ID"
//	@Param			request		body		SetCategoryFieldRequest	true	"Field and value"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id} [patch]
func (app *application) setCategoryFieldHandler(w http.ResponseWriter, r *http.Request) {
	var req SetCategoryFieldRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	categoryID := chi.URLParam(r, "category_id")

	app.applyEdit(w, r, func(s *editor.Session) error {
		if req.Field == "name" {
			return s.SetCategoryName(categoryID, req.Value)
		}
		return s.SetCategoryField(categoryID, editor.CategoryField(req.Field), req.Value)
	})
}

// removeCategoryHandler godoc
//
//	@Summary		Remove category
//	@Description	Removes a category, its content and its mapping from the editing language
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			category_id	path		string	true	"Category ID"
//	@Success		200			{object}	editor.State
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id} [delete]
func (app *application) removeCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category_id")

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.RemoveCategory(categoryID)
	})
}

// moveCategoryHandler godoc
//
//	@Summary		Move category
//	@Description	Swaps a category with its neighbour in the navigation order
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string		true	"Session ID"
//	@Param			category_id	path		string		true	"Category ID"
//	@Param			request		body		MoveRequest	true	"Direction"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/move [post]
func (app *application) moveCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	categoryID := chi.URLParam(r, "category_id")

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.MoveCategory(categoryID, editor.Direction(req.Direction))
	})
}

// setCategoryMappingHandler godoc
//
//	@Summary		Map category
//	@Description	Sets the category that stays selected when a viewer switches into the editing language
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string						true	"Session ID"
//	@Param			category_id	path		string						true	"Category ID"
//	@Param			request		body		SetCategoryMappingRequest	true	"Target category"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/mapping [put]
func (app *application) setCategoryMappingHandler(w http.ResponseWriter, r *http.Request) {
	var req SetCategoryMappingRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	categoryID := chi.URLParam(r, "category_id")

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.SetCategoryMapping(categoryID, req.TargetID)
	})
}

// importLanguageHandler godoc
//
//	@Summary		Import from spreadsheet
//	@Description	Replaces the editing language's categories and items with the sheet named after it
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string					true	"Session ID"
//	@Param			request		body		ImportLanguageRequest	true	"Spreadsheet"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		409			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Failure		503			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/import [post]
func (app *application) importLanguageHandler(w http.ResponseWriter, r *http.Request) {
	if app.importer == nil {
		app.serviceUnavailableResponse(w, r, ErrImportDisabled)
		return
	}

	var req ImportLanguageRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	lang := getSessionFromCtx(r).State().Language

	categories, data, err := app.importer.ParseMenu(r.Context(), req.SpreadsheetID, lang)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.ImportLanguage(lang, categories, data)
	})
}

// setRestaurantFieldHandler godoc
//
//	@Summary		Edit restaurant
//	@Description	Sets a language independent field: name, cuisine, theme colors or contact details
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string						true	"Session ID"
//	@Param			request		body		SetRestaurantFieldRequest	true	"Field and value"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/restaurant [patch]
func (app *application) setRestaurantFieldHandler(w http.ResponseWriter, r *http.Request) {
	var req SetRestaurantFieldRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		switch req.Field {
		case "primaryColor", "secondaryColor":
			return s.SetThemeColor(editor.ThemeField(req.Field), req.Value)
		case "phone", "email", "address":
			return s.SetContactField(editor.ContactField(req.Field), req.Value)
		default:
			return s.SetRestaurantField(editor.RestaurantField(req.Field), req.Value)
		}
	})
}
