package main

import (
	"net/http"

	"github.com/bgocumlu/menu/internal/editor"
	"github.com/go-chi/chi"
)

type SetItemFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=name description price image"`
	Value string `json:"value"`
}

type SetTagRequest struct {
	Value string `json:"value"`
}

// itemPath reads the category id and item index shared by every item route.
func (app *application) itemPath(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	index, err := intURLParam(r, "item_index")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return "", 0, false
	}

	return chi.URLParam(r, "category_id"), index, true
}

// addItemHandler godoc
//
//	@Summary		Add item
//	@Description	Appends a placeholder item to a category
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			category_id	path		string	true	"Category ID"
//	@Success		200			{object}	editor.State
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/items [post]
func (app *application) addItemHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category_id")

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.AddItem(categoryID)
	})
}

// setItemFieldHandler godoc
//
//	@Summary		Edit item
//	@Description	Sets the name, description, price or image of an item
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			category_id	path		string				true	"Category ID"
//	@Param			item_index	path		int					true	"Item position"
//	@Param			request		body		SetItemFieldRequest	true	"Field and value"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/items/{item_index} [patch]
func (app *application) setItemFieldHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, index, ok := app.itemPath(w, r)
	if !ok {
		return
	}

	var req SetItemFieldRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.SetItemField(categoryID, index, editor.ItemField(req.Field), req.Value)
	})
}

// removeItemHandler godoc
//
//	@Summary		Remove item
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			category_id	path		string	true	"Category ID"
//	@Param			item_index	path		int		true	"Item position"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/items/{item_index} [delete]
func (app *application) removeItemHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, index, ok := app.itemPath(w, r)
	if !ok {
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.RemoveItem(categoryID, index)
	})
}

// moveItemHandler godoc
//
//	@Summary		Move item
//	@Description	Swaps an item with its neighbour
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string		true	"Session ID"
//	@Param			category_id	path		string		true	"Category ID"
//	@Param			item_index	path		int			true	"Item position"
//	@Param			request		body		MoveRequest	true	"Direction"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/items/{item_index}/move [post]
func (app *application) moveItemHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, index, ok := app.itemPath(w, r)
	if !ok {
		return
	}

	var req MoveRequest
	if !app.decodeAndValidate(w, r, &req) {
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.MoveItem(categoryID, index, editor.Direction(req.Direction))
	})
}

// addTagHandler godoc
//
//	@Summary		Add tag
//	@Description	Appends an empty tag to an item
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			category_id	path		string	true	"Category ID"
//	@Param			item_index	path		int		true	"Item position"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/items/{item_index}/tags [post]
func (app *application) addTagHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, index, ok := app.itemPath(w, r)
	if !ok {
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.AddTag(categoryID, index)
	})
}

// setTagHandler godoc
//
//	@Summary		Edit tag
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string			true	"Session ID"
//	@Param			category_id	path		string			true	"Category ID"
//	@Param			item_index	path		int				true	"Item position"
//	@Param			tag_index	path		int				true	"Tag position"
//	@Param			request		body		SetTagRequest	true	"Tag"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/items/{item_index}/tags/{tag_index} [put]
func (app *application) setTagHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, index, ok := app.itemPath(w, r)
	if !ok {
		return
	}

	tagIndex, err := intURLParam(r, "tag_index")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req SetTagRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.SetTag(categoryID, index, tagIndex, req.Value)
	})
}

// removeTagHandler godoc
//
//	@Summary		Remove tag
//	@Tags			editor
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			category_id	path		string	true	"Category ID"
//	@Param			item_index	path		int		true	"Item position"
//	@Param			tag_index	path		int		true	"Tag position"
//	@Success		200			{object}	editor.State
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/editor/sessions/{session_id}/categories/{category_id}/items/{item_index}/tags/{tag_index} [delete]
func (app *application) removeTagHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, index, ok := app.itemPath(w, r)
	if !ok {
		return
	}

	tagIndex, err := intURLParam(r, "tag_index")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.applyEdit(w, r, func(s *editor.Session) error {
		return s.RemoveTag(categoryID, index, tagIndex)
	})
}
