package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftbench/internal/inventory"
	"github.com/osse101/craftbench/internal/tags"
)

// ItemTagHandler edits craft tags on inventory items.
type ItemTagHandler struct {
	editor *inventory.ItemTagEditor
}

func NewItemTagHandler(editor *inventory.ItemTagEditor) *ItemTagHandler {
	return &ItemTagHandler{editor: editor}
}

// ItemTagsResponse lists an item's tags and which match the query
type ItemTagsResponse struct {
	Tags      []tags.Entry `json:"tags"`
	NoResults bool         `json:"noResults"`
}

// HandleList lists an item's craft tags
// @Summary List item tags
// @Tags item-tags
// @Produce json
// @Param actorId path string true "Actor ID"
// @Param itemId path string true "Item ID"
// @Param q query string false "Tag filter"
// @Success 200 {object} ItemTagsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/actors/{actorId}/items/{itemId}/tags [get]
func (h *ItemTagHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	entries, noResults, err := h.editor.List(r.Context(), user,
		chi.URLParam(r, "actorId"), chi.URLParam(r, "itemId"), GetOptionalQueryParam(r, "q", ""))
	if err != nil {
		respondServiceError(w, r, "List item tags", err)
		return
	}
	if entries == nil {
		entries = []tags.Entry{}
	}
	respondJSON(w, http.StatusOK, ItemTagsResponse{Tags: entries, NoResults: noResults})
}

// HandleReformat applies tag edits to an item
// @Summary Reformat item tags
// @Tags item-tags
// @Accept json
// @Produce json
// @Param actorId path string true "Actor ID"
// @Param itemId path string true "Item ID"
// @Param request body ReformatTagsRequest true "Edits"
// @Success 200 {object} TagSetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/actors/{actorId}/items/{itemId}/tags [put]
func (h *ItemTagHandler) HandleReformat(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req ReformatTagsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reformat item tags"); err != nil {
		return
	}
	set, err := h.editor.Reformat(r.Context(), user, chi.URLParam(r, "actorId"), chi.URLParam(r, "itemId"), req.Edits)
	if err != nil {
		respondServiceError(w, r, "Reformat item tags", err)
		return
	}
	respondJSON(w, http.StatusOK, TagSetResponse{Tags: set})
}
