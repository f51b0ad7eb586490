package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftbench/internal/recipe"
)

// ItemRequest carries a dropped item document
type ItemRequest struct {
	Item json.RawMessage `json:"item" validate:"required"`
}

// SourceIDResponse names the slot an item was stored under
type SourceIDResponse struct {
	SourceID string `json:"sourceId"`
}

// ChangeQuantityRequest edits the count of one item reference
type ChangeQuantityRequest struct {
	Slot    recipe.Slot `json:"slot"`
	Value   int         `json:"value"`
	Rewrite bool        `json:"rewrite"`
}

// QuantityResponse is the stored count after an edit
type QuantityResponse struct {
	Quantity int `json:"quantity"`
}

// HandleSetTarget stores the recipe target
// @Summary Set target
// @Description A recipe still carrying the default name takes the item's name.
// @Tags recipe-items
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body ItemRequest true "Item document"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/target [put]
func (h *RecipeHandler) HandleSetTarget(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set target"); err != nil {
		return
	}
	doc, ok := decodeItem(w, req.Item)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.store().SetTarget(r.Context(), id, doc); err != nil {
		respondServiceError(w, r, "Set target", err)
		return
	}
	h.respondRecipe(w, r, id)
}

// HandleRemoveTarget clears the recipe target
// @Summary Remove target
// @Tags recipe-items
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Router /api/v1/recipes/{id}/target [delete]
func (h *RecipeHandler) HandleRemoveTarget(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.store().RemoveTarget(r.Context(), id); err != nil {
		respondServiceError(w, r, "Remove target", err)
		return
	}
	h.respondRecipe(w, r, id)
}

// HandleAddTarget adds an item to the target list
// @Summary Add target list item
// @Tags recipe-items
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body ItemRequest true "Item document"
// @Success 200 {object} SourceIDResponse
// @Router /api/v1/recipes/{id}/targets [post]
func (h *RecipeHandler) HandleAddTarget(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add target"); err != nil {
		return
	}
	doc, ok := decodeItem(w, req.Item)
	if !ok {
		return
	}
	sid, err := h.store().AddTargetListItem(r.Context(), chi.URLParam(r, "id"), doc)
	if err != nil {
		respondServiceError(w, r, "Add target", err)
		return
	}
	respondJSON(w, http.StatusOK, SourceIDResponse{SourceID: sid})
}

// HandleRemoveTargetListItem removes an item from the target list
// @Summary Remove target list item
// @Tags recipe-items
// @Produce json
// @Param id path string true "Recipe ID"
// @Param sourceId path string true "Source ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/targets/{sourceId} [delete]
func (h *RecipeHandler) HandleRemoveTargetListItem(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.store().RemoveTargetListItem(r.Context(), id, chi.URLParam(r, "sourceId")); err != nil {
		respondServiceError(w, r, "Remove target", err)
		return
	}
	h.respondRecipe(w, r, id)
}

// HandleAddIngredient adds an ingredient
// @Summary Add ingredient
// @Description An item that is also a target needs confirm=true.
// @Tags recipe-items
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param confirm query bool false "Confirm adding a target as ingredient"
// @Param request body ItemRequest true "Item document"
// @Success 200 {object} SourceIDResponse
// @Failure 409 {object} ErrorResponse "Not confirmed"
// @Router /api/v1/recipes/{id}/ingredients [post]
func (h *RecipeHandler) HandleAddIngredient(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add ingredient"); err != nil {
		return
	}
	doc, ok := decodeItem(w, req.Item)
	if !ok {
		return
	}
	sid, err := h.catalog.AddIngredient(r.Context(), user, chi.URLParam(r, "id"), doc)
	if err != nil {
		respondServiceError(w, r, "Add ingredient", err)
		return
	}
	respondJSON(w, http.StatusOK, SourceIDResponse{SourceID: sid})
}

// HandleRemoveIngredient removes an ingredient
// @Summary Remove ingredient
// @Tags recipe-items
// @Produce json
// @Param id path string true "Recipe ID"
// @Param sourceId path string true "Source ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/ingredients/{sourceId} [delete]
func (h *RecipeHandler) HandleRemoveIngredient(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.store().RemoveIngredient(r.Context(), id, chi.URLParam(r, "sourceId")); err != nil {
		respondServiceError(w, r, "Remove ingredient", err)
		return
	}
	h.respondRecipe(w, r, id)
}

// HandleChangeQuantity edits an item reference count
// @Summary Change quantity
// @Description With rewrite the count becomes value, otherwise value is added. Counts never drop below one.
// @Tags recipe-items
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body ChangeQuantityRequest true "Quantity change"
// @Success 200 {object} QuantityResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/quantity [post]
func (h *RecipeHandler) HandleChangeQuantity(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var req ChangeQuantityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Change quantity"); err != nil {
		return
	}
	n, err := h.store().ChangeQuantity(r.Context(), chi.URLParam(r, "id"), req.Slot, req.Value, req.Rewrite)
	if err != nil {
		respondServiceError(w, r, "Change quantity", err)
		return
	}
	respondJSON(w, http.StatusOK, QuantityResponse{Quantity: n})
}
