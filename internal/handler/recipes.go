package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftbench/internal/catalog"
	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/recipe"
)

// RecipeHandler serves the recipe collection of the open file.
type RecipeHandler struct {
	catalog catalog.Service
}

func NewRecipeHandler(c catalog.Service) *RecipeHandler {
	return &RecipeHandler{catalog: c}
}

// RecipeListResponse is the visible part of the collection.
type RecipeListResponse struct {
	Recipes   []*domain.Recipe `json:"recipes"`
	NoResults bool             `json:"noResults"`
	CanEdit   bool             `json:"canEdit"`
}

// UpdateManyRequest maps recipe id to a partial recipe.
type UpdateManyRequest map[string]map[string]any

// SetTypeRequest changes the recipe type
type SetTypeRequest struct {
	Type string `json:"type" validate:"required,oneof=text items tags"`
}

// ToggleResponse reports a flag's new value
type ToggleResponse struct {
	Value bool `json:"value"`
}

func (h *RecipeHandler) store() *recipe.Store {
	return h.catalog.Recipes()
}

// canEdit writes a 403 and returns false when user may not edit.
func (h *RecipeHandler) canEdit(w http.ResponseWriter, r *http.Request, user domain.User) bool {
	if err := h.catalog.RequireEdit(r.Context(), user); err != nil {
		respondServiceError(w, r, "Edit check", err)
		return false
	}
	return true
}

// HandleList lists recipes visible to the caller
// @Summary List recipes
// @Description Applies the search query to recipe visibility and returns the visible recipes. Hidden recipes are only listed for editors.
// @Tags recipes
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} RecipeListResponse
// @Router /api/v1/recipes [get]
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	query := GetOptionalQueryParam(r, "q", "")

	res := h.catalog.Search(ctx, user, query)
	out := make([]*domain.Recipe, 0, len(res.Visible))
	for _, id := range res.Visible {
		rec, err := h.store().Get(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, rec)
	}

	respondJSON(w, http.StatusOK, RecipeListResponse{
		Recipes:   out,
		NoResults: res.NoResults,
		CanEdit:   h.catalog.CanEdit(ctx, user),
	})
}

// HandleCreate adds a new text recipe
// @Summary Create recipe
// @Tags recipes
// @Produce json
// @Success 201 {object} domain.Recipe
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/recipes [post]
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	respondJSON(w, http.StatusCreated, h.store().Create(r.Context()))
}

// HandleGet returns one recipe
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [get]
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	rec, err := h.store().Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, "Get recipe", err)
		return
	}
	if rec.Settings.IsHidden && !h.catalog.CanEdit(r.Context(), user) {
		respondError(w, http.StatusNotFound, ErrMsgRecipeNotFoundError)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// HandleUpdate deep-merges a partial recipe
// @Summary Update recipe
// @Description Nested objects merge key by key, everything else replaces. The id cannot change.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body object true "Partial recipe"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id} [patch]
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil || partial == nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	rec, err := h.store().Update(r.Context(), chi.URLParam(r, "id"), partial)
	if err != nil {
		respondServiceError(w, r, "Update recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// HandleUpdateMany applies several partial updates
// @Summary Update many recipes
// @Description Each recipe commits on its own. The error lists every failed update.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body UpdateManyRequest true "Partial recipes by id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recipes [patch]
func (h *RecipeHandler) HandleUpdateMany(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var req UpdateManyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	if err := h.store().UpdateMany(r.Context(), req); err != nil {
		respondServiceError(w, r, "Update recipes", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecipesUpdated})
}

// HandleDelete removes a recipe after confirmation
// @Summary Delete recipe
// @Description Requires confirm=true; without it the deletion is cancelled.
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Not confirmed"
// @Router /api/v1/recipes/{id} [delete]
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.catalog.DeleteRecipe(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, "Delete recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRecipeDeleted})
}

// HandleSetType changes the recipe type
// @Summary Set recipe type
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body SetTypeRequest true "New type"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/type [put]
func (h *RecipeHandler) HandleSetType(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var req SetTypeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set recipe type"); err != nil {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.store().SetType(r.Context(), id, domain.RecipeType(req.Type)); err != nil {
		respondServiceError(w, r, "Set recipe type", err)
		return
	}
	h.respondRecipe(w, r, id)
}

// HandleToggleEditMode flips edit mode on a recipe
// @Summary Toggle edit mode
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} ToggleResponse
// @Router /api/v1/recipes/{id}/edit-mode [post]
func (h *RecipeHandler) HandleToggleEditMode(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	on, err := h.store().ToggleEditMode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, "Toggle edit mode", err)
		return
	}
	respondJSON(w, http.StatusOK, ToggleResponse{Value: on})
}

// HandleToggleSettingsPanel flips the settings panel of a recipe
// @Summary Toggle settings panel
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} ToggleResponse
// @Router /api/v1/recipes/{id}/settings-panel [post]
func (h *RecipeHandler) HandleToggleSettingsPanel(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	opened, err := h.store().ToggleSettingsPanel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, "Toggle settings panel", err)
		return
	}
	respondJSON(w, http.StatusOK, ToggleResponse{Value: opened})
}

func (h *RecipeHandler) respondRecipe(w http.ResponseWriter, r *http.Request, id string) {
	rec, err := h.store().Get(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context()).Error("Recipe vanished after edit", "recipe_id", id, "error", err)
		respondServiceError(w, r, "Get recipe", err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}
