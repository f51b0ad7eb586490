package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftbench/internal/tags"
)

// AddTagRequest adds a tag at quantity one
type AddTagRequest struct {
	Tag string `json:"tag" validate:"required,tagname"`
}

// EditTagRequest renames a tag and/or sets its quantity
type EditTagRequest struct {
	NewTag    string `json:"newTag" validate:"omitempty,tagname"`
	Quantity  *int   `json:"quantity"`
	Overwrite bool   `json:"overwrite"`
}

// ReformatTagsRequest applies a batch of tag edits keyed by current name
type ReformatTagsRequest struct {
	Edits map[string]tags.Edit `json:"edits" validate:"required"`
}

// TagSetResponse is a tag set after an edit
type TagSetResponse struct {
	Tags tags.Set `json:"tags"`
}

// HandleAddTag adds a tag
// @Summary Add tag
// @Tags recipe-tags
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body AddTagRequest true "Tag"
// @Success 200 {object} TagSetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Tag exists"
// @Router /api/v1/recipes/{id}/tags [post]
func (h *RecipeHandler) HandleAddTag(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var req AddTagRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add tag"); err != nil {
		return
	}
	set, err := h.store().AddTag(r.Context(), chi.URLParam(r, "id"), req.Tag)
	if err != nil {
		respondServiceError(w, r, "Add tag", err)
		return
	}
	respondJSON(w, http.StatusOK, TagSetResponse{Tags: set})
}

// HandleEditTag renames a tag and/or changes its quantity
// @Summary Edit tag
// @Description Quantity is added unless overwrite is set. Quantities never drop below one.
// @Tags recipe-tags
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param tag path string true "Tag"
// @Param request body EditTagRequest true "Edit"
// @Success 200 {object} TagSetResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/tags/{tag} [patch]
func (h *RecipeHandler) HandleEditTag(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var req EditTagRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Edit tag"); err != nil {
		return
	}
	ctx := r.Context()
	id, tag := chi.URLParam(r, "id"), chi.URLParam(r, "tag")

	var (
		set tags.Set
		err error
	)
	if req.Quantity != nil {
		if set, err = h.store().SetTagQuantity(ctx, id, tag, *req.Quantity, req.Overwrite); err != nil {
			respondServiceError(w, r, "Set tag quantity", err)
			return
		}
	}
	if req.NewTag != "" && req.NewTag != tag {
		if set, err = h.store().RenameTag(ctx, id, tag, req.NewTag); err != nil {
			respondServiceError(w, r, "Rename tag", err)
			return
		}
	}
	if set == nil {
		rec, err := h.store().Get(ctx, id)
		if err != nil {
			respondServiceError(w, r, "Edit tag", err)
			return
		}
		set = rec.Tags
	}
	respondJSON(w, http.StatusOK, TagSetResponse{Tags: set})
}

// HandleReformatTags applies a batch of tag edits
// @Summary Reformat tags
// @Description Nothing changes unless every edit is valid.
// @Tags recipe-tags
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body ReformatTagsRequest true "Edits"
// @Success 200 {object} TagSetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate tag"
// @Router /api/v1/recipes/{id}/tags [put]
func (h *RecipeHandler) HandleReformatTags(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	var req ReformatTagsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reformat tags"); err != nil {
		return
	}
	set, err := h.store().ReformatTags(r.Context(), chi.URLParam(r, "id"), req.Edits)
	if err != nil {
		respondServiceError(w, r, "Reformat tags", err)
		return
	}
	respondJSON(w, http.StatusOK, TagSetResponse{Tags: set})
}

// HandleRemoveTag removes a tag
// @Summary Remove tag
// @Tags recipe-tags
// @Produce json
// @Param id path string true "Recipe ID"
// @Param tag path string true "Tag"
// @Success 200 {object} TagSetResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{id}/tags/{tag} [delete]
func (h *RecipeHandler) HandleRemoveTag(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok || !h.canEdit(w, r, user) {
		return
	}
	set, err := h.store().RemoveTag(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "tag"))
	if err != nil {
		respondServiceError(w, r, "Remove tag", err)
		return
	}
	respondJSON(w, http.StatusOK, TagSetResponse{Tags: set})
}
