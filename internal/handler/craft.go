package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftbench/internal/crafting"
	"github.com/osse101/craftbench/internal/domain"
)

// CraftHandler serves craft table sessions.
type CraftHandler struct {
	service crafting.Service
}

func NewCraftHandler(s crafting.Service) *CraftHandler {
	return &CraftHandler{service: s}
}

// OpenSessionRequest opens a craft table on a recipe
type OpenSessionRequest struct {
	RecipeID string `json:"recipeId" validate:"required,max=64"`
}

// SelectActorRequest switches the crafting actor
type SelectActorRequest struct {
	ActorID string `json:"actorId" validate:"required,max=64"`
}

// AllocationsRequest sets how many of each candidate item to consume
type AllocationsRequest struct {
	Allocations map[string]int `json:"allocations" validate:"required,dive,min=0"`
}

// CraftRequest performs the craft
type CraftRequest struct {
	Force bool `json:"force"`
}

// HandleOpen opens a craft table
// @Summary Open crafting session
// @Description Preselects the caller's character when owned and evaluates the inventory.
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body OpenSessionRequest true "Recipe"
// @Success 201 {object} crafting.View
// @Failure 403 {object} ErrorResponse "No owned actor"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/craft [post]
func (h *CraftHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req OpenSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open session"); err != nil {
		return
	}
	sess, err := h.service.Open(r.Context(), user, req.RecipeID)
	if err != nil {
		respondServiceError(w, r, "Open session", err)
		return
	}
	respondJSON(w, http.StatusCreated, sess.View())
}

// HandleGet returns a session
// @Summary Get crafting session
// @Tags crafting
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} crafting.View
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/craft/{sessionId} [get]
func (h *CraftHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, sess.View())
}

// HandleSelectActor switches actor and re-evaluates
// @Summary Select actor
// @Description An actor without items is selected and reported in the session state.
// @Tags crafting
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body SelectActorRequest true "Actor"
// @Success 200 {object} crafting.View
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/craft/{sessionId}/actor [post]
func (h *CraftHandler) HandleSelectActor(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req SelectActorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select actor"); err != nil {
		return
	}
	if err := sess.SelectActor(r.Context(), req.ActorID); err != nil {
		respondServiceError(w, r, "Select actor", err)
		return
	}
	view, err := sess.Evaluate(r.Context())
	if err != nil && !errors.Is(err, domain.ErrActorHasNoItems) {
		respondServiceError(w, r, "Evaluate inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleEvaluate re-reads the actor inventory
// @Summary Evaluate inventory
// @Tags crafting
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} crafting.View
// @Router /api/v1/craft/{sessionId}/evaluate [post]
func (h *CraftHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	view, err := sess.Evaluate(r.Context())
	if err != nil && !errors.Is(err, domain.ErrActorHasNoItems) {
		respondServiceError(w, r, "Evaluate inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleAllocate sets consume quantities for tag recipe candidates
// @Summary Allocate candidates
// @Description Values are clamped to what each item holds.
// @Tags crafting
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body AllocationsRequest true "Consume quantity by item id"
// @Success 200 {object} crafting.View
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/craft/{sessionId}/allocations [put]
func (h *CraftHandler) HandleAllocate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req AllocationsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Allocate"); err != nil {
		return
	}

	ids := make([]string, 0, len(req.Allocations))
	for id := range req.Allocations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	view := sess.View()
	for _, id := range ids {
		v, err := sess.SetConsumeQuantity(id, req.Allocations[id])
		if err != nil {
			respondServiceError(w, r, "Allocate", err)
			return
		}
		view = v
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCraft crafts the recipe
// @Summary Craft
// @Description Force crafts only when the recipe allows it and ingredients are short.
// @Tags crafting
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body CraftRequest false "Craft options"
// @Success 200 {object} crafting.Result
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/craft/{sessionId}/craft [post]
func (h *CraftHandler) HandleCraft(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req CraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	res, err := h.service.Craft(r.Context(), user, chi.URLParam(r, "sessionId"), req.Force)
	if err != nil {
		respondServiceError(w, r, "Craft", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleClose closes the craft table
// @Summary Close crafting session
// @Tags crafting
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/craft/{sessionId} [delete]
func (h *CraftHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	h.service.Close(r.Context(), user, chi.URLParam(r, "sessionId"))
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionClosed})
}

func (h *CraftHandler) session(w http.ResponseWriter, r *http.Request) (*crafting.Session, bool) {
	user, ok := requireUser(w, r)
	if !ok {
		return nil, false
	}
	sess, err := h.service.Get(r.Context(), user, chi.URLParam(r, "sessionId"))
	if err != nil {
		respondServiceError(w, r, "Get session", err)
		return nil, false
	}
	return sess, true
}
