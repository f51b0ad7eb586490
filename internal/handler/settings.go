package handler

import (
	"net/http"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/quantity"
	"github.com/osse101/craftbench/internal/settings"
)

// SettingsHandler serves world settings.
type SettingsHandler struct {
	settings *settings.Settings
	resolver *quantity.Resolver
}

func NewSettingsHandler(st *settings.Settings, resolver *quantity.Resolver) *SettingsHandler {
	return &SettingsHandler{settings: st, resolver: resolver}
}

// SettingsResponse is the world settings a client needs
type SettingsResponse struct {
	AllowPlayerEdit bool               `json:"allowPlayerEdit"`
	QuantityPaths   quantity.PathTable `json:"quantityPaths"`
}

// AllowPlayerEditRequest toggles player recipe editing
type AllowPlayerEditRequest struct {
	Allow *bool `json:"allow" validate:"required"`
}

// QuantityPathsRequest replaces the quantity path table
type QuantityPathsRequest struct {
	Paths quantity.PathTable `json:"paths" validate:"required"`
}

// HandleGet returns world settings
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Router /api/v1/settings [get]
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	allow, err := h.settings.AllowPlayerEdit(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get settings", err)
		return
	}
	respondJSON(w, http.StatusOK, SettingsResponse{
		AllowPlayerEdit: allow,
		QuantityPaths:   h.resolver.Table(),
	})
}

// HandleSetAllowPlayerEdit toggles player editing
// @Summary Set allow player edit
// @Tags settings
// @Accept json
// @Produce json
// @Param request body AllowPlayerEditRequest true "Setting"
// @Success 200 {object} SettingsResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/settings/allow-player-edit [put]
func (h *SettingsHandler) HandleSetAllowPlayerEdit(w http.ResponseWriter, r *http.Request) {
	if !h.requireGM(w, r) {
		return
	}
	var req AllowPlayerEditRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set allow player edit"); err != nil {
		return
	}
	if err := h.settings.SetAllowPlayerEdit(r.Context(), *req.Allow); err != nil {
		respondServiceError(w, r, "Set allow player edit", err)
		return
	}
	h.HandleGet(w, r)
}

// HandleSetQuantityPaths replaces the quantity path table
// @Summary Set quantity paths
// @Description A null path marks an item type without a native quantity.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body QuantityPathsRequest true "Paths by item type"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/settings/quantity-paths [put]
func (h *SettingsHandler) HandleSetQuantityPaths(w http.ResponseWriter, r *http.Request) {
	if !h.requireGM(w, r) {
		return
	}
	var req QuantityPathsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set quantity paths"); err != nil {
		return
	}
	if err := h.settings.SetQuantityTable(r.Context(), req.Paths); err != nil {
		respondServiceError(w, r, "Set quantity paths", err)
		return
	}
	h.resolver.Replace(req.Paths)
	logger.FromContext(r.Context()).Info("Quantity paths replaced", "types", len(req.Paths))
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuantityPathsStored})
}

func (h *SettingsHandler) requireGM(w http.ResponseWriter, r *http.Request) bool {
	user, ok := requireUser(w, r)
	if !ok {
		return false
	}
	if !user.IsGM() {
		respondServiceError(w, r, "Settings", domain.ErrNoEditRights)
		return false
	}
	return true
}
