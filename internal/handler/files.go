package handler

import (
	"net/http"

	"github.com/osse101/craftbench/internal/catalog"
	"github.com/osse101/craftbench/internal/storage"
)

// FileHandler serves recipe file management.
type FileHandler struct {
	catalog catalog.Service
}

func NewFileHandler(c catalog.Service) *FileHandler {
	return &FileHandler{catalog: c}
}

// SelectFileRequest names the file to open
type SelectFileRequest struct {
	File string `json:"file" validate:"required,max=200"`
}

// CreateFileRequest names a new recipe file
type CreateFileRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// SaveResponse reports where recipes were written
type SaveResponse struct {
	Path string `json:"path"`
}

// LoadResponse reports a loaded file and any recoverable problems
type LoadResponse struct {
	File     string            `json:"file"`
	Recipes  int               `json:"recipes"`
	Warnings []storage.Warning `json:"warnings"`
}

// CloseResponse reports whether the collection was saved on close
type CloseResponse struct {
	Saved bool `json:"saved"`
}

// HandleList returns the open file and the known files
// @Summary List recipe files
// @Tags files
// @Produce json
// @Success 200 {object} catalog.FilesView
// @Router /api/v1/files [get]
func (h *FileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	view, err := h.catalog.Files(r.Context())
	if err != nil {
		respondServiceError(w, r, "List files", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleSave writes the collection to the open file
// @Summary Save recipes
// @Description The write is performed by the responsible game master session.
// @Tags files
// @Produce json
// @Success 200 {object} SaveResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/files/save [post]
func (h *FileHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	path, err := h.catalog.Save(r.Context(), user)
	if err != nil {
		respondServiceError(w, r, "Save recipes", err)
		return
	}
	respondJSON(w, http.StatusOK, SaveResponse{Path: path})
}

// HandleSelect switches to another recipe file
// @Summary Select recipe file
// @Description Editors save the open file first. A failed save keeps the current file open.
// @Tags files
// @Accept json
// @Produce json
// @Param request body SelectFileRequest true "File name"
// @Success 200 {object} LoadResponse
// @Router /api/v1/files/select [post]
func (h *FileHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req SelectFileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select file"); err != nil {
		return
	}
	warnings, err := h.catalog.SelectFile(r.Context(), user, req.File)
	if err != nil {
		respondServiceError(w, r, "Select file", err)
		return
	}
	h.respondLoaded(w, r, warnings)
}

// HandleReload reloads the open file from storage
// @Summary Reload recipe file
// @Tags files
// @Produce json
// @Success 200 {object} LoadResponse
// @Router /api/v1/files/reload [post]
func (h *FileHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	warnings, err := h.catalog.Reload(r.Context(), user)
	if err != nil {
		respondServiceError(w, r, "Reload file", err)
		return
	}
	h.respondLoaded(w, r, warnings)
}

// HandleCreate creates an empty recipe file and opens it
// @Summary Create recipe file
// @Tags files
// @Accept json
// @Produce json
// @Param request body CreateFileRequest true "File name"
// @Success 201 {object} SaveResponse
// @Router /api/v1/files [post]
func (h *FileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req CreateFileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create file"); err != nil {
		return
	}
	path, err := h.catalog.CreateFile(r.Context(), user, req.Name)
	if err != nil {
		respondServiceError(w, r, "Create file", err)
		return
	}
	respondJSON(w, http.StatusCreated, SaveResponse{Path: path})
}

// HandleClear empties the open file after confirmation
// @Summary Clear recipe file
// @Tags files
// @Produce json
// @Param confirm query bool false "Confirm clearing"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse "Not confirmed"
// @Router /api/v1/files/clear [post]
func (h *FileHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.catalog.Clear(r.Context(), user); err != nil {
		respondServiceError(w, r, "Clear file", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFileCleared})
}

// HandleClose closes the recipe window
// @Summary Close recipe window
// @Description Editors are asked whether to save. Without confirm=true the window closes unsaved.
// @Tags files
// @Produce json
// @Param confirm query bool false "Save before closing"
// @Success 200 {object} CloseResponse
// @Router /api/v1/files/close [post]
func (h *FileHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	saved, err := h.catalog.Close(r.Context(), user)
	if err != nil {
		respondServiceError(w, r, "Close", err)
		return
	}
	respondJSON(w, http.StatusOK, CloseResponse{Saved: saved})
}

func (h *FileHandler) respondLoaded(w http.ResponseWriter, r *http.Request, warnings []storage.Warning) {
	view, err := h.catalog.Files(r.Context())
	if err != nil {
		respondServiceError(w, r, "List files", err)
		return
	}
	if warnings == nil {
		warnings = []storage.Warning{}
	}
	respondJSON(w, http.StatusOK, LoadResponse{
		File:     view.Current,
		Recipes:  h.catalog.Recipes().Len(),
		Warnings: warnings,
	})
}
