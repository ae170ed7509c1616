package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lessonlab/backend/internal/models"
	"go.uber.org/zap"
)

// maxTemplateUploadSize bounds the multipart form memory buffer
const maxTemplateUploadSize = 10 << 20 // 10 MB

// TemplateService is the interface that wraps methods for template
// business logic.
type TemplateService interface {
	// Upload validates and stores an uploaded template document.
	//
	// "name" parameter is the original filename supplied by the client.
	// Uploads that do not match the expected weekly plan table layout are
	// rejected with an error.
	Upload(ctx context.Context, reader io.Reader, name string) (*models.TemplateMetadata, error)
	// List retrieves metadata for all stored templates.
	List(ctx context.Context) ([]models.TemplateMetadata, error)
	// GetMetadata retrieves metadata for a single template by ID.
	GetMetadata(ctx context.Context, id string) (*models.TemplateMetadata, error)
	// Delete removes a stored template. The built-in default template
	// cannot be deleted.
	Delete(ctx context.Context, id string) error
	// Load returns template content for the given ID, falling back to
	// the built-in default on any failure.
	Load(ctx context.Context, id string) []byte
}

// TemplateHandler handles HTTP requests for template management
type TemplateHandler struct {
	BaseHandler
	service TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(svc TemplateService, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all template handler routes.
// All template management routes sit behind the API key middleware,
// which the caller supplies.
func (h *TemplateHandler) RegisterRoutes(r chi.Router, apiKeyMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/templates", func(r chi.Router) {
		r.Use(apiKeyMiddleware)
		r.Post("/", h.Upload)
		r.Get("/", h.List)
		r.Get("/{id}", h.Download)
		r.Delete("/{id}", h.Delete)
	})
}

// Upload handles POST /api/v1/templates
// @Summary Upload a template
// @Description Upload a .docx weekly plan template; the document is validated against the expected table layout before it is accepted
// @Tags templates
// @Accept multipart/form-data
// @Produce json
// @Param template formData file true "Template .docx file"
// @Success 201 {object} models.TemplateMetadata
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/templates [post]
func (h *TemplateHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxTemplateUploadSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("template")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "template file is required")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".docx") {
		h.respondError(w, http.StatusBadRequest, "template must be a .docx file")
		return
	}

	metadata, err := h.service.Upload(r.Context(), file, header.Filename)
	if err != nil {
		if strings.Contains(err.Error(), "invalid template") {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to upload template", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to upload template")
		return
	}

	h.respondJSON(w, http.StatusCreated, metadata)
}

// List handles GET /api/v1/templates
// @Summary List templates
// @Description List metadata for all stored templates
// @Tags templates
// @Produce json
// @Success 200 {array} models.TemplateMetadata
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/templates [get]
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list templates", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list templates")
		return
	}
	if templates == nil {
		templates = []models.TemplateMetadata{}
	}

	h.respondJSON(w, http.StatusOK, templates)
}

// Download handles GET /api/v1/templates/{id}
// @Summary Download a template
// @Description Download the raw .docx content of a stored template
// @Tags templates
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param id path string true "Template ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/templates/{id} [get]
func (h *TemplateHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	name := id
	if id != models.DefaultTemplateID {
		metadata, err := h.service.GetMetadata(r.Context(), id)
		if err != nil {
			// Check if error is "template not found" (may be wrapped)
			if strings.Contains(err.Error(), "not found") {
				h.respondError(w, http.StatusNotFound, "template not found")
				return
			}
			h.logger.Error("failed to get template metadata", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to get template")
			return
		}
		name = metadata.Name
	} else {
		name = "default_template.docx"
	}

	content := h.service.Load(r.Context(), id)
	h.respondAttachment(w, models.DocxMimeType, name, content)
}

// Delete handles DELETE /api/v1/templates/{id}
// @Summary Delete a template
// @Description Delete a stored template and its metadata; the built-in default template cannot be deleted
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/templates/{id} [delete]
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "cannot be deleted") {
			h.respondError(w, http.StatusBadRequest, "default template cannot be deleted")
			return
		}
		if strings.Contains(err.Error(), "not found") {
			h.respondError(w, http.StatusNotFound, "template not found")
			return
		}
		h.logger.Error("failed to delete template", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to delete template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
