package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lessonlab/backend/internal/models"
	"go.uber.org/zap"
)

// GenerationService is the interface that wraps the document generation
// business logic.
type GenerationService interface {
	// GenerateAllDocuments produces the full document set for a lesson
	// plan: one daily plan per day, one weekly teacher handout, and one
	// document per student handout.
	//
	// "templateID" selects a stored template; the empty string and the
	// reserved default ID both select the built-in template.
	// An error is returned only when the plan itself is unusable; partial
	// generation failures degrade to fallback output instead.
	GenerateAllDocuments(ctx context.Context, plan *models.LessonPlanInput, templateID string) ([]models.GeneratedFile, error)
}

// GenerationHandler handles HTTP requests for document generation
type GenerationHandler struct {
	BaseHandler
	service GenerationService
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(svc GenerationService, logger *zap.Logger) *GenerationHandler {
	return &GenerationHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all generation handler routes
func (h *GenerationHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/documents", func(r chi.Router) {
		r.Post("/generate", h.Generate)
	})
}

// Generate handles POST /api/v1/documents/generate
// @Summary Generate lesson plan documents
// @Description Generate daily plans, a teacher handout, and student handouts for a weekly lesson plan, bundled as a zip archive
// @Tags documents
// @Accept json
// @Produce application/zip
// @Param templateId query string false "Stored template ID, defaults to the built-in template"
// @Param plan body models.LessonPlanInput true "Weekly lesson plan"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/documents/generate [post]
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var plan models.LessonPlanInput
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid lesson plan JSON")
		return
	}
	if len(plan.Days) == 0 {
		h.respondError(w, http.StatusBadRequest, "lesson plan must contain at least one day")
		return
	}

	templateID := r.URL.Query().Get("templateId")

	files, err := h.service.GenerateAllDocuments(r.Context(), &plan, templateID)
	if err != nil {
		h.logger.Error("failed to generate documents", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to generate documents")
		return
	}

	bundle, err := bundleFiles(files)
	if err != nil {
		h.logger.Error("failed to bundle documents", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to bundle documents")
		return
	}

	h.respondAttachment(w, "application/zip", fmt.Sprintf("Week%02d_Documents.zip", plan.Week), bundle)
}

// bundleFiles packs generated documents into a single zip archive
func bundleFiles(files []models.GeneratedFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, file := range files {
		entry, err := zw.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", file.Name, err)
		}
		if _, err := entry.Write(file.Content); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", file.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip archive: %w", err)
	}
	return buf.Bytes(), nil
}
