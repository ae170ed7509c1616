package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lessonlab/backend/assets"
	"github.com/lessonlab/backend/internal/models"
	"github.com/lessonlab/backend/internal/storage"
	"github.com/lessonlab/backend/internal/templatefill"
	"go.uber.org/zap"
)

// ErrTemplateNotFound is returned when a requested template does not exist
var ErrTemplateNotFound = errors.New("template not found")

// ErrDefaultTemplateImmutable is returned on attempts to delete the
// built-in default template
var ErrDefaultTemplateImmutable = errors.New("default template cannot be deleted")

// Storage defines the interface for template file storage operations
type Storage interface {
	// Create creates a new template file and returns a WriteCloser
	Create(id string) (io.WriteCloser, error)

	// Read returns the full contents of a stored template file
	Read(id string) ([]byte, error)

	// Delete removes a stored template file
	Delete(id string) error
}

// TemplatesRepository defines the interface for template metadata data access
type TemplatesRepository interface {
	Create(ctx context.Context, metadata *models.TemplateMetadata) error
	GetByID(ctx context.Context, id string) (*models.TemplateMetadata, error)
	List(ctx context.Context) ([]models.TemplateMetadata, error)
	DeleteByID(ctx context.Context, id string) error
}

// TemplateService handles business logic for template operations
type TemplateService struct {
	templatesRepo TemplatesRepository
	storage       Storage
	logger        *zap.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(templatesRepo TemplatesRepository, storage Storage, logger *zap.Logger) *TemplateService {
	return &TemplateService{
		templatesRepo: templatesRepo,
		storage:       storage,
		logger:        logger,
	}
}

// Upload validates and stores an uploaded template, creating both the
// file and the metadata record. The upload is rejected when the document
// does not match the expected weekly plan table layout.
func (s *TemplateService) Upload(ctx context.Context, reader io.Reader, name string) (*models.TemplateMetadata, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	// Reject malformed templates before they reach storage
	if _, err := templatefill.NewFiller(content, s.logger); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}

	id := storage.GenerateFileName(".docx")

	writeCloser, err := s.storage.Create(id)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := writeCloser.Write(content); err != nil {
		writeCloser.Close()
		s.storage.Delete(id)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if err := writeCloser.Close(); err != nil {
		s.storage.Delete(id)
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	metadata := &models.TemplateMetadata{
		ID:          id,
		Name:        name,
		ContentType: models.DocxMimeType,
		Size:        int64(len(content)),
	}

	if err := s.templatesRepo.Create(ctx, metadata); err != nil {
		// Cleanup: delete the file if metadata creation fails
		s.storage.Delete(id)
		return nil, fmt.Errorf("failed to create metadata: %w", err)
	}

	return metadata, nil
}

// List retrieves metadata for all stored templates
func (s *TemplateService) List(ctx context.Context) ([]models.TemplateMetadata, error) {
	return s.templatesRepo.List(ctx)
}

// GetMetadata retrieves metadata for a single template by ID
func (s *TemplateService) GetMetadata(ctx context.Context, id string) (*models.TemplateMetadata, error) {
	metadata, err := s.templatesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return metadata, nil
}

// Delete removes a stored template, both the file and the metadata record.
// The built-in default template cannot be deleted.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if id == models.DefaultTemplateID {
		return ErrDefaultTemplateImmutable
	}

	err := s.storage.Delete(id)
	if err != nil && os.IsNotExist(err) {
		s.logger.Warn("template file missing during delete", zap.String("id", id))
	} else if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := s.templatesRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("failed to delete metadata: %w", err)
	}

	return nil
}

// Load returns the template content for the given ID. The empty string
// and DefaultTemplateID resolve to the embedded default. Any failure to
// load a stored template also falls back to the embedded default so
// document generation can always proceed.
func (s *TemplateService) Load(ctx context.Context, id string) []byte {
	if id == "" || id == models.DefaultTemplateID {
		return assets.DefaultTemplate
	}

	if _, err := s.templatesRepo.GetByID(ctx, id); err != nil {
		s.logger.Warn("template metadata lookup failed, using default",
			zap.String("id", id),
			zap.Error(err))
		return assets.DefaultTemplate
	}

	content, err := s.storage.Read(id)
	if err != nil {
		s.logger.Warn("template file read failed, using default",
			zap.String("id", id),
			zap.Error(err))
		return assets.DefaultTemplate
	}

	return content
}
