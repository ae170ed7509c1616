package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lessonlab/backend/internal/models"
	"go.uber.org/zap"
)

// templatesRepository implements template metadata data access
type templatesRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewTemplatesRepository creates a new templates repository
func NewTemplatesRepository(db *sql.DB, logger *zap.Logger) *templatesRepository {
	return &templatesRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new template metadata record
func (r *templatesRepository) Create(ctx context.Context, metadata *models.TemplateMetadata) error {
	query := `
		INSERT INTO templates (id, name, content_type, size)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		metadata.ID,
		metadata.Name,
		metadata.ContentType,
		metadata.Size,
	)
	if err != nil {
		r.logger.Error("failed to create template metadata", zap.Error(err))
		return fmt.Errorf("failed to create template metadata: %w", err)
	}

	return nil
}

// GetByID retrieves template metadata by ID.
// Returns sql.ErrNoRows when no template with that ID exists.
func (r *templatesRepository) GetByID(ctx context.Context, id string) (*models.TemplateMetadata, error) {
	query := `
		SELECT id, name, content_type, size, created_at
		FROM templates
		WHERE id = ?
		LIMIT 1
	`

	metadata := &models.TemplateMetadata{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&metadata.ID,
		&metadata.Name,
		&metadata.ContentType,
		&metadata.Size,
		&metadata.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		r.logger.Error("failed to get template metadata", zap.Error(err))
		return nil, fmt.Errorf("failed to get template metadata: %w", err)
	}

	return metadata, nil
}

// List retrieves all template metadata ordered by creation time
func (r *templatesRepository) List(ctx context.Context) ([]models.TemplateMetadata, error) {
	query := `
		SELECT id, name, content_type, size, created_at
		FROM templates
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query templates", zap.Error(err))
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []models.TemplateMetadata
	for rows.Next() {
		var metadata models.TemplateMetadata
		if err := rows.Scan(
			&metadata.ID,
			&metadata.Name,
			&metadata.ContentType,
			&metadata.Size,
			&metadata.CreatedAt,
		); err != nil {
			r.logger.Error("failed to scan template metadata", zap.Error(err))
			return nil, fmt.Errorf("failed to scan template metadata: %w", err)
		}
		templates = append(templates, metadata)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return templates, nil
}

// DeleteByID removes template metadata by ID
func (r *templatesRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM templates WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete template metadata", zap.Error(err))
		return fmt.Errorf("failed to delete template metadata: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
