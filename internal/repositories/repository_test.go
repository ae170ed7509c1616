package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lessonlab/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupTestRepository creates a repository with a mock database
func setupTestRepository(t *testing.T) (*templatesRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	repo := NewTemplatesRepository(db, logger)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewTemplatesRepository(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	db := &sql.DB{}

	repo := NewTemplatesRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestTemplatesRepository_Create(t *testing.T) {
	metadata := &models.TemplateMetadata{
		ID:          "3f1c9a2e",
		Name:        "welding_week_template.docx",
		ContentType: models.DocxMimeType,
		Size:        20480,
	}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO templates \(id, name, content_type, size\)`).
					WithArgs(metadata.ID, metadata.Name, metadata.ContentType, metadata.Size).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedError: false,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO templates \(id, name, content_type, size\)`).
					WithArgs(metadata.ID, metadata.Name, metadata.ContentType, metadata.Size).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), metadata)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTemplatesRepository_GetByID(t *testing.T) {
	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		id            string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedName  string
	}{
		{
			name: "success",
			id:   "3f1c9a2e",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "content_type", "size", "created_at"}).
					AddRow("3f1c9a2e", "welding_template.docx", models.DocxMimeType, 20480, created)
				mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates WHERE id = \? LIMIT 1`).
					WithArgs("3f1c9a2e").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedName:  "welding_template.docx",
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates WHERE id = \? LIMIT 1`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
		},
		{
			name: "database error",
			id:   "3f1c9a2e",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates WHERE id = \? LIMIT 1`).
					WithArgs("3f1c9a2e").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.expectedName, result.Name)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTemplatesRepository_GetByID_NotFoundIsErrNoRows(t *testing.T) {
	repo, mock, cleanup := setupTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates WHERE id = \? LIMIT 1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplatesRepository_List(t *testing.T) {
	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "content_type", "size", "created_at"}).
					AddRow("a1", "first.docx", models.DocxMimeType, 1024, created).
					AddRow("b2", "second.docx", models.DocxMimeType, 2048, created)
				mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates ORDER BY created_at DESC`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "empty result",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "content_type", "size", "created_at"})
				mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates ORDER BY created_at DESC`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name: "database query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates ORDER BY created_at DESC`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
		{
			name: "scan error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "content_type", "size", "created_at"}).
					AddRow("a1", "first.docx", models.DocxMimeType, "invalid", created)
				mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates ORDER BY created_at DESC`).
					WillReturnRows(rows)
			},
			expectedError: true,
			expectedCount: 0,
		},
		{
			name: "rows iteration error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "content_type", "size", "created_at"}).
					AddRow("a1", "first.docx", models.DocxMimeType, 1024, created).
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`SELECT id, name, content_type, size, created_at FROM templates ORDER BY created_at DESC`).
					WillReturnRows(rows)
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.List(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTemplatesRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			id:   "3f1c9a2e",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM templates WHERE id = \?`).
					WithArgs("3f1c9a2e").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: false,
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM templates WHERE id = \?`).
					WithArgs("missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: true,
		},
		{
			name: "database error",
			id:   "3f1c9a2e",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM templates WHERE id = \?`).
					WithArgs("3f1c9a2e").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.DeleteByID(context.Background(), tt.id)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
