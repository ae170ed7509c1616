package models

import "time"

// DefaultTemplateID is the reserved identifier that resolves to the
// bundled default CTE weekly template
const DefaultTemplateID = "default"

// TemplateMetadata represents an uploaded .docx template in the database.
// The bytes themselves live in file storage under the same ID.
type TemplateMetadata struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	ContentType string    `json:"contentType" db:"content_type"`
	Size        int64     `json:"size" db:"size"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
