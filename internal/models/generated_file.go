package models

// DocxMimeType is the OOXML wordprocessing MIME type used for every
// generated document
const DocxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// GeneratedFileType tags the role of a generated file within a batch
type GeneratedFileType string

const (
	FileTypeLessonPlan     GeneratedFileType = "lesson_plan"
	FileTypeTeacherHandout GeneratedFileType = "teacher_handout"
	FileTypeStudentHandout GeneratedFileType = "student_handout"
	FileTypePresentation   GeneratedFileType = "presentation"
)

// GeneratedFile represents one produced document.
// Files are constructed once per generation request and handed to the
// caller for storage or upload; no state is kept across requests.
type GeneratedFile struct {
	Name     string            `json:"name"`
	Content  []byte            `json:"-"`
	MimeType string            `json:"mimeType"`
	Type     GeneratedFileType `json:"type"`
}
