package services

import (
	"context"
	"fmt"

	"github.com/lessonlab/backend/internal/docgen"
	"github.com/lessonlab/backend/internal/models"
	"github.com/lessonlab/backend/internal/templatefill"
	"go.uber.org/zap"
)

// TemplateLoader resolves a template identifier to document bytes.
// Implementations never fail: unresolvable IDs yield the default template.
type TemplateLoader interface {
	Load(ctx context.Context, id string) []byte
}

// GenerationService orchestrates document generation for a lesson plan
type GenerationService struct {
	templates TemplateLoader
	theme     docgen.Theme
	logger    *zap.Logger
}

// NewGenerationService creates a new generation service
func NewGenerationService(templates TemplateLoader, theme docgen.Theme, logger *zap.Logger) *GenerationService {
	return &GenerationService{
		templates: templates,
		theme:     theme,
		logger:    logger,
	}
}

// GenerateAllDocuments produces the full document set for a lesson plan:
// one daily plan per day (template-filled when the template parses, else
// scratch-generated), one weekly teacher handout, and one document per
// student handout. A failed template fill degrades to scratch generation
// for that day; a failed student handout is logged and skipped. Partial
// output is always preferred over aborting the batch.
func (s *GenerationService) GenerateAllDocuments(ctx context.Context, plan *models.LessonPlanInput, templateID string) ([]models.GeneratedFile, error) {
	if plan == nil || len(plan.Days) == 0 {
		return nil, fmt.Errorf("lesson plan must contain at least one day")
	}

	filler := s.buildFiller(ctx, templateID)
	generator := docgen.NewGenerator(s.theme)

	files := make([]models.GeneratedFile, 0, len(plan.Days)+1+len(plan.StudentHandouts))

	// Daily plans stay in calendar order
	for i := range plan.Days {
		content, err := s.generateDay(filler, generator, plan, i)
		if err != nil {
			return nil, err
		}
		files = append(files, models.GeneratedFile{
			Name:     docgen.DayDocumentFilename(plan, i),
			Content:  content,
			MimeType: models.DocxMimeType,
			Type:     models.FileTypeLessonPlan,
		})
	}

	teacherContent, err := generator.TeacherHandout(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to generate teacher handout: %w", err)
	}
	files = append(files, models.GeneratedFile{
		Name:     docgen.TeacherHandoutFilename(plan),
		Content:  teacherContent,
		MimeType: models.DocxMimeType,
		Type:     models.FileTypeTeacherHandout,
	})

	files = append(files, s.generateStudentHandouts(generator, plan.StudentHandouts)...)

	return files, nil
}

// buildFiller loads the requested template and constructs a filler for
// it. A template that fails validation yields a nil filler, which routes
// every day through scratch generation instead.
func (s *GenerationService) buildFiller(ctx context.Context, templateID string) *templatefill.Filler {
	templateBytes := s.templates.Load(ctx, templateID)

	filler, err := templatefill.NewFiller(templateBytes, s.logger)
	if err != nil {
		s.logger.Warn("template unusable, generating all days from scratch",
			zap.String("template_id", templateID),
			zap.Error(err))
		return nil
	}
	return filler
}

// generateDay produces a single daily plan, preferring template fill and
// falling back to the scratch generator on any fill error
func (s *GenerationService) generateDay(filler *templatefill.Filler, generator *docgen.Generator, plan *models.LessonPlanInput, dayIndex int) ([]byte, error) {
	if filler != nil {
		content, err := filler.FillDay(plan, dayIndex)
		if err == nil {
			return content, nil
		}
		s.logger.Warn("template fill failed, falling back to scratch generation",
			zap.Int("day_index", dayIndex),
			zap.Error(err))
	}

	content, err := generator.DayDocument(plan, dayIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to generate day %d: %w", dayIndex, err)
	}
	return content, nil
}

// generateStudentHandouts renders all student handouts concurrently.
// Each handout fails independently: a bad one is logged and skipped,
// the rest of the batch proceeds. Results keep input order.
func (s *GenerationService) generateStudentHandouts(generator *docgen.Generator, handouts []models.StudentHandout) []models.GeneratedFile {
	if len(handouts) == 0 {
		return nil
	}

	type handoutResult struct {
		index int
		file  models.GeneratedFile
		err   error
	}

	resultChan := make(chan handoutResult, len(handouts))
	for i := range handouts {
		go func(index int, handout *models.StudentHandout) {
			content, err := generator.StudentHandout(handout)
			if err != nil {
				resultChan <- handoutResult{index: index, err: err}
				return
			}
			resultChan <- handoutResult{
				index: index,
				file: models.GeneratedFile{
					Name:     docgen.StudentHandoutFilename(handout),
					Content:  content,
					MimeType: models.DocxMimeType,
					Type:     models.FileTypeStudentHandout,
				},
			}
		}(i, &handouts[i])
	}

	ordered := make([]*models.GeneratedFile, len(handouts))
	for range handouts {
		result := <-resultChan
		if result.err != nil {
			s.logger.Error("failed to generate student handout",
				zap.String("name", handouts[result.index].Name),
				zap.Error(result.err))
			continue
		}
		file := result.file
		ordered[result.index] = &file
	}

	files := make([]models.GeneratedFile, 0, len(handouts))
	for _, file := range ordered {
		if file != nil {
			files = append(files, *file)
		}
	}
	return files
}
