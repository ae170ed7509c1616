package docgen

import (
	"fmt"

	"github.com/lessonlab/backend/internal/models"
)

// DayDocument assembles a standalone lesson-plan document for a single
// day. The orchestrator uses it as the fallback strategy when template
// filling is unavailable or fails for that day.
func (g *Generator) DayDocument(plan *models.LessonPlanInput, dayIndex int) ([]byte, error) {
	if dayIndex < 0 || dayIndex >= len(plan.Days) {
		return nil, fmt.Errorf("day index %d out of range: plan has %d days", dayIndex, len(plan.Days))
	}

	c := g.components
	doc := NewDocument(g.theme)
	day := &plan.Days[dayIndex]

	doc.Add(c.TeacherHeaderBanner(fmt.Sprintf("Week %d Lesson Plan", plan.Week), plan.Unit))
	doc.Add(c.Spacer())

	g.addDaySections(doc, day, dayIndex)

	if day.ContentStandards != "" {
		doc.Add(c.Spacer())
		doc.Add(c.LabeledParagraph("Content Standards", day.ContentStandards))
	}

	return doc.Bytes()
}

// DayDocumentFilename derives the output filename for a daily plan
func DayDocumentFilename(plan *models.LessonPlanInput, dayIndex int) string {
	topic := ""
	if dayIndex >= 0 && dayIndex < len(plan.Days) {
		topic = plan.Days[dayIndex].Topic
	}
	return fmt.Sprintf("Week%02d_Day%d_%s.docx", plan.Week, dayIndex+1, Slugify(topic))
}

// TeacherHandoutFilename derives the output filename for the weekly
// teacher handout
func TeacherHandoutFilename(plan *models.LessonPlanInput) string {
	return fmt.Sprintf("Week%d_%s_TeacherHandout.docx", plan.Week, Slugify(plan.Unit))
}
