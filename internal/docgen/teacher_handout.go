package docgen

import (
	"fmt"
	"sort"

	"github.com/lessonlab/backend/internal/models"
)

// Generator builds complete documents from lesson-plan content using the
// component library. A Generator is stateless between calls; output is a
// pure function of its inputs and theme.
type Generator struct {
	theme      Theme
	components Components
}

// NewGenerator creates a document generator for the given theme
func NewGenerator(theme Theme) *Generator {
	return &Generator{
		theme:      theme,
		components: NewComponents(theme),
	}
}

// TeacherHandout assembles the weekly teacher handout. Every section is
// individually optional: missing content is omitted, never replaced with
// a placeholder, and the call itself never fails on missing fields.
func (g *Generator) TeacherHandout(plan *models.LessonPlanInput) ([]byte, error) {
	c := g.components
	doc := NewDocument(g.theme)

	subtitle := plan.Unit
	if subtitle == "" {
		subtitle = "Weekly Lesson Plan"
	}
	doc.Add(c.TeacherHeaderBanner(fmt.Sprintf("Week %d Teacher Handout", plan.Week), subtitle))
	doc.Add(c.Spacer())

	// Week overview
	var overview []string
	if plan.WeekFocus != "" {
		overview = append(overview, "Focus: "+plan.WeekFocus)
	}
	if plan.WeekOverview != "" {
		overview = append(overview, plan.WeekOverview)
	}
	if len(overview) > 0 {
		doc.Add(c.SectionHeader("Week Overview", 1))
		doc.Add(c.ContentBox(overview, g.theme.ShadeLight, false))
		doc.Add(c.Spacer())
	}

	// Weekly objectives
	if len(plan.WeekObjectives) > 0 {
		doc.Add(c.SectionHeader("Weekly Objectives", 1))
		doc.Add(c.NumberedBadgeList(plan.WeekObjectives))
		doc.Add(c.Spacer())
	}

	// Weekly materials
	if len(plan.WeekMaterials) > 0 {
		doc.Add(c.SectionHeader("Materials Checklist", 1))
		doc.Add(c.ChecklistGrid(plan.WeekMaterials))
		doc.Add(c.Spacer())
	}

	// Assessment triad
	if plan.FormativeCheck != "" || plan.SummativeNote != "" || plan.AssessmentEvidence != "" {
		doc.Add(c.SectionHeader("Assessment", 1))
		doc.Add(c.ThreeColumnCards([3]LabeledCard{
			{Label: "Formative", Content: plan.FormativeCheck},
			{Label: "Summative", Content: plan.SummativeNote},
			{Label: "Evidence", Content: plan.AssessmentEvidence},
		}))
		doc.Add(c.Spacer())
	}

	// One page per day
	for i := range plan.Days {
		if i > 0 {
			doc.Add(c.PageBreak())
		}
		g.addDaySections(doc, &plan.Days[i], i)
	}

	// Week-level teacher notes on their own page
	if len(plan.TeacherNotes) > 0 {
		doc.Add(c.PageBreak())
		doc.Add(c.NoteBox("Teacher Notes", plan.TeacherNotes))
	}

	return doc.Bytes()
}

// addDaySections emits the per-day block shared by the teacher handout and
// the single-day fallback document
func (g *Generator) addDaySections(doc *Document, day *models.DayPlan, position int) {
	c := g.components

	doc.Add(c.DayHeaderBanner(day.DayName(position), day.Topic))
	doc.Add(c.Spacer())

	if day.Overview != "" {
		doc.Add(c.ContentBox([]string{day.Overview}, g.theme.ShadeLight, false))
		doc.Add(c.Spacer())
	}

	if len(day.Objectives) > 0 {
		doc.Add(c.SectionHeader("Objectives", 2))
		doc.Add(c.NumberedBadgeList(day.Objectives))
		doc.Add(c.Spacer())
	}

	if len(day.DayMaterials) > 0 {
		doc.Add(c.LabeledParagraph("Materials", joinItems(day.DayMaterials)))
	}

	if len(day.Schedule) > 0 {
		doc.Add(c.SectionHeader("Schedule", 2))
		doc.Add(c.ScheduleTable(scheduleRows(day.Schedule)))
		doc.Add(c.Spacer())
	}

	if len(day.Vocabulary) > 0 {
		doc.Add(c.SectionHeader("Vocabulary", 2))
		doc.Add(c.CardGrid(vocabularyCards(day.Vocabulary)))
		doc.Add(c.Spacer())
	}

	diff := day.Differentiation
	if diff.Advanced != "" || diff.Struggling != "" || diff.ELL != "" {
		doc.Add(c.SectionHeader("Differentiation", 2))
		doc.Add(c.ThreeColumnCards([3]LabeledCard{
			{Label: "Advanced", Content: diff.Advanced},
			{Label: "Struggling", Content: diff.Struggling},
			{Label: "ELL", Content: diff.ELL},
		}))
		doc.Add(c.Spacer())
	}

	if day.TeacherNotes != "" {
		doc.Add(c.NoteBox("Notes", []string{day.TeacherNotes}))
	}
}

// scheduleRows maps schedule items onto table rows, preserving order
func scheduleRows(items []models.ScheduleItem) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, ScheduleRow{
			Time:        item.Time,
			Activity:    item.Name,
			Description: item.Description,
		})
	}
	return rows
}

// vocabularyCards flattens the vocabulary map into cards with a stable
// term ordering, so repeated generation is byte-identical
func vocabularyCards(vocab map[string]string) []Card {
	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	cards := make([]Card, 0, len(terms))
	for _, term := range terms {
		cards = append(cards, Card{Term: term, Definition: vocab[term]})
	}
	return cards
}

func joinItems(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
