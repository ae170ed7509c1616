package docgen

import (
	"fmt"
	"strings"

	"github.com/lessonlab/backend/internal/models"
)

// defaultAnswerLines is the number of blank write-in lines under each
// question in a student handout
const defaultAnswerLines = 3

// StudentHandout assembles one student-facing handout document
func (g *Generator) StudentHandout(handout *models.StudentHandout) ([]byte, error) {
	c := g.components
	doc := NewDocument(g.theme)

	title := handout.Title
	if title == "" {
		title = handout.Name
	}
	doc.Add(c.StudentHeaderBanner(title, handout.Subtitle))
	doc.Add(c.Spacer())

	if handout.Instructions != "" {
		doc.Add(c.ContentBox([]string{handout.Instructions}, g.theme.ShadeLight, true))
		doc.Add(c.Spacer())
	}

	for _, section := range handout.Sections {
		doc.Add(c.SectionHeader(section.Heading, 1))

		if section.Content != "" {
			doc.Add(paraXML("", runXML(section.Content, runFormat{})))
		}

		if len(section.Items) > 0 {
			if section.Numbered {
				doc.Add(c.NumberedList(section.Items))
			} else {
				doc.Add(c.BulletList(section.Items))
			}
		}

		for i := 0; i < section.BlankLines; i++ {
			doc.Add(paraXML(`<w:spacing w:after="200"/>`,
				runXML(strings.Repeat("_", 72), runFormat{color: g.theme.Border})))
		}

		doc.Add(c.Spacer())
	}

	if len(handout.Questions) > 0 {
		doc.Add(c.SectionHeader("Questions", 1))
		for i, q := range handout.Questions {
			doc.Add(c.QuestionBlock(q, i+1, defaultAnswerLines))
		}
		doc.Add(c.Spacer())
	}

	if len(handout.Vocabulary) > 0 {
		doc.Add(c.SectionHeader("Vocabulary", 1))
		doc.Add(c.CardGrid(vocabularyCards(handout.Vocabulary)))
		doc.Add(c.Spacer())
	}

	if len(handout.Tips) > 0 {
		doc.Add(c.NoteBox("Tips", handout.Tips))
	}

	return doc.Bytes()
}

// StudentHandoutFilename derives the output filename for a handout
func StudentHandoutFilename(handout *models.StudentHandout) string {
	return fmt.Sprintf("%s_StudentHandout.docx", Slugify(handout.Name))
}
