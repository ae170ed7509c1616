package docgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardGrid_OddCountPadsFinalRow(t *testing.T) {
	c := NewComponents(Classic())
	cards := []Card{
		{Term: "Aperture", Definition: "Lens opening size"},
		{Term: "ISO", Definition: "Sensor sensitivity"},
		{Term: "Shutter", Definition: "Exposure duration"},
	}

	out := c.CardGrid(cards)

	assert.Equal(t, 2, strings.Count(out, "<w:tr>"))
	// The padded trailing cell holds a single empty paragraph
	assert.Equal(t, 1, strings.Count(out, "<w:p/>"))
	assert.Contains(t, out, "Aperture")
	assert.Contains(t, out, "Shutter")
}

func TestCardGrid_EvenCountHasNoPadding(t *testing.T) {
	c := NewComponents(Classic())
	cards := []Card{
		{Term: "Aperture", Definition: "Lens opening size"},
		{Term: "ISO", Definition: "Sensor sensitivity"},
	}

	out := c.CardGrid(cards)

	assert.Equal(t, 1, strings.Count(out, "<w:tr>"))
	assert.NotContains(t, out, "<w:p/>")
}

func TestCardGrid_AlternatingRowShading(t *testing.T) {
	theme := Classic()
	c := NewComponents(theme)
	cards := []Card{
		{Term: "a"}, {Term: "b"}, {Term: "c"}, {Term: "d"},
	}

	out := c.CardGrid(cards)

	// Second row of cards (c, d) is shaded; the first is not
	assert.Equal(t, 2, strings.Count(out, theme.ShadeAlt))
}

func TestCardGrid_Empty(t *testing.T) {
	c := NewComponents(Classic())

	assert.Empty(t, c.CardGrid(nil))
}

func TestChecklistGrid(t *testing.T) {
	c := NewComponents(Classic())

	out := c.ChecklistGrid([]string{"Camera", "Tripod", "SD Cards"})

	assert.Equal(t, 2, strings.Count(out, "<w:tr>"))
	assert.Equal(t, 1, strings.Count(out, "<w:p/>"))
	assert.Contains(t, out, "[ ] Camera")
	assert.Contains(t, out, "[ ] SD Cards")
}

func TestNumberedBadgeList(t *testing.T) {
	theme := Classic()
	c := NewComponents(theme)

	out := c.NumberedBadgeList([]string{"First objective", "Second objective", "Third objective"})

	assert.Equal(t, 3, strings.Count(out, "<w:tr>"))
	assert.Contains(t, out, ">1<")
	assert.Contains(t, out, ">3<")
	// Only the middle row is zebra shaded
	assert.Equal(t, 1, strings.Count(out, theme.ShadeAlt))
	assert.Empty(t, c.NumberedBadgeList(nil))
}

func TestScheduleTable(t *testing.T) {
	theme := Classic()
	c := NewComponents(theme)
	rows := []ScheduleRow{
		{Time: "8:00", Activity: "Warm-up", Description: "Vocabulary review"},
		{Time: "8:15", Activity: "Demo", Description: "Teacher models framing"},
		{Time: "8:45", Activity: "Practice", Description: "Partner shooting drills"},
	}

	out := c.ScheduleTable(rows)

	// Header plus one row per item
	assert.Equal(t, 4, strings.Count(out, "<w:tr>"))
	assert.Contains(t, out, ">Time<")
	assert.Contains(t, out, ">Activity<")
	assert.Contains(t, out, ">Description<")

	// Input order preserved top to bottom
	warmup := strings.Index(out, "Warm-up")
	demo := strings.Index(out, ">Demo<")
	practice := strings.Index(out, ">Practice<")
	assert.True(t, warmup < demo && demo < practice)

	assert.Empty(t, c.ScheduleTable(nil))
}

func TestQuestionBlock(t *testing.T) {
	c := NewComponents(Classic())

	out := c.QuestionBlock("What does ISO control?", 3, 2)

	assert.Contains(t, out, "3. ")
	assert.Contains(t, out, "What does ISO control?")
	assert.Equal(t, 2, strings.Count(out, strings.Repeat("_", 72)))
}

func TestThreeColumnCards(t *testing.T) {
	theme := Classic()
	c := NewComponents(theme)

	out := c.ThreeColumnCards([3]LabeledCard{
		{Label: "Advanced", Content: "Extension task"},
		{Label: "Struggling", Content: ""},
		{Label: "ELL", Content: "Vocabulary cards"},
	})

	assert.Equal(t, 3, strings.Count(out, "<w:tc>"))
	assert.Contains(t, out, "N/A")
	for _, color := range theme.CardColors {
		assert.Contains(t, out, color)
	}
}

func TestSectionHeader(t *testing.T) {
	theme := Classic()
	c := NewComponents(theme)

	level1 := c.SectionHeader("Objectives", 1)
	level2 := c.SectionHeader("Objectives", 2)

	assert.Contains(t, level1, theme.Accent)
	assert.Contains(t, level1, `w:val="28"`)
	assert.Contains(t, level2, `w:val="24"`)
	assert.Empty(t, c.SectionHeader("", 1))
}

func TestContentBox(t *testing.T) {
	theme := Classic()
	c := NewComponents(theme)

	out := c.ContentBox([]string{"First paragraph", "Second paragraph"}, theme.ShadeLight, true)

	assert.Contains(t, out, theme.ShadeLight)
	assert.Contains(t, out, "w:tblBorders")
	assert.Contains(t, out, "First paragraph")
	assert.Contains(t, out, "Second paragraph")

	borderless := c.ContentBox([]string{"text"}, "", false)
	assert.NotContains(t, borderless, "w:tblBorders")

	assert.Empty(t, c.ContentBox(nil, theme.ShadeLight, true))
}

func TestLists(t *testing.T) {
	c := NewComponents(Classic())

	bullets := c.BulletList([]string{"one", "two"})
	numbered := c.NumberedList([]string{"one", "two"})

	assert.Equal(t, 2, strings.Count(bullets, `<w:numId w:val="1"/>`))
	assert.Equal(t, 2, strings.Count(numbered, `<w:numId w:val="2"/>`))
	assert.Empty(t, c.BulletList(nil))
}

func TestDayHeaderBanner(t *testing.T) {
	c := NewComponents(Classic())

	assert.Contains(t, c.DayHeaderBanner("Monday", "Exposure"), "Monday: Exposure")
	assert.Contains(t, c.DayHeaderBanner("Monday", ""), ">Monday<")
}

func TestBanner(t *testing.T) {
	c := NewComponents(Classic())

	with := c.TeacherHeaderBanner("Week 3 Teacher Handout", "Camera Basics")
	without := c.StudentHeaderBanner("Worksheet", "")

	assert.Contains(t, with, "Week 3 Teacher Handout")
	assert.Contains(t, with, "Camera Basics")
	assert.Equal(t, 1, strings.Count(without, "<w:p>"))
}

func TestLabeledParagraph(t *testing.T) {
	c := NewComponents(Classic())

	out := c.LabeledParagraph("Materials", "Camera, tripod")

	assert.Contains(t, out, "Materials: ")
	assert.Contains(t, out, "Camera, tripod")
	assert.Empty(t, c.LabeledParagraph("Materials", ""))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "spaces to underscores",
			input:    "Camera Basics",
			expected: "Camera_Basics",
		},
		{
			name:     "punctuation dropped and truncated",
			input:    "Camera Parts & Lighting Guide!!",
			expected: "Camera_Parts_Lighting_Gui",
		},
		{
			name:     "dashes and repeats collapse",
			input:    "intro -- to   editing",
			expected: "intro_to_editing",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    " _week one_ ",
			expected: "week_one",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "symbols only",
			input:    "!?&%",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
			assert.LessOrEqual(t, len(Slugify(tt.input)), maxSlugLen)
		})
	}
}
