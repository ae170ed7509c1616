package docgen

import (
	"fmt"
	"strings"
)

// Card is a term/definition pair rendered by CardGrid
type Card struct {
	Term       string
	Definition string
}

// LabeledCard is a colored card rendered by ThreeColumnCards
type LabeledCard struct {
	Label   string
	Content string
}

// ScheduleRow is one row of a schedule table
type ScheduleRow struct {
	Time        string
	Activity    string
	Description string
}

// Components is the styled fragment builder library. All builders are
// pure: the same content and theme always produce the same fragment.
// None of them validate input; empty content yields an empty fragment
// and callers omit sections they do not want.
type Components struct {
	theme Theme
}

// NewComponents creates a fragment builder library for the given theme
func NewComponents(theme Theme) Components {
	return Components{theme: theme}
}

// PageBreak returns an explicit page break
func (c Components) PageBreak() string {
	return pageBreakXML()
}

// Spacer returns an empty paragraph used between sections
func (c Components) Spacer() string {
	return emptyParaXML()
}

// SectionHeader builds a single-row header with a colored accent flag
// beside heading text. Level selects one of two size tiers.
func (c Components) SectionHeader(text string, level int) string {
	if text == "" {
		return ""
	}

	size := c.theme.HeadingSize
	if level > 1 {
		size = c.theme.SubheadSize
	}

	flag := tcXML(144, c.theme.Accent)
	label := tcXML(c.theme.ContentWidth()-144, "",
		paraXML(`<w:spacing w:after="40"/>`,
			runXML(text, runFormat{bold: true, color: c.theme.Primary, size: size})))

	return tblXML([]int{144, c.theme.ContentWidth() - 144}, "", trXML(flag, label))
}

// ContentBox wraps paragraphs of text in a single-cell shaded box
func (c Components) ContentBox(paragraphs []string, bgColor string, hasBorder bool) string {
	if len(paragraphs) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		blocks = append(blocks, paraXML("", runXML(p, runFormat{})))
	}

	border := ""
	if hasBorder {
		border = c.theme.Border
	}

	width := c.theme.ContentWidth()
	return tblXML([]int{width}, border, trXML(tcXML(width, bgColor, blocks...)))
}

// NoteBox renders labeled note content in the theme's note shading
func (c Components) NoteBox(label string, paragraphs []string) string {
	if len(paragraphs) == 0 {
		return ""
	}

	blocks := []string{paraXML("", runXML(label, runFormat{bold: true, color: c.theme.Primary}))}
	for _, p := range paragraphs {
		blocks = append(blocks, paraXML("", runXML(p, runFormat{})))
	}

	width := c.theme.ContentWidth()
	return tblXML([]int{width}, c.theme.Border, trXML(tcXML(width, c.theme.NoteShade, blocks...)))
}

// NumberedBadgeList renders each item beside a 1-based numeric badge cell,
// with alternating row shading
func (c Components) NumberedBadgeList(items []string) string {
	if len(items) == 0 {
		return ""
	}

	badgeWidth := 576
	contentWidth := c.theme.ContentWidth() - badgeWidth

	rows := make([]string, 0, len(items))
	for i, item := range items {
		fill := ""
		if i%2 == 1 {
			fill = c.theme.ShadeAlt
		}
		badge := tcXML(badgeWidth, c.theme.Primary,
			paraXML(centered, runXML(fmt.Sprintf("%d", i+1),
				runFormat{bold: true, color: c.theme.TextLight, size: c.theme.BadgeSize})))
		content := tcXML(contentWidth, fill, paraXML("", runXML(item, runFormat{})))
		rows = append(rows, trXML(badge, content))
	}

	return tblXML([]int{badgeWidth, contentWidth}, c.theme.Border, rows...)
}

// CardGrid lays term/definition cards out in a fixed two-column grid,
// pairing cards by consecutive index. An odd count leaves an empty
// trailing cell; shading alternates every two rows of cards.
func (c Components) CardGrid(cards []Card) string {
	if len(cards) == 0 {
		return ""
	}

	half := c.theme.ContentWidth() / 2
	rows := make([]string, 0, (len(cards)+1)/2)

	for i := 0; i < len(cards); i += 2 {
		fill := ""
		if (i/2)%2 == 1 {
			fill = c.theme.ShadeAlt
		}

		left := c.cardCell(half, fill, cards[i])
		right := tcXML(half, fill)
		if i+1 < len(cards) {
			right = c.cardCell(half, fill, cards[i+1])
		}
		rows = append(rows, trXML(left, right))
	}

	return tblXML([]int{half, half}, c.theme.Border, rows...)
}

func (c Components) cardCell(width int, fill string, card Card) string {
	return tcXML(width, fill,
		paraXML(`<w:spacing w:after="20"/>`, runXML(card.Term, runFormat{bold: true, color: c.theme.Primary})),
		paraXML("", runXML(card.Definition, runFormat{})))
}

// ChecklistGrid renders a two-column grid of checkbox-prefixed items with
// the same odd-count padding rule as CardGrid
func (c Components) ChecklistGrid(items []string) string {
	if len(items) == 0 {
		return ""
	}

	half := c.theme.ContentWidth() / 2
	rows := make([]string, 0, (len(items)+1)/2)

	for i := 0; i < len(items); i += 2 {
		left := tcXML(half, "", paraXML("", runXML("[ ] "+items[i], runFormat{})))
		right := tcXML(half, "")
		if i+1 < len(items) {
			right = tcXML(half, "", paraXML("", runXML("[ ] "+items[i+1], runFormat{})))
		}
		rows = append(rows, trXML(left, right))
	}

	return tblXML([]int{half, half}, c.theme.Border, rows...)
}

// ScheduleTable renders a three-column Time/Activity/Description table
// with a colored header row and zebra-striped body, preserving input
// order exactly
func (c Components) ScheduleTable(items []ScheduleRow) string {
	if len(items) == 0 {
		return ""
	}

	width := c.theme.ContentWidth()
	widths := []int{width / 6, width / 4, width - width/6 - width/4}

	header := trXML(
		c.headCell(widths[0], "Time"),
		c.headCell(widths[1], "Activity"),
		c.headCell(widths[2], "Description"),
	)

	rows := []string{header}
	for i, item := range items {
		fill := ""
		if i%2 == 1 {
			fill = c.theme.ShadeAlt
		}
		rows = append(rows, trXML(
			tcXML(widths[0], fill, paraXML("", runXML(item.Time, runFormat{}))),
			tcXML(widths[1], fill, paraXML("", runXML(item.Activity, runFormat{bold: true}))),
			tcXML(widths[2], fill, paraXML("", runXML(item.Description, runFormat{}))),
		))
	}

	return tblXML(widths, c.theme.Border, rows...)
}

func (c Components) headCell(width int, label string) string {
	return tcXML(width, c.theme.Primary,
		paraXML("", runXML(label, runFormat{bold: true, color: c.theme.TextLight, size: c.theme.TableHeadSize})))
}

// QuestionBlock renders a numbered question followed by blank
// underscore-filled answer lines
func (c Components) QuestionBlock(question string, index, answerLines int) string {
	var b strings.Builder
	b.WriteString(paraXML(`<w:spacing w:before="120" w:after="60"/>`,
		runXML(fmt.Sprintf("%d. ", index), runFormat{bold: true, color: c.theme.Primary}),
		runXML(question, runFormat{})))
	for i := 0; i < answerLines; i++ {
		b.WriteString(paraXML(`<w:spacing w:after="160"/>`,
			runXML(strings.Repeat("_", 72), runFormat{color: c.theme.Border})))
	}
	return b.String()
}

// ThreeColumnCards renders exactly three fixed-width colored cells side by
// side. Empty card content renders as "N/A".
func (c Components) ThreeColumnCards(cards [3]LabeledCard) string {
	third := c.theme.ContentWidth() / 3
	widths := []int{third, third, third}

	cells := make([]string, 3)
	for i, card := range cards {
		content := card.Content
		if content == "" {
			content = "N/A"
		}
		cells[i] = tcXML(third, c.theme.CardColors[i],
			paraXML(`<w:spacing w:after="20"/>`, runXML(card.Label, runFormat{bold: true, color: c.theme.Primary})),
			paraXML("", runXML(content, runFormat{})))
	}

	return tblXML(widths, c.theme.Border, trXML(cells...))
}

// BulletList renders items as bulleted list paragraphs
func (c Components) BulletList(items []string) string {
	return c.listParagraphs(items, 1)
}

// NumberedList renders items as numbered list paragraphs
func (c Components) NumberedList(items []string) string {
	return c.listParagraphs(items, 2)
}

func (c Components) listParagraphs(items []string, numID int) string {
	var b strings.Builder
	for _, item := range items {
		props := fmt.Sprintf(`<w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, numID)
		b.WriteString(paraXML(props, runXML(item, runFormat{})))
	}
	return b.String()
}

// LabeledParagraph renders a bold inline label followed by text
func (c Components) LabeledParagraph(label, text string) string {
	if text == "" {
		return ""
	}
	return paraXML("",
		runXML(label+": ", runFormat{bold: true, color: c.theme.Primary}),
		runXML(text, runFormat{}))
}

// TeacherHeaderBanner renders the two-row title block for teacher handouts
func (c Components) TeacherHeaderBanner(title, subtitle string) string {
	return c.banner(title, subtitle)
}

// StudentHeaderBanner renders the title block for student handouts
func (c Components) StudentHeaderBanner(title, subtitle string) string {
	return c.banner(title, subtitle)
}

// DayHeaderBanner renders the single-row day title block
func (c Components) DayHeaderBanner(dayName, topic string) string {
	width := c.theme.ContentWidth()
	text := dayName
	if topic != "" {
		text = dayName + ": " + topic
	}
	cell := tcXML(width, c.theme.Primary,
		paraXML(`<w:spacing w:before="40" w:after="40"/>`,
			runXML(text, runFormat{bold: true, color: c.theme.TextLight, size: c.theme.SubtitleSize})))
	return tblXML([]int{width}, "", trXML(cell))
}

func (c Components) banner(title, subtitle string) string {
	width := c.theme.ContentWidth()

	blocks := []string{paraXML(centered+`<w:spacing w:before="80" w:after="40"/>`,
		runXML(title, runFormat{bold: true, color: c.theme.TextLight, size: c.theme.BannerSize}))}
	if subtitle != "" {
		blocks = append(blocks, paraXML(centered+`<w:spacing w:after="80"/>`,
			runXML(subtitle, runFormat{color: c.theme.TextLight, size: c.theme.SubtitleSize})))
	}

	cell := tcXML(width, c.theme.Primary, blocks...)
	return tblXML([]int{width}, "", trXML(cell))
}
