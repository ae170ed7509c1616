package templatefill

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/lessonlab/backend/internal/inference"
	"github.com/lessonlab/backend/internal/models"
	"go.uber.org/zap"
)

// documentPartName is the archive entry holding the main document XML
const documentPartName = "word/document.xml"

// ErrMissingDocumentPart indicates the template archive has no main
// document part to operate on
var ErrMissingDocumentPart = errors.New("template archive has no word/document.xml part")

// SchemaMismatchError indicates the template's body table does not match
// the fixed row/column layout the filler addresses
type SchemaMismatchError struct {
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	return "template schema mismatch: " + e.Reason
}

// DayIndexError indicates a caller asked for a day the plan does not have
type DayIndexError struct {
	Index int
	Days  int
}

func (e *DayIndexError) Error() string {
	return fmt.Sprintf("day index %d out of range: plan has %d days", e.Index, e.Days)
}

// Filler fills one lesson day at a time into a validated .docx template.
// The template bytes are parsed fresh for every fill, so a Filler is safe
// to reuse across days and requests.
type Filler struct {
	template []byte
	logger   *zap.Logger
}

// NewFiller validates the template against the positional field schema
// and returns a filler bound to it. Validation failures are returned as
// *SchemaMismatchError so callers can fall back to scratch generation.
func NewFiller(templateBytes []byte, logger *zap.Logger) (*Filler, error) {
	doc, err := documentPart(templateBytes)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}
	return &Filler{template: templateBytes, logger: logger}, nil
}

// FillDay produces filled document bytes for the day at the given
// zero-based index. The template's layout and formatting are preserved;
// only cell text and checkbox glyphs change.
func (f *Filler) FillDay(plan *models.LessonPlanInput, dayIndex int) ([]byte, error) {
	if dayIndex < 0 || dayIndex >= len(plan.Days) {
		return nil, &DayIndexError{Index: dayIndex, Days: len(plan.Days)}
	}
	day := &plan.Days[dayIndex]

	doc, err := documentPart(f.template)
	if err != nil {
		return nil, err
	}
	rows, err := bodyTableRows(doc)
	if err != nil {
		return nil, err
	}

	// Text cells
	for _, fv := range f.dayValues(plan, day, dayIndex) {
		cell := cellAt(rows, schema[fv.field])
		if cell == nil {
			f.logger.Warn("template cell not found, skipping field",
				zap.String("field", string(fv.field)))
			continue
		}
		setCellText(cell, fv.value)
	}

	// Checkbox cells
	selections := inference.Infer(inference.LessonText(day))
	checkboxCells := []struct {
		field    Field
		labels   map[inference.Key]string
		selected map[inference.Key]bool
	}{
		{FieldMaterials, materialLabels, selections.Materials},
		{FieldMethods, methodLabels, selections.Methods},
		{FieldAssessment, assessmentLabels, selections.Assessment},
		{FieldCurriculum, curriculumLabels, selections.Curriculum},
		{FieldOtherAreas, otherAreaLabels, selections.OtherAreas},
	}
	for _, cb := range checkboxCells {
		cell := cellAt(rows, schema[cb.field])
		if cell == nil {
			f.logger.Warn("template checkbox cell not found, skipping",
				zap.String("field", string(cb.field)))
			continue
		}
		markCheckboxes(cell, cb.labels, cb.selected)
	}

	partBytes, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document part: %w", err)
	}
	return rebuildArchive(f.template, partBytes)
}

// fieldValue pairs a schema field with its computed replacement text
type fieldValue struct {
	field Field
	value string
}

// dayValues computes the plain-text replacement for every text cell
func (f *Filler) dayValues(plan *models.LessonPlanInput, day *models.DayPlan, dayIndex int) []fieldValue {
	overview := day.Overview
	if overview == "" {
		overview = fmt.Sprintf("This lesson introduces %s.", day.Topic)
	}

	standards := day.ContentStandards
	if standards == "" {
		standards = plan.StandardsAlignment
	}

	var evaluation []string
	if plan.FormativeCheck != "" {
		evaluation = append(evaluation, plan.FormativeCheck)
	}
	if plan.SummativeNote != "" {
		evaluation = append(evaluation, plan.SummativeNote)
	}

	diff := day.Differentiation
	differentiation := fmt.Sprintf("Advanced: %s\nStruggling: %s\nELL: %s",
		diff.Advanced, diff.Struggling, diff.ELL)

	return []fieldValue{
		{FieldWeek, fmt.Sprintf("Week %d", plan.Week)},
		{FieldCourseTitle, plan.Unit},
		{FieldTopic, day.Topic},
		{FieldDuration, fmt.Sprintf("1 Day (%s)", day.DayName(dayIndex))},
		{FieldStandards, standards},
		{FieldOverview, overview},
		{FieldProcedures, formatProcedures(day.Schedule)},
		{FieldDifferentiation, differentiation},
		{FieldEmbeddedCredit, plan.StandardsAlignment},
		{FieldEvaluation, strings.Join(evaluation, "\n")},
	}
}

// formatProcedures renders the day's schedule as one activity per line.
// Entries with neither a time nor a name are dropped.
func formatProcedures(items []models.ScheduleItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item.Time == "" && item.Name == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s - %s: %s", item.Time, item.Name, item.Description))
	}
	return strings.Join(lines, "\n")
}

// documentPart opens the template archive and parses its main document
// XML into a tree
func documentPart(data []byte) (*etree.Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read template archive: %w", err)
	}

	for _, file := range zr.File {
		if file.Name != documentPartName {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", documentPartName, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", documentPartName, err)
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(content); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", documentPartName, err)
		}
		return doc, nil
	}

	return nil, ErrMissingDocumentPart
}

// bodyTableRows locates the direct rows of the body's first table.
// Only direct children are considered so nested tables cannot shift the
// row addressing.
func bodyTableRows(doc *etree.Document) ([]*etree.Element, error) {
	root := doc.Root()
	if root == nil {
		return nil, &SchemaMismatchError{Reason: "document part has no root element"}
	}
	body := root.SelectElement("w:body")
	if body == nil {
		return nil, &SchemaMismatchError{Reason: "document has no body element"}
	}
	tbl := body.SelectElement("w:tbl")
	if tbl == nil {
		return nil, &SchemaMismatchError{Reason: "document body has no table"}
	}
	return tbl.SelectElements("w:tr"), nil
}

// validateSchema checks the template's table against the positional
// schema once, so fills can rely on the layout afterwards
func validateSchema(doc *etree.Document) error {
	rows, err := bodyTableRows(doc)
	if err != nil {
		return err
	}
	if len(rows) != templateRowCount {
		return &SchemaMismatchError{
			Reason: fmt.Sprintf("expected %d table rows, found %d", templateRowCount, len(rows)),
		}
	}

	fields := make([]Field, 0, len(schema))
	for field := range schema {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })

	for _, field := range fields {
		coord := schema[field]
		cells := rows[coord.Row].SelectElements("w:tc")
		if coord.Col >= len(cells) {
			return &SchemaMismatchError{
				Reason: fmt.Sprintf("row %d has %d cells, field %q needs column %d",
					coord.Row, len(cells), field, coord.Col),
			}
		}
	}
	return nil
}

// cellAt returns the cell at the given coordinate, or nil when the
// coordinate does not resolve
func cellAt(rows []*etree.Element, coord Coord) *etree.Element {
	if coord.Row >= len(rows) {
		return nil
	}
	cells := rows[coord.Row].SelectElements("w:tc")
	if coord.Col >= len(cells) {
		return nil
	}
	return cells[coord.Col]
}

// setCellText splices text into the cell's first run and clears any
// following runs, keeping the first run's surrounding formatting. A cell
// with no run at all gets one synthesized inside its first paragraph.
func setCellText(cell *etree.Element, text string) {
	stripRedGuidance(cell)

	paras := cell.SelectElements("w:p")
	if len(paras) == 0 {
		paras = append(paras, cell.CreateElement("w:p"))
	}

	var runs []*etree.Element
	for _, p := range paras {
		runs = append(runs, p.SelectElements("w:r")...)
	}

	if len(runs) == 0 {
		writeRunText(paras[0].CreateElement("w:r"), text)
		return
	}

	writeRunText(runs[0], text)
	for _, r := range runs[1:] {
		clearRunText(r)
	}
}

// writeRunText replaces a run's text content, turning embedded newlines
// into soft line breaks
func writeRunText(r *etree.Element, text string) {
	clearRunText(r)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.CreateElement("w:br")
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(line)
	}
}

// clearRunText removes a run's text and break children but leaves its
// formatting properties in place
func clearRunText(r *etree.Element) {
	for _, child := range r.ChildElements() {
		if child.Tag == "t" || child.Tag == "br" {
			r.RemoveChild(child)
		}
	}
}

// stripRedGuidance removes red font coloring anywhere in the cell. The
// authored templates mark "fill me in" guidance text in red; filled
// content must not inherit it.
func stripRedGuidance(cell *etree.Element) {
	for _, color := range cell.FindElements(".//w:color") {
		val := color.SelectAttrValue("w:val", "")
		if val == "FF0000" || val == "C00000" || strings.EqualFold(val, "red") {
			if parent := color.Parent(); parent != nil {
				parent.RemoveChild(color)
			}
		}
	}
}

// markCheckboxes replaces the "___ <label>" underscore placeholder with
// an X for every selected key. Unselected labels are left untouched.
// Runs are merged per paragraph first so labels split across runs by the
// editor still match.
func markCheckboxes(cell *etree.Element, labels map[inference.Key]string, selected map[inference.Key]bool) {
	for _, p := range cell.SelectElements("w:p") {
		mergeRunText(p)
	}

	for _, t := range cell.FindElements(".//w:t") {
		text := t.Text()
		for key, label := range labels {
			if !selected[key] {
				continue
			}
			placeholder := "___ " + label
			if strings.Contains(text, placeholder) {
				text = strings.ReplaceAll(text, placeholder, "X "+label)
			}
		}
		t.SetText(text)
	}
}

// mergeRunText concatenates the text of a paragraph's runs into the
// first text-bearing run, clearing the others
func mergeRunText(p *etree.Element) {
	runs := p.SelectElements("w:r")

	var first *etree.Element
	var merged strings.Builder
	for _, r := range runs {
		for _, t := range r.SelectElements("w:t") {
			merged.WriteString(t.Text())
			if first == nil {
				first = r
			}
		}
	}
	if first == nil {
		return
	}

	for _, r := range runs {
		clearRunText(r)
	}
	t := first.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(merged.String())
}

// rebuildArchive writes a copy of the template archive with the document
// part replaced, leaving every other part byte-identical
func rebuildArchive(original, documentXML []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(original), int64(len(original)))
	if err != nil {
		return nil, fmt.Errorf("failed to read template archive: %w", err)
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	for _, file := range zr.File {
		entry, err := zw.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s in archive: %w", file.Name, err)
		}

		if file.Name == documentPartName {
			if _, err := entry.Write(documentXML); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", file.Name, err)
			}
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		if _, err := io.Copy(entry, rc); err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to copy %s: %w", file.Name, err)
		}
		rc.Close()
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
