package templatefill

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lessonlab/backend/assets"
	"github.com/lessonlab/backend/internal/inference"
	"github.com/lessonlab/backend/internal/models"
)

// documentXMLFrom extracts the main document part from docx bytes
func documentXMLFrom(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	for _, file := range zr.File {
		if file.Name != documentPartName {
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		defer rc.Close()

		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}

	t.Fatalf("archive has no %s part", documentPartName)
	return ""
}

// zipWithParts builds a minimal archive from part name to content
func zipWithParts(t *testing.T, parts map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func fillTestPlan() *models.LessonPlanInput {
	return &models.LessonPlanInput{
		Week:               7,
		Unit:               "Video Production II",
		StandardsAlignment: "CTE.AME.A2.1 shot composition",
		FormativeCheck:     "Thumbs check after the framing demo",
		SummativeNote:      "Framing quiz on Friday",
		Days: []models.DayPlan{
			{
				Topic:            "Interview Framing",
				Overview:         "Students frame a seated interview using the rule of thirds.",
				ContentStandards: "CTE.AME.A2.3 interview technique",
				Schedule: []models.ScheduleItem{
					{Time: "8:00", Name: "Warm-up", Description: "Review camera terms"},
					{Time: "8:15", Name: "Framing demo", Description: "Rule of thirds on the studio monitor"},
				},
				Differentiation: models.Differentiation{
					Advanced:   "Add a second camera angle",
					Struggling: "Use the framing guide card",
					ELL:        "Vocabulary card with labeled diagram",
				},
			},
			{
				Topic:    "Tripod and Lighting Setup",
				DayLabel: "Lab Day",
				Overview: "Set up the tripod and lighting rig for a two-person interview.",
				Schedule: []models.ScheduleItem{
					{Time: "8:00", Name: "Setup", Description: "Assemble the tripod and lighting kit"},
				},
				Differentiation: models.Differentiation{
					Advanced:   "Three-point lighting",
					Struggling: "Checklist walkthrough",
					ELL:        "Picture-based setup steps",
				},
			},
		},
	}
}

func TestNewFiller(t *testing.T) {
	tests := []struct {
		name     string
		template []byte
		wantErr  bool
	}{
		{
			name:     "default template passes validation",
			template: assets.DefaultTemplate,
			wantErr:  false,
		},
		{
			name:     "not a zip archive",
			template: []byte("this is not a docx"),
			wantErr:  true,
		},
		{
			name:     "empty bytes",
			template: nil,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filler, err := NewFiller(tt.template, zap.NewNop())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, filler)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, filler)
			}
		})
	}
}

func TestNewFiller_MissingDocumentPart(t *testing.T) {
	template := zipWithParts(t, map[string]string{
		"word/styles.xml": "<w:styles/>",
	})

	filler, err := NewFiller(template, zap.NewNop())

	assert.Nil(t, filler)
	assert.ErrorIs(t, err, ErrMissingDocumentPart)
}

func TestNewFiller_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name        string
		documentXML string
		wantReason  string
	}{
		{
			name:        "body has no table",
			documentXML: `<w:document><w:body><w:p/></w:body></w:document>`,
			wantReason:  "no table",
		},
		{
			name: "wrong row count",
			documentXML: `<w:document><w:body><w:tbl>` +
				`<w:tr><w:tc><w:p/></w:tc></w:tr>` +
				`<w:tr><w:tc><w:p/></w:tc></w:tr>` +
				`<w:tr><w:tc><w:p/></w:tc></w:tr>` +
				`</w:tbl></w:body></w:document>`,
			wantReason: "expected 18 table rows, found 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := zipWithParts(t, map[string]string{
				documentPartName: tt.documentXML,
			})

			filler, err := NewFiller(template, zap.NewNop())

			assert.Nil(t, filler)
			var mismatch *SchemaMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Contains(t, mismatch.Error(), tt.wantReason)
		})
	}
}

func TestFillDay_TextCells(t *testing.T) {
	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	filled, err := filler.FillDay(fillTestPlan(), 0)
	require.NoError(t, err)

	xml := documentXMLFrom(t, filled)

	assert.Contains(t, xml, "Week 7")
	assert.Contains(t, xml, "Video Production II")
	assert.Contains(t, xml, "Interview Framing")
	assert.Contains(t, xml, "1 Day (Monday)")
	assert.Contains(t, xml, "CTE.AME.A2.3 interview technique")
	assert.Contains(t, xml, "Students frame a seated interview using the rule of thirds.")
	assert.Contains(t, xml, "8:00 - Warm-up: Review camera terms")
	assert.Contains(t, xml, "8:15 - Framing demo: Rule of thirds on the studio monitor")
	assert.Contains(t, xml, "Advanced: Add a second camera angle")
	assert.Contains(t, xml, "Struggling: Use the framing guide card")
	assert.Contains(t, xml, "ELL: Vocabulary card with labeled diagram")
	assert.Contains(t, xml, "CTE.AME.A2.1 shot composition")
	assert.Contains(t, xml, "Thumbs check after the framing demo")
	assert.Contains(t, xml, "Framing quiz on Friday")
}

func TestFillDay_DayLabelInDuration(t *testing.T) {
	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	filled, err := filler.FillDay(fillTestPlan(), 1)
	require.NoError(t, err)

	xml := documentXMLFrom(t, filled)
	assert.Contains(t, xml, "1 Day (Lab Day)")
	assert.Contains(t, xml, "Tripod and Lighting Setup")
}

func TestFillDay_OverviewFallback(t *testing.T) {
	plan := fillTestPlan()
	plan.Days[0].Overview = ""

	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	filled, err := filler.FillDay(plan, 0)
	require.NoError(t, err)

	xml := documentXMLFrom(t, filled)
	assert.Contains(t, xml, "This lesson introduces Interview Framing.")
}

func TestFillDay_StandardsFallBackToWeekAlignment(t *testing.T) {
	plan := fillTestPlan()
	plan.Days[0].ContentStandards = ""

	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	filled, err := filler.FillDay(plan, 0)
	require.NoError(t, err)

	xml := documentXMLFrom(t, filled)
	assert.NotContains(t, xml, "CTE.AME.A2.3")
	assert.Contains(t, xml, "CTE.AME.A2.1 shot composition")
}

func TestFillDay_ChecksInferredBoxes(t *testing.T) {
	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	// Day 2 mentions tripod and lighting but never a textbook
	filled, err := filler.FillDay(fillTestPlan(), 1)
	require.NoError(t, err)

	xml := documentXMLFrom(t, filled)

	assert.Contains(t, xml, "X Other Equipment")
	assert.NotContains(t, xml, "___ Other Equipment")
	assert.Contains(t, xml, "___ Textbook")
	assert.NotContains(t, xml, "X Textbook")
}

func TestFillDay_StripsRedGuidance(t *testing.T) {
	require.Contains(t, documentXMLFrom(t, assets.DefaultTemplate), "FF0000")

	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	filled, err := filler.FillDay(fillTestPlan(), 0)
	require.NoError(t, err)

	xml := documentXMLFrom(t, filled)
	assert.NotContains(t, xml, "FF0000")
	assert.NotContains(t, xml, "Brief overview of the lesson")
	assert.NotContains(t, xml, "Describe the lesson procedures step by step")
}

func TestFillDay_DayIndexError(t *testing.T) {
	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	tests := []struct {
		name  string
		index int
	}{
		{name: "past the end", index: 5},
		{name: "negative", index: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled, err := filler.FillDay(fillTestPlan(), tt.index)

			assert.Nil(t, filled)
			var dayErr *DayIndexError
			require.ErrorAs(t, err, &dayErr)
			assert.Equal(t, tt.index, dayErr.Index)
			assert.Equal(t, 2, dayErr.Days)
		})
	}

	t.Run("message names the range", func(t *testing.T) {
		_, err := filler.FillDay(fillTestPlan(), 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "day index 5")
		assert.Contains(t, err.Error(), "2 days")
	})
}

func TestFillDay_PreservesOtherParts(t *testing.T) {
	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	filled, err := filler.FillDay(fillTestPlan(), 0)
	require.NoError(t, err)

	original, err := zip.NewReader(bytes.NewReader(assets.DefaultTemplate), int64(len(assets.DefaultTemplate)))
	require.NoError(t, err)
	result, err := zip.NewReader(bytes.NewReader(filled), int64(len(filled)))
	require.NoError(t, err)

	require.Equal(t, len(original.File), len(result.File))
	for i, origFile := range original.File {
		assert.Equal(t, origFile.Name, result.File[i].Name)
		if origFile.Name == documentPartName {
			continue
		}

		rc, err := result.File[i].Open()
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()

		rc, err = origFile.Open()
		require.NoError(t, err)
		want, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()

		assert.Equal(t, want, got, "part %s changed", origFile.Name)
	}
}

func TestFillDay_Deterministic(t *testing.T) {
	filler, err := NewFiller(assets.DefaultTemplate, zap.NewNop())
	require.NoError(t, err)

	first, err := filler.FillDay(fillTestPlan(), 0)
	require.NoError(t, err)
	second, err := filler.FillDay(fillTestPlan(), 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatProcedures(t *testing.T) {
	tests := []struct {
		name  string
		items []models.ScheduleItem
		want  string
	}{
		{
			name: "one line per activity",
			items: []models.ScheduleItem{
				{Time: "8:00", Name: "Warm-up", Description: "Review terms"},
				{Time: "8:15", Name: "Demo", Description: "Shutter speed"},
			},
			want: "8:00 - Warm-up: Review terms\n8:15 - Demo: Shutter speed",
		},
		{
			name: "blank entries are dropped",
			items: []models.ScheduleItem{
				{Time: "8:00", Name: "Warm-up", Description: "Review terms"},
				{},
				{Time: "", Name: "", Description: "orphaned description"},
			},
			want: "8:00 - Warm-up: Review terms",
		},
		{
			name: "entry with only a time survives",
			items: []models.ScheduleItem{
				{Time: "9:00"},
			},
			want: "9:00 - : ",
		},
		{
			name:  "no items",
			items: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatProcedures(tt.items))
		})
	}
}

func TestSetCellText_SynthesizesRunInEmptyCell(t *testing.T) {
	template := zipWithParts(t, map[string]string{
		documentPartName: `<w:document><w:body><w:tbl><w:tr><w:tc><w:p/></w:tc></w:tr></w:tbl></w:body></w:document>`,
	})

	doc, err := documentPart(template)
	require.NoError(t, err)
	rows, err := bodyTableRows(doc)
	require.NoError(t, err)

	cell := cellAt(rows, Coord{Row: 0, Col: 0})
	require.NotNil(t, cell)
	setCellText(cell, "synthesized content")

	out, err := doc.WriteToBytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "synthesized content")
}

func TestMarkCheckboxes_SurvivesSplitRuns(t *testing.T) {
	// An editor may split a label across runs; runs merge before matching
	template := zipWithParts(t, map[string]string{
		documentPartName: `<w:document><w:body><w:tbl><w:tr><w:tc>` +
			`<w:p><w:r><w:t xml:space="preserve">___ Other </w:t></w:r><w:r><w:t>Equipment</w:t></w:r></w:p>` +
			`<w:p><w:r><w:t xml:space="preserve">___ Text</w:t></w:r><w:r><w:t>book</w:t></w:r></w:p>` +
			`</w:tc></w:tr></w:tbl></w:body></w:document>`,
	})

	doc, err := documentPart(template)
	require.NoError(t, err)
	rows, err := bodyTableRows(doc)
	require.NoError(t, err)

	cell := cellAt(rows, Coord{Row: 0, Col: 0})
	require.NotNil(t, cell)
	markCheckboxes(cell, materialLabels, map[inference.Key]bool{
		inference.KeyOtherEquipment: true,
	})

	out, err := doc.WriteToBytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "X Other Equipment")
	assert.Contains(t, string(out), "___ Textbook")
}
