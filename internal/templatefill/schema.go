// Package templatefill mutates a pre-authored .docx lesson-plan template
// in place: text and checkbox content changes, layout and styling do not.
package templatefill

import "github.com/lessonlab/backend/internal/inference"

// Field names the logical cells of the CTE weekly template
type Field string

const (
	FieldWeek            Field = "week"
	FieldCourseTitle     Field = "course_title"
	FieldTopic           Field = "topic"
	FieldDuration        Field = "duration"
	FieldStandards       Field = "standards"
	FieldOverview        Field = "overview"
	FieldMaterials       Field = "materials"
	FieldProcedures      Field = "procedures"
	FieldMethods         Field = "methods"
	FieldAssessment      Field = "assessment"
	FieldDifferentiation Field = "differentiation"
	FieldCurriculum      Field = "curriculum"
	FieldEmbeddedCredit  Field = "embedded_credit"
	FieldOtherAreas      Field = "other_areas"
	FieldEvaluation      Field = "evaluation"
)

// Coord addresses a table cell by zero-based row and column index
type Coord struct {
	Row int
	Col int
}

// templateRowCount is the number of rows the template's body table must
// have. Even rows carry section labels; the odd rows listed in the schema
// carry fillable content.
const templateRowCount = 18

// schema maps every logical field onto its fixed cell coordinate. The
// layout is a hard precondition of template filling: NewFiller validates
// it once against the actual table before any fill is attempted.
var schema = map[Field]Coord{
	FieldWeek:            {Row: 1, Col: 0},
	FieldCourseTitle:     {Row: 1, Col: 1},
	FieldTopic:           {Row: 2, Col: 0},
	FieldDuration:        {Row: 2, Col: 1},
	FieldStandards:       {Row: 5, Col: 0},
	FieldOverview:        {Row: 7, Col: 0},
	FieldMaterials:       {Row: 7, Col: 1},
	FieldProcedures:      {Row: 9, Col: 0},
	FieldMethods:         {Row: 11, Col: 0},
	FieldAssessment:      {Row: 13, Col: 0},
	FieldDifferentiation: {Row: 13, Col: 1},
	FieldCurriculum:      {Row: 15, Col: 0},
	FieldEmbeddedCredit:  {Row: 15, Col: 1},
	FieldOtherAreas:      {Row: 17, Col: 0},
	FieldEvaluation:      {Row: 17, Col: 1},
}

// Checkbox labels as they appear in the template, one map per checkbox
// cell. The template prints each option as "___ <label>"; filling turns
// the underscores into an X for selected keys and leaves the rest alone.
// Label text must match the template exactly or marking silently no-ops.

var materialLabels = map[inference.Key]string{
	inference.KeyTextbook:       "Textbook",
	inference.KeyHandouts:       "Handouts/Worksheets",
	inference.KeyComputer:       "Computer/Software",
	inference.KeyProjector:      "Projector/Display",
	inference.KeyWhiteboard:     "Whiteboard",
	inference.KeyLabMaterials:   "Lab Materials",
	inference.KeyOtherEquipment: "Other Equipment",
}

var methodLabels = map[inference.Key]string{
	inference.KeyLecture:       "Lecture",
	inference.KeyDiscussion:    "Class Discussion",
	inference.KeyDemonstration: "Demonstration",
	inference.KeyGroupWork:     "Group Work",
	inference.KeyHandsOn:       "Hands-On Practice",
	inference.KeyProjectBased:  "Project-Based Learning",
	inference.KeyIndependent:   "Independent Work",
}

var assessmentLabels = map[inference.Key]string{
	inference.KeyObservation:   "Teacher Observation",
	inference.KeyWrittenWork:   "Written Work",
	inference.KeyQuizTest:      "Quiz/Test",
	inference.KeyProjectWork:   "Project",
	inference.KeyPresentation:  "Presentation",
	inference.KeyRubric:        "Rubric",
	inference.KeyParticipation: "Participation",
}

var curriculumLabels = map[inference.Key]string{
	inference.KeyMath:          "Mathematics",
	inference.KeyScience:       "Science",
	inference.KeyReading:       "Reading",
	inference.KeyWriting:       "Writing",
	inference.KeyTechnology:    "Technology",
	inference.KeyEmployability: "Employability Skills",
}

var otherAreaLabels = map[inference.Key]string{
	inference.KeySafety:           "Safety",
	inference.KeyTeamwork:         "Teamwork",
	inference.KeyCriticalThinking: "Critical Thinking",
	inference.KeyCommunication:    "Communication",
	inference.KeyTimeManagement:   "Time Management",
}
