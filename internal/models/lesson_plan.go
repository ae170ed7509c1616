package models

import "fmt"

// LessonPlanInput represents a week-level lesson plan produced by the AI
// planning step. Days are ordered and map onto calendar days (Mon...Fri).
type LessonPlanInput struct {
	Week               int              `json:"week"`
	Unit               string           `json:"unit"`
	WeekFocus          string           `json:"week_focus,omitempty"`
	WeekOverview       string           `json:"week_overview,omitempty"`
	WeekObjectives     []string         `json:"week_objectives,omitempty"`
	WeekMaterials      []string         `json:"week_materials,omitempty"`
	TeacherNotes       []string         `json:"teacher_notes,omitempty"`
	FormativeCheck     string           `json:"formative_check,omitempty"`
	SummativeNote      string           `json:"summative_note,omitempty"`
	AssessmentEvidence string           `json:"assessment_evidence,omitempty"`
	StandardsAlignment string           `json:"standards_alignment,omitempty"`
	Days               []DayPlan        `json:"days"`
	StudentHandouts    []StudentHandout `json:"student_handouts,omitempty"`
	SkipPresentation   bool             `json:"skip_presentation,omitempty"`
}

// DayPlan represents a single day's lesson within a weekly plan
type DayPlan struct {
	Topic            string            `json:"topic"`
	DayLabel         string            `json:"day_label,omitempty"` // falls back to Mon-Fri name by position
	Overview         string            `json:"overview,omitempty"`
	Objectives       []string          `json:"objectives,omitempty"`
	DayMaterials     []string          `json:"day_materials,omitempty"`
	Schedule         []ScheduleItem    `json:"schedule,omitempty"`
	Vocabulary       map[string]string `json:"vocabulary,omitempty"`
	Differentiation  Differentiation   `json:"differentiation"`
	TeacherNotes     string            `json:"teacher_notes,omitempty"`
	ContentStandards string            `json:"content_standards,omitempty"`
}

// ScheduleItem represents one timed activity in a day's schedule.
// Ordering is temporal and must be preserved top-to-bottom.
type ScheduleItem struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Differentiation holds the three fixed differentiation slots.
// All three are always present; an empty string means the slot is unused.
type Differentiation struct {
	Advanced   string `json:"advanced"`
	Struggling string `json:"struggling"`
	ELL        string `json:"ell"`
}

// StudentHandout represents one student-facing handout within a weekly plan
type StudentHandout struct {
	Name         string            `json:"name"` // used for the output filename
	Title        string            `json:"title,omitempty"`
	Subtitle     string            `json:"subtitle,omitempty"`
	Instructions string            `json:"instructions,omitempty"`
	Sections     []HandoutSection  `json:"sections,omitempty"`
	Vocabulary   map[string]string `json:"vocabulary,omitempty"`
	Questions    []string          `json:"questions,omitempty"`
	Tips         []string          `json:"tips,omitempty"`
}

// HandoutSection represents one section of a student handout
type HandoutSection struct {
	Heading    string   `json:"heading"`
	Numbered   bool     `json:"numbered,omitempty"` // selects numbered vs bulleted item rendering
	Items      []string `json:"items,omitempty"`
	Content    string   `json:"content,omitempty"`
	BlankLines int      `json:"blank_lines,omitempty"` // write-in space after the section
}

// DayName returns the label for the day at the given zero-based position,
// preferring the explicit day label when one is set
func (d *DayPlan) DayName(position int) string {
	if d.DayLabel != "" {
		return d.DayLabel
	}
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	if position >= 0 && position < len(names) {
		return names[position]
	}
	return fmt.Sprintf("Day %d", position+1)
}
