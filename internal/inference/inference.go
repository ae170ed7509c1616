// Package inference maps free-text lesson content onto the fixed
// checkbox vocabulary of the CTE weekly template. Each classifier is an
// independent pure function from text to a set of keys; matching is
// deliberately approximate keyword/regex work, close enough for a
// teacher to lightly edit.
package inference

import (
	"regexp"
	"strings"

	"github.com/lessonlab/backend/internal/models"
)

// Key identifies one checkbox option on the template
type Key string

// Materials keys
const (
	KeyTextbook       Key = "textbook"
	KeyHandouts       Key = "handouts"
	KeyComputer       Key = "computer"
	KeyProjector      Key = "projector"
	KeyWhiteboard     Key = "whiteboard"
	KeyLabMaterials   Key = "lab_materials"
	KeyOtherEquipment Key = "other_equipment"
)

// Methods keys
const (
	KeyLecture       Key = "lecture"
	KeyDiscussion    Key = "discussion"
	KeyDemonstration Key = "demonstration"
	KeyGroupWork     Key = "group_work"
	KeyHandsOn       Key = "hands_on"
	KeyProjectBased  Key = "project_based"
	KeyIndependent   Key = "independent"
)

// Assessment keys
const (
	KeyObservation   Key = "observation"
	KeyWrittenWork   Key = "written_work"
	KeyQuizTest      Key = "quiz_test"
	KeyProjectWork   Key = "project"
	KeyPresentation  Key = "presentation"
	KeyRubric        Key = "rubric"
	KeyParticipation Key = "participation"
)

// Curriculum area keys
const (
	KeyMath          Key = "math"
	KeyScience       Key = "science"
	KeyReading       Key = "reading"
	KeyWriting       Key = "writing"
	KeyTechnology    Key = "technology"
	KeyEmployability Key = "employability"
)

// Other area keys
const (
	KeySafety           Key = "safety"
	KeyTeamwork         Key = "teamwork"
	KeyCriticalThinking Key = "critical_thinking"
	KeyCommunication    Key = "communication"
	KeyTimeManagement   Key = "time_management"
)

// rule pairs a checkbox key with the pattern that selects it
type rule struct {
	key     Key
	pattern *regexp.Regexp
}

var materialRules = []rule{
	{KeyTextbook, regexp.MustCompile(`textbook|text book|chapter reading`)},
	{KeyHandouts, regexp.MustCompile(`handout|worksheet|packet|graphic organizer`)},
	{KeyComputer, regexp.MustCompile(`computer|laptop|software|online|website|internet`)},
	{KeyProjector, regexp.MustCompile(`projector|slideshow|slides|screen share`)},
	{KeyWhiteboard, regexp.MustCompile(`whiteboard|white board|marker board`)},
	{KeyLabMaterials, regexp.MustCompile(`\blab\b|laboratory|experiment|specimen`)},
	{KeyOtherEquipment, regexp.MustCompile(`camera|tripod|lighting|microphone|equipment`)},
}

var methodRules = []rule{
	{KeyLecture, regexp.MustCompile(`lecture|direct instruction|mini-lesson`)},
	{KeyDiscussion, regexp.MustCompile(`discussion|debate|socratic|think-pair`)},
	{KeyDemonstration, regexp.MustCompile(`demonstrat|teacher models|walkthrough`)},
	{KeyGroupWork, regexp.MustCompile(`\bgroup|team|partner|collaborat`)},
	{KeyHandsOn, regexp.MustCompile(`hands-on|hands on|practice|build|create`)},
	{KeyProjectBased, regexp.MustCompile(`\bproject\b`)},
	{KeyIndependent, regexp.MustCompile(`independent|individually|on your own`)},
}

var assessmentRules = []rule{
	{KeyObservation, regexp.MustCompile(`observ|monitor|walk around`)},
	{KeyWrittenWork, regexp.MustCompile(`written|essay|journal|exit ticket`)},
	{KeyQuizTest, regexp.MustCompile(`quiz|\btest\b|exam`)},
	{KeyProjectWork, regexp.MustCompile(`\bproject\b|portfolio`)},
	{KeyPresentation, regexp.MustCompile(`present to|presentation|critique|showcase`)},
	{KeyRubric, regexp.MustCompile(`rubric`)},
	{KeyParticipation, regexp.MustCompile(`particip|engagement`)},
}

var curriculumRules = []rule{
	{KeyMath, regexp.MustCompile(`math|calculat|measure|geometry|budget`)},
	{KeyScience, regexp.MustCompile(`science|physics|chemistry|biology|experiment`)},
	{KeyReading, regexp.MustCompile(`\bread|article|vocabulary`)},
	{KeyWriting, regexp.MustCompile(`\bwrit|essay|script|journal`)},
	{KeyTechnology, regexp.MustCompile(`technolog|computer|software|digital|editing|camera`)},
	{KeyEmployability, regexp.MustCompile(`employab|career|professional|workplace|interview|resume`)},
}

var otherAreaRules = []rule{
	{KeySafety, regexp.MustCompile(`safety|\bsafe\b|\bppe\b|hazard`)},
	{KeyTeamwork, regexp.MustCompile(`team|collaborat|\bgroup`)},
	{KeyCriticalThinking, regexp.MustCompile(`critical thinking|problem[ -]solving|analyz|evaluat`)},
	{KeyCommunication, regexp.MustCompile(`communicat|presentation|public speaking|listening`)},
	{KeyTimeManagement, regexp.MustCompile(`time management|deadline|pacing`)},
}

// apply runs a rule table against lowercased text. Rules are independent
// and order-insensitive; multiple keys may match the same text.
func apply(rules []rule, text string) map[Key]bool {
	text = strings.ToLower(text)
	matched := make(map[Key]bool)
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			matched[r.key] = true
		}
	}
	return matched
}

// Materials infers which materials checkboxes apply to the lesson text
func Materials(text string) map[Key]bool {
	return apply(materialRules, text)
}

// Methods infers which instructional method checkboxes apply
func Methods(text string) map[Key]bool {
	return apply(methodRules, text)
}

// Assessment infers which assessment checkboxes apply
func Assessment(text string) map[Key]bool {
	return apply(assessmentRules, text)
}

// CurriculumAreas infers which embedded curriculum areas apply
func CurriculumAreas(text string) map[Key]bool {
	return apply(curriculumRules, text)
}

// OtherAreas infers which other-area checkboxes apply
func OtherAreas(text string) map[Key]bool {
	return apply(otherAreaRules, text)
}

// Selections bundles the five classifier results for one lesson day
type Selections struct {
	Materials  map[Key]bool
	Methods    map[Key]bool
	Assessment map[Key]bool
	Curriculum map[Key]bool
	OtherAreas map[Key]bool
}

// Infer runs every classifier over the same lesson text
func Infer(text string) Selections {
	return Selections{
		Materials:  Materials(text),
		Methods:    Methods(text),
		Assessment: Assessment(text),
		Curriculum: CurriculumAreas(text),
		OtherAreas: OtherAreas(text),
	}
}

// LessonText concatenates the searchable free text of a lesson day:
// topic, overview, objectives and schedule activity text
func LessonText(day *models.DayPlan) string {
	var b strings.Builder
	b.WriteString(day.Topic)
	b.WriteString(" ")
	b.WriteString(day.Overview)
	for _, obj := range day.Objectives {
		b.WriteString(" ")
		b.WriteString(obj)
	}
	for _, item := range day.Schedule {
		b.WriteString(" ")
		b.WriteString(item.Name)
		b.WriteString(" ")
		b.WriteString(item.Description)
	}
	for _, m := range day.DayMaterials {
		b.WriteString(" ")
		b.WriteString(m)
	}
	return strings.ToLower(b.String())
}
