// Package analysis holds the reporting passes run over a survey dataset.
// Every pass reads the dataset once through tally predicates and returns one
// report section; passes never see each other's output.
package analysis

import (
	"alumstats/domain/survey"
	"alumstats/internal/report"
	"alumstats/internal/tally"
)

// Section keys, stable across output formats.
const (
	KeyRaceEthnicity    = "race_ethnicity"
	KeyGender           = "gender"
	KeyBeforeInternship = "before_internship"
	KeyCurrentStatus    = "current_status"
	KeyFOSSRetention    = "foss_retention"
	KeyGSoCGSoD         = "gsoc_gsod"
	KeyTalks            = "talks"
	KeyMentorship       = "mentorship"
	KeySuccesses        = "successes"
)

// PassFunc computes one section.
type PassFunc func(ds *survey.Dataset, opts report.Options) (*report.Section, error)

// Pass is a reporting pass and the columns it reads.
type Pass struct {
	Key    string
	Fields []survey.Field
	Run    PassFunc
}

// Passes returns the passes in execution order. The success stories pass is
// only included when requested.
func Passes(includeSuccesses bool) []Pass {
	passes := []Pass{
		{Key: KeyRaceEthnicity, Fields: raceFields, Run: RaceEthnicity},
		{Key: KeyGender, Fields: genderFields, Run: GenderIdentity},
		{Key: KeyBeforeInternship, Fields: beforeFields, Run: BeforeInternship},
		{Key: KeyCurrentStatus, Fields: currentFields, Run: CurrentStatus},
		{Key: KeyFOSSRetention, Fields: fossFields, Run: FOSSRetention},
		{Key: KeyGSoCGSoD, Fields: gsocFields, Run: GSoCGSoD},
		{Key: KeyTalks, Fields: talkFields, Run: ConferenceTalks},
		{Key: KeyMentorship, Fields: mentorshipFields, Run: Mentorship},
	}
	if includeSuccesses {
		passes = append(passes, Pass{Key: KeySuccesses, Fields: successFields, Run: SuccessStories})
	}
	return passes
}

// RequiredFields is the de-duplicated union of the passes' columns, in
// first-use order.
func RequiredFields(passes []Pass) []survey.Field {
	var fields []survey.Field
	seen := make(map[survey.Field]bool)
	for _, p := range passes {
		for _, f := range p.Fields {
			if !seen[f] {
				seen[f] = true
				fields = append(fields, f)
			}
		}
	}
	return fields
}

// category is a labelled predicate counted against the section total.
type category struct {
	label string
	pred  tally.Predicate
}

func addCategories(b *report.Builder, rows []survey.Row, cats []category) {
	for _, c := range cats {
		b.Series(c.label, tally.Of(rows, c.pred))
	}
}
