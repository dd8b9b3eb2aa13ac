package analysis

import (
	"alumstats/domain/survey"
	"alumstats/internal/report"
	"alumstats/internal/tally"
)

var successFields = []survey.Field{
	survey.FirstName,
	survey.LastName,
	survey.Awards,
	survey.LeadershipRoles,
	survey.SuccessStory,
}

// SuccessStories collects one story per respondent who reported an award, a
// leadership role or a success story. Empty answers are left out of the
// story.
func SuccessStories(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeySuccesses, "Success stories", len(rows), opts)

	reported := tally.Or(
		tally.NonEmpty(survey.Awards),
		tally.NonEmpty(survey.LeadershipRoles),
		tally.NonEmpty(survey.SuccessStory),
	)
	for _, row := range tally.Filter(rows, reported) {
		b.Story(report.Story{
			Name:       row.Name(),
			Award:      row.Value(survey.Awards),
			Leadership: row.Value(survey.LeadershipRoles),
			Story:      row.Value(survey.SuccessStory),
		})
	}
	return b.Build()
}
