package analysis

import (
	"alumstats/domain/survey"
	"alumstats/internal/report"
	"alumstats/internal/tally"
)

var beforeFields = []survey.Field{
	survey.StatusBefore,
	survey.SituationBefore,
}

var currentFields = []survey.Field{
	survey.StatusCurrent,
	survey.SituationCurrent,
	survey.StudentSTEM,
	survey.StudentUsesFOSS,
	survey.StudentContributesFOSS,
	survey.EmployedInTech,
	survey.SponsorNoneOfTheAbove,
	survey.JobUsesFOSS,
	survey.JobContributesFOSS,
}

// BeforeInternship breaks respondents down by their situation in the three
// months before the internship. The categories are exclusive. Each "Other"
// respondent's own description is kept as a note.
func BeforeInternship(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeyBeforeInternship, "Before Outreachy", len(rows), opts)

	for _, row := range tally.Filter(rows, tally.Equals(survey.StatusBefore, survey.StatusOther)) {
		b.Note("Other: " + row.Value(survey.SituationBefore))
	}

	addCategories(b, rows, []category{
		{"Students", tally.Equals(survey.StatusBefore, survey.StatusStudent)},
		{"Employed", tally.Equals(survey.StatusBefore, survey.StatusEmployed)},
		{"Unemployed", tally.Equals(survey.StatusBefore, survey.StatusUnemployed)},
		{"Parents", tally.Equals(survey.StatusBefore, survey.StatusParentBefore)},
		{"Other", tally.Equals(survey.StatusBefore, survey.StatusOther)},
	})
	return b.Build()
}

// CurrentStatus breaks respondents down by what they do now. Students and
// employees get nested breakdowns whose percentages are relative to the
// student or employee subtotal.
func CurrentStatus(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeyCurrentStatus, "Current Employment and Education status of alums", len(rows), opts)

	for _, row := range tally.Filter(rows, tally.Equals(survey.StatusCurrent, survey.StatusOther)) {
		b.Note("Other: " + row.Value(survey.SituationCurrent))
	}

	students := tally.Filter(rows, tally.Equals(survey.StatusCurrent, survey.StatusStudent))
	b.Share("Students", len(students))
	b.SubSeries("STEM students", tally.Of(students, tally.Equals(survey.StudentSTEM, survey.Yes)))
	b.SubSeries("Students who use FOSS for school projects or research", tally.Of(students, tally.Equals(survey.StudentUsesFOSS, survey.Yes)))
	b.SubSeries("Students who contribute to FOSS for school projects or research", tally.Of(students, tally.Equals(survey.StudentContributesFOSS, survey.Yes)))

	employed := tally.Filter(rows, tally.Equals(survey.StatusCurrent, survey.StatusEmployed))
	b.Share("Employed", len(employed))
	b.SubSeries("Tech employees", tally.Of(employed, tally.Equals(survey.EmployedInTech, survey.Yes)))
	// Anyone who did not tick "None of the above" worked for a sponsor.
	b.SubSeries("Employed by sponsor after internship", tally.Of(employed, tally.NotEquals(survey.SponsorNoneOfTheAbove, survey.Selected)))
	b.SubSeries("Employees who use FOSS as part of their job", tally.Of(employed, tally.Equals(survey.JobUsesFOSS, survey.Yes)))
	b.SubSeries("Employees who contribute to FOSS as part of their job", tally.Of(employed, tally.Equals(survey.JobContributesFOSS, survey.Yes)))

	addCategories(b, rows, []category{
		{"Unemployed", tally.Equals(survey.StatusCurrent, survey.StatusUnemployed)},
		{"Parents", tally.Equals(survey.StatusCurrent, survey.StatusParentCurrent)},
		{"Other", tally.Equals(survey.StatusCurrent, survey.StatusOther)},
	})
	return b.Build()
}
