package analysis

import (
	"alumstats/domain/survey"
	"alumstats/internal/report"
	"alumstats/internal/tally"
)

var fossFields = []survey.Field{
	survey.UsedFOSSLastYear,
	survey.ContributedFOSSLastYear,
}

var gsocFields = []survey.Field{
	survey.GSoCIntern,
	survey.GSoCMentor,
	survey.GSoCOrgAdmin,
	survey.GSoDIntern,
	survey.GSoDMentor,
	survey.GSoDOrgAdmin,
}

var talkFields = []survey.Field{
	survey.GaveTalk,
}

var mentorshipFields = []survey.Field{
	survey.FirstName,
	survey.LastName,
	survey.OutreachyCoordinator,
	survey.OutreachyMentor,
	survey.OutreachyVolunteer,
	survey.BecameMentor,
}

// FOSSRetention reports use of and contribution to free software in the
// last year. Any non-empty contribution answer other than the explicit
// "have not contributed" option counts as contributing; blank answers count
// as neither.
func FOSSRetention(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeyFOSSRetention, "Retention in FOSS", len(rows), opts)
	addCategories(b, rows, []category{
		{"Uses FOSS", tally.Equals(survey.UsedFOSSLastYear, survey.Yes)},
		{"Contributes to FOSS", tally.And(
			tally.NonEmpty(survey.ContributedFOSSLastYear),
			tally.NotEquals(survey.ContributedFOSSLastYear, survey.NoContributionLastYear),
		)},
		{"Does not contribute to FOSS", tally.Equals(survey.ContributedFOSSLastYear, survey.NoContributionLastYear)},
	})
	return b.Build()
}

// GSoCGSoD counts later participation in Google Summer of Code and Google
// Season of Docs.
func GSoCGSoD(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeyGSoCGSoD, "Connection to GSoC and GSoD", len(rows), opts)
	addCategories(b, rows, []category{
		{"Google Summer of Code intern after Outreachy", tally.Selected(survey.GSoCIntern)},
		{"Google Summer of Code mentor after Outreachy", tally.Selected(survey.GSoCMentor)},
		{"Google Summer of Code org admin after Outreachy", tally.Selected(survey.GSoCOrgAdmin)},
		{"Google Season of Docs intern after Outreachy", tally.Selected(survey.GSoDIntern)},
		{"Google Season of Docs mentor after Outreachy", tally.Selected(survey.GSoDMentor)},
		{"Google Season of Docs org admin after Outreachy", tally.Selected(survey.GSoDOrgAdmin)},
	})
	return b.Build()
}

// ConferenceTalks counts alums who presented on free software.
func ConferenceTalks(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeyTalks, "Conference talks on FOSS", len(rows), opts)
	addCategories(b, rows, []category{
		{"Gave a conference talk or presentation on FOSS", tally.Equals(survey.GaveTalk, survey.Yes)},
	})
	return b.Build()
}

// Mentorship counts alums who came back as Outreachy volunteers or became
// mentors elsewhere. Coordinators and mentors are also listed by name.
func Mentorship(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeyMentorship, "Mentorship", len(rows), opts)

	for _, row := range rows {
		if row.Selected(survey.OutreachyCoordinator) {
			b.Note(row.Name() + " Outreachy coordinator")
		}
		if row.Selected(survey.OutreachyMentor) {
			b.Note(row.Name() + " Outreachy mentor")
		}
	}

	addCategories(b, rows, []category{
		{"Became Outreachy coordinator", tally.Selected(survey.OutreachyCoordinator)},
		{"Became Outreachy mentor", tally.Selected(survey.OutreachyMentor)},
		{"Became Outreachy volunteer", tally.Selected(survey.OutreachyVolunteer)},
		{"Became a mentor", tally.HasPrefix(survey.BecameMentor, survey.Yes)},
	})
	return b.Build()
}
