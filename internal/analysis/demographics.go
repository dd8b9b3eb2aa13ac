package analysis

import (
	"alumstats/domain/survey"
	"alumstats/internal/report"
	"alumstats/internal/tally"
)

var raceFields = []survey.Field{
	survey.RaceAsian,
	survey.RaceBlack,
	survey.RaceHispanicLatinx,
	survey.RaceIndigenous,
	survey.RaceMiddleEastern,
	survey.RaceWhite,
	survey.DisadvantagedCaste,
	survey.DisadvantagedTribe,
}

var genderFields = []survey.Field{
	survey.GenderMan,
	survey.GenderWoman,
	survey.GenderNonBinary,
	survey.GenderNotListed,
	survey.Transgender,
}

// RaceEthnicity counts each selected race and ethnicity option plus the
// caste and tribe questions. Options are not exclusive, so shares may sum
// past 100%.
func RaceEthnicity(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeyRaceEthnicity, "Race and Ethnicity", len(rows), opts)
	addCategories(b, rows, []category{
		{"Asian", tally.Selected(survey.RaceAsian)},
		{"Black", tally.Selected(survey.RaceBlack)},
		{"Hispanic or Latinx", tally.Selected(survey.RaceHispanicLatinx)},
		{"Indigenous", tally.Selected(survey.RaceIndigenous)},
		{"Middle Eastern", tally.Selected(survey.RaceMiddleEastern)},
		{"White", tally.Selected(survey.RaceWhite)},
		{"Historically disadvantaged caste or scheduled caste", tally.Equals(survey.DisadvantagedCaste, survey.Yes)},
		{"Historically disadvantaged tribe", tally.Equals(survey.DisadvantagedTribe, survey.Yes)},
	})
	return b.Build()
}

// GenderIdentity counts each selected gender option, then splits on the
// transgender question. Blank answers to that question count as neither.
func GenderIdentity(ds *survey.Dataset, opts report.Options) (*report.Section, error) {
	rows := ds.Rows()
	b := report.NewBuilder(KeyGender, "Gender Identities", len(rows), opts)
	addCategories(b, rows, []category{
		{"Men", tally.Selected(survey.GenderMan)},
		{"Women", tally.Selected(survey.GenderWoman)},
		{"Non-binary", tally.Selected(survey.GenderNonBinary)},
		{"Other gender identity", tally.Selected(survey.GenderNotListed)},
		{"Cisgender", tally.Equals(survey.Transgender, survey.No)},
		{"Transgender", tally.Equals(survey.Transgender, survey.Yes)},
	})
	return b.Build()
}
