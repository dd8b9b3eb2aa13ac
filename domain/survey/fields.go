package survey

// Field identifies one expected column of the survey export.
type Field int

const (
	FirstName Field = iota
	LastName

	// Race and ethnicity (select all that apply)
	RaceAsian
	RaceBlack
	RaceHispanicLatinx
	RaceIndigenous
	RaceMiddleEastern
	RaceWhite
	DisadvantagedCaste
	DisadvantagedTribe

	// Gender identity (select all that apply)
	GenderMan
	GenderWoman
	GenderNonBinary
	GenderNotListed
	Transgender

	// Status before the internship
	StatusBefore
	SituationBefore

	// Current status
	StatusCurrent
	SituationCurrent
	StudentSTEM
	StudentUsesFOSS
	StudentContributesFOSS
	EmployedInTech
	SponsorNoneOfTheAbove
	JobUsesFOSS
	JobContributesFOSS

	// FOSS retention
	UsedFOSSLastYear
	ContributedFOSSLastYear

	// Google Summer of Code / Season of Docs (select all that apply)
	GSoCIntern
	GSoCMentor
	GSoCOrgAdmin
	GSoDIntern
	GSoDMentor
	GSoDOrgAdmin

	GaveTalk

	// Mentorship
	OutreachyCoordinator
	OutreachyMentor
	OutreachyVolunteer
	BecameMentor

	// Successes
	Awards
	LeadershipRoles
	SuccessStory

	fieldCount
)

const (
	raceQuestion    = "What is your race and ethnicity? (Select all that apply)/"
	genderQuestion  = "What is your gender identity? (Select all that apply)/"
	gsocQuestion    = "After your Outreachy internship, did you participate in Google Summer of Code? (Select all that apply)/"
	gsodQuestion    = "After your Outreachy internship, did you participate in Google Season of Docs? (Select all that apply)/"
	sponsorQuestion = "After your Outreachy internship, were you employed at any of the following Outreachy sponsors?/"
	outreachyVolQ   = "After your Outreachy internship, did you volunteer for Outreachy? (Select all that apply)/"
)

// questions holds the exact header text of every field. These strings are
// the contract with the survey tool's export and must match byte for byte.
// The Summer of Code options really do read "GSoD" in the export.
var questions = [fieldCount]string{
	FirstName: "First Name / Given Name",
	LastName:  "Last Name / Family Name",

	RaceAsian:          raceQuestion + "Asian",
	RaceBlack:          raceQuestion + "Black",
	RaceHispanicLatinx: raceQuestion + "Hispanic or Latinx",
	RaceIndigenous:     raceQuestion + "Indigenous",
	RaceMiddleEastern:  raceQuestion + "Middle Eastern",
	RaceWhite:          raceQuestion + "White",
	DisadvantagedCaste: "Are you a member of a historically disadvantaged caste / scheduled caste?",
	DisadvantagedTribe: "Are you a member of a historically disadvantaged tribe?",

	GenderMan:       genderQuestion + "Man",
	GenderWoman:     genderQuestion + "Woman",
	GenderNonBinary: genderQuestion + "Non-binary",
	GenderNotListed: genderQuestion + "My gender isn't listed here",
	Transgender:     "Do you identify as transgender?",

	StatusBefore:    "In the three months before your Outreachy internship, were you:",
	SituationBefore: "In the three months before your Outreachy internship, what was your employment or educational situation?",

	StatusCurrent:          "Are you currently:",
	SituationCurrent:       "What is your current employment or educational situation?",
	StudentSTEM:            "Are you a student in a science, technology, engineering, or mathematics field?",
	StudentUsesFOSS:        "Do you use free software / open source to complete your student projects or research?",
	StudentContributesFOSS: "Do you contribute to free software / open source as part of your student projects or research?",
	EmployedInTech:         "Are you employed in the technology industry?",
	SponsorNoneOfTheAbove:  sponsorQuestion + "None of the above",
	JobUsesFOSS:            "Does your job involve using free software / open source?",
	JobContributesFOSS:     "Does your job involve contributing to free software / open source?",

	UsedFOSSLastYear:        "In the last year, have you used free software / open source?",
	ContributedFOSSLastYear: "In the last year, have you contributed to free software / open source with:",

	GSoCIntern:   gsocQuestion + "Yes, I was a GSoD intern",
	GSoCMentor:   gsocQuestion + "Yes, I was a GSoD mentor",
	GSoCOrgAdmin: gsocQuestion + "Yes, I was a GSoD org admin",
	GSoDIntern:   gsodQuestion + "Yes, I was a GSoD intern",
	GSoDMentor:   gsodQuestion + "Yes, I was a GSoD mentor",
	GSoDOrgAdmin: gsodQuestion + "Yes, I was a GSoD org admin",

	GaveTalk: "During or after your Outreachy internship, did you give a talk or presentation on free software/open source?",

	OutreachyCoordinator: outreachyVolQ + "Yes, I was an Outreachy coordinator",
	OutreachyMentor:      outreachyVolQ + "Yes, I was an Outreachy mentor",
	OutreachyVolunteer:   outreachyVolQ + "Yes, I was an informal Outreachy volunteer",
	BecameMentor:         "After your Outreachy internship, did you become a mentor?",

	Awards:          "After your Outreachy internship, did you win any awards?",
	LeadershipRoles: "After your Outreachy internship, did you take on any leadership roles?",
	SuccessStory:    "Tell us more about your successes after Outreachy!",
}

// Answer literals compared against by the reporting passes.
const (
	Selected = "1"
	Yes      = "Yes"
	No       = "No"

	StatusStudent    = "A student"
	StatusEmployed   = "Employed"
	StatusUnemployed = "Unemployed"
	StatusOther      = "Other"
	// The two status questions spell the parent option differently.
	StatusParentBefore  = "A full time parent"
	StatusParentCurrent = "A full-time parent"

	NoContributionLastYear = "No, I have not contributed to free software / open source in the last year"
)

var byQuestion = func() map[string]Field {
	m := make(map[string]Field, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		m[questions[f]] = f
	}
	return m
}()

// Question returns the header text the field is exported under.
func (f Field) Question() string {
	if !f.Valid() {
		return ""
	}
	return questions[f]
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

func (f Field) String() string {
	return f.Question()
}

// FieldByQuestion resolves a header cell to its field.
func FieldByQuestion(question string) (Field, bool) {
	f, ok := byQuestion[question]
	return f, ok
}

// AllFields lists every known field in declaration order.
func AllFields() []Field {
	fields := make([]Field, fieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}
