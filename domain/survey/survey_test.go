package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldQuestionsRoundTrip(t *testing.T) {
	seen := make(map[string]Field)
	for _, f := range AllFields() {
		q := f.Question()
		require.NotEmpty(t, q, "field %d has no question text", f)
		if prev, dup := seen[q]; dup {
			t.Fatalf("fields %d and %d share question %q", prev, f, q)
		}
		seen[q] = f

		got, ok := FieldByQuestion(q)
		require.True(t, ok)
		assert.Equal(t, f, got)
	}

	_, ok := FieldByQuestion("What is your favourite colour?")
	assert.False(t, ok)
	assert.False(t, Field(-1).Valid())
	assert.Equal(t, "", fieldCount.Question())
}

func TestExportLiterals(t *testing.T) {
	// Spot checks on header texts that are easy to mistype.
	assert.Equal(t, "What is your gender identity? (Select all that apply)/My gender isn't listed here", GenderNotListed.Question())
	assert.Equal(t, "After your Outreachy internship, did you participate in Google Summer of Code? (Select all that apply)/Yes, I was a GSoD org admin", GSoCOrgAdmin.Question())
	assert.Equal(t, "In the last year, have you contributed to free software / open source with:", ContributedFOSSLastYear.Question())
	assert.Equal(t, "Are you currently:", StatusCurrent.Question())
}

func TestRowAccessors(t *testing.T) {
	row := Row{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		RaceAsian:    "1",
		RaceBlack:    "",
		BecameMentor: "Yes, for a local meetup",
		Transgender:  "No",
	}

	assert.True(t, row.Selected(RaceAsian))
	assert.False(t, row.Selected(RaceBlack))
	assert.False(t, row.Selected(RaceWhite), "absent field is not selected")
	assert.True(t, row.Is(Transgender, No))
	assert.False(t, row.Is(Transgender, Yes))
	assert.True(t, row.HasPrefix(BecameMentor, Yes))
	assert.Equal(t, "Ada Lovelace", row.Name())
	assert.Equal(t, "", row.Value(Awards))
}

func TestNewDataset(t *testing.T) {
	headers := []string{
		"\ufeff" + FirstName.Question(),
		"Unrelated column",
		RaceAsian.Question(),
		StatusCurrent.Question(),
	}
	records := [][]string{
		{"Ada", "x", "1", "Employed"},
		{"Grace", "y", ""},
		{"Edsger", "z", "1", "A student", "surplus"},
	}

	ds := NewDataset(headers, records)

	require.Equal(t, 3, ds.Len())
	assert.True(t, ds.Has(FirstName), "BOM stripped from first header")
	assert.True(t, ds.Has(RaceAsian))
	assert.False(t, ds.Has(RaceBlack))
	assert.Equal(t, FirstName.Question(), ds.Headers()[0])

	rows := ds.Rows()
	assert.Equal(t, "Ada", rows[0].Value(FirstName))
	assert.True(t, rows[0].Is(StatusCurrent, StatusEmployed))
	assert.Equal(t, "", rows[1].Value(StatusCurrent), "short record pads with empty answers")
	assert.True(t, rows[2].Is(StatusCurrent, StatusStudent))

	missing := ds.Missing([]Field{FirstName, RaceBlack, RaceAsian, RaceBlack, LastName})
	assert.Equal(t, []Field{RaceBlack, LastName}, missing)
}
