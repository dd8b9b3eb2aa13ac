package tally

import (
	"errors"
	"math"
	"testing"

	"alumstats/domain/core"
	"alumstats/domain/survey"
	apperrors "alumstats/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsFixture() []survey.Row {
	return []survey.Row{
		{survey.RaceAsian: "1", survey.StatusCurrent: "A student", survey.BecameMentor: "Yes"},
		{survey.RaceAsian: "", survey.StatusCurrent: "Employed", survey.BecameMentor: "Yes, informally"},
		{survey.RaceAsian: "1", survey.StatusCurrent: "A student", survey.BecameMentor: "No"},
		{survey.StatusCurrent: "Other", survey.Awards: "Best paper"},
	}
}

func TestPredicates(t *testing.T) {
	rows := rowsFixture()

	tests := []struct {
		name string
		pred Predicate
		want int
	}{
		{"selected", Selected(survey.RaceAsian), 2},
		{"equals", Equals(survey.StatusCurrent, survey.StatusStudent), 2},
		{"not equals counts absent answers", NotEquals(survey.RaceAsian, "1"), 2},
		{"prefix", HasPrefix(survey.BecameMentor, "Yes"), 2},
		{"non-empty", NonEmpty(survey.Awards), 1},
		{"and", And(Selected(survey.RaceAsian), Equals(survey.BecameMentor, "No")), 1},
		{"or", Or(Equals(survey.StatusCurrent, "Other"), Equals(survey.StatusCurrent, "Employed")), 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Of(rows, test.pred).Count())
		})
	}
}

func TestSeries(t *testing.T) {
	s := Of(rowsFixture(), Selected(survey.RaceAsian))

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 4, s.Total())

	empty := Of(nil, Selected(survey.RaceAsian))
	assert.Equal(t, 0, empty.Count())
	assert.Equal(t, 0, empty.Total())
}

func TestFilterKeepsOrder(t *testing.T) {
	students := Filter(rowsFixture(), Equals(survey.StatusCurrent, survey.StatusStudent))

	require.Len(t, students, 2)
	assert.Equal(t, "Yes", students[0].Value(survey.BecameMentor))
	assert.Equal(t, "No", students[1].Value(survey.BecameMentor))
	assert.Empty(t, Filter(nil, Selected(survey.RaceAsian)))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		count, total int
		want         float64
	}{
		{3, 3, 100},
		{0, 5, 0},
		{1, 4, 25},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 12}, // 12.5 rounds to even
		{3, 8, 38}, // 37.5 rounds to even
		{5, 8, 62}, // 62.5 rounds to even
	}

	for _, test := range tests {
		got, err := Percentage(test.count, test.total)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "Percentage(%d, %d)", test.count, test.total)
	}
}

func TestPercentageBounds(t *testing.T) {
	for total := 1; total <= 60; total++ {
		for count := 0; count <= total; count++ {
			got, err := Percentage(count, total)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
			assert.Equal(t, math.RoundToEven(float64(count)/float64(total)*100), got)
		}
	}
}

func TestPercentageZeroTotal(t *testing.T) {
	_, err := Percentage(0, 0)
	assert.True(t, errors.Is(err, core.ErrZeroTotal))
}

func TestFormatShare(t *testing.T) {
	line, err := FormatShare("Asian", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, "Asian: 100% (3)", line)

	line, err = FormatShare(" - STEM students", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, " - STEM students: 25% (1)", line)

	_, err = FormatShare("Students", 0, 0)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDivisionError, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "Students")
}

func TestWilson(t *testing.T) {
	ci, err := Wilson(3, 3, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 43.85, ci.Lower, 0.01)
	assert.InDelta(t, 100.0, ci.Upper, 1e-9)
	assert.Equal(t, 0.95, ci.Level)

	ci, err = Wilson(0, 10, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, ci.Lower, 1e-9)
	assert.InDelta(t, 27.75, ci.Upper, 0.01)

	ci, err = Wilson(5, 10, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 50-ci.Lower, ci.Upper-50, 1e-9, "symmetric around one half")
	assert.Less(t, ci.Lower, 50.0)
	assert.Greater(t, ci.Upper, 50.0)

	_, err = Wilson(0, 0, 0.95)
	assert.True(t, errors.Is(err, core.ErrZeroTotal))
	_, err = Wilson(1, 2, 1)
	assert.True(t, errors.Is(err, core.ErrInvalidConfLevel))
}
