package excel

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"alumstats/domain/core"
	"alumstats/domain/survey"
	"alumstats/internal"
	apperrors "alumstats/internal/errors"
	"alumstats/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(path string) *DataReader {
	cfg := DefaultExcelConfig()
	cfg.FilePath = path
	return NewDataReader(cfg, internal.NewLoggerTo(internal.LogLevelError, &bytes.Buffer{}))
}

func TestReadDatasetCSV(t *testing.T) {
	path := testkit.WriteCSV(t, []survey.Field{survey.FirstName, survey.RaceAsian, survey.SituationBefore},
		testkit.Respondent{survey.FirstName: "Ada", survey.RaceAsian: "1", survey.SituationBefore: "caring; for family"},
		testkit.Respondent{survey.FirstName: "Grace"},
	)

	ds, err := newTestReader(path).ReadDataset(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, ds.Len())
	assert.True(t, ds.Has(survey.RaceAsian))
	assert.False(t, ds.Has(survey.RaceBlack))
	rows := ds.Rows()
	assert.True(t, rows[0].Selected(survey.RaceAsian))
	assert.Equal(t, "caring; for family", rows[0].Value(survey.SituationBefore), "quoted delimiter kept in cell")
	assert.False(t, rows[1].Selected(survey.RaceAsian))
}

func TestReadDatasetKeepsWhitespace(t *testing.T) {
	path := testkit.WriteRaw(t, "survey.csv", "Are you currently:;Other\n Employed;x\n")

	ds, err := newTestReader(path).ReadDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, " Employed", ds.Rows()[0].Value(survey.StatusCurrent))
}

func TestReadDatasetRaggedRows(t *testing.T) {
	path := testkit.WriteRaw(t, "survey.csv", "\ufeffFirst Name / Given Name;Last Name / Family Name\nAda\nGrace;Hopper;extra\n")

	ds, err := newTestReader(path).ReadDataset(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.True(t, ds.Has(survey.FirstName), "BOM removed")
	assert.Equal(t, "Ada ", ds.Rows()[0].Name())
	assert.Equal(t, "Grace Hopper", ds.Rows()[1].Name())
}

func TestReadDatasetHeaderOnly(t *testing.T) {
	path := testkit.WriteFullCSV(t)

	ds, err := newTestReader(path).ReadDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Missing(survey.AllFields()))
}

func TestReadDatasetErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		code     string
		sentinel error
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return t.TempDir() + "/nope.csv" },
			code:     apperrors.CodeFileError,
			sentinel: core.ErrFileUnreadable,
		},
		{
			name:     "empty path",
			path:     func(t *testing.T) string { return "" },
			code:     apperrors.CodeFileError,
			sentinel: core.ErrFileUnreadable,
		},
		{
			name:     "directory",
			path:     func(t *testing.T) string { return t.TempDir() },
			code:     apperrors.CodeFileError,
			sentinel: core.ErrFileUnreadable,
		},
		{
			name:     "empty file",
			path:     func(t *testing.T) string { return testkit.WriteRaw(t, "empty.csv", "") },
			code:     apperrors.CodeParseError,
			sentinel: core.ErrMalformedInput,
		},
		{
			name:     "not a workbook",
			path:     func(t *testing.T) string { return testkit.WriteRaw(t, "bad.xlsx", "plain text") },
			code:     apperrors.CodeParseError,
			sentinel: core.ErrMalformedInput,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := newTestReader(test.path(t)).ReadDataset(context.Background())
			require.Error(t, err)
			assert.Equal(t, test.code, apperrors.GetCode(err))
			assert.True(t, errors.Is(err, test.sentinel))
		})
	}
}

func TestReadDatasetLazyQuotes(t *testing.T) {
	header := survey.FirstName.Question() + ";" + survey.SuccessStory.Question() + "\n"

	tests := []struct {
		name  string
		body  string
		story string
	}{
		{"bare quote in free text", "Ada;my \"own\" startup\n", `my "own" startup`},
		{"quoted field", "Ada;\"a; b\"\n", "a; b"},
		{"unterminated quote at end of file", "Ada;\"open ended", "open ended"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := testkit.WriteRaw(t, "survey.csv", header+test.body)

			ds, err := newTestReader(path).ReadDataset(context.Background())
			require.NoError(t, err)
			require.Equal(t, 1, ds.Len())
			row := ds.Rows()[0]
			assert.Equal(t, "Ada", row.Value(survey.FirstName))
			assert.Equal(t, test.story, row.Value(survey.SuccessStory))
		})
	}
}

func TestReadDatasetXLSX(t *testing.T) {
	path := testkit.WriteXLSX(t, "Responses",
		testkit.Respondent{survey.FirstName: "Ada", survey.GenderWoman: "1"},
		testkit.Respondent{survey.FirstName: "Alan", survey.GenderMan: "1"},
	)

	cfg := DefaultExcelConfig()
	cfg.FilePath = path
	cfg.Sheet = "Responses"
	ds, err := NewDataReader(cfg, internal.NewLoggerTo(internal.LogLevelError, &bytes.Buffer{})).ReadDataset(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, ds.Len())
	assert.True(t, ds.Rows()[0].Selected(survey.GenderWoman))
	assert.True(t, ds.Rows()[1].Selected(survey.GenderMan))
	assert.Empty(t, ds.Missing(survey.AllFields()))
}

func TestReadDatasetXLSXMissingSheet(t *testing.T) {
	path := testkit.WriteXLSX(t, "Sheet1", testkit.Respondent{survey.FirstName: "Ada"})

	cfg := DefaultExcelConfig()
	cfg.FilePath = path
	cfg.Sheet = "Nope"
	_, err := NewDataReader(cfg, nil).ReadDataset(context.Background())
	assert.Equal(t, apperrors.CodeParseError, apperrors.GetCode(err))
}

func TestReadDatasetCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestReader("unused.csv").ReadDataset(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDataReaderDefaults(t *testing.T) {
	r := NewDataReader(ExcelConfig{FilePath: "Survey.XLSX"}, nil)
	assert.Equal(t, "xlsx", r.fileType)
	assert.Equal(t, ';', r.config.Delimiter)
	assert.Equal(t, "Sheet1", r.config.Sheet)

	r = NewDataReader(ExcelConfig{FilePath: "survey.txt", Delimiter: ','}, nil)
	assert.Equal(t, "csv", r.fileType)
	assert.Equal(t, ',', r.config.Delimiter)
}
