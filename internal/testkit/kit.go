// Package testkit builds survey exports for tests.
package testkit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"alumstats/domain/survey"

	"github.com/xuri/excelize/v2"
)

// Respondent is one fixture row. Unset fields export as empty cells.
type Respondent map[survey.Field]string

// Columns returns every known question, the header of a complete export.
func Columns() []survey.Field {
	return survey.AllFields()
}

// Records lays respondents out under columns.
func Records(columns []survey.Field, respondents ...Respondent) (headers []string, records [][]string) {
	headers = make([]string, len(columns))
	for i, f := range columns {
		headers[i] = f.Question()
	}
	for _, resp := range respondents {
		record := make([]string, len(columns))
		for i, f := range columns {
			record[i] = resp[f]
		}
		records = append(records, record)
	}
	return headers, records
}

// Dataset builds an in-memory dataset with every column present.
func Dataset(respondents ...Respondent) *survey.Dataset {
	headers, records := Records(Columns(), respondents...)
	return survey.NewDataset(headers, records)
}

// Repeat returns n copies of r.
func Repeat(n int, r Respondent) []Respondent {
	out := make([]Respondent, n)
	for i := range out {
		cp := make(Respondent, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

// WriteCSV writes a semicolon-delimited export with the given columns and
// returns its path.
func WriteCSV(t testing.TB, columns []survey.Field, respondents ...Respondent) string {
	t.Helper()
	headers, records := Records(columns, respondents...)

	path := filepath.Join(t.TempDir(), "survey.csv")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	w.Comma = ';'
	if err := w.Write(headers); err != nil {
		t.Fatalf("write fixture header: %v", err)
	}
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("write fixture records: %v", err)
	}
	return path
}

// WriteFullCSV writes an export containing every known column.
func WriteFullCSV(t testing.TB, respondents ...Respondent) string {
	t.Helper()
	return WriteCSV(t, Columns(), respondents...)
}

// WriteRaw writes content verbatim, for malformed-input tests.
func WriteRaw(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// WriteXLSX writes a workbook export with every known column on sheet.
func WriteXLSX(t testing.TB, sheet string, respondents ...Respondent) string {
	t.Helper()
	headers, records := Records(Columns(), respondents...)

	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	}

	rows := append([][]string{headers}, records...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			t.Fatalf("write row %d: %v", i, err)
		}
	}

	path := filepath.Join(t.TempDir(), "survey.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}
