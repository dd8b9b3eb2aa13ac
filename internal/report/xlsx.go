package report

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	maxSheetChars = 31
)

// renderXLSX writes a workbook with a summary sheet followed by one sheet
// per section, named by section key.
func renderXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	summary := [][]interface{}{
		{"Report", r.ID.String()},
		{"Source", r.Source},
		{"Generated", r.GeneratedAt.Format(time.RFC3339)},
		{"Respondents", r.Respondents},
	}
	if err := writeSheetRows(f, summarySheet, summary); err != nil {
		return err
	}

	for _, sec := range r.Sections {
		name := sec.Key
		if len(name) > maxSheetChars {
			name = name[:maxSheetChars]
		}
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeSheetRows(f, name, sectionRows(sec)); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func sectionRows(sec Section) [][]interface{} {
	rows := [][]interface{}{{sec.Title}, {"Total alums", sec.Total}}

	if len(sec.Shares) > 0 {
		rows = append(rows, []interface{}{}, []interface{}{"Category", "Depth", "Count", "Of", "Percent", "Defined", "CI level", "CI lower", "CI upper"})
		for _, sh := range sec.Shares {
			row := []interface{}{sh.Label, sh.Depth, sh.Count, sh.Total, sh.Percent, sh.Defined}
			if sh.Interval != nil {
				row = append(row, sh.Interval.Level, sh.Interval.Lower, sh.Interval.Upper)
			}
			rows = append(rows, row)
		}
	}

	if len(sec.Notes) > 0 {
		rows = append(rows, []interface{}{}, []interface{}{"Notes"})
		for _, note := range sec.Notes {
			rows = append(rows, []interface{}{note})
		}
	}

	if len(sec.Stories) > 0 {
		rows = append(rows, []interface{}{}, []interface{}{"Name", "Award", "Leadership role", "Success story"})
		for _, st := range sec.Stories {
			rows = append(rows, []interface{}{st.Name, st.Award, st.Leadership, st.Story})
		}
	}
	return rows
}

func writeSheetRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
