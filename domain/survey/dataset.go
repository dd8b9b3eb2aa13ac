package survey

import "strings"

const utf8BOM = "\ufeff"

// Dataset is the ordered, load-once set of survey responses. Passes only
// read from it.
type Dataset struct {
	headers []string
	present map[Field]bool
	rows    []Row
}

// NewDataset maps header cells to known fields and builds one Row per
// record. Unknown headers are ignored; short records read as empty answers
// for their trailing columns and surplus cells are dropped. When a question
// appears twice the later column wins.
func NewDataset(headers []string, records [][]string) *Dataset {
	hdrs := make([]string, len(headers))
	copy(hdrs, headers)
	if len(hdrs) > 0 {
		hdrs[0] = strings.TrimPrefix(hdrs[0], utf8BOM)
	}

	columns := make(map[int]Field)
	present := make(map[Field]bool)
	for i, h := range hdrs {
		if f, ok := FieldByQuestion(h); ok {
			columns[i] = f
			present[f] = true
		}
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row := make(Row, len(present))
		for i := range hdrs {
			f, ok := columns[i]
			if !ok {
				continue
			}
			if i < len(record) {
				row[f] = record[i]
			} else {
				row[f] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{headers: hdrs, present: present, rows: rows}
}

// Rows returns the responses in file order. Callers must not modify them.
func (d *Dataset) Rows() []Row {
	return d.rows
}

// Len returns the number of responses.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Headers returns the header row as read, BOM removed.
func (d *Dataset) Headers() []string {
	out := make([]string, len(d.headers))
	copy(out, d.headers)
	return out
}

// Has reports whether the header contained f.
func (d *Dataset) Has(f Field) bool {
	return d.present[f]
}

// Missing returns the subset of required fields not in the header, in the
// order given.
func (d *Dataset) Missing(required []Field) []Field {
	var missing []Field
	seen := make(map[Field]bool)
	for _, f := range required {
		if seen[f] {
			continue
		}
		seen[f] = true
		if !d.present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}
