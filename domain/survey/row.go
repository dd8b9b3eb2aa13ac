package survey

import "strings"

// Row is one respondent's answers keyed by field. A field absent from the
// map reads as the empty answer.
type Row map[Field]string

// Value returns the raw answer for f.
func (r Row) Value(f Field) string {
	return r[f]
}

// Selected reports whether a select-all-that-apply option was ticked.
func (r Row) Selected(f Field) bool {
	return r[f] == Selected
}

// Is reports an exact match of the answer against want.
func (r Row) Is(f Field, want string) bool {
	return r[f] == want
}

// HasPrefix reports whether the answer starts with prefix.
func (r Row) HasPrefix(f Field, prefix string) bool {
	return strings.HasPrefix(r[f], prefix)
}

// Name joins the respondent's given and family names with a space.
func (r Row) Name() string {
	return r[FirstName] + " " + r[LastName]
}
