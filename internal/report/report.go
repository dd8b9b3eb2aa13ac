// Package report holds the structured result of a survey run and renders it
// to text, markdown, HTML, JSON, YAML or an xlsx workbook.
package report

import (
	"time"

	"alumstats/domain/core"
	"alumstats/internal/tally"
)

// Share is one "<label>: <percent>% (<count>)" line.
type Share struct {
	Label   string  `json:"label" yaml:"label"`
	Count   int     `json:"count" yaml:"count"`
	Total   int     `json:"total" yaml:"total"`
	Percent float64 `json:"percent" yaml:"percent"`
	// Defined is false when Total is zero and the zero policy filled in 0%.
	Defined bool `json:"defined" yaml:"defined"`
	// Depth 0 shares are relative to the section total; depth 1 shares are
	// relative to the subtotal of the share above them.
	Depth    int             `json:"depth" yaml:"depth"`
	Interval *tally.Interval `json:"interval,omitempty" yaml:"interval,omitempty"`
}

// Story is one respondent's block in the success stories section.
type Story struct {
	Name       string `json:"name" yaml:"name"`
	Award      string `json:"award,omitempty" yaml:"award,omitempty"`
	Leadership string `json:"leadership,omitempty" yaml:"leadership,omitempty"`
	Story      string `json:"story,omitempty" yaml:"story,omitempty"`
}

// Section is the output of one reporting pass.
type Section struct {
	Key     string   `json:"key" yaml:"key"`
	Title   string   `json:"title" yaml:"title"`
	Total   int      `json:"total" yaml:"total"`
	Notes   []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Shares  []Share  `json:"shares,omitempty" yaml:"shares,omitempty"`
	Stories []Story  `json:"stories,omitempty" yaml:"stories,omitempty"`
}

// Share looks up a share by label.
func (s *Section) Share(label string) (Share, bool) {
	for _, sh := range s.Shares {
		if sh.Label == label {
			return sh, true
		}
	}
	return Share{}, false
}

// Report is the complete result of one run.
type Report struct {
	ID          core.ID   `json:"id" yaml:"id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Source      string    `json:"source" yaml:"source"`
	Respondents int       `json:"respondents" yaml:"respondents"`
	Sections    []Section `json:"sections" yaml:"sections"`
}

// New starts an empty report for the given source file.
func New(source string, respondents int) *Report {
	return &Report{
		ID:          core.NewID(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Respondents: respondents,
	}
}

// Add appends a section.
func (r *Report) Add(s *Section) {
	if s == nil {
		return
	}
	r.Sections = append(r.Sections, *s)
}

// Section looks up a section by key.
func (r *Report) Section(key string) (*Section, bool) {
	for i := range r.Sections {
		if r.Sections[i].Key == key {
			return &r.Sections[i], true
		}
	}
	return nil, false
}
