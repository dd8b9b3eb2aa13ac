package app

import (
	"context"
	"fmt"
	"time"

	"alumstats/domain/survey"
	"alumstats/internal"
	"alumstats/internal/analysis"
	apperrors "alumstats/internal/errors"
	"alumstats/internal/report"
	"alumstats/ports"
)

// MissingColumnPolicy decides what happens when the export lacks a column a
// pass reads.
type MissingColumnPolicy string

const (
	// MissingColumnsFatal stops before any pass runs.
	MissingColumnsFatal MissingColumnPolicy = "fatal"
	// MissingColumnsUnselected reads absent columns as empty answers.
	MissingColumnsUnselected MissingColumnPolicy = "unselected"
)

// ParseMissingColumnPolicy validates a policy name.
func ParseMissingColumnPolicy(s string) (MissingColumnPolicy, error) {
	switch p := MissingColumnPolicy(s); p {
	case MissingColumnsFatal, MissingColumnsUnselected:
		return p, nil
	}
	return "", apperrors.InvalidInput(fmt.Sprintf("unknown missing-columns policy %q (want fatal or unselected)", s))
}

// ReportService loads a survey export and runs the reporting passes over it
type ReportService struct {
	reader ports.DatasetReader
	logger *internal.Logger
}

// ReportRequest defines the inputs for one report run
type ReportRequest struct {
	Source         string // shown in the report header
	Successes      bool
	Options        report.Options
	MissingColumns MissingColumnPolicy
}

// NewReportService creates a report service
func NewReportService(reader ports.DatasetReader, logger *internal.Logger) *ReportService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportService{reader: reader, logger: logger}
}

// Generate reads the dataset and runs every enabled pass in order. The first
// failing pass aborts the run.
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (*report.Report, error) {
	ds, err := s.reader.ReadDataset(ctx)
	if err != nil {
		return nil, err
	}

	passes := analysis.Passes(req.Successes)
	if err := s.checkColumns(ds, passes, req.MissingColumns); err != nil {
		return nil, err
	}

	rep := report.New(req.Source, ds.Len())
	for _, pass := range passes {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.Wrapf(err, "report cancelled before %s", pass.Key)
		}

		start := time.Now()
		section, err := pass.Run(ds, req.Options)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("pass %s: %d shares, %d notes, %d stories in %s",
			pass.Key, len(section.Shares), len(section.Notes), len(section.Stories), time.Since(start))
		rep.Add(section)
	}

	s.logger.Info("report %s: %d sections over %d respondents", rep.ID, len(rep.Sections), rep.Respondents)
	return rep, nil
}

func (s *ReportService) checkColumns(ds *survey.Dataset, passes []analysis.Pass, policy MissingColumnPolicy) error {
	missing := ds.Missing(analysis.RequiredFields(passes))
	if len(missing) == 0 {
		return nil
	}

	questions := make([]string, len(missing))
	for i, f := range missing {
		questions[i] = f.Question()
	}

	if policy == MissingColumnsUnselected {
		for _, q := range questions {
			s.logger.Warn("column missing, treating as unanswered: %q", q)
		}
		return nil
	}
	return apperrors.MissingColumn(questions)
}
