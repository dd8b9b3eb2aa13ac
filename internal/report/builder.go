package report

import (
	"fmt"

	apperrors "alumstats/internal/errors"
	"alumstats/internal/tally"
)

// ZeroTotalPolicy decides what a share against an empty total becomes.
type ZeroTotalPolicy string

const (
	// ZeroTotalError fails the run with a division error.
	ZeroTotalError ZeroTotalPolicy = "error"
	// ZeroTotalZero renders the share as 0% and marks it undefined.
	ZeroTotalZero ZeroTotalPolicy = "zero"
)

// ParseZeroTotalPolicy validates a policy name.
func ParseZeroTotalPolicy(s string) (ZeroTotalPolicy, error) {
	switch p := ZeroTotalPolicy(s); p {
	case ZeroTotalError, ZeroTotalZero:
		return p, nil
	}
	return "", apperrors.InvalidInput(fmt.Sprintf("unknown zero-total policy %q (want error or zero)", s))
}

// Options control how shares are computed.
type Options struct {
	ZeroTotal ZeroTotalPolicy
	// Confidence adds a Wilson interval at this level to every defined
	// share. Zero disables intervals.
	Confidence float64
}

// DefaultOptions keeps the crash-on-empty behaviour and no intervals.
func DefaultOptions() Options {
	return Options{ZeroTotal: ZeroTotalError}
}

// Builder accumulates one section. The first failure sticks and is returned
// by Build.
type Builder struct {
	opts    Options
	section Section
	err     error
}

// NewBuilder starts a section whose top-level shares use total.
func NewBuilder(key, title string, total int, opts Options) *Builder {
	if opts.ZeroTotal == "" {
		opts.ZeroTotal = ZeroTotalError
	}
	return &Builder{
		opts:    opts,
		section: Section{Key: key, Title: title, Total: total},
	}
}

// Share adds a top-level share against the section total.
func (b *Builder) Share(label string, count int) *Builder {
	return b.add(label, count, b.section.Total, 0)
}

// Series adds a top-level share from an indicator series.
func (b *Builder) Series(label string, s tally.Series) *Builder {
	return b.add(label, s.Count(), s.Total(), 0)
}

// SubSeries adds a nested share from a series over a category's rows.
func (b *Builder) SubSeries(label string, s tally.Series) *Builder {
	return b.add(label, s.Count(), s.Total(), 1)
}

// Note adds a free-text line printed before the totals.
func (b *Builder) Note(text string) *Builder {
	b.section.Notes = append(b.section.Notes, text)
	return b
}

// Story adds a success story block.
func (b *Builder) Story(s Story) *Builder {
	b.section.Stories = append(b.section.Stories, s)
	return b
}

func (b *Builder) add(label string, count, total, depth int) *Builder {
	if b.err != nil {
		return b
	}

	share := Share{Label: label, Count: count, Total: total, Depth: depth}
	pct, err := tally.Percentage(count, total)
	switch {
	case err == nil:
		share.Percent = pct
		share.Defined = true
	case b.opts.ZeroTotal == ZeroTotalZero:
		share.Percent = 0
	default:
		b.err = apperrors.Wrapf(apperrors.DivisionError(label), "section %q", b.section.Title)
		return b
	}

	if share.Defined && b.opts.Confidence > 0 {
		ci, err := tally.Wilson(count, total, b.opts.Confidence)
		if err != nil {
			b.err = apperrors.Wrapf(err, "confidence interval for %q", label)
			return b
		}
		share.Interval = &ci
	}

	b.section.Shares = append(b.section.Shares, share)
	return b
}

// Build returns the section or the first error encountered.
func (b *Builder) Build() (*Section, error) {
	if b.err != nil {
		return nil, b.err
	}
	s := b.section
	return &s, nil
}
