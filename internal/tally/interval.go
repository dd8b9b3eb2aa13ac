package tally

import (
	"math"

	"alumstats/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// Interval is a confidence interval on a share, in percent.
type Interval struct {
	Level float64 `json:"level" yaml:"level"`
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Wilson computes the Wilson score interval for count successes out of total
// at the given confidence level. It stays inside [0,100] even for shares of
// 0% or 100%, where the normal approximation collapses.
func Wilson(count, total int, level float64) (Interval, error) {
	if level <= 0 || level >= 1 {
		return Interval{}, core.ErrInvalidConfLevel
	}
	if total == 0 {
		return Interval{}, core.ErrZeroTotal
	}

	z := distuv.UnitNormal.Quantile(1 - (1-level)/2)
	n := float64(total)
	p := float64(count) / n
	z2 := z * z

	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	margin := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom

	return Interval{
		Level: level,
		Lower: math.Max(0, center-margin) * 100,
		Upper: math.Min(1, center+margin) * 100,
	}, nil
}
