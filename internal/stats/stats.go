// Package stats models population strength as a normal distribution whose
// standard deviation scales with the mean through a fixed coefficient of
// variation.
package stats

import "gonum.org/v1/gonum/stat/distuv"

// Distribution is the strength distribution of a population around one
// bounded mean estimate.
type Distribution struct {
	norm distuv.Normal
}

// NewDistribution builds the distribution for a mean strength (N) and a
// population coefficient of variation.
func NewDistribution(mean, cv float64) Distribution {
	return Distribution{norm: distuv.Normal{Mu: mean, Sigma: mean * cv}}
}

// Mean returns the distribution mean in newtons.
func (d Distribution) Mean() float64 { return d.norm.Mu }

// StdDev returns the CV-derived standard deviation in newtons.
func (d Distribution) StdDev() float64 { return d.norm.Sigma }

// StrengthAt returns the strength that the given percentage of the
// population can produce: the quantile at probability 1 − pc/100.
// pc must lie strictly between 0 and 100.
func (d Distribution) StrengthAt(percentCapable float64) float64 {
	return d.norm.Quantile(1 - percentCapable/100)
}

// PercentCapable returns the percentage of the population able to produce
// the given load.
func (d Distribution) PercentCapable(load float64) float64 {
	return (1 - d.norm.CDF(load)) * 100
}
