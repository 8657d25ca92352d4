// Package bkt implements two-state Bayesian Knowledge Tracing: the per-attempt
// mastery update, the observation-probability prediction, and EM parameter
// fitting over an attempt history.
package bkt

import (
	"errors"
	"fmt"
)

// ErrInvalidParams reports BKT parameters outside their valid ranges.
var ErrInvalidParams = errors.New("invalid BKT parameters")

// ErrInvalidProbability reports a caller-supplied probability outside [0,1].
var ErrInvalidProbability = errors.New("probability out of range")

// epsilon guards divisions by the observation marginal, which reaches 0
// when pMastery sits exactly at 0 or 1 with extreme parameters.
const epsilon = 1e-9

// Update applies one observed attempt to the current mastery estimate and
// returns the new estimate. The Bayesian posterior is computed first
// (conditioning on the observation), then the learning transition PT is
// applied. The result is always within [0,1].
func Update(pMastery float64, correct bool, p Params) (float64, error) {
	if pMastery < 0 || pMastery > 1 {
		return 0, fmt.Errorf("%w: pMastery = %v", ErrInvalidProbability, pMastery)
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	var posterior float64
	if correct {
		marginal := (1-p.PS)*pMastery + p.PG*(1-pMastery)
		if marginal < epsilon {
			marginal = epsilon
		}
		posterior = (1 - p.PS) * pMastery / marginal
	} else {
		marginal := p.PS*pMastery + (1-p.PG)*(1-pMastery)
		if marginal < epsilon {
			marginal = epsilon
		}
		posterior = p.PS * pMastery / marginal
	}

	updated := posterior + (1-posterior)*p.PT
	return clamp01(updated), nil
}

// Predict returns the probability of a correct response at the current
// mastery estimate, before observing the attempt.
func Predict(pMastery float64, p Params) (float64, error) {
	if pMastery < 0 || pMastery > 1 {
		return 0, fmt.Errorf("%w: pMastery = %v", ErrInvalidProbability, pMastery)
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return (1-p.PS)*pMastery + p.PG*(1-pMastery), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
