// Package psychostats provides the pure numeric routines used to validate
// mastery predictions: ranking and calibration metrics, the Wilson score
// interval, and an inverse-normal-CDF approximation.
package psychostats

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch reports prediction and outcome slices of different sizes.
var ErrLengthMismatch = errors.New("predictions and outcomes differ in length")

// logLossEpsilon clamps predictions away from 0 and 1 before taking logs.
const logLossEpsilon = 1e-15

// calibrationBins is the number of equal-width probability bins used for
// expected calibration error.
const calibrationBins = 10

// ValidationMetrics bundles the standard fit diagnostics for a set of
// probabilistic predictions against binary outcomes.
type ValidationMetrics struct {
	AUC              float64 `json:"auc"`
	BrierScore       float64 `json:"brier_score"`
	CalibrationError float64 `json:"calibration_error"`
	Accuracy         float64 `json:"accuracy"`
	LogLoss          float64 `json:"log_loss"`
	SampleSize       int     `json:"sample_size"`
}

// Evaluate computes all validation metrics for one prediction set.
func Evaluate(preds []float64, outcomes []bool) (ValidationMetrics, error) {
	if len(preds) != len(outcomes) {
		return ValidationMetrics{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(preds), len(outcomes))
	}
	return ValidationMetrics{
		AUC:              AUC(preds, outcomes),
		BrierScore:       Brier(preds, outcomes),
		CalibrationError: CalibrationError(preds, outcomes),
		Accuracy:         Accuracy(preds, outcomes),
		LogLoss:          LogLoss(preds, outcomes),
		SampleSize:       len(preds),
	}, nil
}

// AUC computes the area under the ROC curve as the Mann-Whitney U statistic
// over all (positive, negative) prediction pairs. Ties count as half.
// If either class is empty the curve is undefined and 0.5 is returned.
func AUC(preds []float64, outcomes []bool) float64 {
	var pos, neg []float64
	for i, p := range preds {
		if outcomes[i] {
			pos = append(pos, p)
		} else {
			neg = append(neg, p)
		}
	}
	if len(pos) == 0 || len(neg) == 0 {
		return 0.5
	}

	wins := 0.0
	for _, p := range pos {
		for _, n := range neg {
			switch {
			case p > n:
				wins += 1.0
			case p == n:
				wins += 0.5
			}
		}
	}
	return wins / float64(len(pos)*len(neg))
}

// Brier computes the mean squared error between predictions and outcomes.
func Brier(preds []float64, outcomes []bool) float64 {
	if len(preds) == 0 {
		return 0
	}
	sum := 0.0
	for i, p := range preds {
		y := 0.0
		if outcomes[i] {
			y = 1.0
		}
		d := p - y
		sum += d * d
	}
	return sum / float64(len(preds))
}

// LogLoss computes the mean cross-entropy. Only the probability being
// logged is floored at logLossEpsilon, so a hard 0 or 1 never produces an
// infinite loss while a perfect prediction still contributes exactly 0.
func LogLoss(preds []float64, outcomes []bool) float64 {
	if len(preds) == 0 {
		return 0
	}
	sum := 0.0
	for i, p := range preds {
		q := p
		if !outcomes[i] {
			q = 1 - p
		}
		if q < logLossEpsilon {
			q = logLossEpsilon
		}
		sum += -math.Log(q)
	}
	return sum / float64(len(preds))
}

// Accuracy computes the fraction of outcomes matched by thresholding
// predictions at 0.5.
func Accuracy(preds []float64, outcomes []bool) float64 {
	if len(preds) == 0 {
		return 0
	}
	correct := 0
	for i, p := range preds {
		if (p >= 0.5) == outcomes[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(preds))
}

// CalibrationError computes the expected calibration error over ten
// equal-width probability bins: the bin-count-weighted mean absolute gap
// between average prediction and average outcome per bin.
func CalibrationError(preds []float64, outcomes []bool) float64 {
	if len(preds) == 0 {
		return 0
	}

	var binPred, binOutcome [calibrationBins]float64
	var binCount [calibrationBins]int

	for i, p := range preds {
		b := int(p * calibrationBins)
		if b >= calibrationBins {
			b = calibrationBins - 1
		}
		if b < 0 {
			b = 0
		}
		binPred[b] += p
		if outcomes[i] {
			binOutcome[b]++
		}
		binCount[b]++
	}

	ece := 0.0
	for b := 0; b < calibrationBins; b++ {
		if binCount[b] == 0 {
			continue
		}
		n := float64(binCount[b])
		gap := math.Abs(binPred[b]/n - binOutcome[b]/n)
		ece += gap * n / float64(len(preds))
	}
	return ece
}
