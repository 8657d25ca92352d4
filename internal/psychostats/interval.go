package psychostats

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLevel reports a confidence level outside (0,1).
var ErrInvalidLevel = errors.New("confidence level out of range")

// ErrInvalidProbability reports a probability outside [0,1].
var ErrInvalidProbability = errors.New("probability out of range")

// MasteryEstimate is a mastery probability with an uncertainty interval.
type MasteryEstimate struct {
	PMastery   float64 `json:"p_mastery"`
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Level      float64 `json:"level"`
	NEffective float64 `json:"n_effective"`
}

// EffectiveSampleSize discounts the raw attempt count for serial dependence:
// attempts in a BKT sequence are not independent draws because the latent
// mastery state can change mid-sequence, and the discount grows with the
// learning rate pT.
func EffectiveSampleSize(n int, pT float64) float64 {
	if n <= 0 {
		return 0
	}
	nf := float64(n)
	return nf / (1 + 2*pT*(nf-1)/nf)
}

// EstimateMastery builds a confidence interval around a mastery probability
// using the Wilson score formula with the effective sample size. With no
// attempts the interval is the uninformative [0,1].
func EstimateMastery(pMastery float64, attempts int, pT, level float64) (MasteryEstimate, error) {
	if pMastery < 0 || pMastery > 1 {
		return MasteryEstimate{}, fmt.Errorf("%w: pMastery = %v", ErrInvalidProbability, pMastery)
	}
	if level <= 0 || level >= 1 {
		return MasteryEstimate{}, fmt.Errorf("%w: %v", ErrInvalidLevel, level)
	}

	nEff := EffectiveSampleSize(attempts, pT)
	if nEff == 0 {
		return MasteryEstimate{
			PMastery: pMastery,
			Lower:    0,
			Upper:    1,
			Level:    level,
		}, nil
	}

	z, err := NormalQuantile((1 + level) / 2)
	if err != nil {
		return MasteryEstimate{}, err
	}

	lower, upper := WilsonInterval(pMastery, nEff, z)
	return MasteryEstimate{
		PMastery:   pMastery,
		Lower:      lower,
		Upper:      upper,
		Level:      level,
		NEffective: nEff,
	}, nil
}

// WilsonInterval returns the Wilson score interval for proportion p over n
// observations at critical value z. It stays within [0,1] and behaves well
// when p sits near either boundary.
func WilsonInterval(p, n, z float64) (lower, upper float64) {
	if n <= 0 {
		return 0, 1
	}
	z2 := z * z
	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	margin := z / denom * math.Sqrt(p*(1-p)/n+z2/(4*n*n))

	lower = center - margin
	upper = center + margin
	if lower < 0 {
		lower = 0
	}
	if upper > 1 {
		upper = 1
	}
	return lower, upper
}

// Acklam's rational approximation coefficients for the inverse normal CDF.
var (
	acklamA = [6]float64{-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02, 1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00}
	acklamB = [5]float64{-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02, 6.680131188771972e+01, -1.328068155288572e+01}
	acklamC = [6]float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00, -2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	acklamD = [4]float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00, 3.754408661907416e+00}
)

// acklamBreak splits the approximation into lower-tail, central, and
// upper-tail regions.
const acklamBreak = 0.02425

// NormalQuantile computes the inverse standard normal CDF using Acklam's
// rational approximation, accurate to roughly 1e-9 over (0,1). A rational
// approximation rather than a lookup table so arbitrary confidence levels
// are supported.
func NormalQuantile(p float64) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("%w: quantile input %v, want (0,1)", ErrInvalidLevel, p)
	}

	switch {
	case p < acklamBreak:
		q := math.Sqrt(-2 * math.Log(p))
		return tailQuantile(q), nil
	case p > 1-acklamBreak:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -tailQuantile(q), nil
	default:
		q := p - 0.5
		r := q * q
		num := (((((acklamA[0]*r+acklamA[1])*r+acklamA[2])*r+acklamA[3])*r+acklamA[4])*r + acklamA[5]) * q
		den := ((((acklamB[0]*r+acklamB[1])*r+acklamB[2])*r+acklamB[3])*r+acklamB[4])*r + 1
		return num / den, nil
	}
}

func tailQuantile(q float64) float64 {
	num := ((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]
	den := (((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1
	return num / den
}
