package bkt

import (
	"math"

	"github.com/abhisek/tutorkit/internal/psychostats"
)

const (
	// MinFitAttempts is the smallest history that supports fitting.
	// Shorter histories return the starting parameters with FitPoor.
	MinFitAttempts = 5

	// DefaultMaxIterations caps the EM loop.
	DefaultMaxIterations = 100

	// DefaultTolerance is the log-likelihood convergence threshold.
	DefaultTolerance = 1e-4
)

// Parameter clamp ranges applied after every M-step. The slip/guess upper
// bound of 0.5 keeps the model interpretable (an unmastered learner should
// not outguess a mastered one); preserved as-is for behavioral compatibility.
const (
	minProb      = 0.001
	maxProb      = 0.999
	maxSlipGuess = 0.5
)

// FitQuality classifies how well fitted parameters predict the
// attempt sequence they were fitted on.
type FitQuality string

const (
	FitExcellent  FitQuality = "excellent"
	FitGood       FitQuality = "good"
	FitAcceptable FitQuality = "acceptable"
	FitPoor       FitQuality = "poor"
)

// FitOptions configures the EM loop.
type FitOptions struct {
	// MaxIterations caps EM iterations (default DefaultMaxIterations).
	MaxIterations int
	// Tolerance is the absolute log-likelihood delta below which the fit
	// is considered converged (default DefaultTolerance).
	Tolerance float64
	// Initial are the starting parameters (default DefaultParams).
	Initial Params
}

// FitResult is the outcome of an EM fit.
type FitResult struct {
	Params        Params
	LogLikelihood float64
	Iterations    int
	Converged     bool
	Quality       FitQuality
	SampleSize    int
}

// Fit re-estimates BKT parameters from a chronological sequence of attempt
// outcomes using Expectation-Maximization over the two-state HMM
// (state 0 = unmastered, state 1 = mastered, state 1 absorbing).
//
// Fewer than MinFitAttempts outcomes is not an error: the result carries the
// starting parameters with Quality FitPoor and Converged false.
func Fit(outcomes []bool, opts FitOptions) FitResult {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}
	if (opts.Initial == Params{}) {
		opts.Initial = DefaultParams()
	}

	if len(outcomes) < MinFitAttempts {
		return FitResult{
			Params:     opts.Initial,
			Quality:    FitPoor,
			Converged:  false,
			SampleSize: len(outcomes),
		}
	}

	p := opts.Initial
	var logLik, prevLogLik float64
	iterations := 0
	converged := false

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		iterations = iter

		post := forwardBackward(outcomes, p)
		logLik = post.logLikelihood

		p = maximize(outcomes, post, p)

		if iter > 1 && math.Abs(logLik-prevLogLik) < opts.Tolerance {
			converged = true
			break
		}
		prevLogLik = logLik
	}

	return FitResult{
		Params:        p,
		LogLikelihood: logLik,
		Iterations:    iterations,
		Converged:     converged,
		Quality:       classifyFit(outcomes, p),
		SampleSize:    len(outcomes),
	}
}

// posteriors holds the E-step output: per-timestep state posteriors and
// expected transition counts.
type posteriors struct {
	// gamma[t][s] = P(state s at t | observations)
	gamma [][2]float64
	// xi01 and xi00 are expected 0→1 and 0→0 transition counts
	// summed over t = 0..T-2.
	xi01, xi00    float64
	logLikelihood float64
}

// emit returns the emission probability of the observation in the given state.
func emit(p Params, state int, correct bool) float64 {
	if state == 1 {
		if correct {
			return 1 - p.PS
		}
		return p.PS
	}
	if correct {
		return p.PG
	}
	return 1 - p.PG
}

// forwardBackward runs the scaled forward-backward algorithm over the
// observation sequence. Per-timestep scaling keeps probabilities in range
// for long sequences; the log-likelihood accumulates as the sum of log
// scale factors.
func forwardBackward(outcomes []bool, p Params) posteriors {
	n := len(outcomes)
	alpha := make([][2]float64, n)
	beta := make([][2]float64, n)
	scales := make([]float64, n)

	// Forward pass.
	a0 := (1 - p.PL0) * emit(p, 0, outcomes[0])
	a1 := p.PL0 * emit(p, 1, outcomes[0])
	scales[0] = math.Max(a0+a1, epsilon)
	alpha[0] = [2]float64{a0 / scales[0], a1 / scales[0]}

	for t := 1; t < n; t++ {
		a0 := alpha[t-1][0] * (1 - p.PT) * emit(p, 0, outcomes[t])
		a1 := (alpha[t-1][0]*p.PT + alpha[t-1][1]) * emit(p, 1, outcomes[t])
		scales[t] = math.Max(a0+a1, epsilon)
		alpha[t] = [2]float64{a0 / scales[t], a1 / scales[t]}
	}

	logLik := 0.0
	for _, s := range scales {
		logLik += math.Log(s)
	}

	// Backward pass, scaled by the forward scale factors.
	beta[n-1] = [2]float64{1, 1}
	for t := n - 2; t >= 0; t-- {
		e0 := emit(p, 0, outcomes[t+1])
		e1 := emit(p, 1, outcomes[t+1])
		b0 := ((1-p.PT)*e0*beta[t+1][0] + p.PT*e1*beta[t+1][1]) / scales[t+1]
		b1 := e1 * beta[t+1][1] / scales[t+1]
		beta[t] = [2]float64{b0, b1}
	}

	post := posteriors{
		gamma:         make([][2]float64, n),
		logLikelihood: logLik,
	}

	for t := 0; t < n; t++ {
		g0 := alpha[t][0] * beta[t][0]
		g1 := alpha[t][1] * beta[t][1]
		sum := math.Max(g0+g1, epsilon)
		post.gamma[t] = [2]float64{g0 / sum, g1 / sum}
	}

	for t := 0; t < n-1; t++ {
		e0 := emit(p, 0, outcomes[t+1])
		e1 := emit(p, 1, outcomes[t+1])
		post.xi01 += alpha[t][0] * p.PT * e1 * beta[t+1][1] / scales[t+1]
		post.xi00 += alpha[t][0] * (1 - p.PT) * e0 * beta[t+1][0] / scales[t+1]
	}

	return post
}

// maximize recomputes parameters from expected counts and clamps them back
// into their valid ranges.
func maximize(outcomes []bool, post posteriors, prev Params) Params {
	p := prev

	p.PL0 = post.gamma[0][1]

	if denom := post.xi01 + post.xi00; denom > 0 {
		p.PT = post.xi01 / denom
	}

	var masteredMass, unmasteredMass float64
	var correctMastered, correctUnmastered float64
	for t, correct := range outcomes {
		masteredMass += post.gamma[t][1]
		unmasteredMass += post.gamma[t][0]
		if correct {
			correctMastered += post.gamma[t][1]
			correctUnmastered += post.gamma[t][0]
		}
	}
	if masteredMass > 0 {
		p.PS = 1 - correctMastered/masteredMass
	}
	if unmasteredMass > 0 {
		p.PG = correctUnmastered / unmasteredMass
	}

	p.PL0 = clampRange(p.PL0, minProb, maxProb)
	p.PT = clampRange(p.PT, minProb, maxProb)
	p.PS = clampRange(p.PS, minProb, maxSlipGuess)
	p.PG = clampRange(p.PG, minProb, maxSlipGuess)

	// Identifiability: rescale slip and guess proportionally if their sum
	// reaches 1 (only possible when both sit at the 0.5 cap).
	if sum := p.PS + p.PG; sum >= 1 {
		factor := (1 - minProb) / sum
		p.PS *= factor
		p.PG *= factor
	}

	return p
}

// classifyFit replays the sequence with the fitted parameters and buckets
// the resulting Brier score.
func classifyFit(outcomes []bool, p Params) FitQuality {
	preds := make([]float64, len(outcomes))
	pm := p.PL0
	for t, correct := range outcomes {
		pred, err := Predict(pm, p)
		if err != nil {
			return FitPoor
		}
		preds[t] = pred
		next, err := Update(pm, correct, p)
		if err != nil {
			return FitPoor
		}
		pm = next
	}

	brier := psychostats.Brier(preds, outcomes)
	switch {
	case brier < 0.15:
		return FitExcellent
	case brier < 0.25:
		return FitGood
	case brier < 0.35:
		return FitAcceptable
	default:
		return FitPoor
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
