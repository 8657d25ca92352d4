package bkt

import "fmt"

// Params holds the four Bayesian Knowledge Tracing parameters for one skill.
type Params struct {
	// PL0 is the prior probability that the skill is already mastered
	// before the first attempt.
	PL0 float64 `json:"p_l0"`
	// PT is the probability of transitioning from unmastered to mastered
	// after an attempt.
	PT float64 `json:"p_t"`
	// PS is the slip probability: answering incorrectly despite mastery.
	PS float64 `json:"p_s"`
	// PG is the guess probability: answering correctly without mastery.
	PG float64 `json:"p_g"`
}

// DefaultParams returns the starting parameters used before any fitting
// has run for a skill.
func DefaultParams() Params {
	return Params{PL0: 0.1, PT: 0.1, PS: 0.1, PG: 0.2}
}

// Validate checks the parameters against the model's constraints.
// PL0 may be 0 (learner definitely starts unmastered); the remaining
// parameters must be strictly inside (0,1), and PS+PG must stay below 1
// or the two hidden states become indistinguishable.
func (p Params) Validate() error {
	if p.PL0 < 0 || p.PL0 >= 1 {
		return fmt.Errorf("%w: PL0 = %v, want [0,1)", ErrInvalidParams, p.PL0)
	}
	if p.PT <= 0 || p.PT >= 1 {
		return fmt.Errorf("%w: PT = %v, want (0,1)", ErrInvalidParams, p.PT)
	}
	if p.PS <= 0 || p.PS >= 1 {
		return fmt.Errorf("%w: PS = %v, want (0,1)", ErrInvalidParams, p.PS)
	}
	if p.PG <= 0 || p.PG >= 1 {
		return fmt.Errorf("%w: PG = %v, want (0,1)", ErrInvalidParams, p.PG)
	}
	if p.PS+p.PG >= 1 {
		return fmt.Errorf("%w: PS+PG = %v, want < 1", ErrInvalidParams, p.PS+p.PG)
	}
	return nil
}
