package bkt

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestUpdate_KnownTrajectory(t *testing.T) {
	// Default parameters, one wrong answer then three right ones.
	p := DefaultParams()
	outcomes := []bool{false, true, true, true}
	want := []float64{0.11232877, 0.42654867, 0.79297125, 0.95064737}

	pm := p.PL0
	for i, correct := range outcomes {
		got, err := Update(pm, correct, p)
		if err != nil {
			t.Fatalf("Update step %d: %v", i, err)
		}
		if !almostEqual(got, want[i], 1e-6) {
			t.Errorf("step %d: Update = %.8f, want %.8f", i, got, want[i])
		}
		pm = got
	}
}

func TestUpdate_TrajectoryFromZeroPrior(t *testing.T) {
	// A learner starting with no mastery at all. The first wrong answer
	// contributes nothing Bayesian (posterior stays 0) but the learning
	// transition still nudges the estimate up by PT.
	p := Params{PL0: 0, PT: 0.1, PS: 0.1, PG: 0.2}
	outcomes := []bool{false, false, true, true, true}
	want := []float64{0.10000000, 0.11232877, 0.42654867, 0.79297125, 0.95064737}

	pm := p.PL0
	for i, correct := range outcomes {
		got, err := Update(pm, correct, p)
		if err != nil {
			t.Fatalf("Update step %d: %v", i, err)
		}
		if !almostEqual(got, want[i], 1e-6) {
			t.Errorf("step %d: Update = %.8f, want %.8f", i, got, want[i])
		}
		pm = got
	}
}

func TestUpdate_Direction(t *testing.T) {
	p := DefaultParams()

	up, err := Update(0.5, true, p)
	if err != nil {
		t.Fatal(err)
	}
	if up <= 0.5 {
		t.Errorf("correct answer should raise the estimate: got %.4f", up)
	}

	down, err := Update(0.5, false, p)
	if err != nil {
		t.Fatal(err)
	}
	// The learning transition can outweigh a single wrong answer only when
	// PT is large; with defaults a wrong answer must not raise the estimate
	// above where a right one lands it.
	if down >= up {
		t.Errorf("incorrect answer (%.4f) should land below correct (%.4f)", down, up)
	}
}

func TestUpdate_StaysInRange(t *testing.T) {
	p := Params{PL0: 0.5, PT: 0.3, PS: 0.01, PG: 0.01}

	for _, start := range []float64{0, 0.001, 0.5, 0.999, 1} {
		for _, correct := range []bool{true, false} {
			got, err := Update(start, correct, p)
			if err != nil {
				t.Fatalf("Update(%v, %v): %v", start, correct, err)
			}
			if got < 0 || got > 1 {
				t.Errorf("Update(%v, %v) = %v, out of [0,1]", start, correct, got)
			}
		}
	}
}

func TestUpdate_InvalidInputs(t *testing.T) {
	p := DefaultParams()

	if _, err := Update(-0.1, true, p); err == nil {
		t.Error("expected error for negative pMastery")
	}
	if _, err := Update(1.1, true, p); err == nil {
		t.Error("expected error for pMastery > 1")
	}

	bad := Params{PL0: 0.1, PT: 0.1, PS: 0.6, PG: 0.5}
	if _, err := Update(0.5, true, bad); err == nil {
		t.Error("expected error for PS+PG >= 1")
	}
}

func TestPredict(t *testing.T) {
	p := DefaultParams() // PS=0.1, PG=0.2

	tests := []struct {
		pMastery float64
		want     float64
	}{
		{0, 0.2},   // pure guessing
		{1, 0.9},   // 1 - slip
		{0.5, 0.55},
	}

	for _, tc := range tests {
		got, err := Predict(tc.pMastery, p)
		if err != nil {
			t.Fatalf("Predict(%v): %v", tc.pMastery, err)
		}
		if !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("Predict(%v) = %v, want %v", tc.pMastery, got, tc.want)
		}
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       Params
		wantErr bool
	}{
		{"defaults", DefaultParams(), false},
		{"zero PL0", Params{PL0: 0, PT: 0.1, PS: 0.1, PG: 0.2}, false},
		{"PL0 at one", Params{PL0: 1, PT: 0.1, PS: 0.1, PG: 0.2}, true},
		{"zero PT", Params{PL0: 0.1, PT: 0, PS: 0.1, PG: 0.2}, true},
		{"slip guess sum one", Params{PL0: 0.1, PT: 0.1, PS: 0.5, PG: 0.5}, true},
		{"negative slip", Params{PL0: 0.1, PT: 0.1, PS: -0.1, PG: 0.2}, true},
	}

	for _, tc := range tests {
		err := tc.p.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
