package psychostats

import (
	"testing"
)

func TestNormalQuantile(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.9, 1.281552},
		{0.95, 1.644854},
		{0.975, 1.959964},
		{0.995, 2.575829},
		{0.9995, 3.290527},
		{0.01, -2.326348}, // lower tail region
	}

	for _, tc := range tests {
		got, err := NormalQuantile(tc.p)
		if err != nil {
			t.Fatalf("NormalQuantile(%v): %v", tc.p, err)
		}
		if !almostEqual(got, tc.want, 1e-5) {
			t.Errorf("NormalQuantile(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestNormalQuantile_Symmetry(t *testing.T) {
	for _, p := range []float64{0.001, 0.01, 0.2, 0.45} {
		lo, err := NormalQuantile(p)
		if err != nil {
			t.Fatal(err)
		}
		hi, err := NormalQuantile(1 - p)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(lo, -hi, 1e-8) {
			t.Errorf("quantile not symmetric at %v: %v vs %v", p, lo, hi)
		}
	}
}

func TestNormalQuantile_InvalidInput(t *testing.T) {
	for _, p := range []float64{0, 1, -0.5, 1.5} {
		if _, err := NormalQuantile(p); err == nil {
			t.Errorf("NormalQuantile(%v): expected error", p)
		}
	}
}

func TestWilsonInterval(t *testing.T) {
	lower, upper := WilsonInterval(0.8, 25, 1.959964)
	if !almostEqual(lower, 0.608690, 1e-5) || !almostEqual(upper, 0.911394, 1e-5) {
		t.Errorf("WilsonInterval(0.8, 25) = [%v, %v], want [0.608690, 0.911394]", lower, upper)
	}
}

func TestWilsonInterval_Bounds(t *testing.T) {
	// Near-boundary proportions must stay inside [0,1], which is the
	// whole point of Wilson over the normal approximation.
	cases := []struct{ p, n float64 }{
		{0.0, 10}, {1.0, 10}, {0.02, 5}, {0.98, 5}, {0.5, 1},
	}
	for _, tc := range cases {
		lower, upper := WilsonInterval(tc.p, tc.n, 2.575829)
		if lower < 0 || upper > 1 || lower > upper {
			t.Errorf("WilsonInterval(%v, %v) = [%v, %v], out of order or range", tc.p, tc.n, lower, upper)
		}
	}
}

func TestWilsonInterval_NarrowsWithN(t *testing.T) {
	l1, u1 := WilsonInterval(0.7, 10, 1.959964)
	l2, u2 := WilsonInterval(0.7, 100, 1.959964)
	if (u2 - l2) >= (u1 - l1) {
		t.Errorf("interval did not narrow: n=10 width %v, n=100 width %v", u1-l1, u2-l2)
	}
}

func TestEffectiveSampleSize(t *testing.T) {
	tests := []struct {
		n    int
		pT   float64
		want float64
	}{
		{0, 0.1, 0},
		{20, 0.1, 16.806723},
		{1, 0.1, 1},
	}
	for _, tc := range tests {
		got := EffectiveSampleSize(tc.n, tc.pT)
		if !almostEqual(got, tc.want, 1e-5) {
			t.Errorf("EffectiveSampleSize(%d, %v) = %v, want %v", tc.n, tc.pT, got, tc.want)
		}
	}

	// Faster learners mean less independent evidence per attempt.
	if EffectiveSampleSize(20, 0.3) >= EffectiveSampleSize(20, 0.1) {
		t.Error("effective sample size should shrink as pT grows")
	}
}

func TestEstimateMastery(t *testing.T) {
	est, err := EstimateMastery(0.8, 25, 0, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	// pT = 0 keeps the effective n at the raw count.
	if !almostEqual(est.NEffective, 25, 1e-9) {
		t.Errorf("NEffective = %v, want 25", est.NEffective)
	}
	if !almostEqual(est.Lower, 0.608690, 1e-5) || !almostEqual(est.Upper, 0.911394, 1e-5) {
		t.Errorf("interval = [%v, %v], want [0.608690, 0.911394]", est.Lower, est.Upper)
	}
}

func TestEstimateMastery_NoAttempts(t *testing.T) {
	est, err := EstimateMastery(0.3, 0, 0.1, 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if est.Lower != 0 || est.Upper != 1 {
		t.Errorf("no-attempt interval = [%v, %v], want [0, 1]", est.Lower, est.Upper)
	}
	if est.PMastery != 0.3 {
		t.Errorf("PMastery = %v, want 0.3 passed through", est.PMastery)
	}
}

func TestEstimateMastery_InvalidInputs(t *testing.T) {
	if _, err := EstimateMastery(1.2, 10, 0.1, 0.95); err == nil {
		t.Error("expected error for pMastery > 1")
	}
	if _, err := EstimateMastery(0.5, 10, 0.1, 1.0); err == nil {
		t.Error("expected error for level = 1")
	}
	if _, err := EstimateMastery(0.5, 10, 0.1, 0); err == nil {
		t.Error("expected error for level = 0")
	}
}
