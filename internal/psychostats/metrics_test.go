package psychostats

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAUC(t *testing.T) {
	tests := []struct {
		name     string
		preds    []float64
		outcomes []bool
		want     float64
	}{
		{"perfect separation", []float64{0.9, 0.8, 0.2, 0.1}, []bool{true, true, false, false}, 1.0},
		{"perfectly wrong", []float64{0.1, 0.2, 0.8, 0.9}, []bool{true, true, false, false}, 0.0},
		{"all tied", []float64{0.5, 0.5, 0.5, 0.5}, []bool{true, false, true, false}, 0.5},
		{"all positive", []float64{0.9, 0.8}, []bool{true, true}, 0.5},
		{"all negative", []float64{0.1, 0.2}, []bool{false, false}, 0.5},
		{"empty", nil, nil, 0.5},
		{"one misranked pair", []float64{0.9, 0.3, 0.6}, []bool{true, true, false}, 0.5},
	}

	for _, tc := range tests {
		got := AUC(tc.preds, tc.outcomes)
		if !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("%s: AUC = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAUC_InvariantToMonotoneRescale(t *testing.T) {
	preds := []float64{0.1, 0.4, 0.35, 0.8, 0.65}
	outcomes := []bool{false, false, true, true, true}

	rescaled := make([]float64, len(preds))
	for i, p := range preds {
		rescaled[i] = p * p // strictly increasing on [0,1]
	}

	if a, b := AUC(preds, outcomes), AUC(rescaled, outcomes); !almostEqual(a, b, 1e-9) {
		t.Errorf("AUC changed under monotone rescale: %v vs %v", a, b)
	}
}

func TestBrier(t *testing.T) {
	tests := []struct {
		name     string
		preds    []float64
		outcomes []bool
		want     float64
	}{
		{"perfect", []float64{1, 1, 0}, []bool{true, true, false}, 0},
		{"worst", []float64{0, 1}, []bool{true, false}, 1},
		{"uninformative", []float64{0.5, 0.5}, []bool{true, false}, 0.25},
		{"empty", nil, nil, 0},
	}

	for _, tc := range tests {
		got := Brier(tc.preds, tc.outcomes)
		if !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("%s: Brier = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLogLoss(t *testing.T) {
	// ln(2) for a coin-flip prediction.
	got := LogLoss([]float64{0.5, 0.5}, []bool{true, false})
	if !almostEqual(got, math.Log(2), 1e-9) {
		t.Errorf("LogLoss(0.5) = %v, want ln 2", got)
	}

	// Hard 0/1 predictions on the wrong side must clamp, not blow up.
	got = LogLoss([]float64{0, 1}, []bool{true, false})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("LogLoss with hard predictions = %v, want finite", got)
	}
	want := -math.Log(1e-15)
	if !almostEqual(got, want, 1e-3) {
		t.Errorf("LogLoss clamp = %v, want about %v", got, want)
	}

	// A predictor that always outputs the true label with certainty carries
	// exactly zero loss; the epsilon floor must not leak into this case.
	got = LogLoss([]float64{1, 1, 0, 0}, []bool{true, true, false, false})
	if got != 0 {
		t.Errorf("LogLoss for a perfect predictor = %v, want exactly 0", got)
	}
}

func TestAccuracy(t *testing.T) {
	preds := []float64{0.9, 0.5, 0.4, 0.1}
	outcomes := []bool{true, true, true, false}
	// 0.5 thresholds as positive, so 3 of 4 match.
	if got := Accuracy(preds, outcomes); !almostEqual(got, 0.75, 1e-9) {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

func TestCalibrationError(t *testing.T) {
	// Calibrated by construction: each bin's mean prediction equals its
	// hit rate (1 of 4 at 0.25, 3 of 4 at 0.75).
	preds := []float64{0.25, 0.25, 0.25, 0.25, 0.75, 0.75, 0.75, 0.75}
	outcomes := []bool{true, false, false, false, true, true, true, false}
	if got := CalibrationError(preds, outcomes); !almostEqual(got, 0, 1e-9) {
		t.Errorf("CalibrationError = %v, want 0 for calibrated predictions", got)
	}

	// Systematic overconfidence: predicting 0.9 while the hit rate is 0.5.
	preds = []float64{0.9, 0.9, 0.9, 0.9}
	outcomes = []bool{true, false, true, false}
	if got := CalibrationError(preds, outcomes); !almostEqual(got, 0.4, 1e-9) {
		t.Errorf("CalibrationError = %v, want 0.4", got)
	}
}

func TestEvaluate(t *testing.T) {
	preds := []float64{0.9, 0.8, 0.2}
	outcomes := []bool{true, true, false}

	m, err := Evaluate(preds, outcomes)
	if err != nil {
		t.Fatal(err)
	}
	if m.SampleSize != 3 {
		t.Errorf("SampleSize = %d, want 3", m.SampleSize)
	}
	if m.AUC != 1.0 {
		t.Errorf("AUC = %v, want 1.0", m.AUC)
	}

	_, err = Evaluate(preds, outcomes[:2])
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Evaluate with mismatched lengths: err = %v, want ErrLengthMismatch", err)
	}
}
