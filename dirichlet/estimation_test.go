package dirichlet

import (
	"math"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stochaster/dirichlet/dirichlet/stickbreak"
)

// TestEstimateAlpha checks that a known concentration parameter can be
// rediscovered from a large set of stick-breaking fractions.
func TestEstimateAlpha(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(99))
	for _, alpha := range []float64{0.5, 1.0, 5.0, 20.0} {
		n := 100000
		breaks := make([]float64, n)
		for i := 0; i < n; i++ {
			breaks[i] = stickbreak.Sample(rg, alpha)
		}
		estimated, err := EstimateAlpha(breaks)
		if err != nil {
			t.Fatalf("estimation failed; error: %v", err)
		}
		if math.Abs(estimated-alpha)/alpha > 0.02 {
			t.Fatalf("failed to rediscover concentration; expected %v computed %v", alpha, estimated)
		}
	}
}

// TestEstimationJSONFullMass checks the estimation summary of a measure
// whose represented mass rounds to exactly one; the expectation is
// unbounded there and must degrade to the observed atom count so that
// the summary stays encodable.
func TestEstimationJSONFullMass(t *testing.T) {
	m := &Measure{
		Breaks:    []float64{0.5, 0.5},
		Weights:   []float64{0.5, 0.5},
		Locations: []float64{-1.0, 1.0},
	}
	estimation, err := NewEstimationJSON(m)
	if err != nil {
		t.Fatalf("estimation failed; error: %v", err)
	}
	if math.IsInf(estimation.ExpectedAtoms, 0) || math.IsNaN(estimation.ExpectedAtoms) {
		t.Fatalf("expected atom count is not finite; got %v", estimation.ExpectedAtoms)
	}
	if estimation.ExpectedAtoms != 2.0 {
		t.Fatalf("expected atom count must degrade to the observed count; got %v", estimation.ExpectedAtoms)
	}
	filename := filepath.Join(t.TempDir(), "estimation.json")
	if err := estimation.WriteJSON(filename); err != nil {
		t.Fatalf("failed to write estimation file; error: %v", err)
	}
}

// TestEstimateAlphaErrors checks rejection of degenerate inputs.
func TestEstimateAlphaErrors(t *testing.T) {
	if _, err := EstimateAlpha([]float64{}); err == nil {
		t.Fatalf("empty input not rejected")
	}
	if _, err := EstimateAlpha([]float64{0.5, 0.0}); err == nil {
		t.Fatalf("zero fraction not rejected")
	}
	if _, err := EstimateAlpha([]float64{1.0}); err == nil {
		t.Fatalf("fraction of one not rejected")
	}
	if _, err := EstimateAlpha([]float64{0.5, 1.5}); err == nil {
		t.Fatalf("fraction above one not rejected")
	}
}
