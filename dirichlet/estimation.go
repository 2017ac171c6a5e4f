package dirichlet

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/stochaster/dirichlet/dirichlet/stickbreak"
)

// EstimateAlpha computes the maximum-likelihood estimate of the
// concentration parameter from observed stick-breaking fractions. Under
// Beta(1, alpha) the log-likelihood of the fractions v_1..v_n is
// n*ln(alpha) + (alpha-1)*sum(ln(1-v_i)), which is maximized at
// alpha = -n / sum(ln(1-v_i)).
func EstimateAlpha(breaks []float64) (float64, error) {
	if len(breaks) == 0 {
		return 0.0, fmt.Errorf("EstimateAlpha: no stick-breaking fractions")
	}
	sum := 0.0
	for _, v := range breaks {
		if v <= 0.0 || v >= 1.0 || math.IsNaN(v) {
			return 0.0, fmt.Errorf("EstimateAlpha: fraction (%v) outside the open unit interval", v)
		}
		sum += math.Log(1.0 - v)
	}
	if sum == 0.0 {
		return 0.0, fmt.Errorf("EstimateAlpha: degenerate fractions")
	}
	return -float64(len(breaks)) / sum, nil
}

// EstimationJSON is the output of the estimator in JSON format.
type EstimationJSON struct {
	Alpha           float64 `json:"concentration"`
	NumAtoms        int     `json:"numAtoms"`
	RepresentedMass float64 `json:"representedMass"`
	ExpectedAtoms   float64 `json:"expectedAtoms"`
}

// NewEstimationJSON estimates the concentration parameter of a sampled
// measure and relates the observed atom count to its expectation at the
// achieved truncation.
func NewEstimationJSON(m *Measure) (EstimationJSON, error) {
	alpha, err := EstimateAlpha(m.Breaks)
	if err != nil {
		return EstimationJSON{}, err
	}
	// The remaining mass can round to zero at extreme tolerances; the
	// expectation is unbounded there (and would not survive JSON
	// encoding), so report the observed atom count instead.
	expectedAtoms := float64(m.NumAtoms())
	if remaining := m.RemainingMass(); remaining > 0.0 {
		expectedAtoms = stickbreak.ExpectedAtoms(alpha, remaining)
	}
	return EstimationJSON{
		Alpha:           alpha,
		NumAtoms:        m.NumAtoms(),
		RepresentedMass: m.Mass(),
		ExpectedAtoms:   expectedAtoms,
	}, nil
}

// WriteJSON writes the estimation results into a file.
func (e *EstimationJSON) WriteJSON(filename string) error {
	content, err := json.MarshalIndent(e, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to convert estimation results to JSON; %v", err)
	}
	if err := os.WriteFile(filename, content, 0644); err != nil {
		return fmt.Errorf("failed to write estimation file; %v", err)
	}
	return nil
}
