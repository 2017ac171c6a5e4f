package dirichlet

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// Measure is a finite discrete random measure produced by truncated
// stick-breaking. The three sequences have equal length and grow in
// lock-step during sampling; the k-th atom has break fraction Breaks[k],
// mass Weights[k] = Breaks[k] * prod_{i<k}(1-Breaks[i]), and location
// Locations[k].
type Measure struct {
	Breaks    []float64 `json:"breaks"`    // stick-breaking fractions (V)
	Weights   []float64 `json:"weights"`   // atom masses (C)
	Locations []float64 `json:"locations"` // atom locations (phi)

	// Truncated is set when sampling hit the atom cap before reaching
	// the requested tolerance.
	Truncated bool `json:"truncated,omitempty"`
}

// NumAtoms returns the number of atoms of the measure.
func (m *Measure) NumAtoms() int {
	return len(m.Weights)
}

// Mass returns the total probability mass represented by the atoms.
func (m *Measure) Mass() float64 {
	// Use Kahan's sum since late atom masses are very small.
	sum := float64(0.0)
	c := float64(0.0)
	for _, w := range m.Weights {
		y := w - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// RemainingMass returns the probability mass not represented by the atoms.
func (m *Measure) RemainingMass() float64 {
	return 1.0 - m.Mass()
}

// Sample draws an atom location from the measure proportionally to the
// atom masses. The unrepresented remainder is attributed to the last atom.
func (m *Measure) Sample(rg *rand.Rand) (float64, error) {
	if m.NumAtoms() == 0 {
		return 0.0, fmt.Errorf("Sample: measure has no atoms")
	}
	r := rg.Float64()
	sum := float64(0.0)
	c := float64(0.0)
	for k, w := range m.Weights {
		y := w - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if r <= sum {
			return m.Locations[k], nil
		}
	}
	return m.Locations[len(m.Locations)-1], nil
}

// WriteJSON writes the measure to a file in JSON format.
func (m *Measure) WriteJSON(filename string) error {
	content, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to convert measure to JSON; %v", err)
	}
	if err := os.WriteFile(filename, content, 0644); err != nil {
		return fmt.Errorf("failed to write measure file; %v", err)
	}
	return nil
}

// ReadMeasure reads a measure from a file in JSON format.
func ReadMeasure(filename string) (*Measure, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read measure file; %v", err)
	}
	var m Measure
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to parse measure file; %v", err)
	}
	if len(m.Breaks) != len(m.Weights) || len(m.Weights) != len(m.Locations) {
		return nil, fmt.Errorf("corrupted measure file; sequence lengths differ")
	}
	// sampling always produces at least one atom
	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("corrupted measure file; measure has no atoms")
	}
	return &m, nil
}
