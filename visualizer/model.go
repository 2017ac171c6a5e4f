package visualizer

import (
	"log"

	"github.com/stochaster/dirichlet/dirichlet"
	"github.com/stochaster/dirichlet/dirichlet/distribution"
)

// numDensityPoints is the number of grid points for the base-density curve.
const numDensityPoints = 200

// MeasureData contains the statistical data of a sampled measure that is
// used for visualization.
type MeasureData struct {
	Masses    []float64    // atom masses in sampling order
	Decay     [][2]float64 // remaining mass after each atom
	Expected  [][2]float64 // expected remaining mass under the estimated concentration
	Atoms     [][2]float64 // (location, mass) pairs
	Density   [][2]float64 // base density curve over the location range
	Breaks    []float64    // stick-breaking fractions
	Alpha     float64      // estimated concentration parameter
	Remaining float64      // unrepresented mass of the measure
	Truncated bool         // whether the sampler hit the atom cap
}

// view is the singleton for the viewing model.
var view MeasureData

// GetMeasureData returns the pointer to the singleton.
func GetMeasureData() *MeasureData {
	return &view
}

// PopulateMeasureData populates the viewing model from a sampled measure.
// The base density is optional; without it the density view stays empty.
func (v *MeasureData) PopulateMeasureData(m *dirichlet.Measure, base distribution.Densitier) {
	if m.NumAtoms() == 0 {
		log.Fatalf("measure has no atoms")
	}
	v.Masses = make([]float64, m.NumAtoms())
	copy(v.Masses, m.Weights)
	v.Breaks = make([]float64, m.NumAtoms())
	copy(v.Breaks, m.Breaks)
	v.Truncated = m.Truncated
	v.Remaining = m.RemainingMass()

	// the concentration parameter is rediscovered from the break
	// fractions for display
	alpha, err := dirichlet.EstimateAlpha(m.Breaks)
	if err != nil {
		log.Fatalf("failed to estimate concentration parameter; %v", err)
	}
	v.Alpha = alpha

	// remaining mass after each atom vs. its expectation
	v.Decay = [][2]float64{{0.0, 1.0}}
	v.Expected = [][2]float64{{0.0, 1.0}}
	remaining := 1.0
	expected := 1.0
	for k, b := range m.Breaks {
		remaining *= 1.0 - b
		expected *= alpha / (alpha + 1.0)
		v.Decay = append(v.Decay, [2]float64{float64(k + 1), remaining})
		v.Expected = append(v.Expected, [2]float64{float64(k + 1), expected})
	}

	// atom scatter and location range
	v.Atoms = [][2]float64{}
	low, high := m.Locations[0], m.Locations[0]
	for k := 0; k < m.NumAtoms(); k++ {
		v.Atoms = append(v.Atoms, [2]float64{m.Locations[k], m.Weights[k]})
		if m.Locations[k] < low {
			low = m.Locations[k]
		}
		if m.Locations[k] > high {
			high = m.Locations[k]
		}
	}

	// base density over the location range
	v.Density = [][2]float64{}
	if base != nil && high > low {
		for i := 0; i <= numDensityPoints; i++ {
			x := low + (high-low)*float64(i)/float64(numDensityPoints)
			v.Density = append(v.Density, [2]float64{x, base.Density(x)})
		}
	}
}
