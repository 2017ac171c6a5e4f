package visualizer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stochaster/dirichlet/dirichlet"
	"github.com/stochaster/dirichlet/dirichlet/distribution"
)

// TestPopulateMeasureData checks the viewing model of a sampled measure.
func TestPopulateMeasureData(t *testing.T) {
	// create random generator with fixed seed value
	rg := rand.New(rand.NewSource(99))
	base := distribution.Gaussian{Mean: 0.0, StdDev: 1.0}
	p := dirichlet.Process{Alpha: 5.0, Base: base}
	m, err := p.Sample(rg, 1e-3)
	if err != nil {
		t.Fatalf("sampling failed; error: %v", err)
	}

	view := GetMeasureData()
	view.PopulateMeasureData(m, base)

	if len(view.Masses) != m.NumAtoms() || len(view.Atoms) != m.NumAtoms() {
		t.Fatalf("viewing model has wrong atom count")
	}
	if len(view.Decay) != m.NumAtoms()+1 || len(view.Expected) != m.NumAtoms()+1 {
		t.Fatalf("decay curves have wrong length")
	}
	if view.Decay[0][1] != 1.0 || view.Expected[0][1] != 1.0 {
		t.Fatalf("decay curves do not start at one")
	}
	last := view.Decay[len(view.Decay)-1][1]
	if math.Abs(last-m.RemainingMass()) > 1e-9 {
		t.Fatalf("decay curve does not end at the remaining mass")
	}
	if view.Alpha <= 0.0 {
		t.Fatalf("estimated concentration is not positive")
	}
	if len(view.Density) != numDensityPoints+1 {
		t.Fatalf("density curve has wrong length")
	}

	// without a density capability the density view stays empty
	view.PopulateMeasureData(m, nil)
	if len(view.Density) != 0 {
		t.Fatalf("density curve must be empty without a densitier")
	}
}
