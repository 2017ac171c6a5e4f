package statistics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// numDistributionPoints determines the approximate number of points kept
// for the empirical cumulative distribution.
const numDistributionPoints = 100

// AtomCount collects the atom counts observed over repeated truncated
// sampling trials of a Dirichlet process.
type AtomCount struct {
	freq map[int]uint64 // frequency per observed atom count
}

// AtomCountJSON is the summary of an atom-count statistic in JSON format.
type AtomCountJSON struct {
	NumTrials uint64       `json:"numTrials"`
	Mean      float64      `json:"mean"`
	StdDev    float64      `json:"stdDev"`
	ECdf      [][2]float64 `json:"ecdf"` // empirical cumulative distribution over atom counts
}

// NewAtomCount creates a new atom-count statistic.
func NewAtomCount() AtomCount {
	return AtomCount{map[int]uint64{}}
}

// Count records the atom count of one trial.
func (s *AtomCount) Count(numAtoms int) {
	s.freq[numAtoms]++
}

// Frequency returns how often an atom count was observed.
func (s *AtomCount) Frequency(numAtoms int) uint64 {
	return s.freq[numAtoms]
}

// NumTrials returns the number of recorded trials.
func (s *AtomCount) NumTrials() uint64 {
	total := uint64(0)
	for _, f := range s.freq {
		total += f
	}
	return total
}

// produceJSON computes the summary with approximately numPoints ECDF points.
func (s *AtomCount) produceJSON(numPoints int) AtomCountJSON {

	// sort observed atom counts in ascending order and compute the
	// total number of trials
	numKeys := len(s.freq)
	entries := make([]int, 0, numKeys)
	totalFreq := uint64(0)
	for count, freq := range s.freq {
		entries = append(entries, count)
		totalFreq += freq
	}
	sort.Ints(entries)

	// value/weight vectors for the moment computation
	values := make([]float64, numKeys)
	weights := make([]float64, numKeys)
	for i, count := range entries {
		values[i] = float64(count)
		weights[i] = float64(s.freq[count])
	}

	// if no trials, nothing to summarize (NaN moments would not survive
	// JSON encoding)
	if numKeys == 0 {
		return AtomCountJSON{}
	}

	// plotting distance of points in the ECDF
	d := numKeys / numPoints
	if d < 1 {
		d = 1
	}

	// accumulated probability with Kahan's summation to avoid
	// errors for many small frequencies
	ECdf := [][2]float64{}
	sumP := float64(0.0)
	cP := float64(0.0)
	ctr := 0
	for _, count := range entries {
		yP := float64(s.freq[count])/float64(totalFreq) - cP
		tP := sumP + yP
		cP = (tP - sumP) - yP
		sumP = tP

		// keep only every d-th point so that large trial runs
		// produce a bounded plot
		ctr++
		if ctr == d {
			ECdf = append(ECdf, [2]float64{float64(count), sumP})
			ctr = 0
		}
	}
	// the last point must always be kept
	if ctr != 0 {
		ECdf = append(ECdf, [2]float64{float64(entries[numKeys-1]), sumP})
	}

	// a single trial has no spread; the weighted estimator would
	// divide by zero
	mean, std := stat.MeanStdDev(values, weights)
	if totalFreq < 2 {
		std = 0.0
	}
	return AtomCountJSON{
		NumTrials: totalFreq,
		Mean:      mean,
		StdDev:    std,
		ECdf:      ECdf,
	}
}

// NewAtomCountJSON computes the summary of the atom-count statistic.
func (s *AtomCount) NewAtomCountJSON() AtomCountJSON {
	return s.produceJSON(numDistributionPoints)
}
