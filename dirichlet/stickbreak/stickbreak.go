package stickbreak

import (
	"math"
	"math/rand"
)

// Package for the Beta(1, alpha) distribution of stick-breaking fractions.
// For this special case of the Beta family, the CDF and quantile function
// have closed forms, so no incomplete-beta machinery is needed.

// Cdf is the cumulative distribution function of the Beta(1, alpha)
// distribution, i.e. 1-(1-x)^alpha on the unit interval.
func Cdf(alpha float64, x float64) float64 {
	if x <= 0.0 {
		return 0.0
	}
	if x >= 1.0 {
		return 1.0
	}
	return 1.0 - math.Pow(1.0-x, alpha)
}

// PiecewiseLinearCdf is an approximation of the cumulative distribution function via sampling with n points.
func PiecewiseLinearCdf(alpha float64, n int) [][2]float64 {
	// The points are equi-distantly spread, i.e., 1/n.
	fn := [][2]float64{}
	for i := 0; i <= n; i++ {
		x := float64(i) / float64(n)
		p := Cdf(alpha, x)
		fn = append(fn, [2]float64{x, p})
	}
	return fn
}

// Quantile is the inverse cumulative distribution function for
// producing random stick-breaking fractions following the Beta(1, alpha)
// distribution (providing probability p).
func Quantile(alpha float64, p float64) float64 {
	if p <= 0.0 {
		return 0.0
	}
	if p >= 1.0 {
		return 1.0
	}
	return 1.0 - math.Pow(1.0-p, 1.0/alpha)
}

// Sample draws a stick-breaking fraction in (0,1) via inversion sampling.
func Sample(rg *rand.Rand, alpha float64) float64 {
	for {
		// The quantile may round to zero or one in floating point
		// (a zero argument, or a small alpha with an argument close
		// to one); redraw so that the fraction stays in the open
		// unit interval.
		if v := Quantile(alpha, rg.Float64()); v > 0.0 && v < 1.0 {
			return v
		}
	}
}

// ExpectedAtoms returns the expected number of stick-breaking steps until
// the remaining stick length drops below eps. After T breaks the expected
// remaining mass is (alpha/(alpha+1))^T.
func ExpectedAtoms(alpha float64, eps float64) float64 {
	return math.Ceil(math.Log(eps) / math.Log(alpha/(alpha+1.0)))
}
