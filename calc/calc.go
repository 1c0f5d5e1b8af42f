// Package calc implements a few statistics over a list of numbers and a
// table of named commands that dispatch to them.
package calc

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultP = 2 // Euclidean norm
	DefaultK = 2
)

func checkEmpty(xs []float64) error {
	if len(xs) == 0 {
		return fmt.Errorf("%w: empty list of numbers", ErrDomain)
	}
	return nil
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if err := checkEmpty(xs); err != nil {
		return 0, err
	}
	return stat.Mean(xs, nil), nil
}

// GeometricMean returns the n-th root of the product of the n values in xs.
// Negative values are rejected; if any value is zero the result is zero.
func GeometricMean(xs []float64) (float64, error) {
	if err := checkEmpty(xs); err != nil {
		return 0, err
	}
	for _, x := range xs {
		if x < 0 || math.IsNaN(x) {
			return 0, fmt.Errorf("%w: geometric mean of negative value %g", ErrDomain, x)
		}
	}
	return stat.GeometricMean(xs, nil), nil
}

// LpNorm returns (Σ|x|^p)^(1/p). There is no 1/n normalization, so
// LpNorm(xs, 2) is the Euclidean length of xs and LpNorm(xs, +Inf) is the
// largest absolute value.
func LpNorm(xs []float64, p float64) (float64, error) {
	if err := checkEmpty(xs); err != nil {
		return 0, err
	}
	if !(p > 0) {
		return 0, fmt.Errorf("%w: norm exponent must be positive; got %g", ErrDomain, p)
	}
	if p == 1 || p == 2 || math.IsInf(p, 1) {
		return floats.Norm(xs, p), nil
	}
	// Scale by the largest magnitude so that |x|^p neither overflows for
	// large p nor underflows for tiny values.
	m := floats.Norm(xs, math.Inf(1))
	if m == 0 {
		return 0, nil
	}
	var sum float64
	for _, x := range xs {
		sum += math.Pow(math.Abs(x)/m, p)
	}
	return m * math.Pow(sum, 1/p), nil
}

// KthOrderStatistic returns the k-th smallest value in xs; k is 1-indexed.
// xs is not modified.
func KthOrderStatistic(xs []float64, k int) (float64, error) {
	if err := checkEmpty(xs); err != nil {
		return 0, err
	}
	if k < 1 || k > len(xs) {
		return 0, fmt.Errorf("%w: k=%d is not in [1, %d]", ErrRange, k, len(xs))
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return sorted[k-1], nil
}

// Min returns the smallest value in xs.
func Min(xs []float64) (float64, error) {
	if err := checkEmpty(xs); err != nil {
		return 0, err
	}
	return floats.Min(xs), nil
}

// Max returns the largest value in xs.
func Max(xs []float64) (float64, error) {
	if err := checkEmpty(xs); err != nil {
		return 0, err
	}
	return floats.Max(xs), nil
}
