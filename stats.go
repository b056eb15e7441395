// Package stats computes descriptive statistics over a finite sample.
//
// The variance functions come in two deliberate flavors: Variance,
// VarianceUnbiased and StdDev use a two-pass corrected algorithm that is
// robust against cancellation, while FastVariance, FastVarianceUnbiased and
// FastStdDev traverse the sample only once and give up some accuracy on
// low-spread samples. They are separate functions on purpose; pick one.
//
// There is no error channel anywhere. Bad inputs, such as an empty sample
// or a zero inside a harmonic mean, produce whatever IEEE-754 arithmetic
// produces (NaN, Inf, a nonsense sign), and that value is returned to the
// caller as-is.
package stats

import "math"

// Returns the mean of the given samples.
// The mean is updated incrementally per sample, which avoids the
// cancellation that a plain sum/n suffers on large-magnitude samples.
// An empty sample yields NaN (the 0/0 quotient).
func Mean[T Float | Integer](samples []T) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	mean := 0.0
	n := 0.0
	for _, v := range samples {
		n++
		mean += (float64(v) - mean) / n
	}
	return mean
}

// Returns the harmonic mean of the given samples.
// A zero sample drives the reciprocal sum to Inf, and negative samples
// produce mathematically meaningless results. Neither is an error; the
// IEEE value is returned as-is.
func HarmonicMean[T Float | Integer](samples []T) float64 {
	var n, recip float64
	for _, v := range samples {
		n++
		recip += 1 / float64(v)
	}
	return n / recip
}

// Returns the geometric mean of the given samples.
// All samples must be non-negative; this is not enforced.
//
// The product is accumulated directly rather than as a sum of logs, so a
// long sample, or one with extreme magnitudes, can overflow or underflow
// the product before the final root is taken. Known limitation.
func GeometricMean[T Float | Integer](samples []T) float64 {
	product := 1.0
	n := 0.0
	for _, v := range samples {
		n++
		product *= float64(v)
	}
	return math.Pow(product, 1/n)
}

// Returns (mean, population variance) of the given samples.
func MeanVar[T Float | Integer](samples []T) (float64, float64) {
	return Mean(samples), Variance(samples)
}

// Sum of squared deviations from the mean, computed in a second pass over
// the sample. The raw deviations are accumulated too; their sum would be
// exactly zero against an exact mean, so whatever remains is the first-order
// error of the rounded mean, and subtracting compensation²/n cancels it.
func sumSqDev[T Float | Integer](samples []T) (sum2 float64, n float64) {
	mean := Mean(samples)
	var compensation float64
	for _, v := range samples {
		d := float64(v) - mean
		sum2 += d * d
		compensation += d
	}
	n = float64(len(samples))
	return sum2 - compensation*compensation/n, n
}

// Returns the population variance of the given samples, computed with the
// corrected two-pass algorithm. This is the robust option: it visits the
// sample twice, but stays accurate even when the values cluster tightly
// around a large mean. Samples of length 0 or 1 have variance 0.
func Variance[T Float | Integer](samples []T) float64 {
	sum2, n := sumSqDev(samples)
	if n < 2 {
		return 0
	}
	return sum2 / n
}

// Returns the unbiased (Bessel-corrected) sample variance of the given
// samples, computed with the corrected two-pass algorithm.
// Samples of length 0 or 1 have variance 0.
func VarianceUnbiased[T Float | Integer](samples []T) float64 {
	sum2, n := sumSqDev(samples)
	if n < 2 {
		return 0
	}
	return sum2 / (n - 1)
}

// Returns the sample standard deviation (square root of the unbiased
// variance) of the given samples.
func StdDev[T Float | Integer](samples []T) float64 {
	return math.Sqrt(VarianceUnbiased(samples))
}

// Returns the population variance of the given samples in a single pass.
// Faster than Variance, but loses accuracy when the spread is small
// relative to the magnitude of the values. See Welford.
func FastVariance[T Float | Integer](samples []T) float64 {
	var w Welford
	for _, v := range samples {
		w.Add(float64(v))
	}
	return w.Variance()
}

// Returns the unbiased sample variance of the given samples in a single
// pass. The same accuracy caveat as FastVariance applies.
func FastVarianceUnbiased[T Float | Integer](samples []T) float64 {
	var w Welford
	for _, v := range samples {
		w.Add(float64(v))
	}
	return w.VarianceUnbiased()
}

// Returns the sample standard deviation of the given samples in a single
// pass. The same accuracy caveat as FastVariance applies.
func FastStdDev[T Float | Integer](samples []T) float64 {
	return math.Sqrt(FastVarianceUnbiased(samples))
}

// Returns the sum of the given samples, accumulated in float64.
func Sum[T Float | Integer](samples []T) float64 {
	sum := 0.0
	for _, v := range samples {
		sum += float64(v)
	}
	return sum
}

// Returns the smallest of the given samples, or zero for an empty sample.
func Min[T Float | Integer](samples []T) T {
	var m T
	for i, v := range samples {
		if i == 0 || v < m {
			m = v
		}
	}
	return m
}

// Returns the largest of the given samples, or zero for an empty sample.
func Max[T Float | Integer](samples []T) T {
	var m T
	for i, v := range samples {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Returns the mode and count of the most frequent element in the given
// samples. An empty sample yields the zero value of T and a count of 0.
// Ties are broken arbitrarily.
func Mode[T comparable](samples []T) (mode T, count int) {
	counts := make(map[T]int)
	for _, v := range samples {
		counts[v]++
	}
	for k, v := range counts {
		if v > count {
			mode = k
			count = v
		}
	}
	return
}
