package stats

import "math"

// Welford accumulates a running mean and variance in a single pass, using
// Welford's algorithm. The zero value is an empty accumulator, ready to use.
//
// This is the streaming counterpart of FastVariance: one traversal and no
// stored sample, at the cost of more sensitivity to cancellation than the
// two-pass Variance when the spread is small relative to the magnitudes.
// A Welford is a plain value and is not synchronized; give each goroutine
// its own and Merge the partials.
type Welford struct {
	count int64
	mean  float64
	sum2  float64
}

// Add incorporates x into the running statistics.
func (w *Welford) Add(x float64) {
	w.count++
	d := x - w.mean // deviation from the old mean
	w.mean += d / float64(w.count)
	// The second factor must use the updated mean. Using the old mean on
	// both sides changes the result.
	w.sum2 += d * (x - w.mean)
}

// Count returns the number of samples added.
func (w *Welford) Count() int64 {
	return w.count
}

// Mean returns the running mean, or NaN if no samples have been added.
func (w *Welford) Mean() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	return w.mean
}

// Variance returns the population variance of the samples added so far.
// Fewer than 2 samples have variance 0.
func (w *Welford) Variance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.sum2 / float64(w.count)
}

// VarianceUnbiased returns the unbiased (Bessel-corrected) sample variance
// of the samples added so far. Fewer than 2 samples have variance 0.
func (w *Welford) VarianceUnbiased() float64 {
	if w.count < 2 {
		return 0
	}
	return w.sum2 / float64(w.count-1)
}

// StdDev returns the sample standard deviation of the samples added so far.
func (w *Welford) StdDev() float64 {
	return math.Sqrt(w.VarianceUnbiased())
}

// Merge folds other into w, as if every sample added to other had been
// added to w. Merging reorders the floating point sums, so the result can
// differ from a single sequential accumulation in the final bits.
func (w *Welford) Merge(other Welford) {
	if w.count == 0 {
		*w = other
		return
	}
	if other.count == 0 {
		return
	}
	na := float64(w.count)
	nb := float64(other.count)
	n := na + nb
	d := other.mean - w.mean
	w.sum2 += other.sum2 + d*d*na*nb/n
	w.mean += d * nb / n
	w.count += other.count
}
