// Probe-count derivation and false-positive estimation.
//
// The probe count k is resolved exactly once, at construction. Callers
// either fix it explicitly, supply an expected item count n (from which
// the standard optimum k = (size/n)·ln 2 follows), or supply nothing and
// get the log2(size) fallback heuristic. Whatever the path, k is clamped
// to at least 1: a zero k would degenerate every operation to a no-op.
package floret

import "math"

// ln2 is the natural logarithm of 2.
const ln2 = 0.6931471805599453

// optimalK derives the probe count for a filter of size bits expected to
// hold n items: floor(size/n * ln 2), the value that minimises the
// false-positive rate at that load.
func optimalK(size, n int) int {
	k := int(float64(size) / float64(n) * ln2)
	return max(k, 1)
}

// fallbackK derives the probe count when no load estimate is available:
// floor(log2(size)).
func fallbackK(size int) int {
	k := int(math.Log2(float64(size)))
	return max(k, 1)
}

// EstimateFalsePositiveRate returns the expected false-positive rate of
// a filter with the given geometry after n insertions, using the
// standard approximation (1 - e^(-kn/m))^k. Purely advisory — the filter
// does not track its own load.
func EstimateFalsePositiveRate(size, k, n int) float64 {
	if size <= 0 || k <= 0 || n <= 0 {
		return 0
	}
	m := float64(size)
	return math.Pow(1-math.Exp(-float64(k)*float64(n)/m), float64(k))
}
