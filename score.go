// Logarithmic confidence aggregation.
//
// Raw Confidence averages poorly: a word matching 11 of 12 probes is
// almost certainly not in the set, yet contributes nearly as much to a
// mean as a full match. LogScore instead averages -ln(1 - confidence),
// which rewards full matches exponentially more than near misses — a
// confidence of 1.0 contributes ~23 (bounded by the epsilon) while 0.5
// contributes ~0.69.
package floret

import (
	"math"
	"strings"
)

// scoreEpsilon keeps the logarithm finite at confidence 1.0.
const scoreEpsilon = 1e-10

// LogScore returns the mean logarithmic confidence of the words against
// the filter. An empty word list scores 0.
func LogScore(f *Filter, words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	var total float64
	for _, word := range words {
		total += -math.Log(1 - f.Confidence(word) + scoreEpsilon)
	}
	return total / float64(len(words))
}

// BestLine returns the line whose whitespace-separated words score
// highest against the filter, with its score. Ties keep the earliest
// line; an empty slice returns ("", 0).
func BestLine(f *Filter, lines []string) (string, float64) {
	var best string
	var bestScore float64
	for i, line := range lines {
		score := LogScore(f, strings.Fields(line))
		if i == 0 || score > bestScore {
			best, bestScore = line, score
		}
	}
	return best, bestScore
}
