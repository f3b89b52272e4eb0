package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, term := range termPattern.FindAllString(strings.ToLower(text), -1) {
		counts[term]++
	}
	return counts
}

// CosineSimilarity returns the cosine of the term-frequency vectors of a and b
// as a percentage rounded to two decimals. Terms are lowercase runs of at
// least two letters, digits or underscores. Texts without terms score 0.
func CosineSimilarity(a, b string) float64 {
	ca, cb := termCounts(a), termCounts(b)

	vocab := make([]string, 0, len(ca)+len(cb))
	for term := range ca {
		vocab = append(vocab, term)
	}
	for term := range cb {
		if _, ok := ca[term]; !ok {
			vocab = append(vocab, term)
		}
	}
	sort.Strings(vocab)

	var dot, normA, normB float64
	for _, term := range vocab {
		x, y := float64(ca[term]), float64(cb[term])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) {
		return 0
	}
	return round2(sim * 100)
}
