// Package similarity provides the string and vector similarity primitives
// used by duplicate detection. All functions are total: degenerate inputs
// yield a defined zero value, never a panic or an error.
package similarity

import (
	"math"
	"strings"
)

// EditDistance returns the Levenshtein distance between a and b with unit
// cost for insert, delete and substitute. O(len(a)*len(b)) time and space.
func EditDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	m := make([][]int, len(ra)+1)
	for i := range m {
		m[i] = make([]int, len(rb)+1)
		m[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		m[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			m[i][j] = min(
				m[i-1][j]+1,
				m[i][j-1]+1,
				m[i-1][j-1]+cost,
			)
		}
	}

	return m[len(ra)][len(rb)]
}

// Lexical scores how alike two labels are, case-insensitively, as
// 1 - editDistance/maxLen. Two empty strings score 0, not 1: an empty
// label carries no evidence of identity.
func Lexical(a, b string) float64 {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)

	maxLen := len([]rune(la))
	if l := len([]rune(lb)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}

	return 1 - float64(EditDistance(la, lb))/float64(maxLen)
}

// Cosine returns the cosine similarity of two embedding vectors, clamped
// into [0, 1]. Empty vectors, mismatched lengths, zero-norm vectors and
// anti-correlated vectors all score 0.
func Cosine(v1, v2 []float32) float64 {
	if len(v1) == 0 || len(v2) == 0 || len(v1) != len(v2) {
		return 0
	}

	var dot, norm1, norm2 float64
	for i := range v1 {
		dot += float64(v1[i]) * float64(v2[i])
		norm1 += float64(v1[i]) * float64(v1[i])
		norm2 += float64(v2[i]) * float64(v2[i])
	}
	if norm1 == 0 || norm2 == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(norm1) * math.Sqrt(norm2))
	if sim < 0 {
		return 0
	}
	return sim
}
