package usecase

import (
	"strings"
	"unicode"
)

// NormalizeTokens lowercases the text, removes punctuation, collapses
// whitespace runs and splits on whitespace. This keeps the comparison fair
// between the vision transcription and the locally parsed text, which differ
// freely in casing and punctuation.
func NormalizeTokens(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

// SequenceRatio computes a Ratcliff/Obershelp alignment ratio between two
// token sequences: 2*M / (len(a)+len(b)), where M is the total length of the
// non-overlapping longest common contiguous blocks found by repeatedly taking
// the longest match and recursing on both sides of it. Two empty sequences
// are vacuously similar (1.0); a nonempty sequence against an empty one
// scores 0.0.
func SequenceRatio(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	matched := matchedLength(a, b, 0, len(a), 0, len(b))
	return 2.0 * float64(matched) / float64(len(a)+len(b))
}

// matchedLength sums the sizes of the longest matching blocks within
// a[alo:ahi] and b[blo:bhi].
func matchedLength(a, b []string, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchedLength(a, b, alo, i, blo, j)
	total += matchedLength(a, b, i+size, ahi, j+size, bhi)
	return total
}

// longestMatch finds the longest contiguous matching block between
// a[alo:ahi] and b[blo:bhi]. Ties resolve to the earliest block in a, then
// in b, matching the conventional sequence-matcher behavior.
func longestMatch(a, b []string, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	// j2len[j] is the length of the longest match ending at a[i-1], b[j-1].
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
