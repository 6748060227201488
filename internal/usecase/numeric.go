package usecase

import (
	"regexp"
	"strings"

	"fincheck/internal/domain"
)

var numericTokenPattern = regexp.MustCompile(`[+-]?\d+(?:\.\d+)?`)

// ExtractNumericTokens returns every numeric token in the text in order of
// appearance, with any leading sign stripped. Only the magnitude is compared
// downstream; direction is the balance reconciler's concern.
func ExtractNumericTokens(text string) []string {
	matches := numericTokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.TrimLeft(m, "+-"))
	}
	return tokens
}

// numericTotals accumulates document-level token counts across pages. The
// authoritative match ratio and count difference are computed once from these
// totals rather than summed per page.
type numericTotals struct {
	common int
	ai     int
	source int
}

// MatchRatio is total common tokens over the larger side's total, as a
// percentage. Zero when both sides produced no tokens at all.
func (t numericTotals) MatchRatio() float64 {
	larger := t.ai
	if t.source > larger {
		larger = t.source
	}
	if larger == 0 {
		return 0
	}
	return float64(t.common) / float64(larger) * 100
}

// CountDiff is the absolute difference between the two sides' totals.
func (t numericTotals) CountDiff() int {
	d := t.ai - t.source
	if d < 0 {
		return -d
	}
	return d
}

// compareNumericTokens compares the two sides of one page as multisets of
// magnitudes: common counts each token value up to the smaller of its two
// occurrence counts, so ordering and sign differences never penalize a page.
func compareNumericTokens(pair domain.PagePair) domain.NumericComparison {
	aiTokens := ExtractNumericTokens(pair.AIText())
	sourceTokens := ExtractNumericTokens(pair.SourceText())

	counts := make(map[string]int, len(aiTokens))
	for _, tok := range aiTokens {
		counts[tok]++
	}
	common := 0
	for _, tok := range sourceTokens {
		if counts[tok] > 0 {
			counts[tok]--
			common++
		}
	}

	result := domain.NumericComparison{
		PageNumber:       pair.PageNumber,
		AITokenCount:     len(aiTokens),
		SourceTokenCount: len(sourceTokens),
		CommonCount:      common,
	}
	larger := result.AITokenCount
	if result.SourceTokenCount > larger {
		larger = result.SourceTokenCount
	}
	if larger > 0 {
		result.MatchRatio = float64(common) / float64(larger) * 100
	}
	return result
}
