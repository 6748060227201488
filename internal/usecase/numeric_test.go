package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fincheck/internal/domain"
)

func TestExtractNumericTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "signs are stripped, order preserved",
			text:     "Deposit +300.00 then -50 then 25.5",
			expected: []string{"300.00", "50", "25.5"},
		},
		{
			name:     "integers and decimals",
			text:     "balance 1000 closing 1075.00",
			expected: []string{"1000", "1075.00"},
		},
		{
			name:     "no numbers",
			text:     "no figures on this page",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractNumericTokens(tt.text))
		})
	}
}

func TestExtractNumericTokensRoundTrip(t *testing.T) {
	// Re-extracting from a re-serialized token list must reproduce the same
	// multiset of magnitudes.
	original := ExtractNumericTokens("Opening 1000.00, moves +100.00 -50.00 +25.00, closing 1075.00")
	reextracted := ExtractNumericTokens(strings.Join(original, " "))
	assert.Equal(t, original, reextracted)
}

func TestCompareNumericTokens(t *testing.T) {
	pairOf := func(aiText, sourceText string) domain.PagePair {
		return domain.PagePair{
			PageNumber: 1,
			AI:         &domain.VisionPage{PageNumber: 1, PageText: aiText},
			Source:     &domain.SourcePage{PageNumber: 1, PageText: sourceText},
		}
	}

	tests := []struct {
		name          string
		pair          domain.PagePair
		wantAI        int
		wantSource    int
		wantCommon    int
		wantRatio     float64
	}{
		{
			name:       "identical numbers regardless of order and sign",
			pair:       pairOf("100.00 -50.00 1075.00", "1075.00 100.00 +50.00"),
			wantAI:     3,
			wantSource: 3,
			wantCommon: 3,
			wantRatio:  100,
		},
		{
			name:       "duplicates counted up to the smaller multiplicity",
			pair:       pairOf("20 20 20", "20 20 99"),
			wantAI:     3,
			wantSource: 3,
			wantCommon: 2,
			wantRatio:  200.0 / 3.0,
		},
		{
			name:       "both sides empty",
			pair:       pairOf("no numbers", "none here either"),
			wantAI:     0,
			wantSource: 0,
			wantCommon: 0,
			wantRatio:  0,
		},
		{
			name:       "one side missing entirely",
			pair:       domain.PagePair{PageNumber: 1, Source: &domain.SourcePage{PageNumber: 1, PageText: "100 200"}},
			wantAI:     0,
			wantSource: 2,
			wantCommon: 0,
			wantRatio:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareNumericTokens(tt.pair)
			assert.Equal(t, tt.wantAI, got.AITokenCount)
			assert.Equal(t, tt.wantSource, got.SourceTokenCount)
			assert.Equal(t, tt.wantCommon, got.CommonCount)
			assert.InDelta(t, tt.wantRatio, got.MatchRatio, 1e-9)
		})
	}
}

func TestCompareNumericTokensSymmetric(t *testing.T) {
	ai := &domain.VisionPage{PageNumber: 1, PageText: "100.00 -50 42 42"}
	source := &domain.SourcePage{PageNumber: 1, PageText: "+50 42 7.25"}

	forward := compareNumericTokens(domain.PagePair{PageNumber: 1, AI: ai, Source: source})
	swapped := compareNumericTokens(domain.PagePair{
		PageNumber: 1,
		AI:         &domain.VisionPage{PageNumber: 1, PageText: source.PageText},
		Source:     &domain.SourcePage{PageNumber: 1, PageText: ai.PageText},
	})

	assert.Equal(t, forward.CommonCount, swapped.CommonCount)
	assert.InDelta(t, forward.MatchRatio, swapped.MatchRatio, 1e-9)
	assert.Equal(t, forward.AITokenCount, swapped.SourceTokenCount)
	assert.Equal(t, forward.SourceTokenCount, swapped.AITokenCount)
}

func TestNumericTotals(t *testing.T) {
	totals := numericTotals{common: 9, ai: 12, source: 10}
	assert.InDelta(t, 75.0, totals.MatchRatio(), 1e-9)
	assert.Equal(t, 2, totals.CountDiff())

	swapped := numericTotals{common: 9, ai: 10, source: 12}
	assert.InDelta(t, totals.MatchRatio(), swapped.MatchRatio(), 1e-9)
	assert.Equal(t, totals.CountDiff(), swapped.CountDiff())

	empty := numericTotals{}
	assert.Zero(t, empty.MatchRatio())
	assert.Zero(t, empty.CountDiff())
}
