package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"fincheck/internal/domain"
)

const (
	// DefaultTolerance is the maximum accepted gap between a computed and a
	// stated closing balance before a page counts as mismatched.
	DefaultTolerance = 0.01
	// DefaultSimilarityThreshold marks a page's text comparison as passing.
	// Source revisions disagree between 0.89 and 0.90, so it stays a
	// configuration knob rather than a constant baked into the engine.
	DefaultSimilarityThreshold = 0.89
)

// Verifier cross-checks the vision oracle's structured extraction against the
// locally parsed text of the same document. It performs no I/O and keeps no
// state between calls; every call is a pure function of its two inputs.
type Verifier struct {
	tolerance           float64
	similarityThreshold float64
}

// VerifierOption customizes a Verifier.
type VerifierOption func(*Verifier)

// WithTolerance overrides the balance comparison tolerance.
func WithTolerance(t float64) VerifierOption {
	return func(v *Verifier) { v.tolerance = t }
}

// WithSimilarityThreshold overrides the per-page similarity pass threshold.
func WithSimilarityThreshold(t float64) VerifierOption {
	return func(v *Verifier) { v.similarityThreshold = t }
}

// NewVerifier creates a Verifier with default tolerance and threshold.
func NewVerifier(opts ...VerifierOption) *Verifier {
	v := &Verifier{
		tolerance:           DefaultTolerance,
		similarityThreshold: DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify aligns the two page collections and runs the three analyses: text
// similarity and numeric token comparison per page (concurrently, each page
// writing only its own slot), then the inherently sequential balance
// reconciliation. The report is only returned once every aligned page has
// been visited; on cancellation an error is returned instead of a partial
// report.
//
// Both collections empty is not an error: the report degenerates to the
// vacuous-match conventions (similarity 1.0, numeric ratio 0, nil balances).
func (v *Verifier) Verify(ctx context.Context, ai *domain.VisionDocument, source *domain.SourceDocument) (*domain.VerificationReport, error) {
	pairs := AlignPages(ai, source)

	similarities := make([]domain.PageSimilarity, len(pairs))
	comparisons := make([]domain.NumericComparison, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	for i := range pairs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pair := pairs[i]
			ratio := SequenceRatio(NormalizeTokens(pair.AIText()), NormalizeTokens(pair.SourceText()))
			similarities[i] = domain.PageSimilarity{
				PageNumber: pair.PageNumber,
				Ratio:      ratio,
				Pass:       ratio >= v.similarityThreshold,
			}
			comparisons[i] = compareNumericTokens(pair)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verification interrupted: %w", err)
	}

	balances := ReconcileBalances(pairs, v.tolerance)

	report := &domain.VerificationReport{
		WordSimilarity:       1.0,
		OpeningBalance:       balances.FinalOpening,
		ClosingBalance:       balances.FinalClosing,
		TransactionCount:     balances.TransactionCount,
		ComputedVsStatedDiff: balances.LastDiff,
		BalanceMismatch:      balances.AnyMismatch,
		PageSimilarities:     similarities,
		NumericComparisons:   comparisons,
		BalanceChecks:        balances.Checks,
		Anomalies:            balances.Anomalies,
	}

	if len(pairs) > 0 {
		var totalRatio float64
		for _, s := range similarities {
			totalRatio += s.Ratio
		}
		report.WordSimilarity = totalRatio / float64(len(pairs))
	}

	var totals numericTotals
	for _, c := range comparisons {
		totals.common += c.CommonCount
		totals.ai += c.AITokenCount
		totals.source += c.SourceTokenCount
	}
	report.NumericMatchRatio = totals.MatchRatio()
	report.NumericCountDiff = totals.CountDiff()

	return report, nil
}
