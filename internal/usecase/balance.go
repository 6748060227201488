package usecase

import (
	"fmt"
	"math"

	"fincheck/internal/domain"
)

// BalanceSummary is the document-level outcome of the reconciliation walk.
type BalanceSummary struct {
	Checks           []domain.BalanceCheck
	Anomalies        []string
	FinalOpening     *float64
	FinalClosing     *float64
	LastDiff         float64
	AnyMismatch      bool
	TransactionCount int
}

// ReconcileBalances walks the vision-side structured pages in ascending page
// order, carrying the previous page's computed closing balance so that a page
// with no declared opening balance can infer it from its predecessor.
//
// A page is skipped entirely (no effect on carried state) when its
// transactions field is absent or invalid, or when its opening balance is
// absent and there is no prior computed closing to carry forward. For every
// other page, computed closing = opening + sum of parseable transaction
// amounts; an unparseable amount contributes zero and is recorded as an
// anomaly. A stated closing balance is compared against the computed one
// within tolerance; the computed value becomes the next page's carry-forward
// regardless of whether the page stated a closing balance.
func ReconcileBalances(pairs []domain.PagePair, tolerance float64) BalanceSummary {
	var summary BalanceSummary
	var previousClosing *float64

	for _, pair := range pairs {
		page := pair.AI
		if page == nil {
			continue
		}
		if !page.Transactions.Valid {
			summary.Anomalies = append(summary.Anomalies,
				fmt.Sprintf("page %d: invalid transactions list, skipped", page.PageNumber))
			continue
		}

		// Carry-forward only applies to an absent opening balance; a value
		// that is present but unparseable skips the page instead.
		var opening float64
		switch {
		case page.OpeningBalance.Present():
			opening = page.OpeningBalance.Value
		case page.OpeningBalance.State == domain.AmountInvalid:
			summary.Anomalies = append(summary.Anomalies,
				fmt.Sprintf("page %d: invalid opening balance %q, skipped", page.PageNumber, page.OpeningBalance.Raw))
			continue
		case previousClosing != nil:
			opening = *previousClosing
		default:
			summary.Anomalies = append(summary.Anomalies,
				fmt.Sprintf("page %d: missing opening balance and no previous closing to infer from, skipped", page.PageNumber))
			continue
		}

		var sum float64
		for i, tx := range page.Transactions.Items {
			if !tx.Amount.Present() {
				summary.Anomalies = append(summary.Anomalies,
					fmt.Sprintf("page %d: transaction #%d has unparseable amount %q", page.PageNumber, i+1, tx.Amount.Raw))
				continue
			}
			sum += tx.Amount.Value
		}

		check := domain.BalanceCheck{
			PageNumber:      page.PageNumber,
			Opening:         opening,
			TransactionsSum: sum,
			ComputedClosing: opening + sum,
		}
		if page.ClosingBalance.Present() {
			stated := page.ClosingBalance.Value
			diff := math.Abs(check.ComputedClosing - stated)
			check.StatedClosing = &stated
			check.Diff = &diff
			check.Mismatch = diff > tolerance
		} else if page.ClosingBalance.State == domain.AmountInvalid {
			summary.Anomalies = append(summary.Anomalies,
				fmt.Sprintf("page %d: non-numeric closing balance %q", page.PageNumber, page.ClosingBalance.Raw))
		}

		summary.Checks = append(summary.Checks, check)
		summary.TransactionCount += len(page.Transactions.Items)
		if check.Mismatch {
			summary.AnyMismatch = true
		}

		computed := check.ComputedClosing
		previousClosing = &computed

		// Document-level final state tracks the last processed page.
		finalOpening := check.Opening
		summary.FinalOpening = &finalOpening
		if check.StatedClosing != nil {
			summary.FinalClosing = check.StatedClosing
		} else {
			summary.FinalClosing = &computed
		}
		if check.Diff != nil {
			summary.LastDiff = *check.Diff
		} else {
			summary.LastDiff = 0
		}
	}

	return summary
}
