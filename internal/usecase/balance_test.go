package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fincheck/internal/domain"
)

func visionPair(page domain.VisionPage) domain.PagePair {
	p := page
	return domain.PagePair{PageNumber: page.PageNumber, AI: &p}
}

func transactions(amounts ...float64) domain.TransactionList {
	items := make([]domain.Transaction, 0, len(amounts))
	for _, a := range amounts {
		items = append(items, domain.Transaction{Date: "2025-03-01", Amount: domain.NewAmount(a)})
	}
	return domain.TransactionList{Valid: true, Items: items}
}

func TestReconcileBalancesCarryForward(t *testing.T) {
	pairs := []domain.PagePair{
		visionPair(domain.VisionPage{
			PageNumber:     1,
			OpeningBalance: domain.NewAmount(1000.00),
			Transactions:   transactions(100.00, -50.00, 25.00),
		}),
		visionPair(domain.VisionPage{
			PageNumber:   2,
			Transactions: transactions(10.00),
		}),
	}

	summary := ReconcileBalances(pairs, DefaultTolerance)

	assert.Len(t, summary.Checks, 2)

	// Page 1: no stated closing, computed only.
	assert.InDelta(t, 1075.00, summary.Checks[0].ComputedClosing, 1e-9)
	assert.Nil(t, summary.Checks[0].Diff)
	assert.False(t, summary.Checks[0].Mismatch)

	// Page 2 inherits page 1's computed closing as its opening.
	assert.InDelta(t, 1075.00, summary.Checks[1].Opening, 1e-9)
	assert.InDelta(t, 1085.00, summary.Checks[1].ComputedClosing, 1e-9)

	assert.Equal(t, 4, summary.TransactionCount)
	assert.False(t, summary.AnyMismatch)
}

func TestReconcileBalancesExplicitOpeningWinsOverCarry(t *testing.T) {
	pairs := []domain.PagePair{
		visionPair(domain.VisionPage{
			PageNumber:     1,
			OpeningBalance: domain.NewAmount(1000.00),
			Transactions:   transactions(75.00),
		}),
		visionPair(domain.VisionPage{
			PageNumber:     2,
			OpeningBalance: domain.NewAmount(5000.00),
			Transactions:   transactions(1.00),
		}),
	}

	summary := ReconcileBalances(pairs, DefaultTolerance)

	// Carry-forward only applies when the opening balance is absent.
	assert.InDelta(t, 5000.00, summary.Checks[1].Opening, 1e-9)
	assert.InDelta(t, 5001.00, summary.Checks[1].ComputedClosing, 1e-9)
}

func TestReconcileBalancesMismatchDetection(t *testing.T) {
	pairs := []domain.PagePair{
		visionPair(domain.VisionPage{
			PageNumber:     1,
			OpeningBalance: domain.NewAmount(500.00),
			ClosingBalance: domain.NewAmount(800.00),
			Transactions:   transactions(200.00),
		}),
	}

	summary := ReconcileBalances(pairs, 0.01)

	assert.Len(t, summary.Checks, 1)
	check := summary.Checks[0]
	assert.InDelta(t, 700.00, check.ComputedClosing, 1e-9)
	if assert.NotNil(t, check.Diff) {
		assert.InDelta(t, 100.00, *check.Diff, 1e-9)
	}
	assert.True(t, check.Mismatch)
	assert.True(t, summary.AnyMismatch)
	assert.InDelta(t, 100.00, summary.LastDiff, 1e-9)
}

func TestReconcileBalancesExactMatch(t *testing.T) {
	pairs := []domain.PagePair{
		visionPair(domain.VisionPage{
			PageNumber:     1,
			OpeningBalance: domain.NewAmount(1800.00),
			ClosingBalance: domain.NewAmount(2000.00),
			Transactions:   transactions(200.00),
		}),
	}

	summary := ReconcileBalances(pairs, DefaultTolerance)

	check := summary.Checks[0]
	if assert.NotNil(t, check.Diff) {
		assert.InDelta(t, 0.00, *check.Diff, 1e-9)
	}
	assert.False(t, check.Mismatch)
	if assert.NotNil(t, summary.FinalClosing) {
		assert.InDelta(t, 2000.00, *summary.FinalClosing, 1e-9)
	}
	if assert.NotNil(t, summary.FinalOpening) {
		assert.InDelta(t, 1800.00, *summary.FinalOpening, 1e-9)
	}
}

func TestReconcileBalancesSkipRules(t *testing.T) {
	pairs := []domain.PagePair{
		// First page: opening absent and nothing to carry from; skipped.
		visionPair(domain.VisionPage{
			PageNumber:   1,
			Transactions: transactions(10.00),
		}),
		// Invalid transactions list; skipped, carried state untouched.
		visionPair(domain.VisionPage{
			PageNumber:     2,
			OpeningBalance: domain.NewAmount(100.00),
		}),
		// First processable page.
		visionPair(domain.VisionPage{
			PageNumber:     3,
			OpeningBalance: domain.NewAmount(300.00),
			Transactions:   transactions(50.00),
		}),
	}

	summary := ReconcileBalances(pairs, DefaultTolerance)

	assert.Len(t, summary.Checks, 1)
	assert.Equal(t, 3, summary.Checks[0].PageNumber)
	assert.InDelta(t, 350.00, summary.Checks[0].ComputedClosing, 1e-9)
	assert.Equal(t, 1, summary.TransactionCount)
	assert.Len(t, summary.Anomalies, 2)
}

func TestReconcileBalancesUnparseableAmountContributesZero(t *testing.T) {
	list := transactions(100.00)
	list.Items = append(list.Items, domain.Transaction{
		Date:   "2025-03-02",
		Amount: domain.Amount{State: domain.AmountInvalid, Raw: "1O0.00"},
	})

	pairs := []domain.PagePair{
		visionPair(domain.VisionPage{
			PageNumber:     1,
			OpeningBalance: domain.NewAmount(500.00),
			ClosingBalance: domain.NewAmount(600.00),
			Transactions:   list,
		}),
	}

	summary := ReconcileBalances(pairs, DefaultTolerance)

	check := summary.Checks[0]
	assert.InDelta(t, 600.00, check.ComputedClosing, 1e-9)
	assert.False(t, check.Mismatch)
	// The bad amount still counts toward the transaction total and leaves a trace.
	assert.Equal(t, 2, summary.TransactionCount)
	assert.Len(t, summary.Anomalies, 1)
}

func TestReconcileBalancesInvalidOpeningSkipsInsteadOfCarrying(t *testing.T) {
	pairs := []domain.PagePair{
		visionPair(domain.VisionPage{
			PageNumber:     1,
			OpeningBalance: domain.NewAmount(100.00),
			Transactions:   transactions(10.00),
		}),
		visionPair(domain.VisionPage{
			PageNumber:     2,
			OpeningBalance: domain.Amount{State: domain.AmountInvalid, Raw: "n/a"},
			Transactions:   transactions(1.00),
		}),
		visionPair(domain.VisionPage{
			PageNumber:   3,
			Transactions: transactions(5.00),
		}),
	}

	summary := ReconcileBalances(pairs, DefaultTolerance)

	assert.Len(t, summary.Checks, 2)
	// Page 3 carries forward from page 1's computed closing, not page 2.
	assert.Equal(t, 3, summary.Checks[1].PageNumber)
	assert.InDelta(t, 110.00, summary.Checks[1].Opening, 1e-9)
}

func TestReconcileBalancesStatedClosingOverridesCarryValueInFinal(t *testing.T) {
	stated := 990.00
	pairs := []domain.PagePair{
		visionPair(domain.VisionPage{
			PageNumber:     1,
			OpeningBalance: domain.NewAmount(900.00),
			ClosingBalance: domain.NewAmount(stated),
			Transactions:   transactions(100.00),
		}),
	}

	summary := ReconcileBalances(pairs, DefaultTolerance)

	// Final closing reports the stated value; the computed value (1000.00)
	// is what carries forward and what the diff is measured against.
	if assert.NotNil(t, summary.FinalClosing) {
		assert.InDelta(t, stated, *summary.FinalClosing, 1e-9)
	}
	assert.InDelta(t, 10.00, summary.LastDiff, 1e-9)
	assert.True(t, summary.AnyMismatch)
}
