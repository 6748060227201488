package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"fincheck/internal/domain"
)

var (
	statementKeywords = []string{
		"statement date", "account number", "balance", "sort code", "account summary",
	}

	openingBalancePattern = regexp.MustCompile(`(?i)opening\s+balance\D+([\d,.]+)`)
	closingBalancePattern = regexp.MustCompile(`(?i)closing\s+balance\D+([\d,.]+)`)
	postcodePattern       = regexp.MustCompile(`(?i)[A-Z]{1,2}\d[A-Z\d]?\s?\d[ABD-HJLNP-UW-Z]{2}`)
	ledgerLinePattern     = regexp.MustCompile(`(\d{2}/\d{2}/\d{4}|\d{4}-\d{2}-\d{2})\s+(.+?)\s+([+-]?[\d,.]+)`)
)

// LooksLikeBankStatement applies the keyword heuristic: at least two of the
// expected statement keywords must appear in the text.
func LooksLikeBankStatement(text string) bool {
	lower := strings.ToLower(text)
	found := 0
	for _, kw := range statementKeywords {
		if strings.Contains(lower, kw) {
			found++
		}
	}
	return found >= 2
}

// ScanStatementText runs the naive local heuristics over the full extracted
// text: business details, stated balances, ledger lines, and a local
// reconcile check. It is diagnostic only; the vision-side structured
// extraction remains authoritative for balance reconciliation.
func ScanStatementText(text string) *domain.StatementSummary {
	summary := &domain.StatementSummary{
		IsBankStatement: LooksLikeBankStatement(text),
	}
	lower := strings.ToLower(text)
	lines := strings.Split(lower, "\n")

	// Business name: a company suffix within the first few lines.
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		if strings.Contains(line, "ltd") || strings.Contains(line, "plc") {
			summary.BusinessName = strings.TrimSpace(line)
			break
		}
	}

	// Address: the lines surrounding the first postcode-looking token.
	for i, line := range lines {
		if postcodePattern.MatchString(line) {
			start := i - 2
			if start < 0 {
				start = 0
			}
			end := i + 3
			if end > len(lines) {
				end = len(lines)
			}
			trimmed := make([]string, 0, end-start)
			for _, l := range lines[start:end] {
				trimmed = append(trimmed, strings.TrimSpace(l))
			}
			summary.BusinessAddress = strings.Join(trimmed, "\n")
			break
		}
	}

	if m := openingBalancePattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			summary.OpeningBalance = &v
		}
	}
	if m := closingBalancePattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			summary.ClosingBalance = &v
		}
	}

	for _, line := range lines {
		m := ledgerLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[3], ",", ""), 64)
		if err != nil {
			amount = 0
		}
		summary.Transactions = append(summary.Transactions, domain.LocalTransaction{
			Date:        m[1],
			Description: strings.TrimSpace(m[2]),
			Amount:      amount,
		})
	}

	if summary.OpeningBalance != nil && summary.ClosingBalance != nil {
		var movement float64
		for _, tx := range summary.Transactions {
			movement += tx.Amount
		}
		expected := *summary.OpeningBalance + movement
		summary.Reconciled = math.Abs(expected-*summary.ClosingBalance) < DefaultTolerance
	}

	return summary
}
