package domain

// PageSimilarity is the per-page text comparison outcome.
type PageSimilarity struct {
	PageNumber int     `json:"page_number"`
	Ratio      float64 `json:"similarity_ratio"`
	Pass       bool    `json:"pass"`
}

// NumericComparison is the per-page numeric token comparison outcome. The
// per-page match ratio is diagnostic only; the document-level ratio is
// computed once from the accumulated totals.
type NumericComparison struct {
	PageNumber       int     `json:"page_number"`
	AITokenCount     int     `json:"ai_token_count"`
	SourceTokenCount int     `json:"source_token_count"`
	CommonCount      int     `json:"common_count"`
	MatchRatio       float64 `json:"match_ratio"`
}

// BalanceCheck is the outcome of reconciling a single page's declared
// balances. StatedClosing and Diff are nil when the page stated no numeric
// closing balance.
type BalanceCheck struct {
	PageNumber      int      `json:"page_number"`
	Opening         float64  `json:"opening"`
	TransactionsSum float64  `json:"transactions_sum"`
	ComputedClosing float64  `json:"computed_closing"`
	StatedClosing   *float64 `json:"stated_closing"`
	Diff            *float64 `json:"diff"`
	Mismatch        bool     `json:"mismatch"`
}

// VerificationReport is the feature contract produced by one verification
// pass. It is assembled once by the verifier and never mutated afterwards.
type VerificationReport struct {
	WordSimilarity       float64  `json:"ai_word_similarity"`
	NumericMatchRatio    float64  `json:"ai_numeric_match_ratio"`
	NumericCountDiff     int      `json:"ai_numeric_count_diff"`
	OpeningBalance       *float64 `json:"opening_balance"`
	ClosingBalance       *float64 `json:"closing_balance"`
	TransactionCount     int      `json:"transaction_count"`
	ComputedVsStatedDiff float64  `json:"computed_vs_stated_diff"`
	BalanceMismatch      bool     `json:"balance_mismatch"`

	// Per-page diagnostics, kept for observability and logging surfaces.
	PageSimilarities   []PageSimilarity    `json:"page_similarities"`
	NumericComparisons []NumericComparison `json:"numeric_comparisons"`
	BalanceChecks      []BalanceCheck      `json:"balance_checks"`
	Anomalies          []string            `json:"anomalies,omitempty"`
}
