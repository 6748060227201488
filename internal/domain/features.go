package domain

import "time"

// DocumentMetadata holds the PDF-level metadata extracted locally.
type DocumentMetadata struct {
	Pages            int    `json:"pages"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	Creator          string `json:"creator"`
	Producer         string `json:"producer"`
	CreationDate     string `json:"creation_date"`
	ModificationDate string `json:"modification_date"`
}

// FeatureRow is one row of the statement_features table: document metadata
// plus the verification feature contract, consumed by the external
// classification process. Label is nil until a human or the downstream model
// assigns one (0 legitimate, 1 fraudulent).
type FeatureRow struct {
	ID                   string    `json:"id" db:"id"`
	PDFPageCount         int       `json:"pdf_page_count" db:"pdf_page_count"`
	PDFTitle             string    `json:"pdf_title" db:"pdf_title"`
	PDFAuthor            string    `json:"pdf_author" db:"pdf_author"`
	PDFCreator           string    `json:"pdf_creator" db:"pdf_creator"`
	PDFProducer          string    `json:"pdf_producer" db:"pdf_producer"`
	PDFCreationDate      string    `json:"pdf_creation_date" db:"pdf_creation_date"`
	PDFModDate           string    `json:"pdf_mod_date" db:"pdf_mod_date"`
	ExtractedTextChars   int       `json:"extracted_text_chars" db:"extracted_text_chars"`
	WordSimilarity       float64   `json:"ai_word_similarity" db:"ai_word_similarity"`
	NumericMatchRatio    float64   `json:"ai_numeric_match_ratio" db:"ai_numeric_match_ratio"`
	NumericCountDiff     int       `json:"ai_numeric_count_diff" db:"ai_numeric_count_diff"`
	OpeningBalance       *float64  `json:"opening_balance" db:"opening_balance"`
	ClosingBalance       *float64  `json:"closing_balance" db:"closing_balance"`
	TransactionCount     int       `json:"transaction_count" db:"transaction_count"`
	ComputedVsStatedDiff float64   `json:"computed_vs_stated_diff" db:"computed_vs_stated_diff"`
	BalanceMismatch      bool      `json:"balance_mismatch" db:"balance_mismatch"`
	Label                *int      `json:"label" db:"label"`
	ScannedAt            time.Time `json:"scanned_at" db:"scanned_at"`
}

// LocalTransaction is a ledger line recognized in locally extracted text.
type LocalTransaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// StatementSummary is the outcome of the keyword/regex scan over locally
// extracted text. It feeds diagnostics only and never overrides the
// vision-side structured extraction.
type StatementSummary struct {
	IsBankStatement bool               `json:"is_bank_statement"`
	BusinessName    string             `json:"business_name"`
	BusinessAddress string             `json:"business_address"`
	OpeningBalance  *float64           `json:"opening_balance"`
	ClosingBalance  *float64           `json:"closing_balance"`
	Transactions    []LocalTransaction `json:"transactions"`
	Reconciled      bool               `json:"reconciled"`
}
