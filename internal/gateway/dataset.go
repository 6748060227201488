package gateway

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fincheck/internal/domain"
)

// datasetHeaders mirrors the statement_features columns used for training.
var datasetHeaders = []string{
	"id", "pdf_page_count", "pdf_title", "pdf_author", "pdf_creator",
	"pdf_producer", "pdf_creation_date", "pdf_mod_date", "extracted_text_chars",
	"ai_word_similarity", "ai_numeric_match_ratio", "ai_numeric_count_diff",
	"opening_balance", "closing_balance", "transaction_count",
	"computed_vs_stated_diff", "balance_mismatch", "label", "scanned_at",
}

// WriteDatasetXLSX writes the feature rows to a training-dataset workbook.
func WriteDatasetXLSX(rows []domain.FeatureRow, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Features"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range datasetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("could not build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("could not write header %s: %w", header, err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.ID, row.PDFPageCount, row.PDFTitle, row.PDFAuthor, row.PDFCreator,
			row.PDFProducer, row.PDFCreationDate, row.PDFModDate, row.ExtractedTextChars,
			row.WordSimilarity, row.NumericMatchRatio, row.NumericCountDiff,
			nullableFloat(row.OpeningBalance), nullableFloat(row.ClosingBalance), row.TransactionCount,
			row.ComputedVsStatedDiff, boolToInt(row.BalanceMismatch), nullableInt(row.Label),
			row.ScannedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("could not build data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("could not write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save dataset workbook %s: %w", path, err)
	}
	return nil
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
