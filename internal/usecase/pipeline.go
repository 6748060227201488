package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fincheck/internal/domain"
)

// ProcessUseCase runs the full document pipeline: local extraction, vision
// extraction, cross-source verification, and feature-row assembly.
type ProcessUseCase struct {
	text     TextExtractor
	vision   VisionExtractor
	store    FeatureStore
	verifier *Verifier
	maxPages int
}

// ProcessResult bundles everything one document pass produced.
type ProcessResult struct {
	Metadata  *domain.DocumentMetadata   `json:"metadata"`
	Statement *domain.StatementSummary   `json:"statement"`
	Report    *domain.VerificationReport `json:"report"`
	Features  *domain.FeatureRow         `json:"features"`
}

// NewProcessUseCase creates the pipeline usecase. store may be nil, in which
// case feature rows are assembled but not persisted.
func NewProcessUseCase(text TextExtractor, vision VisionExtractor, store FeatureStore, verifier *Verifier, maxPages int) *ProcessUseCase {
	return &ProcessUseCase{
		text:     text,
		vision:   vision,
		store:    store,
		verifier: verifier,
		maxPages: maxPages,
	}
}

// ProcessDocument verifies one PDF end to end and returns the assembled
// result. aiDoc may be supplied by the caller (pre-computed vision output);
// when nil the vision extractor is invoked on the rendered page images.
func (uc *ProcessUseCase) ProcessDocument(ctx context.Context, path string, aiDoc *domain.VisionDocument, label *int) (*ProcessResult, error) {
	metadata, err := uc.text.ExtractMetadata(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not extract document metadata: %w", err)
	}

	sourceDoc, err := uc.text.ExtractText(ctx, path, uc.maxPages)
	if err != nil {
		return nil, fmt.Errorf("could not extract document text: %w", err)
	}

	if aiDoc == nil {
		images, err := uc.text.RenderImages(ctx, path, uc.maxPages)
		if err != nil {
			return nil, fmt.Errorf("could not render page images: %w", err)
		}
		aiDoc, err = uc.vision.ExtractPages(ctx, images)
		if err != nil {
			return nil, fmt.Errorf("vision extraction failed: %w", err)
		}
	}

	report, err := uc.verifier.Verify(ctx, aiDoc, sourceDoc)
	if err != nil {
		return nil, fmt.Errorf("verification failed: %w", err)
	}

	statement := ScanStatementText(joinPages(sourceDoc))

	row := buildFeatureRow(metadata, sourceDoc, report, label)
	if uc.store != nil {
		if err := uc.store.SaveFeatures(ctx, row); err != nil {
			return nil, fmt.Errorf("could not save feature row: %w", err)
		}
	}

	return &ProcessResult{
		Metadata:  metadata,
		Statement: statement,
		Report:    report,
		Features:  row,
	}, nil
}

func buildFeatureRow(metadata *domain.DocumentMetadata, source *domain.SourceDocument, report *domain.VerificationReport, label *int) *domain.FeatureRow {
	chars := 0
	for _, p := range source.Pages {
		chars += len(p.PageText)
	}
	return &domain.FeatureRow{
		ID:                   uuid.NewString(),
		PDFPageCount:         metadata.Pages,
		PDFTitle:             metadata.Title,
		PDFAuthor:            metadata.Author,
		PDFCreator:           metadata.Creator,
		PDFProducer:          metadata.Producer,
		PDFCreationDate:      metadata.CreationDate,
		PDFModDate:           metadata.ModificationDate,
		ExtractedTextChars:   chars,
		WordSimilarity:       report.WordSimilarity,
		NumericMatchRatio:    report.NumericMatchRatio,
		NumericCountDiff:     report.NumericCountDiff,
		OpeningBalance:       report.OpeningBalance,
		ClosingBalance:       report.ClosingBalance,
		TransactionCount:     report.TransactionCount,
		ComputedVsStatedDiff: report.ComputedVsStatedDiff,
		BalanceMismatch:      report.BalanceMismatch,
		Label:                label,
		ScannedAt:            time.Now().UTC(),
	}
}

func joinPages(source *domain.SourceDocument) string {
	texts := make([]string, 0, len(source.Pages))
	for _, p := range source.Pages {
		texts = append(texts, p.PageText)
	}
	return strings.Join(texts, "\n")
}
