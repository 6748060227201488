package usecase

import (
	"context"

	"fincheck/internal/domain"
)

// TextExtractor defines the interface for the local PDF collaborators:
// metadata, per-page text, and rasterized page images. The usecase layer
// depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_collaborators.go -source=interface.go
type TextExtractor interface {
	ExtractMetadata(ctx context.Context, path string) (*domain.DocumentMetadata, error)
	ExtractText(ctx context.Context, path string, maxPages int) (*domain.SourceDocument, error)
	RenderImages(ctx context.Context, path string, maxPages int) ([][]byte, error)
}

// VisionExtractor defines the interface for the vision oracle that turns page
// images into a structured per-page extraction.
type VisionExtractor interface {
	ExtractPages(ctx context.Context, images [][]byte) (*domain.VisionDocument, error)
}

// FeatureStore persists and lists verification feature rows for the external
// decision process.
type FeatureStore interface {
	SaveFeatures(ctx context.Context, row *domain.FeatureRow) error
	ListFeatures(ctx context.Context) ([]domain.FeatureRow, error)
}
