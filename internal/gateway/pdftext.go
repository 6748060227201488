package gateway

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"fincheck/internal/domain"
)

// PopplerExtractor implements the TextExtractor interface by shelling out to
// the poppler utilities: pdfinfo for metadata, pdftotext for per-page text,
// and pdftoppm for page images. The poppler package must be installed.
type PopplerExtractor struct {
	// BinDir optionally points at the directory holding the poppler
	// binaries. Empty means resolve via PATH.
	BinDir string
}

// NewPopplerExtractor creates a new extractor instance.
func NewPopplerExtractor(binDir string) *PopplerExtractor {
	return &PopplerExtractor{BinDir: binDir}
}

func (e *PopplerExtractor) bin(name string) string {
	if e.BinDir == "" {
		return name
	}
	return filepath.Join(e.BinDir, name)
}

// ExtractMetadata runs pdfinfo and parses its key/value output.
func (e *PopplerExtractor) ExtractMetadata(ctx context.Context, path string) (*domain.DocumentMetadata, error) {
	cmd := exec.CommandContext(ctx, e.bin("pdfinfo"), path)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdfinfo failed for %s (is poppler installed?): %w", path, err)
	}
	return parsePDFInfo(string(output)), nil
}

// parsePDFInfo turns pdfinfo's "Key: value" lines into document metadata.
func parsePDFInfo(output string) *domain.DocumentMetadata {
	metadata := &domain.DocumentMetadata{}
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Pages":
			if n, err := strconv.Atoi(value); err == nil {
				metadata.Pages = n
			}
		case "Title":
			metadata.Title = value
		case "Author":
			metadata.Author = value
		case "Creator":
			metadata.Creator = value
		case "Producer":
			metadata.Producer = value
		case "CreationDate":
			metadata.CreationDate = value
		case "ModDate":
			metadata.ModificationDate = value
		}
	}
	return metadata
}

// ExtractText runs pdftotext once per page so each page lands in its own
// record, capped at maxPages.
func (e *PopplerExtractor) ExtractText(ctx context.Context, path string, maxPages int) (*domain.SourceDocument, error) {
	metadata, err := e.ExtractMetadata(ctx, path)
	if err != nil {
		return nil, err
	}
	pages := metadata.Pages
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}

	doc := &domain.SourceDocument{Pages: make([]domain.SourcePage, 0, pages)}
	for n := 1; n <= pages; n++ {
		pageArg := strconv.Itoa(n)
		cmd := exec.CommandContext(ctx, e.bin("pdftotext"),
			"-f", pageArg, "-l", pageArg, "-layout", path, "-")
		var out bytes.Buffer
		cmd.Stdout = &out
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("pdftotext failed for %s page %d: %w", path, n, err)
		}
		doc.Pages = append(doc.Pages, domain.SourcePage{
			PageNumber: n,
			PageText:   out.String(),
		})
	}
	return doc, nil
}

// RenderImages converts the document's pages to PNG via pdftoppm, capped at
// maxPages, returning them in page order.
func (e *PopplerExtractor) RenderImages(ctx context.Context, path string, maxPages int) ([][]byte, error) {
	tempDir, err := os.MkdirTemp("", "fincheck-pages-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	args := []string{"-png"}
	if maxPages > 0 {
		args = append(args, "-f", "1", "-l", strconv.Itoa(maxPages))
	}
	args = append(args, path, filepath.Join(tempDir, "page"))

	cmd := exec.CommandContext(ctx, e.bin("pdftoppm"), args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed for %s (is poppler installed?): %w, output: %s", path, err, output)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".png") {
			names = append(names, entry.Name())
		}
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(names)

	images := make([][]byte, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(tempDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read generated image %s: %w", name, err)
		}
		images = append(images, content)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("pdftoppm did not generate any images for %s", path)
	}
	return images, nil
}
