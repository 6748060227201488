package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"fincheck/internal/config"
	"fincheck/internal/domain"
	"fincheck/internal/gateway"
	"fincheck/internal/usecase"
)

type result struct {
	sourceFile string
	row        *domain.FeatureRow
	err        error
}

func main() {
	dir := flag.String("dir", ".", "Directory to scan for PDF statements")
	out := flag.String("out", "dataset.xlsx", "Path of the XLSX dataset to write")
	dotenvPath := flag.String("env", "", "Path to a dotenv file with configuration")
	save := flag.Bool("save", false, "Also persist feature rows to the MySQL feature store")
	workers := flag.Int("workers", 4, "Number of documents processed concurrently")
	flag.Parse()

	cfg, err := config.Load(*dotenvPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set.")
	}

	files, err := findPDFs(*dir)
	if err != nil {
		log.Fatalf("Failed to scan %s: %v", *dir, err)
	}
	if len(files) == 0 {
		fmt.Println("No PDF files found.")
		return
	}
	fmt.Printf("Found %d files to process. Starting analysis...\n", len(files))

	textExtractor := gateway.NewPopplerExtractor(cfg.PopplerBinDir)
	visionExtractor := gateway.NewOpenAIVisionExtractor(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	var store usecase.FeatureStore
	if *save {
		mysqlStore, err := gateway.NewMySQLFeatureStore(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("Failed to open feature store: %v", err)
		}
		defer mysqlStore.Close()
		store = mysqlStore
	}

	verifier := usecase.NewVerifier(
		usecase.WithTolerance(cfg.BalanceTolerance),
		usecase.WithSimilarityThreshold(cfg.SimilarityThreshold),
	)
	processUseCase := usecase.NewProcessUseCase(textExtractor, visionExtractor, store, verifier, cfg.MaxPages)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Processing statements"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	jobs := make(chan string)
	results := make(chan result, len(files))
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				res, err := processUseCase.ProcessDocument(context.Background(), file, nil, nil)
				if err != nil {
					results <- result{sourceFile: file, err: err}
				} else {
					results <- result{sourceFile: file, row: res.Features}
				}
				bar.Add(1)
			}
		}()
	}

	go func() {
		for _, file := range files {
			jobs <- file
		}
		close(jobs)
	}()

	wg.Wait()
	close(results)
	fmt.Println("\nAnalysis complete. Writing dataset...")

	var rows []domain.FeatureRow
	var errorCount int
	for res := range results {
		if res.err != nil {
			log.Printf("WARN: %s: %v", res.sourceFile, res.err)
			errorCount++
			continue
		}
		rows = append(rows, *res.row)
	}

	if err := gateway.WriteDatasetXLSX(rows, *out); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}

	fmt.Printf("Wrote %d feature rows to %s (%d failures).\n", len(rows), *out, errorCount)
}

func findPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
