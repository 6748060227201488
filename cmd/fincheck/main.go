package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"fincheck/internal/config"
	"fincheck/internal/domain"
	"fincheck/internal/gateway"
	"fincheck/internal/usecase"
)

func main() {
	// Define command-line flags
	pdfPath := flag.String("pdf", "", "Path to the PDF statement to verify (required)")
	aiJSONPath := flag.String("ai", "", "Path to a pre-computed vision extraction JSON (skips the OpenAI call)")
	dotenvPath := flag.String("env", "", "Path to a dotenv file with configuration")
	save := flag.Bool("save", false, "Persist the feature row to the MySQL feature store")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Error: the -pdf flag is required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*dotenvPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Optional pre-computed vision output for offline runs.
	var aiDoc *domain.VisionDocument
	if *aiJSONPath != "" {
		data, err := os.ReadFile(*aiJSONPath)
		if err != nil {
			log.Fatalf("Failed to read vision extraction file: %v", err)
		}
		aiDoc, err = gateway.DecodeVisionDocument(data)
		if err != nil {
			log.Fatalf("Failed to decode vision extraction: %v", err)
		}
	} else if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set and no -ai file was given.")
	}

	// --- Dependency Injection (Wiring the application) ---
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

	// --- Execute the Usecase ---
	result, err := processUseCase.ProcessDocument(context.Background(), *pdfPath, aiDoc, nil)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}
