package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the verification pipeline.
type Config struct {
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel  string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`

	MySQLDSN string `envconfig:"MYSQL_DSN" default:"fincheck:fincheck@tcp(localhost:3306)/fincheck?parseTime=true"`

	PopplerBinDir string `envconfig:"POPPLER_BIN_DIR"`
	MaxPages      int    `envconfig:"MAX_PAGES" default:"20"`

	BalanceTolerance    float64 `envconfig:"BALANCE_TOLERANCE" default:"0.01"`
	SimilarityThreshold float64 `envconfig:"SIMILARITY_THRESHOLD" default:"0.89"`
}

// Load reads configuration from the environment, optionally seeding it from a
// dotenv file first. A missing dotenv file is not an error.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		_ = godotenv.Load(dotenvPath)
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
