package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 20, cfg.MaxPages)
	assert.InDelta(t, 0.01, cfg.BalanceTolerance, 1e-9)
	assert.InDelta(t, 0.89, cfg.SimilarityThreshold, 1e-9)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("SIMILARITY_THRESHOLD", "0.90")
	t.Setenv("MAX_PAGES", "5")

	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.InDelta(t, 0.90, cfg.SimilarityThreshold, 1e-9)
	assert.Equal(t, 5, cfg.MaxPages)
}
