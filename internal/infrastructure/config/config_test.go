package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/infrastructure/config"
)

func TestLoadConfigOrDefault_UnreadableFileFallsBackToDefaults(t *testing.T) {
	// Arrange: an explicit config path that does not exist
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	// Act
	cfg := config.LoadConfigOrDefault(missing)

	// Assert: built-in defaults carry the engine
	require.NotNil(t, cfg)
	assert.Equal(t, 1.4, cfg.Engine.MarkupFactor)
	assert.Equal(t, 0.20, cfg.Engine.MinimumMargin)
	assert.Equal(t, 10, cfg.Engine.HistoryLimit)
}
