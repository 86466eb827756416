package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/adapters/persistence"
	"github.com/otabekd/factoryops-go/test/helpers"
)

func TestOperationLogRepository_AppendAndRecent(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOperationLogRepository(db)

	// Act
	err := repo.Append(context.Background(), "INFO", "calculation started", map[string]interface{}{
		"product":  "Sement M500",
		"quantity": 100.0,
	})

	// Assert
	require.NoError(t, err)

	entries, err := repo.Recent(context.Background(), 10, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "calculation started", entries[0].Message)
	assert.Equal(t, "Sement M500", entries[0].Metadata["product"])
}

func TestOperationLogRepository_DeduplicatesWithinWindow(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOperationLogRepository(db)

	// Act - same level and message twice in quick succession
	require.NoError(t, repo.Append(context.Background(), "WARN", "stock below reorder point", nil))
	require.NoError(t, repo.Append(context.Background(), "WARN", "stock below reorder point", nil))

	// A different message is not affected by the dedup cache
	require.NoError(t, repo.Append(context.Background(), "WARN", "price estimated", nil))

	// Assert
	entries, err := repo.Recent(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestOperationLogRepository_DistinctMetadataIsNotDeduplicated(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOperationLogRepository(db)

	// Act - same message from two different calculations
	require.NoError(t, repo.Append(context.Background(), "INFO", "Production cost calculated", map[string]interface{}{
		"calculation_id": "calc-sement-m500-aaaa1111",
	}))
	require.NoError(t, repo.Append(context.Background(), "INFO", "Production cost calculated", map[string]interface{}{
		"calculation_id": "calc-beton-m300-bbbb2222",
	}))

	// Assert - both audit entries survive
	entries, err := repo.Recent(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestOperationLogRepository_RecentFiltersByLevel(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOperationLogRepository(db)

	require.NoError(t, repo.Append(context.Background(), "INFO", "scan complete", nil))
	require.NoError(t, repo.Append(context.Background(), "ERROR", "material not found", nil))

	// Act
	level := "ERROR"
	entries, err := repo.Recent(context.Background(), 10, &level)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "material not found", entries[0].Message)
}
