package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// OperationLogModel represents the operation_logs table
type OperationLogModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index"`
	Level     string    `gorm:"column:level;not null"`
	Message   string    `gorm:"column:message;not null"`
	Metadata  string    `gorm:"column:metadata;type:text"`
}

func (OperationLogModel) TableName() string {
	return "operation_logs"
}

// OperationLogEntry is the read-side view of one log row
type OperationLogEntry struct {
	ID        int
	Timestamp time.Time
	Level     string
	Message   string
	Metadata  map[string]interface{}
}

// GormOperationLogRepository persists engine operation logs. Implements
// common.OperationLogger, so handlers can log through the context without
// knowing about the database.
//
// Repeated identical messages within the dedup window are dropped to keep
// periodic stock-alert scans from flooding the table.
type GormOperationLogRepository struct {
	db *gorm.DB

	dedupCache   map[string]time.Time
	dedupMu      sync.Mutex
	dedupWindow  time.Duration
	dedupMaxSize int
}

// NewGormOperationLogRepository creates a new operation log repository
func NewGormOperationLogRepository(db *gorm.DB) *GormOperationLogRepository {
	return &GormOperationLogRepository{
		db:           db,
		dedupCache:   make(map[string]time.Time),
		dedupWindow:  60 * time.Second,
		dedupMaxSize: 10000,
	}
}

// Log implements common.OperationLogger. Write failures are swallowed; a log
// insert must never fail a calculation.
func (r *GormOperationLogRepository) Log(level, message string, metadata map[string]interface{}) {
	_ = r.Append(context.Background(), level, message, metadata)
}

// Append writes a log entry with time-windowed deduplication. The dedup key
// includes the metadata, so entries that differ only in metadata (two
// calculations sharing a message but carrying different calculation IDs) are
// distinct rows.
func (r *GormOperationLogRepository) Append(ctx context.Context, level, message string, metadata map[string]interface{}) error {
	now := time.Now()

	var metadataJSON string
	if len(metadata) > 0 {
		data, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal log metadata: %w", err)
		}
		metadataJSON = string(data)
	}

	cacheKey := level + "|" + message + "|" + metadataJSON

	r.dedupMu.Lock()
	if lastLogged, exists := r.dedupCache[cacheKey]; exists {
		if now.Sub(lastLogged) < r.dedupWindow {
			r.dedupMu.Unlock()
			return nil
		}
	}
	if len(r.dedupCache) >= r.dedupMaxSize {
		r.cleanupDedupCache(now)
	}
	r.dedupCache[cacheKey] = now
	r.dedupMu.Unlock()

	model := OperationLogModel{
		Timestamp: now,
		Level:     level,
		Message:   message,
		Metadata:  metadataJSON,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to write operation log: %w", err)
	}
	return nil
}

// Recent retrieves the newest log entries, optionally filtered by level
func (r *GormOperationLogRepository) Recent(ctx context.Context, limit int, level *string) ([]OperationLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit)
	if level != nil {
		query = query.Where("level = ?", *level)
	}

	var models []OperationLogModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list operation logs: %w", err)
	}

	entries := make([]OperationLogEntry, 0, len(models))
	for _, model := range models {
		entry := OperationLogEntry{
			ID:        model.ID,
			Timestamp: model.Timestamp,
			Level:     model.Level,
			Message:   model.Message,
		}
		if model.Metadata != "" {
			if err := json.Unmarshal([]byte(model.Metadata), &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal log metadata: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// cleanupDedupCache drops entries older than the window. Caller holds dedupMu.
func (r *GormOperationLogRepository) cleanupDedupCache(now time.Time) {
	for key, loggedAt := range r.dedupCache {
		if now.Sub(loggedAt) >= r.dedupWindow {
			delete(r.dedupCache, key)
		}
	}
}
