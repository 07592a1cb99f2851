// File: /repositories/gorm_backend.go
package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"socialhub-app/models"
)

// GormBackend stores session entries in the local_storage_entries table.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (r *GormBackend) Get(ctx context.Context, sessionID, key string) (string, error) {
	var entry models.LocalStorageEntry
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND `key` = ?", sessionID, key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

// Set creates the entry or updates its value in place.
func (r *GormBackend) Set(ctx context.Context, sessionID, key, value string) error {
	entry := models.LocalStorageEntry{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value, "updated_at": time.Now()}),
	}).Create(&entry).Error
}

func (r *GormBackend) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("session_id = ? AND `key` IN ?", sessionID, keys).
		Delete(&models.LocalStorageEntry{}).Error
}

func (r *GormBackend) Clear(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.LocalStorageEntry{}).Error
}

// DeleteStale removes entries of sessions untouched since before cutoff.
func (r *GormBackend) DeleteStale(cutoff time.Time) (int64, error) {
	result := r.db.Where("updated_at < ?", cutoff).Delete(&models.LocalStorageEntry{})
	return result.RowsAffected, result.Error
}
