// File: /models/storage_entry.go
package models

import "time"

// LocalStorageEntry is one key of a browser session's persisted client state.
type LocalStorageEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"not null;size:64;uniqueIndex:idx_session_key"`
	Key       string    `json:"key" gorm:"not null;size:64;uniqueIndex:idx_session_key"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LocalStorageEntry) TableName() string {
	return "local_storage_entries"
}
