package models

import "time"

// NetworkState is the agent's single source of truth for connectivity and
// sync status as seen by UI surfaces.
type NetworkState struct {
	IsOnline      bool       `json:"is_online"`
	PendingCount  int        `json:"pending_count"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
	LastBackupAt  *time.Time `json:"last_backup_at,omitempty"`
	SyncAvailable bool       `json:"sync_available"`
}
