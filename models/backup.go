package models

import (
	"encoding/json"
	"time"
)

// BackupEnvelope wraps a snapshot of all locally held state.
// Version is the ISO-8601 timestamp used in the backup key.
type BackupEnvelope struct {
	Version   string                     `json:"version"`
	Timestamp time.Time                  `json:"timestamp"`
	Data      map[string]json.RawMessage `json:"data"`
}
