// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncResult is the outcome of replaying one queued request.
type SyncResult struct {
	RequestID  string `json:"request_id"`
	Method     string `json:"method"`
	URL        string `json:"url"`
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// CountResults returns the number of succeeded and failed results.
func CountResults(results []SyncResult) (succeeded, failed int) {
	for _, r := range results {
		if r.Success {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}

// MessageType identifies a message broadcast to UI surfaces.
type MessageType string

const (
	MessageSyncStarted     MessageType = "SYNC_STARTED"
	MessageSyncCompleted   MessageType = "SYNC_COMPLETED"
	MessageSyncFailed      MessageType = "SYNC_FAILED"
	MessageBackupCompleted MessageType = "BACKUP_COMPLETED"
	MessageNetworkOnline   MessageType = "NETWORK_ONLINE"
	MessageNetworkOffline  MessageType = "NETWORK_OFFLINE"
	MessageNotification    MessageType = "NOTIFICATION"
)

// Message is broadcast from the agent to every subscribed UI surface.
// Consumers must ignore message types they do not know.
type Message struct {
	Type         MessageType  `json:"type"`
	Timestamp    time.Time    `json:"timestamp"`
	Results      []SyncResult `json:"results,omitempty"`
	Error        string       `json:"error,omitempty"`
	Version      string       `json:"version,omitempty"`
	Notification *PushPayload `json:"notification,omitempty"`
}
