package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

func newTestNotifications() (NotificationService, *recorder) {
	rec := &recorder{}
	return NewNotificationService(rec, config.App{NotificationPath: "/dashboard"}, logger.Nop()), rec
}

// Show broadcasts a NOTIFICATION carrying the payload.
func TestNotificationService_Show(t *testing.T) {
	svc, rec := newTestNotifications()
	payload := models.PushPayload{
		Title:   "Aphids detected",
		Body:    "Field north-12",
		Data:    models.PushData{URL: "/fields/north-12"},
		Actions: []models.PushAction{{Action: "view", Title: "View"}},
	}

	msg, err := svc.Show(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, models.MessageNotification, msg.Type)
	require.NotNil(t, msg.Notification)
	assert.Equal(t, payload, *msg.Notification)
	assert.Equal(t, []models.MessageType{models.MessageNotification}, rec.types())
}

// A body-only push gets the default title and click target.
func TestNotificationService_Show_Defaults(t *testing.T) {
	svc, _ := newTestNotifications()

	msg, err := svc.Show(context.Background(), models.PushPayload{Body: "Sync finished"})

	require.NoError(t, err)
	assert.Equal(t, DefaultNotificationTitle, msg.Notification.Title)
	assert.Equal(t, "/dashboard", msg.Notification.Data.URL)
}

// Invalid payloads are rejected and not broadcast.
func TestNotificationService_Show_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload models.PushPayload
	}{
		{name: "empty", payload: models.PushPayload{}},
		{name: "foreign target", payload: models.PushPayload{Title: "x", Data: models.PushData{URL: "https://evil.example"}}},
		{name: "bad action", payload: models.PushPayload{Title: "x", Actions: []models.PushAction{{Title: "View"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rec := newTestNotifications()

			_, err := svc.Show(context.Background(), tt.payload)

			assert.ErrorIs(t, err, ErrInvalidNotification)
			assert.Empty(t, rec.types())
		})
	}
}

func TestNotificationService_ClickTarget(t *testing.T) {
	svc, _ := newTestNotifications()

	assert.Equal(t, "/fields/7", svc.ClickTarget(models.PushPayload{Data: models.PushData{URL: "/fields/7"}}))
	assert.Equal(t, "/dashboard", svc.ClickTarget(models.PushPayload{}))
	assert.Equal(t, "/dashboard", svc.ClickTarget(models.PushPayload{Data: models.PushData{URL: "//evil.example"}}))
}

// An empty configured path falls back to /dashboard.
func TestNewNotificationService_DefaultPath(t *testing.T) {
	svc := NewNotificationService(&recorder{}, config.App{}, logger.Nop())

	assert.Equal(t, config.DefaultNotificationPath, svc.ClickTarget(models.PushPayload{}))
}
