package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fieldwise-sentinel/internal/config"
	"github.com/MKhiriev/fieldwise-sentinel/internal/logger"
	"github.com/MKhiriev/fieldwise-sentinel/internal/validators"
	"github.com/MKhiriev/fieldwise-sentinel/models"
)

// DefaultNotificationTitle is shown when a push carries a body only.
const DefaultNotificationTitle = "FieldWise Sentinel"

type notificationService struct {
	broadcaster Broadcaster
	validator   validators.Validator
	defaultPath string

	now    func() time.Time
	logger *logger.Logger
}

func NewNotificationService(broadcaster Broadcaster, cfg config.App, logger *logger.Logger) NotificationService {
	defaultPath := cfg.NotificationPath
	if defaultPath == "" {
		defaultPath = config.DefaultNotificationPath
	}

	return &notificationService{
		broadcaster: broadcaster,
		validator:   validators.NewSentinelValidator(),
		defaultPath: defaultPath,
		now:         time.Now,
		logger:      logger,
	}
}

// Show broadcasts payload as a NOTIFICATION message to every UI surface.
func (n *notificationService) Show(ctx context.Context, payload models.PushPayload) (models.Message, error) {
	if err := n.validator.Validate(ctx, payload); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidNotification, err)
	}

	if strings.TrimSpace(payload.Title) == "" {
		payload.Title = DefaultNotificationTitle
	}
	payload.Data.URL = n.ClickTarget(payload)

	msg := models.Message{
		Type:         models.MessageNotification,
		Timestamp:    n.now().UTC(),
		Notification: &payload,
	}
	n.broadcaster.Publish(msg)

	logger.FromContext(ctx).Debug().
		Str("func", "notificationService.Show").
		Str("title", payload.Title).
		Str("url", payload.Data.URL).
		Msg("notification shown")

	return msg, nil
}

// ClickTarget returns the path a click on the notification opens: data.url
// when it is a same-origin path, the default path otherwise.
func (n *notificationService) ClickTarget(payload models.PushPayload) string {
	if payload.Data.URL == "" {
		return n.defaultPath
	}
	if err := n.validator.Validate(context.Background(), payload, validators.FieldURL); err != nil {
		return n.defaultPath
	}
	return payload.Data.URL
}
