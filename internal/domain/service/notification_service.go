package service

import (
	"context"

	"estate/internal/domain/entity"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends the message to every token. Tokens the
	// provider rejects as unknown are reported in PushResult.InvalidTokens.
	SendBatchNotification(ctx context.Context, tokens []string, msg entity.PushMessage) (*entity.PushResult, error)
}
