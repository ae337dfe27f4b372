package notification

import (
	"context"
	"log/slog"

	"estate/config"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxTokensPerBatch is the FCM multicast limit.
const maxTokensPerBatch = 500

// multicastSender is the subset of *messaging.Client used here.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// NewFirebaseService creates a Firebase Cloud Messaging backed service.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendBatchNotification splits tokens into FCM sized chunks. A failed chunk
// aborts the remaining ones and returns the partial result with the error.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg entity.PushMessage) (*entity.PushResult, error) {
	result := &entity.PushResult{InvalidTokens: make([]string, 0)}

	for start := 0; start < len(tokens); start += maxTokensPerBatch {
		end := min(start+maxTokensPerBatch, len(tokens))
		chunk := tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return result, errors.Wrap(err, "send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[idx])
			}
		}
	}

	return result, nil
}

// logOnlyService stands in when Firebase is not configured.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, msg entity.PushMessage) (*entity.PushResult, error) {
	s.logger.InfoContext(ctx, "push delivery disabled, dropping notification",
		slog.String("title", msg.Title),
		slog.Int("token_count", len(tokens)),
	)

	return &entity.PushResult{SuccessCount: len(tokens), InvalidTokens: []string{}}, nil
}

type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService picks FCM when firebase is configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	if params.Config.Firebase == nil {
		params.Logger.Warn("firebase not configured, push notifications are logged only")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, params.Config.Firebase, params.Logger)
}
