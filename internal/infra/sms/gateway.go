// Package sms sends OTP text messages through an HTTP SMS gateway.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"estate/config"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"go.uber.org/fx"
)

const requestTimeout = 10 * time.Second

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Message string `json:"message"`
}

type gatewaySender struct {
	client   *http.Client
	endpoint string
	apiKey   string
	sender   string
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSender returns the gateway sender, or a log-only sender when no
// endpoint is configured (local development).
func NewSender(params Params) service.SMSSender {
	cfg := params.Config.SMS
	if cfg == nil || cfg.Endpoint == "" {
		params.Logger.Warn("sms endpoint not configured, OTP messages will only be logged")

		return &logSender{logger: params.Logger}
	}

	return NewGatewaySender(&http.Client{Timeout: requestTimeout}, cfg.Endpoint, cfg.APIKey, cfg.Sender)
}

func NewGatewaySender(client *http.Client, endpoint, apiKey, sender string) service.SMSSender {
	return &gatewaySender{client: client, endpoint: endpoint, apiKey: apiKey, sender: sender}
}

func (s *gatewaySender) Send(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(sendRequest{To: phone, From: s.sender, Message: message})
	if err != nil {
		return errors.Wrap(err, "encode sms request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build sms request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send sms")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("sms gateway returned %d: %s", resp.StatusCode, msg)
	}

	return nil
}

type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, phone, message string) error {
	s.logger.InfoContext(ctx, "sms (not sent)", slog.String("to", phone), slog.String("message", message))

	return nil
}
