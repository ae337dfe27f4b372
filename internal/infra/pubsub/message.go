package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"estate/internal/domain/entity"
	"estate/internal/errors"
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to the worker.
// The local publisher produces the same shape.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Event decodes the base64 JSON payload.
func (e *PushEnvelope) Event() (*entity.ListingEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	return DecodeEvent(raw)
}

// DecodeEvent parses a JSON listing event and rejects unknown types.
func DecodeEvent(raw []byte) (*entity.ListingEvent, error) {
	var event entity.ListingEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal listing event")
	}

	switch event.Type {
	case entity.ListingEventCreated, entity.ListingEventSold, entity.ListingEventVisited:
		return &event, nil
	default:
		return nil, errors.Errorf("unknown listing event type %q", event.Type)
	}
}

func eventAttributes(event *entity.ListingEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"listing_id": event.ListingID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
