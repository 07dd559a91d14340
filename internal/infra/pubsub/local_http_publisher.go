package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"geoalert/internal/domain/service"
	"geoalert/internal/errors"
)

const localSubscription = "projects/local/subscriptions/notice-sub"

// localHTTPPublisher posts notices straight to the notifier worker in the
// Pub/Sub push format, for local development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	now        func() time.Time
	logger     *slog.Logger
}

// PushMessage is the body Pub/Sub sends to push subscriptions
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps a notice the way a push subscription would deliver it
func NewPushMessage(msg *service.NoticeMessage, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	push := &PushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = noticeAttributes(msg)
	push.Message.MessageID = msg.MessageID
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return push, nil
}

// Decode returns the notice carried in the push body
func (m *PushMessage) Decode() (*service.NoticeMessage, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	var msg service.NoticeMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, errors.Wrap(err, "unmarshal notice message")
	}
	if msg.MessageID == "" {
		msg.MessageID = m.Message.MessageID
	}
	if msg.RequestID == "" {
		msg.RequestID = m.Message.Attributes["request_id"]
	}

	return &msg, nil
}

// NewLocalHTTPPublisher creates a publisher that posts to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now:    time.Now,
		logger: logger,
	}
}

func (p *localHTTPPublisher) PublishNotice(ctx context.Context, msg *service.NoticeMessage) error {
	push, err := NewPushMessage(msg, p.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if msg.RequestID != "" {
		req.Header.Set("X-Request-Id", msg.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Notice published",
		slog.String("endpoint", p.endpoint),
		slog.String("message_id", msg.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}

func noticeAttributes(msg *service.NoticeMessage) map[string]string {
	attributes := map[string]string{
		"message_id": msg.MessageID,
		"event_id":   strconv.FormatInt(msg.Notice.EventID, 10),
	}
	if msg.RequestID != "" {
		attributes["request_id"] = msg.RequestID
	}

	return attributes
}
