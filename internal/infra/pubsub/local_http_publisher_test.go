package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotice() *service.NoticeMessage {
	return &service.NoticeMessage{
		RequestID: "req-1",
		MessageID: "msg-1",
		Notice: entity.Notice{
			EventID:      42,
			EventName:    "Book Fair",
			RecipientID:  7,
			Email:        "owner@example.com",
			FirstName:    "Sana",
			GeofenceName: "F-7 Markaz",
		},
	}
}

func TestPushMessageRoundTrip(t *testing.T) {
	msg := testNotice()

	push, err := NewPushMessage(msg, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "msg-1", push.Message.MessageID)
	assert.Equal(t, "2024-05-01T10:00:00Z", push.Message.PublishTime)
	assert.Equal(t, "42", push.Message.Attributes["event_id"])
	assert.Equal(t, "req-1", push.Message.Attributes["request_id"])

	decoded, err := push.Decode()
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestPushMessageDecodeFallsBackToEnvelope(t *testing.T) {
	push := &PushMessage{}
	push.Message.Data = "eyJub3RpY2UiOnsiZXZlbnRfaWQiOjF9fQ==" // {"notice":{"event_id":1}}
	push.Message.MessageID = "server-9"
	push.Message.Attributes = map[string]string{"request_id": "req-9"}

	decoded, err := push.Decode()
	require.NoError(t, err)
	assert.Equal(t, "server-9", decoded.MessageID)
	assert.Equal(t, "req-9", decoded.RequestID)
}

func TestPushMessageDecodeRejectsGarbage(t *testing.T) {
	push := &PushMessage{}
	push.Message.Data = "%%%"

	_, err := push.Decode()
	assert.Error(t, err)
}

func TestLocalHTTPPublisher(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	require.NoError(t, publisher.PublishNotice(context.Background(), testNotice()))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "msg-1", received.Message.MessageID)

	decoded, err := received.Decode()
	require.NoError(t, err)
	assert.Equal(t, int64(42), decoded.Notice.EventID)
}

func TestLocalHTTPPublisherNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishNotice(context.Background(), testNotice())
	assert.ErrorContains(t, err, "503")
}
