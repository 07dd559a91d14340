package notification

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

var discardLogger = slog.New(slog.DiscardHandler)

func sampleNotice() entity.Notice {
	return entity.Notice{
		EventID:      42,
		EventName:    "Book Fair",
		RecipientID:  7,
		Email:        "Owner@Example.com",
		FirstName:    "Sana",
		GeofenceName: "F-7 Markaz",
	}
}

type fakeMailSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeMailSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)

	return nil
}

func TestMailDispatcherNotify(t *testing.T) {
	sender := &fakeMailSender{}
	d := newMailDispatcher(sender, "alerts@geoalert.example.com", nil, "https://geoalert.example.com", discardLogger)

	require.NoError(t, d.Notify(context.Background(), sampleNotice()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	to := msg.GetTo()
	require.Len(t, to, 1)
	assert.Equal(t, "Owner@Example.com", to[0].Address)

	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"<Owner@Example.com>"}, recipients)
	assert.Equal(t, []string{MailSubject}, msg.GetGenHeader(mail.HeaderSubject))
}

func TestMailDispatcherRejectsBadAddress(t *testing.T) {
	sender := &fakeMailSender{}
	d := newMailDispatcher(sender, "alerts@geoalert.example.com", nil, "", discardLogger)

	notice := sampleNotice()
	notice.Email = "not an address"

	assert.Error(t, d.Notify(context.Background(), notice))
	assert.Empty(t, sender.sent)
}

func TestMailDispatcherSendFailure(t *testing.T) {
	sender := &fakeMailSender{err: errors.New("connection refused")}
	d := newMailDispatcher(sender, "alerts@geoalert.example.com", nil, "", discardLogger)

	err := d.Notify(context.Background(), sampleNotice())
	assert.ErrorContains(t, err, "connection refused")
}

type fakeMessageSender struct {
	messages []*messaging.Message
}

func (f *fakeMessageSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.messages = append(f.messages, message)

	return "projects/p/messages/1", nil
}

func TestFirebaseDispatcherNotify(t *testing.T) {
	sender := &fakeMessageSender{}
	d := &firebaseDispatcher{client: sender, eventURLBase: "https://geoalert.example.com", logger: discardLogger}

	require.NoError(t, d.Notify(context.Background(), sampleNotice()))
	require.Len(t, sender.messages, 1)

	msg := sender.messages[0]
	assert.Equal(t, "user-7", msg.Topic)
	assert.Equal(t, MailSubject, msg.Notification.Title)
	assert.Equal(t, "42", msg.Data["event_id"])
	assert.Equal(t, "https://geoalert.example.com/events/42", msg.Data["url"])
}

type recordingDispatcher struct {
	notices []entity.Notice
	err     error
}

func (r *recordingDispatcher) Notify(_ context.Context, notice entity.Notice) error {
	r.notices = append(r.notices, notice)

	return r.err
}

type fakePublisher struct {
	published []*service.NoticeMessage
}

func (f *fakePublisher) PublishNotice(_ context.Context, msg *service.NoticeMessage) error {
	f.published = append(f.published, msg)

	return nil
}

func (f *fakePublisher) Close() error { return nil }

func TestPubSubDispatcherNotify(t *testing.T) {
	publisher := &fakePublisher{}
	d := NewPubSubDispatcher(publisher)

	require.NoError(t, d.Notify(context.Background(), sampleNotice()))
	require.Len(t, publisher.published, 1)
	assert.NotEmpty(t, publisher.published[0].MessageID)
	assert.Equal(t, sampleNotice(), publisher.published[0].Notice)
}

type fakeGuardStore struct {
	claimed map[string]bool
	failSet bool
	deleted []string
}

func (f *fakeGuardStore) SetNX(ctx context.Context, key string, _ any, _ time.Duration) *redis.BoolCmd {
	if f.failSet {
		return redis.NewBoolResult(false, errors.New("redis down"))
	}
	if f.claimed[key] {
		return redis.NewBoolResult(false, nil)
	}
	f.claimed[key] = true

	return redis.NewBoolResult(true, nil)
}

func (f *fakeGuardStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.claimed, key)
	}
	f.deleted = append(f.deleted, keys...)

	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestGuardKeyNormalizesEmail(t *testing.T) {
	assert.Equal(t, "geoalert:notified:42:owner@example.com", GuardKey(sampleNotice()))
}

func TestGuardedDispatcherSkipsDuplicates(t *testing.T) {
	store := &fakeGuardStore{claimed: map[string]bool{}}
	next := &recordingDispatcher{}
	d := WithGuard(next, &redisGuard{store: store, ttl: time.Hour}, discardLogger)

	require.NoError(t, d.Notify(context.Background(), sampleNotice()))
	require.NoError(t, d.Notify(context.Background(), sampleNotice()))

	assert.Len(t, next.notices, 1)
}

func TestGuardedDispatcherReleasesOnFailure(t *testing.T) {
	store := &fakeGuardStore{claimed: map[string]bool{}}
	next := &recordingDispatcher{err: errors.New("smtp down")}
	d := WithGuard(next, &redisGuard{store: store, ttl: time.Hour}, discardLogger)

	assert.Error(t, d.Notify(context.Background(), sampleNotice()))
	assert.Equal(t, []string{GuardKey(sampleNotice())}, store.deleted)
	assert.Empty(t, store.claimed)
}

func TestGuardedDispatcherFailsOpen(t *testing.T) {
	store := &fakeGuardStore{claimed: map[string]bool{}, failSet: true}
	next := &recordingDispatcher{}
	d := WithGuard(next, &redisGuard{store: store, ttl: time.Hour}, discardLogger)

	require.NoError(t, d.Notify(context.Background(), sampleNotice()))
	assert.Len(t, next.notices, 1)
}

func TestWithGuardNil(t *testing.T) {
	next := &recordingDispatcher{}

	assert.Same(t, next, WithGuard(next, nil, discardLogger))
}
