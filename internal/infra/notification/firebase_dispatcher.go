package notification

import (
	"context"
	"log/slog"
	"strconv"

	"geoalert/config"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseDispatcher pushes notices to the FCM topic each user's devices subscribe to.
type firebaseDispatcher struct {
	client       messageSender
	eventURLBase string
	logger       *slog.Logger
}

// NewFirebaseDispatcher creates an FCM NotificationDispatcher from the firebase section.
func NewFirebaseDispatcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationDispatcher, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil, errors.New("firebase credentials are required for the firebase channel")
	}

	var appCfg *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseDispatcher{
		client:       client,
		eventURLBase: eventURLBase(cfg),
		logger:       logger,
	}, nil
}

// UserTopic is the FCM topic a user's devices subscribe to.
func UserTopic(userID int64) string {
	return "user-" + strconv.FormatInt(userID, 10)
}

// Notify sends the notice to the recipient's topic.
func (d *firebaseDispatcher) Notify(ctx context.Context, notice entity.Notice) error {
	messageID, err := d.client.Send(ctx, d.buildMessage(notice))
	if err != nil {
		return errors.Wrapf(err, "send push for event %d", notice.EventID)
	}

	d.logger.Debug("[Firebase] Notice sent",
		slog.Int64("event_id", notice.EventID),
		slog.Int64("recipient_id", notice.RecipientID),
		slog.String("message_id", messageID),
	)

	return nil
}

func (d *firebaseDispatcher) buildMessage(notice entity.Notice) *messaging.Message {
	data := NewMailData(notice, d.eventURLBase)

	return &messaging.Message{
		Topic: UserTopic(notice.RecipientID),
		Notification: &messaging.Notification{
			Title: MailSubject,
			Body:  notice.EventName + " is happening inside " + notice.GeofenceName,
		},
		Data: map[string]string{
			"event_id":      strconv.FormatInt(notice.EventID, 10),
			"event_name":    notice.EventName,
			"geofence_name": notice.GeofenceName,
			"url":           data.URL,
		},
	}
}
