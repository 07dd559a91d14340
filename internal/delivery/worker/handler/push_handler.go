// Package handler contains the notifier worker's push endpoint.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/constants"
	"geoalert/internal/domain/service"
	"geoalert/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler delivers notices pushed by the Pub/Sub subscription
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	dispatcher     service.NotificationDispatcher
	validateToken  func(req *http.Request) error
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Dispatcher service.NotificationDispatcher
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local publisher does not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		dispatcher:     params.Dispatcher,
		validateToken:  verifyPubSubToken,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// A 2xx acknowledges the message; 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.validateToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var push pubsub.PushMessage
	if err := c.Bind(&push); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg, err := push.Decode()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode notice", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := msg.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", msg.MessageID),
		slog.Int64("event_id", msg.Notice.EventID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if msg.Notice.EventID <= 0 || strings.TrimSpace(msg.Notice.Email) == "" {
		// Redelivering a malformed notice can never succeed
		reqLogger.Warn("[Worker] Dropping notice without event or recipient")

		return c.NoContent(http.StatusOK)
	}

	if err := h.dispatcher.Notify(ctx, msg.Notice); err != nil {
		reqLogger.Error("[Worker] Failed to deliver notice", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Notice delivered", slog.Int64("recipient_id", msg.Notice.RecipientID))

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
