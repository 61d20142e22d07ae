// Package handler contains the Pub/Sub push handlers of the ledger worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bookkeeper/config"
	deliverycontext "bookkeeper/internal/delivery/context"
	"bookkeeper/internal/domain/service"
	"bookkeeper/internal/infra/pubsub"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var errPermanent = errors.New("event cannot be processed")

// tokenValidator checks the OIDC token Pub/Sub attaches to push requests.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// EventHandler consumes ledger events and keeps archived monthly reports in
// step with late edits to closed months.
type EventHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	reportUC       usecase.ReportUsecase
	location       *time.Location
	now            func() time.Time
	logger         *slog.Logger
}

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	ReportUC usecase.ReportUsecase
}

// NewEventHandler creates the push handler. Push tokens are verified only for
// the Google provider outside the local environment.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvLocal

	return &EventHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		reportUC:       params.ReportUC,
		location:       params.Config.Ledger.Location(),
		now:            time.Now,
		logger:         params.Logger,
	}
}

// HandlePush answers 503 for failures Pub/Sub should retry and 200 for
// everything else, including events it drops.
func (h *EventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.LedgerEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse ledger event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := requestIDOf(ctx, &pushMsg, &event)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	if err := h.process(ctx, &event); err != nil {
		if errors.Is(err, errPermanent) {
			logger.Warn("[Worker] Dropping ledger event", slog.Any("error", err))

			return c.NoContent(http.StatusOK)
		}

		logger.Error("[Worker] Failed to process ledger event", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// process re-archives the month of a transaction event once that month has closed.
func (h *EventHandler) process(ctx context.Context, event *service.LedgerEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case service.EventTransactionCreated, service.EventTransactionUpdated, service.EventTransactionDeleted:
	default:
		logger.Debug("[Worker] Ignoring ledger event")

		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrapf(errPermanent, "invalid user_id %q", event.UserID)
	}
	if event.OccurredAt.IsZero() {
		return errors.Wrap(errPermanent, "missing occurred_at")
	}

	now := h.now().In(h.location)
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, h.location)
	if !event.OccurredAt.Before(currentMonth) {
		return nil
	}

	key, err := h.reportUC.ArchiveMonth(ctx, userID, event.OccurredAt)
	if errors.Is(err, usecase.ErrArchiveDisabled) {
		logger.Debug("[Worker] Report archive is not configured")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to refresh archived report")
	}

	logger.Info("[Worker] Refreshed archived report", slog.String("key", key))

	return nil
}

// verifyPushToken checks the bearer token against this endpoint's URL and Google's issuer.
func (h *EventHandler) verifyPushToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}

// requestIDOf prefers message attributes, then the event, then the incoming request.
func requestIDOf(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *service.LedgerEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}
