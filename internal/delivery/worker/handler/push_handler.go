package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"addressing/config"
	deliverycontext "addressing/internal/delivery/context"
	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/domain/service"
	"addressing/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a Pub/Sub push request.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a push OIDC token against the expected audience.
type TokenValidator func(token, audience string, req *http.Request) (*idtoken.Payload, error)

// PushHandler re-propagates a Main building's group when its house number
// changes.
type PushHandler struct {
	audience      string
	logger        *slog.Logger
	validate      *validator.Validate
	validateToken TokenValidator
	addressingSvc usecase.AddressingUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	AddressingSvc usecase.AddressingUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	audience := ""
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:      audience,
		logger:        params.Logger,
		validate:      validator.New(),
		validateToken: validateGoogleToken,
		addressingSvc: params.AddressingSvc,
	}
}

// HandlePush acknowledges with 200 unless the failure is worth a redelivery,
// in which case it answers 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AddressChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse address changed event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if err := h.validate.Struct(&event); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Invalid address changed event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := deliverycontext.Scoped(ctx, h.logger, requestIDOf(c, &pushMsg, &event))

	reqLogger.InfoContext(ctx, "[Worker] Processing address changed event",
		slog.String("event_id", event.EventID),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Int64("building_id", event.BuildingID),
		slog.String("house_no", event.HouseNo),
	)

	report, err := h.addressingSvc.PropagateForMain(ctx, event.BuildingID)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.ErrorContext(ctx, "[Worker] Failed to propagate address",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.InfoContext(ctx, "[Worker] Address propagated",
		slog.String("event_id", event.EventID),
		slog.Int("updated", report.Addressed),
	)

	return c.NoContent(http.StatusOK)
}

// requestIDOf prefers the message attribute, then the event, then the
// request header.
func requestIDOf(c echo.Context, pushMsg *PubSubMessage, event *service.AddressChangedEvent) string {
	if requestID := pushMsg.Message.Attributes[deliverycontext.AttributeRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestID(c)
}

// isRetryable treats server-side failures as transient. Client-side
// failures would fail the same way on redelivery.
func isRetryable(err error) bool {
	return domainerrors.HTTPStatus(err) >= http.StatusInternalServerError
}

func (h *PushHandler) verifyToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}

	payload, err := h.validateToken(strings.TrimPrefix(authHeader, bearerPrefix), h.audience, req)
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

func validateGoogleToken(token, audience string, req *http.Request) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return payload, nil
}
