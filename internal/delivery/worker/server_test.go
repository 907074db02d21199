package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"addressing/config"
	deliverycontext "addressing/internal/delivery/context"
	"addressing/internal/delivery/worker/handler"
	mockUsecase "addressing/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:        cfg,
			Logger:        logger,
			AddressingSvc: mockUsecase.NewMockAddressingUsecase(t),
		}),
		PlateHandler: handler.NewPlateHandler(logger, mockUsecase.NewMockPlateUsecase(t)),
	})
}

func TestWorkerServer_Health(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestWorkerServer_AssignsRequestID(t *testing.T) {
	e := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestWorkerServer_PushRejectsGet(t *testing.T) {
	e := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
