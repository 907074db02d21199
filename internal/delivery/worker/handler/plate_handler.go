package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "addressing/internal/delivery/context"
	domainerrors "addressing/internal/domain/errors"
	"addressing/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PlateHandler serves house plate QR codes.
type PlateHandler struct {
	logger   *slog.Logger
	plateSvc usecase.PlateUsecase
}

// NewPlateHandler creates a new plate handler
func NewPlateHandler(logger *slog.Logger, plateSvc usecase.PlateUsecase) *PlateHandler {
	return &PlateHandler{
		logger:   logger,
		plateSvc: plateSvc,
	}
}

// GetPlate renders the plate of building :id as a PNG.
func (h *PlateHandler) GetPlate(c echo.Context) error {
	buildingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || buildingID <= 0 {
		return h.fail(c, domainerrors.ErrValidationFailed.WithDetails("building id must be a positive integer"))
	}

	ctx := c.Request().Context()
	png, err := h.plateSvc.RenderPlate(ctx, buildingID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *PlateHandler) fail(c echo.Context, err error) error {
	ctx := c.Request().Context()
	status := domainerrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).ErrorContext(ctx, "Failed to render plate", slog.Any("error", err))
	}

	return c.JSON(status, &domainerrors.ErrorResponse{
		Error: domainerrors.ToErrorInfo(err),
		Meta:  &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}
