package qrcode

import (
	"encoding/json"

	"addressing/config"
	"addressing/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	plateType   = "house_plate"
	defaultSize = 256
)

type plateService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// plateData is the JSON payload encoded into a plate QR code
type plateData struct {
	Type string `json:"type"`
	service.Plate
}

// NewPlateService creates a plate renderer from the plate settings
func NewPlateService(cfg *config.Config) service.PlateRenderer {
	size, level := defaultSize, "M"
	if cfg.Plate != nil {
		if cfg.Plate.Size > 0 {
			size = cfg.Plate.Size
		}
		level = cfg.Plate.ErrorCorrectionLevel
	}

	return NewPlateRenderer(size, level)
}

// NewPlateRenderer creates a plate renderer with an explicit size and level
func NewPlateRenderer(size int, errorCorrectionLevel string) service.PlateRenderer {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &plateService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// RenderPlateQR encodes the plate as a PNG QR code
func (s *plateService) RenderPlateQR(plate *service.Plate) ([]byte, error) {
	if plate == nil || plate.HouseNo == "" {
		return nil, errors.New("plate has no house number")
	}

	jsonData, err := json.Marshal(plateData{Type: plateType, Plate: *plate})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal plate data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePlateQR decodes a scanned plate payload
func (s *plateService) ParsePlateQR(qrData string) (*service.Plate, error) {
	var data plateData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal plate data")
	}

	if data.Type != plateType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.HouseNo == "" {
		return nil, errors.New("plate has no house number")
	}

	return &data.Plate, nil
}
