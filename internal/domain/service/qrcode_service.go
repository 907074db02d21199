package service

// Plate is the content printed on a house number plate.
type Plate struct {
	HouseNo       string `json:"house_no"`
	MetricAddress string `json:"metric_address"`
	Direction     string `json:"direction"`
}

// PlateRenderer defines the interface for house plate QR code generation and parsing
type PlateRenderer interface {
	// RenderPlateQR encodes the plate into a PNG QR code
	RenderPlateQR(plate *Plate) ([]byte, error)

	// ParsePlateQR decodes the QR payload back into a plate
	ParsePlateQR(qrData string) (*Plate, error)
}
