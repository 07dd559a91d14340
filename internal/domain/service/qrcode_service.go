package service

// QRCodeService defines the interface for event QR code generation and parsing
type QRCodeService interface {
	// GenerateEventQR renders a PNG QR code pointing at the public event page
	GenerateEventQR(eventID int64) ([]byte, error)

	// ParseEventQR extracts the event ID from the encoded URL
	ParseEventQR(qrData string) (int64, error)
}
