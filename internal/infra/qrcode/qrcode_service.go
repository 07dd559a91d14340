package qrcode

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"geoalert/config"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 256
	eventPathTag = "events"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service from the qrcode and notification sections
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	baseURL := ""
	if cfg.Notification != nil {
		baseURL = cfg.Notification.EventURLBase
	}

	return newQRCodeService(baseURL, size, level)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EventURL is the public link encoded in the QR code and in notification mails
func EventURL(baseURL string, eventID int64) string {
	return strings.TrimRight(baseURL, "/") + "/" + eventPathTag + "/" + strconv.FormatInt(eventID, 10)
}

// GenerateEventQR renders the event link as a PNG
func (s *qrcodeService) GenerateEventQR(eventID int64) ([]byte, error) {
	qrCode, err := qrcode.New(EventURL(s.baseURL, eventID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseEventQR extracts the event ID from a link produced by GenerateEventQR
func (s *qrcodeService) ParseEventQR(qrData string) (int64, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code data")
	}

	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if path.Base(dir) != eventPathTag {
		return 0, errors.Errorf("not an event link: %s", qrData)
	}

	eventID, err := strconv.ParseInt(last, 10, 64)
	if err != nil || eventID <= 0 {
		return 0, errors.Errorf("invalid event ID in QR code: %s", last)
	}

	return eventID, nil
}
