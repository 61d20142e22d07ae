// Package qrcode renders transaction receipts as QR codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"bookkeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	receiptType     = "receipt"
	defaultSize     = 256
	maxDescription  = 80
	descriptionTail = "..."
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance.
// errorCorrectionLevel accepts L, M, Q, H or the words low, medium, high, highest.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReceiptQR encodes the receipt as JSON and renders it as a PNG.
func (s *qrcodeService) GenerateReceiptQR(receipt *service.ReceiptData) ([]byte, error) {
	if receipt == nil || receipt.TransactionID == uuid.Nil {
		return nil, errors.New("receipt requires a transaction id")
	}

	payload := *receipt
	payload.Type = receiptType
	payload.Description = truncate(payload.Description, maxDescription)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal receipt data")
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

// ParseReceiptQR decodes QR code contents produced by GenerateReceiptQR.
func (s *qrcodeService) ParseReceiptQR(qrData string) (*service.ReceiptData, error) {
	var data service.ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal receipt data")
	}

	if data.Type != receiptType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.TransactionID == uuid.Nil {
		return nil, errors.New("receipt is missing the transaction id")
	}

	return &data, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-len(descriptionTail)]) + descriptionTail
}
