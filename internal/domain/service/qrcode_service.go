package service

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptData is the payload encoded in a transaction receipt QR code.
type ReceiptData struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Business      string    `json:"business"`
	Kind          string    `json:"kind"`
	Amount        string    `json:"amount"`
	Description   string    `json:"description"`
	OccurredAt    time.Time `json:"occurred_at"`
	Type          string    `json:"type"`
}

// QRCodeService defines the interface for receipt QR code generation and parsing
type QRCodeService interface {
	// GenerateReceiptQR renders the receipt as a PNG QR code
	GenerateReceiptQR(receipt *ReceiptData) ([]byte, error)

	// ParseReceiptQR parses QR code data back into a receipt
	ParseReceiptQR(qrData string) (*ReceiptData, error)
}
