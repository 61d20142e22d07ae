package qrcode

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"bookkeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReceipt() *service.ReceiptData {
	return &service.ReceiptData{
		TransactionID: uuid.New(),
		Business:      "Warung Sari",
		Kind:          "income",
		Amount:        "150000.00",
		Description:   "Catering order",
		OccurredAt:    time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewQRCodeService(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "medium", "invalid", ""} {
		t.Run(level, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, level))
		})
	}
}

func TestQRCodeService_GenerateReceiptQR(t *testing.T) {
	for _, size := range []int{0, 128, 256, 512} {
		svc := NewQRCodeService(size, "M")

		qrBytes, err := svc.GenerateReceiptQR(newReceipt())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_GenerateReceiptQR_RequiresTransactionID(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateReceiptQR(&service.ReceiptData{})
	assert.Error(t, err)

	_, err = svc.GenerateReceiptQR(nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParseReceiptQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	receipt := newReceipt()
	receipt.Type = "receipt"

	raw, err := json.Marshal(receipt)
	require.NoError(t, err)

	parsed, err := svc.ParseReceiptQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, receipt.TransactionID, parsed.TransactionID)
	assert.Equal(t, "150000.00", parsed.Amount)
	assert.True(t, receipt.OccurredAt.Equal(parsed.OccurredAt))
}

func TestQRCodeService_ParseReceiptQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := map[string]string{
		"not json":       "not-json",
		"wrong type":     `{"transaction_id":"` + uuid.NewString() + `","type":"subscription"}`,
		"missing tx id":  `{"type":"receipt"}`,
		"malformed uuid": `{"transaction_id":"nope","type":"receipt"}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			parsed, err := svc.ParseReceiptQR(data)
			assert.Error(t, err)
			assert.Nil(t, parsed)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))

	long := strings.Repeat("é", 100)
	got := truncate(long, maxDescription)
	assert.Len(t, []rune(got), maxDescription)
	assert.True(t, strings.HasSuffix(got, descriptionTail))
}
