package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shopops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTopUpTxn() *model.WalletTransaction {
	return &model.WalletTransaction{
		ID:        uuid.New(),
		Amount:    decimal.NewFromFloat(250.75),
		Type:      model.TxTypeCredit,
		Method:    model.MethodBankTransfer,
		Reference: "wire-0042",
		ShopID:    uuid.New(),
		CreatedAt: time.Now(),
		Shop:      &model.Shop{Name: "Main St"},
		ProcessedBy: &model.User{
			Name:  "Alice Admin",
			Email: "alice@shopops.dev",
		},
	}
}

func TestGenerateReceiptPDF_WritesFile(t *testing.T) {
	tmpDir := t.TempDir()
	txn := buildTopUpTxn()

	pdfPath, err := GenerateReceiptPDF(txn, tmpDir)

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("topup_%s.pdf", txn.ID), filepath.Base(pdfPath))

	info, statErr := os.Stat(pdfPath)
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(100), "PDF should have content > 100 bytes")
}

func TestGenerateReceiptPDF_LongReferenceTruncated(t *testing.T) {
	tmpDir := t.TempDir()
	txn := buildTopUpTxn()
	txn.Reference = "an-extremely-long-payment-reference-that-does-not-fit-on-a-receipt"

	pdfPath, err := GenerateReceiptPDF(txn, tmpDir)
	require.NoError(t, err)
	_, statErr := os.Stat(pdfPath)
	assert.NoError(t, statErr)
}

func TestGenerateReceiptPDF_NoPreloads(t *testing.T) {
	tmpDir := t.TempDir()
	txn := buildTopUpTxn()
	txn.Shop = nil
	txn.ProcessedBy = nil

	pdfPath, err := GenerateReceiptPDF(txn, tmpDir)
	require.NoError(t, err)
	assert.FileExists(t, pdfPath)
}

func TestGenerateReceiptPDF_CreatesStorageDir(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "receipts")
	txn := buildTopUpTxn()

	pdfPath, err := GenerateReceiptPDF(txn, tmpDir)
	require.NoError(t, err)
	assert.FileExists(t, pdfPath)
}
