package infra

// pdf.go — PDF receipt generation for wallet top-ups using go-pdf/fpdf.
// Generates A7-size receipt-style documents with:
//   - Shop name header
//   - Transaction id and timestamp
//   - Amount, payment method and reference
//   - Processed-by line
//
// The output file is saved to storagePath/topup_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shopops/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF writes a PDF receipt for a wallet top-up transaction.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateReceiptPDF(txn *model.WalletTransaction, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("topup_%s.pdf", txn.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper (custom size, "A7" is not in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	shopName := "Shop"
	if txn.Shop != nil {
		shopName = txn.Shop.Name
	}

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, shopName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Wallet Top-Up Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Transaction info ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW, 5, "Txn "+txn.ID.String()[:8], "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, txn.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.45
	col2 := contentW * 0.55

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1, 5, "Method:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, strings.ReplaceAll(txn.Method, "_", " "), "", 1, "R", false, 0, "")

	pdf.CellFormat(col1, 5, "Reference:", "", 0, "L", false, 0, "")
	ref := txn.Reference
	if len(ref) > 24 {
		ref = ref[:23] + "…"
	}
	pdf.CellFormat(col2, 5, ref, "", 1, "R", false, 0, "")

	if txn.ProcessedBy != nil {
		pdf.CellFormat(col1, 5, "Processed by:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, txn.ProcessedBy.Name, "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Amount ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "CREDITED:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "$"+txn.Amount.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Keep this receipt for your records.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
