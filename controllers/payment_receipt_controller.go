package controllers

import (
	"fmt"

	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadPaymentReceipt renders a PDF receipt for a completed transaction
//
// GET /v1/payments/:transaction_id/receipt
func DownloadPaymentReceipt(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	utils.LogInfo("DownloadPaymentReceipt called for %s", transactionID)

	var txn models.PaymentTransaction
	if err := config.DB.Where("transaction_id = ?", transactionID).First(&txn).Error; err != nil {
		utils.LogError("Transaction not found: %s: %v", transactionID, err)
		utils.NotFound(c, "Transaction not found")
		return
	}

	if txn.Status != models.TxnStatusCompleted {
		utils.LogError("Receipt requested for non-completed transaction %s (%s)", transactionID, txn.Status)
		utils.BadRequest(c, "Receipt is only available for completed payments", gin.H{"status": txn.Status})
		return
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "Payment Receipt")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, "Darul Hidayah Madrasa")
	pdf.Ln(6)
	pdf.Cell(0, 7, "Dhaka, Bangladesh")
	pdf.Ln(12)

	rows := [][]string{
		{"Transaction ID", txn.TransactionID},
		{"Date", paymentDateString(&txn)},
		{"Paid By", txn.PayerName},
		{"Phone", maskPhone(txn.PayerPhone)},
		{"Payment For", txn.PaymentType},
		{"Gateway", txn.Gateway},
		{"Gateway Txn ID", txn.GatewayTransactionID},
		{"Amount (BDT)", fmt.Sprintf("%.2f", txn.Amount)},
	}
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(85, 8, row[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, "This is a system generated receipt.")

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", txn.TransactionID))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write receipt PDF for %s: %v", transactionID, err)
		utils.InternalServerError(c, "Failed to generate receipt", err.Error())
		return
	}
	utils.LogInfo("Receipt generated for %s", transactionID)
}

func paymentDateString(txn *models.PaymentTransaction) string {
	if txn.PaymentDate == nil {
		return ""
	}
	return txn.PaymentDate.Format("2006-01-02 15:04")
}
