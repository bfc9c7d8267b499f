package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
)

// ExportTransactionsExcel downloads the payment ledger as an Excel workbook
// for reconciliation against wallet and bank statements
//
// GET /v1/admin/transactions/export
func ExportTransactionsExcel(c *gin.Context) {
	utils.LogInfo("ExportTransactionsExcel called")

	period := c.DefaultQuery("period", "month")
	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	// Explicit bounds override the period presets.
	if from := c.Query("from"); from != "" {
		ts, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.LogError("Invalid from date: %s", from)
			utils.BadRequest(c, "Invalid from date", "Use YYYY-MM-DD")
			return
		}
		startDate = ts
	}
	if to := c.Query("to"); to != "" {
		ts, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.LogError("Invalid to date: %s", to)
			utils.BadRequest(c, "Invalid to date", "Use YYYY-MM-DD")
			return
		}
		endDate = ts.AddDate(0, 0, 1)
	}

	query := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var transactions []models.PaymentTransaction
	if err := query.Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d transactions for Excel export", len(transactions))

	var summary struct {
		Total          int
		Completed      int
		CompletedTotal float64
		Pending        int
		FailedOrCancel int
	}
	for _, txn := range transactions {
		summary.Total++
		switch txn.Status {
		case models.TxnStatusCompleted:
			summary.Completed++
			summary.CompletedTotal += txn.Amount
		case models.TxnStatusPending:
			summary.Pending++
		default:
			summary.FailedOrCancel++
		}
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("DARUL HIDAYAH MADRASA - Payment Ledger")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Transaction ID", "Date", "Payer", "Phone", "Type", "Gateway", "Gateway Txn ID", "Amount", "Status", "Verified By"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, txn := range transactions {
		row := sheet.AddRow()
		row.AddCell().SetString(txn.TransactionID)
		row.AddCell().SetString(txn.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(txn.PayerName)
		row.AddCell().SetString(txn.PayerPhone)
		row.AddCell().SetString(txn.PaymentType)
		row.AddCell().SetString(txn.Gateway)
		row.AddCell().SetString(txn.GatewayTransactionID)
		row.AddCell().SetFloat(txn.Amount)
		row.AddCell().SetString(txn.Status)
		row.AddCell().SetString(txn.VerifiedBy)
	}

	sheet.AddRow() // spacing

	summaryData := [][]string{
		{"Total Transactions", fmt.Sprintf("%d", summary.Total)},
		{"Completed", fmt.Sprintf("%d", summary.Completed)},
		{"Completed Amount", fmt.Sprintf("%.2f", summary.CompletedTotal)},
		{"Pending", fmt.Sprintf("%d", summary.Pending)},
		{"Failed/Cancelled", fmt.Sprintf("%d", summary.FailedOrCancel)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Exported %d transactions for period %s", len(transactions), period)
}
