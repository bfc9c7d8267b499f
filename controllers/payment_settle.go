package controllers

import (
	"time"

	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"gorm.io/gorm"
)

// settlePaymentTransaction moves a pending transaction to a terminal status
// and, when the payment completed, applies it to the donation or fee it
// references. The status update is guarded on the current status, so a
// repeated callback for an already-settled transaction changes nothing and
// the cascade runs at most once. Returns the transaction as it stands after
// the call and whether this call performed the transition.
func settlePaymentTransaction(transactionID, status, gatewayTxnID, verifiedBy, notes string) (*models.PaymentTransaction, bool, *utils.AppError) {
	db := config.DB

	var txn models.PaymentTransaction
	if err := db.Where("transaction_id = ?", transactionID).First(&txn).Error; err != nil {
		utils.LogError("Transaction not found: %s: %v", transactionID, err)
		return nil, false, utils.NotFoundError("Transaction not found")
	}

	if txn.IsTerminal() {
		utils.LogInfo("Transaction %s already settled as %s, ignoring %s", transactionID, txn.Status, status)
		return &txn, false, nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for %s: %v", transactionID, tx.Error)
		return nil, false, utils.InternalError("Failed to start transaction", tx.Error)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       status,
		"payment_date": &now,
	}
	if gatewayTxnID != "" {
		updates["gateway_transaction_id"] = gatewayTxnID
	}
	if verifiedBy != "" {
		updates["verified_by"] = verifiedBy
	}
	if notes != "" {
		updates["notes"] = notes
	}

	result := tx.Model(&models.PaymentTransaction{}).
		Where("transaction_id = ? AND status = ?", transactionID, models.TxnStatusPending).
		Updates(updates)
	if result.Error != nil {
		tx.Rollback()
		utils.LogError("Failed to update transaction %s: %v", transactionID, result.Error)
		return nil, false, utils.InternalError("Failed to update transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		// Lost the race with another callback; the other writer's cascade
		// stands.
		tx.Rollback()
		if err := db.Where("transaction_id = ?", transactionID).First(&txn).Error; err != nil {
			return nil, false, utils.InternalError("Failed to reload transaction", err)
		}
		utils.LogInfo("Transaction %s settled concurrently as %s", transactionID, txn.Status)
		return &txn, false, nil
	}

	if status == models.TxnStatusCompleted {
		if appErr := applyCompletedPayment(tx, &txn); appErr != nil {
			tx.Rollback()
			return nil, false, appErr
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit settlement for %s: %v", transactionID, err)
		return nil, false, utils.InternalError("Failed to commit settlement", err)
	}
	utils.LogInfo("Transaction %s settled as %s", transactionID, status)

	if err := db.Where("transaction_id = ?", transactionID).First(&txn).Error; err != nil {
		return nil, false, utils.InternalError("Failed to reload transaction", err)
	}

	if status == models.TxnStatusCompleted && txn.PaymentType == models.PaymentTypeDonation && txn.PayerEmail != "" {
		go func(email, name, id string, amount float64) {
			if err := utils.SendDonationReceiptEmail(email, name, id, amount); err != nil {
				utils.LogError("Failed to send receipt email for %s: %v", id, err)
			}
		}(txn.PayerEmail, txn.PayerName, txn.TransactionID, txn.Amount)
	}

	return &txn, true, nil
}

// applyCompletedPayment cascades a completed payment into the referenced
// donation or fee row, inside the caller's transaction
func applyCompletedPayment(tx *gorm.DB, txn *models.PaymentTransaction) *utils.AppError {
	switch txn.PaymentType {
	case models.PaymentTypeDonation:
		result := tx.Model(&models.Donation{}).
			Where("id = ?", txn.ReferenceID).
			Update("payment_status", models.TxnStatusCompleted)
		if result.Error != nil {
			utils.LogError("Failed to update donation %d: %v", txn.ReferenceID, result.Error)
			return utils.InternalError("Failed to update donation", result.Error)
		}
		utils.LogInfo("Donation %d marked completed by transaction %s", txn.ReferenceID, txn.TransactionID)

	case models.PaymentTypeFee:
		// The accumulate runs as one SQL expression, so two different
		// transactions settling against the same fee row cannot lose an
		// increment to a read-modify-write race.
		result := tx.Model(&models.StudentFee{}).
			Where("id = ?", txn.ReferenceID).
			Updates(map[string]interface{}{
				"paid_amount": gorm.Expr("paid_amount + ?", txn.Amount),
				"due_amount":  gorm.Expr("amount - paid_amount - ?", txn.Amount),
			})
		if result.Error != nil {
			utils.LogError("Failed to update fee %d: %v", txn.ReferenceID, result.Error)
			return utils.InternalError("Failed to update fee", result.Error)
		}
		if result.RowsAffected == 0 {
			utils.LogError("Fee record %d not found for transaction %s", txn.ReferenceID, txn.TransactionID)
			return utils.NotFoundError("Fee record not found")
		}
		if err := tx.Model(&models.StudentFee{}).
			Where("id = ?", txn.ReferenceID).
			Update("status", gorm.Expr("CASE WHEN due_amount <= 0 THEN ? ELSE ? END",
				models.FeeStatusPaid, models.FeeStatusPartial)).Error; err != nil {
			utils.LogError("Failed to update fee status %d: %v", txn.ReferenceID, err)
			return utils.InternalError("Failed to update fee", err)
		}
		utils.LogInfo("Fee %d credited %.2f by transaction %s", txn.ReferenceID, txn.Amount, txn.TransactionID)

	default:
		utils.LogError("Transaction %s has unknown payment type %s", txn.TransactionID, txn.PaymentType)
		return utils.InternalError("Unknown payment type", nil)
	}
	return nil
}
