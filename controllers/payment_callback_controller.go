package controllers

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/gateways"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
)

// PaymentCallback reconciles the gateway's asynchronous response into a
// terminal transaction state. Two shapes arrive here: a JSON POST from the
// client (bKash embedded-checkout execute, or a manual confirmation), and a
// GET/form redirect straight from the provider, which ends in a 302 back to
// the payer's original page with ?payment=<status>&txn=<id>.
//
// Handles GET and POST /v1/payments/callback
func PaymentCallback(c *gin.Context) {
	utils.LogInfo("PaymentCallback called: %s", c.Request.Method)

	if c.Request.Method == http.MethodPost &&
		strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		handleCallbackJSON(c)
		return
	}
	handleCallbackRedirect(c)
}

type callbackJSONRequest struct {
	Gateway       string `json:"gateway"`
	PaymentID     string `json:"payment_id"`
	IDToken       string `json:"id_token"`
	TransactionID string `json:"transaction_id"`
	Verified      *bool  `json:"verified"`
}

func handleCallbackJSON(c *gin.Context) {
	var req callbackJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid callback body: %v", err)
		utils.BadRequest(c, "Invalid callback body", err.Error())
		return
	}

	switch req.Gateway {
	case models.GatewayBkash:
		executeBkashPayment(c, req)
	case models.GatewayManual:
		if req.TransactionID == "" || req.Verified == nil {
			utils.BadRequest(c, "transaction_id and verified are required", nil)
			return
		}
		status := models.TxnStatusFailed
		note := "Rejected via manual callback"
		if *req.Verified {
			status = models.TxnStatusCompleted
			note = "Confirmed via manual callback"
		}
		txn, _, appErr := settlePaymentTransaction(req.TransactionID, status, "", "", note)
		if appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.Success(c, "Payment "+txn.Status, gin.H{
			"transaction_id": txn.TransactionID,
			"payment":        txn.Status,
		})
	default:
		utils.LogError("Callback for unsupported gateway: %s", req.Gateway)
		utils.BadRequest(c, utils.MsgInvalidGateway, nil)
	}
}

// executeBkashPayment runs the embedded-checkout execute step. The
// transaction is found by the exact paymentID stored at initiation, never by
// recency.
func executeBkashPayment(c *gin.Context, req callbackJSONRequest) {
	if req.PaymentID == "" || req.IDToken == "" {
		utils.BadRequest(c, "payment_id and id_token are required", nil)
		return
	}

	db := config.DB
	var txn models.PaymentTransaction
	if err := db.Where("gateway_payment_id = ? AND gateway = ?", req.PaymentID, models.GatewayBkash).
		First(&txn).Error; err != nil {
		utils.LogError("No transaction for bKash paymentID %s: %v", req.PaymentID, err)
		utils.NotFound(c, "Transaction not found")
		return
	}

	var gatewayCfg models.PaymentGateway
	if err := db.Where("name = ?", models.GatewayBkash).First(&gatewayCfg).Error; err != nil {
		utils.LogError("bKash gateway config missing: %v", err)
		utils.InternalServerError(c, "Gateway configuration unavailable", nil)
		return
	}

	bkash := &gateways.BkashGateway{}
	executed, err := bkash.ExecutePayment(&gatewayCfg, req.PaymentID, req.IDToken)
	if err != nil {
		utils.LogError("bKash execute failed for %s: %v", txn.TransactionID, err)
		utils.BadGateway(c, "Payment could not be confirmed", err.Error())
		return
	}

	status := models.TxnStatusFailed
	notes := executed.StatusMessage
	if executed.Completed() {
		status = models.TxnStatusCompleted
		notes = ""
	}
	settled, _, appErr := settlePaymentTransaction(txn.TransactionID, status, executed.TrxID, "", notes)
	if appErr != nil {
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	utils.LogInfo("bKash execute settled %s as %s", settled.TransactionID, settled.Status)
	utils.Success(c, "Payment "+settled.Status, gin.H{
		"transaction_id": settled.TransactionID,
		"payment":        settled.Status,
		"gateway_txn_id": settled.GatewayTransactionID,
	})
}

func handleCallbackRedirect(c *gin.Context) {
	fv := func(key string) string { return c.Request.FormValue(key) }

	gateway := fv("gateway")
	txnID := fv("txn")
	var gatewayTxnID, status string

	switch gateway {
	case models.GatewaySSLCommerz:
		if id := fv("tran_id"); id != "" {
			txnID = id
		}
		gatewayTxnID = fv("val_id")
		status = gateways.NormalizeSSLCommerzStatus(fv("status"))

	case models.GatewayAmarPay:
		if id := fv("mer_txnid"); id != "" {
			txnID = id
		}
		gatewayTxnID = fv("pg_txnid")
		status = gateways.NormalizeAmarPayStatus(fv("pay_status"))

	case models.GatewayBkash:
		status = gateways.NormalizeBkashRedirectStatus(fv("status"))
		if paymentID := fv("paymentID"); paymentID != "" {
			var txn models.PaymentTransaction
			if err := config.DB.Where("gateway_payment_id = ? AND gateway = ?", paymentID, models.GatewayBkash).
				First(&txn).Error; err == nil {
				txnID = txn.TransactionID
			} else {
				utils.LogError("No transaction for bKash redirect paymentID %s: %v", paymentID, err)
			}
		}
	default:
		utils.LogError("Redirect callback for unknown gateway: %q", gateway)
		redirectWithStatus(c, "", models.TxnStatusFailed, txnID)
		return
	}

	if txnID == "" {
		utils.LogError("Redirect callback without a transaction id (gateway %s)", gateway)
		redirectWithStatus(c, "", models.TxnStatusFailed, "")
		return
	}

	txn, _, appErr := settlePaymentTransaction(txnID, status, gatewayTxnID, "", "")
	if appErr != nil {
		// Settlement failures still bounce the payer back somewhere sensible.
		utils.LogError("Settlement failed for %s: %v", txnID, appErr)
		redirectWithStatus(c, lookupReturnURL(txnID), models.TxnStatusFailed, txnID)
		return
	}

	redirectWithStatus(c, txn.ReturnURL, txn.Status, txn.TransactionID)
}

// lookupReturnURL fetches the stored return URL, empty when unknown
func lookupReturnURL(transactionID string) string {
	if transactionID == "" {
		return ""
	}
	var txn models.PaymentTransaction
	if err := config.DB.Where("transaction_id = ?", transactionID).First(&txn).Error; err != nil {
		return ""
	}
	return txn.ReturnURL
}

// redirectWithStatus issues the final 302 carrying payment status and
// transaction id in the query string
func redirectWithStatus(c *gin.Context, returnURL, status, transactionID string) {
	if returnURL == "" {
		returnURL = os.Getenv("PUBLIC_SITE_URL")
		if returnURL == "" {
			returnURL = "/"
		}
	}

	target, err := url.Parse(returnURL)
	if err != nil {
		utils.LogError("Malformed return URL %q: %v", returnURL, err)
		target, _ = url.Parse("/")
	}
	q := target.Query()
	q.Set("payment", status)
	if transactionID != "" {
		q.Set("txn", transactionID)
	}
	target.RawQuery = q.Encode()

	c.Redirect(http.StatusFound, target.String())
}
