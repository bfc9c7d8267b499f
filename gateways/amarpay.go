package gateways

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
)

const (
	amarpaySandboxURL = "https://sandbox.aamarpay.com"
	amarpayLiveURL    = "https://secure.aamarpay.com"
)

func init() {
	Register(&AmarPayGateway{})
}

// AmarPayGateway posts the order to AmarPay's JSON endpoint and redirects the
// payer to the returned payment_url. The callback carries
// mer_txnid/pg_txnid/pay_status.
type AmarPayGateway struct{}

func (g *AmarPayGateway) Name() string {
	return models.GatewayAmarPay
}

type amarpaySessionResponse struct {
	Result     string `json:"result"`
	PaymentURL string `json:"payment_url"`
	Reason     string `json:"reason"`
}

func (g *AmarPayGateway) Initiate(cfg *models.PaymentGateway, req InitiateRequest) (*InitiateResult, error) {
	opts := ParseOptions(cfg)
	base := opts.APIBaseURL
	if base == "" {
		base = amarpayLiveURL
		if cfg.Sandbox {
			base = amarpaySandboxURL
		}
	}

	signature, err := utils.DecryptSecret(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("amarpay credentials unavailable: %v", err)
	}

	payload := map[string]interface{}{
		"store_id":      cfg.MerchantID,
		"signature_key": signature,
		"tran_id":       req.TransactionID,
		"amount":        fmt.Sprintf("%.2f", req.Amount),
		"currency":      "BDT",
		"desc":          "Madrasa Payment",
		"cus_name":      req.PayerName,
		"cus_email":     req.PayerEmail,
		"cus_phone":     req.PayerPhone,
		"success_url":   req.CallbackURL,
		"fail_url":      req.CallbackURL,
		"cancel_url":    req.CallbackURL,
		"type":          "json",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("amarpay payload marshal failed: %v", err)
	}

	resp, err := httpClient.Post(base+"/jsonpost.php", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("amarpay request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("amarpay response unreadable: %v", err)
	}

	var session amarpaySessionResponse
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("amarpay response malformed: %v", err)
	}

	if session.Result != "true" || session.PaymentURL == "" {
		reason := session.Reason
		if reason == "" {
			reason = fmt.Sprintf("provider returned result %q (http %d)", session.Result, resp.StatusCode)
		}
		return nil, fmt.Errorf("amarpay session rejected: %s", reason)
	}

	return &InitiateResult{PaymentURL: session.PaymentURL}, nil
}

// NormalizeAmarPayStatus maps the callback pay_status to the canonical
// transaction status
func NormalizeAmarPayStatus(payStatus string) string {
	switch strings.ToLower(payStatus) {
	case "successful", "success":
		return models.TxnStatusCompleted
	case "cancel", "cancelled":
		return models.TxnStatusCancelled
	default:
		return models.TxnStatusFailed
	}
}
