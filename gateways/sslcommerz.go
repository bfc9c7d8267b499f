package gateways

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
)

const (
	sslcommerzSandboxURL = "https://sandbox.sslcommerz.com"
	sslcommerzLiveURL    = "https://securepay.sslcommerz.com"
)

func init() {
	Register(&SSLCommerzGateway{})
}

// SSLCommerzGateway opens a hosted checkout session; the payer is redirected
// to the returned GatewayPageURL and comes back through the callback
// endpoint with tran_id/val_id/status.
type SSLCommerzGateway struct{}

func (g *SSLCommerzGateway) Name() string {
	return models.GatewaySSLCommerz
}

type sslcommerzSessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

func (g *SSLCommerzGateway) Initiate(cfg *models.PaymentGateway, req InitiateRequest) (*InitiateResult, error) {
	opts := ParseOptions(cfg)
	base := opts.APIBaseURL
	if base == "" {
		base = sslcommerzLiveURL
		if cfg.Sandbox {
			base = sslcommerzSandboxURL
		}
	}

	storePasswd, err := utils.DecryptSecret(cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("sslcommerz credentials unavailable: %v", err)
	}

	form := url.Values{}
	form.Set("store_id", cfg.MerchantID)
	form.Set("store_passwd", storePasswd)
	form.Set("total_amount", fmt.Sprintf("%.2f", req.Amount))
	form.Set("currency", "BDT")
	form.Set("tran_id", req.TransactionID)
	form.Set("success_url", req.CallbackURL)
	form.Set("fail_url", req.CallbackURL)
	form.Set("cancel_url", req.CallbackURL)
	form.Set("cus_name", req.PayerName)
	form.Set("cus_email", req.PayerEmail)
	form.Set("cus_phone", req.PayerPhone)
	form.Set("cus_add1", "Bangladesh")
	form.Set("cus_city", "Dhaka")
	form.Set("cus_country", "Bangladesh")
	form.Set("shipping_method", "NO")
	form.Set("product_name", "Madrasa Payment")
	form.Set("product_category", "Donation")
	form.Set("product_profile", "non-physical-goods")

	resp, err := httpClient.Post(base+"/gwprocess/v4/api.php",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("sslcommerz request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sslcommerz response unreadable: %v", err)
	}

	var session sslcommerzSessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("sslcommerz response malformed: %v", err)
	}

	if session.Status != "SUCCESS" || session.GatewayPageURL == "" {
		reason := session.FailedReason
		if reason == "" {
			reason = fmt.Sprintf("provider returned status %q (http %d)", session.Status, resp.StatusCode)
		}
		return nil, fmt.Errorf("sslcommerz session rejected: %s", reason)
	}

	return &InitiateResult{
		PaymentURL:       session.GatewayPageURL,
		GatewayPaymentID: session.SessionKey,
	}, nil
}

// NormalizeSSLCommerzStatus maps the redirect status field to the canonical
// transaction status
func NormalizeSSLCommerzStatus(status string) string {
	switch strings.ToUpper(status) {
	case "VALID", "VALIDATED", "SUCCESS":
		return models.TxnStatusCompleted
	case "CANCELLED":
		return models.TxnStatusCancelled
	default:
		return models.TxnStatusFailed
	}
}
