package gateways

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
)

const (
	bkashSandboxURL = "https://tokenized.sandbox.bka.sh/v1.2.0-beta"
	bkashLiveURL    = "https://tokenized.pay.bka.sh/v1.2.0-beta"

	bkashStatusOK = "0000"
)

func init() {
	Register(&BkashGateway{})
}

// BkashGateway speaks the tokenized checkout API: grant a short-lived token,
// create a payment session, and later execute it from the callback. In
// manual mode, or when the API declines, the payer gets send-money
// instructions instead and a staff member verifies the payment by hand.
type BkashGateway struct{}

func (g *BkashGateway) Name() string {
	return models.GatewayBkash
}

type bkashTokenResponse struct {
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	IDToken       string `json:"id_token"`
}

type bkashCreateResponse struct {
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	PaymentID     string `json:"paymentID"`
	BkashURL      string `json:"bkashURL"`
}

// BkashExecuteResponse is the outcome of the execute step
type BkashExecuteResponse struct {
	StatusCode        string `json:"statusCode"`
	StatusMessage     string `json:"statusMessage"`
	PaymentID         string `json:"paymentID"`
	TrxID             string `json:"trxID"`
	TransactionStatus string `json:"transactionStatus"`
}

// Completed reports whether the execute step confirmed the payment
func (r *BkashExecuteResponse) Completed() bool {
	return r.StatusCode == bkashStatusOK && r.TransactionStatus == "Completed"
}

func (g *BkashGateway) baseURL(cfg *models.PaymentGateway, opts Options) string {
	if opts.APIBaseURL != "" {
		return opts.APIBaseURL
	}
	if cfg.Sandbox {
		return bkashSandboxURL
	}
	return bkashLiveURL
}

func (g *BkashGateway) Initiate(cfg *models.PaymentGateway, req InitiateRequest) (*InitiateResult, error) {
	opts := ParseOptions(cfg)
	if opts.PaymentMode != "api" {
		return (&ManualGateway{name: g.Name(), walletName: "বিকাশ"}).Initiate(cfg, req)
	}

	result, apiErr := g.initiateAPI(cfg, opts, req)
	if apiErr != "" {
		// The API declining is not fatal: degrade to manual send-money
		// instructions and record what the provider said.
		utils.LogError("bKash API initiation degraded to manual for %s: %s", req.TransactionID, apiErr)
		manual, err := (&ManualGateway{name: g.Name(), walletName: "বিকাশ"}).Initiate(cfg, req)
		if err != nil {
			return nil, err
		}
		manual.APIError = apiErr
		return manual, nil
	}
	return result, nil
}

// initiateAPI runs the grant-token and create-payment steps. A transport or
// credential failure, or a non-0000 provider status, comes back as a
// non-empty apiError string rather than a hard error.
func (g *BkashGateway) initiateAPI(cfg *models.PaymentGateway, opts Options, req InitiateRequest) (*InitiateResult, string) {
	base := g.baseURL(cfg, opts)

	appKey, err := utils.DecryptSecret(cfg.APIKey)
	if err != nil {
		return nil, fmt.Sprintf("credentials unavailable: %v", err)
	}
	appSecret, err := utils.DecryptSecret(cfg.APISecret)
	if err != nil {
		return nil, fmt.Sprintf("credentials unavailable: %v", err)
	}

	var token bkashTokenResponse
	grantBody, _ := json.Marshal(map[string]string{
		"app_key":    appKey,
		"app_secret": appSecret,
	})
	grantReq, err := http.NewRequest(http.MethodPost, base+"/tokenized/checkout/token/grant", bytes.NewReader(grantBody))
	if err != nil {
		return nil, fmt.Sprintf("grant token request build failed: %v", err)
	}
	grantReq.Header.Set("Content-Type", "application/json")
	grantReq.Header.Set("username", opts.Username)
	grantReq.Header.Set("password", opts.Password)
	if err := doJSON(grantReq, &token); err != nil {
		return nil, fmt.Sprintf("grant token call failed: %v", err)
	}
	if token.StatusCode != bkashStatusOK || token.IDToken == "" {
		return nil, fmt.Sprintf("grant token rejected: %s (%s)", token.StatusMessage, token.StatusCode)
	}

	var created bkashCreateResponse
	createBody, _ := json.Marshal(map[string]string{
		"mode":                  "0011",
		"payerReference":        req.PayerPhone,
		"callbackURL":           req.CallbackURL,
		"amount":                fmt.Sprintf("%.2f", req.Amount),
		"currency":              "BDT",
		"intent":                "sale",
		"merchantInvoiceNumber": req.TransactionID,
	})
	createReq, err := http.NewRequest(http.MethodPost, base+"/tokenized/checkout/create", bytes.NewReader(createBody))
	if err != nil {
		return nil, fmt.Sprintf("create payment request build failed: %v", err)
	}
	createReq.Header.Set("Content-Type", "application/json")
	createReq.Header.Set("Authorization", token.IDToken)
	createReq.Header.Set("X-APP-Key", appKey)
	if err := doJSON(createReq, &created); err != nil {
		return nil, fmt.Sprintf("create payment call failed: %v", err)
	}
	if created.StatusCode != bkashStatusOK || created.BkashURL == "" {
		return nil, fmt.Sprintf("create payment rejected: %s (%s)", created.StatusMessage, created.StatusCode)
	}

	return &InitiateResult{
		PaymentURL:       created.BkashURL,
		GatewayPaymentID: created.PaymentID,
	}, ""
}

// ExecutePayment finishes an embedded-checkout payment. The idToken is the
// one the checkout widget carried back to the client.
func (g *BkashGateway) ExecutePayment(cfg *models.PaymentGateway, paymentID, idToken string) (*BkashExecuteResponse, error) {
	opts := ParseOptions(cfg)
	appKey, err := utils.DecryptSecret(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("bkash credentials unavailable: %v", err)
	}

	body, _ := json.Marshal(map[string]string{"paymentID": paymentID})
	req, err := http.NewRequest(http.MethodPost, g.baseURL(cfg, opts)+"/tokenized/checkout/execute", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", idToken)
	req.Header.Set("X-APP-Key", appKey)

	var executed BkashExecuteResponse
	if err := doJSON(req, &executed); err != nil {
		return nil, fmt.Errorf("bkash execute call failed: %v", err)
	}
	return &executed, nil
}

// NormalizeBkashRedirectStatus maps the redirect status query param to the
// canonical transaction status
func NormalizeBkashRedirectStatus(status string) string {
	switch strings.ToLower(status) {
	case "success":
		return models.TxnStatusCompleted
	case "cancel", "cancelled":
		return models.TxnStatusCancelled
	default:
		return models.TxnStatusFailed
	}
}

func doJSON(req *http.Request, out interface{}) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("malformed response (http %d): %v", resp.StatusCode, err)
	}
	return nil
}
