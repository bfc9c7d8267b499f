package gateways

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/stretchr/testify/assert"
)

func testGatewayConfig(name, baseURL, mode string) *models.PaymentGateway {
	return &models.PaymentGateway{
		Name:       name,
		Enabled:    true,
		Sandbox:    true,
		MerchantID: "test-store",
		APIKey:     "test-key",
		APISecret:  "test-secret",
		AdditionalConfig: fmt.Sprintf(
			`{"payment_mode":%q,"api_base_url":%q,"username":"sandbox-user","password":"sandbox-pass"}`,
			mode, baseURL),
	}
}

func testInitiateRequest() InitiateRequest {
	return InitiateRequest{
		TransactionID: "TXN-1756300000000-Ab1Cd2Ef3",
		Amount:        1500,
		PayerName:     "Test Donor",
		PayerPhone:    "01712345678",
		PayerEmail:    "donor@example.com",
		ReturnURL:     "https://madrasa.example.com/donate",
		CallbackURL:   "https://api.madrasa.example.com/v1/payments/callback?gateway=test",
	}
}

func TestRegistryHasAllGateways(t *testing.T) {
	for _, name := range []string{"bkash", "nagad", "rocket", "upay", "sslcommerz", "amarpay", "manual"} {
		gw, ok := Get(name)
		assert.True(t, ok, "gateway %s not registered", name)
		assert.Equal(t, name, gw.Name())
	}

	_, ok := Get("paypal")
	assert.False(t, ok)
}

func TestSSLCommerzInitiateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gwprocess/v4/api.php", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "test-store", r.PostFormValue("store_id"))
		assert.Equal(t, "test-secret", r.PostFormValue("store_passwd"))
		assert.Equal(t, "1500.00", r.PostFormValue("total_amount"))
		assert.Equal(t, "TXN-1756300000000-Ab1Cd2Ef3", r.PostFormValue("tran_id"))

		json.NewEncoder(w).Encode(map[string]string{
			"status":         "SUCCESS",
			"sessionkey":     "sess-001",
			"GatewayPageURL": "https://sandbox.sslcommerz.com/gw/sess-001",
		})
	}))
	defer server.Close()

	gw := &SSLCommerzGateway{}
	result, err := gw.Initiate(testGatewayConfig("sslcommerz", server.URL, "redirect"), testInitiateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "https://sandbox.sslcommerz.com/gw/sess-001", result.PaymentURL)
	assert.Equal(t, "sess-001", result.GatewayPaymentID)
	assert.Empty(t, result.Instructions)
}

func TestSSLCommerzInitiateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":       "FAILED",
			"failedreason": "Store Credential Error Or Store is De-active",
		})
	}))
	defer server.Close()

	gw := &SSLCommerzGateway{}
	result, err := gw.Initiate(testGatewayConfig("sslcommerz", server.URL, "redirect"), testInitiateRequest())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "Store Credential Error")
}

func TestAmarPayInitiateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jsonpost.php", r.URL.Path)

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "test-store", payload["store_id"])
		assert.Equal(t, "TXN-1756300000000-Ab1Cd2Ef3", payload["tran_id"])

		json.NewEncoder(w).Encode(map[string]string{
			"result":      "true",
			"payment_url": "https://sandbox.aamarpay.com/pay/abc",
		})
	}))
	defer server.Close()

	gw := &AmarPayGateway{}
	result, err := gw.Initiate(testGatewayConfig("amarpay", server.URL, "redirect"), testInitiateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "https://sandbox.aamarpay.com/pay/abc", result.PaymentURL)
}

func TestAmarPayInitiateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"result": "false",
			"reason": "Invalid signature key",
		})
	}))
	defer server.Close()

	gw := &AmarPayGateway{}
	result, err := gw.Initiate(testGatewayConfig("amarpay", server.URL, "redirect"), testInitiateRequest())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "Invalid signature key")
}

func TestBkashAPIInitiateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tokenized/checkout/token/grant":
			assert.Equal(t, "sandbox-user", r.Header.Get("username"))
			assert.Equal(t, "sandbox-pass", r.Header.Get("password"))
			json.NewEncoder(w).Encode(map[string]string{
				"statusCode": "0000",
				"id_token":   "token-abc",
			})
		case "/tokenized/checkout/create":
			assert.Equal(t, "token-abc", r.Header.Get("Authorization"))
			assert.Equal(t, "test-key", r.Header.Get("X-APP-Key"))
			json.NewEncoder(w).Encode(map[string]string{
				"statusCode": "0000",
				"paymentID":  "TR0011abc",
				"bkashURL":   "https://sandbox.bkash.test/checkout/TR0011abc",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	gw := &BkashGateway{}
	result, err := gw.Initiate(testGatewayConfig("bkash", server.URL, "api"), testInitiateRequest())
	assert.NoError(t, err)
	assert.Equal(t, "https://sandbox.bkash.test/checkout/TR0011abc", result.PaymentURL)
	assert.Equal(t, "TR0011abc", result.GatewayPaymentID)
	assert.Empty(t, result.APIError)
}

func TestBkashAPIFallsBackToManualOnGrantFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"statusCode":    "9999",
			"statusMessage": "Invalid App Key",
		})
	}))
	defer server.Close()

	gw := &BkashGateway{}
	result, err := gw.Initiate(testGatewayConfig("bkash", server.URL, "api"), testInitiateRequest())
	assert.NoError(t, err)
	assert.Empty(t, result.PaymentURL, "a declined grant must never yield a payment URL")
	assert.NotEmpty(t, result.Instructions)
	assert.Contains(t, result.APIError, "Invalid App Key")
}

func TestBkashAPIFallsBackToManualOnCreateFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tokenized/checkout/token/grant":
			json.NewEncoder(w).Encode(map[string]string{"statusCode": "0000", "id_token": "token-abc"})
		case "/tokenized/checkout/create":
			json.NewEncoder(w).Encode(map[string]string{"statusCode": "2029", "statusMessage": "Duplicate invoice"})
		}
	}))
	defer server.Close()

	gw := &BkashGateway{}
	result, err := gw.Initiate(testGatewayConfig("bkash", server.URL, "api"), testInitiateRequest())
	assert.NoError(t, err)
	assert.Empty(t, result.PaymentURL)
	assert.Contains(t, result.APIError, "Duplicate invoice")
}

func TestBkashManualMode(t *testing.T) {
	cfg := testGatewayConfig("bkash", "", "manual")
	cfg.MerchantID = "01812345678"

	gw := &BkashGateway{}
	result, err := gw.Initiate(cfg, testInitiateRequest())
	assert.NoError(t, err)
	assert.Empty(t, result.PaymentURL)
	assert.Contains(t, result.Instructions, "01812345678")
	assert.Contains(t, result.Instructions, "TXN-1756300000000-Ab1Cd2Ef3")
	assert.Empty(t, result.APIError)
}

func TestBkashExecuteCompleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tokenized/checkout/execute", r.URL.Path)
		assert.Equal(t, "id-token-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{
			"statusCode":        "0000",
			"paymentID":         "TR0011abc",
			"trxID":             "8GA70XYZ11",
			"transactionStatus": "Completed",
		})
	}))
	defer server.Close()

	gw := &BkashGateway{}
	executed, err := gw.ExecutePayment(testGatewayConfig("bkash", server.URL, "api"), "TR0011abc", "id-token-1")
	assert.NoError(t, err)
	assert.True(t, executed.Completed())
	assert.Equal(t, "8GA70XYZ11", executed.TrxID)
}

func TestRenderInstructionsCustomTemplate(t *testing.T) {
	req := testInitiateRequest()
	out := RenderInstructions("Send {amount} to {merchant} via {wallet}, ref {txn}", "নগদ", "01912345678", req)
	assert.Equal(t, "Send 1500.00 টাকা to 01912345678 via নগদ, ref TXN-1756300000000-Ab1Cd2Ef3", out)
}

func TestRenderInstructionsDefaultTemplate(t *testing.T) {
	out := RenderInstructions("", "বিকাশ", "01812345678", testInitiateRequest())
	assert.Contains(t, out, "বিকাশ")
	assert.Contains(t, out, "01812345678")
	assert.Contains(t, out, "1500.00 টাকা")
}

func TestNormalizeSSLCommerzStatus(t *testing.T) {
	assert.Equal(t, models.TxnStatusCompleted, NormalizeSSLCommerzStatus("VALID"))
	assert.Equal(t, models.TxnStatusCompleted, NormalizeSSLCommerzStatus("VALIDATED"))
	assert.Equal(t, models.TxnStatusCancelled, NormalizeSSLCommerzStatus("CANCELLED"))
	assert.Equal(t, models.TxnStatusFailed, NormalizeSSLCommerzStatus("FAILED"))
	assert.Equal(t, models.TxnStatusFailed, NormalizeSSLCommerzStatus(""))
}

func TestNormalizeAmarPayStatus(t *testing.T) {
	assert.Equal(t, models.TxnStatusCompleted, NormalizeAmarPayStatus("Successful"))
	assert.Equal(t, models.TxnStatusCancelled, NormalizeAmarPayStatus("Cancel"))
	assert.Equal(t, models.TxnStatusFailed, NormalizeAmarPayStatus("Failed"))
}

func TestNormalizeBkashRedirectStatus(t *testing.T) {
	assert.Equal(t, models.TxnStatusCompleted, NormalizeBkashRedirectStatus("success"))
	assert.Equal(t, models.TxnStatusCancelled, NormalizeBkashRedirectStatus("cancel"))
	assert.Equal(t, models.TxnStatusFailed, NormalizeBkashRedirectStatus("failure"))
}
