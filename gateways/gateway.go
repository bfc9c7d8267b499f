// Package gateways integrates the third-party payment providers. Each
// provider implements the Gateway interface and registers itself, so adding
// a provider is a new file rather than another branch in the initiate
// handler.
package gateways

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
)

// InitiateRequest carries what a gateway needs to open a payment session.
// CallbackURL points back at this service's callback endpoint; ReturnURL is
// the page the payer finally lands on and is only stored, never handed to
// the provider.
type InitiateRequest struct {
	TransactionID string
	Amount        float64
	PayerName     string
	PayerPhone    string
	PayerEmail    string
	ReturnURL     string
	CallbackURL   string
}

// InitiateResult is what a gateway hands back: either a URL to redirect the
// payer to, or human-readable instructions for manual payment. APIError is
// set when an API-mode gateway degraded to manual instructions.
type InitiateResult struct {
	PaymentURL       string `json:"payment_url,omitempty"`
	GatewayPaymentID string `json:"gateway_payment_id,omitempty"`
	Instructions     string `json:"instructions,omitempty"`
	APIError         string `json:"api_error,omitempty"`
}

// Gateway opens a payment session with one provider
type Gateway interface {
	Name() string
	Initiate(cfg *models.PaymentGateway, req InitiateRequest) (*InitiateResult, error)
}

// Options is the decoded AdditionalConfig blob of a gateway row
type Options struct {
	PaymentMode  string `json:"payment_mode"` // api, manual, redirect
	Instructions string `json:"instructions"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	APIBaseURL   string `json:"api_base_url"` // overrides the sandbox/live default
}

// ParseOptions decodes a gateway's AdditionalConfig. Malformed or empty
// config yields zero options, which every gateway treats as its defaults.
func ParseOptions(cfg *models.PaymentGateway) Options {
	var opts Options
	if cfg.AdditionalConfig == "" {
		return opts
	}
	if err := json.Unmarshal([]byte(cfg.AdditionalConfig), &opts); err != nil {
		utils.LogError("Malformed additional_config for gateway %s: %v", cfg.Name, err)
	}
	return opts
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

var registry = map[string]Gateway{}

// Register adds a gateway to the registry. Called from init functions only,
// before any request runs.
func Register(g Gateway) {
	registry[g.Name()] = g
}

// Get looks up a registered gateway by name
func Get(name string) (Gateway, bool) {
	g, ok := registry[name]
	return g, ok
}
