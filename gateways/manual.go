package gateways

import (
	"strings"

	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
)

func init() {
	Register(&ManualGateway{name: models.GatewayManual, walletName: "মোবাইল ব্যাংকিং"})
	Register(&ManualGateway{name: models.GatewayNagad, walletName: "নগদ"})
	Register(&ManualGateway{name: models.GatewayRocket, walletName: "রকেট"})
	Register(&ManualGateway{name: models.GatewayUpay, walletName: "উপায়"})
}

// ManualGateway covers the mobile wallets without an API integration. The
// payer is shown send-money instructions and a staff member later confirms
// the payment out-of-band through the verify endpoint.
type ManualGateway struct {
	name       string
	walletName string
}

func (g *ManualGateway) Name() string {
	return g.name
}

func (g *ManualGateway) Initiate(cfg *models.PaymentGateway, req InitiateRequest) (*InitiateResult, error) {
	opts := ParseOptions(cfg)
	return &InitiateResult{
		Instructions: RenderInstructions(opts.Instructions, g.walletName, cfg.MerchantID, req),
	}, nil
}

const defaultInstructionTemplate = "{wallet} অ্যাপ থেকে {merchant} নম্বরে {amount} সেন্ড মানি করুন। " +
	"রেফারেন্সে {txn} লিখুন। টাকা পাঠানোর পর আমাদের অফিসে যোগাযোগ করলে পেমেন্ট নিশ্চিত করা হবে।"

// RenderInstructions fills an admin-supplied instruction template, falling
// back to the built-in default. Placeholders: {wallet}, {merchant}, {amount},
// {txn}.
func RenderInstructions(template, walletName, merchantNumber string, req InitiateRequest) string {
	if strings.TrimSpace(template) == "" {
		template = defaultInstructionTemplate
	}
	r := strings.NewReplacer(
		"{wallet}", walletName,
		"{merchant}", merchantNumber,
		"{amount}", utils.FormatTaka(req.Amount),
		"{txn}", req.TransactionID,
	)
	return r.Replace(template)
}
