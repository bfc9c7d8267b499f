package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func loadEmailConfig() EmailConfig {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendDonationReceiptEmail mails a receipt for a completed donation payment.
// Callers treat failures as best-effort; the payment itself is already settled.
func SendDonationReceiptEmail(to, donorName, transactionID string, amount float64) error {
	config := loadEmailConfig()
	if config.Host == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "দানের রসিদ - Donation Receipt")

	body := fmt.Sprintf(`
		<h2>জাযাকাল্লাহু খাইরান, %s!</h2>
		<p>আপনার দান সফলভাবে গ্রহণ করা হয়েছে।</p>
		<p>Transaction ID: <strong>%s</strong></p>
		<p>Amount: <strong>%s</strong></p>
		<p>আল্লাহ আপনার দান কবুল করুন।</p>
	`, donorName, transactionID, FormatTaka(amount))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
