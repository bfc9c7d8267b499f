package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDonationAmountBounds(t *testing.T) {
	assert.False(t, ValidateDonationAmount(9))
	assert.True(t, ValidateDonationAmount(10))
	assert.True(t, ValidateDonationAmount(500))
	assert.True(t, ValidateDonationAmount(100000000))
	assert.False(t, ValidateDonationAmount(100000001))
	assert.False(t, ValidateDonationAmount(0))
	assert.False(t, ValidateDonationAmount(-50))
}

func TestValidateBDPhone(t *testing.T) {
	valid := []string{"01712345678", "01399999999", "+8801912345678", "01812345678"}
	for _, phone := range valid {
		assert.True(t, ValidateBDPhone(phone), "expected %s to be valid", phone)
	}

	invalid := []string{
		"01112345678", // 011 is not an operator prefix
		"0171234567",  // too short
		"017123456789",
		"8801712345678", // country code without plus
		"12345",
		"",
	}
	for _, phone := range invalid {
		assert.False(t, ValidateBDPhone(phone), "expected %s to be invalid", phone)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "01712345678", NormalizePhone("+8801712345678"))
	assert.Equal(t, "01712345678", NormalizePhone("01712345678"))
	assert.Equal(t, "01712345678", NormalizePhone(" 01712345678 "))
}

func TestValidatePersonName(t *testing.T) {
	assert.True(t, ValidatePersonName("আব্দুল করিম"))
	assert.True(t, ValidatePersonName("Md"))
	assert.False(t, ValidatePersonName("A"))
	assert.False(t, ValidatePersonName(""))
	assert.False(t, ValidatePersonName("  "))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	assert.False(t, ValidatePersonName(string(long)))
}

func TestValidateDonationCategory(t *testing.T) {
	for _, cat := range []string{"general", "zakat", "sadaqah", "fitra", "construction", "orphan", "iftar"} {
		assert.True(t, ValidateDonationCategory(cat))
	}
	assert.False(t, ValidateDonationCategory("lottery"))
	assert.False(t, ValidateDonationCategory(""))
}

func TestValidateGatewayName(t *testing.T) {
	for _, gw := range []string{"bkash", "nagad", "rocket", "upay", "sslcommerz", "amarpay", "manual"} {
		assert.True(t, ValidateGatewayName(gw))
	}
	assert.False(t, ValidateGatewayName("paypal"))
}

func TestGenerateTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN-\d+-[A-Za-z0-9]{9}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateTransactionID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate transaction id %s", id)
		seen[id] = true
	}
}
