package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Localized messages shown on the public Bengali forms
const (
	MsgRequiredFields  = "সব প্রয়োজনীয় তথ্য পূরণ করুন"
	MsgInvalidName     = "নাম ২ থেকে ১০০ অক্ষরের মধ্যে হতে হবে"
	MsgInvalidPhone    = "সঠিক মোবাইল নম্বর দিন (যেমন: 01712345678)"
	MsgInvalidAmount   = "দানের পরিমাণ ১০ থেকে ১০,০০,০০,০০০ টাকার মধ্যে হতে হবে"
	MsgInvalidCategory = "সঠিক দানের খাত নির্বাচন করুন"
	MsgInvalidGateway  = "সঠিক পেমেন্ট মাধ্যম নির্বাচন করুন"
	MsgRateLimited     = "আপনি এক ঘণ্টায় সর্বোচ্চ ৩টি আবেদন জমা দিতে পারবেন, কিছুক্ষণ পর আবার চেষ্টা করুন"
	MsgGatewayDisabled = "এই পেমেন্ট মাধ্যমটি এখন বন্ধ আছে"
)

// Donation amount bounds in BDT, inclusive
const (
	MinDonationAmount = 10
	MaxDonationAmount = 100000000
)

var (
	// Bangladeshi mobile numbers: optional +88 country code, operator
	// prefixes 013-019
	bdPhoneRegex = regexp.MustCompile(`^(\+88)?01[3-9]\d{8}$`)
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateBDPhone checks a Bangladeshi mobile number
func ValidateBDPhone(phone string) bool {
	return bdPhoneRegex.MatchString(strings.TrimSpace(phone))
}

// ValidateEmail checks an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidatePersonName checks a person name from a public form, counting runes
// so Bengali script names measure correctly
func ValidatePersonName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= 2 && n <= 100
}

// ValidateDonationAmount checks the donation amount bounds, both inclusive
func ValidateDonationAmount(amount float64) bool {
	return amount >= MinDonationAmount && amount <= MaxDonationAmount
}

// ValidateDonationCategory checks the category against the accepted list
func ValidateDonationCategory(category string) bool {
	switch category {
	case "general", "zakat", "sadaqah", "fitra", "construction", "orphan", "iftar":
		return true
	}
	return false
}

// ValidateGatewayName checks that the gateway is one the system knows about
func ValidateGatewayName(gateway string) bool {
	switch gateway {
	case "bkash", "nagad", "rocket", "upay", "sslcommerz", "amarpay", "manual":
		return true
	}
	return false
}

// FormatTaka renders an amount the way the instruction templates and
// receipts show it
func FormatTaka(amount float64) string {
	return fmt.Sprintf("%.2f টাকা", amount)
}

// NormalizePhone strips the +88 country code so lookups and rate-limit
// counters see one canonical form
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	return strings.TrimPrefix(phone, "+88")
}
