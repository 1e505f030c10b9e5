package whatsapp

import (
	"net/url"
	"strings"
)

// Receipt carries the field values that go into the message body.
// Amount and MobileNumber are the raw strings as entered; validation
// happens upstream, the builder only formats.
type Receipt struct {
	CustomerName    string
	TransactionDate string
	Amount          string
	MobileNumber    string
	Remarks         string
}

// Builder composes WhatsApp "click to chat" deep links.
type Builder struct {
	domain      string
	countryCode string
	currency    string
}

// NewBuilder creates a link builder. Empty arguments fall back to the
// wa.me domain, the Indian country code and the rupee symbol.
func NewBuilder(domain, countryCode, currency string) *Builder {
	if domain == "" {
		domain = "wa.me"
	}
	if countryCode == "" {
		countryCode = "91"
	}
	if currency == "" {
		currency = "₹"
	}
	return &Builder{
		domain:      domain,
		countryCode: countryCode,
		currency:    currency,
	}
}

// NormalizeNumber strips every non-digit character from raw and ensures the
// result starts with countryCode. A number that already carries the country
// code is used as-is.
func NormalizeNumber(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, countryCode) {
		return digits
	}
	return countryCode + digits
}

// ComposeMessage renders the plain-text message body, one field per line.
// Remarks falls back to "N/A" only when it is exactly empty; whitespace-only
// remarks pass through verbatim.
func (b *Builder) ComposeMessage(r Receipt) string {
	remarks := r.Remarks
	if remarks == "" {
		remarks = "N/A"
	}
	lines := []string{
		"*Receipt Details*",
		"*Customer Name:* " + r.CustomerName,
		"*Date of Transaction:* " + r.TransactionDate,
		"*Amount:* " + b.currency + r.Amount,
		"*Mobile Number:* " + r.MobileNumber,
		"*Remarks:* " + remarks,
	}
	return strings.Join(lines, "\n")
}

// Link builds the deep-link URL. The message lines are percent-encoded
// independently and joined with an encoded newline; the mobile number in the
// body stays as entered while the URL path carries the normalized number.
func (b *Builder) Link(r Receipt) string {
	message := b.ComposeMessage(r)
	encoded := make([]string, 0, 6)
	for _, line := range strings.Split(message, "\n") {
		encoded = append(encoded, encodeComponent(line))
	}
	number := NormalizeNumber(r.MobileNumber, b.countryCode)
	return "https://" + b.domain + "/" + number + "?text=" + strings.Join(encoded, "%0A")
}

// encodeComponent percent-encodes a message fragment the way browsers do:
// spaces become %20, never "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
