package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already prefixed with country code", "+91 98765 43210", "919876543210"},
		{"bare ten digit number", "9876543210", "919876543210"},
		{"dashes and parentheses", "(98765) 432-10", "919876543210"},
		{"empty input", "", "91"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeNumber(tt.raw, "91"))
		})
	}
}

func TestComposeMessage_EmptyRemarksFallsBackToNA(t *testing.T) {
	b := NewBuilder("", "", "")
	msg := b.ComposeMessage(Receipt{
		CustomerName:    "John Doe",
		TransactionDate: "2024-01-15",
		Amount:          "500",
		MobileNumber:    "9876543210",
		Remarks:         "",
	})
	want := "*Receipt Details*\n" +
		"*Customer Name:* John Doe\n" +
		"*Date of Transaction:* 2024-01-15\n" +
		"*Amount:* ₹500\n" +
		"*Mobile Number:* 9876543210\n" +
		"*Remarks:* N/A"
	assert.Equal(t, want, msg)
}

func TestComposeMessage_WhitespaceRemarksPassThrough(t *testing.T) {
	b := NewBuilder("", "", "")
	msg := b.ComposeMessage(Receipt{Remarks: "  "})
	assert.True(t, strings.HasSuffix(msg, "*Remarks:*   "), "whitespace-only remarks must not fall back to N/A")
}

func TestComposeMessage_NonEmptyRemarks(t *testing.T) {
	b := NewBuilder("", "", "")
	msg := b.ComposeMessage(Receipt{Remarks: "paid in cash"})
	assert.True(t, strings.HasSuffix(msg, "*Remarks:* paid in cash"))
}

func TestLink_RoundTrip(t *testing.T) {
	b := NewBuilder("", "", "")
	r := Receipt{
		CustomerName:    "John Doe",
		TransactionDate: "2024-01-15",
		Amount:          "500",
		MobileNumber:    "9876543210",
		Remarks:         "",
	}
	link := b.Link(r)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	decoded := u.Query().Get("text")
	assert.Equal(t, b.ComposeMessage(r), decoded)
}

func TestLink_MessageKeepsOriginalMobileText(t *testing.T) {
	b := NewBuilder("", "", "")
	link := b.Link(Receipt{MobileNumber: "+91 98765 43210"})

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/919876543210", u.Path)
	assert.Contains(t, u.Query().Get("text"), "*Mobile Number:* +91 98765 43210")
}

func TestLink_NoPlusEncodingForSpaces(t *testing.T) {
	b := NewBuilder("", "", "")
	link := b.Link(Receipt{CustomerName: "John Doe"})
	assert.Contains(t, link, "John%20Doe")
	assert.NotContains(t, link, "John+Doe")
}

func TestLink_CustomDomainAndCurrency(t *testing.T) {
	b := NewBuilder("api.whatsapp.com", "254", "KSh ")
	link := b.Link(Receipt{Amount: "100", MobileNumber: "712345678"})

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "api.whatsapp.com", u.Host)
	assert.Equal(t, "/254712345678", u.Path)
	assert.Contains(t, u.Query().Get("text"), "*Amount:* KSh 100")
}
