package catalog

import (
	"fmt"
	"net/url"
	"strings"
)

// Fallback contact details for listings without their own.
const (
	FallbackWhatsApp = "1234567890"
	FallbackEmail    = "seller@devnexus.com"
)

// BuyRequest holds the ways a buyer can reach a seller about one listing.
type BuyRequest struct {
	Item        MarketplaceItem `json:"item"`
	Message     string          `json:"message"`
	WhatsAppURL string          `json:"whatsappUrl"`
	EmailURL    string          `json:"emailUrl"`
}

// NewBuyRequest builds the WhatsApp and email links for it.
func NewBuyRequest(it MarketplaceItem) BuyRequest {
	message := fmt.Sprintf("Hello, I'm interested in purchasing your project \"%s\" listed on DevNexus.", it.Title)

	phone := it.WhatsappNumber
	if phone == "" {
		phone = FallbackWhatsApp
	}
	email := it.ContactEmail
	if email == "" {
		email = FallbackEmail
	}
	subject := "Interested in " + it.Title

	return BuyRequest{
		Item:        it,
		Message:     message,
		WhatsAppURL: fmt.Sprintf("https://wa.me/%s?text=%s", phone, escapeComponent(message)),
		EmailURL: fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			email, escapeComponent(subject), escapeComponent(message)),
	}
}

// URL returns the link for a channel: "whatsapp" or "email".
func (r BuyRequest) URL(channel string) (string, error) {
	switch strings.ToLower(channel) {
	case "whatsapp", "wa":
		return r.WhatsAppURL, nil
	case "email", "mail":
		return r.EmailURL, nil
	}
	return "", fmt.Errorf("%w: channel %q", ErrUnknownFilter, channel)
}

// escapeComponent percent-encodes s with %20 for spaces.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
