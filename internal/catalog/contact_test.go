package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuyRequest(t *testing.T) {
	it := MarketplaceItem{Title: "UI Kit", WhatsappNumber: "5551234", ContactEmail: "ui@example.com"}
	r := NewBuyRequest(it)

	assert.Equal(t, `Hello, I'm interested in purchasing your project "UI Kit" listed on DevNexus.`, r.Message)
	assert.Equal(t,
		"https://wa.me/5551234?text=Hello%2C%20I%27m%20interested%20in%20purchasing%20your%20project%20%22UI%20Kit%22%20listed%20on%20DevNexus.",
		r.WhatsAppURL)
	assert.Equal(t,
		"mailto:ui@example.com?subject=Interested%20in%20UI%20Kit&body=Hello%2C%20I%27m%20interested%20in%20purchasing%20your%20project%20%22UI%20Kit%22%20listed%20on%20DevNexus.",
		r.EmailURL)
}

func TestNewBuyRequest_Fallbacks(t *testing.T) {
	r := NewBuyRequest(MarketplaceItem{Title: "C++ Engine"})
	assert.Contains(t, r.WhatsAppURL, "https://wa.me/1234567890?text=")
	assert.Contains(t, r.EmailURL, "mailto:seller@devnexus.com?subject=Interested%20in%20C%2B%2B%20Engine&body=")
}

func TestBuyRequest_URL(t *testing.T) {
	r := NewBuyRequest(MarketplaceItem{Title: "X"})

	got, err := r.URL("WhatsApp")
	require.NoError(t, err)
	assert.Equal(t, r.WhatsAppURL, got)

	got, err = r.URL("email")
	require.NoError(t, err)
	assert.Equal(t, r.EmailURL, got)

	_, err = r.URL("sms")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}
