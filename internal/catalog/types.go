// Package catalog serves the discover feed, the marketplace listings and the
// signed-in user's projects. Data is mock data behind a simulated network
// delay; filters and buy-request links operate on it.
package catalog

import "time"

// App is a project shown on the discover feed.
type App struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Platform    string `json:"platform"`
	ImageURL    string `json:"imageUrl,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Seller is the account offering a marketplace item.
type Seller struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// MarketplaceItem is a project listed for sale.
type MarketplaceItem struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	Verified       bool    `json:"verified"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Thumbnail      string  `json:"thumbnail,omitempty"`
	WhatsappNumber string  `json:"whatsappNumber,omitempty"`
	ContactEmail   string  `json:"contactEmail,omitempty"`
	Seller         Seller  `json:"seller"`
}

// User is the signed-in account.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// UserProject is one of the user's own projects as shown on the profile.
type UserProject struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	Category     string    `json:"category"`
	PlatformType string    `json:"platformType"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
