package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilter is returned for a platform, category or tab outside the
// fixed choices.
var ErrUnknownFilter = errors.New("unknown filter value")

// Discover feed choices.
const (
	PlatformWebApps    = "Web Apps"
	PlatformMobileApps = "Mobile Apps"
)

// DiscoverCategories are the category chips of the discover feed.
var DiscoverCategories = []string{"AI Tools", "Productivity", "Social", "Entertainment", "Education"}

// DiscoverFilter selects apps for the discover feed. An empty Platform or
// Categories matches everything.
type DiscoverFilter struct {
	Search     string
	Platform   string
	Categories []string
}

// ParseDiscoverPlatform accepts "Web Apps", "Mobile Apps", "web" or "mobile".
// An empty value or "all" matches both platforms.
func ParseDiscoverPlatform(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return "", nil
	case "web", "web apps":
		return PlatformWebApps, nil
	case "mobile", "mobile apps":
		return PlatformMobileApps, nil
	}
	return "", fmt.Errorf("%w: platform %q", ErrUnknownFilter, s)
}

// Match reports whether a passes the filter. Search is case-insensitive over
// title and description.
func (f DiscoverFilter) Match(a App) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) {
			return false
		}
	}
	switch f.Platform {
	case PlatformWebApps:
		if a.Platform != "web" {
			return false
		}
	case PlatformMobileApps:
		if a.Platform != "mobile" {
			return false
		}
	}
	if len(f.Categories) > 0 && !contains(f.Categories, a.Category) {
		return false
	}
	return true
}

// FilterApps returns the apps matching f in their original order.
func FilterApps(apps []App, f DiscoverFilter) []App {
	out := []App{}
	for _, a := range apps {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

// ToggleCategory adds category to the selection, or removes it if present.
func ToggleCategory(selected []string, category string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, c := range selected {
		if c == category {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		out = append(out, category)
	}
	return out
}

// Marketplace choices.
const (
	CategoryAll   = "All"
	MinPriceLimit = 0
	MaxPriceLimit = 10000
)

// MarketCategories are the marketplace category chips.
var MarketCategories = []string{CategoryAll, "Web Apps", "Mobile Apps", "Source Code", "Templates"}

// MarketFilter selects marketplace listings. Both price bounds are inclusive.
type MarketFilter struct {
	MinPrice     float64
	MaxPrice     float64
	Category     string
	VerifiedOnly bool
}

// DefaultMarketFilter matches every listing.
func DefaultMarketFilter() MarketFilter {
	return MarketFilter{MinPrice: MinPriceLimit, MaxPrice: MaxPriceLimit, Category: CategoryAll}
}

// Validate checks the category and the price bounds.
func (f MarketFilter) Validate() error {
	if f.Category != "" && !contains(MarketCategories, f.Category) {
		return fmt.Errorf("%w: category %q", ErrUnknownFilter, f.Category)
	}
	if f.MinPrice < MinPriceLimit || f.MaxPrice > MaxPriceLimit || f.MinPrice > f.MaxPrice {
		return fmt.Errorf("%w: price range %.0f-%.0f", ErrUnknownFilter, f.MinPrice, f.MaxPrice)
	}
	return nil
}

// Match reports whether it passes the filter.
func (f MarketFilter) Match(it MarketplaceItem) bool {
	if it.Price < f.MinPrice || it.Price > f.MaxPrice {
		return false
	}
	if f.Category != "" && f.Category != CategoryAll && it.Category != f.Category {
		return false
	}
	return !f.VerifiedOnly || it.Verified
}

// FilterItems returns the listings matching f in their original order.
func FilterItems(items []MarketplaceItem, f MarketFilter) []MarketplaceItem {
	out := []MarketplaceItem{}
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// PriceSpan returns the lowest and highest price in items. ok is false for an
// empty slice.
func PriceSpan(items []MarketplaceItem) (lo, hi float64, ok bool) {
	for i, it := range items {
		if i == 0 || it.Price < lo {
			lo = it.Price
		}
		if i == 0 || it.Price > hi {
			hi = it.Price
		}
	}
	return lo, hi, len(items) > 0
}

// Profile tabs.
const DefaultProfileTab = "Approved"

// ProfileTabs are the status tabs of the profile screen.
var ProfileTabs = []string{"Draft", "Pending", "Approved", "Marketplace"}

// ParseProfileTab matches a tab name case-insensitively.
func ParseProfileTab(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultProfileTab, nil
	}
	for _, tab := range ProfileTabs {
		if strings.EqualFold(tab, strings.TrimSpace(s)) {
			return tab, nil
		}
	}
	return "", fmt.Errorf("%w: tab %q", ErrUnknownFilter, s)
}

// FilterProjects returns the projects whose status equals tab, ignoring case.
func FilterProjects(projects []UserProject, tab string) []UserProject {
	out := []UserProject{}
	for _, p := range projects {
		if strings.EqualFold(p.Status, tab) {
			out = append(out, p)
		}
	}
	return out
}

// CountStatus counts projects in the given status, ignoring case.
func CountStatus(projects []UserProject, status string) int {
	return len(FilterProjects(projects, status))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
