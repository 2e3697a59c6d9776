package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/devnexus/devnexus/internal/catalog"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/spf13/cobra"
)

var discoverFlags struct {
	search     string
	platform   string
	categories []string
}

var marketFlags struct {
	min      float64
	max      float64
	category string
	verified bool
}

var buyFlags struct {
	open string
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Browse the discover feed",
	RunE:  runDiscover,
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Browse projects for sale",
	RunE:  runMarket,
}

var buyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Contact the seller of a marketplace item",
	Long: `Contact the seller of a marketplace item.

Prints a WhatsApp link and an email link carrying a prefilled message.
Use --open to hand one of them to the system's default handler.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuy,
}

func init() {
	discoverCmd.Flags().StringVarP(&discoverFlags.search, "search", "s", "", "Search titles and descriptions")
	discoverCmd.Flags().StringVarP(&discoverFlags.platform, "platform", "p", catalog.PlatformWebApps, "Web Apps, Mobile Apps or all")
	discoverCmd.Flags().StringSliceVarP(&discoverFlags.categories, "category", "c", nil,
		"Category to include, repeatable ("+strings.Join(catalog.DiscoverCategories, ", ")+")")

	marketCmd.Flags().Float64Var(&marketFlags.min, "min", catalog.MinPriceLimit, "Lowest price")
	marketCmd.Flags().Float64Var(&marketFlags.max, "max", catalog.MaxPriceLimit, "Highest price")
	marketCmd.Flags().StringVarP(&marketFlags.category, "category", "c", catalog.CategoryAll,
		"One of: "+strings.Join(catalog.MarketCategories, ", "))
	marketCmd.Flags().BoolVar(&marketFlags.verified, "verified", false, "Only verified sellers")

	buyCmd.Flags().StringVar(&buyFlags.open, "open", "", "Open the whatsapp or email link")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	platform, err := catalog.ParseDiscoverPlatform(discoverFlags.platform)
	if err != nil {
		return err
	}
	for _, c := range discoverFlags.categories {
		if !containsFold(catalog.DiscoverCategories, c) {
			return fmt.Errorf("%w: category %q", catalog.ErrUnknownFilter, c)
		}
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	snap, err := e.catalog.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load apps: %w", err)
	}

	apps := catalog.FilterApps(snap.Apps, catalog.DiscoverFilter{
		Search:     discoverFlags.search,
		Platform:   platform,
		Categories: canonicalCategories(discoverFlags.categories),
	})
	if len(apps) == 0 {
		_, _ = fmt.Fprintln(e.out, theme.Current().S().Muted.Render("No apps match your filters."))
		return nil
	}

	rows := make([][]string, len(apps))
	for i, a := range apps {
		rows[i] = []string{a.ID, a.Title, a.Category, a.Platform, a.Description}
	}
	printSection(e.out, "Discover", renderTable([]string{"ID", "Title", "Category", "Platform", "Description"}, rows, nil))
	return nil
}

func canonicalCategories(in []string) []string {
	var out []string
	for _, c := range in {
		for _, known := range catalog.DiscoverCategories {
			if strings.EqualFold(c, known) {
				out = append(out, known)
			}
		}
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func runMarket(cmd *cobra.Command, args []string) error {
	f := catalog.MarketFilter{
		MinPrice:     marketFlags.min,
		MaxPrice:     marketFlags.max,
		Category:     marketFlags.category,
		VerifiedOnly: marketFlags.verified,
	}
	if err := f.Validate(); err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	snap, err := e.catalog.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load marketplace: %w", err)
	}

	items := catalog.FilterItems(snap.Items, f)
	if len(items) == 0 {
		_, _ = fmt.Fprintln(e.out, theme.Current().S().Muted.Render("No listings match your filters."))
		return nil
	}

	s := theme.Current().S()
	rows := make([][]string, len(items))
	for i, it := range items {
		seller := it.Seller.Name
		if it.Verified {
			seller += " ✓"
		}
		rows[i] = []string{it.ID, it.Title, it.Category, formatPrice(it.Price), seller}
	}
	table := renderTable([]string{"ID", "Title", "Category", "Price", "Seller"}, rows, func(row, col int) *lipgloss.Style {
		switch {
		case col == 3:
			st := s.Price.Padding(0, 1)
			return &st
		case col == 4 && items[row].Verified:
			st := s.Verified.Padding(0, 1)
			return &st
		}
		return nil
	})
	printSection(e.out, "Marketplace", table)

	if lo, hi, ok := catalog.PriceSpan(items); ok {
		_, _ = fmt.Fprintln(e.out, s.Muted.Render(fmt.Sprintf("%d listings from %s to %s", len(items), formatPrice(lo), formatPrice(hi))))
	}
	return nil
}

func runBuy(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	if _, _, err := e.session(ctx); err != nil {
		return err
	}

	snap, err := e.catalog.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load marketplace: %w", err)
	}
	item, ok := snap.Item(args[0])
	if !ok {
		return fmt.Errorf("no marketplace item %q", args[0])
	}

	req := catalog.NewBuyRequest(item)
	s := theme.Current().S()
	_, _ = fmt.Fprintf(e.out, "%s  %s\n\n%s\n\n%s %s\n%s %s\n",
		s.HeaderTitle.Render(item.Title), s.Price.Render(formatPrice(item.Price)),
		s.Muted.Render(req.Message),
		s.Label.Render("WhatsApp:"), req.WhatsAppURL,
		s.Label.Render("Email:   "), req.EmailURL)

	if buyFlags.open == "" {
		return nil
	}
	link, err := req.URL(buyFlags.open)
	if err != nil {
		return err
	}
	return openURL(link)
}

// openURL hands url to the platform's default handler.
func openURL(url string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", url)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	logger.Debug("Opening %s", url)
	if err := c.Start(); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	go func() { _ = c.Wait() }()
	return nil
}
