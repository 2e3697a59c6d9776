package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/devnexus/devnexus/internal/catalog"
	"github.com/devnexus/devnexus/internal/logger"
	"github.com/devnexus/devnexus/internal/submit"
	"github.com/mark3labs/mcp-go/mcp"
)

// submitArgs maps submit_project arguments to form fields, in the order
// the wizard asks for them.
var submitArgs = []struct {
	name  string
	field submit.Field
}{
	{"title", submit.FieldTitle},
	{"description", submit.FieldDescription},
	{"category", submit.FieldCategory},
	{"tags", submit.FieldTags},
	{"platform_type", submit.FieldPlatformType},
	{"website_url", submit.FieldWebsiteURL},
	{"app_store_link", submit.FieldAppStoreLink},
	{"play_store_link", submit.FieldPlayStoreLink},
	{"for_sale", submit.FieldForSale},
	{"price", submit.FieldPrice},
	{"contact_email", submit.FieldContactEmail},
	{"whatsapp_number", submit.FieldWhatsappNumber},
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("discover_apps",
			mcp.WithDescription("List projects on the discover feed, optionally filtered"),
			mcp.WithString("search", mcp.Description("Case-insensitive text matched against title and description")),
			mcp.WithString("platform", mcp.Description("Web Apps or Mobile Apps; empty for both")),
			mcp.WithArray("categories",
				mcp.Description("Categories to include; empty for all"),
				mcp.Items(map[string]any{"type": "string", "enum": catalog.DiscoverCategories}),
			),
		),
		s.handleDiscoverApps,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("marketplace_items",
			mcp.WithDescription("List projects for sale on the marketplace"),
			mcp.WithNumber("min_price", mcp.Description("Lowest price in USD (default 0)")),
			mcp.WithNumber("max_price", mcp.Description("Highest price in USD (default 10000)")),
			mcp.WithString("category", mcp.Enum(catalog.MarketCategories...)),
			mcp.WithBoolean("verified_only", mcp.Description("Only listings from verified sellers")),
		),
		s.handleMarketplaceItems,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("buy_request",
			mcp.WithDescription("Build the message and contact link for buying a marketplace item"),
			mcp.WithString("item_id", mcp.Required(), mcp.Description("Marketplace item ID")),
			mcp.WithString("channel", mcp.Enum("whatsapp", "email"), mcp.Description("Contact channel (default whatsapp)")),
		),
		s.handleBuyRequest,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_submissions",
			mcp.WithDescription("List submitted projects with their review status, newest first"),
		),
		s.handleListSubmissions,
	)

	opts := []mcp.ToolOption{
		mcp.WithDescription("Submit a project for review. Missing fields are reported but do not block the submission."),
		mcp.WithString("title", mcp.Description("Project title")),
		mcp.WithString("description", mcp.Description("Two or three sentences")),
		mcp.WithString("category", mcp.Enum(submit.Categories...)),
		mcp.WithString("tags", mcp.Description("Comma-separated tags")),
		mcp.WithString("platform_type", mcp.Enum(string(submit.PlatformWeb), string(submit.PlatformMobile))),
		mcp.WithString("website_url"),
		mcp.WithString("app_store_link"),
		mcp.WithString("play_store_link"),
		mcp.WithBoolean("for_sale"),
		mcp.WithNumber("price", mcp.Description("Price in USD when for sale")),
		mcp.WithString("contact_email"),
		mcp.WithString("whatsapp_number"),
	}
	s.mcpServer.AddTool(mcp.NewTool("submit_project", opts...), s.handleSubmitProject)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// stringArg returns a string argument; numbers and booleans are formatted.
func stringArg(args map[string]any, key string) (string, bool) {
	switch v := args[key].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

func floatArg(args map[string]any, key string, def float64) (float64, error) {
	switch v := args[key].(type) {
	case nil:
		return def, nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("'%s' must be a number", key)
		}
		return f, nil
	}
	return 0, fmt.Errorf("'%s' must be a number", key)
}

func (s *Server) handleDiscoverApps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var f catalog.DiscoverFilter
	f.Search, _ = stringArg(args, "search")

	platform, _ := stringArg(args, "platform")
	p, err := catalog.ParseDiscoverPlatform(platform)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f.Platform = p

	if raw, ok := args["categories"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return mcp.NewToolResultError("'categories' is not an array"), nil
		}
		for i, c := range list {
			name, ok := c.(string)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("category %d is not a string", i)), nil
			}
			f.Categories = append(f.Categories, name)
		}
	}

	snap, err := s.catalog.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load catalog: %v", err)), nil
	}
	return jsonResult(catalog.FilterApps(snap.Apps, f))
}

func (s *Server) handleMarketplaceItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	f := catalog.DefaultMarketFilter()
	var err error
	if f.MinPrice, err = floatArg(args, "min_price", f.MinPrice); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if f.MaxPrice, err = floatArg(args, "max_price", f.MaxPrice); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if c, ok := stringArg(args, "category"); ok && c != "" {
		f.Category = c
	}
	if v, ok := args["verified_only"].(bool); ok {
		f.VerifiedOnly = v
	}
	if err := f.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap, err := s.catalog.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load catalog: %v", err)), nil
	}
	return jsonResult(catalog.FilterItems(snap.Items, f))
}

func (s *Server) handleBuyRequest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	id, _ := stringArg(args, "item_id")
	if id == "" {
		return mcp.NewToolResultError("missing 'item_id' parameter"), nil
	}
	channel, _ := stringArg(args, "channel")
	if channel == "" {
		channel = "whatsapp"
	}

	snap, err := s.catalog.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load catalog: %v", err)), nil
	}
	item, ok := snap.Item(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no marketplace item %q", id)), nil
	}

	req := catalog.NewBuyRequest(item)
	link, err := req.URL(channel)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{
		"item":    item.Title,
		"message": req.Message,
		"channel": strings.ToLower(channel),
		"url":     link,
	})
}

func (s *Server) handleListSubmissions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.projects == nil {
		return mcp.NewToolResultError("submissions are not available"), nil
	}
	projects, err := s.projects.List(ctx, s.owner)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load submissions: %v", err)), nil
	}
	return jsonResult(projects)
}

// submitResult is returned by submit_project.
type submitResult struct {
	Submission submit.Submission `json:"submission"`
	Issues     []string          `json:"issues,omitempty"`
}

// handleSubmitProject fills a wizard from the arguments, walks it to the
// review step and finalizes it.
func (s *Server) handleSubmitProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.projects == nil {
		return mcp.NewToolResultError("submissions are not available"), nil
	}
	args := request.GetArguments()

	wiz := submit.NewWizard(submit.WithIDGenerator(s.newID))
	for _, a := range submitArgs {
		value, ok := stringArg(args, a.name)
		if !ok {
			continue
		}
		if err := wiz.Set(a.field, value); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("'%s': %v", a.name, err)), nil
		}
	}

	var issues []string
	for _, e := range wiz.Form().Check() {
		issues = append(issues, e.Message)
	}

	for !wiz.AtReview() {
		wiz.Advance()
	}
	sub, err := wiz.Finalize(s.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.projects.Submit(ctx, s.owner, sub); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record submission: %v", err)), nil
	}
	logger.Info("Project %s submitted over MCP (%q)", sub.ID, sub.Project.Title)

	return jsonResult(submitResult{Submission: sub, Issues: issues})
}
