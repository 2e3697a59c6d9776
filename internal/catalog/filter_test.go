package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appTitles(apps []App) []string {
	out := []string{}
	for _, a := range apps {
		out = append(out, a.Title)
	}
	return out
}

func itemIDs(items []MarketplaceItem) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilterApps(t *testing.T) {
	apps := mockApps()

	tests := []struct {
		name   string
		filter DiscoverFilter
		want   []string
	}{
		{"no filter", DiscoverFilter{}, []string{"AI Assistant", "Task Manager", "Social Hub", "Learning Platform"}},
		{"web apps", DiscoverFilter{Platform: PlatformWebApps}, []string{"AI Assistant", "Social Hub"}},
		{"mobile apps", DiscoverFilter{Platform: PlatformMobileApps}, []string{"Task Manager", "Learning Platform"}},
		{"search title ignores case", DiscoverFilter{Search: "TASK"}, []string{"Task Manager"}},
		{"search description", DiscoverFilter{Search: "friends"}, []string{"Social Hub"}},
		{"categories any", DiscoverFilter{Categories: []string{"Social", "Education"}}, []string{"Social Hub", "Learning Platform"}},
		{"combined", DiscoverFilter{Platform: PlatformWebApps, Categories: []string{"Education"}}, []string{}},
		{"no match", DiscoverFilter{Search: "blockchain"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appTitles(FilterApps(apps, tt.filter))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterApps mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDiscoverPlatform(t *testing.T) {
	for in, want := range map[string]string{"": "", "all": "", "web": PlatformWebApps, "Mobile Apps": PlatformMobileApps} {
		got, err := ParseDiscoverPlatform(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseDiscoverPlatform("desktop")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestToggleCategory(t *testing.T) {
	sel := ToggleCategory(nil, "Social")
	sel = ToggleCategory(sel, "Education")
	assert.Equal(t, []string{"Social", "Education"}, sel)
	sel = ToggleCategory(sel, "Social")
	assert.Equal(t, []string{"Education"}, sel)
}

func TestFilterItems(t *testing.T) {
	items := mockItems()

	tests := []struct {
		name   string
		mutate func(*MarketFilter)
		want   []string
	}{
		{"default", func(*MarketFilter) {}, []string{"1", "2", "3", "4"}},
		{"max price inclusive", func(f *MarketFilter) { f.MaxPrice = 89 }, []string{"1", "4"}},
		{"min price inclusive", func(f *MarketFilter) { f.MinPrice = 199 }, []string{"2", "3"}},
		{"category", func(f *MarketFilter) { f.Category = "Source Code" }, []string{"2"}},
		{"verified only", func(f *MarketFilter) { f.VerifiedOnly = true }, []string{"1", "2", "4"}},
		{"verified web apps", func(f *MarketFilter) { f.Category = "Web Apps"; f.VerifiedOnly = true }, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultMarketFilter()
			tt.mutate(&f)
			require.NoError(t, f.Validate())
			if diff := cmp.Diff(tt.want, itemIDs(FilterItems(items, f))); diff != "" {
				t.Errorf("FilterItems mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarketFilter_Validate(t *testing.T) {
	f := DefaultMarketFilter()
	f.Category = "Games"
	assert.ErrorIs(t, f.Validate(), ErrUnknownFilter)

	f = DefaultMarketFilter()
	f.MinPrice, f.MaxPrice = 500, 100
	assert.ErrorIs(t, f.Validate(), ErrUnknownFilter)

	f = DefaultMarketFilter()
	f.MaxPrice = 20000
	assert.ErrorIs(t, f.Validate(), ErrUnknownFilter)
}

func TestPriceSpan(t *testing.T) {
	lo, hi, ok := PriceSpan(mockItems())
	require.True(t, ok)
	assert.Equal(t, 49.0, lo)
	assert.Equal(t, 299.0, hi)

	_, _, ok = PriceSpan(nil)
	assert.False(t, ok)
}

func TestProfileTabs(t *testing.T) {
	projects := mockProjects()
	for _, tab := range ProfileTabs {
		got := FilterProjects(projects, tab)
		require.Len(t, got, 1, tab)
		assert.Equal(t, tab, got[0].Status)
	}

	projects[0].Status = "approved"
	assert.Equal(t, 1, CountStatus(projects, "APPROVED"))

	tab, err := ParseProfileTab("")
	require.NoError(t, err)
	assert.Equal(t, "Approved", tab)
	tab, err = ParseProfileTab("marketplace")
	require.NoError(t, err)
	assert.Equal(t, "Marketplace", tab)
	_, err = ParseProfileTab("Archived")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}
