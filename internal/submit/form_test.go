package submit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForm_Defaults(t *testing.T) {
	f := NewForm()
	assert.Equal(t, PlatformWeb, f.PlatformType)
	assert.False(t, f.ForSale)
	assert.Equal(t, 0, f.ScreenshotCount())
	assert.False(t, f.Thumbnail.IsSet())
}

func TestUpdate_ReplacesOnlyThatField(t *testing.T) {
	base := NewForm()
	base.Title = "Nexus"
	base.Tags = "go, tui"
	base.Price = "12"

	values := map[Field]string{
		FieldPlatformType: "mobile",
		FieldForSale:      "true",
	}

	for _, field := range Fields() {
		t.Run(field.String(), func(t *testing.T) {
			value, ok := values[field]
			if !ok {
				value = "new " + field.String()
			}

			next, err := base.Update(field, value)
			require.NoError(t, err)
			assert.Equal(t, value, next.Get(field))

			for _, other := range Fields() {
				if other == field {
					continue
				}
				assert.Equal(t, base.Get(other), next.Get(other), "field %s changed", other)
			}
			assert.Equal(t, base.Thumbnail, next.Thumbnail)
			assert.Equal(t, base.Screenshots, next.Screenshots)
		})
	}
}

func TestUpdate_DoesNotMutateReceiver(t *testing.T) {
	f := NewForm()
	next, err := f.Update(FieldTitle, "DevNexus")
	require.NoError(t, err)
	assert.Equal(t, "", f.Title)
	assert.Equal(t, "DevNexus", next.Title)
}

func TestUpdate_AcceptsEmptyAndArbitraryText(t *testing.T) {
	f, err := NewForm().Update(FieldPrice, "not a number")
	require.NoError(t, err)
	assert.Equal(t, "not a number", f.Price)

	f, err = f.Update(FieldPrice, "")
	require.NoError(t, err)
	assert.Equal(t, "", f.Price)
}

func TestUpdate_Rejects(t *testing.T) {
	f := NewForm()

	_, err := f.Update(Field(99), "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	got, err := f.Update(FieldPlatformType, "desktop")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, f, got)

	_, err = f.Update(FieldForSale, "maybe")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseField(t *testing.T) {
	for _, field := range Fields() {
		got, err := ParseField(field.String())
		require.NoError(t, err)
		assert.Equal(t, field, got)
	}
	_, err := ParseField("nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, "Field(42)", Field(42).String())
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform(" Mobile ")
	require.NoError(t, err)
	assert.Equal(t, PlatformMobile, p)

	_, err = ParsePlatform("")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestPlatformSwitch_PreservesLinks(t *testing.T) {
	f, err := NewForm().Update(FieldWebsiteURL, "https://nexus.dev")
	require.NoError(t, err)

	f = f.WithPlatform(PlatformMobile)
	f, err = f.Update(FieldAppStoreLink, "https://apps.apple.com/nexus")
	require.NoError(t, err)
	f = f.WithPlatform(PlatformWeb)

	assert.Equal(t, "https://nexus.dev", f.WebsiteURL)
	assert.Equal(t, "https://apps.apple.com/nexus", f.AppStoreLink)
}

func TestWithScreenshot_Slots(t *testing.T) {
	f, err := NewForm().WithScreenshot(2, Image{URI: "file:///tmp/shot.png"})
	require.NoError(t, err)

	want := [MaxScreenshots]Image{2: {URI: "file:///tmp/shot.png"}}
	if diff := cmp.Diff(want, f.Screenshots); diff != "" {
		t.Errorf("screenshots mismatch (-want +got):\n%s", diff)
	}

	f, err = f.WithScreenshot(2, Image{URI: "/tmp/other.png"})
	require.NoError(t, err)
	assert.Equal(t, "other.png", f.Screenshots[2].Name())
	assert.Equal(t, 1, f.ScreenshotCount())

	for _, slot := range []int{-1, MaxScreenshots} {
		got, err := f.WithScreenshot(slot, Image{URI: "x.png"})
		assert.ErrorIs(t, err, ErrSlotOutOfRange)
		assert.Equal(t, f, got)
	}
}

func TestImage_Name(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"", ""},
		{"file:///data/user/0/cache/ImagePicker/abc.jpeg", "abc.jpeg"},
		{"/home/me/Pictures/thumb.png", "thumb.png"},
		{`C:\Users\me\shot.webp`, "shot.webp"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Image{URI: tt.uri}.Name(), tt.uri)
	}
}

func TestTagList(t *testing.T) {
	f := NewForm()
	f.Tags = " react, ,typescript,tailwind ,"
	assert.Equal(t, []string{"react", "typescript", "tailwind"}, f.TagList())
	assert.Nil(t, NewForm().TagList())
}

func TestPayload_BlanksInactiveGroups(t *testing.T) {
	f := NewForm()
	f.Title = "Nexus"
	f.WebsiteURL = "https://nexus.dev"
	f.AppStoreLink = "https://apps.apple.com/nexus"
	f.PlayStoreLink = "https://play.google.com/nexus"
	f.Price = "49"
	f.ContactEmail = "me@nexus.dev"

	web := f.Payload()
	assert.Equal(t, "https://nexus.dev", web.WebsiteURL)
	assert.Empty(t, web.AppStoreLink)
	assert.Empty(t, web.PlayStoreLink)
	assert.Empty(t, web.Price)
	assert.Empty(t, web.ContactEmail)

	mobile := f.WithPlatform(PlatformMobile).WithForSale(true).Payload()
	assert.Empty(t, mobile.WebsiteURL)
	assert.Equal(t, "https://apps.apple.com/nexus", mobile.AppStoreLink)
	assert.Equal(t, "49", mobile.Price)
	assert.Equal(t, "me@nexus.dev", mobile.ContactEmail)

	// the source form is untouched
	assert.Equal(t, "49", f.Price)
}
