package testfixtures

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devnexus/devnexus/internal/submit"
)

// FixedTime is the clock used by TUI tests.
var FixedTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// WebForm returns a complete web project form.
func WebForm() submit.Form {
	f := submit.NewForm()
	f.Title = "Pixel Forge"
	f.Description = "Sprite editor that runs in the browser."
	f.Category = "Developer Tools"
	f.Tags = "canvas, wasm"
	f.WebsiteURL = "https://pixelforge.dev"
	f.Thumbnail = submit.Image{URI: "file:///art/forge.png"}
	return f
}

// MobileForSaleForm returns a complete mobile project listed for sale.
func MobileForSaleForm() submit.Form {
	f := submit.NewForm().WithPlatform(submit.PlatformMobile).WithForSale(true)
	f.Title = "Habit Loop"
	f.Description = "Streak tracker with widgets."
	f.Category = "Productivity"
	f.AppStoreLink = "https://apps.apple.com/app/habit-loop"
	f.Price = "249"
	f.ContactEmail = "sales@habitloop.app"
	f.WhatsappNumber = "+15551234567"
	return f
}

// ImageDir creates a temp directory holding the named files and returns it.
func ImageDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte("img"), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}
