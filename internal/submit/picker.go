package submit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPickCanceled is returned by an ImagePicker when the user backs out.
var ErrPickCanceled = errors.New("image pick canceled")

// MaxImageBytes is the largest image a slot accepts.
const MaxImageBytes = 5 << 20

// ImageExtensions lists the file types the picker offers.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// IsImagePath reports whether path has an image extension.
func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadImage turns a local file into an Image. The file must exist, carry an
// image extension and fit within MaxImageBytes.
func LoadImage(path string) (Image, error) {
	if !IsImagePath(path) {
		return Image{}, fmt.Errorf("%s is not an image", filepath.Base(path))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Image{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Image{}, err
	}
	if info.IsDir() {
		return Image{}, fmt.Errorf("%s is a directory", filepath.Base(path))
	}
	if info.Size() > MaxImageBytes {
		return Image{}, fmt.Errorf("%s exceeds %d bytes", filepath.Base(path), MaxImageBytes)
	}
	return Image{URI: "file://" + filepath.ToSlash(abs)}, nil
}

// FilePicker picks a fixed path, as the CLI flags do.
func FilePicker(path string) ImagePicker {
	return ImagePickerFunc(func(ctx context.Context) (Image, error) {
		if err := ctx.Err(); err != nil {
			return Image{}, err
		}
		return LoadImage(path)
	})
}

// ImagePicker acquires a single local image.
type ImagePicker interface {
	Pick(ctx context.Context) (Image, error)
}

// ImagePickerFunc adapts a function to ImagePicker.
type ImagePickerFunc func(ctx context.Context) (Image, error)

// Pick calls fn.
func (fn ImagePickerFunc) Pick(ctx context.Context) (Image, error) { return fn(ctx) }

// Alert is a blocking message acknowledged by the user.
type Alert struct {
	Title   string
	Message string
}

var (
	SubmittedAlert  = Alert{Title: "Success", Message: "Project submitted for review!"}
	PickFailedAlert = Alert{Title: "Error", Message: "Failed to pick image"}
)

// MediaSlot addresses the thumbnail or one of the screenshot slots.
type MediaSlot int

// ThumbnailSlot is the single thumbnail image.
const ThumbnailSlot MediaSlot = -1

// ScreenshotSlot addresses screenshot slot i (0-based).
func ScreenshotSlot(i int) MediaSlot { return MediaSlot(i) }

// IsThumbnail reports whether s is the thumbnail.
func (s MediaSlot) IsThumbnail() bool { return s == ThumbnailSlot }

// Index is the screenshot index, or -1 for the thumbnail.
func (s MediaSlot) Index() int { return int(s) }

func (s MediaSlot) String() string {
	if s.IsThumbnail() {
		return "thumbnail"
	}
	return fmt.Sprintf("screenshot %d", int(s)+1)
}

// WithImage overwrites the addressed slot.
func (f Form) WithImage(slot MediaSlot, img Image) (Form, error) {
	if slot.IsThumbnail() {
		return f.WithThumbnail(img), nil
	}
	return f.WithScreenshot(slot.Index(), img)
}

// Image returns the image held by a slot.
func (f Form) Image(slot MediaSlot) Image {
	if slot.IsThumbnail() {
		return f.Thumbnail
	}
	if i := slot.Index(); i >= 0 && i < MaxScreenshots {
		return f.Screenshots[i]
	}
	return Image{}
}
