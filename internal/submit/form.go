// Package submit holds the project submission wizard: the form record, the
// step sequencer, the per-step view model and the finalizer that turns a
// completed form into a submission.
package submit

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
)

// PlatformType selects which link fields of the form are active.
type PlatformType string

const (
	PlatformWeb    PlatformType = "web"
	PlatformMobile PlatformType = "mobile"
)

// ParsePlatform accepts "web" or "mobile" in any case.
func ParsePlatform(s string) (PlatformType, error) {
	switch PlatformType(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformWeb:
		return PlatformWeb, nil
	case PlatformMobile:
		return PlatformMobile, nil
	}
	return "", fmt.Errorf("%w: platform %q", ErrInvalidValue, s)
}

// MaxScreenshots is the number of fixed screenshot slots.
const MaxScreenshots = 4

// Image references a locally picked image. The zero value is an empty slot.
type Image struct {
	URI string `json:"uri,omitempty"`
}

// IsSet reports whether the slot holds an image.
func (i Image) IsSet() bool { return i.URI != "" }

// Name is the last path element of the reference, as shown to the user.
func (i Image) Name() string {
	if !i.IsSet() {
		return ""
	}
	return path.Base(strings.ReplaceAll(i.URI, "\\", "/"))
}

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrInvalidValue   = errors.New("invalid field value")
	ErrSlotOutOfRange = errors.New("screenshot slot out of range")
)

// Form is the single record edited across every wizard step. It is a value
// type: every update returns a new Form and leaves the receiver untouched.
type Form struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Tags           string                `json:"tags"`
	PlatformType   PlatformType          `json:"platformType"`
	WebsiteURL     string                `json:"websiteUrl"`
	AppStoreLink   string                `json:"appStoreLink"`
	PlayStoreLink  string                `json:"playStoreLink"`
	Thumbnail      Image                 `json:"thumbnail"`
	Screenshots    [MaxScreenshots]Image `json:"screenshots"`
	ForSale        bool                  `json:"forSale"`
	Price          string                `json:"price"`
	ContactEmail   string                `json:"contactEmail"`
	WhatsappNumber string                `json:"whatsappNumber"`
}

// NewForm returns the empty form the wizard starts with.
func NewForm() Form {
	return Form{PlatformType: PlatformWeb}
}

// Field identifies one text-settable field of the form.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldCategory
	FieldTags
	FieldPlatformType
	FieldWebsiteURL
	FieldAppStoreLink
	FieldPlayStoreLink
	FieldForSale
	FieldPrice
	FieldContactEmail
	FieldWhatsappNumber
	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldTitle:          "title",
	FieldDescription:    "description",
	FieldCategory:       "category",
	FieldTags:           "tags",
	FieldPlatformType:   "platformType",
	FieldWebsiteURL:     "websiteUrl",
	FieldAppStoreLink:   "appStoreLink",
	FieldPlayStoreLink:  "playStoreLink",
	FieldForSale:        "forSale",
	FieldPrice:          "price",
	FieldContactEmail:   "contactEmail",
	FieldWhatsappNumber: "whatsappNumber",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields lists every settable field in declaration order.
func Fields() []Field {
	out := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		out = append(out, f)
	}
	return out
}

// ParseField maps the JSON name of a field ("websiteUrl") to its identifier.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Update returns a copy of f with exactly one field replaced. Content is not
// validated; only unknown fields and unparseable platform/for-sale values are
// rejected, in which case f is returned unchanged.
func (f Form) Update(field Field, value string) (Form, error) {
	next := f
	switch field {
	case FieldTitle:
		next.Title = value
	case FieldDescription:
		next.Description = value
	case FieldCategory:
		next.Category = value
	case FieldTags:
		next.Tags = value
	case FieldPlatformType:
		p, err := ParsePlatform(value)
		if err != nil {
			return f, err
		}
		next.PlatformType = p
	case FieldWebsiteURL:
		next.WebsiteURL = value
	case FieldAppStoreLink:
		next.AppStoreLink = value
	case FieldPlayStoreLink:
		next.PlayStoreLink = value
	case FieldForSale:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return f, fmt.Errorf("%w: forSale %q", ErrInvalidValue, value)
		}
		next.ForSale = b
	case FieldPrice:
		next.Price = value
	case FieldContactEmail:
		next.ContactEmail = value
	case FieldWhatsappNumber:
		next.WhatsappNumber = value
	default:
		return f, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return next, nil
}

// Get returns the text value of a field.
func (f Form) Get(field Field) string {
	switch field {
	case FieldTitle:
		return f.Title
	case FieldDescription:
		return f.Description
	case FieldCategory:
		return f.Category
	case FieldTags:
		return f.Tags
	case FieldPlatformType:
		return string(f.PlatformType)
	case FieldWebsiteURL:
		return f.WebsiteURL
	case FieldAppStoreLink:
		return f.AppStoreLink
	case FieldPlayStoreLink:
		return f.PlayStoreLink
	case FieldForSale:
		return strconv.FormatBool(f.ForSale)
	case FieldPrice:
		return f.Price
	case FieldContactEmail:
		return f.ContactEmail
	case FieldWhatsappNumber:
		return f.WhatsappNumber
	}
	return ""
}

// WithPlatform switches the active link group. Values of the inactive group
// are kept so switching back restores them.
func (f Form) WithPlatform(p PlatformType) Form {
	f.PlatformType = p
	return f
}

// WithForSale toggles the marketplace listing. Sale fields are kept.
func (f Form) WithForSale(forSale bool) Form {
	f.ForSale = forSale
	return f
}

// WithThumbnail replaces the thumbnail slot.
func (f Form) WithThumbnail(img Image) Form {
	f.Thumbnail = img
	return f
}

// WithScreenshot overwrites a single screenshot slot.
func (f Form) WithScreenshot(slot int, img Image) (Form, error) {
	if slot < 0 || slot >= MaxScreenshots {
		return f, fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	f.Screenshots[slot] = img
	return f, nil
}

// TagList splits the comma-separated tags, dropping blanks.
func (f Form) TagList() []string {
	var tags []string
	for _, t := range strings.Split(f.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ScreenshotCount is the number of filled screenshot slots.
func (f Form) ScreenshotCount() int {
	n := 0
	for _, s := range f.Screenshots {
		if s.IsSet() {
			n++
		}
	}
	return n
}

// Payload is the form as submitted: fields of the inactive platform group,
// and sale fields when not for sale, are blanked.
func (f Form) Payload() Form {
	p := f
	switch p.PlatformType {
	case PlatformMobile:
		p.WebsiteURL = ""
	default:
		p.AppStoreLink = ""
		p.PlayStoreLink = ""
	}
	if !p.ForSale {
		p.Price = ""
		p.ContactEmail = ""
		p.WhatsappNumber = ""
	}
	return p
}
