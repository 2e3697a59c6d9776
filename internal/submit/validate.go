package submit

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// FieldError describes one incomplete or malformed field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every FieldError found in a form.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Check lists the required fields that are missing or malformed. The wizard
// never blocks on it; the review step shows the result as hints. Sale fields
// are only checked when the project is for sale, and only the active platform
// group is checked.
func (f Form) Check() ValidationErrors {
	var errs ValidationErrors
	add := func(field Field, msg string) {
		errs = append(errs, FieldError{Field: field.String(), Message: msg})
	}

	if strings.TrimSpace(f.Title) == "" {
		add(FieldTitle, "title is required")
	}
	if strings.TrimSpace(f.Description) == "" {
		add(FieldDescription, "description is required")
	}
	switch {
	case f.Category == "":
		add(FieldCategory, "category is required")
	case !IsCategory(f.Category):
		add(FieldCategory, fmt.Sprintf("unknown category %q", f.Category))
	}
	if f.PlatformType == PlatformWeb {
		switch {
		case strings.TrimSpace(f.WebsiteURL) == "":
			add(FieldWebsiteURL, "website URL is required")
		case !isHTTPURL(f.WebsiteURL):
			add(FieldWebsiteURL, "website URL must be an http(s) link")
		}
	}
	if !f.Thumbnail.IsSet() {
		errs = append(errs, FieldError{Field: "thumbnail", Message: "thumbnail is required"})
	}
	if f.ForSale {
		if p := strings.TrimSpace(f.Price); p == "" {
			add(FieldPrice, "price is required")
		} else if v, err := strconv.ParseFloat(p, 64); err != nil || v < 0 {
			add(FieldPrice, "price must be a non-negative number")
		}
		switch {
		case strings.TrimSpace(f.ContactEmail) == "":
			add(FieldContactEmail, "contact email is required")
		case !emailPattern.MatchString(f.ContactEmail):
			add(FieldContactEmail, "contact email is not valid")
		}
	}
	return errs
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
