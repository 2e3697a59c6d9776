package submit

// Categories is the fixed set a project may be filed under, in display order.
var Categories = []string{
	"AI Tools",
	"Productivity",
	"Social",
	"Entertainment",
	"Education",
	"Developer Tools",
}

// IsCategory reports whether name is one of Categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryIndex returns the position of name in Categories, or -1.
func CategoryIndex(name string) int {
	for i, c := range Categories {
		if c == name {
			return i
		}
	}
	return -1
}
