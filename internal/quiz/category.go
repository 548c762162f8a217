package quiz

import "strings"

// Category is an exam subject area.
type Category string

const (
	CategoryEnglish Category = "English"
	CategoryMaths   Category = "Maths"
	CategoryVR      Category = "VR"
	CategoryNVR     Category = "NVR"
	CategorySpatial Category = "Spatial"
)

// Categories lists all subjects in home-screen order.
func Categories() []Category {
	return []Category{
		CategoryEnglish,
		CategoryMaths,
		CategoryVR,
		CategoryNVR,
		CategorySpatial,
	}
}

// Sequential reports whether this category fetches one question per
// round-trip. Image-based reasoning subjects are served that way; the
// rest deliver a full pool up front.
func (c Category) Sequential() bool {
	return c == CategoryNVR || c == CategorySpatial
}

// Slug returns the lowercase path segment used by the questions API.
func (c Category) Slug() string {
	return strings.ToLower(string(c))
}

// DisplayName returns the full subject name shown in menus.
func (c Category) DisplayName() string {
	switch c {
	case CategoryVR:
		return "Verbal Reasoning"
	case CategoryNVR:
		return "Non-Verbal Reasoning"
	case CategorySpatial:
		return "Spatial Reasoning"
	}
	return string(c)
}

// Description returns the one-line blurb shown on the home screen.
func (c Category) Description() string {
	switch c {
	case CategoryEnglish:
		return "Comprehension, writing prompts and word problems"
	case CategoryMaths:
		return "Arithmetic, charts and diagram questions"
	case CategoryVR:
		return "Verbal reasoning puzzles"
	case CategoryNVR:
		return "Non-verbal reasoning with picture sequences"
	case CategorySpatial:
		return "Spatial reasoning with shapes and rotations"
	}
	return ""
}

// ParseCategory maps a user-supplied name to a Category, ignoring case.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}
