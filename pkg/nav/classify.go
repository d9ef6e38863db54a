package nav

import "strings"

const (
	// SectionMarker is the path segment denoting the one nested section of the site.
	SectionMarker = "/articles/"

	// DefaultRoot is the location the site is served from when hosted as a project page.
	DefaultRoot = "/sajeevan16.github.io/"

	// ParentPrefix is prepended to targets on pages one level below the site root.
	ParentPrefix = "../"

	homeDocument = "index.html"
)

// Variant selects which navigation menu is rendered.
type Variant int

const (
	// Primary is the main site menu.
	Primary Variant = iota
	// Secondary is the menu of article and career-track pages.
	Secondary
)

// String returns the lowercase name of the variant.
func (v Variant) String() string {
	if v == Secondary {
		return "secondary"
	}
	return "primary"
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// secondaryKeywords select the Secondary variant when found anywhere in a location.
// Matching is substring based, so "/not-articles-related.html" is Secondary too.
var secondaryKeywords = []string{
	"articles",
	"why-hire-me",
	"technical-skills",
	"leadership-projects",
	"career-journey",
}

// Classification is the result of classifying a location.
type Classification struct {
	// Variant is the menu to render.
	Variant Variant `json:"variant"`

	// IsHome reports whether the location is the home view. Always false for Secondary.
	IsHome bool `json:"is_home"`

	// BasePrefix is prepended to every non-anchor target.
	BasePrefix string `json:"base_prefix"`

	// Deep is set when the location nests below the section by more than one level.
	// Targets are still built with a single ParentPrefix.
	Deep bool `json:"deep,omitempty"`
}

// Site carries the hosting parameters the classifier depends on.
type Site struct {
	// Root is the location that is treated as the home view besides "/" and index.html.
	Root string
}

// DefaultSite is the site used by the package-level functions.
var DefaultSite = Site{Root: DefaultRoot}

// Classify classifies location using DefaultSite.
func Classify(location string) Classification {
	return DefaultSite.Classify(location)
}

// Classify decides the menu variant, home status and base prefix for location.
// It is total: any string, including the empty one, yields a result.
func (s Site) Classify(location string) Classification {
	var c Classification

	segments := strings.Split(location, "/")
	if strings.Contains(location, SectionMarker) && len(segments) > 2 {
		c.BasePrefix = ParentPrefix
		c.Deep = sectionDepth(location) > 1
	}

	if hasSecondaryKeyword(location) {
		c.Variant = Secondary
		return c
	}

	c.IsHome = strings.HasSuffix(location, homeDocument) ||
		strings.HasSuffix(location, "/") ||
		(s.Root != "" && location == s.Root)

	return c
}

func hasSecondaryKeyword(location string) bool {
	for _, kw := range secondaryKeywords {
		if strings.Contains(location, kw) {
			return true
		}
	}
	return false
}

// sectionDepth counts the directories between the section marker and the file name.
func sectionDepth(location string) int {
	i := strings.Index(location, SectionMarker)
	if i < 0 {
		return 0
	}
	rest := location[i+len(SectionMarker):]
	return strings.Count(rest, "/") + 1
}
