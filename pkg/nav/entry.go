package nav

// Page identifies a navigation destination.
type Page int

// Pages of the site, in no particular menu order; see primaryPages and secondaryPages.
const (
	PageHome Page = iota
	PageAbout
	PageExperience
	PageProjects
	PageArticles
	PageGallery
	PageCertifications
	PageContact
	PageWhyHireMe
	PageTechnicalSkills
	PageLeadership
	PageCareerJourney
)

// pageInfo is the static description of a page.
type pageInfo struct {
	label  string
	icon   string
	file   string // standalone document, empty for sections of the home document
	anchor string // in-page anchor on the home document
}

var pages = map[Page]pageInfo{
	PageHome:            {label: "Home", icon: "bi-house", file: homeDocument, anchor: "hero"},
	PageAbout:           {label: "About", icon: "bi-person", anchor: "about"},
	PageExperience:      {label: "Experience", icon: "bi-file-earmark-text", anchor: "resume"},
	PageProjects:        {label: "Projects", icon: "bi-code-square", anchor: "portfolio"},
	PageArticles:        {label: "Articles", icon: "bi-newspaper", file: "articles.html"},
	PageGallery:         {label: "Gallery", icon: "bi-images", anchor: "gallery"},
	PageCertifications:  {label: "Certifications", icon: "bi-award", anchor: "services"},
	PageContact:         {label: "Contact", icon: "bi-envelope", anchor: "contact"},
	PageWhyHireMe:       {label: "Why Hire Me", icon: "bi-trophy", file: "why-hire-me.html"},
	PageTechnicalSkills: {label: "Technical Skills", icon: "bi-code-slash", file: "technical-skills.html"},
	PageLeadership:      {label: "Leadership", icon: "bi-people", file: "leadership-projects.html"},
	PageCareerJourney:   {label: "Career Journey", icon: "bi-signpost", file: "career-journey.html"},
}

var (
	primaryPages = []Page{
		PageHome, PageAbout, PageExperience, PageProjects,
		PageArticles, PageGallery, PageCertifications, PageContact,
	}

	secondaryPages = []Page{
		PageHome, PageArticles, PageWhyHireMe,
		PageTechnicalSkills, PageLeadership, PageCareerJourney,
	}
)

// String returns the page label.
func (p Page) String() string {
	return pages[p].label
}

// Entry represents an individual link in the navigation menu.
type Entry struct {
	// Page identifies the destination.
	Page Page `json:"-"`

	// Label is the visible text of the link.
	Label string `json:"label"`

	// Icon is the bootstrap-icons glyph class.
	Icon string `json:"icon"`

	// Target is the href, either a document path or an in-page anchor.
	Target string `json:"target"`

	// Active marks the entry as the current page.
	Active bool `json:"active,omitempty"`
}

func newEntry(p Page, target string) Entry {
	info := pages[p]
	return Entry{
		Page:   p,
		Label:  info.label,
		Icon:   info.icon,
		Target: target,
	}
}
