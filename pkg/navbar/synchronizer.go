// Package navbar renders a resolved navigation menu into a document and keeps
// the collapsible mobile menu consistent with clicks on the toggle and links.
package navbar

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mchmarny/sitenav/pkg/document"
	"github.com/mchmarny/sitenav/pkg/metric"
	"github.com/mchmarny/sitenav/pkg/nav"
)

const (
	keyToggle   = "navbar.toggle"
	keyCollapse = "navbar.collapse"

	modePlaceholder = "placeholder"
	modeBody        = "body"

	stateOpen   = "open"
	stateClosed = "closed"
)

// Synchronizer renders the menu and owns the mobile menu toggle state.
type Synchronizer struct {
	log      *slog.Logger
	counters metric.NavCounters

	mu   sync.Mutex // protects open
	open bool
}

// Option is a functional option for configuring the Synchronizer.
type Option func(*Synchronizer)

// WithLogger sets the logger diagnostics are written to.
// If not specified, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(s *Synchronizer) { s.log = l }
}

// WithCounters sets the counters updated on render and toggle.
func WithCounters(c metric.NavCounters) Option {
	return func(s *Synchronizer) { s.counters = c }
}

// New creates a Synchronizer with the provided options.
func New(opts ...Option) *Synchronizer {
	s := &Synchronizer{
		log:      slog.Default(),
		counters: metric.NoopNavCounters(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open reports whether the mobile menu is currently expanded.
func (s *Synchronizer) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.open
}

// Render writes the menu into the placeholder of doc, or at the start of its
// body when the placeholder is missing, and binds the interaction handlers.
// Rendering again replaces the previous menu and its handlers.
func (s *Synchronizer) Render(doc *document.Document, m nav.Menu) error {
	markup, err := Fragment(m.Entries)
	if err != nil {
		return err
	}

	mode := modePlaceholder
	if doc.SetInnerHTML(PlaceholderSelector, markup) == 0 {
		mode = modeBody
		s.log.Warn("navbar placeholder not found, prepending to body",
			"location", m.Location)

		// only a header rendered by an earlier call is replaced
		doc.Remove("body > " + HeaderSelector)
		if err := doc.PrependToBody(markup); err != nil {
			return fmt.Errorf("failed to insert navbar: %w", err)
		}
	}

	s.log.Debug("navbar rendered",
		"location", m.Location,
		"variant", m.Classification.Variant.String(),
		"home", m.Classification.IsHome,
		"base_prefix", m.Classification.BasePrefix,
		"active", nav.Active(m.Entries),
		"mode", mode)

	if m.Classification.Deep {
		s.log.Debug("location nested deeper than one level, targets use a single parent prefix",
			"location", m.Location)
	}

	s.counters.Renders.Increment(m.Classification.Variant.String(), mode)

	s.mu.Lock()
	s.open = false
	s.mu.Unlock()

	s.bind(doc)

	return nil
}

// bind attaches the toggle and collapse listeners under fixed keys so that
// a node never holds more than one of each.
func (s *Synchronizer) bind(doc *document.Document) {
	doc.Off(keyToggle)
	doc.Off(keyCollapse)

	doc.OnFirst(ToggleSelector, document.EventClick, keyToggle, func(*document.Event) {
		s.toggle(doc)
	})

	doc.On(LinkSelector, document.EventClick, keyCollapse, func(*document.Event) {
		s.collapse(doc)
	})
}

func (s *Synchronizer) toggle(doc *document.Document) {
	s.mu.Lock()
	s.open = !s.open
	open := s.open
	s.mu.Unlock()

	doc.Find(HeaderSelector).First().ToggleClass(classOpen)
	doc.Find(ToggleSelector).First().ToggleClass(classIconList).ToggleClass(classIconClose)

	if open {
		s.counters.Toggles.Increment(stateOpen)
	} else {
		s.counters.Toggles.Increment(stateClosed)
	}
}

// collapse closes the mobile menu if it is open. It never prevents navigation.
func (s *Synchronizer) collapse(doc *document.Document) {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return
	}
	s.open = false
	s.mu.Unlock()

	doc.Find(HeaderSelector).First().RemoveClass(classOpen)
	doc.Find(ToggleSelector).First().AddClass(classIconList).RemoveClass(classIconClose)

	s.counters.Toggles.Increment(stateClosed)
}
