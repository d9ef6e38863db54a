// Package document provides an HTML document with a single-threaded click
// event model, standing in for the page a navigation menu is rendered into.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrNoBody is returned when an operation needs a <body> and the document has none.
var ErrNoBody = errors.New("document has no body")

// Document is a parsed HTML document with attached event listeners.
type Document struct {
	doc *goquery.Document

	mu        sync.Mutex // protects listeners
	listeners map[string]map[*html.Node]binding

	dispatch sync.Mutex // serializes listener execution
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &Document{
		doc:       doc,
		listeners: make(map[string]map[*html.Node]binding),
	}, nil
}

// ParseString parses an HTML document held in s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Find returns the elements matching the CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Exists reports whether any element matches selector.
func (d *Document) Exists(selector string) bool {
	return d.doc.Find(selector).Length() > 0
}

// SetInnerHTML replaces the content of every element matching selector.
// It returns the number of elements updated.
func (d *Document) SetInnerHTML(selector, fragment string) int {
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return 0
	}

	sel.SetHtml(fragment)
	d.release()

	return sel.Length()
}

// PrependToBody inserts fragment as the first content of <body>.
func (d *Document) PrependToBody(fragment string) error {
	body := d.doc.Find("body")
	if body.Length() == 0 {
		return ErrNoBody
	}

	body.First().PrependHtml(fragment)

	return nil
}

// Remove detaches every element matching selector and releases their listeners.
// It returns the number of elements removed.
func (d *Document) Remove(selector string) int {
	n := d.doc.Find(selector).Remove().Length()
	if n > 0 {
		d.release()
	}
	return n
}

// Render writes the document as HTML to w.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("failed to render document: %w", err)
		}
	}
	return nil
}

// HTML returns the document serialized as a string.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// attached reports whether n is still part of the document tree.
func (d *Document) attached(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p.Type == html.DocumentNode {
			return len(d.doc.Nodes) > 0 && p == d.doc.Nodes[0]
		}
	}
	return false
}
