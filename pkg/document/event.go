package document

import (
	"maps"
	"slices"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// EventClick is the only event type produced by user interaction.
const EventClick = "click"

// Event is delivered to listeners during Dispatch.
type Event struct {
	// Type is the event name, e.g. EventClick.
	Type string

	// Target is the element the event was dispatched to.
	Target *goquery.Selection

	defaultPrevented bool
}

// PreventDefault suppresses the default action of the event, e.g. following a link.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener handles an event.
type Listener func(*Event)

type binding struct {
	event    string
	listener Listener
}

// On binds listener to event on every element matching selector under key.
// A node holds at most one listener per key: binding again replaces it, so
// repeated calls never accumulate handlers. It returns the number of bound nodes.
func (d *Document) On(selector, event, key string, listener Listener) int {
	return d.bind(d.doc.Find(selector), event, key, listener)
}

// OnFirst is like On but binds only the first element matching selector.
func (d *Document) OnFirst(selector, event, key string, listener Listener) int {
	return d.bind(d.doc.Find(selector).First(), event, key, listener)
}

func (d *Document) bind(sel *goquery.Selection, event, key string, listener Listener) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.releaseLocked()

	if sel.Length() == 0 {
		return 0
	}

	bound, ok := d.listeners[key]
	if !ok {
		bound = make(map[*html.Node]binding)
		d.listeners[key] = bound
	}

	for _, n := range sel.Nodes {
		bound[n] = binding{event: event, listener: listener}
	}

	return sel.Length()
}

// Off removes every listener bound under key.
func (d *Document) Off(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.listeners, key)
}

// ListenerCount returns the number of nodes holding a listener under key.
func (d *Document) ListenerCount(key string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.releaseLocked()

	return len(d.listeners[key])
}

// Dispatch delivers event to the first element matching selector and returns it
// after every listener ran. Listeners run one at a time, to completion, and must
// not dispatch recursively.
func (d *Document) Dispatch(selector, event string) *Event {
	sel := d.doc.Find(selector).First()
	e := &Event{Type: event, Target: sel}
	if sel.Length() == 0 {
		return e
	}

	listeners := d.listenersFor(sel.Nodes[0], event)

	d.dispatch.Lock()
	defer d.dispatch.Unlock()

	for _, l := range listeners {
		l(e)
	}

	return e
}

// Click dispatches a click event to the first element matching selector.
func (d *Document) Click(selector string) *Event {
	return d.Dispatch(selector, EventClick)
}

// listenersFor collects the listeners for event on n in key order.
func (d *Document) listenersFor(n *html.Node, event string) []Listener {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []Listener
	for _, k := range slices.Sorted(maps.Keys(d.listeners)) {
		if b, ok := d.listeners[k][n]; ok && b.event == event {
			out = append(out, b.listener)
		}
	}
	return out
}

// release drops listeners bound to nodes no longer in the tree.
func (d *Document) release() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.releaseLocked()
}

func (d *Document) releaseLocked() {
	for key, bound := range d.listeners {
		for n := range bound {
			if !d.attached(n) {
				delete(bound, n)
			}
		}
		if len(bound) == 0 {
			delete(d.listeners, key)
		}
	}
}
