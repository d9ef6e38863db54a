package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnIsIdempotent(t *testing.T) {
	d := mustParse(t, page)

	calls := 0
	l := func(*Event) { calls++ }

	assert.Equal(t, 2, d.On("a.l", EventClick, "count", l))
	assert.Equal(t, 2, d.On("a.l", EventClick, "count", l))
	assert.Equal(t, 2, d.ListenerCount("count"))

	d.Click("a.l")
	assert.Equal(t, 1, calls)
}

func TestDispatchOrderAndKeys(t *testing.T) {
	d := mustParse(t, page)

	var order []string
	d.On("a.l", EventClick, "b", func(*Event) { order = append(order, "b") })
	d.On("a.l", EventClick, "a", func(*Event) { order = append(order, "a") })
	d.On("a.l", "hover", "c", func(*Event) { order = append(order, "c") })

	e := d.Click("a.l")

	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, EventClick, e.Type)
	assert.False(t, e.DefaultPrevented())
}

func TestPreventDefault(t *testing.T) {
	d := mustParse(t, page)

	d.On("a.l", EventClick, "stop", func(e *Event) { e.PreventDefault() })

	assert.True(t, d.Click("a.l").DefaultPrevented())
}

func TestDispatchWithoutTarget(t *testing.T) {
	d := mustParse(t, page)

	e := d.Click("#nothing")
	assert.Equal(t, 0, e.Target.Length())
}

func TestOnMissingSelector(t *testing.T) {
	d := mustParse(t, page)

	assert.Equal(t, 0, d.On("#nothing", EventClick, "k", func(*Event) {}))
	assert.Equal(t, 0, d.ListenerCount("k"))
}

func TestOff(t *testing.T) {
	d := mustParse(t, page)

	calls := 0
	d.On("a.l", EventClick, "k", func(*Event) { calls++ })
	d.Off("k")
	d.Click("a.l")

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, d.ListenerCount("k"))
}

func TestDetachedNodesReleaseListeners(t *testing.T) {
	d := mustParse(t, page)

	d.SetInnerHTML("#slot", `<a class="x">1</a><a class="x">2</a>`)
	assert.Equal(t, 2, d.On("#slot a.x", EventClick, "x", func(*Event) {}))

	d.SetInnerHTML("#slot", `<a class="x">3</a>`)
	assert.Equal(t, 0, d.ListenerCount("x"))

	assert.Equal(t, 1, d.On("#slot a.x", EventClick, "x", func(*Event) {}))
	assert.Equal(t, 1, d.ListenerCount("x"))
}

func TestOnFirst(t *testing.T) {
	d := mustParse(t, page)

	assert.Equal(t, 1, d.OnFirst("a.l", EventClick, "first", func(*Event) {}))
	assert.Equal(t, 1, d.ListenerCount("first"))

	assert.Equal(t, 0, d.OnFirst("#nothing", EventClick, "none", func(*Event) {}))
}
