package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html><html><head><title>t</title></head><body>` +
	`<div id="slot"><p>old</p></div><main><a class="l" href="#a">a</a><a class="l" href="#b">b</a></main>` +
	`</body></html>`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	d, err := ParseString(s)
	require.NoError(t, err)
	return d
}

func TestSetInnerHTML(t *testing.T) {
	d := mustParse(t, page)

	assert.Equal(t, 1, d.SetInnerHTML("#slot", `<span id="new">x</span>`))
	assert.Equal(t, 1, d.SetInnerHTML("#slot", `<span id="new">y</span>`))

	assert.Equal(t, 1, d.Find("#new").Length())
	assert.Equal(t, "y", d.Find("#new").Text())
	assert.False(t, d.Exists("#slot p"))

	assert.Equal(t, 0, d.SetInnerHTML("#missing", "<b></b>"))
}

func TestPrependToBody(t *testing.T) {
	d := mustParse(t, page)

	require.NoError(t, d.PrependToBody(`<header id="h"></header>`))

	first := d.Find("body").Children().First()
	id, _ := first.Attr("id")
	assert.Equal(t, "h", id)
}

func TestPrependToBodyWithoutBody(t *testing.T) {
	d := mustParse(t, page)
	d.Find("body").Remove()

	assert.ErrorIs(t, d.PrependToBody("<b></b>"), ErrNoBody)
}

func TestRender(t *testing.T) {
	d := mustParse(t, page)

	out, err := d.HTML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<div id="slot"><p>old</p></div>`)
}

func TestRemove(t *testing.T) {
	d := mustParse(t, page)

	assert.Equal(t, 2, d.Remove("a.l"))
	assert.False(t, d.Exists("a.l"))
	assert.Equal(t, 0, d.Remove("a.l"))
}
