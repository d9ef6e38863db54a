package site

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sitenav/pkg/document"
	"github.com/mchmarny/sitenav/pkg/metric"
	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/navbar"
)

const (
	placeholderPage = `<!DOCTYPE html><html><body><div id="navbar-placeholder"></div><main>x</main></body></html>`
	bodyOnlyPage    = `<!DOCTYPE html><html><body><main>x</main></body></html>`
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func readDoc(t *testing.T, root, rel string) *document.Document {
	t.Helper()
	f, err := os.Open(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	defer f.Close()

	d, err := document.Parse(f)
	require.NoError(t, err)
	return d
}

func newSite(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	writeFile(t, src, "index.html", placeholderPage)
	writeFile(t, src, "why-hire-me.html", placeholderPage)
	writeFile(t, src, "portfolio-details.html", bodyOnlyPage)
	writeFile(t, src, "articles/my-post.html", placeholderPage)
	writeFile(t, src, "assets/css/main.css", "body{}")
	writeFile(t, src, ".git/HEAD", "ref")
	return src
}

func TestBuild(t *testing.T) {
	src := newSite(t)
	out := t.TempDir()
	reg := prometheus.NewRegistry()
	var logs bytes.Buffer

	b := &Builder{
		Src:         src,
		Out:         out,
		Site:        nav.DefaultSite,
		Exclude:     []string{".git/**"},
		Concurrency: 2,
		Logger:      slog.New(slog.NewTextHandler(&logs, nil)),
		Counters:    metric.NewNavCounters(reg),
	}

	report, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Report{Pages: 4, Fallbacks: 1, Copied: 1}, report)
	assert.FileExists(t, filepath.Join(out, "assets", "css", "main.css"))
	assert.NoFileExists(t, filepath.Join(out, ".git", "HEAD"))
	assert.Contains(t, logs.String(), "navbar placeholder not found")

	home := readDoc(t, out, "index.html")
	assert.Equal(t, 8, home.Find(navbar.LinkSelector).Length())
	assert.Equal(t, "Home", home.Find(navbar.LinkSelector+".active").Text())

	post := readDoc(t, out, "articles/my-post.html")
	assert.Equal(t, "Articles", post.Find(navbar.LinkSelector+".active").Text())
	href, _ := post.Find(navbar.LinkSelector).Eq(2).Attr("href")
	assert.Equal(t, "../why-hire-me.html", href)

	details := readDoc(t, out, "portfolio-details.html")
	assert.Equal(t, "header", details.Find("body").Children().First().Nodes[0].Data)
	assert.Equal(t, 0, details.Find(navbar.LinkSelector+".active").Length())

	n, err := testutil.GatherAndCount(reg, "sitenav_pages_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Builder{Src: newSite(t), Out: t.TempDir()}
	_, err := b.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildSourceErrors(t *testing.T) {
	_, err := (&Builder{Src: filepath.Join(t.TempDir(), "missing"), Out: t.TempDir()}).Build(context.Background())
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "f.html")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	_, err = (&Builder{Src: file, Out: t.TempDir()}).Build(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotDir)
}

func TestBuildSkipsNestedOut(t *testing.T) {
	src := newSite(t)
	out := filepath.Join(src, "_site")
	writeFile(t, out, "stale.html", placeholderPage)

	b := &Builder{Src: src, Out: out, Exclude: []string{".git/**"}}
	report, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, report.Pages)
}

func TestLocation(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"", "index.html", "/index.html"},
		{"", "articles/post.html", "/articles/post.html"},
		{"/sajeevan16.github.io", "index.html", "/sajeevan16.github.io/index.html"},
		{"/sajeevan16.github.io/", "articles/post.html", "/sajeevan16.github.io/articles/post.html"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, (&Builder{BasePath: tt.base}).Location(tt.rel))
	}
}
