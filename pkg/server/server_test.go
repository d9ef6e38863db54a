package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sitenav/pkg/metric"
	"github.com/mchmarny/sitenav/pkg/nav"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(b)
}

func TestServe(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o600))

	reg := prometheus.NewRegistry()
	metric.NewNavCounters(reg).Pages.Increment("rendered")

	srv := New(
		WithPort(0),
		WithSimpleHealth(),
		WithRegistry(reg),
		WithPrometheusMetrics(),
		WithHandler("/nav", nav.DefaultSite.Handler()),
		WithSiteDir(dir),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	require.Eventually(t, srv.IsRunning, 2*time.Second, 10*time.Millisecond)
	base := "http://" + srv.Addr()

	code, body := get(t, base+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	code, body = get(t, base+"/index.html")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "home")

	code, body = get(t, base+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `sitenav_pages_total{outcome="rendered"} 1`)

	code, body = get(t, base+"/nav?path=/why-hire-me.html")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"variant":"secondary"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.False(t, srv.IsRunning())
	assert.Empty(t, srv.Addr())
}

func TestServeBadTLS(t *testing.T) {
	srv := New(WithPort(0), WithTLS(TLSConfig{CertFile: "missing.pem", KeyFile: "missing.key"}))

	err := srv.Serve(context.Background())
	assert.ErrorContains(t, err, "failed to load TLS certificate")
}

func TestOptions(t *testing.T) {
	srv, ok := New(
		WithHost("0.0.0.0"),
		WithPort(8080),
		WithReadTimeout(time.Second),
		WithWriteTimeout(2*time.Second),
		WithIdleTimeout(3*time.Second),
		WithShutdownTimeout(4*time.Second),
		WithMaxHeaderBytes(512),
		WithTLS(TLSConfig{CertFile: "c.pem", KeyFile: "k.pem"}),
	).(*server)
	require.True(t, ok)

	assert.Equal(t, "0.0.0.0", srv.host)
	assert.Equal(t, 8080, srv.port)
	assert.Equal(t, time.Second, srv.readTimeout)
	assert.Equal(t, 2*time.Second, srv.writeTimeout)
	assert.Equal(t, 3*time.Second, srv.idleTimeout)
	assert.Equal(t, 4*time.Second, srv.shutdownTimeout)
	assert.Equal(t, 512, srv.maxHeaderBytes)
	require.NotNil(t, srv.tlsConfig)
	assert.Equal(t, "c.pem", srv.tlsConfig.CertFile)
}
