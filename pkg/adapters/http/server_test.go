package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/statusline/internal/logging"
	statushttp "github.com/aretw0/statusline/pkg/adapters/http"
	"github.com/aretw0/statusline/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedStatus string

func (s fixedStatus) String() string { return string(s) }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg, "")
	m.ObserveFrame(time.Millisecond, 1)

	srv := httptest.NewServer(statushttp.NewHandler(reg, fixedStatus("\x1b[32m[****]\x1b[0m 50%\n2 / 4 items")))
	t.Cleanup(srv.Close)
	return srv
}

func TestHandler_Metrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "statusline_frames_total 1")
}

func TestHandler_Status(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got statushttp.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "[****] 50%\n2 / 4 items", got.Text)
}

func TestHandler_Healthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/status", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	errCh := make(chan error, 1)

	go func() {
		errCh <- statushttp.Serve(ctx, "127.0.0.1:0", statushttp.NewHandler(prometheus.NewRegistry(), fixedStatus("ok")),
			logging.NewNop(), func(a net.Addr) { addrCh <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-errCh:
		t.Fatalf("Serve failed early: %v", err)
	case <-time.After(time.Second):
		t.Fatal("server never became ready")
	}

	resp, err := http.Get("http://" + addr.String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_BadAddress(t *testing.T) {
	err := statushttp.Serve(context.Background(), "not-an-address", http.NotFoundHandler(), logging.NewNop(), nil)
	assert.Error(t, err)
}
