package httpserver

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billsplit/internal/platform/config"
)

func TestNew(t *testing.T) {
	cfg := config.ServerConfig{
		Addr:              ":9090",
		ReadHeaderTimeout: 3 * time.Second,
		RequestTimeout:    10 * time.Second,
	}

	t.Run("derives deadlines from config", func(t *testing.T) {
		srv := New(cfg, http.NotFoundHandler(), nil)
		assert.Equal(t, ":9090", srv.Addr)
		assert.Equal(t, 3*time.Second, srv.ReadHeaderTimeout)
		assert.Equal(t, 15*time.Second, srv.WriteTimeout)
		assert.Equal(t, idleTimeout, srv.IdleTimeout)
		assert.Nil(t, srv.ErrorLog)
	})

	t.Run("no request timeout leaves writes unbounded", func(t *testing.T) {
		srv := New(config.ServerConfig{Addr: ":0"}, http.NotFoundHandler(), nil)
		assert.Zero(t, srv.WriteTimeout)
	})

	t.Run("server errors go to the structured logger", func(t *testing.T) {
		var buf bytes.Buffer
		srv := New(cfg, http.NotFoundHandler(), slog.New(slog.NewTextHandler(&buf, nil)))
		require.NotNil(t, srv.ErrorLog)
		srv.ErrorLog.Print("tls handshake error")
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "tls handshake error")
	})
}
