package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"billsplit/internal/platform/config"
)

// idleTimeout caps keep-alive connections between requests.
const idleTimeout = 2 * time.Minute

// New builds the HTTP server. Write deadlines leave headroom over the request
// timeout middleware so a timed-out handler can still send its 503.
func New(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	if cfg.RequestTimeout > 0 {
		srv.WriteTimeout = cfg.RequestTimeout + 5*time.Second
	}
	if logger != nil {
		srv.ErrorLog = slog.NewLogLogger(logger.Handler(), slog.LevelWarn)
	}
	return srv
}
