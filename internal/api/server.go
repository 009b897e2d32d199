// Package api exposes the carrier demo HTTP surface: carrier verification,
// load search and recommendations, negotiation evaluation, and the
// analytics dashboard.
package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/board"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/fmcsa"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/httpx"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/timeouts"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/storage"
)

// CarrierLookup resolves carrier authority records by MC number.
type CarrierLookup interface {
	CarrierByMC(ctx context.Context, mc string) (*fmcsa.Carrier, error)
}

// Config defines the inputs for the API server.
type Config struct {
	Addr     string
	APIKey   string
	Board    *board.Board
	Carriers CarrierLookup
	Store    storage.Store
	// Rand drives load matching. Handlers share it across requests, so it
	// must be safe for concurrent use; random.NewRand builds a suitable one.
	Rand *rand.Rand
	// Now supplies the reference time; defaults to time.Now.
	Now func() time.Time
}

// Server hosts the carrier demo HTTP endpoints.
type Server struct {
	addr       string
	apiKey     string
	board      *board.Board
	carriers   CarrierLookup
	store      storage.Store
	rng        *rand.Rand
	now        func() time.Time
	httpServer *http.Server
}

// New validates the configuration and builds a Server.
func New(cfg Config) (*Server, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, fmt.Errorf("listen address is required")
	}
	if cfg.Board == nil {
		return nil, fmt.Errorf("load board is required")
	}
	if cfg.Carriers == nil {
		return nil, fmt.Errorf("carrier lookup is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Rand == nil {
		return nil, fmt.Errorf("random source is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	s := &Server{
		addr:     cfg.Addr,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		board:    cfg.Board,
		carriers: cfg.Carriers,
		store:    cfg.Store,
		rng:      cfg.Rand,
		now:      now,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return s, nil
}

// Handler builds the routed and instrumented HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /verify_fmcsa", s.handleVerifyCarrier)
	mux.HandleFunc("GET /loads/search", s.handleSearchLoads)
	mux.HandleFunc("GET /loads/recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /loads/match", s.handleMatchLoad)
	mux.HandleFunc("POST /negotiate", s.handleNegotiate)
	mux.HandleFunc("POST /negotiations", s.handleRecordNegotiation)
	mux.HandleFunc("GET /negotiations", s.handleListNegotiations)
	mux.HandleFunc("POST /calls/log", s.handleLogCall)
	mux.HandleFunc("GET /dashboard", s.handleDashboard)

	handler := httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		s.requireAPIKey(),
	)
	return otelhttp.NewHandler(handler, "carrier-api")
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	log.Printf("api listening on %s", s.addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
