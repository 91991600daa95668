// Package server assembles the MCP server: builds the remote client from
// configuration, registers the tool surface, and serves it over stdio
// (default) or HTTP. Logging goes to stderr only — stdout belongs to the
// stdio transport.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matiasleandrokruk/membridge/internal/api/tools"
	"github.com/matiasleandrokruk/membridge/internal/infra/config"
	"github.com/matiasleandrokruk/membridge/internal/infra/memoryapi"
	"github.com/matiasleandrokruk/membridge/internal/version"
)

// Server wraps the MCP server and its per-process session identity.
type Server struct {
	mcp       *mcp.Server
	sessionID string
}

// New builds the server: one client, one session ID, ten tools.
func New(cfg config.Config) *Server {
	client := memoryapi.NewClient(cfg.APIURL, cfg.APIKey)
	sessionID := uuid.New().String()

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "membridge",
		Version: version.Version,
	}, nil)
	tools.New(client, sessionID).Register(srv)

	return &Server{mcp: srv, sessionID: sessionID}
}

// SessionID returns the identifier generated for this process, attached to
// every session handoff it records.
func (s *Server) SessionID() string {
	return s.sessionID
}

// Run serves MCP over stdio until ctx is cancelled or the stream closes.
func (s *Server) Run(ctx context.Context) error {
	log.Printf("serving MCP on stdio (session %s)", s.sessionID)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP surface for --http mode: the MCP streamable
// endpoint plus a liveness probe.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) //nolint:errcheck
	})
	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil))
	return r
}

// RunHTTP serves MCP over HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("http shutdown error: %v", err)
		}
	}()

	log.Printf("serving MCP on http %s (session %s)", addr, s.sessionID)
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
