// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the drug search gateway over HTTP.
package server

import (
	"context"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/pdiddy/pharmacy-genius/internal/search"
	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

// Server provides the HTTP interface to the search gateway. It holds no
// mutable per-request state; concurrent requests share only the read-only
// gateway handle.
type Server struct {
	gateway *search.Gateway
	cfg     types.ServerConfig
	version string
	router  *httprouter.Router
	server  *http.Server
}

// New constructs a server around gateway.
func New(gateway *search.Gateway, cfg types.ServerConfig, version string) *Server {
	s := &Server{
		gateway: gateway,
		cfg:     cfg,
		version: version,
		router:  httprouter.New(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/search/drug", s.handleSearchDrug)
	s.router.GET("/search/quick", s.handleQuickSearch)
	s.router.GET("/info", s.handleInfo)

	if s.cfg.AllowCORS {
		s.router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			setCORSHeaders(w)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// Handler exposes the routing handler for embedding or testing.
func (s *Server) Handler() http.Handler {
	if s.cfg.AllowCORS {
		return corsMiddleware(s.router)
	}
	return s.router
}

// Start launches the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := s.cfg.Addr
	if addr == "" {
		addr = ":8000"
	}

	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	log.Printf("Starting pharmacy-genius server on %s", addr)
	return s.server.ListenAndServe()
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

// corsMiddleware applies the allow-all CORS posture of the original
// deployment to every response.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)
		next.ServeHTTP(w, r)
	})
}
