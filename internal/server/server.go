package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	session    *Session
	exporter   *export.Exporter
}

// Config holds server configuration
type Config struct {
	Port           int
	DatabaseURL    string
	BrowserTimeout time.Duration
	SaveDebounce   time.Duration
}

// New creates a new server instance. DatabaseURL may be empty, in which
// case the server runs in-memory only and save/load return errors.
func New(cfg Config) (*Server, error) {
	s := &Server{}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	var store Store
	if s.db != nil {
		store = s.db
	}
	s.session = NewSession(store, cfg.SaveDebounce)

	rasterizer := export.NewChromeRasterizer()
	if cfg.BrowserTimeout > 0 {
		rasterizer.Timeout = cfg.BrowserTimeout
	}
	s.exporter = export.New(rasterizer)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Record endpoints
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume/{section}", s.handleReplaceSection)
	mux.HandleFunc("GET /resume/preview", s.handlePreview)

	// Score and suggestion endpoints
	mux.HandleFunc("GET /resume/score", s.handleScore)
	mux.HandleFunc("GET /resume/suggestions", s.handleListSuggestions)
	mux.HandleFunc("POST /resume/suggestions/{id}/apply", s.handleApplySuggestion)
	mux.HandleFunc("POST /resume/suggestions/{id}/dismiss", s.handleDismissSuggestion)

	// Persistence endpoints
	mux.HandleFunc("POST /resume/save", s.handleSave)
	mux.HandleFunc("POST /resume/load", s.handleLoad)

	// Export endpoint
	mux.HandleFunc("POST /resume/export/{format}", s.handleExport)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for browser-backed exports
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.session.Close()
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// serveError maps a domain error to its HTTP status and writes it.
func (s *Server) serveError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
