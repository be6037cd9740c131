// Package server provides the HTTP JSON API for the talent directory:
// candidate intake and hybrid search.
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

	"github.com/google/uuid"

	"github.com/morgan/talent-directory/internal/db"
	"github.com/morgan/talent-directory/internal/embedding"
	"github.com/morgan/talent-directory/internal/intake"
	"github.com/morgan/talent-directory/internal/search"
	"github.com/morgan/talent-directory/internal/vocab"
)

// RecordStore is what the server needs from storage: the retrieval contract
// plus record fetch for review diffs. Writing records back is the admin
// publish flow's concern, not this server's.
type RecordStore interface {
	search.Store
	GetPersonRecord(ctx context.Context, id uuid.UUID) (map[string]any, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	records    RecordStore
	pipeline   *intake.Pipeline
	engine     *search.Engine
	gateway    embedding.Gateway
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string // empty disables semantic search
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var gateway embedding.Gateway
	if cfg.APIKey != "" {
		gemini, err := embedding.NewGemini(ctx, cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create embedding gateway: %w", err)
		}
		gateway = gemini
	}

	s := newWithStore(database, gateway)
	s.db = database

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newWithStore wires the pipeline and search engine over an arbitrary store;
// tests use it to avoid a real database.
func newWithStore(records RecordStore, gateway embedding.Gateway) *Server {
	return &Server{
		records:  records,
		pipeline: intake.New(vocab.Default()),
		engine:   search.NewEngine(records, gateway),
		gateway:  gateway,
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /intake", s.handleIntake)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	if s.gateway != nil {
		if err := s.gateway.Close(); err != nil {
			log.Printf("Error closing embedding gateway: %v", err)
		}
	}
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
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
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
