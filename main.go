// Command feedcore runs the HTTP service that ingests a game's display
// feed, drives the dual-channel parser over it, and serves the resulting
// typed event history back out.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/baseball-sim/feedcore/cache"
	"github.com/baseball-sim/feedcore/feed"
	"github.com/baseball-sim/feedcore/store"
)

// Config holds the service's environment-derived settings, mirroring the
// teacher's NewConfig/getEnv pattern in sim-engine/main.go.
type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	FeedBaseURL string
	Workers     int
}

// NewConfig reads Config from the environment, falling back to development
// defaults exactly as the teacher's getEnv does.
func NewConfig() *Config {
	workers := 4
	if v := os.Getenv("WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workers = n
		}
	}
	return &Config{
		Port:        getEnv("PORT", "8082"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "feedcore_user"),
		DBPassword:  getEnv("DB_PASSWORD", "feedcore_pass"),
		DBName:      getEnv("DB_NAME", "feedcore"),
		FeedBaseURL: getEnv("FEED_BASE_URL", "https://api2.sibr.dev/chronicler/v0/game-events"),
		Workers:     workers,
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// Server wires together the store, feed client/driver, and query cache
// behind a gorilla/mux router, grounded in the teacher's Server struct in
// sim-engine/main.go and the CORS/compression middleware stack in the
// sibling api-gateway module's main.go.
type Server struct {
	config     *Config
	router     *mux.Router
	httpServer *http.Server

	store      *store.Store
	feedClient *feed.Client
	driver     *feed.Driver
	queryCache *cache.Cache
}

// NewServer builds the store connection, feed client/driver, and route
// table.
func NewServer(ctx context.Context, config *Config) (*Server, error) {
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)

	st, err := store.Open(ctx, store.Config{
		DSN:             dsn,
		MaxConns:        int32(config.Workers * 2),
		MinConns:        int32(config.Workers / 2),
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to store: %w", err)
	}

	client := feed.NewClient(config.FeedBaseURL)
	driver := feed.NewDriver(client, st, config.Workers)

	s := &Server{
		config:     config,
		router:     mux.NewRouter(),
		store:      st,
		feedClient: client,
		driver:     driver,
		queryCache: cache.New(),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.healthHandler).Methods("GET")
	s.router.HandleFunc("/metrics", s.metricsHandler).Methods("GET")
	s.router.HandleFunc("/games/{id}/ingest", s.ingestHandler).Methods("POST")
	s.router.HandleFunc("/games/{id}/events", s.eventsHandler).Methods("GET")
	s.router.HandleFunc("/games/{id}/state", s.stateHandler).Methods("GET")

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)
}

// Start wraps the router in CORS, gzip compression, and begins serving,
// grounded in the api-gateway module's Start method.
func (s *Server) Start() error {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		ExposedHeaders:   []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	})

	handler := handlers.CompressHandler(c.Handler(s.router))

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting feedcore on port %s with %d workers", s.config.Port, s.config.Workers)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains the HTTP server and closes the store and cache.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down feedcore...")
	s.queryCache.Close()
	s.store.Close()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC(),
	}
	writeJSON(w, health)
}

func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	metrics := map[string]interface{}{
		"workers": s.config.Workers,
	}
	writeJSON(w, metrics)
}

func (s *Server) ingestHandler(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	if err := s.driver.Run(ctx, []string{gameID}); err != nil {
		log.Printf("ingest failed for game %s: %v", gameID, err)
		http.Error(w, "ingest failed", http.StatusInternalServerError)
		return
	}
	s.queryCache.Delete("events:" + gameID)
	writeJSON(w, map[string]string{"status": "ingested"})
}

func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	if cached, ok := s.queryCache.Get("events:" + gameID); ok {
		writeJSON(w, cached)
		return
	}

	events, err := s.store.ListEvents(r.Context(), gameID)
	if err != nil {
		log.Printf("loading events for game %s: %v", gameID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.queryCache.Set("events:"+gameID, events, 30*time.Second)
	writeJSON(w, events)
}

func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	state, err := s.store.LoadState(r.Context(), gameID)
	if err != nil {
		log.Printf("loading state for game %s: %v", gameID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, state)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf("%s %s %d %v", r.Method, r.RequestURI, lrw.statusCode, time.Since(start))
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("error encoding JSON: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func main() {
	config := NewConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	server, err := NewServer(ctx, config)
	cancel()
	if err != nil {
		log.Fatal("failed to create server: ", err)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Fatal("server shutdown failed: ", err)
		}
		log.Println("server shutdown complete")
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server failed to start: ", err)
	}
}
