package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ivaldes/gaffer/internal/service"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, manager *service.Manager) *Server {
	handler := NewHandler(manager)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Team identity
	api.HandleFunc("/team/config", handler.GetTeamConfig).Methods("GET")
	api.HandleFunc("/team/config", handler.PutTeamConfig).Methods("PUT")
	api.HandleFunc("/team/balance", handler.GetTeamBalance).Methods("GET")

	// Matches
	api.HandleFunc("/matches", handler.GetMatches).Methods("GET")
	api.HandleFunc("/matches", handler.PostMatch).Methods("POST")
	api.HandleFunc("/matches/import", handler.ImportPerformances).Methods("POST")
	api.HandleFunc("/matches/{matchID}", handler.GetMatch).Methods("GET")

	// Roster
	api.HandleFunc("/roster", handler.GetRoster).Methods("GET")
	api.HandleFunc("/roster/base", handler.GetBaseRoster).Methods("GET")
	api.HandleFunc("/players", handler.PostPlayer).Methods("POST")
	api.HandleFunc("/players/{playerID}", handler.PutPlayer).Methods("PUT")

	// Season
	api.HandleFunc("/league/stats", handler.GetLeagueStats).Methods("GET")
	api.HandleFunc("/opponents", handler.GetOpponents).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
