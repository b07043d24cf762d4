// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/agrosense/hub/api/resources"
	"github.com/agrosense/hub/internal/config"
	"github.com/agrosense/hub/internal/database"
	"github.com/agrosense/hub/internal/hubservice"
	"github.com/agrosense/hub/internal/monitoring"
	"github.com/agrosense/hub/internal/query"
	"github.com/agrosense/hub/internal/repository/postgres"
)

// Server represents our HTTP server
type Server struct {
	router     *mux.Router
	config     *config.Config
	srv        *http.Server
	hubservice *hubservice.HubService
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	router := mux.NewRouter()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handlers.RecoveryHandler()(handlers.CORS(handlers.AllowedMethods([]string{http.MethodGet}))(router)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		router: router,
		config: cfg,
		srv:    srv,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.monitoring = monitoring.NewService()
	svc, err := initializeHubService(s.config, s.monitoring)
	if err != nil {
		return err
	}
	s.hubservice = svc

	// Setup routes
	s.setupRoutes()

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	res := resources.NewResources(s.hubservice, s.config.Dashboard.Window)

	// API version prefix
	v1 := s.router.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/health", s.handleHealth()).Methods(http.MethodGet)
	v1.Handle("/metrics", s.monitoring.Handler()).Methods(http.MethodGet)

	v1.HandleFunc("/dashboard", res.Dashboard.GetDashboard).Methods(http.MethodGet)
	v1.HandleFunc("/tables", res.Tables.BrowseTable).Methods(http.MethodGet)
	v1.HandleFunc("/grupos", res.Catalog.ListGrupos).Methods(http.MethodGet)
	v1.HandleFunc("/sensors", res.Catalog.ListSensors).Methods(http.MethodGet)
}

// handleHealth returns a simple health check handler
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
	}
}

// initializeHubService creates and configures the hub service
func initializeHubService(cfg *config.Config, monitor *monitoring.Service) (*hubservice.HubService, error) {
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.VerifyConnection(db); err != nil {
		return nil, err
	}

	readings := postgres.NewReadingRepository(db)
	sensors := postgres.NewSensorRepository(db)
	grupos := postgres.NewGrupoRepository(db)
	tables := query.NewRunner(db, monitor, !cfg.IsProduction())

	svc := hubservice.New(readings, sensors, grupos, tables, monitor)
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	return svc, nil
}
