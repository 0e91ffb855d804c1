package api

import (
	"context"
	"log/slog"
	"net/http"

	"taskmanager/internal/auth"
	"taskmanager/internal/config"
	"taskmanager/internal/repository/sqlite"
	"taskmanager/internal/services"

	"github.com/gin-gonic/gin"
)

// Server is the transport shell around the task service: it resolves
// callers, shapes request parameters and renders results and errors.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	service services.TaskService
	tokens  *auth.TokenService
	router  *gin.Engine
}

// NewServer wires the task service, identity provider and routes.
func NewServer(cfg *config.Config, logger *slog.Logger, repo sqlite.Repository) *Server {
	service := services.NewTaskService(repo, auth.NewPolicy())
	tokens := auth.NewTokenService(repo, cfg.Auth.TokenTTL)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		service: service,
		tokens:  tokens,
		router:  router,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.POST("/api/tokens", s.issueToken)

	authed := s.router.Group("/api")
	authed.Use(TokenAuth(s.tokens, s.logger))
	{
		authed.DELETE("/tokens", s.revokeToken)
		authed.GET("/tasks", s.listAllTasks)
		authed.GET("/task", s.listTasks)
		authed.POST("/task", s.createTask)
		authed.PUT("/task", s.editTask)
		authed.DELETE("/task", s.deleteTask)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
