package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authhttp "github.com/allisson/notes/internal/auth/http"
	notehttp "github.com/allisson/notes/internal/note/http"
	translationhttp "github.com/allisson/notes/internal/translation/http"
)

// Handlers groups the route handlers mounted on the API server.
type Handlers struct {
	Auth        *authhttp.AuthHandler
	Note        *notehttp.NoteHandler
	Translation *translationhttp.TranslationHandler
	Status      *StatusHandler
}

// Middlewares groups the gin middlewares applied to the router.
// Auth is required for protected routes; RateLimit and Metrics are optional.
type Middlewares struct {
	Auth      gin.HandlerFunc
	RateLimit gin.HandlerFunc
	Metrics   gin.HandlerFunc
	CORS      gin.HandlerFunc
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new API server with all routes registered.
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
	handlers Handlers,
	middlewares Middlewares,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if middlewares.Metrics != nil {
		router.Use(middlewares.Metrics)
	}
	if middlewares.CORS != nil {
		router.Use(middlewares.CORS)
	}

	// Health endpoint for load balancers and probes
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/v1")
	v1.GET("/status", handlers.Status.GetStatusHandler)

	// Public authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/register", handlers.Auth.RegisterHandler)
	auth.POST("/login", handlers.Auth.LoginHandler)

	// Protected endpoints require a valid access token
	protected := v1.Group("")
	protected.Use(middlewares.Auth)
	if middlewares.RateLimit != nil {
		protected.Use(middlewares.RateLimit)
	}

	protected.POST("/auth/logout", handlers.Auth.LogoutHandler)

	notes := protected.Group("/notes")
	notes.POST("", handlers.Note.CreateNoteHandler)
	notes.GET("", handlers.Note.ListNotesHandler)
	notes.GET("/:id", handlers.Note.GetNoteHandler)
	notes.PATCH("/:id", handlers.Note.UpdateNoteHandler)
	notes.DELETE("/:id", handlers.Note.DeleteNoteHandler)

	translation := protected.Group("/translation")
	translation.POST("/translate", handlers.Translation.TranslateHandler)
	translation.POST("/detect", handlers.Translation.DetectLanguageHandler)
	translation.GET("/languages", handlers.Translation.ListLanguagesHandler)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// NewCORSMiddleware creates a CORS middleware from configuration.
// Returns nil when CORS is disabled or misconfigured.
func NewCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	return createCORSMiddleware(enabled, allowOrigins, logger)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
