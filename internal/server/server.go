// Package server provides the HTTP server for the news board API. It wires
// configuration, database, repositories, services and handlers together and
// manages the server lifecycle including graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"newsboard/internal/config"
	"newsboard/internal/database"
	"newsboard/internal/handlers"
	"newsboard/internal/repository"
	"newsboard/internal/service"
	"newsboard/migrations"
	"newsboard/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	TopicHandler   *handlers.TopicHandler
	ArticleHandler *handlers.ArticleHandler
	CommentHandler *handlers.CommentHandler
	UserHandler    *handlers.UserHandler
}

// Server represents the API server for the news board application.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// router handles HTTP routing
	router chi.Router

	// httpServer is the underlying HTTP server
	httpServer *http.Server

	repositories struct {
		topicRepo   repository.TopicRepository
		userRepo    repository.UserRepository
		articleRepo repository.ArticleRepository
		commentRepo repository.CommentRepository
	}

	services struct {
		topicService   *service.TopicService
		articleService *service.ArticleService
		commentService *service.CommentService
		userService    *service.UserService
	}
}

// NewServer creates a new server instance with all required components.
// Initialization follows dependency order: database, repositories, services,
// handlers, routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	s.setupRepositories()
	s.setupServices()
	s.setupHandlers()
	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s, nil
}

// setupDatabase connects to the database, runs migrations, and seeds sample
// data in development environments.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if s.Config.App.IsDevelopment() {
		seeder := scripts.NewSeeder(db)
		if err := seeder.SeedDatabase(context.Background()); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return nil
}

// setupRepositories initializes all data repositories.
func (s *Server) setupRepositories() {
	s.repositories.topicRepo = repository.NewTopicRepository(s.Db)
	s.repositories.userRepo = repository.NewUserRepository(s.Db)
	s.repositories.articleRepo = repository.NewArticleRepository(s.Db)
	s.repositories.commentRepo = repository.NewCommentRepository(s.Db)
}

// setupServices initializes all business services.
func (s *Server) setupServices() {
	s.services.topicService = service.NewTopicService(s.repositories.topicRepo)
	s.services.articleService = service.NewArticleService(
		s.repositories.articleRepo,
		s.repositories.topicRepo,
		s.repositories.userRepo,
	)
	s.services.commentService = service.NewCommentService(
		s.repositories.commentRepo,
		s.repositories.articleRepo,
	)
	s.services.userService = service.NewUserService(s.repositories.userRepo)
}

// setupHandlers initializes all HTTP request handlers.
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		TopicHandler:   handlers.NewTopicHandler(s.services.topicService),
		ArticleHandler: handlers.NewArticleHandler(s.services.articleService),
		CommentHandler: handlers.NewCommentHandler(s.services.commentService),
		UserHandler:    handlers.NewUserHandler(s.services.userService),
	}
}

// Start starts the HTTP server and blocks until a server error occurs or a
// shutdown signal is received.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// before closing the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()

	return nil
}
