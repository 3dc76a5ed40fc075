package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsboard/internal/middleware"
	"newsboard/internal/utils"
)

// SetupRoutes configures the routes for the application. The healthcheck and
// the capability document stay outside the data routes; everything else maps
// one-to-one onto the dataset operations.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	// Base middleware
	r.Use(middleware.CORS(s.Config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Metrics())

	// Unknown routes get the same error shape as everything else.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, "")
	})

	// The healthcheck reports process liveness only; it deliberately does
	// not touch the database.
	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/", s.GetEndpoints)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/topics", s.Handlers.TopicHandler.GetTopics)

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", s.Handlers.ArticleHandler.GetArticles)
		r.Post("/", s.Handlers.ArticleHandler.CreateArticle)

		r.Route("/{article_id}", func(r chi.Router) {
			r.Get("/", s.Handlers.ArticleHandler.GetArticleByID)
			r.Patch("/", s.Handlers.ArticleHandler.UpdateArticleVotes)
			r.Get("/comments", s.Handlers.CommentHandler.GetArticleComments)
			r.Post("/comments", s.Handlers.CommentHandler.CreateComment)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Patch("/{comment_id}", s.Handlers.CommentHandler.UpdateCommentVotes)
		r.Delete("/{comment_id}", s.Handlers.CommentHandler.DeleteComment)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.Handlers.UserHandler.GetUsers)
		r.Get("/{username}", s.Handlers.UserHandler.GetUserByUsername)
	})

	s.router = r
}

// GetRouter returns the configured router. It is primarily used by tests.
func (s *Server) GetRouter() chi.Router {
	return s.router
}
