package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsboard/internal/models"
	"newsboard/internal/utils"
)

// ArticleHandler handles article-related routes
type ArticleHandler struct {
	articleService ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// GetArticles returns article summaries, honoring the topic, sort_by, order,
// limit and offset query parameters.
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := utils.ParseOptionalUint(query.Get("limit"))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}
	offset, err := utils.ParseOptionalUint(query.Get("offset"))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	articles, err := h.articleService.ListArticles(
		r.Context(),
		query.Get("topic"),
		query.Get("sort_by"),
		query.Get("order"),
		limit,
		offset,
	)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

// GetArticleByID returns a single article with its comment count
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "article_id"))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	article, err := h.articleService.GetArticleByID(r.Context(), id)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"article": article})
}

// CreateArticle creates a new article from the request body
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var payload models.NewArticle
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	article, err := h.articleService.CreateArticle(r.Context(), &payload)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{"article": article})
}

// UpdateArticleVotes applies a vote delta to an article.
//
// The body is decoded leniently: a malformed body degrades to an empty
// payload so that a request naming a missing article still reports not
// found; the empty payload then fails validation downstream.
func (h *ArticleHandler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "article_id"))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	var payload models.VoteUpdate
	if err := utils.DecodeJSON(r, &payload); err != nil {
		payload = models.VoteUpdate{}
	}

	article, err := h.articleService.UpdateArticleVotes(r.Context(), id, &payload)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"article": article})
}
