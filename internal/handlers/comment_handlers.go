package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsboard/internal/models"
	"newsboard/internal/utils"
)

// CommentHandler handles comment-related routes
type CommentHandler struct {
	commentService CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// GetArticleComments returns the comments of an article, newest first
func (h *CommentHandler) GetArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := utils.ParseID(chi.URLParam(r, "article_id"))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	comments, err := h.commentService.ListComments(r.Context(), articleID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

// CreateComment adds a comment to an article.
//
// The body is decoded leniently, as in UpdateArticleVotes: a malformed body
// degrades to an empty payload so a missing article still reports not found.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	articleID, err := utils.ParseID(chi.URLParam(r, "article_id"))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	var payload models.NewComment
	if err := utils.DecodeJSON(r, &payload); err != nil {
		payload = models.NewComment{}
	}

	comment, err := h.commentService.CreateComment(r.Context(), articleID, &payload)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{"comment": comment})
}

// UpdateCommentVotes applies a vote delta to a comment
func (h *CommentHandler) UpdateCommentVotes(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "comment_id"))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	var payload models.VoteUpdate
	if err := utils.DecodeJSON(r, &payload); err != nil {
		payload = models.VoteUpdate{}
	}

	comment, err := h.commentService.UpdateCommentVotes(r.Context(), id, &payload)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"comment": comment})
}

// DeleteComment removes a comment and returns no content
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "comment_id"))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), id); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.NoContent(w)
}
