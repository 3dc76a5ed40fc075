package service

import (
	"context"
	"fmt"

	"newsboard/internal/constants"
	"newsboard/internal/models"
	"newsboard/internal/repository"
	"newsboard/internal/utils"
)

// CommentService handles comment operations. Comment operations that name an
// article verify the article exists first, so every path reports a missing
// article consistently.
type CommentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	articleRepo repository.ArticleRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// ListComments retrieves the comments of an article, newest first. A missing
// article is a not-found failure; an existing article with no comments yields
// an empty slice.
func (s *CommentService) ListComments(ctx context.Context, articleID int64) ([]models.Comment, error) {
	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check article: %w", err)
	}
	if !exists {
		return nil, utils.NewNotFoundError(constants.MsgArticleNotFound)
	}

	comments, err := s.commentRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

// CreateComment validates and inserts a new comment on an article.
//
// The existence check runs before payload validation: a request naming a
// missing article reports not found even when its body is also invalid. An
// unknown username fails the author foreign key at insert, which the error
// translation layer reports as a validation failure.
func (s *CommentService) CreateComment(ctx context.Context, articleID int64, payload *models.NewComment) (*models.Comment, error) {
	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check article: %w", err)
	}
	if !exists {
		return nil, utils.NewNotFoundError(constants.MsgArticleNotFound)
	}

	if err := utils.ValidateStruct(payload); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Author:    payload.Username,
		Body:      payload.Body,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// UpdateCommentVotes applies a vote delta to a comment. As with articles, the
// existence check runs before payload validation.
func (s *CommentService) UpdateCommentVotes(ctx context.Context, id int64, payload *models.VoteUpdate) (*models.Comment, error) {
	exists, err := s.commentRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return nil, utils.NewNotFoundError(constants.MsgCommentNotFound)
	}

	if err := utils.ValidateStruct(payload); err != nil {
		return nil, err
	}

	return s.commentRepo.IncrementVotes(ctx, id, *payload.IncVotes)
}

// DeleteComment removes a comment. Deleting an already-deleted comment
// reports not found again; the operation is not idempotent in its status.
func (s *CommentService) DeleteComment(ctx context.Context, id int64) error {
	exists, err := s.commentRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return utils.NewNotFoundError(constants.MsgCommentNotFound)
	}

	return s.commentRepo.Delete(ctx, id)
}
