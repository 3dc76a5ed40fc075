package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"newsboard/internal/constants"
	"newsboard/internal/models"
	"newsboard/internal/repository"
	"newsboard/internal/utils"
)

// ArticleService handles article operations. It composes the article, topic
// and user repositories so that listing filters and creation payloads can be
// checked against the entities they reference.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	topicRepo   repository.TopicRepository
	userRepo    repository.UserRepository
}

// NewArticleService creates a new ArticleService with the specified
// dependencies.
//
// Parameters:
//   - articleRepo: Repository for article operations
//   - topicRepo: Repository for topic existence checks
//   - userRepo: Repository for author existence checks
//
// Returns:
//   - A new ArticleService instance
func NewArticleService(
	articleRepo repository.ArticleRepository,
	topicRepo repository.TopicRepository,
	userRepo repository.UserRepository,
) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		topicRepo:   topicRepo,
		userRepo:    userRepo,
	}
}

// ListArticles retrieves article summaries, optionally filtered by topic and
// sorted by an allow-listed column.
//
// Parameters:
//   - ctx: Context for the operation
//   - topic: Optional topic slug filter; empty means all topics
//   - sortBy: Sort column, defaulting to created_at; must be allow-listed
//   - order: Sort direction asc or desc, defaulting to desc
//   - limit, offset: Optional window over the result; zero means unbounded
//
// Returns:
//   - The matching article summaries, each carrying its comment count
//   - A validation error for an unknown sort column or direction, a
//     not-found error for a filter naming a topic that does not exist
//
// An existing topic with no articles yields an empty slice; only a topic
// absent from the dataset is a not-found failure. The distinction requires an
// existence check, which is deferred until the result comes back empty so the
// common case costs a single query.
func (s *ArticleService) ListArticles(ctx context.Context, topic, sortBy, order string, limit, offset int) ([]models.ArticleSummary, error) {
	if sortBy != "" && !utils.InAllowList(sortBy, constants.ArticleSortColumns) {
		log.Debug().Str("sort_by", sortBy).Msg("Rejected unknown sort column")
		return nil, utils.NewBadRequestError()
	}
	if order != "" && !utils.InAllowList(order, constants.SortOrders) {
		log.Debug().Str("order", order).Msg("Rejected unknown sort order")
		return nil, utils.NewBadRequestError()
	}

	articles, err := s.articleRepo.List(ctx, repository.ArticleListQuery{
		Topic:  topic,
		SortBy: sortBy,
		Order:  order,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	if len(articles) == 0 && topic != "" {
		exists, err := s.topicRepo.Exists(ctx, topic)
		if err != nil {
			return nil, fmt.Errorf("failed to check topic: %w", err)
		}
		if !exists {
			return nil, utils.NewNotFoundError(constants.MsgNotFound)
		}
	}

	return articles, nil
}

// GetArticleByID retrieves a single article with its comment count.
func (s *ArticleService) GetArticleByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return article, nil
}

// CreateArticle validates and inserts a new article.
//
// Parameters:
//   - ctx: Context for the operation
//   - payload: The client-supplied article fields
//
// Returns:
//   - The created article, re-fetched so it carries its comment count (zero)
//   - A validation error for a missing required field, a not-found error
//     when the author or topic does not exist
//
// The author check runs before the topic check, so a payload failing both
// reports the author. An omitted image URL gets the dataset default.
func (s *ArticleService) CreateArticle(ctx context.Context, payload *models.NewArticle) (*models.ArticleWithCount, error) {
	if err := utils.ValidateStruct(payload); err != nil {
		return nil, err
	}

	authorExists, err := s.userRepo.Exists(ctx, payload.Author)
	if err != nil {
		return nil, fmt.Errorf("failed to check author: %w", err)
	}
	if !authorExists {
		return nil, utils.NewNotFoundError(constants.MsgAuthorNotRegistered)
	}

	topicExists, err := s.topicRepo.Exists(ctx, payload.Topic)
	if err != nil {
		return nil, fmt.Errorf("failed to check topic: %w", err)
	}
	if !topicExists {
		return nil, utils.NewNotFoundError(constants.MsgInvalidTopic)
	}

	article := &models.Article{
		Title:         payload.Title,
		Topic:         payload.Topic,
		Author:        payload.Author,
		Body:          payload.Body,
		ArticleImgURL: payload.ArticleImgURL,
	}
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = constants.DefaultArticleImageURL
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(ctx, article.ArticleID)
}

// UpdateArticleVotes applies a vote delta to an article.
//
// The existence check runs before payload validation: a request naming a
// missing article reports not found even when its body is also malformed.
func (s *ArticleService) UpdateArticleVotes(ctx context.Context, id int64, payload *models.VoteUpdate) (*models.Article, error) {
	exists, err := s.articleRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check article: %w", err)
	}
	if !exists {
		return nil, utils.NewNotFoundError(constants.MsgArticleNotFound)
	}

	if err := utils.ValidateStruct(payload); err != nil {
		return nil, err
	}

	return s.articleRepo.IncrementVotes(ctx, id, *payload.IncVotes)
}
