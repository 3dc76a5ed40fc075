package service

import (
	"context"
	"sort"
	"time"

	"newsboard/internal/constants"
	"newsboard/internal/models"
	"newsboard/internal/repository"
	"newsboard/internal/utils"
)

// Mock implementations for testing

type MockArticleRepository struct {
	articles map[int64]*models.ArticleWithCount
	nextID   int64
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		articles: make(map[int64]*models.ArticleWithCount),
		nextID:   1,
	}
}

// AddArticle stores an article with an explicit id for test setup.
func (m *MockArticleRepository) AddArticle(a *models.ArticleWithCount) {
	m.articles[a.ArticleID] = a
	if a.ArticleID >= m.nextID {
		m.nextID = a.ArticleID + 1
	}
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgArticleNotFound)
	}
	return a, nil
}

func (m *MockArticleRepository) List(ctx context.Context, q repository.ArticleListQuery) ([]models.ArticleSummary, error) {
	summaries := make([]models.ArticleSummary, 0)
	for _, a := range m.articles {
		if q.Topic != "" && a.Topic != q.Topic {
			continue
		}
		summaries = append(summaries, models.ArticleSummary{
			ArticleID:     a.ArticleID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  a.CommentCount,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	article.ArticleID = m.nextID
	m.nextID++
	article.Votes = 0
	article.CreatedAt = time.Now()

	m.articles[article.ArticleID] = &models.ArticleWithCount{
		Article:      *article,
		CommentCount: 0,
	}
	return nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgArticleNotFound)
	}
	a.Votes += delta
	article := a.Article
	return &article, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.articles[id]
	return ok, nil
}

type MockCommentRepository struct {
	comments map[int64]*models.Comment
	nextID   int64
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		comments: make(map[int64]*models.Comment),
		nextID:   1,
	}
}

func (m *MockCommentRepository) AddComment(c *models.Comment) {
	m.comments[c.CommentID] = c
	if c.CommentID >= m.nextID {
		m.nextID = c.CommentID + 1
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	for _, c := range m.comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.CommentID = m.nextID
	m.nextID++
	comment.Votes = 0
	comment.CreatedAt = time.Now()

	m.comments[comment.CommentID] = comment
	return nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgCommentNotFound)
	}
	c.Votes += delta
	comment := *c
	return &comment, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.comments[id]; !ok {
		return utils.NewNotFoundError(constants.MsgCommentNotFound)
	}
	delete(m.comments, id)
	return nil
}

func (m *MockCommentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.comments[id]
	return ok, nil
}

type MockTopicRepository struct {
	topics map[string]models.Topic
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{
		topics: make(map[string]models.Topic),
	}
}

func (m *MockTopicRepository) AddTopic(t models.Topic) {
	m.topics[t.Slug] = t
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	topics := make([]models.Topic, 0, len(m.topics))
	for _, t := range m.topics {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Slug < topics[j].Slug
	})
	return topics, nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	_, ok := m.topics[slug]
	return ok, nil
}

type MockUserRepository struct {
	users map[string]models.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

func (m *MockUserRepository) AddUser(u models.User) {
	m.users[u.Username] = u
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
	return users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
	}
	return &u, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}
