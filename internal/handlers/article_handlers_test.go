package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsboard/internal/constants"
	"newsboard/internal/handlers"
	"newsboard/internal/models"
	"newsboard/internal/utils"
)

// MockArticleService is a mock implementation of the article service
type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) ListArticles(ctx context.Context, topic, sortBy, order string, limit, offset int) ([]models.ArticleSummary, error) {
	args := m.Called(ctx, topic, sortBy, order, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArticleSummary), args.Error(1)
}

func (m *MockArticleService) GetArticleByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleWithCount), args.Error(1)
}

func (m *MockArticleService) CreateArticle(ctx context.Context, payload *models.NewArticle) (*models.ArticleWithCount, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleWithCount), args.Error(1)
}

func (m *MockArticleService) UpdateArticleVotes(ctx context.Context, id int64, payload *models.VoteUpdate) (*models.Article, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

// newRequestWithParams builds a request carrying chi URL parameters.
func newRequestWithParams(method, target string, body io.Reader, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// decodeMsg extracts the msg field of an error body.
func decodeMsg(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var resp struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp.Msg
}

func TestGetArticles(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	expected := []models.ArticleSummary{
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Votes: 100, CommentCount: 11},
	}
	mockService.On("ListArticles", mock.Anything, "", "", "", 0, 0).Return(expected, nil).Once()

	req := httptest.NewRequest("GET", "/articles", nil)
	rr := httptest.NewRecorder()

	handler.GetArticles(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Articles []models.ArticleSummary `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, int64(1), resp.Articles[0].ArticleID)
	assert.Equal(t, 11, resp.Articles[0].CommentCount)
	mockService.AssertExpectations(t)
}

func TestGetArticles_QueryParams(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	mockService.On("ListArticles", mock.Anything, "cats", "votes", "asc", 10, 5).
		Return([]models.ArticleSummary{}, nil).Once()

	req := httptest.NewRequest("GET", "/articles?topic=cats&sort_by=votes&order=asc&limit=10&offset=5", nil)
	rr := httptest.NewRecorder()

	handler.GetArticles(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockService.AssertExpectations(t)
}

func TestGetArticles_UnknownSortColumn(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	mockService.On("ListArticles", mock.Anything, "", "banana", "", 0, 0).
		Return(nil, utils.NewBadRequestError()).Once()

	req := httptest.NewRequest("GET", "/articles?sort_by=banana", nil)
	rr := httptest.NewRecorder()

	handler.GetArticles(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, constants.MsgBadRequest, decodeMsg(t, rr.Body))
	mockService.AssertExpectations(t)
}

func TestGetArticles_MalformedLimit(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	req := httptest.NewRequest("GET", "/articles?limit=ten", nil)
	rr := httptest.NewRecorder()

	handler.GetArticles(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, constants.MsgBadRequest, decodeMsg(t, rr.Body))
	mockService.AssertNotCalled(t, "ListArticles")
}

func TestGetArticles_MissingTopic(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	mockService.On("ListArticles", mock.Anything, "not-a-topic", "", "", 0, 0).
		Return(nil, utils.NewNotFoundError(constants.MsgNotFound)).Once()

	req := httptest.NewRequest("GET", "/articles?topic=not-a-topic", nil)
	rr := httptest.NewRecorder()

	handler.GetArticles(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, constants.MsgNotFound, decodeMsg(t, rr.Body))
	mockService.AssertExpectations(t)
}

func TestGetArticleByID(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	expected := &models.ArticleWithCount{
		Article: models.Article{
			ArticleID: 1,
			Title:     "Living in the shadow of a great man",
			Topic:     "mitch",
			Author:    "butter_bridge",
			Body:      "I find this existence challenging",
			CreatedAt: time.Now(),
			Votes:     100,
		},
		CommentCount: 11,
	}
	mockService.On("GetArticleByID", mock.Anything, int64(1)).Return(expected, nil).Once()

	req := newRequestWithParams("GET", "/articles/1", nil, map[string]string{"article_id": "1"})
	rr := httptest.NewRecorder()

	handler.GetArticleByID(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Article models.ArticleWithCount `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Article.ArticleID)
	assert.Equal(t, 11, resp.Article.CommentCount)
	mockService.AssertExpectations(t)
}

func TestGetArticleByID_NonNumericID(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	req := newRequestWithParams("GET", "/articles/not-an-id", nil, map[string]string{"article_id": "not-an-id"})
	rr := httptest.NewRecorder()

	handler.GetArticleByID(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, constants.MsgBadRequest, decodeMsg(t, rr.Body))
	mockService.AssertNotCalled(t, "GetArticleByID")
}

func TestGetArticleByID_NotFound(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	mockService.On("GetArticleByID", mock.Anything, int64(999)).
		Return(nil, utils.NewNotFoundError(constants.MsgArticleNotFound)).Once()

	req := newRequestWithParams("GET", "/articles/999", nil, map[string]string{"article_id": "999"})
	rr := httptest.NewRecorder()

	handler.GetArticleByID(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, constants.MsgArticleNotFound, decodeMsg(t, rr.Body))
	mockService.AssertExpectations(t)
}

func TestCreateArticle(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	created := &models.ArticleWithCount{
		Article: models.Article{
			ArticleID:     14,
			Title:         "Seven legendary football moments",
			Topic:         "football",
			Author:        "butter_bridge",
			Body:          "They happened. All seven of them.",
			CreatedAt:     time.Now(),
			ArticleImgURL: constants.DefaultArticleImageURL,
		},
	}
	mockService.On("CreateArticle", mock.Anything, mock.MatchedBy(func(p *models.NewArticle) bool {
		return p.Title == "Seven legendary football moments" && p.ArticleImgURL == ""
	})).Return(created, nil).Once()

	body := bytes.NewBufferString(`{
		"author": "butter_bridge",
		"title": "Seven legendary football moments",
		"body": "They happened. All seven of them.",
		"topic": "football"
	}`)
	req := httptest.NewRequest("POST", "/articles", body)
	rr := httptest.NewRecorder()

	handler.CreateArticle(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Article models.ArticleWithCount `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(14), resp.Article.ArticleID)
	assert.Equal(t, constants.DefaultArticleImageURL, resp.Article.ArticleImgURL)
	assert.Equal(t, 0, resp.Article.CommentCount)
	mockService.AssertExpectations(t)
}

func TestCreateArticle_MalformedBody(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	req := httptest.NewRequest("POST", "/articles", bytes.NewBufferString(`not json`))
	rr := httptest.NewRecorder()

	handler.CreateArticle(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, constants.MsgBadRequest, decodeMsg(t, rr.Body))
	mockService.AssertNotCalled(t, "CreateArticle")
}

func TestUpdateArticleVotes(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	updated := &models.Article{ArticleID: 1, Title: "Living in the shadow of a great man", Votes: 106}
	mockService.On("UpdateArticleVotes", mock.Anything, int64(1), mock.MatchedBy(func(p *models.VoteUpdate) bool {
		return p.IncVotes != nil && *p.IncVotes == 6
	})).Return(updated, nil).Once()

	body := bytes.NewBufferString(`{"inc_votes": 6}`)
	req := newRequestWithParams("PATCH", "/articles/1", body, map[string]string{"article_id": "1"})
	rr := httptest.NewRecorder()

	handler.UpdateArticleVotes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Article models.Article `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 106, resp.Article.Votes)
	mockService.AssertExpectations(t)
}

func TestUpdateArticleVotes_StringIncVotes(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	// The wrong-typed body degrades to an empty payload, which the service
	// rejects after its existence check.
	mockService.On("UpdateArticleVotes", mock.Anything, int64(1), &models.VoteUpdate{}).
		Return(nil, utils.NewBadRequestError()).Once()

	body := bytes.NewBufferString(`{"inc_votes": "one"}`)
	req := newRequestWithParams("PATCH", "/articles/1", body, map[string]string{"article_id": "1"})
	rr := httptest.NewRecorder()

	handler.UpdateArticleVotes(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, constants.MsgBadRequest, decodeMsg(t, rr.Body))
	mockService.AssertExpectations(t)
}

func TestUpdateArticleVotes_MissingArticleMalformedBody(t *testing.T) {
	mockService := new(MockArticleService)
	handler := handlers.NewArticleHandler(mockService)

	// The missing article wins over the malformed body.
	mockService.On("UpdateArticleVotes", mock.Anything, int64(999), &models.VoteUpdate{}).
		Return(nil, utils.NewNotFoundError(constants.MsgArticleNotFound)).Once()

	body := bytes.NewBufferString(`{"inc_votes": "one"}`)
	req := newRequestWithParams("PATCH", "/articles/999", body, map[string]string{"article_id": "999"})
	rr := httptest.NewRecorder()

	handler.UpdateArticleVotes(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, constants.MsgArticleNotFound, decodeMsg(t, rr.Body))
	mockService.AssertExpectations(t)
}
