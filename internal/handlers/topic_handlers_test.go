package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsboard/internal/constants"
	"newsboard/internal/handlers"
	"newsboard/internal/models"
)

// MockTopicService is a mock implementation of the topic service
type MockTopicService struct {
	mock.Mock
}

func (m *MockTopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topic), args.Error(1)
}

func TestGetTopics(t *testing.T) {
	mockService := new(MockTopicService)
	handler := handlers.NewTopicHandler(mockService)

	expected := []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
	}
	mockService.On("ListTopics", mock.Anything).Return(expected, nil).Once()

	req := httptest.NewRequest("GET", "/topics", nil)
	rr := httptest.NewRecorder()

	handler.GetTopics(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Topics []models.Topic `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Topics, 2)
	assert.Equal(t, "mitch", resp.Topics[0].Slug)
	mockService.AssertExpectations(t)
}

func TestGetTopics_ServiceError(t *testing.T) {
	mockService := new(MockTopicService)
	handler := handlers.NewTopicHandler(mockService)

	mockService.On("ListTopics", mock.Anything).Return(nil, errors.New("database error")).Once()

	req := httptest.NewRequest("GET", "/topics", nil)
	rr := httptest.NewRecorder()

	handler.GetTopics(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, constants.MsgInternalServerError, decodeMsg(t, rr.Body))
	mockService.AssertExpectations(t)
}
