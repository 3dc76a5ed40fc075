// Package service provides the business logic of the news board. Services
// orchestrate validation and existence checks across repositories and decide
// which of the two domain error kinds an operation failure surfaces as.
package service

import (
	"context"
	"fmt"

	"newsboard/internal/models"
	"newsboard/internal/repository"
)

// TopicService handles topic operations.
type TopicService struct {
	topicRepo repository.TopicRepository
}

// NewTopicService creates a new TopicService.
func NewTopicService(topicRepo repository.TopicRepository) *TopicService {
	return &TopicService{
		topicRepo: topicRepo,
	}
}

// ListTopics retrieves all topics. An empty dataset yields an empty slice,
// not an error.
func (s *TopicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	topics, err := s.topicRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}
