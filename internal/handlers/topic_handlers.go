// Package handlers translates HTTP requests into service calls and service
// results into JSON responses. Every error body has the shape
// {"msg": "<string>"}; success bodies key their payload by entity name.
package handlers

import (
	"net/http"

	"newsboard/internal/utils"
)

// TopicHandler handles topic-related routes
type TopicHandler struct {
	topicService TopicServiceInterface
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topicService TopicServiceInterface) *TopicHandler {
	return &TopicHandler{
		topicService: topicService,
	}
}

// GetTopics returns all topics
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicService.ListTopics(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"topics": topics})
}
