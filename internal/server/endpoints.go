package server

import (
	"net/http"

	"newsboard/internal/utils"
)

// GetEndpoints serves a static capability document describing every endpoint
// of the API: method and path, description, accepted query parameters,
// example request body and example response.
func (s *Server) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]interface{}{
		"GET /": map[string]interface{}{
			"description": "serves a json representation of all the available endpoints of the api",
		},
		"GET /healthcheck": map[string]interface{}{
			"description": "responds with 200 when the server is up",
		},
		"GET /topics": map[string]interface{}{
			"description": "serves an array of all topics",
			"exampleResponse": map[string]interface{}{
				"topics": []map[string]interface{}{
					{"slug": "football", "description": "Footie!"},
				},
			},
		},
		"GET /articles": map[string]interface{}{
			"description": "serves an array of all articles, without bodies, newest first by default",
			"queries":     []string{"topic", "sort_by", "order", "limit", "offset"},
			"exampleResponse": map[string]interface{}{
				"articles": []map[string]interface{}{
					{
						"article_id":      1,
						"title":           "Seafood substitutions are increasing",
						"topic":           "cooking",
						"author":          "weegembump",
						"created_at":      "2018-05-30T15:59:13.341Z",
						"votes":           0,
						"article_img_url": "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700",
						"comment_count":   6,
					},
				},
			},
		},
		"POST /articles": map[string]interface{}{
			"description": "adds a new article and serves it back with its comment count",
			"exampleRequest": map[string]interface{}{
				"author":          "weegembump",
				"title":           "Seafood substitutions are increasing",
				"body":            "Text from the article..",
				"topic":           "cooking",
				"article_img_url": "optional - defaults when omitted",
			},
		},
		"GET /articles/{article_id}": map[string]interface{}{
			"description": "serves a single article with its comment count",
		},
		"PATCH /articles/{article_id}": map[string]interface{}{
			"description": "applies a vote delta to an article and serves the updated article",
			"exampleRequest": map[string]interface{}{
				"inc_votes": 1,
			},
		},
		"GET /articles/{article_id}/comments": map[string]interface{}{
			"description": "serves the comments of an article, newest first",
		},
		"POST /articles/{article_id}/comments": map[string]interface{}{
			"description": "adds a comment to an article and serves the created comment",
			"exampleRequest": map[string]interface{}{
				"username": "weegembump",
				"body":     "Great article!",
			},
		},
		"PATCH /comments/{comment_id}": map[string]interface{}{
			"description": "applies a vote delta to a comment and serves the updated comment",
			"exampleRequest": map[string]interface{}{
				"inc_votes": -1,
			},
		},
		"DELETE /comments/{comment_id}": map[string]interface{}{
			"description": "deletes a comment and responds with no content",
		},
		"GET /users": map[string]interface{}{
			"description": "serves an array of all users",
		},
		"GET /users/{username}": map[string]interface{}{
			"description": "serves a single user",
		},
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"endpoints": endpoints})
}
