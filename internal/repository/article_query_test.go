package repository_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"newsboard/internal/repository"
)

func TestBuildArticleListQuery_Defaults(t *testing.T) {
	query, args := repository.BuildArticleListQuery(repository.ArticleListQuery{})

	assert.Contains(t, query, "LEFT JOIN comments ON articles.article_id = comments.article_id")
	assert.Contains(t, query, "GROUP BY articles.article_id")
	assert.Contains(t, query, "ORDER BY articles.created_at DESC")
	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "articles.body")
	assert.Empty(t, args)
}

func TestBuildArticleListQuery_TopicFilter(t *testing.T) {
	query, args := repository.BuildArticleListQuery(repository.ArticleListQuery{
		Topic: "cats",
	})

	assert.Contains(t, query, "WHERE articles.topic = $1")
	assert.Equal(t, []interface{}{"cats"}, args)
}

func TestBuildArticleListQuery_SortColumns(t *testing.T) {
	tests := []struct {
		sortBy   string
		order    string
		expected string
	}{
		{"author", "asc", "ORDER BY articles.author ASC"},
		{"title", "desc", "ORDER BY articles.title DESC"},
		{"topic", "asc", "ORDER BY articles.topic ASC"},
		{"created_at", "asc", "ORDER BY articles.created_at ASC"},
		{"votes", "desc", "ORDER BY articles.votes DESC"},
		{"comment_count", "desc", "ORDER BY comment_count DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy+"_"+tt.order, func(t *testing.T) {
			query, _ := repository.BuildArticleListQuery(repository.ArticleListQuery{
				SortBy: tt.sortBy,
				Order:  tt.order,
			})

			assert.Contains(t, query, tt.expected)
		})
	}
}

func TestBuildArticleListQuery_CommentCountUsesAggregateAlias(t *testing.T) {
	query, _ := repository.BuildArticleListQuery(repository.ArticleListQuery{
		SortBy: "comment_count",
		Order:  "asc",
	})

	assert.Contains(t, query, "ORDER BY comment_count ASC")
	assert.NotContains(t, query, "articles.comment_count")
}

func TestBuildArticleListQuery_TopicWithSort(t *testing.T) {
	query, args := repository.BuildArticleListQuery(repository.ArticleListQuery{
		Topic:  "paper",
		SortBy: "votes",
		Order:  "asc",
	})

	assert.Contains(t, query, "WHERE articles.topic = $1")
	assert.Contains(t, query, "ORDER BY articles.votes ASC")
	assert.Equal(t, []interface{}{"paper"}, args)

	// Filter precedes grouping; ordering follows it.
	whereIdx := strings.Index(query, "WHERE")
	groupIdx := strings.Index(query, "GROUP BY")
	orderIdx := strings.Index(query, "ORDER BY")
	assert.Less(t, whereIdx, groupIdx)
	assert.Less(t, groupIdx, orderIdx)
}

func TestBuildArticleListQuery_LimitOffset(t *testing.T) {
	query, args := repository.BuildArticleListQuery(repository.ArticleListQuery{
		Topic:  "cats",
		Limit:  10,
		Offset: 20,
	})

	assert.Contains(t, query, "LIMIT $2")
	assert.Contains(t, query, "OFFSET $3")
	assert.Equal(t, []interface{}{"cats", 10, 20}, args)
}
