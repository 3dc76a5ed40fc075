package repository

import (
	"fmt"
	"strings"

	"newsboard/internal/constants"
)

// ArticleListQuery holds the validated, orthogonal parameters of the article
// listing operation. SortBy and Order must already be allow-listed by the
// caller; they are interpolated as identifiers, never as values.
type ArticleListQuery struct {
	Topic  string // optional equality filter on articles.topic
	SortBy string // allow-listed sort column, default created_at
	Order  string // asc or desc, default desc
	Limit  int    // 0 means no limit
	Offset int    // applied only when > 0
}

// BuildArticleListQuery assembles the listing query from the validated
// parameters. The projection carries every article column except the body,
// plus the comment count aggregate over an outer join so zero-comment
// articles are retained. The topic predicate is added before grouping; sort
// is applied after aggregation so comment_count is a valid sort key.
//
// Tie order between rows with equal sort keys is unspecified.
func BuildArticleListQuery(q ArticleListQuery) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString(`
        SELECT
            articles.article_id,
            articles.title,
            articles.topic,
            articles.author,
            articles.created_at,
            articles.votes,
            articles.article_img_url,
            COUNT(comments.comment_id)::INT AS comment_count
        FROM articles
        LEFT JOIN comments ON articles.article_id = comments.article_id`)

	if q.Topic != "" {
		args = append(args, q.Topic)
		fmt.Fprintf(&sb, "\n        WHERE articles.topic = $%d", len(args))
	}

	sb.WriteString("\n        GROUP BY articles.article_id")

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = constants.DefaultSortColumn
	}
	order := q.Order
	if order == "" {
		order = constants.DefaultSortOrder
	}

	// comment_count orders by the aggregate alias; stored columns are
	// qualified with the table name.
	sortExpr := "articles." + sortBy
	if sortBy == "comment_count" {
		sortExpr = "comment_count"
	}
	fmt.Fprintf(&sb, "\n        ORDER BY %s %s", sortExpr, strings.ToUpper(order))

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, "\n        LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		fmt.Fprintf(&sb, "\n        OFFSET $%d", len(args))
	}

	return sb.String(), args
}
