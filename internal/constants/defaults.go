// The defaults.go file defines default parameter values and allow-lists for
// the article listing operation, plus the user-facing error messages. These
// are deliberately named constants rather than literals scattered through
// repositories and services.
package constants

// Article listing defaults and allow-lists.
const (
	// DefaultSortColumn is the sort key applied when the client omits sort_by.
	DefaultSortColumn = "created_at"

	// DefaultSortOrder is the sort direction applied when the client omits order.
	DefaultSortOrder = "desc"

	// DefaultArticleImageURL is the placeholder image applied when a new
	// article omits article_img_url.
	DefaultArticleImageURL = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"
)

// ArticleSortColumns is the allow-list of valid sort_by values for the
// article listing. comment_count is an aggregate, not a stored column; the
// query builder resolves it against the aggregate alias.
var ArticleSortColumns = []string{
	"author",
	"title",
	"topic",
	"created_at",
	"votes",
	"comment_count",
}

// SortOrders is the allow-list of valid order values.
var SortOrders = []string{"asc", "desc"}

// User-facing error messages. Validation failures share the single generic
// message; not-found messages are operation-specific.
const (
	// MsgBadRequest is the message for every validation failure.
	MsgBadRequest = "Bad request"

	// MsgNotFound is the generic not-found message, used when a topic filter
	// references a topic that does not exist.
	MsgNotFound = "Not Found"

	// MsgArticleNotFound is returned when a referenced article is absent.
	MsgArticleNotFound = "Article does not exist"

	// MsgCommentNotFound is returned when a referenced comment is absent.
	MsgCommentNotFound = "Comment does not exist"

	// MsgUserNotFound is returned by the user lookup operation.
	MsgUserNotFound = "User not found"

	// MsgAuthorNotRegistered is returned when a new article names an author
	// with no account.
	MsgAuthorNotRegistered = "Author must register an account"

	// MsgInvalidTopic is returned when a new article names a topic that does
	// not exist.
	MsgInvalidTopic = "Not a valid topic"

	// MsgInternalServerError is the 500-class fallthrough message.
	MsgInternalServerError = "An internal server error occurred"
)

// Default configuration values applied when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of idle database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)
