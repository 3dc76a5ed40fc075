// Package constants provides shared constant values used throughout the application.
package constants

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// HTTP header names and content types.
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

// Security header names and values applied to every response.
const (
	HeaderXContentTypeOptions   = "X-Content-Type-Options"
	HeaderXFrameOptions         = "X-Frame-Options"
	HeaderXXSSProtection        = "X-XSS-Protection"
	HeaderReferrerPolicy        = "Referrer-Policy"
	HeaderContentSecurityPolicy = "Content-Security-Policy"

	ContentTypeOptionsNoSniff  = "nosniff"
	FrameOptionsDeny           = "DENY"
	XSSProtectionModeBlock     = "1; mode=block"
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"
	CSPDefaultSrc              = "default-src 'self'"
)

// Request size limits.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1 << 20 // 1 MB
)

// Table names for the relational dataset.
const (
	TableTopics   = "topics"
	TableUsers    = "users"
	TableArticles = "articles"
	TableComments = "comments"
)

// PostgreSQL error codes translated at the storage boundary.
// A malformed key or a violated column constraint reaching the storage
// engine is a client error, not a server fault.
const (
	PGInvalidTextRepresentation = "22P02"
	PGNotNullViolation          = "23502"
	PGForeignKeyViolation       = "23503"
	PGUniqueViolation           = "23505"
)
