package constants

// ContextKeyUserID is the gin context key under which the authenticated
// user's ID is stored by the auth middleware.
const ContextKeyUserID = "user_id"

// ContextKeyRequestID is the gin context key for the per-request trace ID.
const ContextKeyRequestID = "request_id"

// TokenByteLength is the number of random bytes in a raw access token.
// 32 bytes gives 256 bits of entropy.
const TokenByteLength = 32

// DefaultTokenName is the label attached to tokens issued at login.
const DefaultTokenName = "api"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// PasswordSpecialChars is the set of symbols of which a password must
// contain at least one.
const PasswordSpecialChars = "@$!%*#?&"

// Pagination bounds for list endpoints.
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)
