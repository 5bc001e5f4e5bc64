// Package apperrors defines the error taxonomy of the API. Every failure a
// handler can surface is one of four kinds, each mapped to a fixed HTTP
// status by the response package.
package apperrors

import "strings"

// Kind classifies an error for HTTP rendering.
type Kind int

const (
	// KindValidation covers malformed, missing, or duplicate input (400).
	KindValidation Kind = iota
	// KindAuthentication covers missing or invalid credentials/tokens (401).
	KindAuthentication
	// KindNotFound covers references to absent entities (404).
	KindNotFound
	// KindInternal covers storage and other unexpected failures (500).
	KindInternal
)

// AppError carries one or more human-readable messages. Validation errors
// list the offending fields; other kinds carry a single message.
type AppError struct {
	Kind     Kind
	Messages []string
}

func (e *AppError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Validation builds a 400-class error listing the offending field messages.
func Validation(messages ...string) *AppError {
	return &AppError{Kind: KindValidation, Messages: messages}
}

// Authentication builds a 401-class error.
func Authentication(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Messages: []string{message}}
}

// NotFound builds a 404-class error.
func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Messages: []string{message}}
}

// Internal builds a 500-class error. The message is intentionally generic;
// storage detail never reaches the client.
func Internal() *AppError {
	return &AppError{Kind: KindInternal, Messages: []string{"Internal server error"}}
}
